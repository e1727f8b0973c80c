package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/akovalyov/movie-catalog/internal/logger"
	"github.com/akovalyov/movie-catalog/internal/middlewares"
	"github.com/akovalyov/movie-catalog/internal/models"
)

// UserSearcher defines the interface that the user search service must implement.
type UserSearcher interface {
	Search(ctx context.Context, selfID uuid.UUID, keyword string) ([]models.UserDB, error)
}

// UsersErrorResponse represents an error response for the user search
// swagger:model UsersErrorResponse
type UsersErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewUsersHandler returns an HTTP handler listing users other than the caller.
// @Summary Search users
// @Description Returns users whose name or email contains the search keyword, excluding the caller. Requires a bearer token.
// @Tags users
// @Produce json
// @Param search query string false "Case-insensitive substring matched against name and email"
// @Success 200 {array} models.UserDB "Matching users"
// @Failure 401 {object} handlers.UsersErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.UsersErrorResponse "Internal server error"
// @Router /api/users/ [get]
// @Security BearerAuth
func NewUsersHandler(svc UserSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			logger.Log.Error("user search without authenticated identity")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		keyword := r.URL.Query().Get("search")

		users, err := svc.Search(ctx, user.UserID, keyword)
		if err != nil {
			logger.Log.Errorw("failed to search users", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
