package handlers

import (
	"encoding/json"
	"net/http"
)

// LogoutResponse represents the logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logout.
// Tokens are stateless and not revocable, so this performs no state change.
// @Summary User logout
// @Description No-op endpoint kept for symmetry; tokens expire on their own
// @Tags users
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Router /api/users/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}
