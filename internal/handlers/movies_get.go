package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akovalyov/movie-catalog/internal/logger"
	"github.com/akovalyov/movie-catalog/internal/models"
	"github.com/akovalyov/movie-catalog/internal/services"
)

// MovieGetter defines the interface that the single-movie fetch must implement.
type MovieGetter interface {
	Get(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error)
}

// MovieGetErrorResponse represents an error response for the single-movie fetch
// swagger:model MovieGetErrorResponse
type MovieGetErrorResponse struct {
	// Error message
	// default: Movie not found
	Error string `json:"error"`
}

// NewMovieGetHandler returns an HTTP handler for fetching a single movie.
// @Summary Get one movie
// @Description Returns the movie with the given id
// @Tags movies
// @Produce json
// @Param id path string true "Movie id"
// @Success 200 {object} models.MovieDB "Movie"
// @Failure 404 {object} handlers.MovieGetErrorResponse "Movie not found"
// @Failure 500 {object} handlers.MovieGetErrorResponse "Malformed id or internal error"
// @Router /api/movies/getOneMovie/{id} [get]
func NewMovieGetHandler(svc MovieGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		movieID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			logger.Log.Errorw("malformed movie id", "id", chi.URLParam(r, "id"))
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MovieGetErrorResponse{
				Error: "An error occurred while fetching the movie.",
			})
			return
		}

		movie, err := svc.Get(r.Context(), movieID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MovieGetErrorResponse{
					Error: "Movie not found",
				})
			default:
				logger.Log.Errorw("failed to fetch movie", "movieID", movieID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieGetErrorResponse{
					Error: "An error occurred while fetching the movie.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(movie)
	}
}
