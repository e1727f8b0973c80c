package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akovalyov/movie-catalog/internal/logger"
	"github.com/akovalyov/movie-catalog/internal/models"
	"github.com/akovalyov/movie-catalog/internal/services"
	"github.com/akovalyov/movie-catalog/internal/storage"
)

// MovieUpdater defines the interface that the movie update service must implement.
type MovieUpdater interface {
	Update(ctx context.Context, movieID uuid.UUID, title *string, year *int, upload *services.Upload) (*models.MovieDB, error)
}

// MovieUpdateResponse represents a successful movie update response
// swagger:model MovieUpdateResponse
type MovieUpdateResponse struct {
	// Success message
	// default: Movie updated successfully
	Message string `json:"message"`

	// The updated movie
	Movie *models.MovieDB `json:"movie"`
}

// MovieUpdateErrorResponse represents an error response for movie update
// swagger:model MovieUpdateErrorResponse
type MovieUpdateErrorResponse struct {
	// Error message
	// default: Movie not found.
	Error string `json:"error"`
}

// NewMovieUpdateHandler returns an HTTP handler for partially updating a movie.
// Unset fields retain their prior value; a new image replaces the poster.
// The raw year value is validated before parsing.
// @Summary Update a movie
// @Description Applies the provided fields to the movie with the given id
// @Tags movies
// @Accept mpfd
// @Produce json
// @Param id path string true "Movie id"
// @Param title formData string false "New title"
// @Param year formData int false "New publishing year"
// @Param image formData file false "New poster image (jpeg, jpg, or png)"
// @Success 200 {object} handlers.MovieUpdateResponse "Movie updated"
// @Failure 400 {object} handlers.MovieUpdateErrorResponse "Malformed id, year, or file type"
// @Failure 404 {object} handlers.MovieUpdateErrorResponse "Movie not found"
// @Failure 409 {object} handlers.MovieUpdateErrorResponse "Duplicate title and publishing year"
// @Failure 500 {object} handlers.MovieUpdateErrorResponse "Internal server error"
// @Router /api/movies/update/{id} [patch]
func NewMovieUpdateHandler(svc MovieUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		movieID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
				Error: "Invalid movie ID format.",
			})
			return
		}

		// The form may legitimately carry no fields at all
		_ = r.ParseMultipartForm(maxUploadBytes)

		var title *string
		if v := r.FormValue("title"); v != "" {
			title = &v
		}

		var year *int
		if v := r.FormValue("year"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
					Error: "Publishing year must be a number if provided.",
				})
				return
			}
			year = &parsed
		}

		var upload *services.Upload
		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()

			contentType := header.Header.Get("Content-Type")
			if !storage.AllowedContentType(contentType) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
					Error: "Only .jpeg, .jpg, and .png file types are allowed.",
				})
				return
			}

			upload = &services.Upload{
				Filename:    header.Filename,
				ContentType: contentType,
				Content:     file,
			}
		}

		movie, err := svc.Update(r.Context(), movieID, title, year, upload)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
					Error: "Movie not found.",
				})
			case errors.Is(err, services.ErrMovieAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
					Error: "A movie with the same title and publishing year already exists.",
				})
			case errors.Is(err, storage.ErrUnsupportedFileType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
					Error: "Only .jpeg, .jpg, and .png file types are allowed.",
				})
			default:
				logger.Log.Errorw("failed to update movie", "movieID", movieID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieUpdateErrorResponse{
					Error: "An error occurred while updating the movie.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MovieUpdateResponse{
			Message: "Movie updated successfully",
			Movie:   movie,
		})
	}
}
