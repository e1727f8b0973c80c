package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akovalyov/movie-catalog/internal/logger"
	"github.com/akovalyov/movie-catalog/internal/models"
	"github.com/akovalyov/movie-catalog/internal/services"
	"github.com/akovalyov/movie-catalog/internal/storage"
)

// maxUploadBytes caps multipart form memory for poster uploads.
const maxUploadBytes = 32 << 20

// MovieCreator defines the interface that the movie creation service must implement.
type MovieCreator interface {
	Create(ctx context.Context, title string, year int, upload services.Upload) (*models.MovieDB, error)
}

// MovieCreateResponse represents a successful movie creation response
// swagger:model MovieCreateResponse
type MovieCreateResponse struct {
	// Success message
	// default: Movie added successfully
	Message string `json:"message"`

	// The created movie
	Movie *models.MovieDB `json:"movie"`
}

// MovieCreateErrorResponse represents an error response for movie creation
// swagger:model MovieCreateErrorResponse
type MovieCreateErrorResponse struct {
	// Error message
	// default: Title is required and must be a string.
	Error string `json:"error"`
}

// NewMovieCreateHandler returns an HTTP handler for creating a movie with an
// uploaded poster image.
// @Summary Create a movie
// @Description Stores the uploaded poster and persists a new movie referencing it
// @Tags movies
// @Accept mpfd
// @Produce json
// @Param title formData string true "Movie title"
// @Param year formData int true "Publishing year"
// @Param image formData file true "Poster image (jpeg, jpg, or png)"
// @Success 201 {object} handlers.MovieCreateResponse "Movie added"
// @Failure 400 {object} handlers.MovieCreateErrorResponse "Missing or invalid field, file, or file type"
// @Failure 409 {object} handlers.MovieCreateErrorResponse "Duplicate title and publishing year"
// @Failure 500 {object} handlers.MovieCreateErrorResponse "Internal server error"
// @Router /api/movies/create [post]
func NewMovieCreateHandler(svc MovieCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieCreateErrorResponse{
				Error: "Invalid multipart form data.",
			})
			return
		}

		title := r.FormValue("title")
		if title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieCreateErrorResponse{
				Error: "Title is required and must be a string.",
			})
			return
		}

		year, err := strconv.Atoi(r.FormValue("year"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieCreateErrorResponse{
				Error: "Publishing year is required and must be a number.",
			})
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieCreateErrorResponse{
				Error: "Poster image is required.",
			})
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !storage.AllowedContentType(contentType) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieCreateErrorResponse{
				Error: "Only .jpeg, .jpg, and .png file types are allowed.",
			})
			return
		}

		movie, err := svc.Create(r.Context(), title, year, services.Upload{
			Filename:    header.Filename,
			ContentType: contentType,
			Content:     file,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMovieAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(MovieCreateErrorResponse{
					Error: "A movie with the same title and publishing year already exists.",
				})
			case errors.Is(err, storage.ErrUnsupportedFileType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MovieCreateErrorResponse{
					Error: "Only .jpeg, .jpg, and .png file types are allowed.",
				})
			default:
				logger.Log.Errorw("failed to create movie", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieCreateErrorResponse{
					Error: "An error occurred while adding the movie.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MovieCreateResponse{
			Message: "Movie added successfully",
			Movie:   movie,
		})
	}
}
