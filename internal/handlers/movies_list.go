package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/akovalyov/movie-catalog/internal/logger"
	"github.com/akovalyov/movie-catalog/internal/models"
)

// MovieLister defines the interface that the movie list service must implement.
type MovieLister interface {
	List(ctx context.Context, filter models.MovieFilter, page, limit int) ([]models.MovieDB, int64, error)
}

// Pagination describes the page envelope returned with movie lists
// swagger:model Pagination
type Pagination struct {
	// Requested page
	// default: 1
	CurrentPage int `json:"currentPage"`

	// ceil(totalMovies / limit)
	// default: 1
	TotalPages int `json:"totalPages"`

	// Total matching movies, independent of the page slice
	// default: 8
	TotalMovies int64 `json:"totalMovies"`
}

// MoviesListResponse represents a successful movie list response
// swagger:model MoviesListResponse
type MoviesListResponse struct {
	// Success message
	// default: Movies retrieved successfully
	Message string `json:"message"`

	// One page of movies
	Data []models.MovieDB `json:"data"`

	// Page metadata
	Pagination Pagination `json:"pagination"`
}

// MoviesListErrorResponse represents an error response for the movie list
// swagger:model MoviesListErrorResponse
type MoviesListErrorResponse struct {
	// Error message
	Error string `json:"error,omitempty"`

	// Not-found message for empty pages
	Message string `json:"message,omitempty"`
}

// NewMoviesListHandler returns an HTTP handler for the paginated movie list.
// @Summary List movies
// @Description Returns one page of movies with optional title and year filters plus pagination metadata
// @Tags movies
// @Produce json
// @Param title query string false "Case-insensitive substring matched against the title"
// @Param year query int false "Exact publishing year"
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 8"
// @Success 200 {object} handlers.MoviesListResponse "Movies retrieved"
// @Failure 400 {object} handlers.MoviesListErrorResponse "Invalid page, limit, or year"
// @Failure 404 {object} handlers.MoviesListErrorResponse "No movies on the requested page"
// @Failure 500 {object} handlers.MoviesListErrorResponse "Internal server error"
// @Router /api/movies/getAllMovies [get]
func NewMoviesListHandler(svc MovieLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		q := r.URL.Query()

		pageStr := q.Get("page")
		if pageStr == "" {
			pageStr = "1"
		}
		page, err := strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MoviesListErrorResponse{
				Error: "Invalid page number. It must be a positive integer.",
			})
			return
		}

		limitStr := q.Get("limit")
		if limitStr == "" {
			limitStr = "8"
		}
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MoviesListErrorResponse{
				Error: "Invalid limit. It must be a positive integer.",
			})
			return
		}

		var filter models.MovieFilter
		if title := q.Get("title"); title != "" {
			filter.Title = &title
		}
		if yearStr := q.Get("year"); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MoviesListErrorResponse{
					Error: "Invalid year. It must be a number.",
				})
				return
			}
			filter.Year = &year
		}

		movies, total, err := svc.List(r.Context(), filter, page, limit)
		if err != nil {
			logger.Log.Errorw("failed to list movies", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MoviesListErrorResponse{
				Error: "An error occurred while fetching movies.",
			})
			return
		}

		if len(movies) == 0 {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MoviesListErrorResponse{
				Message: "No movies found matching the criteria.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MoviesListResponse{
			Message: "Movies retrieved successfully",
			Data:    movies,
			Pagination: Pagination{
				CurrentPage: page,
				TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
				TotalMovies: total,
			},
		})
	}
}
