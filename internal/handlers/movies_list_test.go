package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/akovalyov/movie-catalog/internal/handlers"
	"github.com/akovalyov/movie-catalog/internal/models"
)

func TestMoviesListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := []models.MovieDB{
		{MovieID: uuid.New(), Title: "Alien", PublishingYear: 1979},
		{MovieID: uuid.New(), Title: "Aliens", PublishingYear: 1986},
	}

	tests := []struct {
		name           string
		target         string
		mockSetup      func(svc *handlers.MockMovieLister)
		expectedStatus int
		expectedError  string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:   "defaults to page 1 limit 8",
			target: "/api/movies/getAllMovies",
			mockSetup: func(svc *handlers.MockMovieLister) {
				svc.EXPECT().
					List(gomock.Any(), models.MovieFilter{}, 1, 8).
					Return(movies, int64(2), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp handlers.MoviesListResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Movies retrieved successfully", resp.Message)
				assert.Len(t, resp.Data, 2)
				assert.Equal(t, 1, resp.Pagination.CurrentPage)
				assert.Equal(t, 1, resp.Pagination.TotalPages)
				assert.Equal(t, int64(2), resp.Pagination.TotalMovies)
			},
		},
		{
			name:   "filters and page math",
			target: "/api/movies/getAllMovies?title=alien&year=1986&page=2&limit=1",
			mockSetup: func(svc *handlers.MockMovieLister) {
				svc.EXPECT().
					List(gomock.Any(), gomock.Any(), 2, 1).
					DoAndReturn(func(_ interface{}, filter models.MovieFilter, _, _ int) ([]models.MovieDB, int64, error) {
						assert.NotNil(t, filter.Title)
						assert.Equal(t, "alien", *filter.Title)
						assert.NotNil(t, filter.Year)
						assert.Equal(t, 1986, *filter.Year)
						return movies[1:], int64(3), nil
					})
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp handlers.MoviesListResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 2, resp.Pagination.CurrentPage)
				assert.Equal(t, 3, resp.Pagination.TotalPages)
				assert.Equal(t, int64(3), resp.Pagination.TotalMovies)
			},
		},
		{
			name:           "invalid page",
			target:         "/api/movies/getAllMovies?page=zero",
			mockSetup:      func(svc *handlers.MockMovieLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid page number. It must be a positive integer.",
		},
		{
			name:           "non-positive page",
			target:         "/api/movies/getAllMovies?page=0",
			mockSetup:      func(svc *handlers.MockMovieLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid page number. It must be a positive integer.",
		},
		{
			name:           "invalid limit",
			target:         "/api/movies/getAllMovies?limit=-3",
			mockSetup:      func(svc *handlers.MockMovieLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid limit. It must be a positive integer.",
		},
		{
			name:           "invalid year",
			target:         "/api/movies/getAllMovies?year=nineteen",
			mockSetup:      func(svc *handlers.MockMovieLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid year. It must be a number.",
		},
		{
			name:   "empty page is not found",
			target: "/api/movies/getAllMovies?page=99",
			mockSetup: func(svc *handlers.MockMovieLister) {
				svc.EXPECT().
					List(gomock.Any(), models.MovieFilter{}, 99, 8).
					Return([]models.MovieDB{}, int64(2), nil)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body []byte) {
				var resp handlers.MoviesListErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "No movies found matching the criteria.", resp.Message)
			},
		},
		{
			name:   "service error",
			target: "/api/movies/getAllMovies",
			mockSetup: func(svc *handlers.MockMovieLister) {
				svc.EXPECT().
					List(gomock.Any(), models.MovieFilter{}, 1, 8).
					Return(nil, int64(0), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "An error occurred while fetching movies.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := handlers.NewMockMovieLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := handlers.NewMoviesListHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedError != "" {
				var resp handlers.MoviesListErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
