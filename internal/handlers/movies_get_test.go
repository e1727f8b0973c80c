package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/akovalyov/movie-catalog/internal/handlers"
	"github.com/akovalyov/movie-catalog/internal/models"
	"github.com/akovalyov/movie-catalog/internal/services"
)

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestMovieGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movieID := uuid.New()
	movie := &models.MovieDB{MovieID: movieID, Title: "Heat", PublishingYear: 1995}

	tests := []struct {
		name           string
		id             string
		mockSetup      func(svc *handlers.MockMovieGetter)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "found",
			id:   movieID.String(),
			mockSetup: func(svc *handlers.MockMovieGetter) {
				svc.EXPECT().Get(gomock.Any(), movieID).Return(movie, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed id",
			id:             "not-a-uuid",
			mockSetup:      func(svc *handlers.MockMovieGetter) {},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "An error occurred while fetching the movie.",
		},
		{
			name: "not found",
			id:   movieID.String(),
			mockSetup: func(svc *handlers.MockMovieGetter) {
				svc.EXPECT().Get(gomock.Any(), movieID).Return(nil, services.ErrMovieNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Movie not found",
		},
		{
			name: "service error",
			id:   movieID.String(),
			mockSetup: func(svc *handlers.MockMovieGetter) {
				svc.EXPECT().Get(gomock.Any(), movieID).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "An error occurred while fetching the movie.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := handlers.NewMockMovieGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := handlers.NewMovieGetHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/movies/getOneMovie/"+tt.id, nil)
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedError != "" {
				var resp handlers.MovieGetErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var got models.MovieDB
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, movieID, got.MovieID)
			assert.Equal(t, "Heat", got.Title)
		})
	}
}
