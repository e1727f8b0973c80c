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
	"github.com/akovalyov/movie-catalog/internal/services"
)

func TestMovieUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movieID := uuid.New()
	updated := &models.MovieDB{
		MovieID:        movieID,
		Title:          "Heat (Director's Cut)",
		PublishingYear: 1995,
		Poster:         "/uploads/old.jpg",
	}

	tests := []struct {
		name           string
		id             string
		fields         map[string]string
		imageName      string
		imageType      string
		mockSetup      func(svc *handlers.MockMovieUpdater)
		expectedStatus int
		expectedError  string
	}{
		{
			name:   "title only",
			id:     movieID.String(),
			fields: map[string]string{"title": "Heat (Director's Cut)"},
			mockSetup: func(svc *handlers.MockMovieUpdater) {
				svc.EXPECT().
					Update(gomock.Any(), movieID, gomock.Any(), (*int)(nil), (*services.Upload)(nil)).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, title *string, _ *int, _ *services.Upload) (*models.MovieDB, error) {
						assert.NotNil(t, title)
						assert.Equal(t, "Heat (Director's Cut)", *title)
						return updated, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "new poster image",
			id:        movieID.String(),
			fields:    map[string]string{},
			imageName: "new.png",
			imageType: "image/png",
			mockSetup: func(svc *handlers.MockMovieUpdater) {
				svc.EXPECT().
					Update(gomock.Any(), movieID, (*string)(nil), (*int)(nil), gomock.Any()).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, _ *string, _ *int, upload *services.Upload) (*models.MovieDB, error) {
						assert.NotNil(t, upload)
						assert.Equal(t, "new.png", upload.Filename)
						assert.Equal(t, "image/png", upload.ContentType)
						return updated, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed id",
			id:             "42",
			fields:         map[string]string{"title": "Heat"},
			mockSetup:      func(svc *handlers.MockMovieUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid movie ID format.",
		},
		{
			name:           "non-numeric year",
			id:             movieID.String(),
			fields:         map[string]string{"year": "nineteen"},
			mockSetup:      func(svc *handlers.MockMovieUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Publishing year must be a number if provided.",
		},
		{
			name:           "unsupported file type",
			id:             movieID.String(),
			fields:         map[string]string{},
			imageName:      "new.webp",
			imageType:      "image/webp",
			mockSetup:      func(svc *handlers.MockMovieUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Only .jpeg, .jpg, and .png file types are allowed.",
		},
		{
			name:   "not found",
			id:     movieID.String(),
			fields: map[string]string{"title": "Heat"},
			mockSetup: func(svc *handlers.MockMovieUpdater) {
				svc.EXPECT().
					Update(gomock.Any(), movieID, gomock.Any(), (*int)(nil), (*services.Upload)(nil)).
					Return(nil, services.ErrMovieNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Movie not found.",
		},
		{
			name:   "rename onto taken title and year",
			id:     movieID.String(),
			fields: map[string]string{"year": "2021"},
			mockSetup: func(svc *handlers.MockMovieUpdater) {
				svc.EXPECT().
					Update(gomock.Any(), movieID, (*string)(nil), gomock.Any(), (*services.Upload)(nil)).
					Return(nil, services.ErrMovieAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "A movie with the same title and publishing year already exists.",
		},
		{
			name:   "service error",
			id:     movieID.String(),
			fields: map[string]string{"title": "Heat"},
			mockSetup: func(svc *handlers.MockMovieUpdater) {
				svc.EXPECT().
					Update(gomock.Any(), movieID, gomock.Any(), (*int)(nil), (*services.Upload)(nil)).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "An error occurred while updating the movie.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := handlers.NewMockMovieUpdater(ctrl)
			tt.mockSetup(mockSvc)

			handler := handlers.NewMovieUpdateHandler(mockSvc)

			body, contentType := multipartBody(t, tt.fields, tt.imageName, tt.imageType)
			req := httptest.NewRequest(http.MethodPatch, "/api/movies/update/"+tt.id, body)
			req.Header.Set("Content-Type", contentType)
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedError != "" {
				var resp handlers.MovieUpdateErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp handlers.MovieUpdateResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Movie updated successfully", resp.Message)
			assert.Equal(t, movieID, resp.Movie.MovieID)
		})
	}
}
