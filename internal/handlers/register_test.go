package handlers_test

import (
	"bytes"
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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(svc *handlers.MockRegisterer)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success",
			body: `{"name":"alice","email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(svc *handlers.MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret123", "").
					Return(&models.UserDB{
						UserID: userID,
						Name:   "alice",
						Email:  "alice@example.com",
						Pic:    models.DefaultProfilePic,
					}, "signed-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed JSON",
			body:           `{"name":`,
			mockSetup:      func(svc *handlers.MockRegisterer) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Please fill all the fields",
		},
		{
			name:           "missing password",
			body:           `{"name":"alice","email":"alice@example.com"}`,
			mockSetup:      func(svc *handlers.MockRegisterer) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Please fill all the fields",
		},
		{
			name: "email taken",
			body: `{"name":"alice","email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(svc *handlers.MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret123", "").
					Return(nil, "", services.ErrEmailAlreadyExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "User already exist with this email",
		},
		{
			name: "service error",
			body: `{"name":"alice","email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(svc *handlers.MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret123", "").
					Return(nil, "", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := handlers.NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			handler := handlers.NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedError != "" {
				var resp handlers.RegisterErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp handlers.RegisterResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, userID, resp.ID)
			assert.Equal(t, "alice", resp.Name)
			assert.Equal(t, "alice@example.com", resp.Email)
			assert.Equal(t, models.DefaultProfilePic, resp.Pic)
			assert.Equal(t, "signed-token", resp.Token)
		})
	}
}
