package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/akovalyov/movie-catalog/internal/jwt"
	"github.com/akovalyov/movie-catalog/internal/models"
	"github.com/akovalyov/movie-catalog/internal/repositories"
	"github.com/akovalyov/movie-catalog/internal/services"
)

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	tokenSvc := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Minute))

	svc := services.NewAuthService(mockReader, mockWriter, tokenSvc, nil)

	userID := uuid.New()
	ctx := context.Background()

	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "alice@example.com").
		Return(nil, nil)

	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", "alice@example.com", gomock.Any(), models.DefaultProfilePic).
		DoAndReturn(func(_ context.Context, name, email, passwordHash, pic string) (*models.UserDB, error) {
			// Stored hash must verify against the original password
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret123")))
			return &models.UserDB{
				UserID:       userID,
				Name:         name,
				Email:        email,
				PasswordHash: passwordHash,
				Pic:          pic,
			}, nil
		})

	user, token, err := svc.Register(ctx, "alice", "alice@example.com", "secret123", "")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, models.DefaultProfilePic, user.Pic)

	// The returned token verifies to the new user's id
	claims, err := tokenSvc.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestAuthService_Register_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		mockSetup func(reader *services.MockUserReader, writer *services.MockUserWriter)
		wantErr   error
	}{
		{
			name: "email already exists",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "bob@example.com").
					Return(&models.UserDB{UserID: uuid.New()}, nil)
			},
			wantErr: services.ErrEmailAlreadyExists,
		},
		{
			name: "reader error",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "bob@example.com").
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name: "concurrent duplicate surfaces as conflict",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "bob@example.com").
					Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), "bob", "bob@example.com", gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: duplicate key", repositories.ErrAlreadyExists))
			},
			wantErr: services.ErrEmailAlreadyExists,
		},
		{
			name: "writer error",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "bob@example.com").
					Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), "bob", "bob@example.com", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("save error"))
			},
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			tt.mockSetup(mockReader, mockWriter)

			user, token, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass123", "")
			assert.Nil(t, user)
			assert.Empty(t, token)
			assert.EqualError(t, err, tt.wantErr.Error())
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &models.UserDB{
		UserID:       userID,
		Name:         "carol",
		Email:        "carol@example.com",
		PasswordHash: string(hash),
		Pic:          models.DefaultProfilePic,
	}

	tests := []struct {
		name      string
		password  string
		mockSetup func(reader *services.MockUserReader, jwtGen *services.MockJWTGenerator)
		wantErr   error
		wantToken string
	}{
		{
			name:     "success",
			password: "correct-password",
			mockSetup: func(reader *services.MockUserReader, jwtGen *services.MockJWTGenerator) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "carol@example.com").
					Return(stored, nil)
				jwtGen.EXPECT().
					Generate(gomock.Any(), userID).
					Return("signed-token", nil)
			},
			wantToken: "signed-token",
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			mockSetup: func(reader *services.MockUserReader, jwtGen *services.MockJWTGenerator) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "carol@example.com").
					Return(stored, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "correct-password",
			mockSetup: func(reader *services.MockUserReader, jwtGen *services.MockJWTGenerator) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "carol@example.com").
					Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name:     "reader error",
			password: "correct-password",
			mockSetup: func(reader *services.MockUserReader, jwtGen *services.MockJWTGenerator) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "carol@example.com").
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			tt.mockSetup(mockReader, mockJWT)

			user, token, err := svc.Login(context.Background(), "carol@example.com", tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, user.UserID)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
