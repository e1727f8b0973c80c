package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/akovalyov/movie-catalog/internal/logger"
	"github.com/akovalyov/movie-catalog/internal/models"
)

// UserSearcher defines the lookup needed for the user search.
type UserSearcher interface {
	Search(ctx context.Context, excludeID uuid.UUID, keyword string) ([]models.UserDB, error)
}

// UsersService handles user search for authenticated callers.
type UsersService struct {
	searcher UserSearcher
}

// NewUsersService creates a new UsersService instance.
func NewUsersService(searcher UserSearcher) *UsersService {
	return &UsersService{searcher: searcher}
}

// Search returns users matching keyword by name or email, always excluding
// the caller. An empty keyword returns everyone else.
func (svc *UsersService) Search(ctx context.Context, selfID uuid.UUID, keyword string) ([]models.UserDB, error) {
	users, err := svc.searcher.Search(ctx, selfID, keyword)
	if err != nil {
		logger.Log.Errorw("failed to search users", "err", err)
		return nil, err
	}
	return users, nil
}
