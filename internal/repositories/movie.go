package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/akovalyov/movie-catalog/internal/logger"
	"github.com/akovalyov/movie-catalog/internal/models"
)

// MovieReadRepository provides read access to the movies table.
type MovieReadRepository struct {
	db *sqlx.DB
}

func NewMovieReadRepository(db *sqlx.DB) *MovieReadRepository {
	return &MovieReadRepository{db: db}
}

// GetByID returns the movie with the given id, or nil if none exists.
func (r *MovieReadRepository) GetByID(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error) {
	const query = `
		SELECT movie_id, title, publishing_year, poster, created_at, updated_at
		FROM movies
		WHERE movie_id = $1
		LIMIT 1
	`

	var movie models.MovieDB
	err := r.db.GetContext(ctx, &movie, query, movieID)

	logger.Log.Infow("movie query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{movieID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// GetByTitleAndYear returns the movie with the given title and publishing year,
// or nil if none exists.
func (r *MovieReadRepository) GetByTitleAndYear(ctx context.Context, title string, year int) (*models.MovieDB, error) {
	const query = `
		SELECT movie_id, title, publishing_year, poster, created_at, updated_at
		FROM movies
		WHERE title = $1 AND publishing_year = $2
		LIMIT 1
	`

	var movie models.MovieDB
	err := r.db.GetContext(ctx, &movie, query, title, year)

	logger.Log.Infow("movie query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, year},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// List returns a page of movies matching the filter.
func (r *MovieReadRepository) List(ctx context.Context, filter models.MovieFilter, offset, limit int) ([]models.MovieDB, error) {
	const query = `
		SELECT movie_id, title, publishing_year, poster, created_at, updated_at
		FROM movies
		WHERE ($1::VARCHAR IS NULL OR title ILIKE '%' || $1 || '%')
		  AND ($2::BIGINT IS NULL OR publishing_year = $2)
		ORDER BY created_at DESC
		OFFSET $3 LIMIT $4
	`

	movies := []models.MovieDB{}
	err := r.db.SelectContext(ctx, &movies, query, filter.Title, filter.Year, offset, limit)

	logger.Log.Infow("movie query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filter.Title, filter.Year, offset, limit},
		"count", len(movies),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return movies, nil
}

// Count returns the total number of movies matching the filter,
// independently of any page slice.
func (r *MovieReadRepository) Count(ctx context.Context, filter models.MovieFilter) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM movies
		WHERE ($1::VARCHAR IS NULL OR title ILIKE '%' || $1 || '%')
		  AND ($2::BIGINT IS NULL OR publishing_year = $2)
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, filter.Title, filter.Year)

	logger.Log.Infow("movie query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filter.Title, filter.Year},
		"result", total,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return total, nil
}

// MovieWriteRepository provides write access to the movies table.
type MovieWriteRepository struct {
	db *sqlx.DB
}

func NewMovieWriteRepository(db *sqlx.DB) *MovieWriteRepository {
	return &MovieWriteRepository{db: db}
}

// Save inserts a new movie and returns the stored record.
// Returns ErrAlreadyExists when the (title, publishing year) pair is taken.
func (r *MovieWriteRepository) Save(ctx context.Context, title string, year int, poster string) (*models.MovieDB, error) {
	const query = `
		INSERT INTO movies (title, publishing_year, poster)
		VALUES ($1, $2, $3)
		RETURNING movie_id, title, publishing_year, poster, created_at, updated_at
	`
	args := []any{title, year, poster}

	var movie models.MovieDB
	err := r.db.GetContext(ctx, &movie, query, args...)

	logger.Log.Infow("movie query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Update applies the provided fields to the movie with the given id.
// Nil fields retain their prior value. Returns nil if no movie matches.
func (r *MovieWriteRepository) Update(ctx context.Context, movieID uuid.UUID, title *string, year *int, poster *string) (*models.MovieDB, error) {
	const query = `
		UPDATE movies
		SET title = COALESCE($2, title),
		    publishing_year = COALESCE($3, publishing_year),
		    poster = COALESCE($4, poster),
		    updated_at = NOW()
		WHERE movie_id = $1
		RETURNING movie_id, title, publishing_year, poster, created_at, updated_at
	`
	args := []any{movieID, title, year, poster}

	var movie models.MovieDB
	err := r.db.GetContext(ctx, &movie, query, args...)

	logger.Log.Infow("movie query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}
