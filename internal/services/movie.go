package services

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/akovalyov/movie-catalog/internal/logger"
	"github.com/akovalyov/movie-catalog/internal/models"
	"github.com/akovalyov/movie-catalog/internal/repositories"
)

// Error variables
var (
	ErrMovieAlreadyExists = errors.New("a movie with the same title and publishing year already exists")
	ErrMovieNotFound      = errors.New("movie not found")
)

// MovieReader defines read-only operations for movies.
type MovieReader interface {
	GetByID(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error)
	GetByTitleAndYear(ctx context.Context, title string, year int) (*models.MovieDB, error)
	List(ctx context.Context, filter models.MovieFilter, offset, limit int) ([]models.MovieDB, error)
	Count(ctx context.Context, filter models.MovieFilter) (int64, error)
}

// MovieWriter defines write operations for movies.
type MovieWriter interface {
	Save(ctx context.Context, title string, year int, poster string) (*models.MovieDB, error)
	Update(ctx context.Context, movieID uuid.UUID, title *string, year *int, poster *string) (*models.MovieDB, error)
}

// FileSaver stores an uploaded file and returns its public path.
type FileSaver interface {
	Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error)
}

// Upload carries an uploaded poster image into the service.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// MovieService handles the movie catalog operations.
type MovieService struct {
	reader      MovieReader
	writer      MovieWriter
	files       FileSaver
	kafkaWriter KafkaWriter
}

// NewMovieService creates a new MovieService instance.
func NewMovieService(reader MovieReader, writer MovieWriter, files FileSaver, kafkaWriter KafkaWriter) *MovieService {
	return &MovieService{
		reader:      reader,
		writer:      writer,
		files:       files,
		kafkaWriter: kafkaWriter,
	}
}

// List returns one page of movies matching the filter plus the total match
// count, computed independently of the page slice.
func (svc *MovieService) List(ctx context.Context, filter models.MovieFilter, page, limit int) ([]models.MovieDB, int64, error) {
	offset := (page - 1) * limit

	movies, err := svc.reader.List(ctx, filter, offset, limit)
	if err != nil {
		logger.Log.Errorw("failed to list movies", "err", err)
		return nil, 0, err
	}

	total, err := svc.reader.Count(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to count movies", "err", err)
		return nil, 0, err
	}

	return movies, total, nil
}

// Get returns the movie with the given id.
func (svc *MovieService) Get(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error) {
	movie, err := svc.reader.GetByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movieID", movieID, "err", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// Create stores the uploaded poster and persists a new movie referencing it.
// The duplicate pre-check is a fast path; the unique index on
// (title, publishing_year) is the source of truth.
func (svc *MovieService) Create(ctx context.Context, title string, year int, upload Upload) (*models.MovieDB, error) {
	existing, err := svc.reader.GetByTitleAndYear(ctx, title, year)
	if err != nil {
		logger.Log.Errorw("failed to check movie exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("movie already exists", "title", title, "year", year)
		return nil, ErrMovieAlreadyExists
	}

	poster, err := svc.files.Save(ctx, upload.Filename, upload.ContentType, upload.Content)
	if err != nil {
		logger.Log.Errorw("failed to store poster", "err", err)
		return nil, err
	}

	movie, err := svc.writer.Save(ctx, title, year, poster)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			logger.Log.Errorw("movie already exists", "title", title, "year", year)
			return nil, ErrMovieAlreadyExists
		}
		logger.Log.Errorw("failed to save movie", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, ActionMovieCreated, movie.MovieID.String())

	return movie, nil
}

// Update applies the provided fields to an existing movie. Nil fields retain
// their prior value; a new upload replaces the poster.
func (svc *MovieService) Update(ctx context.Context, movieID uuid.UUID, title *string, year *int, upload *Upload) (*models.MovieDB, error) {
	existing, err := svc.reader.GetByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movieID", movieID, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrMovieNotFound
	}

	var poster *string
	if upload != nil {
		path, err := svc.files.Save(ctx, upload.Filename, upload.ContentType, upload.Content)
		if err != nil {
			logger.Log.Errorw("failed to store poster", "err", err)
			return nil, err
		}
		poster = &path
	}

	movie, err := svc.writer.Update(ctx, movieID, title, year, poster)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			logger.Log.Errorw("movie already exists", "movieID", movieID)
			return nil, ErrMovieAlreadyExists
		}
		logger.Log.Errorw("failed to update movie", "movieID", movieID, "err", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, ActionMovieUpdated, movie.MovieID.String())

	return movie, nil
}
