package domain

import (
	"context"
	"errors"

	"github.com/qs-lzh/movie-orders/internal/model"
	"github.com/qs-lzh/movie-orders/internal/repository"
	"github.com/qs-lzh/movie-orders/internal/service"
	"gorm.io/gorm"
)

type MovieService interface {
	CreateMovie(ctx context.Context, movie *model.Movie) error
	GetMovieByID(ctx context.Context, id uint) (*model.Movie, error)
	GetMoviesByCategory(ctx context.Context, category string) ([]model.Movie, error)
	GetAllMovies(ctx context.Context) ([]model.Movie, error)
	UpdateMovie(ctx context.Context, id uint, movie *model.Movie) error
	DeleteMovie(ctx context.Context, id uint) error
}

type movieService struct {
	db   *gorm.DB
	repo repository.MovieRepo
}

var _ MovieService = (*movieService)(nil)

func NewMovieService(db *gorm.DB, movieRepo repository.MovieRepo) *movieService {
	return &movieService{
		db:   db,
		repo: movieRepo,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, movie *model.Movie) error {
	if err := s.repo.Create(ctx, movie); err != nil {
		return err
	}
	return nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*model.Movie, error) {
	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) GetMoviesByCategory(ctx context.Context, category string) ([]model.Movie, error) {
	movies, err := s.repo.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]model.Movie, error) {
	movies, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, movie *model.Movie) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNotFound
			}
			return err
		}
		movie.ID = id
		return repo.Update(ctx, movie)
	})
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNotFound
			}
			return err
		}
		return repo.Delete(ctx, id)
	})
}
