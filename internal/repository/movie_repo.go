package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/qs-lzh/movie-orders/internal/model"
)

type MovieRepo interface {
	WithTx(tx *gorm.DB) MovieRepo
	Create(ctx context.Context, movie *model.Movie) error
	GetByID(ctx context.Context, id uint) (*model.Movie, error)
	GetByCategory(ctx context.Context, category string) ([]model.Movie, error)
	ListAll(ctx context.Context) ([]model.Movie, error)
	Update(ctx context.Context, movie *model.Movie) error
	Delete(ctx context.Context, id uint) error
}

type movieRepoGorm struct {
	db *gorm.DB
}

var _ MovieRepo = (*movieRepoGorm)(nil)

func NewMovieRepoGorm(db *gorm.DB) *movieRepoGorm {
	return &movieRepoGorm{
		db: db,
	}
}

func (r *movieRepoGorm) WithTx(tx *gorm.DB) MovieRepo {
	return &movieRepoGorm{
		db: tx,
	}
}

func (r *movieRepoGorm) Create(ctx context.Context, movie *model.Movie) error {
	if err := gorm.G[model.Movie](r.db).Create(ctx, movie); err != nil {
		return err
	}
	return nil
}

func (r *movieRepoGorm) GetByID(ctx context.Context, id uint) (*model.Movie, error) {
	movie, err := gorm.G[model.Movie](r.db).Where(&model.Movie{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepoGorm) GetByCategory(ctx context.Context, category string) ([]model.Movie, error) {
	movies, err := gorm.G[model.Movie](r.db).Where(&model.Movie{Category: category}).Find(ctx)
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepoGorm) ListAll(ctx context.Context) ([]model.Movie, error) {
	movies, err := gorm.G[model.Movie](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepoGorm) Update(ctx context.Context, movie *model.Movie) error {
	if _, err := gorm.G[model.Movie](r.db).Where(&model.Movie{ID: movie.ID}).Updates(ctx, *movie); err != nil {
		return err
	}
	return nil
}

func (r *movieRepoGorm) Delete(ctx context.Context, id uint) error {
	if _, err := gorm.G[model.Movie](r.db).Where(&model.Movie{ID: id}).Delete(ctx); err != nil {
		return err
	}
	return nil
}
