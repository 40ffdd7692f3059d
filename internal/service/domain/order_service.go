package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/qs-lzh/movie-orders/internal/model"
	"github.com/qs-lzh/movie-orders/internal/repository"
	"github.com/qs-lzh/movie-orders/internal/service"
)

// OrderLineInput is one movie+quantity pair of an inbound order.
type OrderLineInput struct {
	MovieID  uint
	Quantity int
}

// OrderMovie is a materialized order line: the full movie record plus
// the ordered quantity.
type OrderMovie struct {
	Movie    model.Movie
	Quantity int
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID uint, lines []OrderLineInput) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetOrderMovies(ctx context.Context, orderID uint) ([]OrderMovie, error)
	UpdateOrder(ctx context.Context, orderID uint, lines []OrderLineInput) error
	DeleteOrder(ctx context.Context, orderID uint) error
}

type orderService struct {
	db        *gorm.DB
	repo      repository.OrderRepo
	userRepo  repository.UserRepo
	movieRepo repository.MovieRepo
}

var _ OrderService = (*orderService)(nil)

func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepo, userRepo repository.UserRepo, movieRepo repository.MovieRepo) *orderService {
	return &orderService{
		db:        db,
		repo:      orderRepo,
		userRepo:  userRepo,
		movieRepo: movieRepo,
	}
}

// CreateOrder writes the order header and all of its lines in one
// transaction; nothing is persisted when any line fails.
func (s *orderService) CreateOrder(ctx context.Context, userID uint, lines []OrderLineInput) (*model.Order, error) {
	if err := checkDuplicateLines(lines); err != nil {
		return nil, err
	}

	order := &model.Order{UserID: userID}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.WithTx(tx).GetByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrUserNotFound
			}
			return err
		}

		if err := s.repo.WithTx(tx).Create(ctx, order); err != nil {
			return err
		}
		return s.insertLines(ctx, tx, order.ID, lines)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *orderService) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// GetOrderMovies joins the order's lines against the movie table. A
// line whose movie has since been deleted is skipped rather than
// failing the whole lookup.
func (s *orderService) GetOrderMovies(ctx context.Context, orderID uint) ([]OrderMovie, error) {
	if _, err := s.GetOrderByID(ctx, orderID); err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLinesByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	result := make([]OrderMovie, 0, len(lines))
	for _, line := range lines {
		movie, err := s.movieRepo.GetByID(ctx, line.MovieID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, OrderMovie{
			Movie:    *movie,
			Quantity: line.Quantity,
		})
	}
	return result, nil
}

// UpdateOrder replaces the order's line set wholesale: every existing
// line is deleted, then the given lines are inserted. Quantities for
// movies absent from the new set are lost.
func (s *orderService) UpdateOrder(ctx context.Context, orderID uint, lines []OrderLineInput) error {
	if err := checkDuplicateLines(lines); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(ctx, orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNotFound
			}
			return err
		}

		if err := repo.DeleteLinesByOrderID(ctx, orderID); err != nil {
			return err
		}
		return s.insertLines(ctx, tx, orderID, lines)
	})
}

// DeleteOrder removes lines before the header so referential
// constraints hold at every point.
func (s *orderService) DeleteOrder(ctx context.Context, orderID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(ctx, orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNotFound
			}
			return err
		}

		if err := repo.DeleteLinesByOrderID(ctx, orderID); err != nil {
			return err
		}
		return repo.Delete(ctx, orderID)
	})
}

// insertLines writes one OrderLine per input pair, requiring every
// referenced movie to exist.
func (s *orderService) insertLines(ctx context.Context, tx *gorm.DB, orderID uint, lines []OrderLineInput) error {
	repo := s.repo.WithTx(tx)
	movieRepo := s.movieRepo.WithTx(tx)

	for _, line := range lines {
		if _, err := movieRepo.GetByID(ctx, line.MovieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrMovieNotFound
			}
			return err
		}
		orderLine := &model.OrderLine{
			OrderID:  orderID,
			MovieID:  line.MovieID,
			Quantity: line.Quantity,
		}
		if err := repo.CreateLine(ctx, orderLine); err != nil {
			return err
		}
	}
	return nil
}

func checkDuplicateLines(lines []OrderLineInput) error {
	seen := make(map[uint]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.MovieID]; ok {
			return service.ErrDuplicateLine
		}
		seen[line.MovieID] = struct{}{}
	}
	return nil
}
