package repository

import (
	"context"

	"github.com/qs-lzh/movie-orders/internal/model"
	"gorm.io/gorm"
)

type OrderRepo interface {
	WithTx(tx *gorm.DB) OrderRepo
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uint) (*model.Order, error)
	GetByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Delete(ctx context.Context, id uint) error

	CreateLine(ctx context.Context, line *model.OrderLine) error
	GetLinesByOrderID(ctx context.Context, orderID uint) ([]model.OrderLine, error)
	DeleteLinesByOrderID(ctx context.Context, orderID uint) error
}

type orderRepoGorm struct {
	db *gorm.DB
}

var _ OrderRepo = (*orderRepoGorm)(nil)

func NewOrderRepoGorm(db *gorm.DB) *orderRepoGorm {
	return &orderRepoGorm{
		db: db,
	}
}

func (r *orderRepoGorm) WithTx(tx *gorm.DB) OrderRepo {
	return &orderRepoGorm{
		db: tx,
	}
}

func (r *orderRepoGorm) Create(ctx context.Context, order *model.Order) error {
	if err := gorm.G[model.Order](r.db).Create(ctx, order); err != nil {
		return err
	}
	return nil
}

func (r *orderRepoGorm) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	order, err := gorm.G[model.Order](r.db).Where(&model.Order{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepoGorm) GetByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	orders, err := gorm.G[model.Order](r.db).Where(&model.Order{UserID: userID}).Find(ctx)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepoGorm) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := gorm.G[model.Order](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepoGorm) Delete(ctx context.Context, id uint) error {
	if _, err := gorm.G[model.Order](r.db).Where(&model.Order{ID: id}).Delete(ctx); err != nil {
		return err
	}
	return nil
}

func (r *orderRepoGorm) CreateLine(ctx context.Context, line *model.OrderLine) error {
	if err := gorm.G[model.OrderLine](r.db).Create(ctx, line); err != nil {
		return err
	}
	return nil
}

func (r *orderRepoGorm) GetLinesByOrderID(ctx context.Context, orderID uint) ([]model.OrderLine, error) {
	lines, err := gorm.G[model.OrderLine](r.db).Where(&model.OrderLine{OrderID: orderID}).Find(ctx)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *orderRepoGorm) DeleteLinesByOrderID(ctx context.Context, orderID uint) error {
	if _, err := gorm.G[model.OrderLine](r.db).Where(&model.OrderLine{OrderID: orderID}).Delete(ctx); err != nil {
		return err
	}
	return nil
}
