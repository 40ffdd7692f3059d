package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qs-lzh/movie-orders/internal/model"
	"github.com/qs-lzh/movie-orders/internal/repository"
	"github.com/qs-lzh/movie-orders/internal/service"
)

type orderFixture struct {
	db     *gorm.DB
	orders OrderService
	movies MovieService
	users  UserService

	user   *model.User
	movieA *model.Movie
	movieB *model.Movie
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := setupDB(t)

	userRepo := repository.NewUserRepoGorm(db)
	movieRepo := repository.NewMovieRepoGorm(db)
	orderRepo := repository.NewOrderRepoGorm(db)

	f := &orderFixture{
		db:     db,
		orders: NewOrderService(db, orderRepo, userRepo, movieRepo),
		movies: NewMovieService(db, movieRepo),
		users:  NewUserService(db, userRepo, bcrypt.MinCost),
	}

	ctx := context.Background()

	user, err := f.users.Signup(ctx, "alice", "secret123", "a@x.com", "")
	require.NoError(t, err)
	f.user = user

	f.movieA = testMovie()
	require.NoError(t, f.movies.CreateMovie(ctx, f.movieA))

	f.movieB = testMovie()
	f.movieB.Title = "Other Title"
	f.movieB.Category = "Drama Movies"
	require.NoError(t, f.movies.CreateMovie(ctx, f.movieB))

	return f
}

func (f *orderFixture) countRows(t *testing.T) (orders int64, lines int64) {
	t.Helper()
	require.NoError(t, f.db.Model(&model.Order{}).Count(&orders).Error)
	require.NoError(t, f.db.Model(&model.OrderLine{}).Count(&lines).Error)
	return orders, lines
}

func TestCreateOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.CreateOrder(ctx, f.user.ID, []OrderLineInput{
		{MovieID: f.movieA.ID, Quantity: 2},
		{MovieID: f.movieB.ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	assert.Equal(t, f.user.ID, order.UserID)
	assert.False(t, order.DateCreated.IsZero())

	got, err := f.orders.GetOrderMovies(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestCreateOrderUnknownUserNoPartialWrites(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.CreateOrder(context.Background(), 1000, []OrderLineInput{
		{MovieID: f.movieA.ID, Quantity: 1},
	})
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	orders, lines := f.countRows(t)
	assert.Zero(t, orders)
	assert.Zero(t, lines)
}

func TestCreateOrderUnknownMovieRollsBack(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.CreateOrder(context.Background(), f.user.ID, []OrderLineInput{
		{MovieID: f.movieA.ID, Quantity: 1},
		{MovieID: 1000, Quantity: 1},
	})
	assert.ErrorIs(t, err, service.ErrMovieNotFound)

	orders, lines := f.countRows(t)
	assert.Zero(t, orders)
	assert.Zero(t, lines)
}

func TestCreateOrderDuplicateLine(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.CreateOrder(context.Background(), f.user.ID, []OrderLineInput{
		{MovieID: f.movieA.ID, Quantity: 1},
		{MovieID: f.movieA.ID, Quantity: 3},
	})
	assert.ErrorIs(t, err, service.ErrDuplicateLine)

	orders, lines := f.countRows(t)
	assert.Zero(t, orders)
	assert.Zero(t, lines)
}

func TestUpdateOrderReplacesAllLines(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.CreateOrder(ctx, f.user.ID, []OrderLineInput{
		{MovieID: f.movieA.ID, Quantity: 2},
	})
	require.NoError(t, err)

	err = f.orders.UpdateOrder(ctx, order.ID, []OrderLineInput{
		{MovieID: f.movieB.ID, Quantity: 5},
	})
	require.NoError(t, err)

	got, err := f.orders.GetOrderMovies(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.movieB.ID, got[0].Movie.ID)
	assert.Equal(t, 5, got[0].Quantity)
}

func TestUpdateOrderNotFound(t *testing.T) {
	f := newOrderFixture(t)

	err := f.orders.UpdateOrder(context.Background(), 1000, []OrderLineInput{
		{MovieID: f.movieA.ID, Quantity: 1},
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetOrderMoviesSkipsOrphanedLines(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.CreateOrder(ctx, f.user.ID, []OrderLineInput{
		{MovieID: f.movieA.ID, Quantity: 1},
		{MovieID: f.movieB.ID, Quantity: 2},
	})
	require.NoError(t, err)

	// Deleting a movie afterwards orphans its line; reads skip it.
	require.NoError(t, f.movies.DeleteMovie(ctx, f.movieA.ID))

	got, err := f.orders.GetOrderMovies(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.movieB.ID, got[0].Movie.ID)
}

func TestGetOrderMoviesNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.GetOrderMovies(context.Background(), 1000)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteOrderRemovesLines(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.CreateOrder(ctx, f.user.ID, []OrderLineInput{
		{MovieID: f.movieA.ID, Quantity: 1},
	})
	require.NoError(t, err)

	require.NoError(t, f.orders.DeleteOrder(ctx, order.ID))

	_, err = f.orders.GetOrderByID(ctx, order.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	orders, lines := f.countRows(t)
	assert.Zero(t, orders)
	assert.Zero(t, lines)
}

func TestDeleteOrderNotFound(t *testing.T) {
	f := newOrderFixture(t)

	err := f.orders.DeleteOrder(context.Background(), 1000)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
