package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs-lzh/movie-orders/internal/model"
	"github.com/qs-lzh/movie-orders/internal/repository"
	"github.com/qs-lzh/movie-orders/internal/service"
)

func newMovieService(t *testing.T) MovieService {
	t.Helper()
	db := setupDB(t)
	return NewMovieService(db, repository.NewMovieRepoGorm(db))
}

func testMovie() *model.Movie {
	return &model.Movie{
		Title:    "Test Title",
		Overview: "An overview long enough to pass",
		Year:     2022,
		Rating:   9.8,
		Category: "Action Movies",
	}
}

func TestCreateAndGetMovie(t *testing.T) {
	s := newMovieService(t)
	ctx := context.Background()

	movie := testMovie()
	require.NoError(t, s.CreateMovie(ctx, movie))
	require.NotZero(t, movie.ID)

	got, err := s.GetMovieByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, movie.Title, got.Title)
	assert.Equal(t, movie.Overview, got.Overview)
	assert.Equal(t, movie.Year, got.Year)
	assert.Equal(t, movie.Rating, got.Rating)
	assert.Equal(t, movie.Category, got.Category)
}

func TestGetMovieByIDNotFound(t *testing.T) {
	s := newMovieService(t)

	_, err := s.GetMovieByID(context.Background(), 1000)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetMoviesByCategory(t *testing.T) {
	s := newMovieService(t)
	ctx := context.Background()

	action := testMovie()
	require.NoError(t, s.CreateMovie(ctx, action))

	drama := testMovie()
	drama.Title = "Other Title"
	drama.Category = "Drama Movies"
	require.NoError(t, s.CreateMovie(ctx, drama))

	got, err := s.GetMoviesByCategory(ctx, "Action Movies")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, action.ID, got[0].ID)

	empty, err := s.GetMoviesByCategory(ctx, "No Such Thing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateMovie(t *testing.T) {
	s := newMovieService(t)
	ctx := context.Background()

	movie := testMovie()
	require.NoError(t, s.CreateMovie(ctx, movie))

	updated := testMovie()
	updated.Title = "New Title"
	require.NoError(t, s.UpdateMovie(ctx, movie.ID, updated))

	got, err := s.GetMovieByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", got.Title)
}

func TestUpdateMovieNotFound(t *testing.T) {
	s := newMovieService(t)

	err := s.UpdateMovie(context.Background(), 1000, testMovie())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteMovie(t *testing.T) {
	s := newMovieService(t)
	ctx := context.Background()

	movie := testMovie()
	require.NoError(t, s.CreateMovie(ctx, movie))

	require.NoError(t, s.DeleteMovie(ctx, movie.ID))

	_, err := s.GetMovieByID(ctx, movie.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteMovieNotFound(t *testing.T) {
	s := newMovieService(t)

	err := s.DeleteMovie(context.Background(), 1000)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
