package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/qs-lzh/movie-orders/internal/model"
	"github.com/qs-lzh/movie-orders/internal/repository"
	"github.com/qs-lzh/movie-orders/internal/service"
)

func newUserService(t *testing.T) UserService {
	t.Helper()
	db := setupDB(t)
	return NewUserService(db, repository.NewUserRepoGorm(db), bcrypt.MinCost)
}

func TestSignup(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	user, err := s.Signup(ctx, "alice", "secret123", "a@x.com", "")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.HashedPassword)
}

func TestSignupDuplicateUsername(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "alice", "secret123", "a@x.com", "")
	require.NoError(t, err)

	_, err = s.Signup(ctx, "alice", "other1234", "b@x.com", "")
	assert.ErrorIs(t, err, service.ErrDuplicateUser)
}

func TestSignupDuplicateEmail(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "alice", "secret123", "a@x.com", "")
	require.NoError(t, err)

	_, err = s.Signup(ctx, "bob", "other1234", "a@x.com", "")
	assert.ErrorIs(t, err, service.ErrDuplicateUser)
}

func TestAuthenticate(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	created, err := s.Signup(ctx, "alice", "secret123", "a@x.com", "")
	require.NoError(t, err)

	user, err := s.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

// A known username with the wrong password must be rejected. Existence
// of the user is not enough to authenticate.
func TestAuthenticateWrongPassword(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "alice", "secret123", "a@x.com", "")
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	s := newUserService(t)

	_, err := s.Authenticate(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUpdateUser(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	user, err := s.Signup(ctx, "alice", "secret123", "a@x.com", "")
	require.NoError(t, err)

	updated, err := s.UpdateUser(ctx, user.ID, "alice2", "newsecret", "a2@x.com", model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "a2@x.com", updated.Email)
	assert.Equal(t, model.RoleAdmin, updated.Role)

	_, err = s.Authenticate(ctx, "alice2", "newsecret")
	assert.NoError(t, err)
}

func TestUpdateUserNotFound(t *testing.T) {
	s := newUserService(t)

	_, err := s.UpdateUser(context.Background(), 1000, "ghost", "secret123", "g@x.com", "")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateUserDuplicate(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "alice", "secret123", "a@x.com", "")
	require.NoError(t, err)
	bob, err := s.Signup(ctx, "bob", "secret123", "b@x.com", "")
	require.NoError(t, err)

	_, err = s.UpdateUser(ctx, bob.ID, "alice", "secret123", "b@x.com", "")
	assert.ErrorIs(t, err, service.ErrDuplicateUser)
}

func TestDeleteUser(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	user, err := s.Signup(ctx, "alice", "secret123", "a@x.com", "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err = s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	err = s.DeleteUser(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
