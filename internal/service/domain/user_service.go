package domain

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qs-lzh/movie-orders/internal/model"
	"github.com/qs-lzh/movie-orders/internal/repository"
	"github.com/qs-lzh/movie-orders/internal/service"
)

type UserService interface {
	Signup(ctx context.Context, username, password, email string, role model.UserRole) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, username, password, email string, role model.UserRole) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	db         *gorm.DB
	repo       repository.UserRepo
	bcryptCost int
}

var _ UserService = (*userService)(nil)

func NewUserService(db *gorm.DB, userRepo repository.UserRepo, bcryptCost int) *userService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		db:         db,
		repo:       userRepo,
		bcryptCost: bcryptCost,
	}
}

func (s *userService) Signup(ctx context.Context, username, password, email string, role model.UserRole) (*model.User, error) {
	if role == "" {
		role = model.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hash),
		Role:           role,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := s.checkUnique(ctx, repo, username, email, 0); err != nil {
			return err
		}
		return repo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, err
	}

	// The stored hash must verify; a matching username alone is not
	// enough.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, service.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, username, password, email string, role model.UserRole) (*model.User, error) {
	var updated *model.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNotFound
			}
			return err
		}

		if err := s.checkUnique(ctx, repo, username, email, id); err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
		if err != nil {
			return err
		}

		user.Username = username
		user.Email = email
		user.HashedPassword = string(hash)
		if role != "" {
			user.Role = role
		}

		if err := repo.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
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

// checkUnique rejects a username or email already taken by a user other
// than selfID.
func (s *userService) checkUnique(ctx context.Context, repo repository.UserRepo, username, email string, selfID uint) error {
	existing, err := repo.GetByUsername(ctx, username)
	if err == nil && existing.ID != selfID {
		return service.ErrDuplicateUser
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	existing, err = repo.GetByEmail(ctx, email)
	if err == nil && existing.ID != selfID {
		return service.ErrDuplicateUser
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
