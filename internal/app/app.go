package app

import (
	"github.com/qs-lzh/movie-orders/config"
	"github.com/qs-lzh/movie-orders/internal/auth"
	"github.com/qs-lzh/movie-orders/internal/model"
	"github.com/qs-lzh/movie-orders/internal/repository"
	"github.com/qs-lzh/movie-orders/internal/service/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Logger *zap.Logger

	TokenManager *auth.TokenManager

	UserRepo  repository.UserRepo
	MovieRepo repository.MovieRepo
	OrderRepo repository.OrderRepo

	UserService  domain.UserService
	MovieService domain.MovieService
	OrderService domain.OrderService
}

func New(config *config.Config, db *gorm.DB, logger *zap.Logger) *App {
	userRepo := repository.NewUserRepoGorm(db)
	movieRepo := repository.NewMovieRepoGorm(db)
	orderRepo := repository.NewOrderRepoGorm(db)

	tokenManager := auth.NewTokenManager(config.JWTSecret, config.TokenTTL)

	userService := domain.NewUserService(db, userRepo, config.BcryptCost)
	movieService := domain.NewMovieService(db, movieRepo)
	orderService := domain.NewOrderService(db, orderRepo, userRepo, movieRepo)

	return &App{
		Config:       config,
		DB:           db,
		Logger:       logger,
		TokenManager: tokenManager,
		UserRepo:     userRepo,
		MovieRepo:    movieRepo,
		OrderRepo:    orderRepo,
		UserService:  userService,
		MovieService: movieService,
		OrderService: orderService,
	}
}

func (app *App) Migrate() error {
	return app.DB.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Order{},
		&model.OrderLine{},
	)
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
