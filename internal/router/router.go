package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/qs-lzh/movie-orders/internal/app"
	"github.com/qs-lzh/movie-orders/internal/handler"
	"github.com/qs-lzh/movie-orders/internal/middleware"
)

// NewRouter wires every route. Signup and login are open; every
// resource route requires a bearer token.
func NewRouter(a *app.App) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Timeout(a.Config.StorageTimeout))

	userHandler := handler.NewUserHandler(a)
	movieHandler := handler.NewMovieHandler(a)
	orderHandler := handler.NewOrderHandler(a)

	r.POST("/signup", userHandler.HandleSignup)
	r.POST("/login", userHandler.HandleLogin)

	authRequired := middleware.Auth(a.TokenManager)

	users := r.Group("/users", authRequired)
	{
		users.GET("/:id", userHandler.HandleGetUser)
		users.PUT("/:id", userHandler.HandleUpdateUser)
		users.DELETE("/:id", userHandler.HandleDeleteUser)
	}

	movies := r.Group("/movies", authRequired)
	{
		movies.GET("", movieHandler.HandleGetMovies)
		movies.GET("/:id", movieHandler.HandleGetMovieByID)
		movies.GET("/category/:category", movieHandler.HandleGetMoviesByCategory)
		movies.POST("", movieHandler.HandleCreateMovie)
		movies.PUT("/:id", movieHandler.HandleUpdateMovie)
		movies.DELETE("/:id", movieHandler.HandleDeleteMovie)
	}

	orders := r.Group("/orders", authRequired)
	{
		orders.GET("", orderHandler.HandleGetOrders)
		orders.GET("/:id", orderHandler.HandleGetOrderByID)
		orders.GET("/movies/:id", orderHandler.HandleGetOrderMovies)
		orders.POST("/:user_id", orderHandler.HandleCreateOrder)
		orders.PUT("/:id", orderHandler.HandleUpdateOrder)
		orders.DELETE("/:id", orderHandler.HandleDeleteOrder)
	}

	return r
}
