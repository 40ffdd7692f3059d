package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qs-lzh/movie-orders/internal/app"
	"github.com/qs-lzh/movie-orders/internal/model"
	"github.com/qs-lzh/movie-orders/internal/service"
)

type MovieHandler struct {
	app *app.App
}

func NewMovieHandler(app *app.App) *MovieHandler {
	return &MovieHandler{
		app: app,
	}
}

type MovieRequest struct {
	Title    string  `json:"title" binding:"required,min=5,max=15"`
	Overview string  `json:"overview" binding:"required,min=15,max=50"`
	Year     int     `json:"year" binding:"required,min=1"`
	Rating   float64 `json:"rating" binding:"required,min=1,max=10"`
	Category string  `json:"category" binding:"required,min=5,max=15"`
}

// bindMovie applies the binding tags plus the year cutoff, which is
// configuration rather than a static tag.
func (h *MovieHandler) bindMovie(ctx *gin.Context) (*model.Movie, bool) {
	var req MovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return nil, false
	}
	if req.Year > h.app.Config.MovieYearCutoff {
		fieldFailure(ctx, "year", fmt.Sprintf("max=%d", h.app.Config.MovieYearCutoff))
		return nil, false
	}
	return &model.Movie{
		Title:    req.Title,
		Overview: req.Overview,
		Year:     req.Year,
		Rating:   req.Rating,
		Category: req.Category,
	}, true
}

func (h *MovieHandler) HandleGetMovies(ctx *gin.Context) {
	movies, err := h.app.MovieService.GetAllMovies(ctx.Request.Context())
	if err != nil {
		h.app.Logger.Error("list movies failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) HandleGetMovieByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	movie, err := h.app.MovieService.GetMovieByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		h.app.Logger.Error("get movie failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) HandleGetMoviesByCategory(ctx *gin.Context) {
	category := ctx.Param("category")

	movies, err := h.app.MovieService.GetMoviesByCategory(ctx.Request.Context(), category)
	if err != nil {
		h.app.Logger.Error("list movies by category failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if len(movies) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	ctx.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) HandleCreateMovie(ctx *gin.Context) {
	movie, ok := h.bindMovie(ctx)
	if !ok {
		return
	}

	if err := h.app.MovieService.CreateMovie(ctx.Request.Context(), movie); err != nil {
		h.app.Logger.Error("create movie failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) HandleUpdateMovie(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	movie, ok := h.bindMovie(ctx)
	if !ok {
		return
	}

	if err := h.app.MovieService.UpdateMovie(ctx.Request.Context(), id, movie); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		h.app.Logger.Error("update movie failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Modified movie"})
}

func (h *MovieHandler) HandleDeleteMovie(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.app.MovieService.DeleteMovie(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		h.app.Logger.Error("delete movie failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Movie removed"})
}
