package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qs-lzh/movie-orders/internal/app"
	"github.com/qs-lzh/movie-orders/internal/service"
	"github.com/qs-lzh/movie-orders/internal/service/domain"
)

type OrderHandler struct {
	app *app.App
}

func NewOrderHandler(app *app.App) *OrderHandler {
	return &OrderHandler{
		app: app,
	}
}

type OrderLineRequest struct {
	MovieID  uint `json:"movie_id" binding:"required,min=1"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type OrderMovieResponse struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Overview string  `json:"overview"`
	Year     int     `json:"year"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

func (h *OrderHandler) bindLines(ctx *gin.Context) ([]domain.OrderLineInput, bool) {
	var reqs []OrderLineRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		bindError(ctx, err)
		return nil, false
	}
	lines := make([]domain.OrderLineInput, 0, len(reqs))
	for _, req := range reqs {
		lines = append(lines, domain.OrderLineInput{
			MovieID:  req.MovieID,
			Quantity: req.Quantity,
		})
	}
	return lines, true
}

func (h *OrderHandler) HandleGetOrders(ctx *gin.Context) {
	orders, err := h.app.OrderService.GetAllOrders(ctx.Request.Context())
	if err != nil {
		h.app.Logger.Error("list orders failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) HandleGetOrderByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	order, err := h.app.OrderService.GetOrderByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.app.Logger.Error("get order failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, order)
}

func (h *OrderHandler) HandleGetOrderMovies(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	orderMovies, err := h.app.OrderService.GetOrderMovies(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.app.Logger.Error("get order movies failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result := make([]OrderMovieResponse, 0, len(orderMovies))
	for _, om := range orderMovies {
		result = append(result, OrderMovieResponse{
			ID:       om.Movie.ID,
			Title:    om.Movie.Title,
			Overview: om.Movie.Overview,
			Year:     om.Movie.Year,
			Rating:   om.Movie.Rating,
			Category: om.Movie.Category,
			Quantity: om.Quantity,
		})
	}
	ctx.JSON(http.StatusOK, result)
}

func (h *OrderHandler) HandleCreateOrder(ctx *gin.Context) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}
	lines, ok := h.bindLines(ctx)
	if !ok {
		return
	}

	order, err := h.app.OrderService.CreateOrder(ctx.Request.Context(), userID, lines)
	if err != nil {
		h.orderError(ctx, err, "create order failed")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Order created",
		"order":   order,
	})
}

func (h *OrderHandler) HandleUpdateOrder(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	lines, ok := h.bindLines(ctx)
	if !ok {
		return
	}

	if err := h.app.OrderService.UpdateOrder(ctx.Request.Context(), id, lines); err != nil {
		h.orderError(ctx, err, "update order failed")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Modified order"})
}

func (h *OrderHandler) HandleDeleteOrder(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.app.OrderService.DeleteOrder(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.app.Logger.Error("delete order failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Order removed"})
}

func (h *OrderHandler) orderError(ctx *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, service.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, service.ErrMovieNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
	case errors.Is(err, service.ErrDuplicateLine):
		fieldFailure(ctx, "movie_id", "unique per order")
	default:
		h.app.Logger.Error(logMsg, zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
