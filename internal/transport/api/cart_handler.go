package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	orderSvs OrderServicer
}

func NewCartHandler(orderSvs OrderServicer) *CartHandler {
	return &CartHandler{
		orderSvs: orderSvs,
	}
}

// Show GET RouteGroup + CartRoute. Возвращает корзину текущего юзера, при отсутствии -
// создает пустую.
func (h *CartHandler) Show(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.orderSvs.GetOrCreateOpenOrder(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

type AddToCartParams struct {
	Quantity int32 `json:"quantity"`
}

// AddGame POST RouteGroup + GameCartRoute. Кладет игру в корзину. Повторный запрос
// с той же игрой суммирует количество в существующей позиции.
func (h *CartHandler) AddGame(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	// тело опционально, без него кладем одну копию игры.
	params := AddToCartParams{Quantity: 1}
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
			return
		}
		if params.Quantity == 0 {
			params.Quantity = 1
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.orderSvs.AddLine(reqCtx, currentUserID, c.Param("alias"), params.Quantity)
	if err != nil {
		h.abortWithCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

// RemoveGame DELETE RouteGroup + GameCartRoute. Убирает позицию игры из корзины целиком.
func (h *CartHandler) RemoveGame(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.orderSvs.RemoveLine(reqCtx, currentUserID, c.Param("alias"))
	if err != nil {
		h.abortWithCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Cancel DELETE RouteGroup + CartRoute. Отменяет открытый заказ юзера.
func (h *CartHandler) Cancel(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.orderSvs.Cancel(reqCtx, currentUserID)
	if err != nil {
		h.abortWithCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

// abortWithCartError транслирует доменные ошибки заказа в http статусы.
func (h *CartHandler) abortWithCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrOrderLineNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.AbortWithStatus(http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrOrderNotOpen), errors.Is(err, domain.ErrConcurrentModification):
		c.AbortWithStatus(http.StatusConflict)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
