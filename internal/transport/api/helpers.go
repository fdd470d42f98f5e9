package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка
// утверждения типа - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDVal, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDVal.(int64)
	if !ok {
		return 0
	}
	return userID
}

type OrderLineResponse struct {
	Game     string  `json:"game"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
	Sum      float64 `json:"sum"`
}

type OrderResponse struct {
	ID        int64                  `json:"id"`
	CreatedAt time.Time              `json:"createdAt"`
	Status    domain.OrderStatusType `json:"status"`
	Items     []OrderLineResponse    `json:"items"`
	Total     float64                `json:"total"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		items[i] = OrderLineResponse{
			Game:     line.GameAlias,
			Title:    line.GameName,
			Price:    line.Price.InexactFloat64(),
			Quantity: line.Quantity,
			Sum:      line.Price.Mul(decimal.NewFromInt32(line.Quantity)).InexactFloat64(),
		}
	}
	return OrderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Status:    order.Status,
		Items:     items,
		Total:     order.Total().InexactFloat64(),
	}
}
