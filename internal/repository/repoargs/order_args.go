package repoargs

import (
	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderLineCreate struct {
	OrderID  int64
	GameID   int64
	Price    decimal.Decimal
	Quantity int32
}

// OrderStatusUpdate аргументы смены статуса заказа. Version должен совпадать с текущей
// версией строки, иначе репозиторий вернет domain.ErrConcurrentModification.
type OrderStatusUpdate struct {
	OrderID int64
	Status  domain.OrderStatusType
	Version int32
}
