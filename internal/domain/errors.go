package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	// ErrConcurrentModification конфликт оптимистичной блокировки: версия заказа в БД
	// ушла вперед. Клиент может безопасно повторить запрос.
	ErrConcurrentModification = errors.New("concurrent order modification")

	ErrOrderNotOpen      = errors.New("order is not open")
	ErrOrderEmpty        = errors.New("order has no lines")
	ErrOrderLineNotFound = errors.New("order line not found")
	ErrInvalidQuantity   = errors.New("quantity must be positive")

	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrCardDetailsRequired      = errors.New("card details required")

	ErrInvalidBanDuration    = errors.New("invalid ban duration")
	ErrUserBanned            = errors.New("user is banned")
	ErrCommentParentNotFound = errors.New("parent comment not found")
	ErrCommentAlreadyDeleted = errors.New("comment already deleted")
)

// PaymentFailedError ошибка исполнения платежа внешним шлюзом (отказ или таймаут).
// Заказ при этом остается открытым, оплату можно повторить тем же или другим способом.
type PaymentFailedError struct {
	Method PaymentMethodType
	Cause  error
}

func NewPaymentFailedError(method PaymentMethodType, cause error) error {
	return &PaymentFailedError{Method: method, Cause: cause}
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment via %s failed: %s", e.Method, e.Cause.Error())
}

func (e *PaymentFailedError) Unwrap() error {
	return e.Cause
}
