package gateway

import "fmt"

// StatusCodeError неожиданный http статус от платежного шлюза.
type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) error {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("gateway responded with status code %d", e.Code)
}

// DeclinedError шлюз обработал запрос, но отклонил платеж.
type DeclinedError struct {
	Reason string
}

func NewDeclinedError(reason string) error {
	return &DeclinedError{Reason: reason}
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("charge declined: %s", e.Reason)
}
