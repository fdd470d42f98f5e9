package domain

import "github.com/shopspring/decimal"

type OrderStatusType string

const (
	OrderStatusOpen      OrderStatusType = "OPEN"
	OrderStatusPaid      OrderStatusType = "PAID"
	OrderStatusCancelled OrderStatusType = "CANCELLED"
)

type CommentStatusType string

const (
	CommentStatusActive  CommentStatusType = "ACTIVE"
	CommentStatusQuote   CommentStatusType = "QUOTE"
	CommentStatusDeleted CommentStatusType = "DELETED"
)

type CommentActionType string

const (
	CommentActionReply CommentActionType = "Reply"
	CommentActionQuote CommentActionType = "Quote"
)

type PaymentMethodType string

// Токены способов оплаты в том виде, в котором их присылает SPA.
const (
	PaymentMethodTerminal PaymentMethodType = "IBox terminal"
	PaymentMethodCard     PaymentMethodType = "Visa"
	PaymentMethodBank     PaymentMethodType = "Bank"
)

type CardDetails struct {
	Number      string
	Holder      string
	MonthExpire int
	YearExpire  int
	CVV         string
}

type CardChargeArgs struct {
	OrderID int64
	Amount  decimal.Decimal
	Card    CardDetails
}

type CardChargeResult struct {
	TransactionID string
}
