package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/service"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paySvs PaymentServicer
}

func NewPaymentHandler(paySvs PaymentServicer) *PaymentHandler {
	return &PaymentHandler{
		paySvs: paySvs,
	}
}

type PaymentMethodResponse struct {
	Method      domain.PaymentMethodType `json:"method"`
	Description string                   `json:"description"`
}

type CheckoutResponse struct {
	Order          OrderResponse           `json:"order"`
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods"`
}

// Checkout GET RouteGroup + CheckoutRoute. Сводка открытого заказа и каталог способов
// оплаты для страницы оформления.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.paySvs.OpenOrder(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	methods := h.paySvs.Methods()
	methodsResp := make([]PaymentMethodResponse, len(methods))
	for i, m := range methods {
		methodsResp[i] = PaymentMethodResponse{Method: m.Method, Description: m.Description}
	}

	c.JSON(http.StatusOK, CheckoutResponse{
		Order:          newOrderResponse(order),
		PaymentMethods: methodsResp,
	})
}

type CardModelParams struct {
	CardNumber  string `binding:"required"       json:"cardNumber"`
	Holder      string `binding:"required"       json:"holder"`
	MonthExpire int    `binding:"required,min=1,max=12" json:"monthExpire"`
	YearExpire  int    `binding:"required"       json:"yearExpire"`
	CVV         string `binding:"required"       json:"cvv2"`
}

type PayParams struct {
	Method string           `binding:"required" json:"method"`
	Model  *CardModelParams `json:"model"`
}

type PaymentConfirmationResponse struct {
	OrderID       int64   `json:"orderId"`
	UserID        int64   `json:"userId"`
	Amount        float64 `json:"sum"`
	TransactionID string  `json:"transactionId,omitempty"`
}

// Pay POST RouteGroup + PayRoute. Исполняет оплату открытого заказа выбранным способом.
// Ответ зависит от способа: JSON-подтверждение либо скачиваемый документ (счет банка).
func (h *PaymentHandler) Pay(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params PayParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	var card *domain.CardDetails
	if params.Model != nil {
		card = &domain.CardDetails{
			Number:      params.Model.CardNumber,
			Holder:      params.Model.Holder,
			MonthExpire: params.Model.MonthExpire,
			YearExpire:  params.Model.YearExpire,
			CVV:         params.Model.CVV,
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	outcome, err := h.paySvs.Pay(reqCtx, currentUserID, domain.PaymentMethodType(params.Method), card)
	if err != nil {
		h.abortWithPaymentError(c, err)
		return
	}

	h.renderOutcome(c, outcome)
}

// Invoice GET RouteGroup + InvoiceRoute. Скачивание банковского счета - отдельная
// точка входа в ветку "Bank".
func (h *PaymentHandler) Invoice(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	outcome, err := h.paySvs.Pay(reqCtx, currentUserID, domain.PaymentMethodBank, nil)
	if err != nil {
		h.abortWithPaymentError(c, err)
		return
	}

	h.renderOutcome(c, outcome)
}

// renderOutcome выбирает кодирование ответа по заполненной ветке результата:
// подтверждение уходит как JSON, документ - как вложение.
func (h *PaymentHandler) renderOutcome(c *gin.Context, outcome *service.PaymentOutcome) {
	switch {
	case outcome.Document != nil:
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outcome.Document.Filename))
		c.Data(http.StatusOK, outcome.Document.ContentType, outcome.Document.Bytes)
	case outcome.Confirmation != nil:
		c.JSON(http.StatusOK, PaymentConfirmationResponse{
			OrderID:       outcome.Confirmation.OrderID,
			UserID:        outcome.Confirmation.UserID,
			Amount:        outcome.Confirmation.Amount.InexactFloat64(),
			TransactionID: outcome.Confirmation.TransactionID,
		})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("empty payment outcome")).
			SetType(gin.ErrorTypePrivate)
	}
}

func (h *PaymentHandler) abortWithPaymentError(c *gin.Context, err error) {
	var paymentFailed *domain.PaymentFailedError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrUnsupportedPaymentMethod), errors.Is(err, domain.ErrCardDetailsRequired):
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrOrderEmpty):
		c.AbortWithStatus(http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrOrderNotOpen), errors.Is(err, domain.ErrConcurrentModification):
		c.AbortWithStatus(http.StatusConflict)
	case errors.As(err, &paymentFailed):
		// заказ остался открытым, оплату можно повторить.
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatus(http.StatusPaymentRequired)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
