package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
)

type PaymentMethodInfo struct {
	Method      domain.PaymentMethodType
	Description string
}

// paymentMethods каталог доступных способов оплаты. Порядок фиксирован - SPA
// рендерит список как есть.
var paymentMethods = []PaymentMethodInfo{
	{Method: domain.PaymentMethodTerminal, Description: "Payment via IBox terminal"},
	{Method: domain.PaymentMethodCard, Description: "Payment via Visa card"},
	{Method: domain.PaymentMethodBank, Description: "Bank invoice for wire transfer"},
}

type PaymentConfirmation struct {
	OrderID       int64
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
}

type PaymentDocument struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

// PaymentOutcome результат диспетчеризации платежа: либо JSON-подтверждение, либо
// скачиваемый документ. Заполнено ровно одно из полей, транспортный слой выбирает
// кодирование ответа по заполненному полю.
type PaymentOutcome struct {
	Confirmation *PaymentConfirmation
	Document     *PaymentDocument
}

type PaymentService struct {
	uow       uow.UOW
	orders    *OrderService
	orderRepo OrderRepository
	gateway   CardGateway
	now       func() time.Time
}

func NewPaymentService(u uow.UOW, orders *OrderService, gateway CardGateway) (*PaymentService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	return &PaymentService{
		uow:       u,
		orders:    orders,
		orderRepo: orderRepo,
		gateway:   gateway,
		now:       time.Now,
	}, nil
}

// SetNowFunc подменяет источник времени. Нужен тестам счета на оплату.
func (p *PaymentService) SetNowFunc(fn func() time.Time) *PaymentService {
	p.now = fn
	return p
}

func (p *PaymentService) Methods() []PaymentMethodInfo {
	return paymentMethods
}

// OpenOrder возвращает открытый заказ юзера с позициями - сводка для страницы оплаты.
func (p *PaymentService) OpenOrder(ctx context.Context, userID int64) (*domain.Order, error) {
	order, err := p.orderRepo.FindOpenByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// Pay проводит оплату открытого заказа юзера выбранным способом.
//
// Ветки диспетчеризации:
//   - IBox terminal: локальное подтверждение без внешних вызовов.
//   - Visa: запрос во внешний шлюз; отказ или таймаут шлюза возвращается как
//     *domain.PaymentFailedError, заказ остается открытым и оплату можно повторить.
//   - Bank: формируется счет на оплату (скачиваемый документ).
//
// Неизвестный токен способа оплаты - domain.ErrUnsupportedPaymentMethod, заказ не
// меняется. Успешная ветка финализирует заказ; конфликт версий при этом отдается
// как domain.ErrConcurrentModification и разрешается повтором запроса.
func (p *PaymentService) Pay(
	ctx context.Context,
	userID int64,
	method domain.PaymentMethodType,
	card *domain.CardDetails,
) (*PaymentOutcome, error) {
	order, orderErr := p.orderRepo.FindOpenByUserID(ctx, userID)
	if orderErr != nil {
		return nil, orderErr //nolint:wrapcheck
	}
	if len(order.Lines) == 0 {
		return nil, domain.ErrOrderEmpty
	}
	amount := order.Total()

	switch method {
	case domain.PaymentMethodTerminal:
		paid, finalizeErr := p.finalize(ctx, order)
		if finalizeErr != nil {
			return nil, finalizeErr
		}
		return &PaymentOutcome{Confirmation: &PaymentConfirmation{
			OrderID: paid.ID,
			UserID:  paid.UserID,
			Amount:  amount,
		}}, nil

	case domain.PaymentMethodCard:
		if card == nil {
			return nil, domain.ErrCardDetailsRequired
		}
		charge, chargeErr := p.gateway.Charge(ctx, domain.CardChargeArgs{
			OrderID: order.ID,
			Amount:  amount,
			Card:    *card,
		})
		if chargeErr != nil {
			// Шлюз не подтвердил платеж (отказ, сеть, таймаут) - заказ не финализируем.
			// Ретраев здесь нет, решение о повторе за вызывающей стороной.
			return nil, domain.NewPaymentFailedError(method, chargeErr)
		}
		paid, finalizeErr := p.finalize(ctx, order)
		if finalizeErr != nil {
			return nil, finalizeErr
		}
		return &PaymentOutcome{Confirmation: &PaymentConfirmation{
			OrderID:       paid.ID,
			UserID:        paid.UserID,
			Amount:        amount,
			TransactionID: charge.TransactionID,
		}}, nil

	case domain.PaymentMethodBank:
		doc := renderBankInvoice(order, amount, p.now())
		if _, finalizeErr := p.finalize(ctx, order); finalizeErr != nil {
			return nil, finalizeErr
		}
		return &PaymentOutcome{Document: doc}, nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPaymentMethod, method)
	}
}

// finalize переводит заказ в PAID внутри транзакции uow силами агрегата заказов.
// CAS по версии строки отсекает гонки: любая мутация корзины, прошедшая после чтения
// заказа (сумма считалась по той версии), двигает версию и роняет финализацию с
// domain.ErrConcurrentModification.
func (p *PaymentService) finalize(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var paid *domain.Order

	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		var finalizeErr error
		paid, finalizeErr = p.orders.finalize(c, orderRepo, order)
		return finalizeErr
	})
	if txErr != nil {
		return nil, txErr
	}
	return paid, nil
}
