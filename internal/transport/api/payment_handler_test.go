package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/logger"
	"github.com/fsdevblog/groph-gamestore/internal/service"
	"github.com/fsdevblog/groph-gamestore/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-gamestore/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-gamestore/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPaymentService *mocks.MockPaymentServicer
	jwtSecret          []byte
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockPaymentService = mocks.NewMockPaymentServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		PaymentService: s.mockPaymentService,
		JWTSecretKey:   s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *PaymentHandlerTestSuite) authHeader(userID int64) func(*testutils.RequestOptions) {
	token, tokenErr := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	return testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", token))
}

func (s *PaymentHandlerTestSuite) TestCheckout() {
	var userID int64 = 1
	var noCartUserID int64 = 2

	order := &domain.Order{
		ID:     10,
		UserID: userID,
		Status: domain.OrderStatusOpen,
		Lines: []domain.OrderLine{
			{GameAlias: "portal-2", GameName: "Portal 2", Price: decimal.NewFromInt(10), Quantity: 2},
		},
	}
	methods := []service.PaymentMethodInfo{
		{Method: domain.PaymentMethodTerminal, Description: "Payment via IBox terminal"},
		{Method: domain.PaymentMethodCard, Description: "Payment via Visa card"},
		{Method: domain.PaymentMethodBank, Description: "Bank invoice for wire transfer"},
	}

	s.mockPaymentService.EXPECT().
		OpenOrder(gomock.Any(), userID).
		Return(order, nil)
	s.mockPaymentService.EXPECT().Methods().Return(methods)
	s.mockPaymentService.EXPECT().
		OpenOrder(gomock.Any(), noCartUserID).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		userID     int64
		wantStatus int
	}{
		{
			name:       "all ok",
			userID:     userID,
			wantStatus: http.StatusOK,
		}, {
			name:       "no open cart",
			userID:     noCartUserID,
			wantStatus: http.StatusNotFound,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + CheckoutRoute,
			}
			res := testutils.MakeRequest(args, s.authHeader(t.userID))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus != http.StatusOK {
				return
			}

			var body CheckoutResponse
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
			s.Equal(order.ID, body.Order.ID)
			s.Require().Len(body.PaymentMethods, 3)
			s.Equal(domain.PaymentMethodTerminal, body.PaymentMethods[0].Method)
		})
	}
}

func (s *PaymentHandlerTestSuite) TestPayConfirmation() {
	var userID int64 = 1

	confirmation := &service.PaymentOutcome{Confirmation: &service.PaymentConfirmation{
		OrderID: 10,
		UserID:  userID,
		Amount:  decimal.NewFromInt(25),
	}}

	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), userID, domain.PaymentMethodTerminal, nil).
		Return(confirmation, nil)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + PayRoute,
		Body:   bytes.NewReader([]byte(`{"method": "IBox terminal"}`)),
	}
	res := testutils.MakeRequest(args, s.authHeader(userID),
		testutils.WithHeader("Content-Type", "application/json"))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body PaymentConfirmationResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal(int64(10), body.OrderID)
	s.InDelta(25.0, body.Amount, 0.001)
}

func (s *PaymentHandlerTestSuite) TestPayCardModel() {
	var userID int64 = 1

	card := domain.CardDetails{
		Number:      "4111111111111111",
		Holder:      "JOHN DOE",
		MonthExpire: 12,
		YearExpire:  2027,
		CVV:         "123",
	}
	confirmation := &service.PaymentOutcome{Confirmation: &service.PaymentConfirmation{
		OrderID:       10,
		UserID:        userID,
		Amount:        decimal.NewFromInt(25),
		TransactionID: "tx-42",
	}}

	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), userID, domain.PaymentMethodCard, &card).
		Return(confirmation, nil)

	payload := []byte(`{
		"method": "Visa",
		"model": {
			"cardNumber": "4111111111111111",
			"holder": "JOHN DOE",
			"monthExpire": 12,
			"yearExpire": 2027,
			"cvv2": "123"
		}
	}`)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + PayRoute,
		Body:   bytes.NewReader(payload),
	}
	res := testutils.MakeRequest(args, s.authHeader(userID),
		testutils.WithHeader("Content-Type", "application/json"))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body PaymentConfirmationResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("tx-42", body.TransactionID)
}

func (s *PaymentHandlerTestSuite) TestPayErrors() {
	var userID int64 = 1

	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), userID, domain.PaymentMethodType("Crypto"), nil).
		Return(nil, fmt.Errorf("%w: Crypto", domain.ErrUnsupportedPaymentMethod))
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), userID, domain.PaymentMethodCard, nil).
		Return(nil, domain.ErrCardDetailsRequired)
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), userID, domain.PaymentMethodTerminal, nil).
		Return(nil, domain.ErrOrderEmpty)
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), userID, domain.PaymentMethodBank, nil).
		Return(nil, domain.NewPaymentFailedError(domain.PaymentMethodBank, fmt.Errorf("declined")))

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "unsupported method",
			payload:    []byte(`{"method": "Crypto"}`),
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "card details required",
			payload:    []byte(`{"method": "Visa"}`),
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "empty cart",
			payload:    []byte(`{"method": "IBox terminal"}`),
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "payment declined",
			payload:    []byte(`{"method": "Bank"}`),
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "missing method",
			payload:    []byte(`{}`),
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PayRoute,
				Body:   bytes.NewReader(t.payload),
			}
			res := testutils.MakeRequest(args, s.authHeader(userID),
				testutils.WithHeader("Content-Type", "application/json"))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *PaymentHandlerTestSuite) TestInvoiceDownload() {
	var userID int64 = 1

	document := &service.PaymentOutcome{Document: &service.PaymentDocument{
		Bytes:       []byte("INVOICE #10\nTOTAL: 25.00\n"),
		ContentType: "application/pdf",
		Filename:    "invoice-10.pdf",
	}}

	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), userID, domain.PaymentMethodBank, nil).
		Return(document, nil)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + InvoiceRoute,
	}
	res := testutils.MakeRequest(args, s.authHeader(userID))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("application/pdf", res.Header.Get("Content-Type"))
	s.Equal(`attachment; filename="invoice-10.pdf"`, res.Header.Get("Content-Disposition"))

	body, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	s.Equal(document.Document.Bytes, body)
}
