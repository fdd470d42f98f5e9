package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-gamestore/internal/domain"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestCharge() {
	type tcase struct {
		name        string
		orderID     int64
		httpStatus  int
		response    *chargeResponse
		wantTxID    string
		wantErrType error
	}

	cases := []tcase{
		{
			name:       "approved",
			orderID:    1,
			httpStatus: http.StatusOK,
			response:   &chargeResponse{TransactionID: "tx-42", Status: "APPROVED"},
			wantTxID:   "tx-42",
		}, {
			name:        "declined",
			orderID:     2,
			httpStatus:  http.StatusOK,
			response:    &chargeResponse{Status: "DECLINED", Reason: "insufficient funds"},
			wantErrType: new(DeclinedError),
		}, {
			name:        "internal error",
			orderID:     3,
			httpStatus:  http.StatusInternalServerError,
			wantErrType: new(StatusCodeError),
		}, {
			name:        "too many requests",
			orderID:     4,
			httpStatus:  http.StatusTooManyRequests,
			wantErrType: new(StatusCodeError),
		},
	}

	// хендлер для тестового сервера. Подбирает кейс по orderId из тела запроса.
	serverHandler := func() func(http.ResponseWriter, *http.Request) {
		return func(w http.ResponseWriter, r *http.Request) {
			s.Equal(http.MethodPost, r.Method)
			s.Equal(RouteCharge, r.URL.Path)

			var req chargeRequest
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))

			var rc *tcase
			for _, c := range cases {
				if c.orderID == req.OrderID {
					rc = &c
					break
				}
			}
			s.Require().NotNilf(rc, "тест для заказа %d не найден", req.OrderID) //nolint:testifylint

			var body []byte
			if rc.httpStatus == http.StatusOK {
				w.Header().Set("Content-Type", "application/json")
				var bErr error
				body, bErr = json.Marshal(rc.response)
				s.NoError(bErr)
			}
			w.WriteHeader(rc.httpStatus)

			if body != nil {
				_, wErr := w.Write(body)
				s.NoError(wErr)
			}
		}
	}

	s.server = httptest.NewServer(http.HandlerFunc(serverHandler()))

	card := domain.CardDetails{
		Number:      "4111111111111111",
		Holder:      "JOHN DOE",
		MonthExpire: 12,
		YearExpire:  2027,
		CVV:         "123",
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			client := New(s.server.URL)
			result, err := client.Charge(s.T().Context(), domain.CardChargeArgs{
				OrderID: t.orderID,
				Amount:  decimal.NewFromInt(25),
				Card:    card,
			})

			if t.wantErrType != nil {
				s.Require().Error(err)
				s.Require().ErrorAs(err, &t.wantErrType) //nolint:testifylint
				return
			}
			s.Require().NoError(err)
			s.Require().NotNil(result)
			s.Equal(t.wantTxID, result.TransactionID)
		})
	}
}
