package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/logger"
	"github.com/fsdevblog/groph-gamestore/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-gamestore/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-gamestore/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	jwtSecret        []byte
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		OrderService: s.mockOrderService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *CartHandlerTestSuite) authHeader(userID int64) func(*testutils.RequestOptions) {
	token, tokenErr := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	return testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", token))
}

func (s *CartHandlerTestSuite) cartFixture(userID int64) *domain.Order {
	return &domain.Order{
		ID:        10,
		CreatedAt: time.Now(),
		UserID:    userID,
		Status:    domain.OrderStatusOpen,
		Lines: []domain.OrderLine{
			{
				ID:        1,
				OrderID:   10,
				GameID:    7,
				GameAlias: "portal-2",
				GameName:  "Portal 2",
				Price:     decimal.NewFromInt(10),
				Quantity:  2,
			},
		},
	}
}

func (s *CartHandlerTestSuite) TestShow() {
	var userID int64 = 1
	cart := s.cartFixture(userID)

	s.mockOrderService.EXPECT().
		GetOrCreateOpenOrder(gomock.Any(), userID).
		Return(cart, nil)

	cases := []struct {
		name       string
		authorized bool
		wantStatus int
	}{
		{
			name:       "all ok",
			authorized: true,
			wantStatus: http.StatusOK,
		}, {
			name:       "not authorized",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + CartRoute,
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.authorized {
				reqOpts = append(reqOpts, s.authHeader(userID))
			}
			res := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus != http.StatusOK {
				return
			}

			var body OrderResponse
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
			s.Equal(cart.ID, body.ID)
			s.Require().Len(body.Items, 1)
			s.Equal("portal-2", body.Items[0].Game)
			s.InDelta(20.0, body.Items[0].Sum, 0.001)
			s.InDelta(20.0, body.Total, 0.001)
		})
	}
}

func (s *CartHandlerTestSuite) TestAddGame() {
	var userID int64 = 1
	cart := s.cartFixture(userID)

	// Явное количество из тела запроса.
	s.mockOrderService.EXPECT().
		AddLine(gomock.Any(), userID, "portal-2", int32(3)).
		Return(cart, nil)
	// Без тела кладется одна копия.
	s.mockOrderService.EXPECT().
		AddLine(gomock.Any(), userID, "portal-2", int32(1)).
		Return(cart, nil)
	// Неизвестная игра.
	s.mockOrderService.EXPECT().
		AddLine(gomock.Any(), userID, "no-such-game", int32(1)).
		Return(nil, domain.ErrRecordNotFound)
	// Отрицательное количество.
	s.mockOrderService.EXPECT().
		AddLine(gomock.Any(), userID, "portal-2", int32(-1)).
		Return(nil, domain.ErrInvalidQuantity)

	cases := []struct {
		name       string
		alias      string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "explicit quantity",
			alias:      "portal-2",
			payload:    []byte(`{"quantity": 3}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "empty body defaults to one",
			alias:      "portal-2",
			wantStatus: http.StatusOK,
		}, {
			name:       "unknown game",
			alias:      "no-such-game",
			wantStatus: http.StatusNotFound,
		}, {
			name:       "negative quantity",
			alias:      "portal-2",
			payload:    []byte(`{"quantity": -1}`),
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "malformed json",
			alias:      "portal-2",
			payload:    []byte(`{"quantity":`),
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/games/" + t.alias + "/cart",
			}
			if t.payload != nil {
				args.Body = bytes.NewReader(t.payload)
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

func (s *CartHandlerTestSuite) TestRemoveGame() {
	var userID int64 = 1
	cart := s.cartFixture(userID)
	cart.Lines = nil

	s.mockOrderService.EXPECT().
		RemoveLine(gomock.Any(), userID, "portal-2").
		Return(cart, nil)
	s.mockOrderService.EXPECT().
		RemoveLine(gomock.Any(), userID, "hades").
		Return(nil, domain.ErrOrderLineNotFound)

	cases := []struct {
		name       string
		alias      string
		wantStatus int
	}{
		{
			name:       "all ok",
			alias:      "portal-2",
			wantStatus: http.StatusOK,
		}, {
			name:       "game not in cart",
			alias:      "hades",
			wantStatus: http.StatusNotFound,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodDelete,
				URL:    RouteGroup + "/games/" + t.alias + "/cart",
			}
			res := testutils.MakeRequest(args, s.authHeader(userID))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *CartHandlerTestSuite) TestCancel() {
	var userID int64 = 1
	var noCartUserID int64 = 2

	cancelled := s.cartFixture(userID)
	cancelled.Status = domain.OrderStatusCancelled

	s.mockOrderService.EXPECT().
		Cancel(gomock.Any(), userID).
		Return(cancelled, nil)
	s.mockOrderService.EXPECT().
		Cancel(gomock.Any(), noCartUserID).
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
				Method: http.MethodDelete,
				URL:    RouteGroup + CartRoute,
			}
			res := testutils.MakeRequest(args, s.authHeader(t.userID))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
