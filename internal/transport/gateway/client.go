package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-gamestore/internal/domain"

	"io"
	"net/http"
)

const RouteCharge = "/api/charges"

// DefaultTimeout верхняя граница ожидания ответа шлюза. По таймауту платеж считается
// неисполненным - неизвестный исход никогда не трактуем как подтверждение.
const DefaultTimeout = 10 * time.Second

type chargeRequest struct {
	OrderID     int64           `json:"orderId"`
	Amount      decimal.Decimal `json:"amount"`
	CardNumber  string          `json:"cardNumber"`
	Holder      string          `json:"holder"`
	MonthExpire int             `json:"monthExpire"`
	YearExpire  int             `json:"yearExpire"`
	CVV         string          `json:"cvv"`
}

type chargeResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
}

const statusApproved = "APPROVED"

// Client реализация service.CardGateway поверх HTTP API платежного шлюза.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Charge проводит платеж по карте. При статусе ответа отличном от http.StatusOK
// возвращает StatusCodeError, при отклоненном платеже - DeclinedError.
//
//nolint:nonamedreturns
func (c *Client) Charge(
	ctx context.Context,
	args domain.CardChargeArgs,
) (result *domain.CardChargeResult, err error) {
	payload, marshalErr := json.Marshal(chargeRequest{
		OrderID:     args.OrderID,
		Amount:      args.Amount,
		CardNumber:  args.Card.Number,
		Holder:      args.Card.Holder,
		MonthExpire: args.Card.MonthExpire,
		YearExpire:  args.Card.YearExpire,
		CVV:         args.Card.CVV,
	})
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RouteCharge, bytes.NewReader(payload))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w", doErr)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	var chargeResp chargeResponse
	if jsonErr := json.Unmarshal(body, &chargeResp); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	if chargeResp.Status != statusApproved {
		err = NewDeclinedError(chargeResp.Reason)
		return nil, err
	}

	return &domain.CardChargeResult{TransactionID: chargeResp.TransactionID}, nil
}
