package flutterwave

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/momozvault/go-backend/internal/cfg"
	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/jitter"
	"github.com/momozvault/go-backend/pkg/logger"
)

// Gateway is the Flutterwave v3 API client. Server errors are retried
// with exponential backoff; client errors (4xx) are not.
type Gateway struct {
	httpClient *http.Client
	cfg        *cfg.FlutterwaveCfg
	logger     logger.Logger
}

func NewGateway(cfg *cfg.FlutterwaveCfg, logger logger.Logger) *Gateway {
	return &Gateway{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

type createPaymentReq struct {
	TxRef       string          `json:"tx_ref"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	RedirectURL string          `json:"redirect_url"`
	Customer    paymentCustomer `json:"customer"`
}

type paymentCustomer struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phonenumber"`
}

type createPaymentRes struct {
	Status string `json:"status"`
	Data   struct {
		Link string `json:"link"`
	} `json:"data"`
}

type verifyRes struct {
	Status string `json:"status"`
	Data   struct {
		ID       int64   `json:"id"`
		TxRef    string  `json:"tx_ref"`
		Status   string  `json:"status"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"data"`
}

// CreatePaymentLink initializes a hosted payment page for the order.
func (g *Gateway) CreatePaymentLink(ctx context.Context, req *usecase.PaymentLinkReq) (*usecase.PaymentLink, error) {
	const op = "Gateway.CreatePaymentLink"

	body, err := json.Marshal(createPaymentReq{
		TxRef:       req.TxRef,
		Amount:      req.Amount,
		Currency:    string(req.Currency),
		RedirectURL: g.cfg.RedirectURL,
		Customer: paymentCustomer{
			Email:       req.CustomerEmail,
			Name:        req.CustomerName,
			PhoneNumber: req.CustomerPhone,
		},
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var res createPaymentRes
	if err := g.doWithRetry(ctx, http.MethodPost, "/payments", body, &res); err != nil {
		return nil, e.Wrap(op, err)
	}

	if res.Status != "success" || res.Data.Link == "" {
		g.logger.Warnf("Flutterwave rejected payment initialization. tx_ref: %s, status: %s", req.TxRef, res.Status)
		return nil, e.Wrap(op, e.ErrPaymentGateway)
	}

	return &usecase.PaymentLink{
		TxRef: req.TxRef,
		Link:  res.Data.Link,
	}, nil
}

// VerifyTransaction fetches the authoritative transaction state by id.
func (g *Gateway) VerifyTransaction(ctx context.Context, transactionID string) (*usecase.GatewayTransaction, error) {
	const op = "Gateway.VerifyTransaction"

	path := fmt.Sprintf("/transactions/%s/verify", transactionID)

	var res verifyRes
	if err := g.doWithRetry(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, e.Wrap(op, err)
	}

	if res.Status != "success" {
		g.logger.Warnf("Flutterwave verification lookup failed. transaction_id: %s, status: %s", transactionID, res.Status)
		return nil, e.Wrap(op, e.ErrPaymentGateway)
	}

	return &usecase.GatewayTransaction{
		TransactionID: fmt.Sprintf("%d", res.Data.ID),
		TxRef:         res.Data.TxRef,
		Status:        res.Data.Status,
		Amount:        int64(math.Round(res.Data.Amount)),
		Currency:      res.Data.Currency,
	}, nil
}

// doWithRetry performs one API call, retrying 5xx and transport failures.
func (g *Gateway) doWithRetry(ctx context.Context, method, path string, body []byte, out any) error {
	const (
		op         = "Gateway.doWithRetry"
		baseJitter = 1 * time.Second
		maxJitter  = 10 * time.Second
	)

	var lastErr error
	for attempt := 0; attempt < g.cfg.MaxRetries; attempt++ {
		lastErr = g.do(ctx, method, path, body, out)
		if lastErr == nil {
			return nil
		}

		var retryable *retryableError
		if !errors.As(lastErr, &retryable) {
			return lastErr
		}

		if attempt == g.cfg.MaxRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(baseJitter, maxJitter, attempt, jitter.DefaultJitter)
		g.logger.Warnf("Flutterwave call failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, lastErr)

		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return e.Wrap(op, ctx.Err())
		}
	}

	return e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", g.cfg.MaxRetries, lastErr))
}

func (g *Gateway) do(ctx context.Context, method, path string, body []byte, out any) error {
	const op = "Gateway.do"

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.cfg.BaseURL+path, reader)
	if err != nil {
		return e.Wrap(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return &retryableError{err: e.Wrap(op, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &retryableError{err: e.Wrap(op, err)}
	}

	if resp.StatusCode >= 500 {
		return &retryableError{err: fmt.Errorf("%s: gateway returned %d", op, resp.StatusCode)}
	}
	if resp.StatusCode >= 400 {
		g.logger.Warnf("Flutterwave returned %d: %s", resp.StatusCode, data)
		return e.Wrap(op, e.ErrPaymentGateway)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

type retryableError struct {
	err error
}

func (r *retryableError) Error() string { return r.err.Error() }
func (r *retryableError) Unwrap() error { return r.err }
