package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"store/internal/entities"
	retrierconfig "store/pkg/retrier"
	"store/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "paystack"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	BaseURL    string
	SecretKey  string
	Currencies []string
	Channels   []string
}

type Gateway struct {
	cfg       Config
	supported map[string]struct{}
	client    httpDoer
	retrier   retrier
}

func New(cfg Config, client httpDoer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	supported := make(map[string]struct{}, len(cfg.Currencies))
	for _, currency := range cfg.Currencies {
		supported[strings.ToUpper(currency)] = struct{}{}
	}

	return &Gateway{
		cfg:       cfg,
		supported: supported,
		client:    client,
		retrier:   backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) Initialize(ctx context.Context, email string, amount decimal.Decimal, reference, currency string) (*entities.PaymentInit, error) {
	currency = strings.ToUpper(currency)
	if _, ok := g.supported[currency]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, currency)
	}

	req := initializeRequest{
		Email:     email,
		Amount:    encodeAmount(amount, currency),
		Reference: reference,
		Currency:  currency,
		Channels:  g.cfg.Channels,
	}

	var resp initializeData
	err := g.executeWithMetrics(ctx, "Initialize", func(ctx context.Context) error {
		return g.send(ctx, http.MethodPost, "/transaction/initialize", req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway paystack, initialize %s: %w", reference, err)
	}

	return &entities.PaymentInit{
		Reference:        reference,
		AuthorizationURL: resp.AuthorizationURL,
		AccessCode:       resp.AccessCode,
	}, nil
}

func (g *Gateway) Verify(ctx context.Context, ref string) (*entities.Transaction, error) {
	var resp verifyData
	err := g.executeWithMetrics(ctx, "Verify", func(ctx context.Context) error {
		return g.send(ctx, http.MethodGet, "/transaction/verify/"+ref, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway paystack, verify %s: %w", ref, err)
	}

	return toTransaction(&resp)
}

func (g *Gateway) send(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.cfg.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	// 429 и 5xx ретраятся, остальные коды - окончательный ответ шлюза
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrTransactionNotFound
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !envelope.Status {
		return fmt.Errorf("%w: %s", ErrRejected, envelope.Message)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, ErrTransactionNotFound):
		return "not_found"
	default:
		return "error"
	}
}
