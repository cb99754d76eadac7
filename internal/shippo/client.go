package shippo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Sibghat34/shippo-api/internal/config"
	"github.com/Sibghat34/shippo-api/internal/entity"
	"github.com/Sibghat34/shippo-api/pkg/logger"
	"github.com/Sibghat34/shippo-api/pkg/metric"

	"github.com/microcosm-cc/bluemonday"
)

const (
	_shipmentsPath    = "/shipments/"
	_transactionsPath = "/transactions/"
	_userAgent        = "shippo-api/1.0"
	_maxErrorBodySize = 1 << 20

	OperationCreateShipment    = "create_shipment"
	OperationCreateTransaction = "create_transaction"
)

// Client talks to the Shippo REST API. It holds only credentials and an HTTP
// client, so one instance is shared by all requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiVersion string
	log        logger.Logger
	metrics    metric.Upstream
	sanitizer  *bluemonday.Policy
}

func NewClient(
	cfg *config.Shippo,
	log logger.Logger,
	metrics metric.Upstream,
	opts ...Option,
) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiVersion: cfg.APIVersion,
		log:        log,
		metrics:    metrics,
		sanitizer:  bluemonday.StrictPolicy(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateShipment creates a shipment and returns it with its rates.
func (c *Client) CreateShipment(
	ctx context.Context,
	params *entity.ShipmentParams,
) (*entity.Shipment, error) {
	const op = "shippo.CreateShipment"

	var shipment entity.Shipment
	if err := c.post(ctx, OperationCreateShipment, _shipmentsPath, params, &shipment); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.sanitizeMessages(shipment.Messages)

	return &shipment, nil
}

// CreateTransaction purchases the label for a rate.
func (c *Client) CreateTransaction(
	ctx context.Context,
	params *entity.TransactionParams,
) (*entity.Transaction, error) {
	const op = "shippo.CreateTransaction"

	var transaction entity.Transaction
	if err := c.post(ctx, OperationCreateTransaction, _transactionsPath, params, &transaction); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.sanitizeMessages(transaction.Messages)

	return &transaction, nil
}

func (c *Client) post(ctx context.Context, operation, path string, in, out any) error {
	start := time.Now()
	defer func() {
		c.metrics.ObserveDuration(operation, time.Since(start))
	}()

	payload, err := json.Marshal(in)
	if err != nil {
		c.metrics.IncrementFailures(operation, "encode")
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		c.metrics.IncrementFailures(operation, "request")
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "ShippoToken "+c.apiKey)
	req.Header.Set("Shippo-API-Version", c.apiVersion)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", _userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncrementFailures(operation, "transport")
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Ctx(ctx).LogAttrs(ctx, logger.DebugLevel, "shippo response received",
		logger.String("operation", operation),
		logger.Int("status", resp.StatusCode),
		logger.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.IncrementFailures(operation, "status")
		return c.decodeError(operation, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.IncrementFailures(operation, "decode")
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) decodeError(operation string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, _maxErrorBodySize))

	var body struct {
		Detail string `json:"detail"`
	}
	detail := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		detail = body.Detail
	}

	return &entity.UpstreamError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Detail:     c.sanitize(detail),
	}
}

func (c *Client) sanitizeMessages(messages []entity.Message) {
	for i := range messages {
		messages[i].Text = c.sanitize(messages[i].Text)
	}
}

// sanitize strips markup from provider supplied text.
func (c *Client) sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(s)))
}
