package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Sibghat34/shippo-api/internal/entity"
	"github.com/Sibghat34/shippo-api/internal/form"
)

const (
	_createLabelPath = "/create-shipping-label"
	_defaultTimeout  = 60 * time.Second
	_maxBodySize     = 1 << 20
)

var _ form.Submitter = (*Client)(nil)

// ResponseError is a non-2xx answer from the label service. Message holds the
// body's error field when there was one.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

func (e *ResponseError) ResponseMessage() string {
	return e.Message
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// Client submits forms to a running label service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: _defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateLabel posts the values and returns the label URL.
func (c *Client) CreateLabel(ctx context.Context, values form.Values) (string, error) {
	const op = "client.CreateLabel"

	payload, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("%s: marshal request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+_createLabelPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, _maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &errBody)
		return "", &ResponseError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	var label entity.Label
	if err := json.Unmarshal(body, &label); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}

	return label.LabelURL, nil
}
