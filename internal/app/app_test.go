package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sibghat34/shippo-api/internal/app"
	"github.com/Sibghat34/shippo-api/internal/client"
	"github.com/Sibghat34/shippo-api/internal/config"
	"github.com/Sibghat34/shippo-api/internal/entity"
	"github.com/Sibghat34/shippo-api/internal/form"
	"github.com/Sibghat34/shippo-api/pkg/logger"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	_failingSender = "Broken Hippo"
	_labelURL      = "https://shippo-delivery.s3.amazonaws.com/label.pdf"
)

type AppTestSuite struct {
	suite.Suite

	shippo     *httptest.Server
	cfg        *config.Config
	httpClient *http.Client
	baseURL    string
	cancel     context.CancelFunc
	done       chan error
}

func (s *AppTestSuite) SetupSuite() {
	s.shippo = httptest.NewServer(http.HandlerFunc(fakeShippo))

	s.cfg = testConfig(s.shippo.URL, freePort(s.T()), freePort(s.T()))
	require.NoError(s.T(), config.Validate(s.cfg))

	s.httpClient = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = "http://" + net.JoinHostPort(s.cfg.HTTP.Host, s.cfg.HTTP.Port)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan error, 1)

	go func() {
		s.done <- app.Run(ctx, s.cfg, logger.NewNop())
	}()

	s.waitForApp()
}

func (s *AppTestSuite) waitForApp() {
	const maxRetries = 50
	const retryDelay = 100 * time.Millisecond
	healthURL := s.baseURL + "/health"

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, healthURL, nil)
		require.NoError(s.T(), err)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.T().Logf("Health check failed (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			return
		}
		time.Sleep(retryDelay)
	}
	s.T().Fatalf("App did not become healthy after %d attempts", maxRetries)
}

func (s *AppTestSuite) TearDownSuite() {
	s.cancel()

	select {
	case err := <-s.done:
		require.NoError(s.T(), err)
	case <-time.After(10 * time.Second):
		s.T().Fatal("App did not stop")
	}

	s.shippo.Close()
}

func (s *AppTestSuite) TestLabelFlow() {
	session := form.NewSession()
	session.Values = generateValues(gofakeit.Name())

	err := session.Submit(context.Background(), client.New(s.baseURL))
	require.NoError(s.T(), err)

	require.Equal(s.T(), _labelURL, session.LabelURL)
	require.Equal(s.T(), "Shipping Label Created", session.Notification.Title)
	require.Equal(s.T(), form.Values{}, session.Values)
}

func (s *AppTestSuite) TestPurchaseFailure() {
	session := form.NewSession()
	values := generateValues(_failingSender)
	session.Values = values

	err := session.Submit(context.Background(), client.New(s.baseURL))
	require.Error(s.T(), err)

	require.Equal(s.T(), "Error", session.Notification.Title)
	require.Equal(s.T(), "Error creating shipment: Error: Invalid address", session.Notification.Description)
	require.Equal(s.T(), values, session.Values)
	require.Empty(s.T(), session.LabelURL)
}

func (s *AppTestSuite) TestMetricsEndpoint() {
	session := form.NewSession()
	session.Values = generateValues(gofakeit.Name())
	require.NoError(s.T(), session.Submit(context.Background(), client.New(s.baseURL)))

	metricsURL := "http://" + net.JoinHostPort(s.cfg.Metrics.Host, s.cfg.Metrics.Port) + "/metrics"
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, metricsURL, nil)
	require.NoError(s.T(), err)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Contains(s.T(), string(body), "shippo_request_duration_seconds")
	require.Contains(s.T(), string(body), "labels_purchased_total")
	require.Contains(s.T(), string(body), "http_requests_total")
}

func TestApp(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping app test in short mode.")
	}
	suite.Run(t, new(AppTestSuite))
}

// fakeShippo answers shipments with one rate and buys it, failing the purchase
// for _failingSender.
func fakeShippo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/shipments/":
		var params entity.ShipmentParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		rateID := "rate_ok"
		if params.AddressFrom.Name == _failingSender {
			rateID = "rate_broken"
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"object_id": "shp_1", "status": "SUCCESS", "rates": [{"object_id": %q, "amount": "7.50", "currency": "USD", "provider": "USPS"}]}`, rateID)
	case "/transactions/":
		var params entity.TransactionParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		if params.Rate == "rate_broken" {
			_, _ = io.WriteString(w, `{"object_id": "tx_1", "status": "ERROR", "messages": [{"text": "Invalid address"}]}`)
			return
		}
		fmt.Fprintf(w, `{"object_id": "tx_1", "status": "SUCCESS", "label_url": %q, "tracking_number": "9205590164917312751089"}`, _labelURL)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func generateValues(sender string) form.Values {
	return form.Values{
		SenderName:      sender,
		SenderAddress:   gofakeit.Street(),
		ReceiverName:    "Mrs Hippo",
		ReceiverAddress: gofakeit.Street(),
		PackageWeight:   "2",
		Length:          "10",
		Width:           "15",
		Height:          "5",
	}
}

func testConfig(shippoURL, httpPort, metricsPort string) *config.Config {
	cfg := config.Default()
	cfg.Env = "local"
	cfg.App = config.App{Name: "label-service-test", Version: "test"}
	cfg.Logger = config.Logger{Level: "error", MaxSize: 1, MaxAge: 1}
	cfg.HTTP = config.HTTP{
		Host:              "127.0.0.1",
		Port:              httpPort,
		AllowedOrigin:     "http://localhost:5173",
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       10 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		RequestTimeout:    5 * time.Second,
	}
	cfg.Shippo = config.Shippo{
		APIKey:     "shippo_test_key",
		BaseURL:    shippoURL,
		APIVersion: "2018-02-08",
		Timeout:    5 * time.Second,
	}
	cfg.Label.FileType = "PDF"
	cfg.Metrics = config.Metrics{
		Host:              "127.0.0.1",
		Port:              metricsPort,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &cfg
}

func freePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}
