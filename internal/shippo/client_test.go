package shippo_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sibghat34/shippo-api/internal/config"
	"github.com/Sibghat34/shippo-api/internal/entity"
	"github.com/Sibghat34/shippo-api/internal/shippo"
	"github.com/Sibghat34/shippo-api/pkg/logger"
	mock_metric "github.com/Sibghat34/shippo-api/pkg/metric/mock"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "shippo_test_123"

func newTestClient(t *testing.T, srv *httptest.Server, metrics *mock_metric.MockUpstream) *shippo.Client {
	t.Helper()

	cfg := &config.Shippo{
		APIKey:     testAPIKey,
		BaseURL:    srv.URL + "/",
		APIVersion: "2018-02-08",
		Timeout:    5 * time.Second,
	}
	return shippo.NewClient(cfg, logger.NewNop(), metrics, shippo.WithHTTPClient(srv.Client()))
}

func sampleShipmentParams() *entity.ShipmentParams {
	return &entity.ShipmentParams{
		AddressFrom: entity.DefaultOriginTemplate().Apply("Mr Hippo", "215 Clayton St."),
		AddressTo:   entity.DefaultDestinationTemplate().Apply("Mrs Hippo", "965 Mission St."),
		Parcels:     []entity.Parcel{entity.DefaultParcelTemplate().Apply("2", "10", "15", "5")},
	}
}

func requireShippoHeaders(t *testing.T, r *http.Request) {
	t.Helper()

	require.Equal(t, http.MethodPost, r.Method)
	require.Equal(t, "ShippoToken "+testAPIKey, r.Header.Get("Authorization"))
	require.Equal(t, "2018-02-08", r.Header.Get("Shippo-API-Version"))
	require.Equal(t, "application/json", r.Header.Get("Content-Type"))
}

func TestClient_CreateShipment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := mock_metric.NewMockUpstream(ctrl)
	metrics.EXPECT().ObserveDuration(shippo.OperationCreateShipment, gomock.Any()).Times(1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireShippoHeaders(t, r)
		require.Equal(t, "/shipments/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		from := body["address_from"].(map[string]any)
		require.Equal(t, "Mr Hippo", from["name"])
		require.Equal(t, "Shippo", from["company"])
		require.Equal(t, true, from["is_residential"])
		require.Equal(t, false, body["async"])

		parcels := body["parcels"].([]any)
		require.Len(t, parcels, 1)
		parcel := parcels[0].(map[string]any)
		require.Equal(t, "2", parcel["weight"])
		require.Equal(t, "kg", parcel["mass_unit"])
		require.Equal(t, "cm", parcel["distance_unit"])
		extra := parcel["extra"].(map[string]any)
		require.Equal(t, "CASH", extra["COD"].(map[string]any)["payment_method"])
		require.Equal(t, "Laptop", extra["insurance"].(map[string]any)["content"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"object_id": "shp_1",
			"status": "SUCCESS",
			"rates": [
				{"object_id": "rate_1", "amount": "12.34", "currency": "USD", "provider": "USPS",
				 "servicelevel": {"name": "Priority Mail", "token": "usps_priority"}, "estimated_days": 2},
				{"object_id": "rate_2", "amount": "8.10", "currency": "USD", "provider": "UPS"}
			],
			"messages": [{"source": "UPS", "text": "<b>Rate</b> unavailable"}]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, metrics)

	shipment, err := client.CreateShipment(context.Background(), sampleShipmentParams())
	require.NoError(t, err)

	require.Equal(t, "shp_1", shipment.ObjectID)
	require.Len(t, shipment.Rates, 2)
	require.Equal(t, "rate_1", shipment.Rates[0].ObjectID)
	require.True(t, decimal.RequireFromString("12.34").Equal(shipment.Rates[0].Amount))
	require.Equal(t, "Priority Mail", shipment.Rates[0].ServiceLevel.Name)
	require.Equal(t, "Rate unavailable", shipment.Messages[0].Text)
}

func TestClient_CreateTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := mock_metric.NewMockUpstream(ctrl)
	metrics.EXPECT().ObserveDuration(shippo.OperationCreateTransaction, gomock.Any()).Times(1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireShippoHeaders(t, r)
		require.Equal(t, "/transactions/", r.URL.Path)

		var body entity.TransactionParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, entity.TransactionParams{Rate: "rate_1", LabelFileType: "PDF", Async: false}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"object_id": "tx_1",
			"status": "ERROR",
			"label_url": "",
			"messages": [{"source": "USPS", "code": "address", "text": "Invalid address &amp; zip"}]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, metrics)

	tx, err := client.CreateTransaction(context.Background(), &entity.TransactionParams{
		Rate:          "rate_1",
		LabelFileType: "PDF",
	})
	require.NoError(t, err)
	require.Equal(t, entity.TransactionStatusError, tx.Status)
	require.Equal(t, "Invalid address & zip", tx.Messages[0].Text)
}

func TestClient_UpstreamErrors(t *testing.T) {
	testCases := []struct {
		desc     string
		status   int
		body     string
		expected *entity.UpstreamError
	}{
		{
			desc:   "DetailField",
			status: http.StatusUnauthorized,
			body:   `{"detail": "Invalid <i>token</i>."}`,
			expected: &entity.UpstreamError{
				Operation:  shippo.OperationCreateShipment,
				StatusCode: http.StatusUnauthorized,
				Detail:     "Invalid token.",
			},
		},
		{
			desc:   "FieldErrorsBody",
			status: http.StatusBadRequest,
			body:   `{"parcels": ["This field is required."]}`,
			expected: &entity.UpstreamError{
				Operation:  shippo.OperationCreateShipment,
				StatusCode: http.StatusBadRequest,
				Detail:     `{"parcels": ["This field is required."]}`,
			},
		},
		{
			desc:   "EmptyBody",
			status: http.StatusBadGateway,
			body:   "",
			expected: &entity.UpstreamError{
				Operation:  shippo.OperationCreateShipment,
				StatusCode: http.StatusBadGateway,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			metrics := mock_metric.NewMockUpstream(ctrl)
			metrics.EXPECT().ObserveDuration(shippo.OperationCreateShipment, gomock.Any()).Times(1)
			metrics.EXPECT().IncrementFailures(shippo.OperationCreateShipment, "status").Times(1)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := newTestClient(t, srv, metrics)

			_, err := client.CreateShipment(context.Background(), sampleShipmentParams())

			var upstreamErr *entity.UpstreamError
			require.True(t, errors.As(err, &upstreamErr), "expected UpstreamError, got %v", err)
			require.Equal(t, tc.expected, upstreamErr)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := mock_metric.NewMockUpstream(ctrl)
	metrics.EXPECT().ObserveDuration(shippo.OperationCreateTransaction, gomock.Any()).Times(1)
	metrics.EXPECT().IncrementFailures(shippo.OperationCreateTransaction, "transport").Times(1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(t, srv, metrics)
	srv.Close()

	_, err := client.CreateTransaction(context.Background(), &entity.TransactionParams{Rate: "rate_1"})
	require.Error(t, err)

	var upstreamErr *entity.UpstreamError
	require.False(t, errors.As(err, &upstreamErr))
}
