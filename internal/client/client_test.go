package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sibghat34/shippo-api/internal/client"
	"github.com/Sibghat34/shippo-api/internal/form"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func generateValues() form.Values {
	return form.Values{
		SenderName:      gofakeit.Name(),
		SenderAddress:   gofakeit.Street(),
		ReceiverName:    gofakeit.Name(),
		ReceiverAddress: gofakeit.Street(),
		PackageWeight:   "2",
		Length:          "10",
		Width:           "15",
		Height:          "5",
	}
}

func TestClient_CreateLabel(t *testing.T) {
	testCases := []struct {
		desc        string
		status      int
		body        string
		expectedURL string
		expectedErr *client.ResponseError
	}{
		{
			desc:        "Success",
			status:      http.StatusOK,
			body:        `{"labelUrl": "https://labels.example.com/1.pdf"}`,
			expectedURL: "https://labels.example.com/1.pdf",
		},
		{
			desc:   "ServerErrorWithMessage",
			status: http.StatusInternalServerError,
			body:   `{"error": "Error creating shipment: Error: Invalid address"}`,
			expectedErr: &client.ResponseError{
				StatusCode: http.StatusInternalServerError,
				Message:    "Error creating shipment: Error: Invalid address",
			},
		},
		{
			desc:   "ServerErrorWithoutBody",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			expectedErr: &client.ResponseError{
				StatusCode: http.StatusBadGateway,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			values := generateValues()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/create-shipping-label", r.URL.Path)
				require.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got form.Values
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				if diff := cmp.Diff(values, got); diff != "" {
					t.Errorf("request body mismatch (-want +got):\n%s", diff)
				}

				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := client.New(srv.URL+"/", client.WithHTTPClient(srv.Client()))

			labelURL, err := c.CreateLabel(context.Background(), values)
			if tc.expectedErr == nil {
				require.NoError(t, err)
				require.Equal(t, tc.expectedURL, labelURL)
				return
			}

			var respErr *client.ResponseError
			require.True(t, errors.As(err, &respErr))
			require.Equal(t, tc.expectedErr, respErr)
			require.Empty(t, labelURL)
		})
	}
}

func TestClient_ErrorMessages(t *testing.T) {
	withMessage := &client.ResponseError{StatusCode: 500, Message: "Error creating shipment: Error: boom"}
	require.Equal(t, "Error creating shipment: Error: boom", form.ErrorMessage(withMessage))

	withoutMessage := &client.ResponseError{StatusCode: 502}
	require.Equal(t, "Request failed with status code 502", form.ErrorMessage(withoutMessage))
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := client.New(url)
	_, err := c.CreateLabel(context.Background(), generateValues())
	require.Error(t, err)

	var respErr *client.ResponseError
	require.False(t, errors.As(err, &respErr))
	require.NotEqual(t, "Unknown error occurred", form.ErrorMessage(err))
}

func TestClient_SessionIntegration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "Error creating shipment: Error: Invalid address"}`))
	}))
	defer srv.Close()

	session := form.NewSession()
	values := generateValues()
	session.Values = values

	err := session.Submit(context.Background(), client.New(srv.URL))
	require.Error(t, err)
	require.Equal(t, "Error", session.Notification.Title)
	require.Equal(t, "Error creating shipment: Error: Invalid address", session.Notification.Description)
	require.Equal(t, values, session.Values)
}
