package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sibghat34/shippo-api/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPath_Defaults(t *testing.T) {
	t.Setenv("SHIPPO_API", "shippo_test_key")

	cfg, err := config.LoadPath(writeConfig(t, "env: local\n"))
	require.NoError(t, err)

	require.Equal(t, "shippo_test_key", cfg.Shippo.APIKey)
	require.Equal(t, "https://api.goshippo.com", cfg.Shippo.BaseURL)
	require.Equal(t, "2018-02-08", cfg.Shippo.APIVersion)
	require.Equal(t, "8000", cfg.HTTP.Port)
	require.Equal(t, "http://localhost:5173", cfg.HTTP.AllowedOrigin)
	require.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "PDF", cfg.Label.FileType)

	require.Equal(t, "San Francisco", cfg.Label.Origin.City)
	require.Equal(t, "Shippo", cfg.Label.Origin.Company)
	require.True(t, cfg.Label.Origin.IsResidential)
	require.Equal(t, "receiver@example.com", cfg.Label.Destination.Email)
	require.Equal(t, "kg", cfg.Label.Parcel.MassUnit)
	require.Equal(t, "USPS_FlatRateGiftCardEnvelope", cfg.Label.Parcel.Template)
	require.Equal(t, "Laptop", cfg.Label.Parcel.Insurance.Content)
}

func TestLoadPath_TemplateOverrides(t *testing.T) {
	t.Setenv("SHIPPO_API", "shippo_test_key")

	path := writeConfig(t, `
label:
  destination:
    city: Oakland
    zip: "94607"
  parcel:
    template: ""
`)

	cfg, err := config.LoadPath(path)
	require.NoError(t, err)

	require.Equal(t, "Oakland", cfg.Label.Destination.City)
	require.Equal(t, "94607", cfg.Label.Destination.Zip)
	require.Equal(t, "CA", cfg.Label.Destination.State)
	require.Equal(t, "5555555555", cfg.Label.Destination.Phone)
	require.Empty(t, cfg.Label.Parcel.Template)
	require.Equal(t, "cm", cfg.Label.Parcel.DistanceUnit)
}

func TestLoadPath_Errors(t *testing.T) {
	testCases := []struct {
		desc  string
		setup func(t *testing.T) string
	}{
		{
			desc: "MissingFile",
			setup: func(t *testing.T) string {
				t.Setenv("SHIPPO_API", "shippo_test_key")
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
		},
		{
			desc: "MissingAPIKey",
			setup: func(t *testing.T) string {
				t.Setenv("SHIPPO_API", "")
				return writeConfig(t, "env: local\n")
			},
		},
		{
			desc: "InvalidCountry",
			setup: func(t *testing.T) string {
				t.Setenv("SHIPPO_API", "shippo_test_key")
				return writeConfig(t, "label:\n  origin:\n    country: USA\n")
			},
		},
		{
			desc: "InvalidEnv",
			setup: func(t *testing.T) string {
				t.Setenv("SHIPPO_API", "shippo_test_key")
				return writeConfig(t, "env: moon\n")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := config.LoadPath(tc.setup(t))
			require.Error(t, err)
		})
	}
}
