package weatherbit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-key"

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     testKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestClient_History_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "52.52", r.URL.Query().Get("lat"))
		assert.Equal(t, "13.405", r.URL.Query().Get("lon"))
		assert.Equal(t, "2026-02-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-03-03", r.URL.Query().Get("end_date"))
		assert.Equal(t, testKey, r.URL.Query().Get("key"))

		resp := historyResponse{
			Data: []Observation{
				{MaxDNI: 812.4, Date: "2026-02-01", MaxTempTS: 1769947200, SolarRad: 96.2},
				{MaxDNI: 640.1, Date: "2026-02-02", MaxTempTS: 1770033600, SolarRad: 71.8},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	observations, err := c.History(context.Background(), "roof-east", 52.52, 13.405, "2026-02-01", "2026-03-03")
	require.NoError(t, err)

	require.Len(t, observations, 2)
	assert.Equal(t, 812.4, observations[0].MaxDNI)
	assert.Equal(t, "2026-02-01", observations[0].Date)
	assert.Equal(t, 96.2, observations[0].SolarRad)
}

func TestClient_History_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"API key not valid"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.History(context.Background(), "roof-east", 52.52, 13.405, "2026-02-01", "2026-03-03")
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "roof-east", fetchErr.Location)
	assert.Contains(t, err.Error(), "status 403")
}

func TestClient_History_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused

	c := testClient(srv.URL)
	_, err := c.History(context.Background(), "carport", 1, 2, "2026-02-01", "2026-03-03")
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "carport", fetchErr.Location)
}

func TestClient_History_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.History(context.Background(), "roof-east", 1, 2, "2026-02-01", "2026-03-03")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
