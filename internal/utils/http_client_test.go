package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flakyServer(t *testing.T, failures int32, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= failures {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func withFastRetries(t *testing.T) {
	t.Helper()
	prev := retryWait
	retryWait = time.Millisecond
	t.Cleanup(func() { retryWait = prev })
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)

	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:8080", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
	assert.Equal(t, getRetries, client.RetryCount)
	assert.NotSame(t, client.Client, NewHTTPClient("http://localhost:8080", time.Second).Client)
}

func TestHTTPClient_RetriesGET(t *testing.T) {
	withFastRetries(t)
	srv, hits := flakyServer(t, 1, http.StatusServiceUnavailable)

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/api/records")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(2), hits.Load())
}

func TestHTTPClient_GivesUpAfterRetries(t *testing.T) {
	withFastRetries(t)
	srv, hits := flakyServer(t, 10, http.StatusBadGateway)

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/api/records")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode())
	assert.Equal(t, int32(getRetries+1), hits.Load())
}

func TestHTTPClient_DoesNotRetry(t *testing.T) {
	tests := []struct {
		name   string
		method string
		status int
	}{
		{name: "POST on 503", method: http.MethodPost, status: http.StatusServiceUnavailable},
		{name: "DELETE on 502", method: http.MethodDelete, status: http.StatusBadGateway},
		{name: "GET on 500", method: http.MethodGet, status: http.StatusInternalServerError},
		{name: "GET on 401", method: http.MethodGet, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFastRetries(t)
			srv, hits := flakyServer(t, 1, tt.status)

			resp, err := NewHTTPClient(srv.URL, time.Second).R().Execute(tt.method, "/api/records")

			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode())
			assert.Equal(t, int32(1), hits.Load())
		})
	}
}
