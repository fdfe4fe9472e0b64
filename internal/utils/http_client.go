package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const getRetries = 2

// retryWait is the first backoff step between GET retries.
var retryWait = 250 * time.Millisecond

// HTTPClient is the resty client the remote store talks to the backend with.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client bound to baseURL. Only GET requests are
// retried, and only on transport errors or 502, 503 and 504; POST and DELETE
// are sent once.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(getRetries).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(4 * retryWait).
		AddRetryCondition(retryableGET)

	return &HTTPClient{Client: client}
}

func retryableGET(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
