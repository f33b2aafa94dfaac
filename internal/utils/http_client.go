package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a thin wrapper around resty.Client. It embeds *resty.Client
// so all of its methods are available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client. A positive timeout is applied
// to every request; zero leaves the transport default.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
