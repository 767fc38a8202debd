package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://example.com"))
//	resp, err := client.R().Get("/path")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an HTTPClient at construction time.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the base URL prepended to every relative request path.
func WithBaseURL(url string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(url)
	}
}

// WithTimeout sets the overall per-request timeout.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

// WithRetryCount enables retries of failed requests.
func WithRetryCount(n int) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(n)
	}
}

// NewHTTPClient creates a new HTTPClient with its own resty.Client,
// connection pool and state.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
