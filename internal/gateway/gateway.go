package gateway

import (
	"fmt"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Config holds the settings shared by the remote lookup gateways.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
}

func (c *Config) normalize() {
	if c.Timeout <= 0 {
		c.Timeout = 3 * time.Second
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 2
	}
}

func newHTTPClient(timeout time.Duration) *fasthttp.Client {
	return &fasthttp.Client{
		MaxConnsPerHost:     100,
		MaxIdleConnDuration: 30 * time.Second,
		ReadTimeout:         timeout,
		WriteTimeout:        timeout,
		MaxConnWaitTimeout:  5 * time.Second,
	}
}

// fetch performs a GET with a bounded per-call timeout and a fixed number of
// attempts. Cancellation is checked between attempts; a cancelled context
// aborts the retry loop, not the in-flight call.
func fetch(client *fasthttp.Client, cfg Config, path string, done <-chan struct{}, logger *zap.Logger) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		select {
		case <-done:
			return nil, fmt.Errorf("lookup cancelled: %s", path)
		default:
		}

		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()

		req.Header.SetMethod(http.MethodGet)
		req.Header.SetContentType("application/json")
		req.SetRequestURI(cfg.BaseURL + path)

		err := client.DoTimeout(req, resp, cfg.Timeout)
		if err == nil {
			status := resp.StatusCode()
			if status >= 200 && status < 300 {
				body := append([]byte(nil), resp.Body()...)
				fasthttp.ReleaseRequest(req)
				fasthttp.ReleaseResponse(resp)
				return body, nil
			}
			err = fmt.Errorf("remote returned status %d for %s", status, path)
		}

		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)

		lastErr = err
		logger.Warn("remote lookup attempt failed",
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	return nil, lastErr
}
