package banner

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
)

// Transport wraps a resty client with the retry policy the
// registration backends require: connect and timeout failures are
// retried with a linearly increasing sleep, anything else is logged
// and surfaces as a nil response. Callers must treat a nil response
// as "no data" rather than a crash.
type Transport struct {
	http *resty.Client
	// retry ceiling, negative means retry forever
	retries int
	timeout time.Duration
}

type RequestOptions struct {
	Headers map[string]string
	// overrides the transport timeout for this call only
	Timeout time.Duration
}

func NewTransport(client *resty.Client, retries int, timeout time.Duration) *Transport {
	return &Transport{
		http:    client,
		retries: retries,
		timeout: timeout,
	}
}

func (t *Transport) Do(ctx context.Context, method, url string, opts RequestOptions) *resty.Response {
	timeout := t.timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	tries := 0
	for {
		if tries > 0 {
			if t.retries >= 0 && tries > t.retries {
				return nil
			}

			slog.DebugContext(ctx, "retrying request",
				"method", method,
				"url", url,
				"sleep_seconds", tries,
			)
			select {
			case <-time.After(time.Duration(tries) * time.Second):
			case <-ctx.Done():
				return nil
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		req := t.http.R().
			SetContext(attemptCtx).
			SetHeader("Accept", "*/*")
		for k, v := range opts.Headers {
			req.SetHeader(k, v)
		}

		res, err := req.Execute(method, url)
		cancel()
		if err == nil {
			// any status code is returned as-is, interpretation
			// belongs to the caller
			return res
		}

		if isConnectFailure(err) {
			tries++
			slog.WarnContext(ctx, "transient request failure",
				"method", method,
				"url", url,
				"err", err,
			)
			continue
		}

		slog.ErrorContext(ctx, "request failed",
			"method", method,
			"url", url,
			"err", err,
		)
		return nil
	}
}

func isConnectFailure(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}
