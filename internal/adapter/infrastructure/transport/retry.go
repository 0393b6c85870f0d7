package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"quantum-portctl/internal/pkg/logging"

	"github.com/juju/clock"
	"github.com/juju/retry"
	"github.com/sirupsen/logrus"
)

var (
	errRetryableStatus = errors.New("retryable response status")
	errRewind          = errors.New("cannot replay request body")
)

// RetryRoundTripper retries idempotent requests that fail on the wire or are answered with
// 502, 503 or 504. POST requests are never retried.
type RetryRoundTripper struct {
	next    http.RoundTripper
	retries int
	delay   time.Duration
	clock   clock.Clock
}

// NewRetryRoundTripper wraps next. Delays double after every attempt.
func NewRetryRoundTripper(next http.RoundTripper, retries int, delay time.Duration, clk clock.Clock) *RetryRoundTripper {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return &RetryRoundTripper{
		next:    next,
		retries: retries,
		delay:   delay,
		clock:   clk,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *RetryRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if !idempotent(req.Method) || !replayable(req) {
		return t.next.RoundTrip(req)
	}

	logger := logging.WithComponent("transport").WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.Redacted(),
	})

	var (
		resp    *http.Response
		lastErr error
		first   = true
	)
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			// Only the final response is handed back
			discard(resp)
			resp = nil

			attempt := req
			if !first {
				var err error
				if attempt, err = rewind(req); err != nil {
					lastErr = fmt.Errorf("%w: %v", errRewind, err)
					return lastErr
				}
			}
			first = false

			r, err := t.next.RoundTrip(attempt)
			if err != nil {
				lastErr = err
				return err
			}
			resp = r
			if retryableStatus(r.StatusCode) {
				lastErr = nil
				return errRetryableStatus
			}
			return nil
		},
		IsFatalError: func(err error) bool {
			if errors.Is(err, errRetryableStatus) {
				return false
			}
			return errors.Is(err, errRewind) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		NotifyFunc: func(err error, attempt int) {
			logger.WithError(err).WithField("attempt", attempt).Debug("Request attempt failed")
		},
		Attempts:    t.retries + 1,
		Delay:       t.delay,
		BackoffFunc: retry.DoubleDelay,
		Clock:       t.clock,
		Stop:        req.Context().Done(),
	})
	if err == nil || resp != nil {
		return resp, nil
	}
	if ctxErr := req.Context().Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, err
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	}
	return false
}

func retryableStatus(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
