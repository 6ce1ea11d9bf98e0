package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDCtxKey contextKey = "requestID"

const RequestIDHeader = "X-Request-ID"

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Middleware decorates an outbound transport.
type Middleware func(http.RoundTripper) http.RoundTripper

// Chain wraps base so that the first middleware runs outermost.
func Chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// WithRequestID stores id in ctx so RequestID reuses it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request id stored by WithRequestID.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

// NewRequestID returns a fresh id for an outbound call.
func NewRequestID() string {
	return uuid.NewString()
}

// RequestID sets X-Request-ID on every outbound request that lacks one.
func RequestID(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if r.Header.Get(RequestIDHeader) != "" {
			return next.RoundTrip(r)
		}
		id, ok := GetRequestIDFromContext(r.Context())
		if !ok {
			id = NewRequestID()
		}
		r = r.Clone(r.Context())
		r.Header.Set(RequestIDHeader, id)
		return next.RoundTrip(r)
	})
}

// Logger logs every outbound request with its status and duration.
func Logger(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)
			id := r.Header.Get(RequestIDHeader)
			if err != nil {
				logger.Printf("WARN: %s %s [%s] failed after %s: %v", r.Method, r.URL.Path, id, time.Since(start), err)
				return resp, err
			}
			logger.Printf("INFO: %s %s [%s] %d in %s", r.Method, r.URL.Path, id, resp.StatusCode, time.Since(start))
			return resp, nil
		})
	}
}
