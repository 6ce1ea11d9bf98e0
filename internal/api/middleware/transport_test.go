package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestID_UsesContextValue(t *testing.T) {
	var seen string
	rt := RequestID(RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get(RequestIDHeader)
		return &http.Response{StatusCode: http.StatusOK, Request: r}, nil
	}))

	ctx := WithRequestID(context.Background(), "req-1")
	req := httptest.NewRequest(http.MethodGet, "http://judge.test/api/problem", nil).WithContext(ctx)
	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if seen != "req-1" {
		t.Errorf("Expected request id 'req-1', got %q", seen)
	}
	if req.Header.Get(RequestIDHeader) != "" {
		t.Error("Expected the caller's request to be left untouched")
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	rt := RequestID(RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get(RequestIDHeader)
		return &http.Response{StatusCode: http.StatusOK}, nil
	}))

	req := httptest.NewRequest(http.MethodGet, "http://judge.test/api/problem", nil)
	rt.RoundTrip(req)
	if len(seen) != 36 {
		t.Errorf("Expected a uuid request id, got %q", seen)
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(r)
			})
		}
	}
	base := RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		order = append(order, "base")
		return &http.Response{StatusCode: http.StatusOK}, nil
	})

	rt := Chain(base, mark("first"), mark("second"))
	rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://judge.test/", nil))

	if got := strings.Join(order, ","); got != "first,second,base" {
		t.Errorf("Expected first,second,base, got %s", got)
	}
}

func TestLogger_WritesStatus(t *testing.T) {
	var buf bytes.Buffer
	rt := Logger(log.New(&buf, "", 0))(RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusTeapot}, nil
	}))

	rt.RoundTrip(httptest.NewRequest(http.MethodPost, "http://judge.test/api/login", nil))
	out := buf.String()
	if !strings.Contains(out, "POST /api/login") || !strings.Contains(out, "418") {
		t.Errorf("Unexpected log line: %q", out)
	}
}
