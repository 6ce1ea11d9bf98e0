package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"oj_client/internal/api/middleware"
	"oj_client/internal/common"
	"oj_client/internal/common/security"
)

const (
	DefaultTimeout = 30 * time.Second

	// Failures on paths containing this segment are never shown to the user.
	antiCheatSegment = "anti_cheat"

	unknownErrorMessage = "Unknown error"
	networkErrorMessage = "Network error"
	timeoutErrorMessage = "Request timeout"
)

// Config configures a Client. Only BaseURL is required.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	CSRFHeaderName string
	Transport      http.RoundTripper
	Jar            http.CookieJar
	Credentials    security.CredentialProvider
	Notifier       Notifier
	Logger         *log.Logger
}

// Client is the request dispatcher. It is safe for concurrent use; calls
// share one http.Client and are never retried.
type Client struct {
	baseURL     *url.URL
	http        *http.Client
	csrfHeader  string
	credentials security.CredentialProvider
	notifier    Notifier
	logger      *log.Logger
}

func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, common.ErrValidation)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	header := cfg.CSRFHeaderName
	if header == "" {
		header = security.DefaultHeaderName
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	credentials := cfg.Credentials
	if credentials == nil {
		credentials = security.NewCookieToken(cfg.Jar, base, "")
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Transport: middleware.Chain(cfg.Transport, middleware.RequestID, middleware.Logger(logger)),
			Jar:       cfg.Jar,
			Timeout:   timeout,
		},
		csrfHeader:  header,
		credentials: credentials,
		notifier:    notifier,
		logger:      logger,
	}, nil
}

// HTTPClient exposes the underlying client, sharing its cookie jar.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

func (c *Client) Get(ctx context.Context, path string, params Params) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, &Options{Params: params})
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, &Options{Body: body})
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, &Options{Body: body})
}

func (c *Client) Delete(ctx context.Context, path string, params Params) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, &Options{Params: params})
}

// Do issues exactly one call and normalizes its outcome. It returns a
// *common.Error of kind API, Network or Timeout on failure.
func (c *Client) Do(ctx context.Context, method, path string, opts *Options) (*Response, error) {
	method = strings.ToUpper(method)
	if opts == nil {
		opts = &Options{}
	}
	reqID := middleware.NewRequestID()
	ctx = middleware.WithRequestID(ctx, reqID)

	req, err := c.newRequest(ctx, method, path, opts)
	if err != nil {
		return nil, c.fail(ctx, method, path, &common.Error{Kind: common.KindNetwork, Message: err.Error(), Err: err})
	}
	c.logger.Printf("INFO: AJAX %s %s [%s]", method, path, reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(ctx, method, path, transportError(nil, nil, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(ctx, method, path, transportError(resp, nil, err))
	}
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(ctx, method, path, transportError(resp, raw, nil))
	}

	env := decodeEnvelope(raw)
	if env.Failed() {
		message := env.DataText()
		if message == "" {
			message = env.ErrorText()
		}
		if message == "" {
			message = unknownErrorMessage
		}
		apiErr := &common.Error{Kind: common.KindAPI, Message: message, Response: resp}
		c.logger.Printf("ERROR: AJAX %s %s [%s] API error: %s", method, path, reqID, message)
		c.notify(path, message)
		if env.LoginRequired() {
			c.notifier.RequestLogin()
		}
		return nil, apiErr
	}

	return &Response{Body: env, Raw: resp}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, opts *Options) (*http.Request, error) {
	endpoint := c.endpoint(path, opts.Params)

	var body io.Reader
	if method != http.MethodGet {
		payload := opts.Body
		if payload == nil {
			payload = struct{}{}
		}
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body for %s: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if method == http.MethodPost || method == http.MethodPut {
		if token := c.credentials.CSRFToken(); token != "" {
			req.Header.Set(c.csrfHeader, token)
		}
	}
	return req, nil
}

func (c *Client) endpoint(path string, params Params) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawPath = ""
	u.RawQuery = params.Values().Encode()
	return u.String()
}

// fail reports a transport-level failure and returns it. Calls the caller
// cancelled are not shown to the user.
func (c *Client) fail(ctx context.Context, method, path string, err *common.Error) *common.Error {
	if errors.Is(ctx.Err(), context.Canceled) {
		c.logger.Printf("WARN: AJAX %s %s cancelled: %s", method, path, err.Message)
		return err
	}
	c.logger.Printf("ERROR: AJAX %s %s %s: %s", method, path, err.Kind, err.Message)
	c.notify(path, err.Message)
	return err
}

func (c *Client) notify(path, message string) {
	if strings.Contains(path, antiCheatSegment) {
		return
	}
	c.notifier.Notify(message)
}

// decodeEnvelope reads a 2xx body. Bodies that are not a JSON object are
// kept whole in Data with no error, so they resolve.
func decodeEnvelope(raw []byte) common.Envelope {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return common.Envelope{}
	}
	if trimmed[0] == '{' {
		var env common.Envelope
		if err := json.Unmarshal(trimmed, &env); err == nil {
			return env
		}
	}
	if json.Valid(trimmed) {
		return common.Envelope{Data: json.RawMessage(trimmed)}
	}
	text, _ := json.Marshal(string(raw))
	return common.Envelope{Data: text}
}

func transportError(resp *http.Response, raw []byte, err error) *common.Error {
	out := &common.Error{Kind: common.KindNetwork, Message: networkErrorMessage, Response: resp, Err: err}
	switch {
	case isTimeout(err):
		out.Kind = common.KindTimeout
		out.Message = timeoutErrorMessage
	case resp != nil:
		out.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, statusText(resp))
		if refined := bodyMessage(raw); refined != "" {
			out.Message = refined
		}
	case err != nil && err.Error() != "":
		out.Message = err.Error()
	}
	return out
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	if text == "" {
		text = "Error"
	}
	return text
}

// bodyMessage extracts a message from a failed response body: a plain
// string body wins, then the envelope's error field, then its data field.
func bodyMessage(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	if !json.Valid(trimmed) {
		return string(raw)
	}
	switch trimmed[0] {
	case '"':
		return common.ScalarText(trimmed)
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return ""
		}
		if msg := common.ScalarText(fields["error"]); msg != "" {
			return msg
		}
		return common.ScalarText(fields["data"])
	}
	return ""
}
