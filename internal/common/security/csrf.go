package security

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

const (
	DefaultCookieName = "csrftoken"
	DefaultHeaderName = "X-CSRFToken"
	DefaultFormField  = "csrfmiddlewaretoken"
)

// CredentialProvider supplies the CSRF token attached to mutating requests.
// An empty string means no token is available.
type CredentialProvider interface {
	CSRFToken() string
}

// ProviderFunc adapts a plain function to CredentialProvider.
type ProviderFunc func() string

func (f ProviderFunc) CSRFToken() string { return f() }

// PageToken holds the token found in a hidden form field of the last page
// loaded into it.
type PageToken struct {
	field string

	mu    sync.RWMutex
	token string
}

func NewPageToken(field string) *PageToken {
	if field == "" {
		field = DefaultFormField
	}
	return &PageToken{field: field}
}

func (p *PageToken) CSRFToken() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}

// Load parses an HTML document and keeps the value of the first input named
// after the configured field. A document without the field clears the token.
func (p *PageToken) Load(r io.Reader) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("failed to parse page: %w", err)
	}
	token := findInputValue(doc, p.field)

	p.mu.Lock()
	p.token = token
	p.mu.Unlock()
	return nil
}

// Fetch loads the page at pageURL through client.
func (p *PageToken) Fetch(ctx context.Context, client *http.Client, pageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create page request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch page %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to fetch page %s: status %d", pageURL, resp.StatusCode)
	}
	return p.Load(resp.Body)
}

func findInputValue(n *html.Node, field string) string {
	if n.Type == html.ElementNode && n.Data == "input" {
		var name, value string
		for _, a := range n.Attr {
			switch a.Key {
			case "name":
				name = a.Val
			case "value":
				value = a.Val
			}
		}
		if name == field && value != "" {
			return value
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v := findInputValue(c, field); v != "" {
			return v
		}
	}
	return ""
}

// CookieToken reads the token from a cookie jar entry for siteURL.
type CookieToken struct {
	jar     http.CookieJar
	siteURL *url.URL
	name    string
}

func NewCookieToken(jar http.CookieJar, siteURL *url.URL, name string) *CookieToken {
	if name == "" {
		name = DefaultCookieName
	}
	return &CookieToken{jar: jar, siteURL: siteURL, name: name}
}

func (c *CookieToken) CSRFToken() string {
	if c.jar == nil || c.siteURL == nil {
		return ""
	}
	for _, cookie := range c.jar.Cookies(c.siteURL) {
		if cookie.Name != c.name {
			continue
		}
		if v, err := url.QueryUnescape(cookie.Value); err == nil {
			return strings.TrimSpace(v)
		}
		return cookie.Value
	}
	return ""
}

// FirstOf returns the first non-empty token among providers, in order.
func FirstOf(providers ...CredentialProvider) CredentialProvider {
	return ProviderFunc(func() string {
		for _, p := range providers {
			if p == nil {
				continue
			}
			if token := p.CSRFToken(); token != "" {
				return token
			}
		}
		return ""
	})
}
