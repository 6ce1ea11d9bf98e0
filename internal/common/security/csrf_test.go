package security

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const loginPage = `<!DOCTYPE html>
<html><body>
<form method="post" action="/login">
  <input type="text" name="username">
  <input type="hidden" name="csrfmiddlewaretoken" value="page-token">
</form>
</body></html>`

func TestPageToken_Load(t *testing.T) {
	p := NewPageToken("")
	if p.CSRFToken() != "" {
		t.Error("Expected empty token before any page is loaded")
	}
	if err := p.Load(strings.NewReader(loginPage)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := p.CSRFToken(); got != "page-token" {
		t.Errorf("Expected 'page-token', got %q", got)
	}

	if err := p.Load(strings.NewReader(`<html><body><p>no form</p></body></html>`)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := p.CSRFToken(); got != "" {
		t.Errorf("Expected token cleared, got %q", got)
	}
}

func TestPageToken_CustomField(t *testing.T) {
	p := NewPageToken("_token")
	p.Load(strings.NewReader(`<input name="_token" value="laravel"><input name="csrfmiddlewaretoken" value="django">`))
	if got := p.CSRFToken(); got != "laravel" {
		t.Errorf("Expected 'laravel', got %q", got)
	}
}

func TestPageToken_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(loginPage))
	}))
	defer srv.Close()

	p := NewPageToken("")
	if err := p.Fetch(context.Background(), srv.Client(), srv.URL+"/"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got := p.CSRFToken(); got != "page-token" {
		t.Errorf("Expected 'page-token', got %q", got)
	}
	if err := p.Fetch(context.Background(), srv.Client(), srv.URL+"/missing"); err == nil {
		t.Error("Expected error for a 404 page")
	}
}

func TestCookieToken(t *testing.T) {
	jar, _ := cookiejar.New(nil)
	site, _ := url.Parse("http://judge.test/")
	c := NewCookieToken(jar, site, "")

	if got := c.CSRFToken(); got != "" {
		t.Errorf("Expected no token, got %q", got)
	}

	jar.SetCookies(site, []*http.Cookie{
		{Name: "sessionid", Value: "s1", Path: "/"},
		{Name: "csrftoken", Value: "abc%3D", Path: "/"},
	})
	if got := c.CSRFToken(); got != "abc=" {
		t.Errorf("Expected decoded cookie 'abc=', got %q", got)
	}

	if got := NewCookieToken(nil, site, "").CSRFToken(); got != "" {
		t.Errorf("Expected empty token without a jar, got %q", got)
	}
}

func TestFirstOf(t *testing.T) {
	empty := ProviderFunc(func() string { return "" })
	first := ProviderFunc(func() string { return "first" })
	second := ProviderFunc(func() string { return "second" })

	testCases := []struct {
		name      string
		providers []CredentialProvider
		want      string
	}{
		{"none", nil, ""},
		{"skips empty", []CredentialProvider{empty, second}, "second"},
		{"keeps order", []CredentialProvider{first, second}, "first"},
		{"skips nil", []CredentialProvider{nil, first}, "first"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FirstOf(tc.providers...).CSRFToken(); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
