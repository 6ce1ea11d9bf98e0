package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"oj_client/internal/common"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RecordedRequest is one request the fake judge received.
type RecordedRequest struct {
	Method    string
	Path      string
	Query     url.Values
	Header    http.Header
	Body      []byte
	RequestID string
}

// Judge is a fake judge backend speaking the {error, data} envelope. Routes
// can be overridden per test with Handle.
type Judge struct {
	Server *httptest.Server

	mu        sync.Mutex
	requests  []RecordedRequest
	overrides map[string]http.HandlerFunc
}

// NewJudge starts a fake judge; it is closed when the test ends.
func NewJudge(t *testing.T) *Judge {
	t.Helper()
	j := &Judge{overrides: make(map[string]http.HandlerFunc)}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(j.record)
	r.Use(j.override)

	r.Route("/api", func(api chi.Router) {
		api.Get("/website", j.websiteConf)
		api.Get("/problem", j.problem)
		api.Get("/contest", j.contest)
		api.Get("/contest/problem", j.contestProblems)
		api.Get("/contest/anti_cheat_status", j.contestAntiCheatStatus)
		api.Get("/contest/problem_anti_cheat_status", j.problemAntiCheatStatus)
		api.Post("/contest/anti_cheat_violation/", j.reportViolation)
		api.Post("/submission", j.submitCode)
		api.Put("/submission", j.ok)
		api.Put("/profile", j.ok)
		api.Delete("/sessions", j.ok)
		api.Post("/login", j.ok)
	})

	j.Server = httptest.NewServer(r)
	t.Cleanup(j.Server.Close)
	return j
}

// BaseURL is the API root to configure clients with.
func (j *Judge) BaseURL() string {
	return j.Server.URL + "/api"
}

// Handle overrides the handler for method and path (e.g. "/api/problem").
func (j *Judge) Handle(method, path string, h http.HandlerFunc) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.overrides[method+" "+path] = h
}

// Requests returns a copy of every request received so far.
func (j *Judge) Requests() []RecordedRequest {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]RecordedRequest(nil), j.requests...)
}

// LastRequest returns the most recent request; ok is false when none arrived.
func (j *Judge) LastRequest() (RecordedRequest, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.requests) == 0 {
		return RecordedRequest{}, false
	}
	return j.requests[len(j.requests)-1], true
}

func (j *Judge) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		j.mu.Lock()
		j.requests = append(j.requests, RecordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.Query(),
			Header:    r.Header.Clone(),
			Body:      body,
			RequestID: chiMiddleware.GetReqID(r.Context()),
		})
		j.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (j *Judge) override(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		j.mu.Lock()
		h, ok := j.overrides[r.Method+" "+r.URL.Path]
		j.mu.Unlock()
		if ok {
			h(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (j *Judge) ok(w http.ResponseWriter, r *http.Request) {
	common.RespondWithData(w, nil)
}

func (j *Judge) websiteConf(w http.ResponseWriter, r *http.Request) {
	common.RespondWithData(w, map[string]interface{}{
		"website_name":   "Test OJ",
		"allow_register": true,
	})
}

func (j *Judge) problem(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("problem_id"); id != "" {
		common.RespondWithData(w, map[string]interface{}{
			"id":          1,
			"_id":         id,
			"title":       "A + B Problem",
			"description": "<p>Add two numbers.</p>",
			"samples":     []map[string]string{{"input": "1 2", "output": "3"}},
			"time_limit":  1000,
			"difficulty":  "Low",
		})
		return
	}
	common.RespondWithData(w, map[string]interface{}{
		"results": []map[string]interface{}{
			{"id": 1, "_id": "1000", "title": "A + B Problem", "difficulty": "Low"},
			{"id": 2, "_id": "1001", "title": "Shortest Path", "difficulty": "High"},
		},
		"total": 2,
	})
}

func (j *Judge) contest(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("id") == "404" {
		common.RespondWithError(w, http.StatusOK, "Contest does not exist")
		return
	}
	common.RespondWithData(w, map[string]interface{}{
		"id":        7,
		"title":     "Weekly Round",
		"rule_type": "ACM",
		"status":    "0",
	})
}

func (j *Judge) contestProblems(w http.ResponseWriter, r *http.Request) {
	common.RespondWithData(w, []map[string]interface{}{
		{"id": 3, "_id": "A", "title": "Warm Up"},
		{"id": 4, "_id": "B", "title": "Hard One"},
	})
}

func (j *Judge) contestAntiCheatStatus(w http.ResponseWriter, r *http.Request) {
	common.RespondWithData(w, map[string]interface{}{
		"violation_count":    2,
		"anti_cheat_enabled": true,
	})
}

func (j *Judge) problemAntiCheatStatus(w http.ResponseWriter, r *http.Request) {
	common.RespondWithData(w, map[string]interface{}{
		"problem_violation_count": 1,
		"problem_penalty_minutes": 5,
		"problem_solved":          false,
		"anti_cheat_enabled":      true,
	})
}

func (j *Judge) reportViolation(w http.ResponseWriter, r *http.Request) {
	common.RespondWithData(w, map[string]interface{}{"id": 1})
}

func (j *Judge) submitCode(w http.ResponseWriter, r *http.Request) {
	common.RespondWithData(w, map[string]interface{}{"submission_id": "5f3c0d"})
}
