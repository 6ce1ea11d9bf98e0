package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"oj_client/internal/api"
	"oj_client/internal/app/service"
	"oj_client/internal/common/security"
	"oj_client/internal/platform/config"
	"oj_client/internal/platform/store"

	"golang.org/x/net/publicsuffix"
)

// services is everything a subcommand can reach.
type services struct {
	problems    *service.ProblemService
	contests    *service.ContestService
	submissions *service.SubmissionService
	rank        *service.RankService
	antiCheat   *service.AntiCheatService

	// shared is nil unless REDIS_ADDR points at a reachable Redis.
	shared *store.Redis
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	// 1. Load Configuration
	config.Load()
	cfg := config.AppConfig

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize application state
	memory := store.NewMemory()
	var notifier api.Notifier = memory
	var shared *store.Redis
	if cfg.RedisAddr != "" {
		rdb, err := store.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("WARN: %v, keeping state in memory", err)
		} else {
			shared = store.NewRedis(rdb, cfg.StatePrefix)
			defer shared.Close()
			notifier = fanout{memory, shared}
		}
	}

	// 3. Initialize the dispatcher
	client, err := newClient(ctx, cfg, notifier)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	// 4. Initialize Services
	antiCheat := service.NewAntiCheatService(client)
	svc := &services{
		problems:    service.NewProblemService(client),
		contests:    service.NewContestService(client, antiCheat),
		submissions: service.NewSubmissionService(client),
		rank:        service.NewRankService(client),
		antiCheat:   antiCheat,
		shared:      shared,
	}

	// 5. Run the command
	runErr := cmd.run(ctx, svc, os.Args[2:])

	for _, message := range memory.Drain() {
		fmt.Fprintln(os.Stderr, "error:", message)
	}
	if mode, visible := memory.Modal(); visible && mode == store.ModalLogin {
		fmt.Fprintln(os.Stderr, "session expired: set OJ_SESSION_ID and OJ_CSRF_TOKEN from a logged-in browser")
	}
	if runErr != nil {
		log.Printf("ERROR: %s failed: %v", os.Args[1], runErr)
		os.Exit(1)
	}
}

func newClient(ctx context.Context, cfg *config.Config, notifier api.Notifier) (*api.Client, error) {
	site, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid OJ_BASE_URL %q: %w", cfg.BaseURL, err)
	}
	site.Path = "/"
	site.RawQuery = ""

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	var seeded []*http.Cookie
	if cfg.SessionID != "" {
		seeded = append(seeded, &http.Cookie{Name: "sessionid", Value: cfg.SessionID, Path: "/"})
	}
	if cfg.CSRFToken != "" {
		seeded = append(seeded, &http.Cookie{Name: cfg.CSRFCookieName, Value: cfg.CSRFToken, Path: "/"})
	}
	jar.SetCookies(site, seeded)

	// The page token wins over the cookie once a page has been loaded.
	page := security.NewPageToken(cfg.CSRFFormField)
	client, err := api.NewClient(api.Config{
		BaseURL:        cfg.BaseURL,
		Timeout:        cfg.Timeout,
		CSRFHeaderName: cfg.CSRFHeaderName,
		Jar:            jar,
		Notifier:       notifier,
		Credentials:    security.FirstOf(page, security.NewCookieToken(jar, site, cfg.CSRFCookieName)),
	})
	if err != nil {
		return nil, err
	}

	if cfg.CSRFPageURL != "" {
		if err := page.Fetch(ctx, client.HTTPClient(), cfg.CSRFPageURL); err != nil {
			log.Printf("WARN: could not read CSRF token from %s: %v", cfg.CSRFPageURL, err)
		}
	}
	return client, nil
}

// fanout forwards notifications to several state stores.
type fanout []api.Notifier

func (f fanout) Notify(message string) {
	for _, n := range f {
		n.Notify(message)
	}
}

func (f fanout) RequestLogin() {
	for _, n := range f {
		n.RequestLogin()
	}
}
