package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/akeren/email-collector/config"
	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/domain"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	"github.com/akeren/email-collector/pkg/events"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func skipUnlessIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}
}

// fakeGitHub serves the handful of REST v3 endpoints the client calls. Only
// repositories registered with addRepository exist.
type fakeGitHub struct {
	server *httptest.Server

	mu       sync.Mutex
	latest   map[string]time.Time
	requests int
}

func newFakeGitHub() *fakeGitHub {
	f := &fakeGitHub{latest: make(map[string]time.Time)}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeGitHub) Close() { f.server.Close() }

func (f *fakeGitHub) URL() string { return f.server.URL }

func (f *fakeGitHub) addRepository(fullName string, latest time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest[fullName] = latest
}

func (f *fakeGitHub) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeGitHub) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 3 || parts[0] != "repos" {
		http.NotFound(w, r)
		return
	}
	fullName := parts[1] + "/" + parts[2]

	f.mu.Lock()
	f.requests++
	latest, ok := f.latest[fullName]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Not Found"}`)
		return
	}

	at := latest.UTC().Format(time.RFC3339)
	var body string
	switch {
	case len(parts) == 3:
		body = fmt.Sprintf(`{"id":1,"name":%q,"full_name":%q}`, parts[2], fullName)
	case parts[3] == "commits":
		body = fmt.Sprintf(`[{"sha":"abc","html_url":"https://github.com/%s/commit/abc","author":{"login":"octocat"},
			"commit":{"message":"Latest change","author":{"name":"Octo Cat","date":%q}}}]`, fullName, at)
	case parts[3] == "pulls":
		body = fmt.Sprintf(`[{"title":"Older pull","html_url":"https://github.com/%s/pull/1","user":{"login":"alice"},
			"created_at":%q}]`, fullName, latest.Add(-time.Hour).UTC().Format(time.RFC3339))
	case parts[3] == "issues", parts[3] == "releases":
		body = `[]`
	default:
		w.WriteHeader(http.StatusNotFound)
		body = `{"message":"Not Found"}`
	}
	_, _ = io.WriteString(w, body)
}

type app struct {
	db        *gorm.DB
	server    *httptest.Server
	github    *fakeGitHub
	events    *events.Recorder
	core      *domain.CoreDomain
	appConfig *config.ApplicationConfig
}

func newApp(t require.TestingT, adminSecret string) *app {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// Each new connection to :memory: is a fresh database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.ModelRegistry...))

	lg := log.NewLoggerWithJSONOutput()
	gh := newFakeGitHub()
	recorder := events.NewRecorder()

	appConfig := &config.ApplicationConfig{
		DB:     db,
		Logger: lg,
		Events: recorder,
		Settings: &config.Settings{
			GitHub: config.GitHubConfig{
				APIURL:   gh.URL(),
				CacheTTL: time.Minute,
				Timeout:  5 * time.Second,
			},
			Scheduler: config.SchedulerConfig{CheckMinutes: 30, ActivityLimit: 10},
			Admin:     config.AdminConfig{TokenSecret: adminSecret},
		},
	}
	appConfig.RouterService = router.CreateRouterService(lg, nil, &router.RouterConfig{
		RateLimitRequests: 500,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	core, err := domain.SetupCoreDomain(appConfig)
	require.NoError(t, err)

	return &app{
		db:        db,
		server:    httptest.NewServer(appConfig.RouterService.GetEngine()),
		github:    gh,
		events:    recorder,
		core:      core,
		appConfig: appConfig,
	}
}

func (a *app) Close() {
	a.server.Close()
	a.github.Close()
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (a *app) reset(t require.TestingT) {
	for _, table := range []string{"repo_notifications", "repo_subscriptions", "repositories", "email_submissions"} {
		require.NoError(t, a.db.Exec("DELETE FROM "+table).Error)
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (a *app) do(t require.TestingT, method, path string, body any, headers map[string]string) (int, envelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = json.Unmarshal(raw, &env)
	return resp.StatusCode, env
}

// noRedirectClient lets tests observe the raw response of form posts.
var noRedirectClient = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
}

func (a *app) postForm(t require.TestingT, path string, form url.Values) (int, string) {
	resp, err := noRedirectClient.PostForm(a.server.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func (a *app) get(t require.TestingT, path string, headers map[string]string) (int, string) {
	req, err := http.NewRequest(http.MethodGet, a.server.URL+path, nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}
