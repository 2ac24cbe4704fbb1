package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mountTestController(rs *RouterService) {
	ctrl := NewRESTController("TestController", "/", func(rs *RouterService, c *RESTController) {
		rs.AddGetHandler(c, nil, "ip", func(ctx *RequestContext) *ServiceResult {
			return OKResult(ctx.ClientIP(), "ok")
		})

		rs.AddPostHandler(c, nil, "echo", func(ctx *RequestContext) *ServiceResult {
			var payload map[string]any
			if err := ctx.ShouldBindJSON(&payload); err != nil {
				return BadRequestResult("bad", nil)
			}
			return OKResult(payload, "ok")
		})

		rs.AddGetHandler(c, nil, "items/:id", func(ctx *RequestContext) *ServiceResult {
			id, failure := ParseIDParam(ctx, "id")
			if failure != nil {
				return failure
			}
			return OKResult(id, "ok")
		})

		rs.AddGetHandler(c, nil, "nil", func(ctx *RequestContext) *ServiceResult {
			return nil
		})
	})

	rs.MountController(ctrl)
}

func newTestRouterService(t *testing.T) *RouterService {
	t.Helper()

	logger := log.NewLoggerWithJSONOutput()
	return CreateRouterService(logger, nil, &RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
	})
}

type testEnvelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func serve(t *testing.T, rs *RouterService, req *http.Request) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	var env testEnvelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestTrustedProxies(t *testing.T) {
	tests := []struct {
		name    string
		proxies string
		want    string
	}{
		{name: "disabled by default", proxies: "", want: "10.0.0.2"},
		{name: "star trusts forwarded for", proxies: "*", want: "1.1.1.1"},
		{name: "listed proxy is trusted", proxies: "10.0.0.0/8, 192.168.0.0/16", want: "1.1.1.1"},
		{name: "unlisted proxy is ignored", proxies: "192.168.0.0/16", want: "10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TRUSTED_PROXIES", tt.proxies)

			rs := newTestRouterService(t)
			mountTestController(rs)

			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			req.Header.Set("X-Forwarded-For", "1.1.1.1")

			w, env := serve(t, rs, req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var ip string
			require.NoError(t, json.Unmarshal(env.Data, &ip))
			assert.Equal(t, tt.want, ip)
		})
	}
}

func TestMaxBodySize_Returns413(t *testing.T) {
	t.Setenv("MAX_REQUEST_BODY_BYTES", "10")

	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(bytes.Repeat([]byte{'a'}, 50)))
	req.Header.Set("Content-Type", "application/json")

	w, env := serve(t, rs, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "Request payload too large", env.Message)
}

func TestFallbackHandlers(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	w, env := serve(t, rs, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.Code)

	w, _ = serve(t, rs, httptest.NewRequest(http.MethodDelete, "/ip", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCorrelationIDIsEchoed(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Correlation-ID", "corr-123")
	w, _ := serve(t, rs, req)
	assert.Equal(t, "corr-123", w.Header().Get("X-Correlation-ID"))

	w, _ = serve(t, rs, httptest.NewRequest(http.MethodGet, "/ip", nil))
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

func TestParseIDParam(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	w, _ := serve(t, rs, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	for _, raw := range []string{"abc", "0", "-3"} {
		w, env := serve(t, rs, httptest.NewRequest(http.MethodGet, "/items/"+raw, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
		assert.Equal(t, "Invalid ID parameter", env.Message, raw)
	}
}

func TestNilHandlerResultIs500(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	w, _ := serve(t, rs, httptest.NewRequest(http.MethodGet, "/nil", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORS(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://app.example.com, https://admin.example.com")

	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	w, _ := serve(t, rs, req)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w, _ = serve(t, rs, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHSTS(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		proto   string
		wantSet bool
	}{
		{name: "off outside production", env: map[string]string{"APP_ENV": "development"}, proto: "https"},
		{name: "on in production behind TLS proxy", env: map[string]string{"APP_ENV": "production"}, proto: "https", wantSet: true},
		{name: "never on plain http", env: map[string]string{"APP_ENV": "production"}, proto: "http"},
		{name: "explicitly enabled", env: map[string]string{"HSTS_ENABLED": "true"}, proto: "https", wantSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			rs := newTestRouterService(t)
			mountTestController(rs)

			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			req.Header.Set("X-Forwarded-Proto", tt.proto)
			w, _ := serve(t, rs, req)

			if tt.wantSet {
				assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
			} else {
				assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
			}
		})
	}
}

func TestRateLimitPrecedence(t *testing.T) {
	rs := newTestRouterService(t)
	logger := log.NewLoggerWithJSONOutput()

	strict := ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{Requests: 1, Window: time.Minute, Logger: logger})
	loose := ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{Requests: 3, Window: time.Minute, Logger: logger})

	ctrl := NewRESTController("Limited", "/limited", func(rs *RouterService, c *RESTController) {
		c.RateLimitWith(rs, loose)
		rs.AddGetHandler(c, nil, "controller", func(ctx *RequestContext) *ServiceResult { return OKResult(nil, "ok") })
		rs.AddGetHandler(c, strict, "handler", func(ctx *RequestContext) *ServiceResult { return OKResult(nil, "ok") })
	})
	rs.MountController(ctrl)

	hit := func(path string) int {
		w, _ := serve(t, rs, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("/limited/handler"))
	assert.Equal(t, http.StatusTooManyRequests, hit("/limited/handler"))

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, hit("/limited/controller"))
	}
	w, env := serve(t, rs, httptest.NewRequest(http.MethodGet, "/limited/controller", nil))
	if assert.Equal(t, http.StatusOK, w.Code) {
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}
	w, env = serve(t, rs, httptest.NewRequest(http.MethodGet, "/limited/controller", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too Many Requests", env.Message)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestDuplicateRouteRegistrationPanics(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	dup := NewRESTController("Duplicate", "/", func(rs *RouterService, c *RESTController) {
		rs.AddGetHandler(c, nil, "ip", func(ctx *RequestContext) *ServiceResult { return OKResult(nil, "ok") })
	})

	assert.Panics(t, func() { rs.MountController(dup) })
}

func TestLoadHTTPSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		settings, err := LoadHTTPSettings()
		require.NoError(t, err)

		assert.Equal(t, "8080", settings.Port)
		assert.Equal(t, int64(defaultMaxBodyBytes), settings.MaxBodyBytes)
		assert.True(t, settings.MetricsEnabled)
		assert.Nil(t, settings.trustedProxies())
	})

	t.Run("invalid value falls back to defaults", func(t *testing.T) {
		t.Setenv("MAX_REQUEST_BODY_BYTES", "lots")

		settings, err := LoadHTTPSettings()
		assert.Error(t, err)
		assert.Equal(t, int64(defaultMaxBodyBytes), settings.MaxBodyBytes)
	})

	t.Run("origins are trimmed", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGIN", " https://a.example.com ,, https://b.example.com")

		settings, err := LoadHTTPSettings()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, settings.AllowedOrigins)
	})
}

func TestMetrics_RecordsRouteTemplates(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "true")
	rs := newTestRouterService(t)
	mountTestController(rs)

	for _, path := range []string{"/items/7", "/items/8", "/does-not-exist"} {
		rs.GetEngine().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/items/:id",status="200"} 2`)
	assert.Contains(t, body, `route="unmatched",status="404"`)
	assert.Contains(t, body, "http_requests_in_flight")
	assert.Contains(t, body, "go_goroutines")
}
