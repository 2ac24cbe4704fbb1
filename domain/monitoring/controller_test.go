package monitoring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/circuitbreaker"
	"github.com/akeren/email-collector/pkg/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type pingCache struct{ err error }

func (p pingCache) Ping(context.Context) error { return p.err }

type broker bool

func (b broker) IsConnected() bool { return bool(b) }

type breaker circuitbreaker.CircuitState

func (b breaker) BreakerState() circuitbreaker.CircuitState { return circuitbreaker.CircuitState(b) }

func health(t *testing.T, deps Dependencies) HealthStatus {
	t.Helper()

	rs := router.CreateRouterService(log.NewLoggerWithJSONOutput(), nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
	})
	rs.MountController(NewMonitoringController(log.NewLoggerWithJSONOutput(), deps, factory.NewRateLimiterFactory(nil, nil)))

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data HealthStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func TestHealth_AllHealthy(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	status := health(t, Dependencies{
		DB:      db,
		Cache:   pingCache{},
		Broker:  broker(true),
		Breaker: breaker(circuitbreaker.Closed),
	})

	assert.Equal(t, 1, status.Database)
	assert.Equal(t, 1, status.Cache)
	assert.Equal(t, 1, status.MessageQueue)
	assert.Equal(t, circuitbreaker.Closed.String(), status.GitHub)
}

func TestHealth_Degraded(t *testing.T) {
	status := health(t, Dependencies{
		Cache:   pingCache{err: errors.New("refused")},
		Broker:  broker(false),
		Breaker: breaker(circuitbreaker.Open),
	})

	assert.Equal(t, 0, status.Database)
	assert.Equal(t, 0, status.Cache)
	assert.Equal(t, 0, status.MessageQueue)
	assert.Equal(t, circuitbreaker.Open.String(), status.GitHub)
}

func TestHealth_NothingConfigured(t *testing.T) {
	status := health(t, Dependencies{})

	assert.Zero(t, status.Cache)
	assert.Zero(t, status.MessageQueue)
	assert.Equal(t, "unknown", status.GitHub)
}
