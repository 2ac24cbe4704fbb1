package router

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

const defaultMaxBodyBytes = 1 << 20

// HTTPSettings carries the env-driven knobs of the HTTP edge. Invalid values
// fall back to the defaults rather than failing startup.
type HTTPSettings struct {
	Port           string   `env:"APP_PORT" envDefault:"8080"`
	GinMode        string   `env:"GIN_MODE"`
	AppEnv         string   `env:"APP_ENV"`
	TrustedProxies string   `env:"TRUSTED_PROXIES"`
	MaxBodyBytes   int64    `env:"MAX_REQUEST_BODY_BYTES" envDefault:"1048576"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGIN" envSeparator:","`
	MetricsEnabled bool     `env:"METRICS_ENABLED" envDefault:"true"`
	TracingEnabled bool     `env:"OTEL_TRACES_ENABLED"`
	ServiceName    string   `env:"OTEL_SERVICE_NAME" envDefault:"email-collector"`

	HSTSEnabled           *bool `env:"HSTS_ENABLED"`
	HSTSMaxAge            int64 `env:"HSTS_MAX_AGE" envDefault:"31536000"`
	HSTSIncludeSubdomains bool  `env:"HSTS_INCLUDE_SUBDOMAINS" envDefault:"true"`
}

func defaultHTTPSettings() HTTPSettings {
	return HTTPSettings{
		Port:                  "8080",
		MaxBodyBytes:          defaultMaxBodyBytes,
		MetricsEnabled:        true,
		ServiceName:           "email-collector",
		HSTSMaxAge:            31536000,
		HSTSIncludeSubdomains: true,
	}
}

// LoadHTTPSettings reads HTTPSettings from the environment.
func LoadHTTPSettings() (HTTPSettings, error) {
	var settings HTTPSettings
	if err := env.Parse(&settings); err != nil {
		return defaultHTTPSettings(), err
	}

	if settings.MaxBodyBytes <= 0 {
		settings.MaxBodyBytes = defaultMaxBodyBytes
	}
	if settings.HSTSMaxAge <= 0 {
		settings.HSTSMaxAge = 31536000
	}
	if strings.TrimSpace(settings.Port) == "" {
		settings.Port = "8080"
	}

	origins := settings.AllowedOrigins[:0]
	for _, o := range settings.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	settings.AllowedOrigins = origins

	return settings, nil
}

// hstsEnabled defaults to on in production when HSTS_ENABLED is unset.
func (s HTTPSettings) hstsEnabled() bool {
	if s.HSTSEnabled != nil {
		return *s.HSTSEnabled
	}
	appEnv := strings.ToLower(strings.TrimSpace(s.AppEnv))
	return appEnv == "production" || appEnv == "prod"
}

// trustedProxies returns nil to disable proxy trust, so ClientIP() falls
// back to RemoteAddr. "*" trusts everything.
func (s HTTPSettings) trustedProxies() []string {
	raw := strings.TrimSpace(s.TrustedProxies)
	switch raw {
	case "":
		return nil
	case "*":
		return []string{"0.0.0.0/0", "::/0"}
	}

	var proxies []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

func (s HTTPSettings) originAllowed(origin string) bool {
	for _, allowed := range s.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
