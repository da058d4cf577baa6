// Package config loads process settings and tenant dashboard documents.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/telemetry"
)

// Settings holds process configuration read from the environment.
type Settings struct {
	Addr             string        `envconfig:"ADDR" default:":8080"`
	ClientsDir       string        `envconfig:"CLIENTS_DIR" default:"clients"`
	Client           string        `envconfig:"CLIENT" default:"default"`
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT" default:"20s"`
	FetchConcurrency int           `envconfig:"FETCH_CONCURRENCY" default:"4"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	Debug            bool          `envconfig:"DEBUG" default:"false"`

	OtelEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OtelEndpoint string `envconfig:"OTEL_ENDPOINT"`
	OtelInsecure bool   `envconfig:"OTEL_INSECURE" default:"false"`
}

// LoadSettings loads an optional .env file and then SHIFTBOARD_* variables.
func LoadSettings() (*Settings, error) {
	_ = godotenv.Load()

	var s Settings
	if err := envconfig.Process("shiftboard", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Telemetry returns the exporter configuration.
func (s *Settings) Telemetry() telemetry.Config {
	return telemetry.Config{
		Endpoint: s.OtelEndpoint,
		Enabled:  s.OtelEnabled,
		Insecure: s.OtelInsecure,
	}
}
