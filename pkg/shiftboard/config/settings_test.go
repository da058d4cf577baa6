package config

import (
	"testing"
	"time"
)

func TestLoadSettings(t *testing.T) {
	t.Setenv("SHIFTBOARD_ADDR", ":9090")
	t.Setenv("SHIFTBOARD_REQUEST_TIMEOUT", "5s")
	t.Setenv("SHIFTBOARD_OTEL_ENABLED", "true")
	t.Setenv("SHIFTBOARD_OTEL_ENDPOINT", "collector:4317")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if s.Addr != ":9090" || s.RequestTimeout != 5*time.Second {
		t.Errorf("Unexpected settings: %+v", s)
	}
	if s.ClientsDir != "clients" || s.Client != "default" || s.FetchConcurrency != 4 {
		t.Errorf("Expected defaults, got %+v", s)
	}
	if tc := s.Telemetry(); !tc.Enabled || tc.Endpoint != "collector:4317" || tc.Insecure {
		t.Errorf("Unexpected telemetry config: %+v", tc)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	t.Setenv("SHIFTBOARD_REQUEST_TIMEOUT", "soon")

	if _, err := LoadSettings(); err == nil {
		t.Error("Expected error for invalid duration")
	}
}
