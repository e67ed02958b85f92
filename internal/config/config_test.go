package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "HOST", "SHARE_BASE_URL", "SESSION_TTL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.Addr() != ":5175" {
		t.Errorf("Addr = %q", c.Addr())
	}
	if c.Game.ShareBaseURL != "http://localhost:5175/play" {
		t.Errorf("ShareBaseURL = %q", c.Game.ShareBaseURL)
	}
	if c.Game.SessionTTL != 24*time.Hour || c.Logging.Level != "info" {
		t.Errorf("SessionTTL %v, level %q", c.Game.SessionTTL, c.Logging.Level)
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("HANDLER_TIMEOUT", "3")
	t.Setenv("SHARE_SECRET", "k")
	c := Load()
	if c.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", c.Addr())
	}
	if c.Game.SessionTTL != 90*time.Minute {
		t.Errorf("SessionTTL = %v", c.Game.SessionTTL)
	}
	if c.Server.HandlerTimeout != 3*time.Second {
		t.Errorf("HandlerTimeout = %v", c.Server.HandlerTimeout)
	}
	if c.Game.ShareSecret != "k" {
		t.Errorf("ShareSecret = %q", c.Game.ShareSecret)
	}
}
