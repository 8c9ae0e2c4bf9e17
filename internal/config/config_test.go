package config

import (
	"testing"
	"time"
)

func TestEnvBool(t *testing.T) {
	if got := envBool("DB_AUTO_MIGRATE", true); !got {
		t.Fatal("unset key should fall back to the default")
	}

	t.Setenv("DB_AUTO_MIGRATE", "false")
	if got := envBool("DB_AUTO_MIGRATE", true); got {
		t.Fatal(`"false" should disable the flag`)
	}

	t.Setenv("DB_AUTO_MIGRATE", "1")
	if got := envBool("DB_AUTO_MIGRATE", false); !got {
		t.Fatal(`"1" should enable the flag`)
	}

	t.Setenv("DB_AUTO_MIGRATE", "not-a-bool")
	if got := envBool("DB_AUTO_MIGRATE", true); !got {
		t.Fatal("an unparseable value should fall back to the default")
	}
}

func TestEnvDuration(t *testing.T) {
	if got := envDuration("JWT_EXPIRY", 72*time.Hour); got != 72*time.Hour {
		t.Fatalf("unset key: got %v", got)
	}

	t.Setenv("JWT_EXPIRY", "30m")
	if got := envDuration("JWT_EXPIRY", 72*time.Hour); got != 30*time.Minute {
		t.Fatalf("got %v, want 30m", got)
	}

	t.Setenv("JWT_EXPIRY", "soon")
	if got := envDuration("JWT_EXPIRY", 72*time.Hour); got != 72*time.Hour {
		t.Fatalf("an unparseable value should fall back to the default, got %v", got)
	}
}
