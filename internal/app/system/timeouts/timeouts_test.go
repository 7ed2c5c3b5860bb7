package timeouts_test

import (
	"testing"
	"time"

	"github.com/eneca-dev/handoff/internal/app/system/timeouts"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()

	if timeouts.Ping() != timeouts.DefaultPing {
		t.Errorf("Ping: got %v", timeouts.Ping())
	}
	if timeouts.Short() != timeouts.DefaultShort {
		t.Errorf("Short: got %v", timeouts.Short())
	}
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("Medium: got %v", timeouts.Medium())
	}
	if timeouts.Long() != timeouts.DefaultLong {
		t.Errorf("Long: got %v", timeouts.Long())
	}
}

func TestConfigure_PartialOverride(t *testing.T) {
	timeouts.Reset()
	defer timeouts.Reset()

	timeouts.Configure(timeouts.Config{Short: 2 * time.Second})

	if timeouts.Short() != 2*time.Second {
		t.Errorf("Short: got %v", timeouts.Short())
	}
	// Zero values keep the current setting.
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("Medium: got %v", timeouts.Medium())
	}
}
