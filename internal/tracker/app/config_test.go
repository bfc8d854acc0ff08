package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"TRACKER_ISSUER", "TRACKER_DATABASE_FILE", "TRACKER_ADMIN_USERNAME", "TRACKER_PORT", "SHUTDOWN_GRACE_PERIOD"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	require.Equal(t, "fittrack", cfg.Issuer)
	require.Equal(t, "tracker.db", cfg.DatabaseFile)
	require.Equal(t, "admin", cfg.AdminUsername)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TRACKER_ISSUER", "fittrack-staging")
	t.Setenv("TRACKER_PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

	cfg := LoadConfig()

	require.Equal(t, "fittrack-staging", cfg.Issuer)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("TRACKER_PORT", "not-a-port")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

	cfg := LoadConfig()

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigBareDurationIsMinutes(t *testing.T) {
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "2")

	cfg := LoadConfig()

	require.Equal(t, 2*time.Minute, cfg.ShutdownGracePeriod)
}
