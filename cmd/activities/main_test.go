package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"STRAVA_CLIENT_ID",
		"STRAVA_CLIENT_SECRET",
		"STRAVA_REFRESH_TOKEN",
		"STRAVAFEED_CONFIG_PATH",
		"STRAVAFEED_HISTORY_PATH",
		"STRAVAFEED_LOG_PATH",
		"STRAVAFEED_CONSOLE_LIMIT",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	t.Chdir(t.TempDir())
}

func TestRootCmd_MissingRefreshTokenPrintsNoActivities(t *testing.T) {
	isolateEnv(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--limit", "5"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "strava credentials not set")
	require.NotContains(t, out.String(), "Downloaded")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	isolateEnv(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_InvalidLimitFlag(t *testing.T) {
	isolateEnv(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--limit", "many"})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_LimitOutOfRange(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STRAVA_REFRESH_TOKEN", "r")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--limit", "500"})

	require.Error(t, cmd.Execute())
}
