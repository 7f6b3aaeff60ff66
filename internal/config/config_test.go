package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and default filling for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	cfg := new(Config)

	err := Validate(cfg)
	require.Error(t, err)

	// Bad socket.
	cfg = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Minimal config gets defaults filled in.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
	}

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, DefaultStateFilename, cfg.StateFile)
	require.Equal(t, DefaultWorkSeconds, cfg.Timers.WorkSeconds)
	require.Equal(t, DefaultBreakSeconds, cfg.Timers.BreakSeconds)
	require.Equal(t, DefaultSnoozeSeconds, cfg.Timers.SnoozeSeconds)
	require.NotEmpty(t, cfg.Messages.WorkEndPrompts)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		ServerAddress: "127.0.0.1:50051",
		Timers: Timers{
			WorkSeconds:   600,
			BreakSeconds:  120,
			SnoozeSeconds: 30,
		},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ServerAddress, loaded.ServerAddress)
	require.Equal(t, cfg.Timers, loaded.Timers)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadOrCreateWritesDefaults verifies a missing file is seeded with defaults.
func TestLoadOrCreateWritesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, DefaultServerAddress, cfg.ServerAddress)
	require.Equal(t, DefaultWorkSeconds, cfg.Timers.WorkSeconds)
	require.Len(t, cfg.Messages.WorkEndPrompts, 3)

	_, err = os.Stat(path)
	require.NoError(t, err)

	// Second call loads the previously written file.
	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ServerAddress, again.ServerAddress)
}

// TestDurations converts whole seconds into phase durations.
func TestDurations(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Timers: Timers{
			WorkSeconds:   1500,
			BreakSeconds:  300,
			SnoozeSeconds: 60,
		},
	}

	d := cfg.Durations()
	require.Equal(t, 25*time.Minute, d.Work)
	require.Equal(t, 5*time.Minute, d.Break)
	require.Equal(t, time.Minute, d.Snooze)
}
