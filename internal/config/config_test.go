package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Work: config.SessionConfig{
			Duration: 25 * time.Minute,
		},
		Break: config.SessionConfig{
			Duration: 5 * time.Minute,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "default config should be written")

	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := &config.Config{
		Work: config.SessionConfig{
			Duration: 50 * time.Minute,
		},
		Break: config.SessionConfig{
			Duration: 10 * time.Minute,
		},
		Settings: config.SettingsConfig{
			AutoReload:     true,
			Cmd:            "notify-send done",
			TwentyFourHour: true,
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
			Sound:   true,
		},
		Display: config.DisplayConfig{
			DarkTheme: false,
		},
	}

	assert.Equal(t, want, cfg)
}

func TestViperRejectsOutOfRangeDuration(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/invalid_duration.yml", configPath)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))

	assert.ErrorContains(t, err, "work duration must be between")
}

func cliContext(t *testing.T, flags map[string]string, tasks ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("pomo", flag.ContinueOnError)

	for k, v := range flags {
		switch v {
		case "true", "false":
			_ = set.Bool(k, false, "")
		default:
			_ = set.String(k, "", "")
		}

		require.NoError(t, set.Set(k, v))
	}

	if len(tasks) > 0 {
		sl := cli.NewStringSlice()
		set.Var(sl, "task", "")

		for _, task := range tasks {
			require.NoError(t, set.Set("task", task))
		}
	}

	return cli.NewContext(&cli.App{}, set, nil)
}

func TestCLIConfigOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	ctx := cliContext(t, map[string]string{
		"work":                 "40",
		"break":                "90s",
		"auto-reload":          "true",
		"disable-notification": "true",
		"mute":                 "true",
		"plain":                "true",
		"session-cmd":          "echo hi",
	}, "T1:fix bug", "T2", ":orphan")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	require.NoError(t, err)

	assert.Equal(t, 40*time.Minute, cfg.Work.Duration)
	assert.Equal(t, 90*time.Second, cfg.Break.Duration)
	assert.True(t, cfg.Settings.AutoReload)
	assert.False(t, cfg.Notifications.Enabled)
	assert.False(t, cfg.Notifications.Sound)
	assert.True(t, cfg.CLI.Plain)
	assert.Equal(t, "echo hi", cfg.Settings.Cmd)
	assert.Equal(t, []config.TaskSpec{
		{TicketID: "T1", Description: "fix bug"},
		{TicketID: "T2"},
		{TicketID: "", Description: "orphan"},
	}, cfg.CLI.Tasks)
}

func TestCLIConfigInvalidDuration(t *testing.T) {
	ctx := cliContext(t, map[string]string{"work": "soon"})

	_, err := config.New(config.WithCLIConfig(ctx))

	assert.ErrorContains(t, err, "invalid work duration")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		work    time.Duration
		brk     time.Duration
		wantErr string
	}{
		{"defaults", 25 * time.Minute, 5 * time.Minute, ""},
		{"upper bound", 99*time.Minute + 59*time.Second, time.Second, ""},
		{"zero work", 0, 5 * time.Minute, "work duration must be between"},
		{"too long break", 25 * time.Minute, 100 * time.Minute, "break duration must be between"},
		{"fractional", 1500 * time.Millisecond, time.Minute, "whole number of seconds"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Work.Duration = tc.work
			cfg.Break.Duration = tc.brk

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
