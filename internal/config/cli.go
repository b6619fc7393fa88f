package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Work          string
	Break         string
	SessionCmd    string
	Tasks         []string
	AutoReload    bool
	DisableNotify bool
	Mute          bool
	Plain         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:          ctx.String("work"),
			Break:         ctx.String("break"),
			SessionCmd:    ctx.String("session-cmd"),
			Tasks:         ctx.StringSlice("task"),
			AutoReload:    ctx.Bool("auto-reload"),
			DisableNotify: ctx.Bool("disable-notification"),
			Mute:          ctx.Bool("mute"),
			Plain:         ctx.Bool("plain"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDuration(&c.Work, "work", opts.Work); err != nil {
		return err
	}

	if err := applyCLIDuration(&c.Break, "break", opts.Break); err != nil {
		return err
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.AutoReload {
		c.Settings.AutoReload = true
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Mute {
		c.Notifications.Sound = false
	}

	c.CLI.Plain = opts.Plain
	c.CLI.Tasks = parseTaskSpecs(opts.Tasks)

	return nil
}

// applyCLIDuration parses a duration flag. Bare numbers are minutes.
func applyCLIDuration(sc *SessionConfig, name, value string) error {
	if value == "" {
		return nil
	}

	dur, err := parseDuration(value)
	if err != nil {
		return errInvalidCLIDuration.Fmt(name).Wrap(err)
	}

	sc.Duration = dur

	return nil
}

func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "m")
}

// parseTaskSpecs splits TICKET[:description] values.
func parseTaskSpecs(values []string) []TaskSpec {
	specs := make([]TaskSpec, 0, len(values))

	for _, v := range values {
		ticket, desc, _ := strings.Cut(v, ":")

		specs = append(specs, TaskSpec{
			TicketID:    ticket,
			Description: strings.TrimSpace(desc),
		})
	}

	return specs
}
