package config

import (
	"time"
)

var (
	minSessionDuration = 1 * time.Second
	// the clock shows two minute digits
	maxSessionDuration = 99*time.Minute + 59*time.Second
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateDuration(c.Work.Duration, "work"); err != nil {
		return err
	}

	return validateDuration(c.Break.Duration, "break")
}

func validateDuration(d time.Duration, name string) error {
	if d < minSessionDuration || d > maxSessionDuration {
		return errInvalidDuration.Fmt(name, minSessionDuration, maxSessionDuration)
	}

	if d%time.Second != 0 {
		return errFractionalDuration.Fmt(name, d)
	}

	return nil
}
