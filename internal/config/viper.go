package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyWorkDuration         = "work.duration"
	keyBreakDuration        = "break.duration"
	keyAutoReload           = "settings.auto_reload"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationSound    = "notifications.sound"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does
// not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		seedFromPrompt(v, c)

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyWorkDuration, "25m")
	v.SetDefault(keyBreakDuration, "5m")
	v.SetDefault(keyAutoReload, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationSound, true)
	v.SetDefault(keyDarkTheme, true)
}

// seedFromPrompt carries first-run prompt answers into the file that is
// about to be written.
func seedFromPrompt(v *viper.Viper, c *Config) {
	if c.Work.Duration > 0 {
		v.Set(keyWorkDuration, c.Work.Duration.String())
	}

	if c.Break.Duration > 0 {
		v.Set(keyBreakDuration, c.Break.Duration.String())
	}
}
