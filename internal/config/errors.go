package config

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errFractionalDuration = &apperr.Error{
		Message: "%s duration must be a whole number of seconds, got %v",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse date %q",
	}
)
