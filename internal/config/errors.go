package config

import "github.com/panasi/panasi/internal/apperr"

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

	errPrompt = &apperr.Error{
		Message: "first-run setup failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %v",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %v and %v",
	}

	errResortTooFast = &apperr.Error{
		Message: "resort interval (%v) must not be shorter than the tick interval (%v)",
	}

	errInvalidMaxRestarts = &apperr.Error{
		Message: "max restarts must be between %d and %d",
	}

	errEmptyVocabulary = &apperr.Error{
		Message: "vocabulary %s cannot be empty",
	}

	errBlankWord = &apperr.Error{
		Message: "vocabulary %s contains a blank entry",
	}
)
