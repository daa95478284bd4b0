package config

import "github.com/ayoisaiah/focusboard/internal/apperr"

var (
	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend %q (must be bolt, sqlite, or file)",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q (must be debug, info, warn, or error)",
	}

	errSoundNotFound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}
)
