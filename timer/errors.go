package timer

import "github.com/ayoisaiah/focusboard/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound file %s",
	}

	errTaskNotFound = &apperr.Error{
		Message: "task %q does not exist",
	}
)
