package store

import "github.com/ayoisaiah/focusboard/internal/apperr"

var (
	// ErrKeyNotFound is returned by a Backend when nothing is stored under
	// the requested key.
	ErrKeyNotFound = &apperr.Error{
		Message: "key not found",
	}

	errAlreadyRunning = &apperr.Error{
		Message: "is focusboard already running? Only one instance can use the board at a time",
	}

	errCorruptStore = &apperr.Error{
		Message: "store file is not valid JSON",
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open %s store at %s",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend %q",
	}

	errLoad = &apperr.Error{
		Message: "loading saved data failed",
	}

	errSave = &apperr.Error{
		Message: "saving data failed",
	}
)
