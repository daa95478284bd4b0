package app

import "github.com/ayoisaiah/focusboard/internal/apperr"

var (
	errEmptyTitle = &apperr.Error{
		Message: "task title cannot be empty",
	}

	errEmptySprintName = &apperr.Error{
		Message: "sprint name cannot be empty",
	}

	errTaskNotFound = &apperr.Error{
		Message: "task %q does not exist",
	}

	errSprintNotFound = &apperr.Error{
		Message: "sprint %q does not exist",
	}

	errNoActiveSprint = &apperr.Error{
		Message: "there is no active sprint; pass a sprint id",
	}

	errSprintAlreadyActive = &apperr.Error{
		Message: "sprint %q is already active; complete it before starting another",
	}

	errInvalidDuration = &apperr.Error{
		Message: "sprint duration must be at least one day, got %d",
	}

	errInvalidPosition = &apperr.Error{
		Message: "position must be between 1 and %d",
	}

	errSettingOutOfRange = &apperr.Error{
		Message: "%s must be between %d and %d minutes, got %d",
	}

	errNotANumber = &apperr.Error{
		Message: "%q is not a number",
	}

	errSessionsOutOfRange = &apperr.Error{
		Message: "sessions before a long break must be between %d and %d, got %d",
	}

	errMissingArg = &apperr.Error{
		Message: "missing required argument: %s",
	}

	errInvalidDeadline = &apperr.Error{
		Message: "unable to parse deadline",
	}

	errInvalidStartDate = &apperr.Error{
		Message: "unable to parse sprint start date",
	}
)
