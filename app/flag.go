package app

import "github.com/urfave/cli/v2"

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the configuration file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	backendFlag = &cli.StringFlag{
		Name:  "backend",
		Usage: "Storage backend for the board: bolt, sqlite, or file",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a phase ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each phase",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Path to an mp3, ogg, flac, or wav file played when a phase ends. Use 'off' for the terminal bell",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)

// task flags
var (
	titleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "Task title",
	}

	descriptionFlag = &cli.StringFlag{
		Name:    "description",
		Aliases: []string{"desc"},
		Usage:   "Task description",
	}

	priorityFlag = &cli.StringFlag{
		Name:    "priority",
		Aliases: []string{"p"},
		Usage:   "Task priority: low, medium, or high",
	}

	deadlineFlag = &cli.StringFlag{
		Name:  "deadline",
		Usage: "Due date (e.g. '2025-03-01', 'tomorrow', 'next friday')",
	}

	clearDeadlineFlag = &cli.BoolFlag{
		Name:  "clear-deadline",
		Usage: "Remove the task deadline",
	}

	tagFlag = &cli.StringSliceFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Task tag. Repeat the flag or separate tags with commas",
	}

	statusFlag = &cli.StringFlag{
		Name:    "status",
		Aliases: []string{"s"},
		Usage:   "Task status: todo, in-progress, or done",
	}
)

// sprint flags
var (
	nameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Sprint name",
	}

	goalFlag = &cli.StringFlag{
		Name:  "goal",
		Usage: "Sprint goal",
	}

	daysFlag = &cli.IntFlag{
		Name:  "days",
		Usage: "Sprint duration in days",
		Value: 14,
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Sprint start date (e.g. '2025-03-01', 'monday'). Defaults to today",
	}

	sprintTaskFlag = &cli.StringSliceFlag{
		Name:  "task",
		Usage: "ID of a task to include in the sprint. Repeat for more tasks",
	}

	removeTaskFlag = &cli.StringSliceFlag{
		Name:  "remove-task",
		Usage: "ID of a task to remove from the sprint",
	}

	sprintStatusFlag = &cli.StringFlag{
		Name:  "status",
		Usage: "Sprint status: planning, active, or completed",
	}

	workedFlag = &cli.StringFlag{
		Name:  "worked",
		Usage: "What worked well",
	}

	improveFlag = &cli.StringFlag{
		Name:  "improve",
		Usage: "What could be improved",
	}

	actionItemsFlag = &cli.StringFlag{
		Name:  "actions",
		Usage: "Action items for the next sprint",
	}
)

// settings flags
var (
	workFlag = &cli.IntFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes (1-120)",
	}

	shortBreakFlag = &cli.IntFlag{
		Name:  "short-break",
		Usage: "Short break duration in minutes (1-30)",
	}

	longBreakFlag = &cli.IntFlag{
		Name:  "long-break",
		Usage: "Long break duration in minutes (1-60)",
	}

	sessionsFlag = &cli.IntFlag{
		Name:    "sessions",
		Aliases: []string{"int"},
		Usage:   "The number of work sessions before a long break (2-10)",
	}

	soundEnabledFlag = &cli.BoolFlag{
		Name:  "sound-enabled",
		Usage: "Play a sound when a phase ends (use --sound-enabled=false to disable)",
	}

	interactiveFlag = &cli.BoolFlag{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Edit the settings in an interactive form",
	}

	taskIDFlag = &cli.StringFlag{
		Name:  "task",
		Usage: "ID of the task to focus on",
	}
)
