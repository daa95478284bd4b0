package timer

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/focusboard/internal/config"
	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/pathutil"
	"github.com/ayoisaiah/focusboard/internal/static"
)

var phaseTitles = map[models.Phase]string{
	models.Work:       "Work session",
	models.ShortBreak: "Short break",
	models.LongBreak:  "Long break",
}

var phaseMessages = map[models.Phase]string{
	models.Work:       "Focus on your task",
	models.ShortBreak: "Take a breather",
	models.LongBreak:  "Take a long break",
}

// DesktopNotifier announces phase changes with a desktop notification, an
// alert sound and an optional user command. All work happens in the
// background and failures are only logged.
type DesktopNotifier struct {
	log        *slog.Logger
	soundFile  string
	sessionCmd string
	iconPath   string
	enabled    bool
}

// NewDesktopNotifier creates a notifier from the user's configuration.
func NewDesktopNotifier(cfg *config.Config, log *slog.Logger) *DesktopNotifier {
	// iconPath will be an empty string if the file is not found
	iconPath, _ := xdg.SearchDataFile(
		filepath.Join(pathutil.Dir(), static.IconFile),
	)

	return &DesktopNotifier{
		log:        log,
		soundFile:  cfg.Sound.File,
		sessionCmd: cfg.Settings.Cmd,
		iconPath:   iconPath,
		enabled:    cfg.Notifications.Enabled,
	}
}

func (d *DesktopNotifier) Notify(from, to models.Phase) {
	go func() {
		if d.enabled {
			title := phaseTitles[from] + " is finished"

			err := beeep.Notify(title, phaseMessages[to], d.iconPath)
			if err != nil {
				d.log.Debug("unable to display notification", slog.Any("error", err))
			}
		}

		err := runSessionCmd(d.sessionCmd)
		if err != nil {
			d.log.Debug(
				"session command failed",
				slog.String("cmd", d.sessionCmd),
				slog.Any("error", err),
			)
		}
	}()
}

func (d *DesktopNotifier) Alert() {
	go func() {
		if err := playSound(d.soundFile); err != nil {
			d.log.Debug("unable to play sound", slog.Any("error", err))
		}
	}()
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
