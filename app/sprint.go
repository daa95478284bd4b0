package app

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusboard/burndown"
	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/timeutil"
	"github.com/ayoisaiah/focusboard/internal/ui"
	"github.com/ayoisaiah/focusboard/report"
	"github.com/ayoisaiah/focusboard/state"
)

const (
	burndownHeight = 12
	noSprintsMsg   = "No sprints yet"
)

func (a *App) sprintCommand() *cli.Command {
	return &cli.Command{
		Name:    "sprint",
		Aliases: []string{"s"},
		Usage:   "Plan and track sprints",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create a sprint in the planning state",
				ArgsUsage: "[NAME]",
				Flags: []cli.Flag{
					nameFlag,
					goalFlag,
					daysFlag,
					startFlag,
					sprintTaskFlag,
				},
				Action: a.sprintAddAction,
			},
			{
				Name:      "edit",
				Usage:     "Edit a sprint",
				ArgsUsage: "<ID>",
				Flags: []cli.Flag{
					nameFlag,
					goalFlag,
					daysFlag,
					startFlag,
					sprintTaskFlag,
					removeTaskFlag,
					sprintStatusFlag,
				},
				Action: a.sprintEditAction,
			},
			{
				Name:      "start",
				Usage:     "Make a sprint the active one",
				ArgsUsage: "<ID>",
				Action:    a.sprintStartAction,
			},
			{
				Name:      "complete",
				Usage:     "Complete a sprint and mark all of its tasks as done",
				ArgsUsage: "[ID]",
				Action:    a.sprintCompleteAction,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a sprint. Its tasks are kept",
				ArgsUsage: "<ID>",
				Flags:     []cli.Flag{yesFlag},
				Action:    a.sprintDeleteAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List sprints",
				Flags:   []cli.Flag{jsonFlag},
				Action:  a.sprintListAction,
			},
			{
				Name:      "show",
				Usage:     "Show a sprint. Defaults to the active sprint",
				ArgsUsage: "[ID]",
				Action:    a.sprintShowAction,
			},
			{
				Name:      "burndown",
				Usage:     "Draw the burndown chart of a sprint. Defaults to the active sprint",
				ArgsUsage: "[ID]",
				Flags:     []cli.Flag{jsonFlag},
				Action:    a.sprintBurndownAction,
			},
			{
				Name:      "retro",
				Usage:     "Record the retrospective of a sprint",
				ArgsUsage: "<ID>",
				Flags: []cli.Flag{
					workedFlag,
					improveFlag,
					actionItemsFlag,
				},
				Action: a.sprintRetroAction,
			},
		},
	}
}

// sprintArg returns the sprint named by the first argument. Without an
// argument, the active sprint is used when allowActive is set.
func sprintArg(
	ctx *cli.Context,
	board *state.Store,
	allowActive bool,
) (models.Sprint, error) {
	id := ctx.Args().First()

	if id == "" {
		if !allowActive {
			return models.Sprint{}, errMissingArg.Fmt("sprint id")
		}

		sp, ok := board.State().ActiveSprint()
		if !ok {
			return models.Sprint{}, errNoActiveSprint
		}

		return sp, nil
	}

	sp, ok := board.State().SprintByID(id)
	if !ok {
		return models.Sprint{}, errSprintNotFound.Fmt(id)
	}

	return sp, nil
}

// checkSingleActive rejects activating sp while another sprint is active.
func checkSingleActive(s state.State, sp models.Sprint) error {
	if sp.Status != models.SprintActive {
		return nil
	}

	active, ok := s.ActiveSprint()
	if ok && active.ID != sp.ID {
		return errSprintAlreadyActive.Fmt(active.Name)
	}

	return nil
}

// applySprintFlags copies the flags that were set on the command line into
// sp and validates the result.
func (a *App) applySprintFlags(
	ctx *cli.Context,
	s state.State,
	sp *models.Sprint,
) error {
	if ctx.IsSet(nameFlag.Name) {
		sp.Name = strings.TrimSpace(ctx.String(nameFlag.Name))
	}

	if ctx.IsSet(goalFlag.Name) {
		sp.Goal = strings.TrimSpace(ctx.String(goalFlag.Name))
	}

	if ctx.IsSet(daysFlag.Name) {
		sp.DurationDays = ctx.Int(daysFlag.Name)
	}

	if ctx.IsSet(startFlag.Name) {
		start, err := timeutil.FromStr(ctx.String(startFlag.Name), a.now())
		if err != nil {
			return errInvalidStartDate.Wrap(err)
		}

		sp.StartDate = timeutil.RoundToStart(start)
	}

	for _, id := range splitList(ctx.StringSlice(sprintTaskFlag.Name)) {
		if _, ok := s.TaskByID(id); !ok {
			return errTaskNotFound.Fmt(id)
		}

		if !sp.HasTask(id) {
			sp.TaskIDs = append(sp.TaskIDs, id)
		}
	}

	remove := splitList(ctx.StringSlice(removeTaskFlag.Name))
	if len(remove) > 0 {
		sp.TaskIDs = slices.DeleteFunc(sp.TaskIDs, func(id string) bool {
			return slices.Contains(remove, id)
		})
	}

	if ctx.IsSet(sprintStatusFlag.Name) {
		status, err := models.ParseSprintStatus(ctx.String(sprintStatusFlag.Name))
		if err != nil {
			return err
		}

		sp.Status = status
	}

	if sp.Name == "" {
		return errEmptySprintName
	}

	if sp.DurationDays < 1 {
		return errInvalidDuration.Fmt(sp.DurationDays)
	}

	return checkSingleActive(s, *sp)
}

func (a *App) sprintAddAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	sp := models.Sprint{
		Name:         strings.TrimSpace(strings.Join(ctx.Args().Slice(), " ")),
		DurationDays: ctx.Int(daysFlag.Name),
		StartDate:    timeutil.RoundToStart(a.now()),
		TaskIDs:      []string{},
	}

	err = a.applySprintFlags(ctx, board.State(), &sp)
	if err != nil {
		return err
	}

	board.Dispatch(state.AddSprint{Sprint: sp})

	sprints := board.State().Sprints
	added := sprints[len(sprints)-1]

	report.Success(
		a.stdout,
		"sprint %s created: %s (%s - %s)",
		added.ID,
		added.Name,
		added.StartDate.Format(dateLayout),
		added.EndDate.Format(dateLayout),
	)

	return nil
}

func (a *App) sprintEditAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	sp, err := sprintArg(ctx, board, false)
	if err != nil {
		return err
	}

	sp.TaskIDs = slices.Clone(sp.TaskIDs)

	err = a.applySprintFlags(ctx, board.State(), &sp)
	if err != nil {
		return err
	}

	board.Dispatch(state.UpdateSprint{Sprint: sp})

	report.Success(a.stdout, "sprint %s updated", sp.ID)

	return nil
}

func (a *App) sprintStartAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	sp, err := sprintArg(ctx, board, false)
	if err != nil {
		return err
	}

	sp.Status = models.SprintActive

	err = checkSingleActive(board.State(), sp)
	if err != nil {
		return err
	}

	board.Dispatch(state.UpdateSprint{Sprint: sp})

	report.Success(a.stdout, "sprint %s is now active", sp.Name)

	return nil
}

func (a *App) sprintCompleteAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	sp, err := sprintArg(ctx, board, true)
	if err != nil {
		return err
	}

	board.Dispatch(state.CompleteSprint{ID: sp.ID})

	report.Success(
		a.stdout,
		"sprint %s completed; %d tasks marked as done",
		sp.Name,
		len(board.State().SprintTasks(sp)),
	)

	return nil
}

func (a *App) sprintDeleteAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	sp, err := sprintArg(ctx, board, false)
	if err != nil {
		return err
	}

	if !a.confirm(ctx, fmt.Sprintf("Sprint %q will be deleted permanently", sp.Name)) {
		return nil
	}

	board.Dispatch(state.DeleteSprint{ID: sp.ID})

	report.Success(a.stdout, "sprint %s deleted", sp.ID)

	return nil
}

func progressText(p burndown.Progress) string {
	return fmt.Sprintf("%d/%d (%d%%)", p.Completed, p.Total, timeutil.Round(p.Percent))
}

func daysLeftText(sp models.Sprint, p burndown.Progress) string {
	switch {
	case sp.Status == models.SprintCompleted:
		return ""
	case p.Overdue:
		return ui.Red("overdue")
	default:
		return fmt.Sprintf("%d days left", p.DaysRemaining)
	}
}

func (a *App) sprintListAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	s := board.State()

	if ctx.Bool(jsonFlag.Name) {
		return writeJSON(a.stdout, s.Sprints)
	}

	if len(s.Sprints) == 0 {
		report.Info(a.stdout, noSprintsMsg)
		return nil
	}

	data := [][]string{
		{"ID", "NAME", "STATUS", "START", "END", "PROGRESS", ""},
	}

	for _, sp := range s.Sprints {
		p := burndown.SprintProgress(sp, s.Tasks, a.now())

		data = append(data, []string{
			sp.ID,
			sp.Name,
			ui.Status(sp.Status),
			sp.StartDate.Local().Format(dateLayout),
			sp.EndDate.Local().Format(dateLayout),
			progressText(p),
			daysLeftText(sp, p),
		})
	}

	ui.PrintTable(data, a.stdout)

	return nil
}

func printRetrospective(w io.Writer, r *models.Retrospective) {
	if r == nil {
		return
	}

	ui.Section("Retrospective", w)

	ui.PrintTable([][]string{
		{"", ""},
		{"What worked", r.WhatWorked},
		{"What to improve", r.WhatToImprove},
		{"Action items", r.ActionItems},
	}, w)
}

func (a *App) sprintShowAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	sp, err := sprintArg(ctx, board, true)
	if err != nil {
		return err
	}

	s := board.State()
	p := burndown.SprintProgress(sp, s.Tasks, a.now())

	ui.Section(sp.Name, a.stdout)

	ui.PrintTable([][]string{
		{"FIELD", "VALUE"},
		{"ID", sp.ID},
		{"Status", ui.Status(sp.Status)},
		{"Goal", sp.Goal},
		{"Dates", fmt.Sprintf(
			"%s - %s (%d days)",
			sp.StartDate.Local().Format(dateLayout),
			sp.EndDate.Local().Format(dateLayout),
			sp.DurationDays,
		)},
		{"Progress", progressText(p)},
		{"Remaining", daysLeftText(sp, p)},
	}, a.stdout)

	tasks := s.SprintTasks(sp)
	if len(tasks) > 0 {
		ui.Section("Tasks", a.stdout)
		printTasksTable(a.stdout, tasks)
	}

	printRetrospective(a.stdout, sp.Retrospective)

	return nil
}

func (a *App) sprintBurndownAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	sp, err := sprintArg(ctx, board, true)
	if err != nil {
		return err
	}

	s := board.State()
	chart := burndown.Compute(sp, s.Tasks, a.now())

	if ctx.Bool(jsonFlag.Name) {
		return writeJSON(a.stdout, chart)
	}

	ui.Section("Burndown: "+sp.Name, a.stdout)

	fmt.Fprintln(
		a.stdout,
		burndown.Render(chart, pterm.GetTerminalWidth()-4, burndownHeight, s.Theme),
	)

	return nil
}

// retroForm asks for the retrospective fields, starting from r.
func retroForm(r *models.Retrospective) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What worked well?").
				Value(&r.WhatWorked),
			huh.NewText().
				Title("What could be improved?").
				Value(&r.WhatToImprove),
			huh.NewText().
				Title("Action items").
				Value(&r.ActionItems),
		),
	)
}

func (a *App) sprintRetroAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	sp, err := sprintArg(ctx, board, false)
	if err != nil {
		return err
	}

	var retro models.Retrospective
	if sp.Retrospective != nil {
		retro = *sp.Retrospective
	}

	flagsSet := ctx.IsSet(workedFlag.Name) ||
		ctx.IsSet(improveFlag.Name) ||
		ctx.IsSet(actionItemsFlag.Name)

	if flagsSet {
		if ctx.IsSet(workedFlag.Name) {
			retro.WhatWorked = ctx.String(workedFlag.Name)
		}

		if ctx.IsSet(improveFlag.Name) {
			retro.WhatToImprove = ctx.String(improveFlag.Name)
		}

		if ctx.IsSet(actionItemsFlag.Name) {
			retro.ActionItems = ctx.String(actionItemsFlag.Name)
		}
	} else {
		err = retroForm(&retro).Run()
		if err != nil {
			return err
		}
	}

	sp.Retrospective = &retro

	board.Dispatch(state.UpdateSprint{Sprint: sp})

	report.Success(a.stdout, "retrospective saved for %s", sp.Name)

	return nil
}
