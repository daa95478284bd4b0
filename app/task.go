package app

import (
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/timeutil"
	"github.com/ayoisaiah/focusboard/report"
	"github.com/ayoisaiah/focusboard/state"
)

func (a *App) taskCommand() *cli.Command {
	editFlags := []cli.Flag{
		titleFlag,
		descriptionFlag,
		priorityFlag,
		deadlineFlag,
		tagFlag,
		statusFlag,
	}

	return &cli.Command{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Manage tasks on the board",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a task",
				ArgsUsage: "[TITLE]",
				Flags:     editFlags,
				Action:    a.taskAddAction,
			},
			{
				Name:      "edit",
				Usage:     "Edit a task",
				ArgsUsage: "<ID>",
				Flags:     append(slices.Clone(editFlags), clearDeadlineFlag),
				Action:    a.taskEditAction,
			},
			{
				Name:      "move",
				Usage:     "Move a task to another column",
				ArgsUsage: "<ID> <todo|in-progress|done>",
				Action:    a.taskMoveAction,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a task",
				ArgsUsage: "<ID>",
				Flags:     []cli.Flag{yesFlag},
				Action:    a.taskDeleteAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List tasks",
				Flags: []cli.Flag{
					statusFlag,
					priorityFlag,
					tagFlag,
					jsonFlag,
				},
				Action: a.taskListAction,
			},
			{
				Name:      "show",
				Usage:     "Show the details of a task",
				ArgsUsage: "<ID>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    a.taskShowAction,
			},
			{
				Name:      "reorder",
				Usage:     "Move a task to a new position in the list",
				ArgsUsage: "<ID> <POSITION>",
				Action:    a.taskReorderAction,
			},
		},
	}
}

// splitList splits comma-separated values and drops blanks and
// duplicates while keeping the input order.
func splitList(values []string) []string {
	tags := []string{}

	for _, v := range values {
		for _, tag := range strings.Split(v, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || slices.Contains(tags, tag) {
				continue
			}

			tags = append(tags, tag)
		}
	}

	return tags
}

// applyTaskFlags copies the flags that were set on the command line into t.
func (a *App) applyTaskFlags(ctx *cli.Context, t *models.Task) error {
	if ctx.IsSet(titleFlag.Name) {
		t.Title = strings.TrimSpace(ctx.String(titleFlag.Name))
	}

	if ctx.IsSet(descriptionFlag.Name) {
		t.Description = strings.TrimSpace(ctx.String(descriptionFlag.Name))
	}

	if ctx.IsSet(priorityFlag.Name) {
		p, err := models.ParsePriority(ctx.String(priorityFlag.Name))
		if err != nil {
			return err
		}

		t.Priority = p
	}

	if ctx.IsSet(statusFlag.Name) {
		s, err := models.ParseTaskStatus(ctx.String(statusFlag.Name))
		if err != nil {
			return err
		}

		t.Status = s
	}

	if ctx.IsSet(deadlineFlag.Name) {
		d, err := timeutil.FromStr(ctx.String(deadlineFlag.Name), a.now())
		if err != nil {
			return errInvalidDeadline.Wrap(err)
		}

		t.Deadline = &d
	}

	if ctx.Bool(clearDeadlineFlag.Name) {
		t.Deadline = nil
	}

	if ctx.IsSet(tagFlag.Name) {
		t.Tags = splitList(ctx.StringSlice(tagFlag.Name))
	}

	if t.Title == "" {
		return errEmptyTitle
	}

	return nil
}

// taskArg returns the task whose id is the first argument.
func taskArg(ctx *cli.Context, board *state.Store) (models.Task, error) {
	id := ctx.Args().First()
	if id == "" {
		return models.Task{}, errMissingArg.Fmt("task id")
	}

	t, ok := board.State().TaskByID(id)
	if !ok {
		return models.Task{}, errTaskNotFound.Fmt(id)
	}

	return t, nil
}

func (a *App) taskAddAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	t := models.Task{
		Title: strings.TrimSpace(strings.Join(ctx.Args().Slice(), " ")),
	}

	err = a.applyTaskFlags(ctx, &t)
	if err != nil {
		return err
	}

	board.Dispatch(state.AddTask{Task: t})

	tasks := board.State().Tasks
	added := tasks[len(tasks)-1]

	report.Success(a.stdout, "task %s added: %s", added.ID, added.Title)

	return nil
}

func (a *App) taskEditAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	t, err := taskArg(ctx, board)
	if err != nil {
		return err
	}

	err = a.applyTaskFlags(ctx, &t)
	if err != nil {
		return err
	}

	board.Dispatch(state.UpdateTask{Task: t})

	report.Success(a.stdout, "task %s updated", t.ID)

	return nil
}

func (a *App) taskMoveAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	t, err := taskArg(ctx, board)
	if err != nil {
		return err
	}

	if ctx.Args().Len() < 2 {
		return errMissingArg.Fmt("status")
	}

	status, err := models.ParseTaskStatus(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	board.Dispatch(state.MoveTask{ID: t.ID, Status: status})

	report.Success(a.stdout, "task %s moved to %s", t.ID, status)

	return nil
}

func (a *App) taskDeleteAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	t, err := taskArg(ctx, board)
	if err != nil {
		return err
	}

	printTasksTable(a.stdout, []models.Task{t})

	if !a.confirm(ctx, "The task above will be deleted permanently") {
		return nil
	}

	board.Dispatch(state.DeleteTask{ID: t.ID})

	report.Success(a.stdout, "task %s deleted", t.ID)

	return nil
}

// filterTasks keeps the tasks matching the status, priority and tag flags.
// A task matches the tag filter when it has any of the given tags.
func filterTasks(ctx *cli.Context, tasks []models.Task) ([]models.Task, error) {
	var (
		status   models.TaskStatus
		priority models.Priority
		err      error
	)

	if ctx.IsSet(statusFlag.Name) {
		status, err = models.ParseTaskStatus(ctx.String(statusFlag.Name))
		if err != nil {
			return nil, err
		}
	}

	if ctx.IsSet(priorityFlag.Name) {
		priority, err = models.ParsePriority(ctx.String(priorityFlag.Name))
		if err != nil {
			return nil, err
		}
	}

	tags := splitList(ctx.StringSlice(tagFlag.Name))

	result := make([]models.Task, 0, len(tasks))

	for _, t := range tasks {
		if status != "" && t.Status != status {
			continue
		}

		if priority != "" && t.Priority != priority {
			continue
		}

		if len(tags) > 0 && !slices.ContainsFunc(t.Tags, func(tag string) bool {
			return slices.Contains(tags, tag)
		}) {
			continue
		}

		result = append(result, t)
	}

	return result, nil
}

func (a *App) taskListAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	tasks, err := filterTasks(ctx, board.State().Tasks)
	if err != nil {
		return err
	}

	if ctx.Bool(jsonFlag.Name) {
		return writeJSON(a.stdout, tasks)
	}

	if len(tasks) == 0 {
		report.Info(a.stdout, noTasksMsg)
		return nil
	}

	printTasksTable(a.stdout, tasks)

	return nil
}

func (a *App) taskShowAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	t, err := taskArg(ctx, board)
	if err != nil {
		return err
	}

	if ctx.Bool(jsonFlag.Name) {
		return writeJSON(a.stdout, t)
	}

	printTask(a.stdout, t)

	return nil
}

// taskReorderAction moves a task to a 1-based position in the task list.
func (a *App) taskReorderAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	t, err := taskArg(ctx, board)
	if err != nil {
		return err
	}

	tasks := board.State().Tasks

	pos, err := strconv.Atoi(ctx.Args().Get(1))
	if err != nil || pos < 1 || pos > len(tasks) {
		return errInvalidPosition.Fmt(len(tasks))
	}

	board.Dispatch(state.ReorderTasks{Tasks: moveTo(tasks, t.ID, pos-1)})

	report.Success(a.stdout, "task %s moved to position %d", t.ID, pos)

	return nil
}

// moveTo returns a copy of tasks with the task id placed at index i.
func moveTo(tasks []models.Task, id string, i int) []models.Task {
	from := slices.IndexFunc(tasks, func(t models.Task) bool {
		return t.ID == id
	})
	if from < 0 {
		return slices.Clone(tasks)
	}

	t := tasks[from]

	result := slices.Delete(slices.Clone(tasks), from, from+1)

	return slices.Insert(result, i, t)
}
