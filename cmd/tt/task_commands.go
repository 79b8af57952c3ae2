package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/tt/internal/editor"
	"github.com/amonks/tt/internal/listflags"
	"github.com/amonks/tt/task"
	"github.com/spf13/cobra"
)

// tt add
var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task.

By default, opens $EDITOR to edit a TOML representation of the task
when running interactively and no fields are given. Use --no-edit to
skip the editor, or --edit to force opening the editor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaskAdd,
}

var (
	taskAddTitle       string
	taskAddDescription string
	taskAddExpires     string
	taskAddPriority    string
	taskAddBullets     []string
	taskAddEdit        bool
	taskAddNoEdit      bool
)

// tt edit
var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task that is not completed or expired",
	Long: `Edit a task that is not completed or expired.

By default, opens $EDITOR when running interactively and no update
flags are provided. Use --no-edit to skip the editor, or --edit to
force opening the editor.`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskEdit,
}

var (
	taskEditTitle       string
	taskEditDescription string
	taskEditExpires     string
	taskEditPriority    string
	taskEditEdit        bool
	taskEditNoEdit      bool
)

// tt bullet
var bulletCmd = &cobra.Command{
	Use:   "bullet",
	Short: "Manage task checklists",
}

// tt bullet add
var bulletAddCmd = &cobra.Command{
	Use:   "add <id> <text>",
	Short: "Append a checklist item to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runBulletAdd,
}

// tt done
var taskDoneCmd = &cobra.Command{
	Use:   "done <id> <bullet>",
	Short: "Mark a checklist item done (bullets are numbered from 1)",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskDone,
}

// tt delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete tasks more than 5 minutes past their expiry",
	Long: `Delete tasks more than 5 minutes past their expiry.

The automatic cleanup sweep is skipped so the named tasks are still
present to be deleted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskDelete,
}

// tt cleanup
var taskCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete every task more than 5 minutes past its expiry",
	Args:  cobra.NoArgs,
	RunE:  runTaskCleanup,
}

// tt list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var (
	taskListStatus   string
	taskListPriority string
	taskListAll      bool
	taskListJSON     bool
)

// tt search
var taskSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search task titles and descriptions",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskSearch,
}

var taskSearchJSON bool

// tt show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

func init() {
	rootCmd.AddCommand(taskAddCmd, taskEditCmd, bulletCmd, taskDoneCmd, taskDeleteCmd,
		taskCleanupCmd, taskListCmd, taskSearchCmd, taskShowCmd)
	bulletCmd.AddCommand(bulletAddCmd)

	addDescriptionFlagAliases(taskAddCmd, taskEditCmd)

	// tt add flags
	taskAddCmd.Flags().StringVar(&taskAddTitle, "title", "", "Task title")
	taskAddCmd.Flags().StringVarP(&taskAddDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	taskAddCmd.Flags().StringVar(&taskAddExpires, "expires", "", "Expiry time (YYYY-MM-DD HH:MM)")
	taskAddCmd.Flags().StringVarP(&taskAddPriority, "priority", "p", string(task.PriorityLow), "Priority (low, medium, high)")
	taskAddCmd.Flags().StringArrayVarP(&taskAddBullets, "bullet", "b", nil, "Checklist item (repeatable)")
	taskAddCmd.Flags().BoolVarP(&taskAddEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	taskAddCmd.Flags().BoolVar(&taskAddNoEdit, "no-edit", false, "Do not open $EDITOR")

	// tt edit flags
	taskEditCmd.Flags().StringVar(&taskEditTitle, "title", "", "New title")
	taskEditCmd.Flags().StringVarP(&taskEditDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	taskEditCmd.Flags().StringVar(&taskEditExpires, "expires", "", "New expiry time (YYYY-MM-DD HH:MM)")
	taskEditCmd.Flags().StringVarP(&taskEditPriority, "priority", "p", "", "New priority (low, medium, high)")
	taskEditCmd.Flags().BoolVarP(&taskEditEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	taskEditCmd.Flags().BoolVar(&taskEditNoEdit, "no-edit", false, "Do not open $EDITOR")

	// tt list flags
	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status (not_started, in_progress, completed, expired)")
	taskListCmd.Flags().StringVar(&taskListPriority, "priority", "", "Filter by priority (low, medium, high)")
	listflags.AddAllFlag(taskListCmd, &taskListAll)
	listflags.AddJSONFlag(taskListCmd, &taskListJSON)

	// tt search flags
	listflags.AddJSONFlag(taskSearchCmd, &taskSearchJSON)

	// tt show flags
	listflags.AddJSONFlag(taskShowCmd, &taskShowJSON)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if cmd.Flags().Changed("title") {
			return fmt.Errorf("%w: title given both as argument and --title", task.ErrValidation)
		}
		taskAddTitle = args[0]
	}
	var err error
	taskAddDescription, err = resolveDescriptionFromStdin(taskAddDescription, os.Stdin)
	if err != nil {
		return err
	}

	hasAddFlags := len(args) > 0 || hasChangedFlags(cmd, "title", "description", "expires", "priority", "bullet")
	useEditor := shouldUseEditor(hasAddFlags, taskAddEdit, taskAddNoEdit, editor.IsInteractive())

	s, err := openTaskStore(openOptions{})
	if err != nil {
		return err
	}

	if useEditor {
		data := editor.DefaultCreateData(s.store.Now())
		data.Title = taskAddTitle
		data.Priority = taskAddPriority
		data.Description = taskAddDescription
		if taskAddExpires != "" {
			expires, err := parseExpiry(taskAddExpires, s.timeFormat())
			if err != nil {
				return err
			}
			data.ExpiresAt = expires
		}
		for _, text := range taskAddBullets {
			data.Bullets = append(data.Bullets, task.Bullet{Text: text})
		}

		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}

		added, err := s.store.Add(parsed.Title, parsed.ToAddOptions())
		if err != nil {
			return err
		}
		fmt.Printf("Added task %d: %s\n", added.ID, added.Title)
		return nil
	}

	if strings.TrimSpace(taskAddTitle) == "" {
		return fmt.Errorf("%w (use --edit to open editor)", task.ErrEmptyTitle)
	}
	if taskAddExpires == "" {
		return fmt.Errorf("%w (use --expires)", task.ErrMissingExpiry)
	}
	expires, err := parseExpiry(taskAddExpires, s.timeFormat())
	if err != nil {
		return err
	}
	priority, err := task.ParsePriority(taskAddPriority)
	if err != nil {
		return err
	}
	bullets := make([]task.Bullet, 0, len(taskAddBullets))
	for _, text := range taskAddBullets {
		bullets = append(bullets, task.Bullet{Text: text})
	}

	added, err := s.store.Add(taskAddTitle, task.AddOptions{
		Description: taskAddDescription,
		ExpiresAt:   expires,
		Priority:    priority,
		Bullets:     bullets,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s\n", added.ID, added.Title)
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}
	taskEditDescription, err = resolveDescriptionFromStdin(taskEditDescription, os.Stdin)
	if err != nil {
		return err
	}

	s, err := openTaskStore(openOptions{})
	if err != nil {
		return err
	}

	hasFlags := hasChangedFlags(cmd, "title", "description", "expires", "priority")
	useEditor := shouldUseEditor(hasFlags, taskEditEdit, taskEditNoEdit, editor.IsInteractive())

	var opts task.EditOptions
	if useEditor {
		existing, err := s.store.Show(id)
		if err != nil {
			return err
		}
		if existing.Status.IsLocked() {
			return fmt.Errorf("%w: task %d is %s", task.ErrTaskLocked, id, existing.Status)
		}
		parsed, err := editor.EditTaskWithData(editor.DataFromTask(existing))
		if err != nil {
			return err
		}
		opts = parsed.ToEditOptions()
	} else {
		if !hasFlags {
			return fmt.Errorf("%w: nothing to change (use --title, --description, --expires, --priority or --edit)", task.ErrValidation)
		}
		opts, err = taskEditOptionsFromFlags(cmd, s.timeFormat())
		if err != nil {
			return err
		}
	}

	updated, err := s.store.Edit(id, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Updated task %d: %s (%s)\n", updated.ID, updated.Title, updated.Status)
	return nil
}

func taskEditOptionsFromFlags(cmd *cobra.Command, layout string) (task.EditOptions, error) {
	var opts task.EditOptions
	if cmd.Flags().Changed("title") {
		opts.Title = &taskEditTitle
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &taskEditDescription
	}
	if cmd.Flags().Changed("expires") {
		expires, err := parseExpiry(taskEditExpires, layout)
		if err != nil {
			return task.EditOptions{}, err
		}
		opts.ExpiresAt = &expires
	}
	if cmd.Flags().Changed("priority") {
		priority, err := task.ParsePriority(taskEditPriority)
		if err != nil {
			return task.EditOptions{}, err
		}
		opts.Priority = &priority
	}
	return opts, nil
}

func runBulletAdd(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	s, err := openTaskStore(openOptions{})
	if err != nil {
		return err
	}

	updated, err := s.store.AddBullet(id, args[1])
	if err != nil {
		return err
	}

	fmt.Printf("Added bullet %d to task %d: %s\n", len(updated.Bullets), updated.ID, args[1])
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}
	index, err := parseBulletNumber(args[1])
	if err != nil {
		return err
	}

	s, err := openTaskStore(openOptions{})
	if err != nil {
		return err
	}

	updated, changed, err := s.store.MarkBulletDone(id, index)
	if err != nil {
		return err
	}

	if !changed {
		fmt.Printf("Bullet %d of task %d is already done.\n", index+1, id)
		return nil
	}
	fmt.Printf("Marked bullet %d of task %d done (%s)\n", index+1, id, updated.Status)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	s, err := openTaskStore(openOptions{skipCleanup: true})
	if err != nil {
		return err
	}

	var errs []error
	for _, id := range ids {
		deleted, err := s.store.Delete(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Printf("Deleted task %d: %s\n", deleted.ID, deleted.Title)
	}
	return errors.Join(errs...)
}

func runTaskCleanup(cmd *cobra.Command, args []string) error {
	s, err := openTaskStore(openOptions{skipCleanup: true})
	if err != nil {
		return err
	}

	removed, err := s.store.Cleanup()
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		fmt.Println("No tasks to delete.")
		return nil
	}
	for _, item := range removed {
		fmt.Printf("Deleted task %d: %s\n", item.ID, item.Title)
	}
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	filter := task.ListFilter{IncludeExpired: taskListAll}
	if cmd.Flags().Changed("status") {
		status, err := task.ParseStatus(taskListStatus)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		priority, err := task.ParsePriority(taskListPriority)
		if err != nil {
			return err
		}
		filter.Priority = &priority
	}

	s, err := openTaskStore(openOptions{readOnly: true})
	if err != nil {
		return err
	}

	items, err := s.store.List(filter)
	if err != nil {
		return err
	}

	if taskListJSON {
		return encodeJSONToStdout(nonNilTasks(items))
	}

	if len(items) == 0 {
		all := s.store.Tasks()
		fmt.Println(taskEmptyListMessage(len(all), taskListStatus, taskListAll, hasExpiredTasks(all)))
		return nil
	}

	fmt.Print(formatTaskTable(items, s.store.Now(), s.timeFormat()))
	return nil
}

func runTaskSearch(cmd *cobra.Command, args []string) error {
	s, err := openTaskStore(openOptions{readOnly: true})
	if err != nil {
		return err
	}

	matches := s.store.Search(args[0])

	if taskSearchJSON {
		return encodeJSONToStdout(nonNilTasks(matches))
	}

	if len(matches) == 0 {
		fmt.Println("No matching tasks found.")
		return nil
	}

	fmt.Print(formatTaskTable(matches, s.store.Now(), s.timeFormat()))
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	s, err := openTaskStore(openOptions{readOnly: true})
	if err != nil {
		return err
	}

	items := make([]task.Task, 0, len(ids))
	for _, id := range ids {
		item, err := s.store.Show(id)
		if err != nil {
			return err
		}
		items = append(items, *item)
	}

	if taskShowJSON {
		return encodeJSONToStdout(items)
	}

	for i, item := range items {
		if i > 0 {
			fmt.Println("\n---")
		}
		fmt.Print(formatTaskDetail(item, s.store.Now(), s.timeFormat()))
	}
	return nil
}

func nonNilTasks(items []task.Task) []task.Task {
	if items == nil {
		return []task.Task{}
	}
	return items
}

func hasExpiredTasks(items []task.Task) bool {
	for _, item := range items {
		if item.Status == task.StatusExpired {
			return true
		}
	}
	return false
}
