package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tasknest/tasknest/internal/listflags"
	"github.com/tasknest/tasknest/task"
	"github.com/tasknest/tasknest/view"
)

// tn add
var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Long: `Add a new task.

Pass '-' as the description to read it from stdin. Use --parent to nest
the new task under an existing ACTIVE task.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var addParentID int64

// tn list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in the selected view",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listViewFlags listflags.ViewFlags
	listJSON      bool
)

// tn tree
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show tasks in the selected view as a tree",
	Args:  cobra.NoArgs,
	RunE:  runTree,
}

var treeViewFlags listflags.ViewFlags

// tn show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// tn complete
var completeCmd = &cobra.Command{
	Use:   "complete <id>...",
	Short: "Mark one or more tasks as completed",
	Aliases: []string{
		"done",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runComplete,
}

// tn abandon
var abandonCmd = &cobra.Command{
	Use:   "abandon <id>...",
	Short: "Mark one or more tasks as abandoned",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAbandon,
}

// tn clear
var clearCmd = &cobra.Command{
	Use:   "clear <id>...",
	Short: "Hide one or more tasks from day-to-day listings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClear,
}

// tn reactivate
var reactivateCmd = &cobra.Command{
	Use:   "reactivate <id>...",
	Short: "Return one or more finished tasks to ACTIVE",
	Aliases: []string{
		"reopen",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runReactivate,
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, treeCmd, showCmd, completeCmd, abandonCmd, clearCmd, reactivateCmd)
	addViewFlagAliases(listCmd, treeCmd)

	// add flags
	addCmd.Flags().Int64VarP(&addParentID, "parent", "p", 0, "Parent task ID (must be ACTIVE)")

	// list flags
	listflags.AddViewFlags(listCmd, &listViewFlags)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	// tree flags
	listflags.AddViewFlags(treeCmd, &treeViewFlags)

	// show flags
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func addParentValue(cmd *cobra.Command) *int64 {
	if cmd.Flags().Changed("parent") {
		return task.IDPtr(addParentID)
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	description := ""
	if len(args) > 0 {
		description = args[0]
	}

	description, err := resolveDescriptionFromStdin(description, os.Stdin)
	if err != nil {
		return err
	}
	if description == "" {
		return fmt.Errorf("description is required")
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}
	defer store.Close()

	created, err := store.Create(description, task.CreateOptions{
		ParentID: addParentValue(cmd),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created task %d: %s\n", created.ID, created.Description)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := resolveListView(listViewFlags)
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := view.New(store).Get(filter)
	if err != nil {
		return err
	}

	if listJSON {
		return encodeJSONToStdout(rows)
	}

	if len(rows) == 0 {
		total, err := store.Count()
		if err != nil {
			return err
		}
		fmt.Println(taskEmptyListMessage(total, filter))
		return nil
	}

	printTaskTable(rows, time.Now())
	fmt.Println(formatTaskSummary(rows))
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	filter, err := resolveListView(treeViewFlags)
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := view.New(store).Get(filter)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		total, err := store.Count()
		if err != nil {
			return err
		}
		fmt.Println(taskEmptyListMessage(total, filter))
		return nil
	}

	printTaskTree(rows)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := parseTaskIDArgs(args)
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items := make([]task.Task, 0, len(ids))
	for _, id := range ids {
		item, err := store.Get(id)
		if err != nil {
			return err
		}
		items = append(items, *item)
	}

	if showJSON {
		return encodeJSONToStdout(items)
	}

	for i, item := range items {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(item)
	}
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	return runTaskAction(cmd, args, "Completed", func(store *task.Store, id int64) (*task.Task, error) {
		return store.Complete(id)
	})
}

func runAbandon(cmd *cobra.Command, args []string) error {
	return runTaskAction(cmd, args, "Abandoned", func(store *task.Store, id int64) (*task.Task, error) {
		return store.Abandon(id)
	})
}

func runClear(cmd *cobra.Command, args []string) error {
	return runTaskAction(cmd, args, "Cleared", func(store *task.Store, id int64) (*task.Task, error) {
		return store.Clear(id)
	})
}

func runReactivate(cmd *cobra.Command, args []string) error {
	return runTaskAction(cmd, args, "Reactivated", func(store *task.Store, id int64) (*task.Task, error) {
		return store.Reactivate(id)
	})
}

// resolveListView picks the view for listing commands: flags win, then the
// config default, then NON_CLEAR.
func resolveListView(flags listflags.ViewFlags) (view.Filter, error) {
	fallback := view.FilterNonClear

	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.List.View != "" {
		fallback, err = view.ParseFilter(cfg.List.View)
		if err != nil {
			return "", fmt.Errorf("config list.view: %w", err)
		}
	}

	return flags.Resolve(fallback)
}

func runTaskAction(cmd *cobra.Command, args []string, verb string, action func(*task.Store, int64) (*task.Task, error)) error {
	ids, err := parseTaskIDArgs(args)
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items := make([]task.Task, 0, len(ids))
	for _, id := range ids {
		item, err := action(store, id)
		if err != nil {
			return err
		}
		items = append(items, *item)
	}

	printTaskActionResults(verb, items)
	return nil
}

func printTaskActionResults(verb string, items []task.Task) {
	for _, item := range items {
		fmt.Printf("%s %d: %s\n", verb, item.ID, item.Description)
	}
}
