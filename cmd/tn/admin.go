package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasknest/tasknest/internal/ui"
	"github.com/tasknest/tasknest/task"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Inspect and maintain the task database",
}

// tn admin schema
var adminSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the task database schema",
	Args:  cobra.NoArgs,
	RunE:  runAdminSchema,
}

var adminSchemaJSON bool

// tn admin status
var adminStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show task counts by status",
	Args:  cobra.NoArgs,
	RunE:  runAdminStatus,
}

// tn admin reset
var adminResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every task and start over",
	Args:  cobra.NoArgs,
	RunE:  runAdminReset,
}

var adminResetForce bool

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminSchemaCmd, adminStatusCmd, adminResetCmd)

	// admin schema flags
	adminSchemaCmd.Flags().BoolVar(&adminSchemaJSON, "json", false, "Output as JSON")

	// admin reset flags
	adminResetCmd.Flags().BoolVar(&adminResetForce, "force", false, "Skip the confirmation prompt")
}

func runAdminSchema(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tables, err := store.Schema()
	if err != nil {
		return err
	}

	if adminSchemaJSON {
		return encodeJSONToStdout(tables)
	}

	for i, table := range tables {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(formatTableSchema(table))
	}
	return nil
}

func formatTableSchema(table task.TableSchema) string {
	builder := ui.NewTableBuilder([]string{"COLUMN", "TYPE", "NULL", "KEY"}, len(table.Columns))
	for _, column := range table.Columns {
		null := "YES"
		if column.NotNull {
			null = "NO"
		}
		key := ""
		if column.PrimaryKey {
			key = "PK"
		}
		builder.AddRow([]string{column.Name, column.Type, null, key})
	}

	return fmt.Sprintf("%s\n%s", table.Name, builder.String())
}

func runAdminStatus(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}
	defer store.Close()

	total, err := store.Count()
	if err != nil {
		return err
	}

	counts, err := store.Counts()
	if err != nil {
		return err
	}

	fmt.Print(formatStatusSummary(total, counts))
	return nil
}

func formatStatusSummary(total int, counts map[task.Status]int) string {
	out := ""
	for _, status := range task.ValidStatuses() {
		out += fmt.Sprintf("%s: %d\n", status, counts[status])
	}
	out += fmt.Sprintf("Total: %d\n", total)
	return out
}

func runAdminReset(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ran, err := store.Reset(task.ResetOptions{Force: adminResetForce})
	if err != nil {
		return err
	}
	if !ran {
		fmt.Println("Reset cancelled.")
		return nil
	}

	fmt.Println("Task database reset.")
	return nil
}
