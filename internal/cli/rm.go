package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a task",
	Long: `Remove the task with the given id from the list. Removing an id
that matches no task changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		id := args[0]
		existing := findTask(id)
		Store.DeleteTask(id)

		if existing == nil {
			fmt.Printf("No task with id %s; nothing changed\n", id)
			return nil
		}
		fmt.Printf("Deleted task %s (%s)\n", id, existing.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
