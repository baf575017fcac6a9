package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle <task-id>",
	Aliases: []string{"done"},
	Short:   "Toggle a task's completion state",
	Long: `Flip the completed flag of the task with the given id. Toggling an
id that matches no task changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		id := args[0]
		before := findTask(id)
		Store.ToggleTask(id)

		if before == nil {
			fmt.Printf("No task with id %s; nothing changed\n", id)
			return nil
		}
		state := "pending"
		if !before.Completed {
			state = "completed"
		}
		fmt.Printf("Task %s is now %s\n", id, state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
