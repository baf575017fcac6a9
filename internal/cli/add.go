package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task with the given title. Multiple arguments are joined
with spaces. The title is trimmed and must be non-empty and at most 500
characters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		title := strings.Join(args, " ")
		task, err := Store.AddTask(title)
		if err != nil {
			return fmt.Errorf("adding task: %w", err)
		}

		fmt.Printf("Added task %s\n", task.ID)
		fmt.Printf("  Title: %s\n", task.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
