package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasklite/pkg/models"
)

var filterCmd = &cobra.Command{
	Use:   "filter [all|completed|pending]",
	Short: "Show or set the active filter",
	Long: `With no argument, print the active filter. With an argument, set
and persist it. Anything other than all, completed, or pending is
rejected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		if len(args) == 0 {
			fmt.Printf("Active filter: %s\n", Store.Filter())
			return nil
		}

		if err := Store.SetFilter(models.Filter(args[0])); err != nil {
			return fmt.Errorf("setting filter: %w", err)
		}
		fmt.Printf("Filter set to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
}
