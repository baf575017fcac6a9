// Package cli implements the tasklite command-line interface. Commands are
// thin presentation glue over the task store: they call its operations and
// surface validation failures, but own no task state themselves.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasklite/internal/observability"
	"github.com/valter-silva-au/tasklite/internal/storage"
)

// Service instances, set during app initialization in internal/app.go.
var (
	Store    storage.TaskStore
	EventLog observability.EventLog
	BasePath string
	NoColor  bool
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "tasklite",
	Short: "tasklite - a local task list manager",
	Long: `tasklite is a single-user task list manager. Tasks live in a local
key-value store and survive restarts; corrupt state is detected on load
and replaced with safe defaults.

Add tasks, toggle completion, delete, and filter the visible list by
completion state.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tasklite %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
