package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasklite/internal/observability"
)

// logLevelFlag holds the --level flag value for "log".
var logLevelFlag string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recorded diagnostic events",
	Long: `Print the diagnostic event log. Storage recoveries (corrupt task or
filter data replaced with defaults) and persistence failures show up
here as WARN events.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if EventLog == nil {
			return fmt.Errorf("event log not available (disabled in config?)")
		}

		events, err := EventLog.Read(observability.ReadFilter{Level: logLevelFlag})
		if err != nil {
			return fmt.Errorf("reading event log: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No events recorded")
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s %-5s %-22s %v\n", e.Time.Format(time.RFC3339), e.Level, e.Type, e.Data)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logLevelFlag, "level", "", "only show events at this level (INFO, WARN)")
	rootCmd.AddCommand(logCmd)
}
