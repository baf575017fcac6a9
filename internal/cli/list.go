package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasklite/pkg/models"
)

var (
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Strikethrough(true)
	idStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	countStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// listFilterFlag holds the --filter flag value for "list".
var listFilterFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks under the active filter",
	Long: `List tasks visible under the active filter. Use --filter to view a
different subset (all, completed, pending) without changing the
persisted filter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		filter := Store.Filter()
		tasks := Store.FilteredTasks()
		if listFilterFlag != "" {
			f, err := models.ValidateFilter(listFilterFlag)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}
			filter = f
			tasks = nil
			for _, t := range Store.Tasks() {
				if f.Matches(t) {
					tasks = append(tasks, t)
				}
			}
		}

		if len(tasks) == 0 {
			fmt.Printf("No tasks (filter: %s)\n", filter)
			return nil
		}

		for _, t := range tasks {
			fmt.Println(renderTask(t))
		}
		fmt.Println(renderMuted(countStyle, fmt.Sprintf("%d task(s), filter: %s", len(tasks), filter)))
		return nil
	},
}

// renderTask formats one task line, with a checkbox and the id dimmed.
func renderTask(t models.Task) string {
	box := "[ ]"
	title := t.Title
	if t.Completed {
		box = "[x]"
		if !NoColor {
			title = completedStyle.Render(title)
		}
	}
	return fmt.Sprintf("%s %s  %s", box, title, renderMuted(idStyle, t.ID))
}

func renderMuted(style lipgloss.Style, s string) string {
	if NoColor {
		return s
	}
	return style.Render(s)
}

// findTask returns the current task with the given id, or nil.
func findTask(id string) *models.Task {
	for _, t := range Store.Tasks() {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

func init() {
	listCmd.Flags().StringVar(&listFilterFlag, "filter", "", "transient filter: all, completed, or pending")
	rootCmd.AddCommand(listCmd)
}
