package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasklite/pkg/models"
)

// Style definitions for the interactive list.
var (
	uiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	uiCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)

	uiCompletedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")).
				Strikethrough(true)

	uiFilterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))

	uiHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	uiStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

type uiModel struct {
	cursor int
	tasks  []models.Task
	filter models.Filter
	status string
}

func newUIModel() uiModel {
	return uiModel{
		tasks:  Store.FilteredTasks(),
		filter: Store.Filter(),
	}
}

// refresh re-derives the visible task list after a mutation or filter
// change, keeping the cursor in range.
func (m *uiModel) refresh() {
	m.tasks = Store.FilteredTasks()
	m.filter = Store.Filter()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case " ":
		if m.cursor < len(m.tasks) {
			Store.ToggleTask(m.tasks[m.cursor].ID)
			m.status = "toggled"
			m.refresh()
		}
		return m, nil

	case "d":
		if m.cursor < len(m.tasks) {
			Store.DeleteTask(m.tasks[m.cursor].ID)
			m.status = "deleted"
			m.refresh()
		}
		return m, nil

	case "f":
		next := nextFilter(m.filter)
		if err := Store.SetFilter(next); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("filter: %s", next)
		m.refresh()
		return m, nil

	case "c":
		removed := Store.ClearCompleted()
		m.status = fmt.Sprintf("cleared %d completed", removed)
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m uiModel) View() string {
	s := uiTitleStyle.Render("tasklite") + "  " + uiFilterStyle.Render(string(m.filter)) + "\n\n"

	if len(m.tasks) == 0 {
		s += "  (no tasks)\n"
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = uiCursorStyle.Render("> ")
		}
		box := "[ ]"
		title := t.Title
		if t.Completed {
			box = "[x]"
			title = uiCompletedStyle.Render(title)
		}
		s += fmt.Sprintf("%s%s %s\n", cursor, box, title)
	}

	s += "\n"
	if m.status != "" {
		s += uiStatusStyle.Render(m.status) + "\n"
	}
	s += uiHelpStyle.Render("j/k move · space toggle · d delete · f filter · c clear done · q quit") + "\n"
	return s
}

// nextFilter cycles all -> completed -> pending -> all.
func nextFilter(f models.Filter) models.Filter {
	for i, known := range models.Filters {
		if f == known {
			return models.Filters[(i+1)%len(models.Filters)]
		}
	}
	return models.FilterAll
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse tasks interactively",
	Long: `Open an interactive task list. Move with j/k, toggle completion
with space, delete with d, cycle the filter with f, and clear completed
tasks with c.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		p := tea.NewProgram(newUIModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running task ui: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
