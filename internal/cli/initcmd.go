package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFileLayout mirrors the keys read by core.NewConfigurationManager.
type configFileLayout struct {
	DataDir string `yaml:"data_dir"`
	Keys    struct {
		Tasks  string `yaml:"tasks"`
		Filter string `yaml:"filter"`
	} `yaml:"keys"`
	EventLog struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"event_log"`
	NoColor bool `yaml:"no_color"`
}

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .tasklite.yaml config file",
	Long: `Create a .tasklite.yaml in the current base path with the default
settings spelled out, ready to edit. Refuses to overwrite an existing
file unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(BasePath, ".tasklite.yaml")
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		var layout configFileLayout
		layout.DataDir = "data"
		layout.Keys.Tasks = "tasks"
		layout.Keys.Filter = "filter"
		layout.EventLog.Enabled = true
		layout.EventLog.Path = ".tasklite_events.jsonl"

		data, err := yaml.Marshal(&layout)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
