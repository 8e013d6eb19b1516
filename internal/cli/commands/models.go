package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recordlens/recordlens/internal/cli/ui"
	"github.com/recordlens/recordlens/internal/model"
)

var modelsJSONFlag bool

// NewModelsCommand creates the models command.
func NewModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List all registered models",
		Long: `List the models registered by the application, with the table and
connection each one is bound to.`,
		Example: `  # List all models
  recordlens models

  # Machine-readable output
  recordlens models --json`,
		RunE: runModels,
	}

	cmd.Flags().BoolVar(&modelsJSONFlag, "json", false, "Output as JSON")

	return cmd
}

type modelSummary struct {
	Name       string `json:"name"`
	Class      string `json:"class"`
	Table      string `json:"table"`
	Connection string `json:"connection"`
}

func runModels(cmd *cobra.Command, args []string) error {
	entries := model.Default.All()

	summaries := make([]modelSummary, 0, len(entries))
	for _, entry := range entries {
		instance := entry.New()
		summaries = append(summaries, modelSummary{
			Name:       entry.Name,
			Class:      entry.Qualified,
			Table:      model.TableFor(instance),
			Connection: model.ConnectionFor(instance),
		})
	}

	if modelsJSONFlag {
		return writeJSON(cmd.OutOrStdout(), summaries)
	}

	w := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No models registered.")
		return nil
	}

	table := ui.NewTable(w, []string{"Model", "Table", "Connection", "Class"},
		&ui.TableOptions{NoColor: noColor})
	for _, s := range summaries {
		table.AddRow(s.Name, s.Table, s.Connection, s.Class)
	}
	table.Render()
	return nil
}
