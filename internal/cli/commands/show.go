package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recordlens/recordlens/internal/cli/config"
	"github.com/recordlens/recordlens/internal/cli/ui"
	"github.com/recordlens/recordlens/internal/inspect"
	"github.com/recordlens/recordlens/internal/model"
	"github.com/recordlens/recordlens/internal/schema"
)

var (
	showDatabaseFlag string
	showJSONFlag     bool
	showVerboseFlag  bool
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <model>",
		Short: "Show a model's columns, attributes, and relationships",
		Long: `Show a consolidated description of one registered model.

The model may be named by its short type name or its fully qualified
identity (package path plus type name). Column metadata is read from the
model's database connection; computed attributes and relationships are
discovered from the model's declared methods.`,
		Example: `  # Describe the Post model
  recordlens show Post

  # Fully qualified lookup
  recordlens show github.com/acme/blog/models.Post

  # Read the schema through a different connection
  recordlens show Post --database replica

  # Machine-readable output
  recordlens show Post --json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().StringVar(&showDatabaseFlag, "database", "", "Override the model's connection")
	cmd.Flags().BoolVar(&showJSONFlag, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&showVerboseFlag, "verbose", "v", false, "Log engine diagnostics to stderr")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if showVerboseFlag {
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck
	}

	inspector := inspect.New(model.Default, connectionOpener(cfg), inspect.WithLogger(logger))

	description, err := inspector.Describe(context.Background(), args[0], showDatabaseFlag)
	if err != nil {
		if errors.Is(err, model.ErrNotRegistered) {
			ui.PrintError(cmd.ErrOrStderr(), ui.ErrorOptions{
				Context:      "model not found",
				Problem:      args[0],
				Suggestions:  model.Default.Suggest(args[0]),
				HelpCommands: []string{"List registered models: recordlens models"},
				NoColor:      noColor,
			})
		}
		return err
	}

	if showJSONFlag {
		return writeJSON(cmd.OutOrStdout(), description)
	}
	renderDescription(cmd.OutOrStdout(), description)
	return nil
}

// connectionOpener builds the inspector's connection opener from the
// loaded configuration.
func connectionOpener(cfg *config.Config) inspect.OpenFunc {
	return func(connection string) (schema.Reader, error) {
		name := connection
		if name == model.DefaultConnection && cfg.DefaultConnection != "" {
			name = cfg.DefaultConnection
		}
		conn, err := cfg.Resolve(name)
		if err != nil {
			return nil, err
		}
		return schema.Open(conn.Driver, conn.URL)
	}
}

// writeJSON serializes a value as one indented JSON document.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// renderDescription prints the table-mode view: a header block, the
// attribute table, and the relation rows under a spanning sub-header.
func renderDescription(w io.Writer, d *inspect.ModelDescription) {
	header := ui.NewKeyValueTable(w, noColor)
	header.AddRow("Class", d.Class)
	header.AddRow("Connection", d.Connection)
	header.AddRow("Table", d.Table)
	header.Render()
	fmt.Fprintln(w)

	table := ui.NewTable(w,
		[]string{"Attribute", "Type", "Nullable", "Default", "Fillable", "Hidden", "Appended", "Cast"},
		&ui.TableOptions{NoColor: noColor})

	for _, attr := range d.Attributes {
		table.AddRow(
			attr.Name,
			stringCell(attr.Type),
			boolPtrCell(attr.Nullable),
			valueCell(attr.Default),
			boolCell(attr.Fillable),
			boolCell(attr.Hidden),
			boolPtrCell(attr.Appended),
			stringCell(attr.Cast),
		)
	}

	table.AddBlankRow()
	table.AddSection("Relation", "Type", "Related")
	for _, rel := range d.Relations {
		table.AddRow(rel.Name, rel.Kind, rel.Related)
	}

	table.Render()
}

func boolCell(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func boolPtrCell(b *bool) string {
	if b == nil {
		return ui.Placeholder
	}
	return boolCell(*b)
}

func stringCell(s *string) string {
	if s == nil {
		return ui.Placeholder
	}
	return *s
}

func valueCell(v any) string {
	if v == nil {
		return ui.Placeholder
	}
	return cast.ToString(v)
}
