package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Attribute", "Type", "Nullable"}, &TableOptions{NoColor: true})

	table.AddRow("id", "int4", "No")
	table.AddRow("title", "varchar(255)", "No")
	table.AddRow("published_at", "timestamp", "Yes")

	table.Render()

	output := buf.String()

	for _, want := range []string{"Attribute", "Type", "Nullable", "id", "varchar(255)", "published_at"} {
		if !strings.Contains(output, want) {
			t.Errorf("Table output missing %q", want)
		}
	}

	if !strings.Contains(output, "─") {
		t.Errorf("Table output missing separator")
	}
}

func TestTableEmpty(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{}, &TableOptions{NoColor: true})
	table.Render()

	if buf.Len() != 0 {
		t.Errorf("Empty table should render nothing, got %q", buf.String())
	}
}

func TestTableSectionAndBlankRow(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Attribute", "Type", "Nullable", "Default"}, &TableOptions{NoColor: true})
	table.AddRow("id", "int4", "No", "increments")
	table.AddBlankRow()
	table.AddSection("Relation", "Type", "Related")
	table.AddRow("Comments", "HasMany", "github.com/acme/blog/models.Comment")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// header, separator, data, blank, section, data
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d: %q", len(lines), lines)
	}
	if lines[3] != "" {
		t.Errorf("expected blank separator row, got %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "Relation") {
		t.Errorf("expected section header, got %q", lines[4])
	}
	// The spanning cell may exceed its column width without truncation.
	if !strings.Contains(lines[5], "github.com/acme/blog/models.Comment") {
		t.Errorf("expected spanning related cell, got %q", lines[5])
	}
}

func TestTablePlaceholder(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Attribute", "Cast"}, &TableOptions{NoColor: true})
	table.AddRow("body", Placeholder)
	table.Render()

	if !strings.Contains(buf.String(), Placeholder) {
		t.Errorf("Table output missing placeholder cell")
	}
}

func TestKeyValueTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	kv := NewKeyValueTable(&buf, true)
	kv.AddRow("Class", "github.com/acme/blog/models.Post")
	kv.AddRow("Connection", "default")
	kv.AddRow("Table", "posts")
	kv.Render()

	output := buf.String()
	for _, want := range []string{"Class:", "Connection:", "Table:", "posts"} {
		if !strings.Contains(output, want) {
			t.Errorf("KeyValueTable output missing %q", want)
		}
	}
}

func TestFormatError(t *testing.T) {
	out := FormatError(ErrorOptions{
		Context:      "model not found",
		Problem:      "Pst",
		Suggestions:  []string{"Post"},
		HelpCommands: []string{"List registered models: recordlens models"},
		NoColor:      true,
	})

	for _, want := range []string{"MODEL NOT FOUND: Pst", "Did you mean: Post?", "→ List registered models"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatError output missing %q in %q", want, out)
		}
	}
}
