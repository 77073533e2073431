package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/xmazu/envzilla/internal/tui"
)

// Output formats accepted by NewRenderer.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Renderer presents a grid.
type Renderer interface {
	Render(w io.Writer, g Grid) error
}

// NewRenderer picks a renderer for format. plain only affects FormatTable.
func NewRenderer(format string, plain bool) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatTable:
		if plain {
			return PlainRenderer{}, nil
		}
		return StyledRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q: must be table, json or yaml", format)
}

// StyledRenderer draws a bordered, colored table.
type StyledRenderer struct{}

func (StyledRenderer) Render(w io.Writer, g Grid) error {
	header, rows := g.Table(EmojiSymbols)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.MutedStyle).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(g.Rows) {
				return tui.CellStyle.Inherit(tui.HeaderStyle)
			}
			if col == 0 {
				return tui.CellStyle.Inherit(tui.KeyStyle)
			}
			return tui.CellStyle.Inherit(cellStyle(g.Rows[row].Cells[col-1]))
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func cellStyle(s Status) lipgloss.Style {
	switch s {
	case StatusPresent:
		return tui.SuccessStyle
	case StatusEmpty:
		return tui.WarningStyle
	}
	return tui.ErrorStyle
}

// PlainRenderer writes tab-aligned text without colors.
type PlainRenderer struct{}

func (PlainRenderer) Render(w io.Writer, g Grid) error {
	header, rows := g.Table(TextSymbols)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Document is the machine-readable form of a grid.
type Document struct {
	Template  string     `json:"template,omitempty" yaml:"template,omitempty"`
	Files     []string   `json:"files" yaml:"files"`
	Variables []Variable `json:"variables" yaml:"variables"`
}

type Variable struct {
	Name   string            `json:"name" yaml:"name"`
	Status map[string]Status `json:"status" yaml:"status"`
}

func NewDocument(g Grid) Document {
	doc := Document{
		Template:  g.Template,
		Files:     g.Files,
		Variables: make([]Variable, 0, len(g.Rows)),
	}
	if doc.Files == nil {
		doc.Files = []string{}
	}
	for _, r := range g.Rows {
		v := Variable{Name: r.Name, Status: make(map[string]Status, len(r.Cells))}
		for i, c := range r.Cells {
			v.Status[g.Files[i]] = c
		}
		doc.Variables = append(doc.Variables, v)
	}
	return doc
}

type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, g Grid) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(NewDocument(g))
}

type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, g Grid) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(g)); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}
