package report

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/xmazu/envzilla/internal/envfile"
)

// Status of one variable in one env file.
type Status int

const (
	StatusMissing Status = iota
	StatusEmpty
	StatusPresent
)

var statusNames = map[Status]string{
	StatusMissing: "missing",
	StatusEmpty:   "empty",
	StatusPresent: "present",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func StatusOf(m *envfile.Mapping, key string) Status {
	value, ok := m.Get(key)
	switch {
	case !ok:
		return StatusMissing
	case value == "":
		return StatusEmpty
	}
	return StatusPresent
}

// File is one env file column.
type File struct {
	Path string
	Vars *envfile.Mapping
}

func (f File) Name() string {
	return filepath.Base(f.Path)
}

type Row struct {
	Name  string
	Cells []Status
}

func (r Row) Satisfied() bool {
	for _, c := range r.Cells {
		if c != StatusPresent {
			return false
		}
	}
	return true
}

// Grid holds one row per template variable, one column per env file.
type Grid struct {
	// Template is the template path, when known.
	Template string
	// Files are the column names; Paths the matching file paths.
	Files []string
	Paths []string
	Rows  []Row
}

// Compute builds the status grid. Rows are sorted by variable name; with
// onlyMissing, rows present and non-empty in every file are left out.
func Compute(template *envfile.Mapping, files []File, onlyMissing bool) Grid {
	names := template.Keys()
	sort.Strings(names)

	g := Grid{
		Files: make([]string, len(files)),
		Paths: make([]string, len(files)),
	}
	for i, f := range files {
		g.Files[i] = f.Name()
		g.Paths[i] = f.Path
	}

	for _, name := range names {
		row := Row{Name: name, Cells: make([]Status, len(files))}
		for i, f := range files {
			row.Cells[i] = StatusOf(f.Vars, name)
		}
		if onlyMissing && row.Satisfied() {
			continue
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

// Symbols used when turning cells into text.
type Symbols map[Status]string

var (
	EmojiSymbols = Symbols{StatusPresent: "✓", StatusEmpty: "⚠", StatusMissing: "✗"}
	TextSymbols  = Symbols{StatusPresent: "ok", StatusEmpty: "empty", StatusMissing: "missing"}
)

// Table returns the header and rows of strings for a renderer.
func (g Grid) Table(symbols Symbols) (header []string, rows [][]string) {
	header = append([]string{"Variable"}, g.Files...)
	rows = make([][]string, 0, len(g.Rows))
	for _, r := range g.Rows {
		row := make([]string, 0, len(r.Cells)+1)
		row = append(row, r.Name)
		for _, c := range r.Cells {
			row = append(row, symbols[c])
		}
		rows = append(rows, row)
	}
	return header, rows
}
