package create

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/xmazu/envzilla/internal/storage"
	"github.com/xmazu/envzilla/internal/tui"
)

// preview prints a line diff between the file on disk and content.
func preview(out io.Writer, path string, content []byte) error {
	current, err := storage.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s (dry run, not written)\n", tui.Header("Would write"), filepath.Base(path))
	for _, line := range diffLines(string(current), string(content)) {
		switch line[0] {
		case '+':
			fmt.Fprintln(out, tui.Success(line))
		case '-':
			fmt.Fprintln(out, tui.Error(line))
		default:
			fmt.Fprintln(out, tui.Muted(line))
		}
	}
	return nil
}

// diffLines returns old → new as lines prefixed with "+", "-" or " ".
func diffLines(oldText, newText string) []string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []string
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, prefix+strings.TrimSuffix(line, "\n"))
		}
	}
	return out
}
