package report

import (
	"fmt"

	"github.com/xmazu/envzilla/internal/envfile"
	"github.com/xmazu/envzilla/internal/workspace"
)

// Build resolves the template in dir, reads every env file next to it and
// computes their grid.
func Build(dir, templateName string, onlyMissing bool) (Grid, error) {
	tplPath, err := workspace.FindTemplate(dir, templateName)
	if err != nil {
		return Grid{}, err
	}
	lines, err := envfile.ReadTemplate(tplPath)
	if err != nil {
		return Grid{}, err
	}

	paths, err := workspace.FindEnvFiles(dir, tplPath)
	if err != nil {
		return Grid{}, fmt.Errorf("find env files: %w", err)
	}

	files := make([]File, 0, len(paths))
	for _, p := range paths {
		vars, err := envfile.Read(p)
		if err != nil {
			return Grid{}, fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, File{Path: p, Vars: vars})
	}

	g := Compute(envfile.TemplateMapping(lines), files, onlyMissing)
	g.Template = tplPath
	return g, nil
}
