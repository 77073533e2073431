package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const envGlob = EnvFileName + "*"

// FindEnvFiles lists the environment files in baseDir, sorted by name. The
// template and any other template-suffixed file are left out.
func FindEnvFiles(baseDir, templatePath string) ([]string, error) {
	fsys := os.DirFS(baseDir)
	names, err := doublestar.Glob(fsys, envGlob)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", envGlob, err)
	}

	templateAbs := absOrSelf(templatePath)

	var files []string
	for _, name := range names {
		if IsTemplateFilename(name) {
			continue
		}
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			continue
		}
		path := filepath.Join(baseDir, name)
		if templatePath != "" && absOrSelf(path) == templateAbs {
			continue
		}
		files = append(files, path)
	}

	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i]) < filepath.Base(files[j])
	})
	return files, nil
}

func IsTemplateFilename(name string) bool {
	return strings.HasSuffix(name, "."+DistSuffix) || strings.HasSuffix(name, "."+TemplateSuffix)
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
