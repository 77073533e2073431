package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xmazu/envzilla/internal/storage"
)

const (
	EnvFileName = ".env"

	DistSuffix     = "dist"
	TemplateSuffix = "template"
)

// TemplateNames are tried in order when no template is given.
var TemplateNames = []string{
	EnvFileName + "." + DistSuffix,
	EnvFileName + "." + TemplateSuffix,
}

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidName      = errors.New("invalid environment name")
)

// FindTemplate locates the template in baseDir. An explicit name is joined
// with baseDir unless it is absolute.
func FindTemplate(baseDir, explicitName string) (string, error) {
	if explicitName != "" {
		path := explicitName
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, explicitName)
		}
		if !storage.Exists(path) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return path, nil
	}

	for _, name := range TemplateNames {
		path := filepath.Join(baseDir, name)
		if storage.Exists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: none of %s in %s", ErrTemplateNotFound, strings.Join(TemplateNames, ", "), baseDir)
}

// TargetPath maps an environment name to its file: "" is .env, anything else
// .env.<name>. Template suffixes are reserved.
func TargetPath(baseDir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return filepath.Join(baseDir, EnvFileName), nil
	}
	if name == DistSuffix || name == TemplateSuffix {
		return "", fmt.Errorf("%w: %q is reserved for templates", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(baseDir, EnvFileName+"."+name), nil
}
