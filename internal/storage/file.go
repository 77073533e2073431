package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"
)

// DefaultPerm is used for files that do not exist yet.
const DefaultPerm os.FileMode = 0644

func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WriteFile atomically replaces path with data, keeping the permission bits
// of an existing file.
func WriteFile(path string, data []byte) error {
	perm := DefaultPerm
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		perm = info.Mode().Perm()
	}
	return WriteFileWithPerm(path, data, perm)
}

func WriteFileWithPerm(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := atomicwriter.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
