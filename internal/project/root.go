package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigName is the file FindConfig looks for.
const ConfigName = "tinyjava.toml"

// FindConfig walks up from startDir to locate tinyjava.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// FindProjectRoot returns the directory containing tinyjava.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(path), true, nil
}
