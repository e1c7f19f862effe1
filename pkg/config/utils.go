package config

import (
	"os"
	"path/filepath"
)

// findEnvFile looks for name in the working directory and its parents. The search
// ends at the first directory holding a go.mod, so tests run from a package directory
// find the repository's file and never one from outside the checkout.
func findEnvFile(name string) (string, error) {
	if name == "" {
		name = ".env"
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
