// Package config resolves the project root used by the CLI and tools.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// RootEnv overrides project root detection when set.
const RootEnv = "LABKIT_ROOT"

// markers are subdirectories whose presence identifies an already
// initialized project root during upward search.
var markers = []string{"data", "logs"}

// LoadDotenv loads a .env file from the working directory when one is
// present. Real environment variables take precedence over file values.
func LoadDotenv() {
	_ = godotenv.Load()
}

// Root resolves the project root: the LABKIT_ROOT environment variable
// when set, otherwise the nearest ancestor of the working directory
// that already looks like a project, otherwise the working directory
// itself. Tools run from a notebook subdirectory still anchor to the
// project root this way.
func Root() string {
	if env := os.Getenv(RootEnv); env != "" {
		return env
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	if root, ok := findRoot(cwd); ok {
		return root
	}
	return cwd
}

// findRoot walks from dir toward the filesystem root looking for the
// project markers.
func findRoot(dir string) (string, bool) {
	for {
		if isProjectRoot(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func isProjectRoot(dir string) bool {
	for _, m := range markers {
		info, err := os.Stat(filepath.Join(dir, m))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}
