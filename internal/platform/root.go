package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// DefaultStoreDir marks a directory as holding a Quire store.
const DefaultStoreDir = ".quire"

// ErrRootNotFound is returned by FindRoot when no indicator exists up to the filesystem root.
var ErrRootNotFound = errors.New("root not found")

// FindRoot walks upwards from startDir looking for a store root indicator:
// a .quire directory or, failing that, a .git directory.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for dir := abs; ; {
		if hasFile(dir, DefaultStoreDir) || hasFile(dir, ".git") {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
