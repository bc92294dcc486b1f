// Package filex provides small filesystem helpers shared by the server.
package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (and any missing parents) if it does not exist.
// Creating an already-existing directory is not an error.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
