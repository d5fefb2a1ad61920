// Package backup writes pre-operation snapshots of the installed package
// list, one name per line, to timestamped files for manual recovery.
package backup

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Write stores the given installed-package names in a timestamped file
// under dir and returns the file path.
func Write(dir string, packages []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := "packages_" + time.Now().Format("20060102_150405") + ".txt"
	path := filepath.Join(dir, name)

	content := strings.Join(packages, "\n")
	if content != "" {
		content += "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
