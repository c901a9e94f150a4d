package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile materializes one extracted file under root: the relative
// path is joined onto root, missing parent directories are created, and
// the code lines are written newline-joined as UTF-8, overwriting any
// existing file. Returns the resolved path and the number of bytes
// written.
func WriteFile(root, rel string, code []string) (string, int, error) {
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", 0, fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	content := []byte(strings.Join(code, "\n"))
	if err := os.WriteFile(full, content, 0644); err != nil {
		return "", 0, fmt.Errorf("writing %s: %w", rel, err)
	}
	return full, len(content), nil
}

// Target reports where WriteFile would place rel without writing it.
func Target(root, rel string) string {
	return filepath.Join(root, rel)
}
