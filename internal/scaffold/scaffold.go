package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/carve/internal/ux"
)

var configTemplate = `{
  "RootPath": "out"
}
`

var inputTemplate = `This transcript shows the block format carve extracts.

+++BEGIN
Path: hello/main.go
` + "```go" + `
package main

import "fmt"

func main() {
	fmt.Println("hello from carve")
}
` + "```" + `
+++END

Prose outside blocks is ignored. Run 'carve' to materialize the block
above into out/hello/main.go.
`

// Init seeds targetDir with a starter config.json and an example
// input.txt transcript. It refuses to overwrite an existing config and
// leaves an existing input.txt untouched.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, "config.json")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config.json already exists in %s", targetDir)
	}
	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config.json: %w", err)
	}

	inputPath := filepath.Join(targetDir, "input.txt")
	wroteInput := false
	if _, err := os.Stat(inputPath); err == nil {
		ux.Warning("input.txt already exists, leaving it untouched")
	} else {
		if err := os.WriteFile(inputPath, []byte(inputTemplate), 0644); err != nil {
			return fmt.Errorf("writing input.txt: %w", err)
		}
		wroteInput = true
	}

	ux.Success("\n✓ Initialized carve project")
	ux.Info("Created:")
	ux.Path("config.json — extraction root configuration")
	if wroteInput {
		ux.Path("input.txt   — example transcript with one block")
	}
	ux.Info("Next steps:")
	ux.Path("1. Paste an LLM answer into input.txt")
	ux.Path("2. Run 'carve --dry-run' to preview the plan")
	ux.Path("3. Run 'carve' to write the files")

	return nil
}
