package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// Source describes where the transcript comes from: a file path, "-"
// for stdin, or the system clipboard.
type Source struct {
	Path      string
	Clipboard bool
}

// Name identifies the source in messages and diagnostics.
func (s Source) Name() string {
	switch {
	case s.Clipboard:
		return "clipboard"
	case s.Path == "-":
		return "stdin"
	default:
		return s.Path
	}
}

// Lines reads the whole transcript and splits it into lines. CRLF line
// endings are normalized; the final line needs no trailing newline.
func (s Source) Lines() ([]string, error) {
	switch {
	case s.Clipboard:
		text, err := clipboard.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("reading clipboard: %w", err)
		}
		return splitLines(strings.NewReader(text))
	case s.Path == "-":
		return splitLines(os.Stdin)
	default:
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		return splitLines(f)
	}
}

// splitLines scans r line by line. The buffer is enlarged so long
// transcript lines are not truncated by the scanner's default limit.
func splitLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
