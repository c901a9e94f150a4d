package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry records one materialized file.
type Entry struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
	Bytes int    `json:"bytes"`
}

// Manifest is the JSON record of a single extraction run.
type Manifest struct {
	RunID    string    `json:"run_id"`
	Started  time.Time `json:"started"`
	Duration string    `json:"duration,omitempty"`
	Root     string    `json:"root"`
	Files    []Entry   `json:"files"`
}

// New returns a manifest for a run starting now.
func New(root string) *Manifest {
	return &Manifest{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Root:    root,
	}
}

// Add appends a file entry.
func (m *Manifest) Add(path string, lines, bytes int) {
	m.Files = append(m.Files, Entry{Path: path, Lines: lines, Bytes: bytes})
}

// Finish stamps the run duration.
func (m *Manifest) Finish() {
	m.Duration = formatDuration(time.Since(m.Started))
}

// Save writes the manifest to path atomically.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data, 0644)
}

func formatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", mins, secs)
}
