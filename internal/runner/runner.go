package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/jorge-barreto/carve/internal/blocks"
	"github.com/jorge-barreto/carve/internal/config"
	"github.com/jorge-barreto/carve/internal/fs"
	"github.com/jorge-barreto/carve/internal/manifest"
	"github.com/jorge-barreto/carve/internal/source"
	"github.com/jorge-barreto/carve/internal/ux"
)

// Runner drives one extraction run: read the transcript, extract its
// blocks, then materialize each file under the configured root.
type Runner struct {
	Config       *config.Config
	Source       source.Source
	DryRun       bool
	ManifestPath string // overrides Config.Manifest when set
}

// Run executes the pipeline. Extraction is all-or-nothing: a parse
// error means nothing is written. A write failure stops the run but
// leaves files already written in place.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()

	lines, err := r.Source.Lines()
	if err != nil {
		return err
	}

	files, err := blocks.Extract(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Source.Name(), err)
	}
	if len(files) == 0 {
		ux.Warning("no blocks found in %s", r.Source.Name())
		return nil
	}

	if r.DryRun {
		r.printPlan(files)
		return nil
	}

	root := r.Config.RootPath
	mfPath := r.manifestPath()
	var mf *manifest.Manifest
	if mfPath != "" {
		mf = manifest.New(root)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		full, n, err := fs.WriteFile(root, f.RelPath, f.CodeLines)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", full)
		if mf != nil {
			mf.Add(f.RelPath, len(f.CodeLines), n)
		}
	}

	if mf != nil {
		mf.Finish()
		if err := mf.Save(mfPath); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
		ux.Info("manifest: %s", mfPath)
	}

	ux.Success("✓ extracted %d file(s) to %s in %s",
		len(files), root, time.Since(start).Round(time.Millisecond))
	return nil
}

// printPlan lists what would be written, without touching the disk.
func (r *Runner) printPlan(files []blocks.File) {
	ux.Header("Dry run: %d file(s) would be written", len(files))
	for i, f := range files {
		fmt.Printf("  %d. %s (%d code line(s), block at lines %d-%d)\n",
			i+1, fs.Target(r.Config.RootPath, f.RelPath), len(f.CodeLines), f.BeginLine, f.EndLine)
	}
}

func (r *Runner) manifestPath() string {
	if r.ManifestPath != "" {
		return r.ManifestPath
	}
	return r.Config.Manifest
}
