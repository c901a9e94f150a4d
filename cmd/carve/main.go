package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jorge-barreto/carve/internal/blocks"
	"github.com/jorge-barreto/carve/internal/config"
	"github.com/jorge-barreto/carve/internal/docs"
	"github.com/jorge-barreto/carve/internal/runner"
	"github.com/jorge-barreto/carve/internal/scaffold"
	"github.com/jorge-barreto/carve/internal/source"
	"github.com/jorge-barreto/carve/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "carve",
		Usage:       "Extract labeled code blocks from LLM transcripts into files",
		Description: "Run 'carve docs' for documentation on the block format, config, and errors.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.json", Usage: "Config file with the extraction RootPath"},
			&cli.StringFlag{Name: "input", Value: "input.txt", Usage: "Transcript to read ('-' for stdin)"},
			&cli.BoolFlag{Name: "clipboard", Usage: "Read the transcript from the clipboard"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the write plan without writing"},
			&cli.StringFlag{Name: "manifest", Usage: "Write a JSON run manifest to this path"},
		},
		Action: extract,
		Commands: []*cli.Command{
			checkCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ux.Error("error: %v", err)
		os.Exit(1)
	}
}

func extract(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &runner.Runner{
		Config:       cfg,
		Source:       source.Source{Path: cmd.String("input"), Clipboard: cmd.Bool("clipboard")},
		DryRun:       cmd.Bool("dry-run"),
		ManifestPath: cmd.String("manifest"),
	}
	return r.Run(ctx)
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate a transcript without writing files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Value: "input.txt", Usage: "Transcript to read ('-' for stdin)"},
			&cli.BoolFlag{Name: "clipboard", Usage: "Read the transcript from the clipboard"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			src := source.Source{Path: cmd.String("input"), Clipboard: cmd.Bool("clipboard")}
			lines, err := src.Lines()
			if err != nil {
				return err
			}
			files, err := blocks.Extract(lines)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name(), err)
			}
			if len(files) == 0 {
				ux.Warning("no blocks found in %s", src.Name())
				return nil
			}
			for i, f := range files {
				fmt.Printf("  %d. %s (%d code line(s), lines %d-%d)\n",
					i+1, f.RelPath, len(f.CodeLines), f.BeginLine, f.EndLine)
			}
			ux.Success("✓ %d block(s) parsed from %s", len(files), src.Name())
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Scaffold config.json and an example input.txt",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-12s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'carve docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
