package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with carve",
		Content: topicQuickstart,
	},
	{
		Name:    "format",
		Title:   "Block Format",
		Summary: "The +++BEGIN / Path: / +++END transcript convention",
		Content: topicFormat,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "config.json fields, YAML variant, and env expansion",
		Content: topicConfig,
	},
	{
		Name:    "errors",
		Title:   "Error Reference",
		Summary: "Parse error kinds, line numbers, and exit codes",
		Content: topicErrors,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a project:

    cd your-project
    carve init

   This creates config.json and an example input.txt.

2. Paste an LLM answer containing labeled code blocks into input.txt.

3. Preview what would be written:

    carve --dry-run

4. Extract for real:

    carve

   Every block becomes a file under the configured RootPath, and one
   "wrote <path>" line is printed per file.

CLI Flags
---------

  carve                         Extract input.txt using config.json
  carve --config <path>         Use another config file (default config.json)
  carve --input <path>          Read another transcript ('-' for stdin)
  carve --clipboard             Read the transcript from the clipboard
  carve --dry-run               Print the write plan without writing
  carve --manifest <path>       Also write a JSON run manifest
  carve check                   Validate a transcript without a config
  carve init                    Scaffold config.json and input.txt
  carve docs                    List documentation topics
  carve docs <topic>            Show a documentation topic

Exit status is 0 on full success and 1 on any failure, with the reason
on stderr. The first error stops the run; there is no skip-and-continue.
`

const topicFormat = `Block Format
============

carve scans the transcript line by line. A block looks like:

    +++BEGIN
    Path: relative/output/path.ext
    <code line 1>
    <code line 2>
    +++END

Rules
-----

  - Marker lines match on their trimmed content, so surrounding
    whitespace is fine, but the text must be exactly +++BEGIN or
    +++END. A line like "+++BEGIN now" is not a marker.
  - Everything outside a block is ignored, so prose between blocks
    needs no escaping.
  - Blocks cannot nest. A +++BEGIN inside an open block, or a +++END
    without one, is an error.
  - The first non-blank line inside a block must be "Path: <value>"
    (case-sensitive prefix). The value is trimmed and used as a path
    relative to RootPath.
  - Markdown fence lines are dropped: any line whose content starts
    with three backticks after leading whitespace is removed, wherever
    it appears in the block and whatever follows the backticks. Pasting
    fenced answers therefore works unchanged.
  - Blank lines inside a block are dropped from the output.
  - Every surviving code line keeps its original indentation and
    trailing spaces. The file content is the code lines joined with
    newlines, with no trailing newline added.

A block must contain at least one code line after the path line, or it
is rejected.
`

const topicConfig = `Configuration Reference
=======================

carve reads config.json (override with --config) before extracting.

    {
      "RootPath": "out",
      "Manifest": "carve-run.json"
    }

Fields
------

  RootPath   string   Required. Base directory every extracted file is
                      written under. Created on demand.
  Manifest   string   Optional. Path for a JSON run manifest recording
                      the run id, duration, and every file written.
                      The --manifest flag overrides it.

Both fields expand $VAR references from the environment. A .env file in
the working directory is loaded first, if present, so project-local
values can live there.

A config file ending in .yaml or .yml is parsed as YAML instead, with
the keys root-path and manifest:

    root-path: out
    manifest: carve-run.json
`

const topicErrors = `Error Reference
===============

All errors are fatal: carve reports the first problem and exits with
status 1, writing the reason to stderr. Parse and content errors carry
the 1-based line number of the offending input line.

Structural errors
-----------------

  UnexpectedBegin   +++BEGIN while a block is already open. Points at
                    the nested marker.
  UnexpectedEnd     +++END without a matching +++BEGIN.
  UnclosedBlock     Input ended inside a block. Points at the +++BEGIN
                    that was never closed.

Content errors
--------------

  EmptyBlock        No non-blank lines between the markers. Points at
                    the +++END line.
  MissingPathLine   The first non-blank line is not "Path: <value>".
                    Points at that line.
  EmptyPath         A path line whose value trims to nothing.
  EmptyCode         No code lines left after the path line (blank and
                    fence lines do not count). Points at the +++END.

Other failures
--------------

  Config errors (missing file, bad JSON/YAML, missing RootPath),
  unreadable input, and write failures (bad path, permissions, disk)
  use wrapped messages naming the operation that failed. A parse error
  writes nothing; a write failure keeps the files already written.
`
