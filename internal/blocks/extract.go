package blocks

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	beginMarker = "+++BEGIN"
	endMarker   = "+++END"
)

// File is one extracted file: the relative path from its path line and
// the code lines that become its content.
type File struct {
	RelPath   string
	CodeLines []string
	BeginLine int // line number of the +++BEGIN marker (1-based)
	EndLine   int // line number of the matching +++END marker
}

var pathRe = regexp.MustCompile(`^Path:\s*(.+)$`)

// Extract scans transcript lines for blocks of the form:
//
//	+++BEGIN
//	Path: relative/output/path.ext
//	<code lines>
//	+++END
//
// and returns one File per block, in order of appearance. Marker
// matching is on the trimmed line; anything outside a block is ignored.
// The first rule violation aborts the scan with a ParseError, so a
// malformed transcript never yields a partial result.
func Extract(lines []string) ([]File, error) {
	var files []File
	var raw []string
	inBlock := false
	beginLine := 0

	for i, line := range lines {
		n := i + 1
		switch strings.TrimSpace(line) {
		case beginMarker:
			if inBlock {
				return nil, &ParseError{Kind: UnexpectedBegin, Line: n}
			}
			inBlock = true
			beginLine = n
			raw = nil
		case endMarker:
			if !inBlock {
				return nil, &ParseError{Kind: UnexpectedEnd, Line: n}
			}
			f, err := finalize(raw, beginLine, n)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
			inBlock = false
		default:
			if inBlock {
				raw = append(raw, line)
			}
		}
	}
	if inBlock {
		return nil, &ParseError{Kind: UnclosedBlock, Line: beginLine}
	}
	return files, nil
}

// finalize turns the raw lines collected between the markers into a
// File. raw holds every interior line verbatim, so raw[j] is input
// line beginLine+1+j.
func finalize(raw []string, beginLine, endLine int) (File, error) {
	pathIdx := -1
	for j, line := range raw {
		if strings.TrimSpace(line) != "" {
			pathIdx = j
			break
		}
	}
	if pathIdx < 0 {
		return File{}, &ParseError{Kind: EmptyBlock, Line: endLine}
	}

	m := pathRe.FindStringSubmatch(strings.TrimSpace(raw[pathIdx]))
	if m == nil {
		return File{}, &ParseError{Kind: MissingPathLine, Line: beginLine + 1 + pathIdx}
	}
	rel := strings.TrimSpace(m[1])
	if rel == "" {
		return File{}, &ParseError{Kind: EmptyPath, Line: beginLine + 1 + pathIdx}
	}

	// Code lines keep their original form; blank lines and fence lines
	// are dropped. The fence check looks only at the leading-whitespace
	// stripped prefix, so a line like "x = y ```" survives but "```go"
	// does not, wherever it appears.
	var code []string
	for _, line := range raw[pathIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "```") {
			continue
		}
		code = append(code, line)
	}
	if len(code) == 0 {
		return File{}, &ParseError{Kind: EmptyCode, Line: endLine}
	}

	return File{RelPath: rel, CodeLines: code, BeginLine: beginLine, EndLine: endLine}, nil
}
