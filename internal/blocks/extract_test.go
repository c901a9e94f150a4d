package blocks

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func wantParseError(t *testing.T, err error, kind Kind, line int) {
	t.Helper()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Kind != kind || pe.Line != line {
		t.Fatalf("got %v at line %d, want %v at line %d", pe.Kind, pe.Line, kind, line)
	}
}

func TestExtract_SingleBlock(t *testing.T) {
	in := []string{
		"Here is the project:",
		"",
		"+++BEGIN",
		"Path: cmd/app/main.go",
		"package main",
		"",
		"func main() {}",
		"+++END",
		"Done.",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := []File{{
		RelPath:   "cmd/app/main.go",
		CodeLines: []string{"package main", "func main() {}"},
		BeginLine: 3,
		EndLine:   8,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_MultipleBlocksInOrder(t *testing.T) {
	in := []string{
		"+++BEGIN",
		"Path: a.txt",
		"aaa",
		"+++END",
		"+++BEGIN",
		"Path: b.txt",
		"bbb",
		"+++END",
		"+++BEGIN",
		"Path: c.txt",
		"ccc",
		"+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 files, got %d", len(got))
	}
	for i, want := range []string{"a.txt", "b.txt", "c.txt"} {
		if got[i].RelPath != want {
			t.Fatalf("file %d: RelPath = %q, want %q", i, got[i].RelPath, want)
		}
	}
}

func TestExtract_ProseBetweenBlocksIgnored(t *testing.T) {
	in := []string{
		"First the config file.",
		"+++BEGIN",
		"Path: config.json",
		`{"RootPath": "out"}`,
		"+++END",
		"And now the entry point, as discussed above.",
		"",
		"+++BEGIN",
		"Path: main.go",
		"package main",
		"+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 files, got %d", len(got))
	}
}

func TestExtract_BlankCodeLinesDropped(t *testing.T) {
	in := []string{
		"+++BEGIN",
		"Path: a.py",
		"x=1",
		"",
		"y=2",
		"+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 file, got %d", len(got))
	}
	want := []string{"x=1", "y=2"}
	if diff := cmp.Diff(want, got[0].CodeLines); diff != "" {
		t.Fatalf("CodeLines mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_FencePairDropped(t *testing.T) {
	in := []string{
		"+++BEGIN",
		"Path: hello.py",
		"```python",
		"print(1)",
		"```",
		"+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := []string{"print(1)"}
	if diff := cmp.Diff(want, got[0].CodeLines); diff != "" {
		t.Fatalf("CodeLines mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_FenceDroppedAnywhere(t *testing.T) {
	// The fence check only inspects the leading-whitespace-stripped
	// prefix, so an indented fence mid-block is dropped too, while a
	// line with backticks further in is kept.
	in := []string{
		"+++BEGIN",
		"Path: a.txt",
		"keep ``` this",
		"   ```go",
		"more code",
		"+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := []string{"keep ``` this", "more code"}
	if diff := cmp.Diff(want, got[0].CodeLines); diff != "" {
		t.Fatalf("CodeLines mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_CodeKeepsOriginalForm(t *testing.T) {
	in := []string{
		"+++BEGIN",
		"Path: indent.py",
		"def f():",
		"    return 1  ",
		"+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := []string{"def f():", "    return 1  "}
	if diff := cmp.Diff(want, got[0].CodeLines); diff != "" {
		t.Fatalf("CodeLines mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_PathValueTrimmed(t *testing.T) {
	in := []string{
		"+++BEGIN",
		"  Path:   spaced/path.txt   ",
		"content",
		"+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got[0].RelPath != "spaced/path.txt" {
		t.Fatalf("RelPath = %q, want %q", got[0].RelPath, "spaced/path.txt")
	}
}

func TestExtract_BlankLinesBeforePathLine(t *testing.T) {
	in := []string{
		"+++BEGIN",
		"",
		"   ",
		"Path: a.txt",
		"content",
		"+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got[0].RelPath != "a.txt" {
		t.Fatalf("RelPath = %q, want %q", got[0].RelPath, "a.txt")
	}
}

func TestExtract_MarkerSurroundedByWhitespace(t *testing.T) {
	in := []string{
		"  +++BEGIN  ",
		"Path: a.txt",
		"content",
		"\t+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 file, got %d", len(got))
	}
}

func TestExtract_MarkerWithTrailingTextIsContent(t *testing.T) {
	// "+++END early" is not a marker, so inside a block it is code.
	in := []string{
		"+++BEGIN",
		"Path: a.txt",
		"+++END early",
		"+++END",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := []string{"+++END early"}
	if diff := cmp.Diff(want, got[0].CodeLines); diff != "" {
		t.Fatalf("CodeLines mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_NoBlocks(t *testing.T) {
	got, err := Extract([]string{"just prose", "no markers here"})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 files, got %d", len(got))
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	got, err := Extract(nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 files, got %d", len(got))
	}
}

func TestExtract_NestedBegin(t *testing.T) {
	_, err := Extract([]string{"+++BEGIN", "+++BEGIN", "+++END"})
	wantParseError(t, err, UnexpectedBegin, 2)
}

func TestExtract_EndWithoutBegin(t *testing.T) {
	_, err := Extract([]string{"some prose", "+++END"})
	wantParseError(t, err, UnexpectedEnd, 2)
}

func TestExtract_UnclosedBlock(t *testing.T) {
	_, err := Extract([]string{"+++BEGIN", "Path: a.txt", "code"})
	wantParseError(t, err, UnclosedBlock, 1)
}

func TestExtract_EmptyBlock(t *testing.T) {
	_, err := Extract([]string{"+++BEGIN", "", "   ", "+++END"})
	wantParseError(t, err, EmptyBlock, 4)
}

func TestExtract_MissingPathLine(t *testing.T) {
	_, err := Extract([]string{"+++BEGIN", "foo bar", "+++END"})
	wantParseError(t, err, MissingPathLine, 2)
}

func TestExtract_PathPrefixIsCaseSensitive(t *testing.T) {
	_, err := Extract([]string{"+++BEGIN", "path: a.txt", "code", "+++END"})
	wantParseError(t, err, MissingPathLine, 2)
}

func TestExtract_EmptyCode(t *testing.T) {
	_, err := Extract([]string{"+++BEGIN", "Path: a.txt", "+++END"})
	wantParseError(t, err, EmptyCode, 3)
}

func TestExtract_FenceOnlyBlockIsEmptyCode(t *testing.T) {
	_, err := Extract([]string{"+++BEGIN", "Path: a.txt", "```go", "```", "+++END"})
	wantParseError(t, err, EmptyCode, 5)
}

func TestExtract_ErrorAbortsWholeRun(t *testing.T) {
	// A valid block before a malformed one yields no results at all.
	in := []string{
		"+++BEGIN",
		"Path: good.txt",
		"fine",
		"+++END",
		"+++BEGIN",
		"no path here",
		"+++END",
	}
	got, err := Extract(in)
	wantParseError(t, err, MissingPathLine, 6)
	if got != nil {
		t.Fatalf("expected no files on parse error, got %d", len(got))
	}
}

func TestParseError_Messages(t *testing.T) {
	cases := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Kind: UnexpectedBegin, Line: 2}, "line 2: +++BEGIN while a block is already open"},
		{&ParseError{Kind: UnexpectedEnd, Line: 7}, "line 7: +++END without a matching +++BEGIN"},
		{&ParseError{Kind: UnclosedBlock, Line: 3}, "line 3: +++BEGIN has no matching +++END before end of input"},
		{&ParseError{Kind: EmptyBlock, Line: 4}, "line 4: block closed with no content"},
		{&ParseError{Kind: MissingPathLine, Line: 2}, "line 2: first line of a block must be 'Path: <relative path>'"},
		{&ParseError{Kind: EmptyPath, Line: 5}, "line 5: 'Path:' has an empty value"},
		{&ParseError{Kind: EmptyCode, Line: 6}, "line 6: block has no code lines after the path line"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	if got := UnclosedBlock.String(); got != "UnclosedBlock" {
		t.Errorf("String() = %q, want %q", got, "UnclosedBlock")
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("String() = %q, want %q", got, "Kind(99)")
	}
}
