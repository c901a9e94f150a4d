package blocks

import "fmt"

// Kind classifies a parse failure.
type Kind int

const (
	// UnexpectedBegin is a +++BEGIN marker while a block is already open.
	UnexpectedBegin Kind = iota
	// UnexpectedEnd is a +++END marker with no open block.
	UnexpectedEnd
	// UnclosedBlock is an open block still unterminated at end of input.
	UnclosedBlock
	// EmptyBlock is a block with no non-blank lines at all.
	EmptyBlock
	// MissingPathLine is a block whose first non-blank line is not a path line.
	MissingPathLine
	// EmptyPath is a path line whose value trims to nothing.
	EmptyPath
	// EmptyCode is a block with no code lines left after the path line.
	EmptyCode
)

func (k Kind) String() string {
	switch k {
	case UnexpectedBegin:
		return "UnexpectedBegin"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case UnclosedBlock:
		return "UnclosedBlock"
	case EmptyBlock:
		return "EmptyBlock"
	case MissingPathLine:
		return "MissingPathLine"
	case EmptyPath:
		return "EmptyPath"
	case EmptyCode:
		return "EmptyCode"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError reports the first rule violation found in a transcript,
// with the 1-based line number it was detected at. For UnclosedBlock
// the line is the +++BEGIN that was never closed.
type ParseError struct {
	Kind Kind
	Line int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedBegin:
		return fmt.Sprintf("line %d: +++BEGIN while a block is already open", e.Line)
	case UnexpectedEnd:
		return fmt.Sprintf("line %d: +++END without a matching +++BEGIN", e.Line)
	case UnclosedBlock:
		return fmt.Sprintf("line %d: +++BEGIN has no matching +++END before end of input", e.Line)
	case EmptyBlock:
		return fmt.Sprintf("line %d: block closed with no content", e.Line)
	case MissingPathLine:
		return fmt.Sprintf("line %d: first line of a block must be 'Path: <relative path>'", e.Line)
	case EmptyPath:
		return fmt.Sprintf("line %d: 'Path:' has an empty value", e.Line)
	case EmptyCode:
		return fmt.Sprintf("line %d: block has no code lines after the path line", e.Line)
	}
	return fmt.Sprintf("line %d: invalid block", e.Line)
}
