package srt

import "fmt"

// class of structural failure found while parsing a block
type ErrorKind int

const (
	IncompleteNode ErrorKind = iota + 1
	InvalidIndex
	MalformedInterval
)

func (k ErrorKind) String() string {
	switch k {
	case IncompleteNode:
		return "IncompleteNode"
	case InvalidIndex:
		return "InvalidIndex"
	case MalformedInterval:
		return "MalformedInterval"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Message is the default human readable description of the kind.
func (k ErrorKind) Message() string {
	switch k {
	case IncompleteNode:
		return "A node is not fully declared"
	case InvalidIndex:
		return "Bad subtitle node declaration"
	case MalformedInterval:
		return "Bad time interval declaration. Expected format: 'hours:minutes:seconds,milliseconds (00:00:00,000)'"
	default:
		return "Unknown parse error"
	}
}

// lets errors.Is(err, srt.InvalidIndex) match a *ParseError of that kind
func (k ErrorKind) Error() string {
	return k.Message()
}

// ParseError locates the first invalid block. Row is the block position in
// the document (plus one for interval errors); Column is a byte offset into
// the offending line, 0 when no offset applies.
type ParseError struct {
	Kind   ErrorKind
	Column int
	Row    int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"%s at row %d, column %d: %s",
		e.Kind.String(),
		e.Row,
		e.Column,
		e.Kind.Message(),
	)
}

func (e *ParseError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func newParseError(kind ErrorKind, column, row int) *ParseError {
	return &ParseError{Kind: kind, Column: column, Row: row}
}
