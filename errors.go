package rubytime

import (
	"fmt"
)

// ErrorKind classifies the ways a Parse can fail against an input string.
type ErrorKind int

const (
	// UnmatchedLiteral means a literal character in the format did not
	// match the corresponding byte of the input.
	UnmatchedLiteral ErrorKind = iota
	// ExpectedDigits means a numeric directive found no digits where it
	// required at least one.
	ExpectedDigits
	// UnrecognizedZone means a %Z/%z directive's text did not match any
	// known offset or zone name.
	UnrecognizedZone
	// NumericOverflow means a numeric directive's digits do not fit in a
	// 64-bit signed integer.
	NumericOverflow
	// FractionTooPrecise means a UTC±N.fffff offset fraction carried more
	// precision than the reference runtime's fixed denominator supports.
	FractionTooPrecise
)

func (k ErrorKind) String() string {
	switch k {
	case UnmatchedLiteral:
		return "unmatched literal"
	case ExpectedDigits:
		return "expected digits"
	case UnrecognizedZone:
		return "unrecognized zone"
	case NumericOverflow:
		return "numeric overflow"
	case FractionTooPrecise:
		return "fraction too precise"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError reports why Parse or ParseUnresolved failed, including the
// byte index into input at which the failure was detected and the input
// string, so callers can render a caret-style message. Format holds the
// text of the format token that failed to match (a directive's spelling or
// a literal run), not the whole format string.
type ParseError struct {
	Kind   ErrorKind
	Index  int
	Format string
	Input  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rubytime: %s at index %d of %q (format %q)", e.Kind, e.Index, e.Input, e.Format)
}

func newParseError(kind ErrorKind, index int, format, input string) error {
	return &ParseError{Kind: kind, Index: index, Format: format, Input: input}
}
