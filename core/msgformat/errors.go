package msgformat

import (
	"errors"
	"fmt"
)

// Parse error kinds. A *ParseError unwraps to exactly one of them,
// so callers branch with errors.Is.
var (
	ErrUnbalancedBrace      = errors.New("unbalanced brace")
	ErrMissingOtherBranch   = errors.New("missing 'other' branch")
	ErrDuplicateBranchKey   = errors.New("duplicate branch key")
	ErrUnknownArgumentType  = errors.New("unknown argument type")
	ErrInvalidOffset        = errors.New("invalid offset")
	ErrUnterminatedQuote    = errors.New("unterminated quote")
	ErrTooDeeplyNested      = errors.New("message too deeply nested")
	ErrUnexpectedPound      = errors.New("'#' outside of a plural branch")
	ErrMissingArgumentName  = errors.New("missing argument name")
	ErrInvalidArgumentName  = errors.New("invalid argument name")
	ErrInvalidBranchKey     = errors.New("invalid branch key")
	ErrMissingBranchMessage = errors.New("missing branch message")
	ErrUnexpectedToken      = errors.New("unexpected token")
)

// Format error kinds. ErrInvalidOffset is shared with the parse errors
// and is reported through *FormatError when the offset subtraction
// overflows at evaluation time.
var (
	ErrMissingArgument      = errors.New("missing argument")
	ErrArgumentTypeMismatch = errors.New("argument type mismatch")
)

// ParseError describes why a pattern was rejected at compile time.
// Offset is counted in code points from the start of the pattern.
type ParseError struct {
	Kind   error
	Offset int
	Detail string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("msgformat: %v at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("msgformat: %v at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newParseError(kind error, offset int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// FormatError describes why a single Format call failed.
// Expected and Actual are only set for ErrArgumentTypeMismatch.
type FormatError struct {
	Kind     error
	Argument string
	Expected Kind
	Actual   Kind
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if errors.Is(e.Kind, ErrArgumentTypeMismatch) {
		return fmt.Sprintf("msgformat: %v: argument %q expects %s, got %s", e.Kind, e.Argument, e.Expected, e.Actual)
	}
	return fmt.Sprintf("msgformat: %v: %q", e.Kind, e.Argument)
}

// Unwrap returns the error kind.
func (e *FormatError) Unwrap() error {
	return e.Kind
}
