package vartmpl

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for syntax descriptors and compilation.
var (
	// ErrBadSyntax indicates a Syntax value violates its invariants.
	ErrBadSyntax = errors.New("invalid syntax descriptor")

	// ErrUnterminated indicates an open delimiter with no matching close.
	ErrUnterminated = errors.New("unterminated placeholder")

	// ErrEmptyName indicates a placeholder with nothing between the delimiters.
	ErrEmptyName = errors.New("empty placeholder name")

	// ErrInvalidName indicates a placeholder name with characters outside
	// the syntax's name class.
	ErrInvalidName = errors.New("invalid placeholder name")

	// ErrAdjacentPlaceholders indicates two placeholders with no literal
	// text between them. The extractor would have no anchor to split them,
	// so this is rejected at compile time.
	ErrAdjacentPlaceholders = errors.New("adjacent placeholders")
)

// Sentinel errors for formatting and extraction.
var (
	// ErrMissingValue indicates a placeholder with no entry in the values map.
	ErrMissingValue = errors.New("missing value")

	// ErrUnusedValues indicates values not referenced by any placeholder,
	// reported only when the unused check is enabled.
	ErrUnusedValues = errors.New("unused values")

	// ErrNoMatch indicates the input cannot be decomposed against the
	// template's literal structure.
	ErrNoMatch = errors.New("input does not match template")

	// ErrAmbiguous indicates a value contains an adjacent literal anchor,
	// reported only when the ambiguity check is enabled.
	ErrAmbiguous = errors.New("ambiguous decomposition")
)

// SyntaxError reports a malformed template at compile time.
type SyntaxError struct {
	// Pos is the byte offset in the raw template where the problem starts.
	Pos int
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error at offset %d: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// MissingValueError reports a placeholder absent from the values map.
type MissingValueError struct {
	// Name is the placeholder with no supplied value.
	Name string
}

// Error implements the error interface.
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for placeholder %q", e.Name)
}

// Unwrap returns ErrMissingValue for errors.Is support.
func (e *MissingValueError) Unwrap() error {
	return ErrMissingValue
}

// UnusedValuesError reports supplied values that no placeholder references.
type UnusedValuesError struct {
	// Names is the sorted list of unreferenced keys.
	Names []string
}

// Error implements the error interface.
func (e *UnusedValuesError) Error() string {
	return fmt.Sprintf("unused values: %s", strings.Join(e.Names, ", "))
}

// Unwrap returns ErrUnusedValues for errors.Is support.
func (e *UnusedValuesError) Unwrap() error {
	return ErrUnusedValues
}

// NoMatchError reports that an input string does not align with the
// template's anchors.
type NoMatchError struct {
	// Pos is the byte offset in the input where matching failed.
	Pos int
	// Reason describes the failed step.
	Reason string
}

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no match at offset %d: %s", e.Pos, e.Reason)
}

// Unwrap returns ErrNoMatch for errors.Is support.
func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

// AmbiguityError reports competing decompositions detected by the
// ambiguity check. Possibilities holds at least two name->value maps that
// would each round-trip to the same string.
type AmbiguityError struct {
	// Possibilities are the competing assignments.
	Possibilities []map[string]string
}

// Error implements the error interface.
func (e *AmbiguityError) Error() string {
	var b strings.Builder
	b.WriteString("ambiguous decomposition:")
	prefix := "\n  could be: "
	for _, p := range e.Possibilities {
		b.WriteString(prefix)
		b.WriteString(formatPossibility(p))
		prefix = "\n        or: "
	}
	return b.String()
}

// Unwrap returns ErrAmbiguous for errors.Is support.
func (e *AmbiguityError) Unwrap() error {
	return ErrAmbiguous
}

// formatPossibility renders one assignment with stable key order.
func formatPossibility(p map[string]string) string {
	keys := sortedKeys(p)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, p[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
