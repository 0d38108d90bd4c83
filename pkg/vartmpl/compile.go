package vartmpl

import (
	"fmt"
	"strings"
)

// Compile parses raw into an immutable Template using the given syntax.
//
// The scan is left to right: everything before the next open delimiter
// becomes a literal segment, the text between the delimiters becomes a
// placeholder, and the scan resumes after the close delimiter. There is
// no escaping; a literal occurrence of the open delimiter always starts
// a placeholder.
//
// Compile fails with a *SyntaxError when:
//   - the syntax descriptor itself is invalid (wraps ErrBadSyntax)
//   - an open delimiter has no matching close (ErrUnterminated)
//   - a placeholder name is empty (ErrEmptyName)
//   - a name contains characters outside the name class (ErrInvalidName)
//   - two placeholders are directly adjacent (ErrAdjacentPlaceholders)
func Compile(raw string, syn Syntax) (*Template, error) {
	if err := syn.Validate(); err != nil {
		return nil, &SyntaxError{Pos: 0, Err: err}
	}

	t := &Template{raw: raw, syntax: syn}
	seen := make(map[string]bool)

	rest := raw
	pos := 0
	for {
		i := strings.Index(rest, syn.Open)
		if i < 0 {
			// Trailing literal, possibly empty.
			t.segments = append(t.segments, segment{text: rest})
			break
		}

		if i == 0 && len(t.segments) > 0 {
			// The previous segment was a placeholder with nothing after it.
			return nil, &SyntaxError{Pos: pos, Err: ErrAdjacentPlaceholders}
		}
		t.segments = append(t.segments, segment{text: rest[:i]})

		nameStart := i + len(syn.Open)
		j := strings.Index(rest[nameStart:], syn.Close)
		if j < 0 {
			return nil, &SyntaxError{Pos: pos + i, Err: ErrUnterminated}
		}

		name := rest[nameStart : nameStart+j]
		if name == "" {
			return nil, &SyntaxError{Pos: pos + i, Err: ErrEmptyName}
		}
		if !syn.validName(name) {
			return nil, &SyntaxError{
				Pos: pos + i,
				Err: fmt.Errorf("%w: %q", ErrInvalidName, name),
			}
		}

		t.segments = append(t.segments, segment{text: name, placeholder: true})
		if !seen[name] {
			seen[name] = true
			t.names = append(t.names, name)
		}

		consumed := nameStart + j + len(syn.Close)
		rest = rest[consumed:]
		pos += consumed
	}

	return t, nil
}

// MustCompile is like Compile but panics on error. Use for templates
// known at program start.
func MustCompile(raw string, syn Syntax) *Template {
	t, err := Compile(raw, syn)
	if err != nil {
		panic(fmt.Sprintf("vartmpl: %v", err))
	}
	return t
}
