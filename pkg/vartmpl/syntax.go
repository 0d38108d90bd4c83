package vartmpl

import (
	"fmt"
	"strings"
	"unicode"
)

// NameClass reports whether r is a valid placeholder-name rune at rune
// position i (0 for the first rune of the name).
type NameClass func(r rune, i int) bool

// IdentifierNames accepts letters, digits and underscore, with no leading
// digit. This matches identifier rules in most languages and shells.
func IdentifierNames(r rune, i int) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	return unicode.IsDigit(r) && i > 0
}

// PermissiveNames accepts word characters and whitespace anywhere,
// including a leading digit. Useful for human-authored templates like
// "${release date}".
func PermissiveNames(r rune, i int) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r)
}

// Syntax describes how a placeholder is written: the literal open and
// close delimiters and the character class for placeholder names.
//
// A Syntax is plain data. Treat it as immutable: construct it once and
// share it freely across goroutines.
type Syntax struct {
	// Open is the literal string that starts a placeholder, e.g. "${".
	Open string

	// Close is the literal string that ends a placeholder, e.g. "}".
	Close string

	// Names decides which runes may appear in a placeholder name.
	// If nil, Validate rejects the syntax.
	Names NameClass
}

// Built-in syntaxes.
var (
	// ClassicBrace is the {name} syntax with identifier names.
	ClassicBrace = Syntax{Open: "{", Close: "}", Names: IdentifierNames}

	// DollarBrace is the POSIX-shell-like ${name} syntax with identifier names.
	DollarBrace = Syntax{Open: "${", Close: "}", Names: IdentifierNames}

	// Permissive is the ${name} syntax accepting spaces and leading digits
	// in names.
	Permissive = Syntax{Open: "${", Close: "}", Names: PermissiveNames}
)

// Validate checks the syntax invariants: both delimiters are non-empty,
// the open delimiter is not a prefix of the close delimiter (which would
// make placeholder boundaries ambiguous), and a name class is set.
func (s Syntax) Validate() error {
	if s.Open == "" {
		return fmt.Errorf("%w: open delimiter is empty", ErrBadSyntax)
	}
	if s.Close == "" {
		return fmt.Errorf("%w: close delimiter is empty", ErrBadSyntax)
	}
	if strings.HasPrefix(s.Close, s.Open) {
		return fmt.Errorf("%w: open delimiter %q is a prefix of close delimiter %q", ErrBadSyntax, s.Open, s.Close)
	}
	if s.Names == nil {
		return fmt.Errorf("%w: no name class", ErrBadSyntax)
	}
	return nil
}

// validName reports whether name is non-empty and every rune is accepted
// by the name class.
func (s Syntax) validName(name string) bool {
	if name == "" {
		return false
	}
	i := 0
	for _, r := range name {
		if !s.Names(r, i) {
			return false
		}
		i++
	}
	return true
}

// placeholder renders name as a placeholder in this syntax, e.g. "${name}".
func (s Syntax) placeholder(name string) string {
	return s.Open + name + s.Close
}
