package vartmpl

// segment is one element of a compiled template: either literal text or a
// named placeholder.
type segment struct {
	// text is the literal text, or the placeholder name when placeholder
	// is true.
	text        string
	placeholder bool
}

// Template is the compiled form of a template string: an ordered sequence
// of segments alternating between literal text and named placeholders,
// always starting and ending with a literal (possibly empty at the
// edges, never empty in the interior).
//
// A Template is immutable after Compile returns it. It is safe to share
// one Template across any number of goroutines calling Format and
// Extract concurrently.
type Template struct {
	raw      string
	syntax   Syntax
	segments []segment
	names    []string
}

// Raw returns the template string the Template was compiled from.
func (t *Template) Raw() string {
	return t.raw
}

// String returns the raw template string.
func (t *Template) String() string {
	return t.raw
}

// Syntax returns the syntax the Template was compiled with.
func (t *Template) Syntax() Syntax {
	return t.syntax
}

// Names returns the distinct placeholder names in order of first
// appearance. The returned slice is a copy.
func (t *Template) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// NumPlaceholders returns the number of placeholder occurrences,
// counting duplicates separately.
func (t *Template) NumPlaceholders() int {
	return len(t.segments) / 2
}

// Format renders the template by substituting values for placeholders,
// with strict defaults: every placeholder must have a value, extra keys
// are ignored. Use an Engine for the non-strict variants.
func (t *Template) Format(values map[string]string) (string, error) {
	return formatTemplate(t, values, formatOptions{})
}

// Extract decomposes input against the template's literal structure and
// returns the substring captured by each placeholder. See the package
// documentation for the exact matching policy.
func (t *Template) Extract(input string) (map[string]string, error) {
	return extractTemplate(t, input, false)
}
