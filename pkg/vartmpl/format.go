package vartmpl

import (
	"sort"
	"strings"
)

// formatOptions controls non-strict formatting behavior. The zero value
// is the strict default: missing values fail, extra keys are ignored, no
// ambiguity checking.
type formatOptions struct {
	// keepMissing renders placeholders with no value back in the
	// template's syntax instead of failing.
	keepMissing bool

	// unusedCheck fails when values contains keys no placeholder
	// references.
	unusedCheck bool

	// ambiguityCheck fails when a substituted value contains the literal
	// separating it from a neighboring placeholder, meaning Extract could
	// not uniquely recover the values.
	ambiguityCheck bool
}

// formatTemplate concatenates literal segments and substituted values in
// segment order. It is pure: no side effects, the output is built fresh
// per call.
func formatTemplate(t *Template, values map[string]string, opts formatOptions) (string, error) {
	var b strings.Builder
	b.Grow(len(t.raw))

	// State for the pairwise ambiguity check: the previous placeholder
	// and the literal separating it from the current one.
	var prevName, prevValue string
	prevKnown := false

	for i, seg := range t.segments {
		if !seg.placeholder {
			b.WriteString(seg.text)
			continue
		}

		value, ok := values[seg.text]
		if !ok {
			if !opts.keepMissing {
				return "", &MissingValueError{Name: seg.text}
			}
			b.WriteString(t.syntax.placeholder(seg.text))
			prevKnown = false
			continue
		}
		b.WriteString(value)

		if opts.ambiguityCheck && prevKnown {
			sep := t.segments[i-1].text
			if err := checkPair(prevName, prevValue, seg.text, value, sep); err != nil {
				return "", err
			}
		}
		prevName, prevValue = seg.text, value
		prevKnown = true
	}

	if opts.unusedCheck {
		if unused := unusedKeys(t, values); len(unused) > 0 {
			return "", &UnusedValuesError{Names: unused}
		}
	}

	return b.String(), nil
}

// unusedKeys returns the sorted keys of values that name no placeholder.
func unusedKeys(t *Template, values map[string]string) []string {
	referenced := make(map[string]bool, len(t.names))
	for _, name := range t.names {
		referenced[name] = true
	}

	var unused []string
	for k := range values {
		if !referenced[k] {
			unused = append(unused, k)
		}
	}
	sort.Strings(unused)
	return unused
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
