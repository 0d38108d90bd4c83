package vartmpl

import (
	"fmt"
	"strings"
)

// extractTemplate decomposes input against the template's anchors.
//
// The policy is deterministic, with no backtracking:
//
//  1. The leading literal must match input as an exact prefix.
//  2. Each placeholder takes the shortest non-empty span such that the
//     next literal matches immediately after it: the leftmost occurrence
//     of that literal strictly after the cursor.
//  3. A trailing placeholder (empty trailing literal) consumes the
//     remainder of the input, which must be non-empty.
//  4. After the last segment the whole input must be consumed.
//  5. A name appearing twice must capture identical spans.
//
// Any violation fails with a *NoMatchError.
func extractTemplate(t *Template, input string, ambiguityCheck bool) (map[string]string, error) {
	segs := t.segments

	lead := segs[0].text
	if !strings.HasPrefix(input, lead) {
		return nil, &NoMatchError{Pos: 0, Reason: fmt.Sprintf("input does not start with %q", lead)}
	}
	cursor := len(lead)

	out := make(map[string]string, len(t.names))
	for i := 1; i < len(segs); i += 2 {
		name := segs[i].text
		next := segs[i+1].text

		var value string
		if i+1 == len(segs)-1 && next == "" {
			// Trailing placeholder takes the rest of the input.
			value = input[cursor:]
			if value == "" {
				return nil, &NoMatchError{
					Pos:    cursor,
					Reason: fmt.Sprintf("empty span for placeholder %q at end of input", name),
				}
			}
			cursor = len(input)
		} else {
			if cursor >= len(input) {
				return nil, &NoMatchError{
					Pos:    cursor,
					Reason: fmt.Sprintf("input exhausted before placeholder %q", name),
				}
			}
			// Leftmost occurrence strictly after the cursor, so the span
			// has at least one character.
			idx := strings.Index(input[cursor+1:], next)
			if idx < 0 {
				return nil, &NoMatchError{
					Pos:    cursor,
					Reason: fmt.Sprintf("literal %q not found after placeholder %q", next, name),
				}
			}
			end := cursor + 1 + idx
			value = input[cursor:end]
			cursor = end + len(next)
		}

		if prev, dup := out[name]; dup && prev != value {
			return nil, &NoMatchError{
				Pos:    cursor,
				Reason: fmt.Sprintf("placeholder %q captured %q and %q", name, prev, value),
			}
		}
		out[name] = value
	}

	if cursor != len(input) {
		return nil, &NoMatchError{
			Pos:    cursor,
			Reason: fmt.Sprintf("%d trailing characters", len(input)-cursor),
		}
	}

	if ambiguityCheck {
		if err := checkTemplatePairs(t, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}
