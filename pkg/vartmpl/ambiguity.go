package vartmpl

import "strings"

// checkPair tests one pair of neighboring placeholders for ambiguity.
// lhs and rhs are separated by the literal sep in the template. If either
// value contains sep, a different split of the same output string exists
// and the pair is ambiguous; the returned error lists both decompositions.
func checkPair(lhsName, lhsValue, rhsName, rhsValue, sep string) error {
	if i := strings.Index(rhsValue, sep); i >= 0 {
		return &AmbiguityError{Possibilities: []map[string]string{
			{lhsName: lhsValue, rhsName: rhsValue},
			{
				lhsName: lhsValue + sep + rhsValue[:i],
				rhsName: rhsValue[i+len(sep):],
			},
		}}
	}

	if i := strings.Index(lhsValue, sep); i >= 0 {
		return &AmbiguityError{Possibilities: []map[string]string{
			{lhsName: lhsValue, rhsName: rhsValue},
			{
				lhsName: lhsValue[:i],
				rhsName: lhsValue[i+len(sep):] + sep + rhsValue,
			},
		}}
	}

	return nil
}

// checkTemplatePairs runs checkPair over every consecutive placeholder
// pair in the template using the given values.
func checkTemplatePairs(t *Template, values map[string]string) error {
	segs := t.segments
	for i := 1; i+2 < len(segs); i += 2 {
		lhs := segs[i].text
		sep := segs[i+1].text
		rhs := segs[i+2].text
		if err := checkPair(lhs, values[lhs], rhs, values[rhs], sep); err != nil {
			return err
		}
	}
	return nil
}
