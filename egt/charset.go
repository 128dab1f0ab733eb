package egt

import (
	"fmt"
	"strings"
)

// CharRange is an inclusive range of Unicode code points.
type CharRange struct {
	Lo rune
	Hi rune
}

// Contains reports whether r lies inside the range.
func (cr CharRange) Contains(r rune) bool {
	return r >= cr.Lo && r <= cr.Hi
}

func (cr CharRange) String() string {
	if cr.Lo == cr.Hi {
		return fmt.Sprintf("%q", cr.Lo)
	}
	return fmt.Sprintf("%q-%q", cr.Lo, cr.Hi)
}

// CharacterSet is an ordered list of inclusive code-point ranges. Sets are
// immutable after load; the membership test is linear in the number of
// ranges, which is small for every grammar seen in the wild.
type CharacterSet struct {
	Index  int
	Plane  int // Unicode plane the 16-bit range units live in
	Ranges []CharRange
}

// Contains reports whether code point r is a member of the set.
func (cs *CharacterSet) Contains(r rune) bool {
	for _, rng := range cs.Ranges {
		if rng.Contains(r) {
			return true
		}
	}
	return false
}

func (cs *CharacterSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "charset %d [", cs.Index)
	for i, rng := range cs.Ranges {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(rng.String())
	}
	b.WriteString("]")
	return b.String()
}
