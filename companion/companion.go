package companion

import (
	"slices"

	"github.com/katalvlaran/allotment/catalog"
)

// Verdict is the compatibility of two vegetables.
type Verdict string

const (
	Good    Verdict = "good"
	Neutral Verdict = "neutral"
	Bad     Verdict = "bad"
)

// Check returns the symmetric compatibility of vegetables a and b.
// Avoid wins over companion when the two directions disagree.
// Complexity: O(1).
func Check(cat catalog.Lookup, a, b string) Verdict {
	if cat == nil {
		return Neutral
	}
	va, okA := cat.Get(a)
	vb, okB := cat.Get(b)
	if !okA || !okB {
		return Neutral
	}

	switch {
	case va.Avoids(b) || vb.Avoids(a):
		return Bad
	case va.IsCompanion(b) || vb.IsCompanion(a):
		return Good
	}
	return Neutral
}

// Suggested returns the companion list of id, or nil if id is unknown.
func Suggested(cat catalog.Lookup, id string) []string {
	if cat == nil {
		return nil
	}
	v, ok := cat.Get(id)
	if !ok {
		return nil
	}
	return slices.Clone(v.Companions)
}

// Avoided returns the avoid list of id, or nil if id is unknown.
func Avoided(cat catalog.Lookup, id string) []string {
	if cat == nil {
		return nil
	}
	v, ok := cat.Get(id)
	if !ok {
		return nil
	}
	return slices.Clone(v.Avoid)
}
