package service

import "strings"

// Canonicalizer maps a caller-spelled cell id to the key the engine and the
// subscription store index by. The teacher's version also escaped operator
// characters out of the key, because its keys were interpolated directly
// into expr source; here cell ids are never interpolated into expr source,
// so canonicalization shrinks to upper-casing. It does no validation:
// SheetService checks the upper-cased id with PositionFromA1 afterwards.
type Canonicalizer struct{}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{}
}

func (c *Canonicalizer) Canonicalize(cellID string) string {
	return strings.ToUpper(cellID)
}
