// Package selector implements the selector algebra behind extension:
// unification, superselector testing, combinator aware weaving and
// trimming of selector lists.
package selector

// Combinator relates a compound selector to the compound before it in a
// complex selector chain. The first compound of a chain is always Descendant.
// ENUM(descendant, child, adjacent, following)
type Combinator int

// Token returns the CSS source form of the combinator. Descendant has no
// textual form of its own.
func (x Combinator) Token() string {
	switch x {
	case CombinatorChild:
		return ">"
	case CombinatorAdjacent:
		return "+"
	case CombinatorFollowing:
		return "~"
	}
	return ""
}
