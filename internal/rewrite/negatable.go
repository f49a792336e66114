package rewrite

import (
	"regexp"
	"strings"

	"github.com/signadot/paradoxfmt/internal/pir"
)

var decimalRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// isNegatableLeaf implements spec §4.4 R1's definition: a leaf whose value
// is a decimal number, and either its operator is one of the five
// inequality/not-equal comparisons, or it's an "=" comparison whose key
// begins with has_ or num_.
func isNegatableLeaf(n *pir.Node) bool {
	if !n.IsLeaf() || !decimalRe.MatchString(n.Leaf) {
		return false
	}
	switch n.Op {
	case pir.OpLt, pir.OpLe, pir.OpGt, pir.OpGe, pir.OpNe:
		return true
	case pir.OpEq:
		return strings.HasPrefix(n.Key, "has_") || strings.HasPrefix(n.Key, "num_")
	default:
		return false
	}
}

// isScopeGateKey reports whether key is a scope-gate prefix (any_/count_)
// that R1's recursive wrapper-traversal must not see through.
func isScopeGateKey(key string) bool {
	return strings.HasPrefix(key, "any_") || strings.HasPrefix(key, "count_")
}

// negatableTarget finds the leaf reachable from n through single-child
// wrapper blocks (not scope gates, not non-negatable), per R1's "Recursive
// through single-child wrapper blocks..." clause, reporting whether one
// was found.
func negatableTarget(n *pir.Node) bool {
	if n.IsLeaf() {
		return isNegatableLeaf(n)
	}
	if !n.IsBlock() {
		return false
	}
	if isScopeGateKey(n.Key) || IsNonNegatable(n.Key) {
		return false
	}
	sc := pir.SingleChild(n)
	if sc == nil {
		return false
	}
	return negatableTarget(sc)
}

// flipNegatable returns a deep copy of n with its reachable negatable leaf's
// operator flipped in place. Callers must have verified negatableTarget(n).
func flipNegatable(n *pir.Node) *pir.Node {
	cp := n.Clone()
	flipInPlace(cp)
	return cp
}

func flipInPlace(n *pir.Node) {
	if n.IsLeaf() {
		n.Op = n.Op.Flip()
		return
	}
	for _, c := range n.Children {
		if c.Kind != pir.Comment {
			flipInPlace(c)
			return
		}
	}
}
