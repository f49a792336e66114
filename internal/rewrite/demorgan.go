package rewrite

import (
	"strings"

	"github.com/signadot/paradoxfmt/debug"
	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
	"github.com/signadot/paradoxfmt/internal/triggers"
)

// isStructuralNegation reports whether n is NOT{xs}, a negatable
// comparison, or a leaf "key = no" -- the broad negation set R9 allows once
// at least one member of an OR is a plain NOT.
func isStructuralNegation(n *pir.Node) bool {
	if n.IsBlock() && n.Key == "NOT" {
		return true
	}
	if pir.IsNoLeaf(n) {
		return true
	}
	return isNegatableLeaf(n)
}

func innerOf(n *pir.Node) []*pir.Node {
	switch {
	case n.IsBlock() && n.Key == "NOT":
		return pir.CloneList(pir.LogicalChildren(n.Children))
	case pir.IsNoLeaf(n):
		return []*pir.Node{pir.FlipYesNoLeaf(n)}
	case isNegatableLeaf(n):
		return []*pir.Node{flipNegatable(n)}
	default:
		return []*pir.Node{n.Clone()}
	}
}

// r9DeMorganCollapse implements spec §4.4 R9.
func r9DeMorganCollapse(children []*pir.Node, parentKey string, _ *config.Options) ([]*pir.Node, bool) {
	if parentKey != "AND" && parentKey != "OR" {
		return children, false
	}
	lc := pir.LogicalChildren(children)
	if len(lc) == 0 {
		return children, false
	}
	if parentKey == "AND" {
		for _, c := range lc {
			if !(c.IsBlock() && c.Key == "NOT") && !pir.IsNoLeaf(c) {
				return children, false
			}
		}
		var kids []*pir.Node
		for _, c := range lc {
			kids = append(kids, innerOf(c)...)
		}
		debug.RewriteNotice("Created NOR from NOT-AND")
		return []*pir.Node{pir.NewBlock("NOR", pir.OpEq, true, kids)}, true
	}
	allNot := true
	anyNegation := false
	for _, c := range lc {
		if !(c.IsBlock() && c.Key == "NOT") {
			allNot = false
		}
		if isStructuralNegation(c) {
			anyNegation = true
		}
	}
	if !allNot && !anyNegation {
		return children, false
	}
	if !allNot {
		hasNot := false
		for _, c := range lc {
			if !isStructuralNegation(c) {
				return children, false
			}
			if c.IsBlock() && c.Key == "NOT" {
				hasNot = true
			}
		}
		if !hasNot {
			return children, false
		}
	}
	var kids []*pir.Node
	for _, c := range lc {
		kids = append(kids, innerOf(c)...)
	}
	debug.RewriteNotice("Created NAND from NOT-OR")
	return []*pir.Node{pir.NewBlock("NAND", pir.OpEq, true, kids)}, true
}

// r12DoubleNegation implements spec §4.4 R12: NOT with a single child C.
func r12DoubleNegation(children []*pir.Node, parentKey string, opts *config.Options) ([]*pir.Node, bool) {
	if IsNonNegatable(parentKey) {
		return children, false
	}
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if n.IsBlock() && n.Key == "NOT" {
			if sc := pir.SingleChild(n); sc != nil {
				if rep, ok := r12Reduce(sc, opts); ok {
					out = append(out, rep)
					changed = true
					continue
				}
			}
		}
		out = append(out, n)
	}
	return out, changed
}

func r12Reduce(c *pir.Node, opts *config.Options) (*pir.Node, bool) {
	switch {
	case isNegatableLeaf(c):
		flipped := flipNegatable(c)
		debug.RewriteNotice("Simplified double negation on comparison")
		return flipped, true
	case c.IsBlock() && c.Key == "AND":
		debug.RewriteNotice("Simplified NOT-AND to NAND")
		return pir.NewBlock("NAND", pir.OpEq, true, pir.CloneList(c.Children)), true
	case c.IsBlock() && c.Key == "OR":
		debug.RewriteNotice("Simplified NOT-OR to NOR")
		return pir.NewBlock("NOR", pir.OpEq, true, pir.CloneList(c.Children)), true
	case c.IsBlock() && c.Key == "NOT":
		debug.RewriteNotice("Simplified double negation")
		return pir.NewBlock("AND", pir.OpEq, true, pir.CloneList(c.Children)), true
	case pir.IsYesLeaf(c):
		return pir.FlipYesNoLeaf(c), true
	case pir.IsNoLeaf(c):
		return pir.FlipYesNoLeaf(c), true
	case c.IsBlock() && !isScopeGateKey(c.Key) && !IsNonNegatable(c.Key):
		if sc := pir.SingleChild(c); sc != nil && (pir.IsYesLeaf(sc) || pir.IsNoLeaf(sc)) {
			cp := c.Clone()
			cp.Children = []*pir.Node{pir.FlipYesNoLeaf(sc)}
			return cp, true
		}
	}
	if opts.UseCountTriggers && strings.HasPrefix(c.Key, "any_") && c.Key != triggers.AnyOwnedPopAmountException {
		limit := pir.NewBlock("limit", pir.OpEq, true, pir.CloneList(c.Children))
		count := pir.NewLeaf("count", pir.OpEq, "0")
		return pir.NewBlock("count_"+strings.TrimPrefix(c.Key, "any_"), pir.OpEq, true, []*pir.Node{count, limit}), true
	}
	return nil, false
}
