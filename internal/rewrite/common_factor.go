package rewrite

import (
	"github.com/signadot/paradoxfmt/debug"
	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
)

func containsEqual(list []*pir.Node, target *pir.Node) bool {
	for _, c := range list {
		if pir.Equal(c, target) {
			return true
		}
	}
	return false
}

func removeFirstEqual(list []*pir.Node, target *pir.Node) []*pir.Node {
	out := make([]*pir.Node, 0, len(list))
	removed := false
	for _, c := range list {
		if !removed && pir.Equal(c, target) {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}

// r11NorCommonFactor implements spec §4.4 R11. It scans for a sibling NOR
// block every one of whose children is an AND sharing a common factor A,
// and replaces that sibling with OR {¬A, NOR {reduced ANDs...}}.
func r11NorCommonFactor(children []*pir.Node, _ string, _ *config.Options) ([]*pir.Node, bool) {
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if n.IsBlock() && n.Key == "NOR" {
			if rep, ok := norCommonFactor(n); ok {
				out = append(out, rep)
				changed = true
				continue
			}
		}
		out = append(out, n)
	}
	return out, changed
}

func norCommonFactor(n *pir.Node) (*pir.Node, bool) {
	lc := pir.LogicalChildren(n.Children)
	if len(lc) < 2 {
		return nil, false
	}
	for _, c := range lc {
		if !(c.IsBlock() && c.Key == "AND") {
			return nil, false
		}
	}
	first := pir.LogicalChildren(lc[0].Children)
	for _, candidate := range first {
		inAll := true
		for _, other := range lc[1:] {
			if !containsEqual(pir.LogicalChildren(other.Children), candidate) {
				inAll = false
				break
			}
		}
		if !inAll {
			continue
		}
		var reducedAnds []*pir.Node
		for _, c := range lc {
			rest := removeFirstEqual(pir.LogicalChildren(c.Children), candidate)
			reducedAnds = append(reducedAnds, pir.NewBlock("AND", pir.OpEq, true, rest))
		}
		norRest := pir.NewBlock("NOR", pir.OpEq, true, reducedAnds)
		debug.RewriteNotice("Factored common condition out of NOR")
		return pir.NewBlock("OR", pir.OpEq, true, []*pir.Node{negate(candidate), norRest}), true
	}
	return nil, false
}

// r15OrAndCommonFactor implements spec §4.4 R15: the OR/AND mirror of R11.
// Common factors become siblings of the reduced OR, not a negated gate.
func r15OrAndCommonFactor(children []*pir.Node, _ string, _ *config.Options) ([]*pir.Node, bool) {
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if n.IsBlock() && n.Key == "OR" {
			if factors, reducedOr, ok := orAndCommonFactor(n); ok {
				out = append(out, factors...)
				out = append(out, reducedOr)
				debug.RewriteNotice("Factored common conditions out of OR")
				changed = true
				continue
			}
		}
		out = append(out, n)
	}
	return out, changed
}

func orAndCommonFactor(n *pir.Node) ([]*pir.Node, *pir.Node, bool) {
	lc := pir.LogicalChildren(n.Children)
	if len(lc) < 2 {
		return nil, nil, false
	}
	for _, c := range lc {
		if !(c.IsBlock() && c.Key == "AND") {
			return nil, nil, false
		}
	}
	reduced := make([][]*pir.Node, len(lc))
	for i, c := range lc {
		reduced[i] = pir.LogicalChildren(c.Children)
	}
	var factors []*pir.Node
	for _, candidate := range reduced[0] {
		inAll := true
		for i := 1; i < len(reduced); i++ {
			if !containsEqual(reduced[i], candidate) {
				inAll = false
				break
			}
		}
		if !inAll {
			continue
		}
		factors = append(factors, candidate.Clone())
		for i := range reduced {
			reduced[i] = removeFirstEqual(reduced[i], candidate)
		}
	}
	if len(factors) == 0 {
		return nil, nil, false
	}
	var andChildren []*pir.Node
	for _, r := range reduced {
		andChildren = append(andChildren, pir.NewBlock("AND", pir.OpEq, true, r))
	}
	return factors, pir.NewBlock("OR", pir.OpEq, true, andChildren), true
}

// r14OrAndNotB implements spec §4.4 R14, repeated to a local fixpoint.
func r14OrAndNotB(children []*pir.Node, parentKey string, _ *config.Options) ([]*pir.Node, bool) {
	if parentKey != "OR" {
		return children, false
	}
	changed := false
	cur := children
	for {
		next, ch := r14Pass(cur)
		if !ch {
			break
		}
		cur = next
		changed = true
	}
	return cur, changed
}

func r14Pass(children []*pir.Node) ([]*pir.Node, bool) {
	for i, andChild := range children {
		if !(andChild.IsBlock() && andChild.Key == "AND") {
			continue
		}
		andKids := pir.LogicalChildren(andChild.Children)
		for _, b := range andKids {
			negB := negate(b)
			for j, other := range children {
				if j == i || !pir.Equal(other, negB) {
					continue
				}
				reducedKids := removeFirstEqual(andKids, b)
				var reducedAnd *pir.Node
				if len(reducedKids) == 1 {
					reducedAnd = reducedKids[0]
				} else {
					reducedAnd = pir.NewBlock("AND", pir.OpEq, true, reducedKids)
				}
				out := make([]*pir.Node, 0, len(children))
				out = append(out, other.Clone())
				for k, c := range children {
					if k == i || k == j {
						continue
					}
					out = append(out, c)
				}
				out = append(out, reducedAnd)
				debug.RewriteNotice("Reduced OR(A AND B) OR(not B) to (not B) OR A")
				return out, true
			}
		}
	}
	return children, false
}

// r16NandAbsorption implements spec §4.4 R16: a sibling OR block with
// exactly one NAND child and every other child NOT {xs} or key = no
// absorbs into that NAND, promoting the OR.
func r16NandAbsorption(children []*pir.Node, _ string, _ *config.Options) ([]*pir.Node, bool) {
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if n.IsBlock() && n.Key == "OR" {
			if rep, ok := nandAbsorb(n); ok {
				out = append(out, rep)
				debug.RewriteNotice("Promoted OR to NAND via absorption")
				changed = true
				continue
			}
		}
		out = append(out, n)
	}
	return out, changed
}

func nandAbsorb(n *pir.Node) (*pir.Node, bool) {
	lc := pir.LogicalChildren(n.Children)
	nandIdx := -1
	for i, c := range lc {
		if c.IsBlock() && c.Key == "NAND" {
			if nandIdx >= 0 {
				return nil, false
			}
			nandIdx = i
		}
	}
	if nandIdx < 0 {
		return nil, false
	}
	for i, c := range lc {
		if i == nandIdx {
			continue
		}
		if !(c.IsBlock() && c.Key == "NOT") && !pir.IsNoLeaf(c) {
			return nil, false
		}
	}
	kids := append([]*pir.Node{}, lc[nandIdx].Children...)
	for i, c := range lc {
		if i == nandIdx {
			continue
		}
		kids = append(kids, innerOf(c)...)
	}
	return pir.NewBlock("NAND", pir.OpEq, true, kids), true
}
