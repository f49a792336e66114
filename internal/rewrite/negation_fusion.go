package rewrite

import (
	"github.com/signadot/paradoxfmt/debug"
	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
)

func isNotOrNor(n *pir.Node) bool {
	return n.IsBlock() && (n.Key == "NOT" || n.Key == "NOR")
}

// mergeNor combines parts, in order, into one NOR block: a NOT/NOR part
// contributes its own children, any other part (an already-flipped
// comparison) is taken whole.
func mergeNor(parts ...*pir.Node) *pir.Node {
	var kids []*pir.Node
	for _, p := range parts {
		if isNotOrNor(p) {
			kids = append(kids, pir.CloneList(pir.LogicalChildren(p.Children))...)
		} else {
			kids = append(kids, p.Clone())
		}
	}
	return pir.NewBlock("NOR", pir.OpEq, true, kids)
}

// r1NegationAbsorption implements spec §4.4 R1: a linear scan fusing a
// (NOT/NOR) block adjacent to a negatable comparison -- on either side, or
// both -- into a single NOR.
func r1NegationAbsorption(children []*pir.Node, parentKey string, _ *config.Options) ([]*pir.Node, bool) {
	if IsNonNegatable(parentKey) {
		return children, false
	}
	changed := false
	out := make([]*pir.Node, 0, len(children))
	i := 0
	for i < len(children) {
		if i+2 < len(children) && isNotOrNor(children[i]) && negatableTarget(children[i+1]) && isNotOrNor(children[i+2]) {
			out = append(out, mergeNor(children[i], flipNegatable(children[i+1]), children[i+2]))
			debug.RewriteNotice("Fused NOT/NOR - comparison - NOT/NOR into NOR")
			i += 3
			changed = true
			continue
		}
		if i+1 < len(children) && isNotOrNor(children[i]) && negatableTarget(children[i+1]) {
			out = append(out, mergeNor(children[i], flipNegatable(children[i+1])))
			debug.RewriteNotice("Absorbed trailing comparison into NOR")
			i += 2
			changed = true
			continue
		}
		if i+1 < len(children) && negatableTarget(children[i]) && isNotOrNor(children[i+1]) {
			out = append(out, mergeNor(flipNegatable(children[i]), children[i+1]))
			debug.RewriteNotice("Absorbed leading comparison into NOR")
			i += 2
			changed = true
			continue
		}
		out = append(out, children[i])
		i++
	}
	return out, changed
}

// isR5Candidate reports whether n participates in R5's negation-sequence
// run: NOT/NOR/NAND blocks, "key = no" leaves, negatable comparisons, and
// single-child scope wrappers (not a scope gate, not non-negatable) around
// any of those, recursively.
func isR5Candidate(n *pir.Node) bool {
	if n.IsBlock() && (n.Key == "NOT" || n.Key == "NOR" || n.Key == "NAND") {
		return true
	}
	if pir.IsNoLeaf(n) {
		return true
	}
	if isNegatableLeaf(n) {
		return true
	}
	if n.IsBlock() && !isScopeGateKey(n.Key) && !IsNonNegatable(n.Key) {
		if sc := pir.SingleChild(n); sc != nil {
			return isR5Candidate(sc)
		}
	}
	return false
}

// positiveForm returns the positive-form replacement for one R5-merged
// item.
func positiveForm(n *pir.Node) []*pir.Node {
	switch {
	case n.IsBlock() && n.Key == "NOT":
		return pir.CloneList(pir.LogicalChildren(n.Children))
	case n.IsBlock() && n.Key == "NOR":
		xs := pir.LogicalChildren(n.Children)
		if len(xs) > 1 {
			return []*pir.Node{pir.NewBlock("OR", pir.OpEq, true, pir.CloneList(xs))}
		}
		return pir.CloneList(xs)
	case n.IsBlock() && n.Key == "NAND":
		return []*pir.Node{pir.NewBlock("AND", pir.OpEq, true, pir.CloneList(pir.LogicalChildren(n.Children)))}
	case pir.IsNoLeaf(n):
		return []*pir.Node{pir.FlipYesNoLeaf(n)}
	case isNegatableLeaf(n):
		return []*pir.Node{flipNegatable(n)}
	case n.IsBlock():
		if sc := pir.SingleChild(n); sc != nil {
			inner := positiveForm(sc)
			cp := n.Clone()
			if len(inner) == 1 {
				cp.Children = []*pir.Node{inner[0]}
			} else {
				cp.Children = []*pir.Node{pir.NewBlock("AND", pir.OpEq, true, inner)}
			}
			return []*pir.Node{cp}
		}
	}
	return []*pir.Node{n.Clone()}
}

// r5NegationSequenceFusion implements spec §4.4 R5.
func r5NegationSequenceFusion(children []*pir.Node, parentKey string, _ *config.Options) ([]*pir.Node, bool) {
	if IsNonNegatable(parentKey) {
		return children, false
	}
	changed := false
	var out []*pir.Node
	i := 0
	for i < len(children) {
		if !isR5Candidate(children[i]) {
			out = append(out, children[i])
			i++
			continue
		}
		j := i
		var items, comments []*pir.Node
		for j < len(children) && (children[j].Kind == pir.Comment || isR5Candidate(children[j])) {
			if children[j].Kind == pir.Comment {
				comments = append(comments, children[j])
			} else {
				items = append(items, children[j])
			}
			j++
		}
		if len(items) < 2 {
			out = append(out, children[i])
			i++
			continue
		}
		mergedKey := "NOR"
		if parentKey == "OR" || parentKey == "NOR" || parentKey == "NOT" {
			mergedKey = "NAND"
		}
		var kids []*pir.Node
		for _, it := range items {
			kids = append(kids, positiveForm(it)...)
		}
		out = append(out, comments...)
		out = append(out, pir.NewBlock(mergedKey, pir.OpEq, true, kids))
		debug.RewriteNotice("Merged negation sequence into %s", mergedKey)
		changed = true
		i = j
	}
	return out, changed
}
