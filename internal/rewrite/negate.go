package rewrite

import "github.com/signadot/paradoxfmt/internal/pir"

// negate returns the negated form of n, used by R11/R14/R15/R16 when common-
// factoring needs to produce ¬A for some already-positive A. It mirrors
// R5's positive-form mapping in reverse.
func negate(n *pir.Node) *pir.Node {
	switch {
	case isNegatableLeaf(n):
		return flipNegatable(n)
	case pir.IsYesLeaf(n), pir.IsNoLeaf(n):
		return pir.FlipYesNoLeaf(n)
	case n.IsBlock() && n.Key == "AND":
		return pir.NewBlock("NAND", pir.OpEq, true, pir.CloneList(n.Children))
	case n.IsBlock() && n.Key == "OR":
		return pir.NewBlock("NOR", pir.OpEq, true, pir.CloneList(n.Children))
	case n.IsBlock() && n.Key == "NOT":
		return pir.NewBlock("AND", pir.OpEq, true, pir.CloneList(n.Children))
	case n.IsBlock() && n.Key == "NOR":
		return pir.NewBlock("OR", pir.OpEq, true, pir.CloneList(n.Children))
	case n.IsBlock() && n.Key == "NAND":
		return pir.NewBlock("AND", pir.OpEq, true, pir.CloneList(n.Children))
	default:
		return pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{n.Clone()})
	}
}
