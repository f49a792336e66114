// Package equiv provides a test-only semantic-equivalence check for two
// pir.Node forests, used to assert the rewriter's R1-R16 transformations
// preserve meaning (spec §8 "Semantic equivalence"). It compiles the
// propositional reading of each forest to CNF via a Tseitin encoding and
// asks github.com/go-air/gini whether the two readings can ever disagree.
//
// This checks ordinary two-valued equivalence over the atomic leaves named
// in both trees; it does not model the three-valued truth assignment spec
// §8 describes for unevaluated leaves, which would need a multi-valued
// extension of the encoding below.
package equiv

import (
	"fmt"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/signadot/paradoxfmt/internal/pir"
)

// Equivalent reports whether a and b have the same propositional reading:
// AND/OR/NOT/NOR/NAND as standard Boolean connectives, any_X/count_X as
// opaque atoms keyed by their full text (so two any_X blocks are the same
// atom only when structurally equal), and a leaf "key OP value" as an
// atomic proposition.
func Equivalent(a, b []*pir.Node) (bool, error) {
	g := gini.New()
	atoms := map[string]z.Lit{}

	la := encodeList(g, atoms, a)
	lb := encodeList(g, atoms, b)

	// Assert la XOR lb and check unsatisfiability: if no assignment makes
	// them disagree, they're equivalent.
	x := g.NewVar().Pos()
	addXor(g, x, la, lb)
	g.Assume(x)
	switch g.Solve() {
	case 1:
		return false, nil
	case -1:
		return true, nil
	default:
		return false, fmt.Errorf("equiv: solver returned no result")
	}
}

func addXor(g *gini.Gini, x, a, b z.Lit) {
	// x <-> (a XOR b), via four clauses (equivalence of x with XOR).
	g.Add(x.Not(), a, b, 0)
	g.Add(x.Not(), a.Not(), b.Not(), 0)
	g.Add(x, a.Not(), b, 0)
	g.Add(x, a, b.Not(), 0)
}

func encodeList(g *gini.Gini, atoms map[string]z.Lit, nodes []*pir.Node) z.Lit {
	lits := []z.Lit{}
	for _, n := range pir.LogicalChildren(nodes) {
		lits = append(lits, encode(g, atoms, n))
	}
	return andAll(g, lits)
}

func encode(g *gini.Gini, atoms map[string]z.Lit, n *pir.Node) z.Lit {
	switch {
	case n.IsBlock() && n.Key == "AND":
		return encodeList(g, atoms, n.Children)
	case n.IsBlock() && n.Key == "OR":
		return orAll(g, childLits(g, atoms, n))
	case n.IsBlock() && n.Key == "NOT":
		return orAll(g, childLits(g, atoms, n)).Not()
	case n.IsBlock() && n.Key == "NOR":
		return orAll(g, childLits(g, atoms, n)).Not()
	case n.IsBlock() && n.Key == "NAND":
		return andAll(g, childLits(g, atoms, n)).Not()
	case pir.IsYesLeaf(n):
		return atomLit(g, atoms, "bool:"+n.Key)
	case pir.IsNoLeaf(n):
		return atomLit(g, atoms, "bool:"+n.Key).Not()
	case n.IsLeaf():
		return comparisonLit(g, atoms, n)
	default:
		return atomLit(g, atoms, atomKey(n))
	}
}

// positiveComparisonOps names one operator from each of the three flip
// pairs (= / !=, < / >=, > / <=) as that pair's canonical positive form, so
// "x > 3" and "x <= 3" -- logical negations of each other -- encode to the
// same propositional variable rather than two unrelated opaque atoms.
var positiveComparisonOps = map[pir.Op]bool{pir.OpEq: true, pir.OpLt: true, pir.OpGt: true}

func comparisonLit(g *gini.Gini, atoms map[string]z.Lit, n *pir.Node) z.Lit {
	if positiveComparisonOps[n.Op] {
		return atomLit(g, atoms, fmt.Sprintf("cmp:%s%s%s", n.Key, n.Op, n.Leaf))
	}
	flipped := n.Op.Flip()
	return atomLit(g, atoms, fmt.Sprintf("cmp:%s%s%s", n.Key, flipped, n.Leaf)).Not()
}

func childLits(g *gini.Gini, atoms map[string]z.Lit, n *pir.Node) []z.Lit {
	var out []z.Lit
	for _, c := range pir.LogicalChildren(n.Children) {
		out = append(out, encode(g, atoms, c))
	}
	return out
}

// atomKey gives two structurally-equal leaves/any_X/count_X subtrees the
// same propositional identity, and distinct ones distinct identities.
func atomKey(n *pir.Node) string {
	var b strings.Builder
	writeStructKey(&b, n)
	return b.String()
}

func writeStructKey(b *strings.Builder, n *pir.Node) {
	switch n.ValueKind {
	case pir.ValueNone:
		fmt.Fprintf(b, "%s", n.Key)
	case pir.ValueLeaf:
		fmt.Fprintf(b, "%s%s%s", n.Key, n.Op, n.Leaf)
	case pir.ValueBlock:
		fmt.Fprintf(b, "%s%s%s{", n.Key, n.Op, n.ValKey)
		for _, c := range pir.LogicalChildren(n.Children) {
			writeStructKey(b, c)
			b.WriteByte(';')
		}
		b.WriteByte('}')
	}
}

func atomLit(g *gini.Gini, atoms map[string]z.Lit, key string) z.Lit {
	if l, ok := atoms[key]; ok {
		return l
	}
	l := g.NewVar().Pos()
	atoms[key] = l
	return l
}

func andAll(g *gini.Gini, lits []z.Lit) z.Lit {
	if len(lits) == 0 {
		x := g.NewVar().Pos()
		g.Add(x, 0) // an empty AND is vacuously true
		return x
	}
	acc := lits[0]
	for _, l := range lits[1:] {
		acc = andTwo(g, acc, l)
	}
	return acc
}

func orAll(g *gini.Gini, lits []z.Lit) z.Lit {
	if len(lits) == 0 {
		x := g.NewVar().Pos()
		g.Add(x.Not(), 0) // an empty OR is false
		return x
	}
	acc := lits[0]
	for _, l := range lits[1:] {
		acc = orTwo(g, acc, l)
	}
	return acc
}

func andTwo(g *gini.Gini, a, b z.Lit) z.Lit {
	x := g.NewVar().Pos()
	g.Add(x.Not(), a, 0)
	g.Add(x.Not(), b, 0)
	g.Add(x, a.Not(), b.Not(), 0)
	return x
}

func orTwo(g *gini.Gini, a, b z.Lit) z.Lit {
	x := g.NewVar().Pos()
	g.Add(x, a.Not(), 0)
	g.Add(x, b.Not(), 0)
	g.Add(x.Not(), a, b, 0)
	return x
}
