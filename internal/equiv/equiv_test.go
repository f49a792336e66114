package equiv

import (
	"testing"

	"github.com/signadot/paradoxfmt/internal/pir"
)

func TestEquivalentIdenticalForests(t *testing.T) {
	a := []*pir.Node{pir.NewLeaf("x", pir.OpEq, "yes")}
	b := []*pir.Node{pir.NewLeaf("x", pir.OpEq, "yes")}
	eq, err := Equivalent(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("identical forests should be equivalent")
	}
}

func TestEquivalentDeMorganAndNotToNor(t *testing.T) {
	// AND{NOT{a}, b=no} is the De Morgan reading of NOR{a, b=yes} (R9).
	a := []*pir.Node{
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{
			pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{pir.NewLeaf("a", pir.OpEq, "yes")}),
			pir.NewLeaf("b", pir.OpEq, "no"),
		}),
	}
	b := []*pir.Node{
		pir.NewBlock("NOR", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("a", pir.OpEq, "yes"),
			pir.NewLeaf("b", pir.OpEq, "yes"),
		}),
	}
	eq, err := Equivalent(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("AND(NOT a, b=no) should be equivalent to NOR(a, b=yes)")
	}
}

func TestEquivalentDoubleNegation(t *testing.T) {
	a := []*pir.Node{
		pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{
			pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{pir.NewLeaf("x", pir.OpEq, "yes")}),
		}),
	}
	b := []*pir.Node{pir.NewLeaf("x", pir.OpEq, "yes")}
	eq, err := Equivalent(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("double negation should be equivalent to the bare leaf")
	}
}

func TestEquivalentDetectsDisagreement(t *testing.T) {
	a := []*pir.Node{pir.NewLeaf("x", pir.OpEq, "yes")}
	b := []*pir.Node{pir.NewLeaf("y", pir.OpEq, "yes")}
	eq, err := Equivalent(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Error("forests over distinct atoms should not be reported equivalent")
	}
}

func TestEquivalentCommonFactorExtraction(t *testing.T) {
	// OR(AND(a,b), AND(a,c)) is equivalent to AND(a, OR(b,c)) -- the
	// semantic justification behind R15's common-factor extraction.
	a := []*pir.Node{
		pir.NewBlock("OR", pir.OpEq, true, []*pir.Node{
			pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{
				pir.NewLeaf("a", pir.OpEq, "yes"),
				pir.NewLeaf("b", pir.OpEq, "yes"),
			}),
			pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{
				pir.NewLeaf("a", pir.OpEq, "yes"),
				pir.NewLeaf("c", pir.OpEq, "yes"),
			}),
		}),
	}
	b := []*pir.Node{
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("a", pir.OpEq, "yes"),
			pir.NewBlock("OR", pir.OpEq, true, []*pir.Node{
				pir.NewLeaf("b", pir.OpEq, "yes"),
				pir.NewLeaf("c", pir.OpEq, "yes"),
			}),
		}),
	}
	eq, err := Equivalent(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("OR-of-AND common factor form should be equivalent to its AND/OR factorization")
	}
}
