package rewrite

import (
	"testing"

	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
)

func TestR2AndHoistOnlyUnderImplicitParent(t *testing.T) {
	kids := []*pir.Node{
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("x", pir.OpEq, "yes"),
		}),
	}
	out, changed := r2AndHoist(kids, "", nil)
	if !changed || len(out) != 1 || out[0].Key != "x" {
		t.Errorf("expected AND hoisted at top level, got %s (changed=%v)", dump(out), changed)
	}

	kids2 := []*pir.Node{
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("x", pir.OpEq, "yes"),
		}),
	}
	out2, changed2 := r2AndHoist(kids2, "OR", nil)
	if changed2 {
		t.Errorf("AND should not hoist directly under OR, got %s", dump(out2))
	}
}

func TestR3SiblingMergeGatedByParentContext(t *testing.T) {
	// Two AND siblings under an OR parent must NOT merge (R3 only merges
	// OR-siblings inside OR/NOR; AND-siblings need AND/NAND/implicit).
	kids := []*pir.Node{
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{pir.NewLeaf("a", pir.OpEq, "yes")}),
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{pir.NewLeaf("b", pir.OpEq, "yes")}),
	}
	out, changed := r3SiblingMerge(kids, "OR", nil)
	if changed {
		t.Errorf("AND siblings should not merge under OR parent, got %s", dump(out))
	}

	// The same two AND siblings DO merge under an implicit (top-level) parent.
	kids2 := []*pir.Node{
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{pir.NewLeaf("a", pir.OpEq, "yes")}),
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{pir.NewLeaf("b", pir.OpEq, "yes")}),
	}
	out2, changed2 := r3SiblingMerge(kids2, "", nil)
	if !changed2 || len(out2) != 1 || out2[0].Key != "AND" || len(out2[0].Children) != 2 {
		t.Errorf("AND siblings should merge at top level, got %s (changed=%v)", dump(out2), changed2)
	}

	// OR siblings under a NOR parent merge too.
	kids3 := []*pir.Node{
		pir.NewBlock("OR", pir.OpEq, true, []*pir.Node{pir.NewLeaf("a", pir.OpEq, "yes")}),
		pir.NewBlock("OR", pir.OpEq, true, []*pir.Node{pir.NewLeaf("b", pir.OpEq, "yes")}),
	}
	out3, changed3 := r3SiblingMerge(kids3, "NOR", nil)
	if !changed3 || len(out3) != 1 || out3[0].Key != "OR" || len(out3[0].Children) != 2 {
		t.Errorf("OR siblings should merge inside NOR, got %s (changed=%v)", dump(out3), changed3)
	}

	// NAND siblings are never merged by R3 at all (not AND, not OR).
	kids4 := []*pir.Node{
		pir.NewBlock("NAND", pir.OpEq, true, []*pir.Node{pir.NewLeaf("a", pir.OpEq, "yes")}),
		pir.NewBlock("NAND", pir.OpEq, true, []*pir.Node{pir.NewLeaf("b", pir.OpEq, "yes")}),
	}
	out4, changed4 := r3SiblingMerge(kids4, "NAND", nil)
	if changed4 {
		t.Errorf("NAND siblings should never merge via R3, got %s", dump(out4))
	}
}

func TestR4FlattenNestedExtraClause(t *testing.T) {
	// Inside NOR, a child OR inlines (in addition to a child NOR).
	kids := []*pir.Node{
		pir.NewBlock("OR", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("a", pir.OpEq, "yes"),
			pir.NewLeaf("b", pir.OpEq, "yes"),
		}),
	}
	out, changed := r4FlattenNested(kids, "NOR", nil)
	if !changed || len(out) != 2 {
		t.Errorf("child OR should flatten inside NOR, got %s (changed=%v)", dump(out), changed)
	}

	// Inside NAND, a child AND inlines.
	kids2 := []*pir.Node{
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("a", pir.OpEq, "yes"),
			pir.NewLeaf("b", pir.OpEq, "yes"),
		}),
	}
	out2, changed2 := r4FlattenNested(kids2, "NAND", nil)
	if !changed2 || len(out2) != 2 {
		t.Errorf("child AND should flatten inside NAND, got %s (changed=%v)", dump(out2), changed2)
	}

	// Inside OR, a child AND does NOT flatten (only a child OR would).
	kids3 := []*pir.Node{
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("a", pir.OpEq, "yes"),
		}),
	}
	out3, changed3 := r4FlattenNested(kids3, "OR", nil)
	if changed3 {
		t.Errorf("child AND should not flatten inside OR, got %s", dump(out3))
	}
}

func TestR4FlattenNestedPreservesComments(t *testing.T) {
	inner := pir.NewBlock("OR", pir.OpEq, true, []*pir.Node{
		pir.NewLeaf("a", pir.OpEq, "yes"),
		pir.NewLeaf("b", pir.OpEq, "yes"),
	})
	inner.Comments.HasOpen = true
	inner.Comments.Open = "# open"
	inner.Comments.HasClose = true
	inner.Comments.Close = "# close"
	kids := []*pir.Node{inner}

	out, changed := r4FlattenNested(kids, "NOR", nil)
	if !changed || len(out) != 4 {
		t.Fatalf("expected open comment, a, b, close comment, got %s (changed=%v)", dump(out), changed)
	}
	if out[0].Kind != pir.Comment || out[0].Text != "# open" {
		t.Errorf("expected open comment preserved as standalone node, got %s", dump(out[:1]))
	}
	if out[len(out)-1].Kind != pir.Comment || out[len(out)-1].Text != "# close" {
		t.Errorf("expected close comment preserved as standalone node, got %s", dump(out[len(out)-1:]))
	}
}

func TestR8AndDedupRemovesStructuralDuplicates(t *testing.T) {
	kids := []*pir.Node{
		pir.NewLeaf("x", pir.OpEq, "yes"),
		pir.NewLeaf("y", pir.OpEq, "yes"),
		pir.NewLeaf("x", pir.OpEq, "yes"),
	}
	out, changed := r8AndDedup(kids, "", nil)
	if !changed || len(out) != 2 {
		t.Errorf("expected duplicate removed, got %s (changed=%v)", dump(out), changed)
	}
}

func TestR10SimplifyWrappersSingleChildAndOr(t *testing.T) {
	kids := []*pir.Node{
		pir.NewBlock("OR", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("x", pir.OpEq, "yes"),
		}),
	}
	out, changed := r10SimplifyWrappers(kids, "", nil)
	if !changed || len(out) != 1 || out[0].Key != "x" {
		t.Errorf("single-child OR should simplify to its child, got %s (changed=%v)", dump(out), changed)
	}
}

func TestR10SimplifyWrappersMultiChildNotToNor(t *testing.T) {
	kids := []*pir.Node{
		pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("x", pir.OpEq, "yes"),
			pir.NewLeaf("y", pir.OpEq, "yes"),
		}),
	}
	out, changed := r10SimplifyWrappers(kids, "", nil)
	if !changed || len(out) != 1 || out[0].Key != "NOR" {
		t.Errorf("multi-child NOT should simplify to NOR, got %s (changed=%v)", dump(out), changed)
	}
}

func TestR10SimplifyWrappersPreservesComments(t *testing.T) {
	wrapper := pir.NewBlock("OR", pir.OpEq, true, []*pir.Node{
		pir.NewLeaf("x", pir.OpEq, "yes"),
	})
	wrapper.Comments.HasOpen = true
	wrapper.Comments.Open = "# open"
	wrapper.Comments.HasClose = true
	wrapper.Comments.Close = "# close"
	kids := []*pir.Node{wrapper}

	out, changed := r10SimplifyWrappers(kids, "", nil)
	if !changed || len(out) != 3 {
		t.Fatalf("expected open comment, x, close comment, got %s (changed=%v)", dump(out), changed)
	}
	if out[0].Kind != pir.Comment || out[0].Text != "# open" {
		t.Errorf("expected open comment preserved as standalone node, got %s", dump(out[:1]))
	}
	if out[1].Key != "x" {
		t.Errorf("expected simplified child in the middle, got %s", dump(out[1:2]))
	}
	if out[2].Kind != pir.Comment || out[2].Text != "# close" {
		t.Errorf("expected close comment preserved as standalone node, got %s", dump(out[2:]))
	}
}

func TestR9DeMorganOrOfNotsToNand(t *testing.T) {
	kids := []*pir.Node{
		pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{pir.NewLeaf("a", pir.OpEq, "yes")}),
		pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{pir.NewLeaf("b", pir.OpEq, "yes")}),
	}
	out, changed := r9DeMorganCollapse(kids, "OR", nil)
	if !changed || len(out) != 1 || out[0].Key != "NAND" {
		t.Errorf("OR of NOTs should collapse to NAND, got %s (changed=%v)", dump(out), changed)
	}
}

func TestR9DeMorganOnlyAtOwnLevelNotNested(t *testing.T) {
	// r9 only fires when parentKey of the CALL is the OR/AND itself -- i.e.
	// it operates on an OR/AND's own children, never scans for a nested
	// sibling the way r11/r15/r16 do.
	kids := []*pir.Node{
		pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{pir.NewLeaf("a", pir.OpEq, "yes")}),
		pir.NewLeaf("b", pir.OpEq, "no"),
	}
	out, changed := r9DeMorganCollapse(kids, "AND", nil)
	if !changed || len(out) != 1 || out[0].Key != "NOR" {
		t.Errorf("AND of (NOT, no-leaf) should collapse to NOR, got %s (changed=%v)", dump(out), changed)
	}
}

func TestR12DoubleNegationReducesNestedNot(t *testing.T) {
	kids := []*pir.Node{
		pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{
			pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{
				pir.NewLeaf("x", pir.OpEq, "yes"),
			}),
		}),
	}
	out, changed := r12DoubleNegation(kids, "", nil)
	if !changed || len(out) != 1 || out[0].Key != "AND" || len(out[0].Children) != 1 || out[0].Children[0].Key != "x" {
		t.Errorf("double NOT should reduce to AND holding the inner children, got %s (changed=%v)", dump(out), changed)
	}
}

func TestR13OwnerShortcut(t *testing.T) {
	kids := []*pir.Node{
		pir.NewBlock("owner", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("is_same_empire", pir.OpEq, "root"),
		}),
	}
	out, changed := r13OwnerShortcut(kids, "", nil)
	if !changed || len(out) != 1 || out[0].Key != "is_owned_by" || out[0].Leaf != "root" {
		t.Errorf("owner{is_same_empire=X} should become is_owned_by=X, got %s (changed=%v)", dump(out), changed)
	}
}

func TestR14OrAndNotBOnlyUnderOrParent(t *testing.T) {
	kids := []*pir.Node{
		pir.NewBlock("AND", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("a", pir.OpEq, "yes"),
			pir.NewLeaf("b", pir.OpEq, "yes"),
		}),
		pir.NewLeaf("b", pir.OpEq, "no"),
	}
	out, changed := r14OrAndNotB(kids, "AND", nil)
	if changed {
		t.Errorf("R14 should not fire outside OR parent, got %s", dump(out))
	}
	out2, changed2 := r14OrAndNotB(kids, "OR", nil)
	if !changed2 {
		t.Errorf("R14 should fire under OR parent with AND containing b and sibling negating b, got %s", dump(out2))
	}
}

func TestR6RenamesAnyToCountWhenCountLeafPresent(t *testing.T) {
	kids := []*pir.Node{
		pir.NewBlock("any_planet", pir.OpEq, true, []*pir.Node{
			pir.NewLeaf("count", pir.OpGt, "2"),
			pir.NewLeaf("has_ring", pir.OpEq, "yes"),
		}),
	}
	out, changed := r6AnyCountConversion(kids, "", config.Default())
	if !changed || len(out) != 1 || out[0].Key != "count_planet" {
		t.Errorf("any_X with count leaf should rename to count_X, got %s (changed=%v)", dump(out), changed)
	}
}
