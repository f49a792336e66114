package pir

import "testing"

func TestEqual(t *testing.T) {
	a := NewBlock("AND", OpEq, true, []*Node{
		NewLeaf("x", OpEq, "yes"),
		NewLeaf("y", OpEq, "no"),
	})
	b := NewBlock("AND", OpEq, true, []*Node{
		NewLeaf("x", OpEq, "yes"),
		NewLeaf("y", OpEq, "no"),
	})
	if !Equal(a, b) {
		t.Error("structurally identical trees should be Equal")
	}

	c := NewBlock("AND", OpEq, true, []*Node{
		NewLeaf("x", OpEq, "yes"),
		NewLeaf("y", OpEq, "yes"),
	})
	if Equal(a, c) {
		t.Error("trees differing in a leaf value should not be Equal")
	}
}

func TestEqualIgnoresComments(t *testing.T) {
	a := NewLeaf("x", OpEq, "yes")
	b := NewLeaf("x", OpEq, "yes")
	b.Comments.Preceding = []string{"# note"}
	if !Equal(a, b) {
		t.Error("Equal should ignore attached comments")
	}
}

func TestEqualListIgnoresCommentPositions(t *testing.T) {
	a := []*Node{NewLeaf("x", OpEq, "yes"), NewLeaf("y", OpEq, "no")}
	b := []*Node{NewComment("# hi"), NewLeaf("x", OpEq, "yes"), NewComment("# mid"), NewLeaf("y", OpEq, "no")}
	if !EqualList(a, b) {
		t.Error("EqualList should ignore interspersed comments")
	}
}
