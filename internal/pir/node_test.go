package pir

import "testing"

func TestOpFlip(t *testing.T) {
	tests := []struct {
		op   Op
		want Op
	}{
		{OpEq, OpNe},
		{OpNe, OpEq},
		{OpLt, OpGe},
		{OpGe, OpLt},
		{OpGt, OpLe},
		{OpLe, OpGt},
		{OpNone, OpNone},
	}
	for _, tt := range tests {
		if got := tt.op.Flip(); got != tt.want {
			t.Errorf("%s.Flip() = %s, want %s", tt.op, got, tt.want)
		}
		if got := tt.op.Flip().Flip(); tt.op != OpNone && got != tt.op {
			t.Errorf("%s.Flip().Flip() = %s, want original", tt.op, got)
		}
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		text string
		want Op
		ok   bool
	}{
		{"=", OpEq, true},
		{"!=", OpNe, true},
		{"<", OpLt, true},
		{"<=", OpLe, true},
		{">", OpGt, true},
		{">=", OpGe, true},
		{"?", OpNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseOp(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseOp(%q) = (%s, %v), want (%s, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewBlock("AND", OpEq, true, []*Node{
		NewLeaf("x", OpEq, "yes"),
		NewLeaf("y", OpEq, "no"),
	})
	orig.Comments.Preceding = []string{"# a"}

	cp := orig.Clone()
	cp.Children[0].Leaf = "no"
	cp.Comments.Preceding[0] = "# b"

	if orig.Children[0].Leaf != "yes" {
		t.Errorf("Clone shares child state: orig.Children[0].Leaf = %q", orig.Children[0].Leaf)
	}
	if orig.Comments.Preceding[0] != "# a" {
		t.Errorf("Clone shares Preceding slice: orig.Comments.Preceding[0] = %q", orig.Comments.Preceding[0])
	}
}

func TestKeyEquals(t *testing.T) {
	n := NewStandalone("owner")
	if !n.KeyEquals("owner") {
		t.Error("KeyEquals(\"owner\") = false, want true")
	}
	if n.KeyEquals("Owner") {
		t.Error("KeyEquals is case-insensitive, want case-sensitive")
	}
	var nilNode *Node
	if nilNode.KeyEquals("owner") {
		t.Error("KeyEquals on nil node = true, want false")
	}
}

func TestIsBlockIsLeaf(t *testing.T) {
	block := NewBlock("AND", OpNone, false, nil)
	leaf := NewLeaf("x", OpEq, "yes")
	standalone := NewStandalone("flag")

	if !block.IsBlock() || block.IsLeaf() {
		t.Error("block node misclassified")
	}
	if !leaf.IsLeaf() || leaf.IsBlock() {
		t.Error("leaf node misclassified")
	}
	if standalone.IsBlock() || standalone.IsLeaf() {
		t.Error("standalone node misclassified")
	}
}
