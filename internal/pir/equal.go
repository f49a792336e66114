package pir

// Equal reports whether a and b are structurally equal, per the recursive
// equality used throughout spec §4.4 (R8 dedup, R11/R15 common-factor
// extraction). Comments are not part of the comparison: two nodes that
// differ only in attached comments are still the "same" proposition for
// the purposes of AND-dedup and common-factor extraction.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Comment, RawBlock:
		return a.Text == b.Text
	case Entry:
		if a.Key != b.Key || a.Op != b.Op || a.HasOp != b.HasOp {
			return false
		}
		if a.HasValKey != b.HasValKey || a.ValKey != b.ValKey {
			return false
		}
		if a.ValueKind != b.ValueKind {
			return false
		}
		switch a.ValueKind {
		case ValueNone:
			return true
		case ValueLeaf:
			return a.Leaf == b.Leaf
		case ValueBlock:
			return EqualList(a.Children, b.Children)
		}
	}
	return false
}

// EqualList compares two child lists ignoring interspersed comment nodes,
// since a comment's presence or position never changes a subtree's meaning.
func EqualList(a, b []*Node) bool {
	ai, bi := nonCommentNodes(a), nonCommentNodes(b)
	if len(ai) != len(bi) {
		return false
	}
	for i := range ai {
		if !Equal(ai[i], bi[i]) {
			return false
		}
	}
	return true
}

func nonCommentNodes(ns []*Node) []*Node {
	out := make([]*Node, 0, len(ns))
	for _, n := range ns {
		if n.Kind == Comment {
			continue
		}
		out = append(out, n)
	}
	return out
}
