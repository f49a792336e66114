package rewrite

import (
	"strings"

	"github.com/signadot/paradoxfmt/debug"
	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
	"github.com/signadot/paradoxfmt/internal/triggers"
)

// r6AnyCountConversion implements spec §4.4 R6.
func r6AnyCountConversion(children []*pir.Node, _ string, opts *config.Options) ([]*pir.Node, bool) {
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if !n.IsBlock() {
			out = append(out, n)
			continue
		}
		if strings.HasPrefix(n.Key, "any_") {
			if idx := countLeafIndex(n.Children); idx >= 0 {
				cp := n.Clone()
				cp.Key = "count_" + strings.TrimPrefix(n.Key, "any_")
				out = append(out, cp)
				debug.RewriteNotice("Renamed %s to %s (count comparison inside any_ block)", n.Key, cp.Key)
				changed = true
				continue
			}
			if opts.UseCountTriggers && !opts.UseAnyTriggers && triggers.IsCountTriggerEligible(n.Key) {
				base := strings.TrimPrefix(n.Key, "any_")
				cp := anyToCountBlock(n, base)
				out = append(out, cp)
				debug.RewriteNotice("Converted %s to count_%s", n.Key, base)
				changed = true
				continue
			}
		}
		if strings.HasPrefix(n.Key, "count_") {
			base := strings.TrimPrefix(n.Key, "count_")
			if opts.UseAnyTriggers && !opts.UseCountTriggers && triggers.IsAnyTriggerEligible(n.Key) {
				if conv, ok := countToAnyBlock(n, base); ok {
					out = append(out, conv...)
					debug.RewriteNotice("Converted %s to any_%s", n.Key, base)
					changed = true
					continue
				}
			}
			if reordered, ok := reorderCountLimit(n); ok {
				out = append(out, reordered)
				debug.RewriteNotice("Reordered count before limit in %s", n.Key)
				changed = true
				continue
			}
		}
		out = append(out, n)
	}
	return out, changed
}

func countLeafIndex(children []*pir.Node) int {
	for i, c := range children {
		if c.IsLeaf() && c.Key == "count" {
			return i
		}
	}
	return -1
}

func limitBlockIndex(children []*pir.Node) int {
	for i, c := range children {
		if c.IsBlock() && c.Key == "limit" {
			return i
		}
	}
	return -1
}

// anyToCountBlock builds count_X { count >= 1, limit = {original-children} }.
func anyToCountBlock(n *pir.Node, base string) *pir.Node {
	countLeaf := pir.NewLeaf("count", pir.OpGe, "1")
	limit := pir.NewBlock("limit", pir.OpEq, true, pir.CloneList(n.Children))
	cp := pir.NewBlock("count_"+base, n.Op, n.HasOp, []*pir.Node{countLeaf, limit})
	cp.Comments = n.Comments
	return cp
}

var positiveCountCmps = map[string]bool{">0": true, ">=1": true, "!=0": true}
var negativeCountCmps = map[string]bool{"<1": true, "<=0": true, "=0": true}

// countToAnyBlock converts count_X { count OP N, limit = {...} } to
// any_X = {...} (or NOT = { any_X = {...} } for the negative comparisons),
// only when count and limit are the block's only two children.
func countToAnyBlock(n *pir.Node, base string) ([]*pir.Node, bool) {
	lc := pir.LogicalChildren(n.Children)
	if len(lc) != 2 {
		return nil, false
	}
	ci, li := countLeafIndex(lc), limitBlockIndex(lc)
	if ci < 0 || li < 0 {
		return nil, false
	}
	count := lc[ci]
	limit := lc[li]
	key := count.Op.String() + count.Leaf
	anyBlock := pir.NewBlock("any_"+base, pir.OpEq, true, pir.CloneList(limit.Children))
	anyBlock.Comments = n.Comments
	switch {
	case positiveCountCmps[key]:
		return []*pir.Node{anyBlock}, true
	case negativeCountCmps[key]:
		anyBlock.Comments = pir.Comments{}
		not := pir.NewBlock("NOT", pir.OpEq, true, []*pir.Node{anyBlock})
		not.Comments = n.Comments
		return []*pir.Node{not}, true
	default:
		return nil, false
	}
}

// reorderCountLimit moves a trailing "count" child ahead of "limit" when
// both are present but misordered.
func reorderCountLimit(n *pir.Node) (*pir.Node, bool) {
	ci, li := countLeafIndex(n.Children), limitBlockIndex(n.Children)
	if ci < 0 || li < 0 || ci < li {
		return nil, false
	}
	cp := n.Clone()
	kids := make([]*pir.Node, 0, len(cp.Children))
	kids = append(kids, cp.Children[ci])
	for i, c := range cp.Children {
		if i != ci {
			kids = append(kids, c)
		}
	}
	cp.Children = kids
	return cp, true
}
