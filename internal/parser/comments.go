package parser

import "github.com/signadot/paradoxfmt/internal/pir"

// associateComments folds runs of standalone Comment nodes that precede a
// non-comment node into that node's Preceding comment slot, recursively
// through every block. parseList leaves these as plain siblings because it
// has no lookahead past the item it's currently building; this pass is the
// "subsequent correction" spec §4.2 alludes to for comment/node
// association, matching the teacher's own two-phase design
// (parse/associate_comments.go: parse roughly, then reattach).
//
// A run of comments with nothing following it (end of a block or of the
// document) is left as standalone Comment nodes.
func associateComments(nodes []*pir.Node) []*pir.Node {
	out := make([]*pir.Node, 0, len(nodes))
	i := 0
	for i < len(nodes) {
		n := nodes[i]
		if n.Kind != pir.Comment {
			if n.IsBlock() {
				n.Children = associateComments(n.Children)
			}
			out = append(out, n)
			i++
			continue
		}

		j := i
		var run []string
		for j < len(nodes) && nodes[j].Kind == pir.Comment {
			run = append(run, nodes[j].Text)
			j++
		}
		if j >= len(nodes) {
			for _, c := range run {
				out = append(out, pir.NewComment(c))
			}
			i = j
			continue
		}

		target := nodes[j]
		if target.IsBlock() {
			target.Children = associateComments(target.Children)
		}
		target.Comments.Preceding = append(run, target.Comments.Preceding...)
		out = append(out, target)
		i = j + 1
	}
	return out
}
