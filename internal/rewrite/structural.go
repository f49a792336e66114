package rewrite

import (
	"github.com/signadot/paradoxfmt/debug"
	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
)

var explicitMergeKeys = map[string]bool{"AND": true, "OR": true, "NOR": true, "NAND": true}

func contextLabel(parentKey string) string {
	if parentKey == "" {
		return "top level"
	}
	return parentKey
}

// r2AndHoist implements spec §4.4 R2: an AND block that is itself a direct
// child of an implicit-AND parent is redundant -- its children are hoisted
// directly into the parent's list in its place.
func r2AndHoist(children []*pir.Node, parentKey string, _ *config.Options) ([]*pir.Node, bool) {
	if !IsImplicit(parentKey) {
		return children, false
	}
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if n.IsBlock() && n.Key == "AND" {
			out = append(out, pir.CloneList(pir.LogicalChildren(n.Children))...)
			debug.RewriteNotice("Hoisted children from AND block inside %s", contextLabel(parentKey))
			changed = true
			continue
		}
		out = append(out, n)
	}
	return out, changed
}

// mergeableSiblingKey reports which explicit-logic key's adjacent siblings
// may merge in the given parent context, per spec §4.4 R3: OR siblings
// merge inside OR or NOR; AND siblings merge inside AND, NAND, or an
// implicit-AND parent (including the unset top-level parent).
func mergeableSiblingKey(parentKey string) string {
	switch {
	case parentKey == "OR" || parentKey == "NOR":
		return "OR"
	case parentKey == "AND" || parentKey == "NAND" || IsImplicit(parentKey):
		return "AND"
	default:
		return ""
	}
}

// r3SiblingMerge implements spec §4.4 R3: adjacent sibling blocks of the
// one explicit-logic key the parent context allows merge into one block of
// that key.
func r3SiblingMerge(children []*pir.Node, parentKey string, _ *config.Options) ([]*pir.Node, bool) {
	mergeKey := mergeableSiblingKey(parentKey)
	if mergeKey == "" {
		return children, false
	}
	changed := false
	var out []*pir.Node
	i := 0
	for i < len(children) {
		n := children[i]
		if n.IsBlock() && n.Key == mergeKey {
			kids := append([]*pir.Node{}, n.Children...)
			j := i + 1
			merged := false
			for j < len(children) && children[j].IsBlock() && children[j].Key == mergeKey {
				kids = append(kids, children[j].Children...)
				j++
				merged = true
			}
			if merged {
				out = append(out, pir.NewBlock(mergeKey, pir.OpEq, true, kids))
				debug.RewriteNotice("Merged adjacent %s blocks", mergeKey)
				changed = true
				i = j
				continue
			}
		}
		out = append(out, n)
		i++
	}
	return out, changed
}

// r4FlattenNested implements spec §4.4 R4: a sibling block whose key
// matches its own parent's explicit-logic key is redundant nesting (e.g. OR
// containing OR) and is flattened into the parent's list. Additionally,
// inside NOR a child OR inlines, and inside NAND a child AND inlines.
func r4FlattenNested(children []*pir.Node, parentKey string, _ *config.Options) ([]*pir.Node, bool) {
	if !explicitMergeKeys[parentKey] {
		return children, false
	}
	flattenKey := parentKey
	extra := ""
	switch parentKey {
	case "NOR":
		extra = "OR"
	case "NAND":
		extra = "AND"
	}
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if n.IsBlock() && (n.Key == flattenKey || (extra != "" && n.Key == extra)) {
			if n.Comments.HasOpen {
				out = append(out, pir.NewComment(n.Comments.Open))
			}
			out = append(out, pir.CloneList(pir.LogicalChildren(n.Children))...)
			if n.Comments.HasClose {
				out = append(out, pir.NewComment(n.Comments.Close))
			}
			debug.RewriteNotice("Flattened nested %s inside %s", n.Key, parentKey)
			changed = true
			continue
		}
		out = append(out, n)
	}
	return out, changed
}

// r8AndDedup implements spec §4.4 R8: within an AND context (explicit AND
// block or implicit-AND parent), structurally-equal duplicate siblings
// collapse to their first occurrence.
func r8AndDedup(children []*pir.Node, parentKey string, _ *config.Options) ([]*pir.Node, bool) {
	if parentKey != "AND" && !IsImplicit(parentKey) {
		return children, false
	}
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if n.Kind == pir.Comment {
			out = append(out, n)
			continue
		}
		dup := false
		for _, seen := range out {
			if seen.Kind != pir.Comment && pir.Equal(seen, n) {
				dup = true
				break
			}
		}
		if dup {
			debug.RewriteNotice("Removed duplicate condition in %s", contextLabel(parentKey))
			changed = true
			continue
		}
		out = append(out, n)
	}
	return out, changed
}

// r10SimplifyWrappers implements spec §4.4 R10.
func r10SimplifyWrappers(children []*pir.Node, _ string, _ *config.Options) ([]*pir.Node, bool) {
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if n.IsBlock() && (n.Key == "AND" || n.Key == "OR" || n.Key == "this") {
			if sc := pir.SingleChild(n); sc != nil {
				out = append(out, wrapperComments(n)...)
				out = append(out, sc)
				out = append(out, wrapperCloseComment(n)...)
				debug.RewriteNotice("Simplified AND and OR with single item")
				changed = true
				continue
			}
		}
		if n.IsBlock() && n.Key == "NOR" {
			if pir.CountLogical(n.Children) == 1 {
				out = append(out, wrapperComments(n)...)
				out = append(out, pir.NewBlock("NOT", pir.OpEq, true, pir.CloneList(n.Children)))
				out = append(out, wrapperCloseComment(n)...)
				debug.RewriteNotice("Simplified single-child NOR to NOT")
				changed = true
				continue
			}
		}
		if n.IsBlock() && n.Key == "NAND" {
			if pir.CountLogical(n.Children) == 1 {
				out = append(out, wrapperComments(n)...)
				out = append(out, pir.NewBlock("NOT", pir.OpEq, true, pir.CloneList(n.Children)))
				out = append(out, wrapperCloseComment(n)...)
				debug.RewriteNotice("Simplified single-child NAND to NOT")
				changed = true
				continue
			}
		}
		if n.IsBlock() && n.Key == "NOT" {
			if pir.CountLogical(n.Children) > 1 {
				out = append(out, wrapperComments(n)...)
				out = append(out, pir.NewBlock("NOR", pir.OpEq, true, pir.CloneList(n.Children)))
				out = append(out, wrapperCloseComment(n)...)
				debug.RewriteNotice("Simplified multi-child NOT to NOR")
				changed = true
				continue
			}
		}
		out = append(out, n)
	}
	return out, changed
}

// wrapperComments returns n's open-brace comment, if any, as a standalone
// comment node emitted ahead of whatever n collapses to.
func wrapperComments(n *pir.Node) []*pir.Node {
	if n.Comments.HasOpen {
		return []*pir.Node{pir.NewComment(n.Comments.Open)}
	}
	return nil
}

// wrapperCloseComment returns n's close-brace comment, if any, as a
// standalone comment node emitted after whatever n collapses to.
func wrapperCloseComment(n *pir.Node) []*pir.Node {
	if n.Comments.HasClose {
		return []*pir.Node{pir.NewComment(n.Comments.Close)}
	}
	return nil
}
