package rewrite

import (
	"github.com/signadot/paradoxfmt/debug"
	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
)

// scopeKeys is the fixed vocabulary the Glossary's "scope" regex matches
// against: block keys that switch the evaluation scope rather than test a
// condition in the current one.
var scopeKeys = map[string]bool{
	"owner": true, "controller": true, "planet": true, "system": true,
	"solar_system": true, "star": true, "fleet": true, "ship": true,
	"species": true, "country": true, "overlord": true, "capital_scope": true,
	"this": true, "root": true, "prev": true, "from": true,
}

func isScopeKey(key string) bool {
	return scopeKeys[key]
}

// r7OrMergeScopeSiblings implements spec §4.4 R7.
func r7OrMergeScopeSiblings(children []*pir.Node, parentKey string, _ *config.Options) ([]*pir.Node, bool) {
	if parentKey != "OR" && parentKey != "NOR" {
		return children, false
	}
	counts := map[string]int{}
	for _, n := range children {
		if n.IsBlock() && isScopeKey(n.Key) {
			counts[n.Key]++
		}
	}
	changed := false
	emitted := map[string]bool{}
	var out []*pir.Node
	for _, n := range children {
		if n.IsBlock() && isScopeKey(n.Key) && counts[n.Key] >= 2 {
			if emitted[n.Key] {
				changed = true
				continue
			}
			emitted[n.Key] = true
			var members []*pir.Node
			for _, m := range children {
				if m.IsBlock() && m.Key == n.Key {
					members = append(members, m)
				}
			}
			out = append(out, mergeScopeGroup(n.Key, members)...)
			changed = true
			continue
		}
		out = append(out, n)
	}
	return out, changed
}

func mergeScopeGroup(key string, members []*pir.Node) []*pir.Node {
	var out []*pir.Node
	var orKids []*pir.Node
	for _, m := range members {
		for _, c := range m.Comments.Preceding {
			out = append(out, pir.NewComment(c))
		}
		lc := pir.LogicalChildren(m.Children)
		if len(lc) == 1 {
			orKids = append(orKids, lc[0].Clone())
		} else {
			orKids = append(orKids, pir.NewBlock("AND", pir.OpEq, true, pir.CloneList(lc)))
		}
		if m.Comments.HasClose {
			out = append(out, pir.NewComment(m.Comments.Close))
		}
	}
	orBlock := pir.NewBlock("OR", pir.OpEq, true, orKids)
	merged := pir.NewBlock(key, pir.OpEq, true, []*pir.Node{orBlock})
	out = append(out, merged)
	debug.RewriteNotice("Merged %d %s siblings under OR", len(members), key)
	return out
}

// r13OwnerShortcut implements spec §4.4 R13.
func r13OwnerShortcut(children []*pir.Node, _ string, _ *config.Options) ([]*pir.Node, bool) {
	changed := false
	var out []*pir.Node
	for _, n := range children {
		if n.IsBlock() && n.Key == "owner" {
			if sc := pir.SingleChild(n); sc != nil && sc.IsLeaf() && (sc.Key == "is_same_empire" || sc.Key == "is_same_value") {
				leaf := pir.NewLeaf("is_owned_by", sc.Op, sc.Leaf)
				leaf.Comments = n.Comments
				out = append(out, leaf)
				debug.RewriteNotice("Simplified owner scope to is_owned_by")
				changed = true
				continue
			}
		}
		out = append(out, n)
	}
	return out, changed
}
