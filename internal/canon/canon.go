// Package canon implements the three independent, idempotent tree walks of
// spec §4.3: lowercasing scope/flow-control keys, uppercasing the five
// logical-operator keys, and lowercasing Yes/No leaf values.
package canon

import (
	"strings"

	"github.com/signadot/paradoxfmt/internal/pir"
)

// scopeKeysExact are the bare scope/flow-control keys that get lowercased
// outright, spec §4.3 rule 1.
var scopeKeysExact = map[string]bool{
	"ROOT": true, "PREV": true, "FROMFROM": true, "THIS": true,
	"Owner": true, "Controller": true, "From": true, "FromFrom": true,
	"Root": true, "Prev": true, "BREAK": true, "CONTINUE": true,
}

var scopeSuffixes = []string{".ROOT", ".PREV", ".FROM", ".OWNER", ".CONTROLLER"}
var scopePrefixes = []string{"ROOT.", "PREV.", "FROM.", "OWNER.", "CONTROLLER."}

// scopeBlockKeys are additionally lowercased when the entry is a block.
var scopeBlockKeys = map[string]bool{
	"FROM": true, "OWNER": true, "EFFECT": true, "TRIGGER": true,
	"SWITCH": true, "IF": true, "ELSE": true, "ELSE_IF": true,
	"LIMIT": true, "WHILE": true,
}

// logicalOperatorKeys are uppercased, spec §4.3 rule 2. calc_true_if is
// recognized as explicit-logic (see internal/rewrite/context.go) but its
// key text is never uppercased.
var logicalOperatorKeys = map[string]bool{
	"or": true, "and": true, "nor": true, "nand": true, "not": true,
}

// Canonicalize runs the three walks over the top-level node list, in place,
// recursively through every block. Each walk is idempotent; running
// Canonicalize again on its own output is a no-op.
func Canonicalize(nodes []*pir.Node) {
	lowercaseScopeKeys(nodes)
	uppercaseLogicalOperators(nodes)
	lowercaseYesNoValues(nodes)
}

func walk(nodes []*pir.Node, visit func(*pir.Node)) {
	for _, n := range nodes {
		if n.Kind != pir.Entry {
			continue
		}
		visit(n)
		if n.IsBlock() {
			walk(n.Children, visit)
		}
	}
}

func lowercaseScopeKeys(nodes []*pir.Node) {
	walk(nodes, func(n *pir.Node) {
		if shouldLowerScopeKey(n) {
			n.Key = strings.ToLower(n.Key)
		}
	})
}

func shouldLowerScopeKey(n *pir.Node) bool {
	if scopeKeysExact[n.Key] {
		return true
	}
	for _, suf := range scopeSuffixes {
		if strings.HasSuffix(n.Key, suf) {
			return true
		}
	}
	for _, pre := range scopePrefixes {
		if strings.HasPrefix(n.Key, pre) {
			return true
		}
	}
	if n.IsBlock() && scopeBlockKeys[n.Key] {
		return true
	}
	return false
}

func uppercaseLogicalOperators(nodes []*pir.Node) {
	walk(nodes, func(n *pir.Node) {
		if !n.IsBlock() {
			return
		}
		lower := strings.ToLower(n.Key)
		if lower == "calc_true_if" {
			n.Key = lower
			return
		}
		if logicalOperatorKeys[lower] {
			n.Key = strings.ToUpper(n.Key)
		}
	})
}

var yesNoValues = map[string]bool{
	"Yes": true, "No": true, "YES": true, "NO": true, "From": true, "FROM": true,
}

func lowercaseYesNoValues(nodes []*pir.Node) {
	walk(nodes, func(n *pir.Node) {
		if n.IsLeaf() && yesNoValues[n.Leaf] {
			n.Leaf = strings.ToLower(n.Leaf)
		}
	})
}
