// Package printer renders a pir.Node tree back to Paradox-script text,
// choosing between compact single-line and expanded multi-line block
// rendering per spec §4.5, grounded on the teacher's encode/encode.go
// state-and-options writer.
package printer

import (
	"strings"

	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
)

// compactSuffixes is "compact_nodes": keys ending in one of these try to
// stay on one line even past the ordinary child-count threshold.
var compactSuffixes = []string{
	"_event", "switch", "tags", "NOT", "_technology", "_offset", "_flag",
	"flags", "_opinion_modifier", "_variable", "give_tech_no_error_effect",
	"colors", "add_ship_type_from_debris",
}

// notCompactKeys is "not_compact_nodes": these never compact, regardless of
// child count.
var notCompactKeys = map[string]bool{
	"cost": true, "upkeep": true, "produces": true,
	"NOR": true, "OR": true, "NAND": true, "AND": true,
	"hidden_effect": true, "init_effect": true, "effect": true, "settings": true,
	"if": true, "else_if": true, "else": true, "while": true,
	"switch": true, "calc_true_if": true,
}

// normalNodes is "normal_nodes": these never compact once they have more
// than one logical child.
var normalNodes = map[string]bool{
	"limit": true, "trigger": true, "add_resource": true, "ai_chance": true,
	"traits": true, "civics": true, "ethos": true, "inline_scripts": true,
	"modify_species": true, "change_species_characteristics": true,
	"custom_tooltip": true,
}

var hsvValKeys = map[string]bool{"hsv": true, "rgb": true, "rgb255": true}

func hasCompactSuffix(key string) bool {
	for _, s := range compactSuffixes {
		if strings.HasSuffix(key, s) {
			return true
		}
	}
	return false
}

func isDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// compactable implements the nine-step compaction decision of spec §4.5.
func compactable(n *pir.Node, opts *config.Options) bool {
	if !n.IsBlock() {
		return false
	}
	if opts.NoCompact {
		return false
	}
	for _, c := range n.Children {
		if c.Kind == pir.Comment || c.Kind == pir.RawBlock || len(c.Comments.Preceding) > 0 {
			return false
		}
	}
	if n.Comments.HasOpen {
		return false
	}
	if n.HasValKey && hsvValKeys[n.ValKey] {
		return true
	}
	if notCompactKeys[n.Key] {
		return false
	}
	logical := pir.CountLogical(n.Children)
	if logical > 1 && normalNodes[n.Key] {
		return false
	}
	if logical > 2 && !hasCompactSuffix(n.Key) {
		return false
	}
	if logical == 1 && (isDigitsOnly(n.Key) || hasCompactSuffix(n.Key)) {
		sc := pir.SingleChild(n)
		if sc.IsBlock() {
			return compactable(sc, opts)
		}
		return !(sc.Comments.HasInline || sc.Comments.HasClose)
	}
	return fitsEstimatedLength(n, opts)
}

// fitsEstimatedLength is compaction step 9.
func fitsEstimatedLength(n *pir.Node, opts *config.Options) bool {
	lc := pir.LogicalChildren(n.Children)
	total := len(n.Key)/2 + 5
	for _, c := range lc {
		var valueLen int
		if c.IsBlock() {
			if !compactable(c, opts) {
				return false
			}
			valueLen = estimatedLength(c)
		} else {
			if c.Comments.HasInline || c.Comments.HasClose {
				return false
			}
			valueLen = len(c.Leaf)
		}
		if len(lc) > 1 && valueLen > 9 && len(c.Key) > 29 {
			return false
		}
		if valueLen > 48 {
			return false
		}
		total += len(c.Key) + valueLen + 4
	}
	limit := 80
	if n.Comments.HasClose {
		limit = 120
	}
	return total <= limit
}

// estimatedLength is the child-rendered-length estimate the length check
// reuses for nested blocks.
func estimatedLength(n *pir.Node) int {
	lc := pir.LogicalChildren(n.Children)
	total := len(n.Key)/2 + 5
	for _, c := range lc {
		if c.IsBlock() {
			total += len(c.Key) + estimatedLength(c) + 4
		} else {
			total += len(c.Key) + len(c.Leaf) + 4
		}
	}
	return total
}
