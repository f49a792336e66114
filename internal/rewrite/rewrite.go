// Package rewrite implements the fixpoint logical-rewrite engine of spec
// §4.4: thirty-odd rules drawn from Boolean algebra (De Morgan, double
// negation, common-factor extraction, idempotence) plus domain-specific
// canonicalizations (trigger-form preference, comparison negation),
// applied to a pir.Node tree until no rule fires or the pass bound
// (maxExtraPasses) is reached.
package rewrite

import (
	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
)

// maxExtraPasses bounds the fixpoint re-run per spec §4.4 "Fixpoint": the
// outer loop repeats optimize while any rule reports a change, up to three
// extra iterations after the first -- four passes total.
const maxExtraPasses = 3

// Optimize runs the fixpoint loop described in spec §4.4 over a top-level
// (or any) child list, returning the rewritten list and whether anything
// changed across all passes.
func Optimize(children []*pir.Node, opts *config.Options) ([]*pir.Node, bool) {
	return OptimizeInContext(children, "", opts)
}

// OptimizeInContext is Optimize parameterized by the enclosing parent key,
// so a subtree can be optimized in its original context. Optimize is its
// only caller.
func OptimizeInContext(children []*pir.Node, parentKey string, opts *config.Options) ([]*pir.Node, bool) {
	changedAny := false
	cur := children
	for pass := 0; pass <= maxExtraPasses; pass++ {
		next, changed := optimize(cur, parentKey, opts)
		cur = next
		if !changed {
			break
		}
		changedAny = true
	}
	return cur, changedAny
}

// optimize runs exactly one pass of R1-R16 over children in the given
// parent-key context. It recurses into every block child first (so nested
// optimization is bottom-up within a single pass), then applies the
// sibling-list-shaped rules at this level, in the exact order spec §4.4
// lists them -- the order was "tuned to avoid rule-interference cycles"
// per the Design Notes and must be preserved.
func optimize(children []*pir.Node, parentKey string, opts *config.Options) ([]*pir.Node, bool) {
	changed := false

	for _, n := range children {
		if n.IsBlock() {
			newChildren, ch := optimize(n.Children, n.Key, opts)
			if ch {
				n.Children = newChildren
				changed = true
			}
		}
	}

	type rule func([]*pir.Node, string, *config.Options) ([]*pir.Node, bool)
	rules := []rule{
		r1NegationAbsorption,
		r2AndHoist,
		r3SiblingMerge,
		r4FlattenNested,
		r5NegationSequenceFusion,
		r6AnyCountConversion,
		r7OrMergeScopeSiblings,
		r8AndDedup,
		r9DeMorganCollapse,
		r10SimplifyWrappers,
		r11NorCommonFactor,
		r12DoubleNegation,
		r13OwnerShortcut,
		r14OrAndNotB,
		r15OrAndCommonFactor,
		r16NandAbsorption,
	}
	for _, r := range rules {
		var ch bool
		children, ch = r(children, parentKey, opts)
		changed = changed || ch
	}
	return children, changed
}
