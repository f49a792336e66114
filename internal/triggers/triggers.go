// Package triggers holds the empirical exception tables spec §4.4 R6/R12
// and the Open Questions section say are "expected to be kept as external
// configuration tables" rather than hardcoded inline in the rewriter.
package triggers

// NonCountTriggers names any_X keys that must never be rewritten to the
// count_X form even when use_count_triggers is set -- e.g. because the
// host game gives them a distinct, non-cardinality meaning that count_X's
// "count >= 1, limit = {...}" expansion wouldn't preserve.
var NonCountTriggers = map[string]bool{
	"any_owned_pop_amount": true,
	"any_neighbor_country":  true,
	"any_system_within_border": true,
}

// NonAnyTriggers names count_X keys that must never be rewritten to the
// any_X form even when use_any_triggers is set.
var NonAnyTriggers = map[string]bool{
	"count_owned_pop_amount": true,
}

// AnyOwnedPopAmountException is the single named exception in R12's NOT
// conversion: NOT{any_owned_pop_amount{...}} is never rewritten to a
// count_X form even when use_count_triggers is set, because the host game
// gives it pop-amount semantics no scope-count reading would preserve.
const AnyOwnedPopAmountException = "any_owned_pop_amount"

// IsCountTriggerEligible reports whether an any_X key may be converted to
// count_X under use_count_triggers.
func IsCountTriggerEligible(key string) bool {
	return !NonCountTriggers[key]
}

// IsAnyTriggerEligible reports whether a count_X key may be converted to
// any_X under use_any_triggers.
func IsAnyTriggerEligible(key string) bool {
	return !NonAnyTriggers[key]
}
