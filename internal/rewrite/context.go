package rewrite

// explicitLogicKeys are the parents whose children are read as an explicit
// Boolean combinator rather than an implicit AND list, spec §4.4.
var explicitLogicKeys = map[string]bool{
	"OR": true, "NOR": true, "NAND": true, "NOT": true, "calc_true_if": true,
}

// nonNegatableKeys name scopes whose body must never have negations pushed
// into it, spec §4.4 and Glossary "Non-negatable scope". calc_true_if
// appears in both sets, per spec.md's Open Questions resolution of the
// teacher-source's inconsistency: explicit-logic for R3 merge, non-
// negatable for R5/R1/R12 push-down.
var nonNegatableKeys = map[string]bool{
	"if": true, "else_if": true, "else": true, "while": true,
	"switch": true, "calc_true_if": true,
}

// IsExplicitLogic reports whether parentKey is one of the five explicit-
// logic keys.
func IsExplicitLogic(parentKey string) bool {
	return explicitLogicKeys[parentKey]
}

// IsNonNegatable reports whether parentKey forbids negation push-down.
func IsNonNegatable(parentKey string) bool {
	return nonNegatableKeys[parentKey]
}

// IsImplicit reports whether parentKey is read as an implicit AND list:
// every parent that isn't one of the five explicit-logic keys, including
// the unset top-level parent, a literal "AND" block, and any ordinary
// scope/leaf key.
func IsImplicit(parentKey string) bool {
	return !IsExplicitLogic(parentKey)
}
