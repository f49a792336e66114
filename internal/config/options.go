// Package config holds the three process-wide Boolean options spec §5 and
// §6 name as the core's only external configuration surface. They are set
// once by the command-line entry point before processing begins and are
// read-only for the remainder of the process, per spec §5 -- so a plain
// struct is enough; there's no need for the teacher's functional-option
// pattern (parse/parse_opts.go, encode/opts.go), which exists there to
// support many optional, independently-composable knobs. Kept as a
// struct (rather than inline globals) because spec's Open Questions note
// these tables/flags are "expected to be kept as external configuration".
package config

// Options are the three process-wide Booleans named in spec §5.
type Options struct {
	// NoCompact suppresses the printer's compaction entirely (§4.5 step 1).
	NoCompact bool
	// UseCountTriggers prefers the count_X trigger form when converting
	// any_X blocks (§4.4 R6, R12).
	UseCountTriggers bool
	// UseAnyTriggers prefers the any_X trigger form when converting
	// count_X blocks (§4.4 R6).
	UseAnyTriggers bool
}

// Default returns the zero-value options: compaction enabled, no trigger
// preference (an any_X/count_X block is left in whichever form the source
// used).
func Default() *Options {
	return &Options{}
}
