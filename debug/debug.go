// Package debug provides environment-gated debug flags and the advisory
// notice logger used by the rewriter and printer (spec §7), adapted from
// the teacher's debug/debug.go and debug/log.go.
package debug

import (
	"os"
	"strconv"
)

type flags struct {
	Rewrite bool
	Printer bool
}

var f *flags

func init() {
	f = &flags{
		Rewrite: boolEnv("PARADOXFMT_DEBUG_REWRITE"),
		Printer: boolEnv("PARADOXFMT_DEBUG_PRINTER"),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

