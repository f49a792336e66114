package debug

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var noticeColor = color.New(color.FgHiBlack)

var isTerminal = isatty.IsTerminal(os.Stderr.Fd())

// RewriteNotice writes one of the advisory, non-fatal per-rule messages
// named in spec §7 ("Hoisted children from AND block inside %s", "Simplified
// AND and OR with single item", ...) to stderr, gated behind
// PARADOXFMT_DEBUG_REWRITE. These are advisory only and never affect the
// process(text) contract.
func RewriteNotice(format string, args ...any) {
	if f.Rewrite {
		notice(format, args...)
	}
}

// PrinterNotice writes an advisory printer diagnostic to stderr, gated
// behind PARADOXFMT_DEBUG_PRINTER.
func PrinterNotice(format string, args ...any) {
	if f.Printer {
		notice(format, args...)
	}
}

// notice formats and writes a debug line to stderr. When stderr is a
// terminal the line is dimmed, reusing the teacher's own color-attribute
// approach (encode/encode_colors.go) repurposed for diagnostics rather than
// tree rendering.
func notice(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if isTerminal {
		msg = noticeColor.Sprint(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Fault logs an internal fault recovered from by the engine's catch-all
// (spec §7). Unlike RewriteNotice and PrinterNotice it always fires
// regardless of the PARADOXFMT_DEBUG_* flags -- an unexpected panic is never
// merely advisory.
func Fault(err error) {
	fmt.Fprintf(os.Stderr, "paradoxfmt: %v\n", err)
}
