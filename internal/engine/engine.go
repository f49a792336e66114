// Package engine wires the tokenizer, parser, canonicalizer, rewriter, and
// printer into the single entry point spec §6 names: a function from
// source text to (new_text, changed), guarded by one catch-all per §7.
package engine

import (
	"fmt"
	"strings"

	"github.com/signadot/paradoxfmt/debug"
	"github.com/signadot/paradoxfmt/internal/canon"
	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/parser"
	"github.com/signadot/paradoxfmt/internal/printer"
	"github.com/signadot/paradoxfmt/internal/rewrite"
)

// Process implements spec §6's entry contract. CRLF is normalized to LF on
// entry; any internal fault is logged to stderr and the caller gets back
// the original (CRLF-normalized) text with changed=false.
func Process(text string, opts *config.Options) (newText string, changed bool) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	if opts == nil {
		opts = config.Default()
	}
	result, ok := runPipeline(normalized, opts)
	if !ok {
		return normalized, false
	}
	return result, result != text
}

func runPipeline(src string, opts *config.Options) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			debug.Fault(panicError{r})
			ok = false
		}
	}()
	nodes, err := parser.Parse(src)
	if err != nil {
		debug.Fault(err)
		return "", false
	}
	canon.Canonicalize(nodes)
	nodes, _ = rewrite.Optimize(nodes, opts)
	return printer.Print(nodes, opts), true
}

type panicError struct{ v any }

func (p panicError) Error() string {
	if err, ok := p.v.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", p.v)
}
