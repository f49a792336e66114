package printer

import (
	"strings"

	"github.com/signadot/paradoxfmt/debug"
	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/pir"
)

// groupingKeys are the keys R4.5's blank-line rule treats as one group even
// when they don't match exactly.
var groupingKeys = map[string]bool{"exists": true, "optimize_memory": true}

// Print renders a full document per spec §4.5, terminating in exactly one
// trailing newline.
func Print(nodes []*pir.Node, opts *config.Options) string {
	var b strings.Builder
	writeList(&b, nodes, 0, opts)
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func writeList(b *strings.Builder, nodes []*pir.Node, depth int, opts *config.Options) {
	var prev *pir.Node
	for _, n := range nodes {
		if (depth == 0 || depth == 1) && prev != nil && needsBlankLine(prev, n) {
			b.WriteString("\n")
		}
		writeNode(b, n, depth, opts)
		prev = n
	}
}

func needsBlankLine(prev, cur *pir.Node) bool {
	if cur.Kind == pir.Entry && strings.HasPrefix(cur.Key, "@") {
		return false
	}
	if prev.Kind == pir.Comment && !isHeaderComment(prev.Text) {
		return false
	}
	prevBlock, curBlock := prev.IsBlock(), cur.IsBlock()
	if !prevBlock && !curBlock {
		return false
	}
	if prevBlock && curBlock {
		if prev.Key == cur.Key {
			return false
		}
		if groupingKeys[prev.Key] && groupingKeys[cur.Key] {
			return false
		}
	}
	return true
}

func isHeaderComment(text string) bool {
	return strings.HasPrefix(text, "##") || strings.HasPrefix(text, "#}")
}

func writeNode(b *strings.Builder, n *pir.Node, depth int, opts *config.Options) {
	indent := strings.Repeat("\t", depth)
	switch n.Kind {
	case pir.Comment:
		b.WriteString(indent)
		b.WriteString(n.Text)
		b.WriteString("\n")
		return
	case pir.RawBlock:
		b.WriteString(n.Text)
		if !strings.HasSuffix(n.Text, "\n") {
			b.WriteString("\n")
		}
		return
	}

	for _, c := range n.Comments.Preceding {
		b.WriteString(indent)
		b.WriteString(c)
		b.WriteString("\n")
	}

	if n.ValueKind == pir.ValueBlock && useRaw(n, depth, opts) {
		debug.PrinterNotice("Preserved raw switch formatting for %s (re-render was longer)", n.Key)
		b.WriteString(indent)
		writeRawSwitch(b, n, depth)
		return
	}

	b.WriteString(indent)
	b.WriteString(n.Key)
	switch n.ValueKind {
	case pir.ValueNone:
		writeInlineComment(b, n)
		b.WriteString("\n")
	case pir.ValueLeaf:
		b.WriteString(" ")
		b.WriteString(n.Op.String())
		b.WriteString(" ")
		b.WriteString(n.Leaf)
		writeInlineComment(b, n)
		b.WriteString("\n")
	case pir.ValueBlock:
		writeBlockValue(b, n, depth, opts)
	}
}

func writeInlineComment(b *strings.Builder, n *pir.Node) {
	if n.Comments.HasInline {
		b.WriteString(" ")
		b.WriteString(n.Comments.Inline)
	}
}

func writeBlockValue(b *strings.Builder, n *pir.Node, depth int, opts *config.Options) {
	if n.HasOp {
		b.WriteString(" ")
		b.WriteString(n.Op.String())
	}
	if n.HasValKey {
		b.WriteString(" ")
		b.WriteString(n.ValKey)
	}
	b.WriteString(" ")
	if compactable(n, opts) {
		writeCompactBlock(b, n)
		b.WriteString("\n")
		return
	}
	writeExpandedBlock(b, n, depth, opts)
}

func writeCompactBlock(b *strings.Builder, n *pir.Node) {
	b.WriteString("{")
	if n.Comments.HasOpen {
		b.WriteString(" ")
		b.WriteString(n.Comments.Open)
	}
	for _, c := range pir.LogicalChildren(n.Children) {
		b.WriteString(" ")
		writeCompactChild(b, c)
	}
	b.WriteString(" }")
	if n.Comments.HasClose {
		b.WriteString(" ")
		b.WriteString(n.Comments.Close)
	}
}

func writeCompactChild(b *strings.Builder, n *pir.Node) {
	switch n.ValueKind {
	case pir.ValueNone:
		b.WriteString(n.Key)
	case pir.ValueLeaf:
		b.WriteString(n.Key)
		b.WriteString(" ")
		b.WriteString(n.Op.String())
		b.WriteString(" ")
		b.WriteString(n.Leaf)
	case pir.ValueBlock:
		b.WriteString(n.Key)
		if n.HasOp {
			b.WriteString(" ")
			b.WriteString(n.Op.String())
		}
		if n.HasValKey {
			b.WriteString(" ")
			b.WriteString(n.ValKey)
		}
		b.WriteString(" ")
		writeCompactBlock(b, n)
	}
}

func writeExpandedBlock(b *strings.Builder, n *pir.Node, depth int, opts *config.Options) {
	b.WriteString("{")
	if n.Comments.HasOpen {
		b.WriteString(" ")
		b.WriteString(n.Comments.Open)
	}
	b.WriteString("\n")
	writeList(b, n.Children, depth+1, opts)
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteString("}")
	if n.Comments.HasClose {
		b.WriteString(" ")
		b.WriteString(n.Comments.Close)
	}
	b.WriteString("\n")
}

// useRaw implements spec §4.5 "Switch preservation".
func useRaw(n *pir.Node, depth int, opts *config.Options) bool {
	if n.Key != "switch" || !n.HasRawText {
		return false
	}
	var tmp strings.Builder
	tmp.WriteString(n.Key)
	writeBlockValue(&tmp, n, depth, opts)
	return strings.Count(tmp.String(), "\n") > strings.Count(n.RawText, "\n")
}

// writeRawSwitch writes the captured switch span, re-indenting each
// continuation line to depth plus its brace nesting inside the span.
func writeRawSwitch(b *strings.Builder, n *pir.Node, depth int) {
	lines := strings.Split(strings.TrimRight(n.RawText, "\n"), "\n")
	level := depth
	for i, ln := range lines {
		trimmed := strings.TrimLeft(ln, " \t")
		lineLevel := level
		level += strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
		if i == 0 {
			b.WriteString(ln)
			continue
		}
		if strings.HasPrefix(trimmed, "}") {
			lineLevel--
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat("\t", max(lineLevel, 0)))
		b.WriteString(trimmed)
	}
	b.WriteString("\n")
}
