// Package parser converts a ptoken.Token stream into an ordered tree of
// pir.Node values using two-token lookahead, per spec §4.2.
package parser

import (
	"errors"
	"strings"

	"github.com/signadot/paradoxfmt/internal/pir"
	"github.com/signadot/paradoxfmt/internal/ptoken"
)

// ErrParse is the parser's sentinel error. Parse itself never returns it:
// its only error is a tokenizer error (wrapping ptoken.ErrTokenize), and
// malformed structure yields a best-effort tree instead.
var ErrParse = errors.New("parse error")

// rawBlockKeys names the contexts that allow lexical forms the optimizer
// must not rewrite (spec §4.2, §6 "Raw-block keys").
var rawBlockKeys = map[string]bool{
	"in_breach_of":    true,
	"inverted_switch": true,
}

// Parse tokenizes and parses src into an ordered list of top-level nodes.
func Parse(src string) ([]*pir.Node, error) {
	toks, err := ptoken.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	children, _ := p.parseList(true)
	return associateComments(children), nil
}

type parser struct {
	src  string
	toks []ptoken.Token
	pi   int
}

func (p *parser) tok() *ptoken.Token {
	if p.pi >= len(p.toks) {
		return nil
	}
	return &p.toks[p.pi]
}

// parseList parses a sequence of items until EOF or (when not topLevel) a
// closing brace. It returns the parsed children and, for a non-top-level
// call, the source line the closing brace was found on (0 if the input ran
// out first -- a missing closing brace, per spec's failure mode).
func (p *parser) parseList(topLevel bool) ([]*pir.Node, int) {
	var children []*pir.Node
	for {
		t := p.tok()
		if t == nil {
			return children, 0
		}
		if t.Kind == ptoken.Comment {
			children = append(children, pir.NewComment(t.Text))
			p.pi++
			continue
		}
		if t.Kind == ptoken.Op && t.Text == "}" {
			if topLevel {
				// Stray closing brace at the top level: terminate
				// parsing, dropping the remainder (spec's failure mode).
				return children, 0
			}
			closeLine := t.Line
			p.pi++
			return children, closeLine
		}
		node := p.parseItem()
		if node != nil {
			children = append(children, node)
		}
	}
}

// peekNonComment returns the index and token of the next non-Comment token
// at or after from, without consuming anything.
func (p *parser) peekNonComment(from int) (int, *ptoken.Token) {
	i := from
	for i < len(p.toks) && p.toks[i].Kind == ptoken.Comment {
		i++
	}
	if i >= len(p.toks) {
		return i, nil
	}
	return i, &p.toks[i]
}

func (p *parser) peekAt(i int) *ptoken.Token {
	if i < 0 || i >= len(p.toks) {
		return nil
	}
	return &p.toks[i]
}

func isOp(t *ptoken.Token, text string) bool {
	return t != nil && t.Kind == ptoken.Op && t.Text == text
}

// parseItem parses one key-led item: a raw block, a leaf, a block entry, or
// a standalone word, per the disambiguation rules of spec §4.2.
func (p *parser) parseItem() *pir.Node {
	keyTok := p.toks[p.pi]
	key := keyTok.Text
	p.pi++

	if rawBlockKeys[key] && isOp(p.tok(), "=") && isOp(p.peekAt(p.pi+1), "{") {
		return p.parseRawBlock(key)
	}

	opIdx, opTok := p.peekNonComment(p.pi)
	switch {
	case opTok != nil && opTok.Kind == ptoken.Op && opTok.Text == "{":
		// Operator-less block: key { ... }.
		p.pi = opIdx + 1
		return p.parseBlockEntry(key, pir.OpNone, false, "", false, keyTok.Start)

	case opTok != nil && opTok.Kind == ptoken.Op && opTok.Text != "}":
		op, ok := pir.ParseOp(opTok.Text)
		if !ok {
			// Defensive: an unrecognized operator token can't start a
			// value; fall through to a standalone word so parsing makes
			// progress rather than looping.
			return pir.NewStandalone(key)
		}
		p.pi = opIdx + 1
		return p.parseAfterOp(key, op, keyTok.Start)

	default:
		return pir.NewStandalone(key)
	}
}

// parseAfterOp parses the value following "key OP", per spec §4.2: a block,
// a "val_key {" block, or a plain leaf value.
func (p *parser) parseAfterOp(key string, op pir.Op, keyStart int) *pir.Node {
	valIdx, valTok := p.peekNonComment(p.pi)
	if valTok == nil {
		return pir.NewLeaf(key, op, "")
	}
	if valTok.Kind == ptoken.Op && valTok.Text == "{" {
		p.pi = valIdx + 1
		return p.parseBlockEntry(key, op, true, "", false, keyStart)
	}

	// Tentatively take V, then look past comments for a following '{'.
	vTok := p.toks[valIdx]
	nextIdx, nextTok := p.peekNonComment(valIdx + 1)
	if nextTok != nil && nextTok.Kind == ptoken.Op && nextTok.Text == "{" {
		p.pi = nextIdx + 1
		return p.parseBlockEntry(key, op, true, vTok.Text, true, keyStart)
	}

	p.pi = valIdx + 1
	node := pir.NewLeaf(key, op, vTok.Text)
	p.attachInlineComment(node, vTok.Line)
	return node
}

// parseBlockEntry parses a block body (p.pi already past the opening '{')
// and assembles the Entry node, handling the open/close comment slots and
// the switch raw-span capture.
func (p *parser) parseBlockEntry(key string, op pir.Op, hasOp bool, valKey string, hasValKey bool, keyStart int) *pir.Node {
	openTok := p.toks[p.pi-1]
	var openComment string
	hasOpenComment := false
	if t := p.tok(); t != nil && t.Kind == ptoken.Comment && t.Line == openTok.Line {
		openComment = t.Text
		hasOpenComment = true
		p.pi++
	}
	children, closeLine := p.parseList(false)
	node := pir.NewBlock(key, op, hasOp, children)
	node.HasValKey = hasValKey
	node.ValKey = valKey
	if hasOpenComment {
		node.Comments.HasOpen = true
		node.Comments.Open = openComment
	}
	if t := p.tok(); t != nil && t.Kind == ptoken.Comment && t.Line == closeLine {
		node.Comments.HasClose = true
		node.Comments.Close = t.Text
		p.pi++
	}
	p.maybeCaptureSwitchSpan(node, key, keyStart)
	return node
}

// parseRawBlock implements the raw-block special case of spec §4.2.
func (p *parser) parseRawBlock(key string) *pir.Node {
	p.pi++ // '='
	openTok := p.toks[p.pi]
	start := openTok.Start
	depth := 0
	for p.pi < len(p.toks) {
		t := &p.toks[p.pi]
		switch {
		case t.Kind == ptoken.Op && t.Text == "{":
			depth++
			p.pi++
		case t.Kind == ptoken.Op && t.Text == "}":
			depth--
			p.pi++
			if depth == 0 {
				return pir.NewRawBlock(p.src[start:t.End], pir.ByteSpan{Start: start, End: t.End, Line: openTok.Line})
			}
		default:
			p.pi++
		}
	}
	// Unbalanced: best effort, take everything seen.
	return pir.NewRawBlock(p.src[start:], pir.ByteSpan{Start: start, End: len(p.src), Line: openTok.Line})
}

// maybeCaptureSwitchSpan records the verbatim span of a "switch"-keyed
// block (case-insensitively) so the printer can fall back to it per spec
// §4.5 "Switch preservation". p.pi is just past the closing brace this
// block's parseList call consumed.
func (p *parser) maybeCaptureSwitchSpan(node *pir.Node, key string, keyStart int) {
	if !strings.EqualFold(key, "switch") || p.pi == 0 {
		return
	}
	closeTok := &p.toks[p.pi-1]
	if closeTok.Kind != ptoken.Op || closeTok.Text != "}" {
		return
	}
	node.RawText = p.src[keyStart:closeTok.End]
	node.HasRawText = true
}

// attachInlineComment attaches a trailing comment on the same source line
// as a leaf's value, per spec §4.2 "Inline comment attachment".
func (p *parser) attachInlineComment(node *pir.Node, valueLine int) {
	t := p.tok()
	if t == nil || t.Kind != ptoken.Comment || t.Line != valueLine {
		return
	}
	node.Comments.HasInline = true
	node.Comments.Inline = t.Text
	p.pi++
}
