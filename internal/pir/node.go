// Package pir provides the intermediate representation for parsed Paradox
// script documents.
//
// A Node is a tagged variant with three shapes, matching the grammar a
// Paradox-style scripting language actually allows: a standalone Comment
// line, a verbatim RawBlock (for the handful of contexts the optimizer must
// never touch), and an Entry (an ordinary key/value pair or block). Entry's
// value is itself one of three shapes -- unset, a leaf string, or an ordered
// list of children -- captured here by ValueKind rather than by a second
// Go-level sum type, since every Entry already carries both possible
// payloads (Leaf and Children) and ValueKind just says which one is live.
package pir

// Kind tags the three node shapes described in spec §3.
type Kind int

const (
	// Comment is a standalone or attached comment line.
	Comment Kind = iota
	// RawBlock is a textual fragment preserved verbatim.
	RawBlock
	// Entry is an ordinary key/value pair or block.
	Entry
)

func (k Kind) String() string {
	switch k {
	case Comment:
		return "Comment"
	case RawBlock:
		return "RawBlock"
	case Entry:
		return "Entry"
	default:
		return "Kind(?)"
	}
}

// ValueKind distinguishes the three shapes an Entry's value can take.
type ValueKind int

const (
	// ValueNone marks a standalone word with no value (no operator, no block).
	ValueNone ValueKind = iota
	// ValueLeaf marks a leaf string value.
	ValueLeaf
	// ValueBlock marks an ordered list of children.
	ValueBlock
)

// Op is one of the six comparison operators, or OpNone when a block follows
// the key directly with no operator (e.g. "hsv { ... }").
type Op int

const (
	OpNone Op = iota
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

// Flip returns the negated comparison operator: < <-> >=, > <-> <=, = <-> !=.
// OpNone has no negation and is returned unchanged.
func (o Op) Flip() Op {
	switch o {
	case OpEq:
		return OpNe
	case OpNe:
		return OpEq
	case OpLt:
		return OpGe
	case OpGe:
		return OpLt
	case OpGt:
		return OpLe
	case OpLe:
		return OpGt
	default:
		return o
	}
}

func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return ""
	}
}

// ParseOp maps operator token text to an Op.
func ParseOp(s string) (Op, bool) {
	switch s {
	case "=":
		return OpEq, true
	case "!=":
		return OpNe, true
	case "<":
		return OpLt, true
	case "<=":
		return OpLe, true
	case ">":
		return OpGt, true
	case ">=":
		return OpGe, true
	default:
		return OpNone, false
	}
}

// ByteSpan locates a node's source text, used by the printer's raw-switch
// preservation (spec §4.5) and the parser's raw-block special case (§4.2).
type ByteSpan struct {
	Start, End int
	Line       int
}

// Comments holds the (up to) four distinct comment slots a node can carry,
// per spec §3.
type Comments struct {
	// Preceding comment lines immediately above this node. Moving a node
	// moves its Preceding comments with it (spec invariant).
	Preceding []string
	// Inline is the trailing comment on the same source line as a leaf.
	Inline string
	HasInline bool
	// Open is the comment on the line of a block's opening brace.
	Open string
	HasOpen bool
	// Close is the comment on the line of a block's closing brace.
	Close string
	HasClose bool
}

// Empty reports whether no comment slot carries anything.
func (c *Comments) Empty() bool {
	return len(c.Preceding) == 0 && !c.HasInline && !c.HasOpen && !c.HasClose
}

// Node is the tagged variant described in spec §3.
type Node struct {
	Kind Kind

	// Comment / RawBlock payload.
	Text string
	Span ByteSpan

	// Entry payload.
	Key      string
	Op       Op
	HasOp    bool
	ValKey   string
	HasValKey bool
	ValueKind ValueKind
	Leaf      string
	Children  []*Node

	Comments Comments

	// RawText is the verbatim source span a block entry was parsed from,
	// captured only for keys the printer may fall back to verbatim
	// rendering for (currently "switch", per spec §4.5 "Switch
	// preservation"). Empty/HasRawText=false for every other node.
	RawText    string
	HasRawText bool
}

// NewComment builds a standalone Comment node.
func NewComment(text string) *Node {
	return &Node{Kind: Comment, Text: text}
}

// NewRawBlock builds a RawBlock node preserving a verbatim source span.
func NewRawBlock(text string, span ByteSpan) *Node {
	return &Node{Kind: RawBlock, Text: text, Span: span}
}

// NewStandalone builds a standalone Entry{key, value=unset}.
func NewStandalone(key string) *Node {
	return &Node{Kind: Entry, Key: key, ValueKind: ValueNone}
}

// NewLeaf builds a leaf Entry{key, op, value}.
func NewLeaf(key string, op Op, value string) *Node {
	return &Node{Kind: Entry, Key: key, Op: op, HasOp: true, ValueKind: ValueLeaf, Leaf: value}
}

// NewBlock builds a block Entry{key, op?, value=children}. Pass hasOp=false
// for an operator-less block ("key { ... }").
func NewBlock(key string, op Op, hasOp bool, children []*Node) *Node {
	return &Node{Kind: Entry, Key: key, Op: op, HasOp: hasOp, ValueKind: ValueBlock, Children: children}
}

// IsBlock reports whether n is an Entry with block value.
func (n *Node) IsBlock() bool {
	return n != nil && n.Kind == Entry && n.ValueKind == ValueBlock
}

// IsLeaf reports whether n is an Entry with a leaf value.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Kind == Entry && n.ValueKind == ValueLeaf
}

// IsComment reports whether n is a standalone Comment.
func (n *Node) IsComment() bool {
	return n != nil && n.Kind == Comment
}

// KeyEquals does a case-sensitive key comparison against a node of kind
// Entry; it reports false for a nil node or any other kind.
func (n *Node) KeyEquals(key string) bool {
	return n != nil && n.Kind == Entry && n.Key == key
}

// Clone performs a deep copy of n, including its subtree and comments, but
// not its identity with any parent (pir nodes carry no parent pointer -- the
// rewriter and parser only ever hold child-list ownership, never navigate
// upward, so there is nothing to fix up on a copy).
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	cp.Comments.Preceding = append([]string(nil), n.Comments.Preceding...)
	if n.Children != nil {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.Clone()
		}
	}
	return &cp
}

// CloneList deep-copies a slice of nodes.
func CloneList(ns []*Node) []*Node {
	out := make([]*Node, len(ns))
	for i, n := range ns {
		out[i] = n.Clone()
	}
	return out
}
