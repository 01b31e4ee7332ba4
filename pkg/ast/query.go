// Package ast defines the path-regex abstract syntax tree: a small, closed
// set of node kinds, represented as a tagged union rather than an interface
// hierarchy. The variant set is fixed and exhaustively switched over by the
// compiler and printer, so a sum type gives clearer code than subtype
// polymorphism would here.
package ast

import "fmt"

// Kind tags the variant a Query node holds.
type Kind uint8

const (
	Empty Kind = iota
	Field
	Index
	Slice
	FieldWildcard
	IndexWildcard
	Seq
	Alt
	Star
	Opt
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Field:
		return "Field"
	case Index:
		return "Index"
	case Slice:
		return "Slice"
	case FieldWildcard:
		return "FieldWildcard"
	case IndexWildcard:
		return "IndexWildcard"
	case Seq:
		return "Seq"
	case Alt:
		return "Alt"
	case Star:
		return "Star"
	case Opt:
		return "Opt"
	default:
		return "Unknown"
	}
}

// Query is a path-regex expression node. Exactly one group of fields is
// meaningful per Kind:
//
//	Field:  FieldName
//	Index:  IndexValue
//	Slice:  SliceBounds (inclusive, start <= end)
//	Seq, Alt: Left, Right
//	Star, Opt: Left
//
// All other Kinds carry no payload.
type Query struct {
	kind Kind

	fieldName  string
	indexValue uint32
	sliceStart uint32
	sliceEnd   uint32

	left  *Query
	right *Query
}

// Kind returns the node's variant tag.
func (q *Query) Kind() Kind {
	if q == nil {
		return Empty
	}
	return q.kind
}

// FieldName returns the literal field name of a Field node.
func (q *Query) FieldName() string { return q.fieldName }

// IndexValue returns the literal array index of an Index node.
func (q *Query) IndexValue() uint32 { return q.indexValue }

// SliceBounds returns the inclusive [start, end] bounds of a Slice node.
func (q *Query) SliceBounds() (start, end uint32) { return q.sliceStart, q.sliceEnd }

// Left returns the sole or first child of Seq, Alt, Star, and Opt nodes.
func (q *Query) Left() *Query { return q.left }

// Right returns the second child of Seq and Alt nodes.
func (q *Query) Right() *Query { return q.right }

// NewField builds a literal field-name step.
func NewField(name string) *Query {
	return &Query{kind: Field, fieldName: name}
}

// NewIndex builds a literal array-index step.
func NewIndex(i uint32) *Query {
	return &Query{kind: Index, indexValue: i}
}

// NewSlice builds an inclusive index-range step. The caller must ensure
// start <= end; NewSlice does not validate (the parser and Builder do, and
// return an error instead of panicking on bad input).
func NewSlice(start, end uint32) *Query {
	return &Query{kind: Slice, sliceStart: start, sliceEnd: end}
}

// NewFieldWildcard builds a step matching exactly one object edge.
func NewFieldWildcard() *Query {
	return &Query{kind: FieldWildcard}
}

// NewIndexWildcard builds a step matching exactly one array edge.
func NewIndexWildcard() *Query {
	return &Query{kind: IndexWildcard}
}

// NewEmpty builds the empty path, which matches only the document root.
func NewEmpty() *Query {
	return &Query{kind: Empty}
}

// NewSeq concatenates a then b. Empty on either side is absorbed, since
// Empty contributes no step to traverse.
func NewSeq(a, b *Query) *Query {
	if a.Kind() == Empty {
		return b
	}
	if b.Kind() == Empty {
		return a
	}
	return &Query{kind: Seq, left: a, right: b}
}

// NewAlt builds the disjunction of a and b.
func NewAlt(a, b *Query) *Query {
	return &Query{kind: Alt, left: a, right: b}
}

// NewStar builds the Kleene closure of a. Star never wraps Empty: zero or
// more repetitions of "nothing" is just nothing.
func NewStar(a *Query) *Query {
	if a.Kind() == Empty {
		return a
	}
	return &Query{kind: Star, left: a}
}

// NewOpt builds the optional form of a, semantically Alt(a, Empty). Opt
// never wraps Empty for the same reason Star doesn't.
func NewOpt(a *Query) *Query {
	if a.Kind() == Empty {
		return a
	}
	return &Query{kind: Opt, left: a}
}

// SeqAll folds steps left-to-right with NewSeq, returning Empty for a
// zero-length input. This is what Builder.Build uses to assemble the
// accumulated steps of a fluent construction.
func SeqAll(steps ...*Query) *Query {
	if len(steps) == 0 {
		return NewEmpty()
	}
	result := steps[0]
	for _, s := range steps[1:] {
		result = NewSeq(result, s)
	}
	return result
}

// AltAll folds branches left-to-right with NewAlt. Panics on an empty
// branch list: an alternation needs at least one branch to be meaningful.
func AltAll(branches ...*Query) *Query {
	if len(branches) == 0 {
		panic("ast: AltAll requires at least one branch")
	}
	result := branches[0]
	for _, b := range branches[1:] {
		result = NewAlt(result, b)
	}
	return result
}

// Equal reports whether two queries are structurally identical. Seq and Alt
// are not flattened for comparison: associativity is semantically
// irrelevant but not a structural identity, so (a.b).c and a.(b.c) compare
// unequal unless the caller has already canonicalized them.
func Equal(a, b *Query) bool {
	ak, bk := a.Kind(), b.Kind()
	if ak != bk {
		return false
	}
	switch ak {
	case Empty, FieldWildcard, IndexWildcard:
		return true
	case Field:
		return a.fieldName == b.fieldName
	case Index:
		return a.indexValue == b.indexValue
	case Slice:
		return a.sliceStart == b.sliceStart && a.sliceEnd == b.sliceEnd
	case Seq, Alt:
		return Equal(a.left, b.left) && Equal(a.right, b.right)
	case Star, Opt:
		return Equal(a.left, b.left)
	default:
		return false
	}
}

// String renders the canonical query text for a node, used for debugging,
// error messages, and the parse-render round trip. Rendering always
// produces the minimal parenthesization needed for the sequence grammar of
// §4.2: Alt and Seq branches that are themselves Alt get parenthesized,
// postfix operators bind to the nearest atom.
func (q *Query) String() string {
	return render(q, precLowest)
}

// precedence levels, lowest to highest, mirroring the grammar in §4.2.
const (
	precLowest = iota
	precAlt
	precSeq
	precPostfix
)

func render(q *Query, minPrec int) string {
	if q == nil {
		return ""
	}
	switch q.kind {
	case Empty:
		return ""
	case Field:
		return QuoteField(q.fieldName)
	case Index:
		return fmt.Sprintf("[%d]", q.indexValue)
	case Slice:
		return fmt.Sprintf("[%d:%d]", q.sliceStart, q.sliceEnd)
	case FieldWildcard:
		return "*"
	case IndexWildcard:
		return "[*]"
	case Star:
		return wrap(render(q.left, precPostfix)+"*", precPostfix, minPrec)
	case Opt:
		return wrap(render(q.left, precPostfix)+"?", precPostfix, minPrec)
	case Seq:
		s := render(q.left, precSeq) + renderStepSeparator(q.right) + render(q.right, precSeq)
		return wrap(s, precSeq, minPrec)
	case Alt:
		s := render(q.left, precAlt+1) + "|" + render(q.right, precAlt+1)
		return wrap(s, precAlt, minPrec)
	default:
		return ""
	}
}

// renderStepSeparator omits the '.' before an index step, matching the
// parser's acceptance of "foo[0]" as well as "foo.[0]".
func renderStepSeparator(right *Query) string {
	switch right.Kind() {
	case Index, Slice, IndexWildcard:
		return ""
	default:
		return "."
	}
}

func wrap(s string, prec, minPrec int) string {
	if prec < minPrec {
		return "(" + s + ")"
	}
	return s
}
