package ast

// Builder is a fluent constructor for Query trees, for programmatic clients
// that would rather not write query text. Each call appends one step to the
// accumulated sequence; Build collapses the sequence into a single Query.
//
//	q := ast.NewBuilder().
//		Field("users").
//		IndexWildcard().
//		Field("name").
//		Build()
type Builder struct {
	steps []*Query
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Field appends a literal field step.
func (b *Builder) Field(name string) *Builder {
	b.steps = append(b.steps, NewField(name))
	return b
}

// Index appends a literal array-index step.
func (b *Builder) Index(i uint32) *Builder {
	b.steps = append(b.steps, NewIndex(i))
	return b
}

// Slice appends an inclusive array index-range step. Returns an error
// instead of panicking when start > end, so callers building queries from
// untrusted input can surface a clean message.
func (b *Builder) Slice(start, end uint32) (*Builder, error) {
	if start > end {
		return b, &RangeError{Start: start, End: end}
	}
	b.steps = append(b.steps, NewSlice(start, end))
	return b, nil
}

// FieldWildcard appends a step matching any single object edge.
func (b *Builder) FieldWildcard() *Builder {
	b.steps = append(b.steps, NewFieldWildcard())
	return b
}

// IndexWildcard appends a step matching any single array edge.
func (b *Builder) IndexWildcard() *Builder {
	b.steps = append(b.steps, NewIndexWildcard())
	return b
}

// Alt appends the disjunction of the queries built by each sub-builder
// function. Each function receives a fresh Builder and returns the Query it
// built via Build.
func (b *Builder) Alt(branches ...func(*Builder) *Query) *Builder {
	built := make([]*Query, len(branches))
	for i, fn := range branches {
		built[i] = fn(NewBuilder())
	}
	b.steps = append(b.steps, AltAll(built...))
	return b
}

// Star appends the Kleene closure of the query built by sub.
func (b *Builder) Star(sub func(*Builder) *Query) *Builder {
	b.steps = append(b.steps, NewStar(sub(NewBuilder())))
	return b
}

// Opt appends the optional form of the query built by sub.
func (b *Builder) Opt(sub func(*Builder) *Query) *Builder {
	b.steps = append(b.steps, NewOpt(sub(NewBuilder())))
	return b
}

// Build returns the Seq of every accumulated step, or Empty if none were
// added.
func (b *Builder) Build() *Query {
	return SeqAll(b.steps...)
}

// RangeError reports an invalid Slice(start, end) with start > end.
type RangeError struct {
	Start, End uint32
}

func (e *RangeError) Error() string {
	return "ast: invalid slice range: start must be <= end"
}
