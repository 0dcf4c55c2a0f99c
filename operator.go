package parsec

import "sort"

// Assoc names the classical operator-precedence associativity
// parameters an operator table entry can carry.
type Assoc int

const (
	// LEFT groups a chain of equal-priority operators to the left:
	// a op b op c ≡ (a op b) op c.
	LEFT Assoc = iota
	// RIGHT groups a chain of equal-priority operators to the right:
	// a op b op c ≡ a op (b op c).
	RIGHT
	// NONE rejects more than one occurrence of the operator at a given
	// priority: a op b op c is not accepted, only a op b or a alone.
	NONE
	// PREFIX applies a unary operator to the operand on its right,
	// e.g. -a.
	PREFIX
	// POSTFIX applies a unary operator to the operand on its left,
	// e.g. a++.
	POSTFIX
)

// DefaultPriority is the priority assigned to an operator table entry
// whose priority is not specified.
const DefaultPriority = 7

// Table builds a single Parser[T, E] out of an atom parser and a bag of
// declaratively registered operator entries. T is the token type, K is
// the type produced by each operator's token parser, E is the expression
// type the whole cascade produces.
//
// Construction is side-effect-free beyond populating the table; Build
// produces the final parser. A Table is not safe for concurrent
// registration, but the Parser returned by Build is, like every other
// Parser in this package.
type Table[T, K, E any] struct {
	base    Parser[T, E]
	entries []tableEntry[T, K, E]
}

type tableEntry[T, K, E any] struct {
	op       Parser[T, K]
	priority int
	assoc    Assoc
	binary   func(E, K, E) E
	unary    func(E, K) E
}

// NewTable starts a new operator table cascade rooted at the given atom
// parser (the lowest-precedence-independent parser, e.g. a literal or a
// parenthesized sub-expression).
func NewTable[T, K, E any](base Parser[T, E]) *Table[T, K, E] {
	return &Table[T, K, E]{base: base}
}

func priorityOrDefault(priority []int) int {
	if len(priority) == 0 {
		return DefaultPriority
	}

	return priority[0]
}

// InfixL registers a left-associative binary operator. priority
// defaults to DefaultPriority when omitted.
func (t *Table[T, K, E]) InfixL(op Parser[T, K], mapping func(E, K, E) E, priority ...int) *Table[T, K, E] {
	t.entries = append(t.entries, tableEntry[T, K, E]{op: op, priority: priorityOrDefault(priority), assoc: LEFT, binary: mapping})
	return t
}

// InfixR registers a right-associative binary operator. priority
// defaults to DefaultPriority when omitted.
func (t *Table[T, K, E]) InfixR(op Parser[T, K], mapping func(E, K, E) E, priority ...int) *Table[T, K, E] {
	t.entries = append(t.entries, tableEntry[T, K, E]{op: op, priority: priorityOrDefault(priority), assoc: RIGHT, binary: mapping})
	return t
}

// InfixN registers a non-associative binary operator: at most one
// occurrence is accepted at this priority. priority defaults to
// DefaultPriority when omitted.
func (t *Table[T, K, E]) InfixN(op Parser[T, K], mapping func(E, K, E) E, priority ...int) *Table[T, K, E] {
	t.entries = append(t.entries, tableEntry[T, K, E]{op: op, priority: priorityOrDefault(priority), assoc: NONE, binary: mapping})
	return t
}

// Prefix registers a unary prefix operator. priority defaults to
// DefaultPriority when omitted.
func (t *Table[T, K, E]) Prefix(op Parser[T, K], mapping func(E, K) E, priority ...int) *Table[T, K, E] {
	t.entries = append(t.entries, tableEntry[T, K, E]{op: op, priority: priorityOrDefault(priority), assoc: PREFIX, unary: mapping})
	return t
}

// Postfix registers a unary postfix operator. priority defaults to
// DefaultPriority when omitted.
func (t *Table[T, K, E]) Postfix(op Parser[T, K], mapping func(E, K) E, priority ...int) *Table[T, K, E] {
	t.entries = append(t.entries, tableEntry[T, K, E]{op: op, priority: priorityOrDefault(priority), assoc: POSTFIX, unary: mapping})
	return t
}

type tableKey struct {
	priority int
	assoc    Assoc
}

// Build compiles the registered entries into a single Parser[T, E]. An
// empty table returns the base parser verbatim.
//
// Entries are grouped by (priority, assoc) and the groups are layered
// from highest priority (binds tightest, built closest to the atom)
// to lowest. Groups sharing a priority are layered in ascending Assoc
// order (LEFT, RIGHT, NONE, PREFIX, POSTFIX) — this ordering is
// observable whenever the same priority carries more than one
// associativity, so callers relying on it should keep this constant in
// mind.
func (t *Table[T, K, E]) Build() Parser[T, E] {
	if len(t.entries) == 0 {
		return t.base
	}

	groups := make(map[tableKey][]tableEntry[T, K, E])
	for _, e := range t.entries {
		key := tableKey{priority: e.priority, assoc: e.assoc}
		groups[key] = append(groups[key], e)
	}

	keys := make([]tableKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].priority != keys[j].priority {
			return keys[i].priority > keys[j].priority
		}

		return keys[i].assoc < keys[j].assoc
	})

	current := t.base
	for _, key := range keys {
		current = layer(current, groups[key], key.assoc)
	}

	return current
}

func layer[T, K, E any](current Parser[T, E], group []tableEntry[T, K, E], assoc Assoc) Parser[T, E] {
	switch assoc {
	case LEFT:
		op := binaryOpParser(group)
		return Zip(
			current,
			Many(Zip(op, current, MakePair[func(E, E) E, E])),
			func(first E, rest []Pair[func(E, E) E, E]) E {
				acc := first
				for _, pr := range rest {
					acc = pr.Left(acc, pr.Right)
				}

				return acc
			},
		)
	case RIGHT:
		op := binaryOpParser(group)
		return Zip(
			Many(Zip(current, op, MakePair[E, func(E, E) E])),
			current,
			func(pairs []Pair[E, func(E, E) E], last E) E {
				acc := last
				for i := len(pairs) - 1; i >= 0; i-- {
					acc = pairs[i].Right(pairs[i].Left, acc)
				}

				return acc
			},
		)
	case NONE:
		op := binaryOpParser(group)
		return Zip(
			current,
			OrNot(Zip(op, current, MakePair[func(E, E) E, E])),
			func(l E, maybe *Pair[func(E, E) E, E]) E {
				if maybe == nil {
					return l
				}

				return maybe.Left(l, maybe.Right)
			},
		)
	case PREFIX:
		op := unaryOpParser(group)
		return Zip(
			Many(op),
			current,
			func(ops []func(E) E, inner E) E {
				acc := inner
				for i := len(ops) - 1; i >= 0; i-- {
					acc = ops[i](acc)
				}

				return acc
			},
		)
	case POSTFIX:
		op := unaryOpParser(group)
		return Zip(
			current,
			Many(op),
			func(inner E, ops []func(E) E) E {
				acc := inner
				for _, op := range ops {
					acc = op(acc)
				}

				return acc
			},
		)
	default:
		panic("parsec: unknown Assoc in operator table")
	}
}

func binaryOpParser[T, K, E any](group []tableEntry[T, K, E]) Parser[T, func(E, E) E] {
	fns := make([]Parser[T, func(E, E) E], len(group))
	for i, e := range group {
		mapping := e.binary
		fns[i] = MapParser(e.op, func(k K) func(E, E) E {
			return func(l, r E) E { return mapping(l, k, r) }
		})
	}

	return Choice(fns...)
}

func unaryOpParser[T, K, E any](group []tableEntry[T, K, E]) Parser[T, func(E) E] {
	fns := make([]Parser[T, func(E) E], len(group))
	for i, e := range group {
		mapping := e.unary
		fns[i] = MapParser(e.op, func(k K) func(E) E {
			return func(x E) E { return mapping(x, k) }
		})
	}

	return Choice(fns...)
}
