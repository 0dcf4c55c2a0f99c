package parsec

import "fmt"

// Unit is the empty value, used by combinators that parse something but
// carry no meaningful result (e.g. discarding a matched token).
type Unit struct{}

// Parser is the single contract every combinator in this package
// produces and consumes: a pure function from a Source[T] to a
// ParseResult[T, A], paired with a human-readable description used only
// for diagnostics. Parser values are immutable after construction and
// may be invoked arbitrarily many times, concurrently, on independent
// Sources.
type Parser[T, A any] struct {
	run  func(Source[T]) ParseResult[T, A]
	desc string
}

// New constructs a Parser from its invocation function and a
// description. Most callers should use the combinators in this package
// rather than New directly.
func New[T, A any](desc string, run func(Source[T]) ParseResult[T, A]) Parser[T, A] {
	return Parser[T, A]{run: run, desc: desc}
}

// Run invokes p against s. Run never panics on account of s; it may
// panic if a user-supplied closure (passed to Map, Filter, Chain, or an
// operator table mapping) panics — the core does not recover from user
// closures, per the library's error-handling design.
func (p Parser[T, A]) Run(s Source[T]) ParseResult[T, A] {
	return p.run(s)
}

// Describe returns p's diagnostic description. Description strings are
// never used for control flow; they exist to build useful Failure/Error
// messages and may be computed lazily by combinators that wrap p.
func (p Parser[T, A]) Describe() string {
	return p.desc
}

// Named returns a Parser identical to p except that every Failure or
// Error p returns, wherever inside p it was raised, is reported as
// "name failed: ..." at the same Location.
// Named is grounded in the teacher's Name combinator.
func Named[T, A any](name string, p Parser[T, A]) Parser[T, A] {
	return New(name, func(s Source[T]) ParseResult[T, A] {
		r := p.Run(s)
		if r.IsNoSuccess() {
			expected := fmt.Sprintf("%s failed: %s", name, r.Expected())
			if r.IsError() {
				return Abort[T, A](r.At(), expected)
			}

			return Fail[T, A](r.At(), expected)
		}

		return r
	})
}

// Return constructs a Parser that always succeeds with value v without
// consuming any input.
func Return[T, A any](v A) Parser[T, A] {
	return New[T, A]("return", func(s Source[T]) ParseResult[T, A] {
		return Succeed(s, v)
	})
}

// FailWith constructs a Parser that always fails (recoverably) with the
// given expected description, at whatever Location it is invoked.
func FailWith[T, A any](expected string) Parser[T, A] {
	return New[T, A](expected, func(s Source[T]) ParseResult[T, A] {
		return Fail[T, A](s.Location(), expected)
	})
}

// Satisfy constructs a Parser that consumes a single token for which
// pred holds, returning that token. If the Source is exhausted or pred
// rejects the head token, Satisfy fails recoverably at the Source's
// current Location without consuming input. Satisfy is the primitive
// every concrete literal parser (digits, runes, keyword tokens, ...) is
// ultimately built from.
func Satisfy[T any](expected string, pred func(T) bool) Parser[T, T] {
	return New(expected, func(s Source[T]) ParseResult[T, T] {
		head, ok := s.Head()
		if !ok || !pred(head) {
			return Fail[T, T](s.Location(), expected)
		}

		return Succeed(s.Advance(), head)
	})
}

// MapParser transforms the value produced by p using f. NoSuccess
// results pass through unchanged. f is a pure value transform; if f must
// be able to fail, pair MapParser with Filter or report failure via a
// panic-free sentinel value checked by a subsequent Filter.
func MapParser[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return New(p.Describe(), func(s Source[T]) ParseResult[T, B] {
		return Map(p.Run(s), f)
	})
}

// Filter accepts the value produced by p only when pred holds. If pred
// rejects the value, Filter converts the result to a Failure with
// expected "filter" at the *original* input Location (not p's rest),
// per the core's filter semantics. NoSuccess results pass through
// unchanged.
func Filter[T, A any](p Parser[T, A], pred func(A) bool) Parser[T, A] {
	return New(p.Describe(), func(s Source[T]) ParseResult[T, A] {
		r := p.Run(s)
		if !r.IsSuccess() {
			return r
		}

		if !pred(r.Value()) {
			return Fail[T, A](s.Location(), "filter")
		}

		return r
	})
}
