package parsec

import "sync"

// Defer wraps a zero-argument producer of a Parser, evaluating it at
// most once. The first invocation computes and caches the inner Parser;
// every later invocation reuses the cached value. Defer is how a parser
// expression refers to another parser not yet defined in construction
// order — the thunk is only called the first time the returned Parser
// is actually run, never during construction.
//
// The one-time initialization is published under sync.Once, so the
// memoized inner Parser is safe to race from concurrent first
// invocations on independent Sources.
func Defer[T, A any](thunk func() Parser[T, A]) Parser[T, A] {
	var (
		once sync.Once
		p    Parser[T, A]
	)

	return New("defer", func(s Source[T]) ParseResult[T, A] {
		once.Do(func() {
			p = thunk()
		})

		return p.Run(s)
	})
}

// Recursive constructs the fixpoint P of f, i.e. a Parser P such that
// P = f(P). f receives a reference to P itself and must use it to build
// P's body; f is only invoked once, lazily, on the fixpoint's first
// parse — never during construction — so f may freely embed the
// recursive reference without causing unbounded recursion while
// building the combinator graph.
func Recursive[T, A any](f func(Parser[T, A]) Parser[T, A]) Parser[T, A] {
	var (
		once sync.Once
		body Parser[T, A]
		self Parser[T, A]
	)

	self = New("recursive", func(s Source[T]) ParseResult[T, A] {
		once.Do(func() {
			body = f(self)
		})

		return body.Run(s)
	})

	return self
}
