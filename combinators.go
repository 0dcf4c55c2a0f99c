package parsec

import "fmt"

// Zip runs p, then q at p's rest, and combines their values with f. If
// either p or q yields a NoSuccess, that NoSuccess is returned verbatim
// (re-tagged to the combined value type).
func Zip[T, A, B, C any](p Parser[T, A], q Parser[T, B], f func(A, B) C) Parser[T, C] {
	return New(fmt.Sprintf("%s then %s", p.Describe(), q.Describe()), func(s Source[T]) ParseResult[T, C] {
		pr := p.Run(s)
		if !pr.IsSuccess() {
			return noSuccess[T, A, C](pr)
		}

		qr := q.Run(pr.Rest())
		if !qr.IsSuccess() {
			return noSuccess[T, B, C](qr)
		}

		return Succeed(qr.Rest(), f(pr.Value(), qr.Value()))
	})
}

// Zip3 is surface sugar over two nested Zip calls, running p, q, and r
// in sequence and combining their three values with f.
func Zip3[T, A, B, C, D any](p Parser[T, A], q Parser[T, B], r Parser[T, C], f func(A, B, C) D) Parser[T, D] {
	return Zip(
		Zip(p, q, MakePair[A, B]),
		r,
		func(pair Pair[A, B], c C) D {
			return f(pair.Left, pair.Right, c)
		},
	)
}

// Sequence runs each Parser in ps, in order, against successive rests,
// and returns the slice of their values. An empty ps succeeds with an
// empty slice at the unchanged Source; otherwise the result's rest
// equals the rest of the last sub-parser.
func Sequence[T, A any](ps ...Parser[T, A]) Parser[T, []A] {
	return New("sequence", func(s Source[T]) ParseResult[T, []A] {
		if len(ps) == 0 {
			return Succeed[T, []A](s, nil)
		}

		out := make([]A, len(ps))
		cur := s
		for i, p := range ps {
			r := p.Run(cur)
			if !r.IsSuccess() {
				return noSuccess[T, A, []A](r)
			}

			out[i] = r.Value()
			cur = r.Rest()
		}

		return Succeed(cur, out)
	})
}

// Choice tries each alternative in ps, in order, all starting at the
// same input Source — no input is consumed across alternatives that
// fail. It stops at the first Success or Error and returns it. If every
// alternative yields Failure, Choice returns the *last* Failure (the
// deepest diagnostic, matching the user's expectation that the
// most-recently-attempted alternative is the useful one). An empty
// alternative set yields Failure with expected "<empty choice>".
func Choice[T, A any](ps ...Parser[T, A]) Parser[T, A] {
	return New("choice", func(s Source[T]) ParseResult[T, A] {
		if len(ps) == 0 {
			return Fail[T, A](s.Location(), "<empty choice>")
		}

		var last ParseResult[T, A]
		for _, p := range ps {
			r := p.Run(s)
			if r.IsSuccess() || r.IsError() {
				return r
			}

			last = r
		}

		return last
	})
}

// OrElse runs p; if it succeeds or errors, that result is returned. If p
// fails, OrElse succeeds with fallback at the unchanged input Source.
// OrElse never returns Failure.
func OrElse[T, A any](p Parser[T, A], fallback A) Parser[T, A] {
	return New(p.Describe(), func(s Source[T]) ParseResult[T, A] {
		r := p.Run(s)
		if r.IsFailure() {
			return Succeed(s, fallback)
		}

		return r
	})
}

// OrNot runs p and reports its value through a pointer: non-nil when p
// succeeded, nil when p recoverably failed. OrNot is OrElse(p, nil)
// specialized to pointer-of-A as the "none" representation, and — like
// OrElse — never returns Failure.
func OrNot[T, A any](p Parser[T, A]) Parser[T, *A] {
	return New(p.Describe(), func(s Source[T]) ParseResult[T, *A] {
		r := p.Run(s)
		if r.IsError() {
			return noSuccess[T, A, *A](r)
		}

		if r.IsFailure() {
			return Succeed[T, *A](s, nil)
		}

		v := r.Value()
		return Succeed(r.Rest(), &v)
	})
}

// Many repeatedly invokes p from the current Source, accumulating
// values while p succeeds, stopping (with Success) on the first
// Failure. An Error from p propagates immediately.
//
// Progress guard: if a successful iteration leaves the Source at the
// same Location it started from, Many returns Error naming the
// non-consuming inner parser — this is required to guarantee
// termination of the Kleene closure.
func Many[T, A any](p Parser[T, A]) Parser[T, []A] {
	desc := fmt.Sprintf("many(%s)", p.Describe())
	return New(desc, func(s Source[T]) ParseResult[T, []A] {
		var out []A
		cur := s

		for {
			before := cur.Location()
			r := p.Run(cur)

			if r.IsError() {
				return noSuccess[T, A, []A](r)
			}

			if r.IsFailure() {
				return Succeed(cur, out)
			}

			if r.Rest().Location().Equal(before) {
				return Abort[T, []A](before, fmt.Sprintf("many: %s did not consume input", p.Describe()))
			}

			out = append(out, r.Value())
			cur = r.Rest()
		}
	})
}

// ManyOne requires at least one successful application of p, then
// behaves like Many for the remainder. It fails if the first invocation
// of p fails, and propagates Error from either the first invocation or
// from Many's progress guard.
func ManyOne[T, A any](p Parser[T, A]) Parser[T, []A] {
	return New(fmt.Sprintf("manyOne(%s)", p.Describe()), func(s Source[T]) ParseResult[T, []A] {
		first := p.Run(s)
		if !first.IsSuccess() {
			return noSuccess[T, A, []A](first)
		}

		rest := Many(p).Run(first.Rest())
		if rest.IsError() {
			return rest
		}

		out := append([]A{first.Value()}, rest.Value()...)
		return Succeed(rest.Rest(), out)
	})
}

// Range bounds a Repeated invocation: lo <= count <= hi. Exact
// repetition of n is Range{Lo: n, Hi: n}.
type Range struct {
	Lo, Hi int
}

// Exactly constructs the Range matching exactly n repetitions.
func Exactly(n int) Range {
	return Range{Lo: n, Hi: n}
}

// Repeated runs p up to r.Hi times, collecting values, and stops early
// the first time p fails. If fewer than r.Lo values were collected, it
// fails at the original input Location; otherwise it succeeds at the
// last consumed Source. An empty range (Lo > Hi) always succeeds with
// an empty slice without invoking p.
func Repeated[T, A any](p Parser[T, A], r Range) Parser[T, []A] {
	return New(fmt.Sprintf("repeated(%s, [%d,%d])", p.Describe(), r.Lo, r.Hi), func(s Source[T]) ParseResult[T, []A] {
		if r.Lo > r.Hi {
			return Succeed[T, []A](s, nil)
		}

		var out []A
		cur := s

		for len(out) < r.Hi {
			res := p.Run(cur)
			if res.IsError() {
				return noSuccess[T, A, []A](res)
			}

			if res.IsFailure() {
				break
			}

			out = append(out, res.Value())
			cur = res.Rest()
		}

		if len(out) < r.Lo {
			return Fail[T, []A](s.Location(), fmt.Sprintf("expected at least %d repetitions, got %d", r.Lo, len(out)))
		}

		return Succeed(cur, out)
	})
}

// Chain runs p, passes its value to k, and runs the Parser k returns
// against p's rest. This is the monadic bind of the combinator algebra,
// letting later grammar choices depend on earlier parsed values.
func Chain[T, A, B any](p Parser[T, A], k func(A) Parser[T, B]) Parser[T, B] {
	return New(p.Describe(), func(s Source[T]) ParseResult[T, B] {
		r := p.Run(s)
		if !r.IsSuccess() {
			return noSuccess[T, A, B](r)
		}

		return k(r.Value()).Run(r.Rest())
	})
}

// Multi runs base at the input; if it succeeds, each parser in aux is
// re-run at the *original* input (not base's rest). If any aux parser
// yields a NoSuccess, Multi propagates it. Otherwise Multi returns
// base's original Success unchanged — only base ever consumes input.
// This implements look-ahead conjunction: every aux parser must also
// match at the same position, but none of them advance the result.
func Multi[T, A, B any](base Parser[T, A], aux ...Parser[T, B]) Parser[T, A] {
	return New(base.Describe(), func(s Source[T]) ParseResult[T, A] {
		baseR := base.Run(s)
		if !baseR.IsSuccess() {
			return baseR
		}

		for _, a := range aux {
			auxR := a.Run(s)
			if !auxR.IsSuccess() {
				return noSuccess[T, B, A](auxR)
			}
		}

		return baseR
	})
}

// Must converts a recoverable Failure from p into a non-recoverable
// Error carrying the same expected description, raised at the original
// input Location. Success and Error pass through unchanged. Must is
// used to commit the grammar to a path once some earlier token made
// backtracking nonsensical.
func Must[T, A any](p Parser[T, A]) Parser[T, A] {
	return New(p.Describe(), func(s Source[T]) ParseResult[T, A] {
		r := p.Run(s)
		if r.IsFailure() {
			return Abort[T, A](s.Location(), r.Expected())
		}

		return r
	})
}

// JoinedBy runs p zero or more times, discarding a Unit-producing sep
// parser between occurrences, and returns the slice of p's values.
func JoinedBy[T, A any](p Parser[T, A], sep Parser[T, Unit]) Parser[T, []A] {
	return New(fmt.Sprintf("joinedBy(%s)", p.Describe()), func(s Source[T]) ParseResult[T, []A] {
		first := p.Run(s)
		if first.IsError() {
			return noSuccess[T, A, []A](first)
		}

		if first.IsFailure() {
			return Succeed[T, []A](s, nil)
		}

		rest := Many(discardLeft(sep, p)).Run(first.Rest())
		if rest.IsError() {
			return rest
		}

		return Succeed(rest.Rest(), append([]A{first.Value()}, rest.Value()...))
	})
}

// JoinedByValues runs p zero or more times, keeping an A-producing sep
// parser's values in the result too, so the returned slice interleaves
// p, sep, p, sep, ..., p (always an odd length when non-empty). A sep
// that matches but isn't followed by a successful p is left unconsumed
// and the loop stops there, the same dangling-separator backtrack
// JoinedBy uses — a trailing sep is not an error.
func JoinedByValues[T, A any](p Parser[T, A], sep Parser[T, A]) Parser[T, []A] {
	return New(fmt.Sprintf("joinedByValues(%s)", p.Describe()), func(s Source[T]) ParseResult[T, []A] {
		first := p.Run(s)
		if first.IsError() {
			return noSuccess[T, A, []A](first)
		}

		if first.IsFailure() {
			return Succeed[T, []A](s, nil)
		}

		out := []A{first.Value()}
		cur := first.Rest()

		for {
			sepR := sep.Run(cur)
			if sepR.IsError() {
				return noSuccess[T, A, []A](sepR)
			}

			if sepR.IsFailure() {
				return Succeed(cur, out)
			}

			pR := p.Run(sepR.Rest())
			if pR.IsError() {
				return noSuccess[T, A, []A](pR)
			}

			if pR.IsFailure() {
				return Succeed(cur, out)
			}

			out = append(out, sepR.Value(), pR.Value())
			cur = pR.Rest()
		}
	})
}

// FoldedBy parses p, then zero or more (sep, p) pairs, left-folding the
// trailing pairs into the initial value using each sep's operator:
// given v0 (f1 v1) (f2 v2) ... (fn vn), the result is
// fn(...f2(f1(v0, v1), v2)..., vn). A sep that matches but isn't
// followed by a successful p is left unconsumed and the loop stops
// there, folding only the pairs seen so far — a trailing sep is not an
// error.
func FoldedBy[T, A any](p Parser[T, A], sep Parser[T, func(A, A) A]) Parser[T, A] {
	return New(fmt.Sprintf("foldedBy(%s)", p.Describe()), func(s Source[T]) ParseResult[T, A] {
		first := p.Run(s)
		if !first.IsSuccess() {
			return first
		}

		acc := first.Value()
		cur := first.Rest()

		for {
			sepR := sep.Run(cur)
			if sepR.IsError() {
				return noSuccess[T, func(A, A) A, A](sepR)
			}

			if sepR.IsFailure() {
				return Succeed(cur, acc)
			}

			pR := p.Run(sepR.Rest())
			if pR.IsError() {
				return pR
			}

			if pR.IsFailure() {
				return Succeed(cur, acc)
			}

			acc = sepR.Value()(acc, pR.Value())
			cur = pR.Rest()
		}
	})
}

// RFoldedBy parses p, then zero or more (sep, p) pairs, right-folding
// them: given v0 (f1 v1) (f2 v2) ... (fn vn), the result is
// f1(v0, f2(v1, f3(v2, ... fn(vn-1, vn)...))). A sep that matches but
// isn't followed by a successful p is left unconsumed and the loop
// stops there, folding only the pairs seen so far — a trailing sep is
// not an error.
func RFoldedBy[T, A any](p Parser[T, A], sep Parser[T, func(A, A) A]) Parser[T, A] {
	return New(fmt.Sprintf("rfoldedBy(%s)", p.Describe()), func(s Source[T]) ParseResult[T, A] {
		first := p.Run(s)
		if !first.IsSuccess() {
			return first
		}

		values := []A{first.Value()}
		var ops []func(A, A) A
		cur := first.Rest()

		for {
			sepR := sep.Run(cur)
			if sepR.IsError() {
				return noSuccess[T, func(A, A) A, A](sepR)
			}

			if sepR.IsFailure() {
				break
			}

			pR := p.Run(sepR.Rest())
			if pR.IsError() {
				return pR
			}

			if pR.IsFailure() {
				break
			}

			ops = append(ops, sepR.Value())
			values = append(values, pR.Value())
			cur = pR.Rest()
		}

		acc := values[len(values)-1]
		for i := len(ops) - 1; i >= 0; i-- {
			acc = ops[i](values[i], acc)
		}

		return Succeed(cur, acc)
	})
}

// discardLeft runs p, discards its result, then runs q and returns q's
// result. An internal helper used to build the separator-skipping loops
// above.
func discardLeft[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, B] {
	return Zip(p, q, func(_ A, b B) B { return b })
}
