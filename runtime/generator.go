package suppose

// Generator is a composable rule for decoding a byte source into a typed
// value. Generators must be deterministic with respect to the source:
// identical byte sequences produce identical values. Shrinking is sound
// only because of that, and works best when smaller input bytes tend to
// decode to smaller output values.
type Generator[T any] interface {
	// Generate consumes bytes from src and produces a value, or fails
	// with ErrSkipItem when a combinator declines this draw.
	Generate(src Source) (T, error)
}

// GeneratorFunc adapts a plain function to a Generator, which is often
// easier than composing one from combinators.
type GeneratorFunc[T any] func(Source) (T, error)

// Generate implements Generator.
func (f GeneratorFunc[T]) Generate(src Source) (T, error) { return f(src) }

// GenerateFrom is a convenience that generates one value directly from a
// pool, via a fresh replay.
func GenerateFrom[T any](g Generator[T], p *Pool) (T, error) {
	return g.Generate(p.Replay())
}

// Booleans generates a boolean with a 50% chance of being true. The
// all-zero input decodes to false, so booleans minimize to false.
func Booleans() Generator[bool] {
	return boolGen{}
}

type boolGen struct{}

func (boolGen) Generate(src Source) (bool, error) {
	return src.DrawByte() >= 0x80, nil
}

// Consts always generates the given value, consuming no bytes.
func Consts[T any](val T) Generator[T] {
	return constGen[T]{val: val}
}

type constGen[T any] struct{ val T }

func (g constGen[T]) Generate(Source) (T, error) { return g.val, nil }

// WeightedCoin generates a boolean that is true with probability p
// (0 <= p <= 1). The all-zero input decodes to false.
func WeightedCoin(p float64) Generator[bool] {
	return coinGen{p: p}
}

type coinGen struct{ p float64 }

func (g coinGen) Generate(src Source) (bool, error) {
	v, err := UniformF32s().Generate(src)
	if err != nil {
		return false, err
	}
	return float64(v) > 1.0-g.p, nil
}

// Optional generates a pointer that is non-nil with a 50% chance, filled
// from inner. Minimizes to nil.
func Optional[T any](inner Generator[T]) Generator[*T] {
	return OptionalBy(Booleans(), inner)
}

// OptionalBy is Optional with an explicit boolean generator deciding
// presence, typically a WeightedCoin.
func OptionalBy[T any](coin Generator[bool], inner Generator[T]) Generator[*T] {
	return optionalGen[T]{coin: coin, inner: inner}
}

type optionalGen[T any] struct {
	coin  Generator[bool]
	inner Generator[T]
}

func (g optionalGen[T]) Generate(src Source) (*T, error) {
	present, err := DrawFrom(src, g.coin)
	if err != nil || !present {
		return nil, err
	}
	val, err := DrawFrom(src, g.inner)
	if err != nil {
		return nil, err
	}
	return &val, nil
}

// Fallible is the value produced by ResultOf: either an ok value or an
// error value.
type Fallible[T, E any] struct {
	Val T
	Err *E
}

// IsErr reports whether the error branch was generated.
func (f Fallible[T, E]) IsErr() bool { return f.Err != nil }

// ResultOf generates either an ok value from ok or an error value from
// errg, with a 50% chance of each. Minimizes to the ok branch.
func ResultOf[T, E any](ok Generator[T], errg Generator[E]) Generator[Fallible[T, E]] {
	return resultGen[T, E]{ok: ok, errg: errg}
}

type resultGen[T, E any] struct {
	ok   Generator[T]
	errg Generator[E]
}

func (g resultGen[T, E]) Generate(src Source) (Fallible[T, E], error) {
	isErr, err := Booleans().Generate(src)
	if err != nil {
		return Fallible[T, E]{}, err
	}
	if isErr {
		e, err := g.errg.Generate(src)
		if err != nil {
			return Fallible[T, E]{}, err
		}
		return Fallible[T, E]{Err: &e}, nil
	}
	v, err := g.ok.Generate(src)
	if err != nil {
		return Fallible[T, E]{}, err
	}
	return Fallible[T, E]{Val: v}, nil
}

// Filter skips values generated by g for which pred returns false. The
// caller sees ErrSkipItem and retries with fresh bytes; collection and
// property loops budget those retries.
func Filter[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return GeneratorFunc[T](func(src Source) (T, error) {
		val, err := g.Generate(src)
		if err != nil {
			return val, err
		}
		if !pred(val) {
			var zero T
			return zero, ErrSkipItem
		}
		return val, nil
	})
}

// Map pipes the values generated by g through fn.
func Map[T, U any](g Generator[T], fn func(T) U) Generator[U] {
	return GeneratorFunc[U](func(src Source) (U, error) {
		val, err := g.Generate(src)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(val), nil
	})
}

// FilterMap pipes values through fn, which may transform them or skip
// them by returning ErrSkipItem.
func FilterMap[T, U any](g Generator[T], fn func(T) (U, error)) Generator[U] {
	return GeneratorFunc[U](func(src Source) (U, error) {
		val, err := g.Generate(src)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(val)
	})
}

// FlatMap builds a new generator from each value of g and generates from
// it. The number of bytes the result consumes therefore depends on the
// intermediate value; recorders span it correctly either way.
func FlatMap[T, U any](g Generator[T], fn func(T) Generator[U]) Generator[U] {
	return GeneratorFunc[U](func(src Source) (U, error) {
		val, err := g.Generate(src)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(val).Generate(src)
	})
}

// Lazy defers construction of a generator to draw time. thunk should be
// pure. This is what makes self-referential (recursive) generators
// possible without infinite eager construction.
func Lazy[T any](thunk func() Generator[T]) Generator[T] {
	return GeneratorFunc[T](func(src Source) (T, error) {
		return thunk().Generate(src)
	})
}

// OneOfGenerator selects between alternative generators of the same type.
// Alternatives are picked by scaling a uint32 draw over the alternative
// count, so selection stays asymptotically uniform as the list grows and
// the all-zero input picks the first alternative.
type OneOfGenerator[T any] struct {
	alts []Generator[T]
}

// OneOf creates a choice among the given generators. Often useful when
// generating the variants of a sum type. Extend with Or.
func OneOf[T any](first Generator[T], rest ...Generator[T]) *OneOfGenerator[T] {
	alts := make([]Generator[T], 0, 1+len(rest))
	alts = append(alts, first)
	alts = append(alts, rest...)
	return &OneOfGenerator[T]{alts: alts}
}

// Or returns a OneOfGenerator extended with another alternative. The
// receiver is not modified, so partially built choices can be shared.
func (g *OneOfGenerator[T]) Or(alt Generator[T]) *OneOfGenerator[T] {
	alts := make([]Generator[T], 0, len(g.alts)+1)
	alts = append(alts, g.alts...)
	alts = append(alts, alt)
	return &OneOfGenerator[T]{alts: alts}
}

// Generate implements Generator.
func (g *OneOfGenerator[T]) Generate(src Source) (T, error) {
	var zero T
	if len(g.alts) == 0 {
		return zero, ErrSkipItem
	}
	v, err := U32s().Generate(src)
	if err != nil {
		return zero, err
	}
	idx := scaleUint(v, uint32(len(g.alts)))
	return g.alts[idx].Generate(src)
}
