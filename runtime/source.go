package suppose

import (
	"math/rand/v2"
)

// Source is something that can act as a source of test data. Bytes are the
// only primitive; everything else is decoded from them by generators.
type Source interface {
	// DrawByte takes a single byte from the source. It never fails:
	// replay sources zero-fill past the end of their buffer, random
	// sources always have another byte.
	DrawByte() byte

	// Draw runs fn against the source as one structural draw. Recording
	// sources use this hook to mark the bytes consumed inside fn as a
	// single span; pass-through sources just invoke fn on themselves.
	Draw(fn func(Source))
}

// RandSource generates bytes from a seeded PRNG.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a RandSource with a freshly chosen seed.
func NewRandSource() *RandSource {
	return NewSeededSource(rand.Uint64())
}

// NewSeededSource creates a RandSource with an explicit seed, for
// reproducible runs.
func NewSeededSource(seed uint64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// DrawByte produces the next pseudo-random byte.
func (s *RandSource) DrawByte() byte {
	return byte(s.rng.Uint64() >> 56)
}

// Draw is a transparent pass-through; RandSource records nothing.
func (s *RandSource) Draw(fn func(Source)) { fn(s) }

// CountingSource caps the number of meaningful bytes drawn from an inner
// source. Past the limit it zero-fills, the same defined default a Replay
// uses past its buffer, and remembers that it ran dry. Callers that care
// about truly pathological byte consumption can check Err afterwards.
type CountingSource struct {
	inner Source
	limit int
	drawn int
}

// NewCountingSource wraps inner with a budget of limit meaningful bytes.
func NewCountingSource(inner Source, limit int) *CountingSource {
	return &CountingSource{inner: inner, limit: limit}
}

// DrawByte forwards to the inner source until the budget is spent, then
// yields zeroes.
func (s *CountingSource) DrawByte() byte {
	if s.drawn >= s.limit {
		s.drawn++
		return 0
	}
	s.drawn++
	return s.inner.DrawByte()
}

// Draw is a transparent pass-through.
func (s *CountingSource) Draw(fn func(Source)) { fn(s) }

// Drawn reports how many bytes have been requested so far, including
// zero-filled ones.
func (s *CountingSource) Drawn() int { return s.drawn }

// Err returns ErrPoolExhausted when draws went past the budget, nil
// otherwise.
func (s *CountingSource) Err() error {
	if s.drawn > s.limit {
		return ErrPoolExhausted
	}
	return nil
}

// DrawFrom draws one value from gen as a structural draw on src. When src
// records provenance, the bytes gen consumes become one recorded span.
func DrawFrom[T any](src Source, gen Generator[T]) (T, error) {
	var (
		val T
		err error
	)
	src.Draw(func(inner Source) {
		val, err = gen.Generate(inner)
	})
	return val, err
}
