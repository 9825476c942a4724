package suppose

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Pool is an immutable pool of recorded bytes that generators can replay,
// plus the provenance spans captured while it was recorded. Pools compare
// by their raw bytes; spans are derived metadata, not semantic content.
type Pool struct {
	data  []byte
	spans []Span
}

// PoolOf creates a Pool from a literal byte slice. The bytes are copied, so
// the caller keeps ownership of data. Mostly used by tests as a fixture
// mechanism; pools built this way carry no spans.
func PoolOf(data []byte) *Pool {
	return &Pool{data: bytes.Clone(data)}
}

// RandomPool creates a Pool of size freshly seeded random bytes.
func RandomPool(size int) *Pool {
	return poolFromSource(NewRandSource(), size)
}

// SeededPool creates a Pool of size pseudo-random bytes from an explicit
// seed, for reproducible fixtures.
func SeededPool(seed uint64, size int) *Pool {
	return poolFromSource(NewSeededSource(seed), size)
}

func poolFromSource(src Source, size int) *Pool {
	data := make([]byte, size)
	for i := range data {
		data[i] = src.DrawByte()
	}
	return &Pool{data: data}
}

// Buffer exposes the underlying byte slice. The slice must not be modified.
func (p *Pool) Buffer() []byte { return p.data }

// Len returns the number of bytes in the pool.
func (p *Pool) Len() int { return len(p.data) }

// Spans returns the provenance spans recorded with this pool, in the order
// they completed (innermost draws first). Pools built from literal bytes
// have none. The slice must not be modified.
func (p *Pool) Spans() []Span { return p.spans }

// Equal reports whether two pools hold the same bytes.
func (p *Pool) Equal(o *Pool) bool { return bytes.Equal(p.data, o.data) }

// Compare orders pools byte-wise lexicographically, like bytes.Compare.
func (p *Pool) Compare(o *Pool) int { return bytes.Compare(p.data, o.data) }

// Replay creates a fresh reader positioned at the start of the pool.
func (p *Pool) Replay() *Replay {
	return &Replay{data: p.data}
}

// String renders the pool's bytes as hex, for failure messages.
func (p *Pool) String() string {
	return fmt.Sprintf("Pool{data: %s, spans: %d}", hex.EncodeToString(p.data), len(p.spans))
}

// Replay reads bytes back out of a pool. Reading past the end yields
// zeroes rather than an error, so that pools shrunk shorter than what a
// generator wants to consume still replay; the trailing values just decode
// as zeroes.
type Replay struct {
	data []byte
	off  int
}

// DrawByte consumes the next byte, or 0 once the buffer is spent.
func (r *Replay) DrawByte() byte {
	if r.off < len(r.data) {
		b := r.data[r.off]
		r.off++
		return b
	}
	r.off++
	return 0
}

// Draw is a transparent pass-through; Replay records nothing.
func (r *Replay) Draw(fn func(Source)) { fn(r) }

// Offset reports how many bytes have been drawn, including zero-filled
// draws past the end.
func (r *Replay) Offset() int { return r.off }
