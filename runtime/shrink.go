package suppose

import "math/bits"

// Shrinking searches for the smallest pool that still satisfies a
// predicate. Because generators tend to decode smaller values from
// smaller inputs, minimizing the source pool finds the smallest value
// that provokes a failure, without any per-type shrinking logic.
//
// Three candidate streams run in priority order each round:
//
//  1. spanRemovals deletes the byte range of a recorded span, most
//     recently recorded first. When provenance is available this removes
//     one whole structural sub-value per candidate.
//  2. chunkRemovals is structure-agnostic delta debugging: it partitions
//     the buffer into power-of-two chunks at decreasing granularity
//     (whole buffer, halves, quarters, down to single bytes) and removes
//     each in turn, largest cuts first.
//  3. scalarShrinks never changes the length; for each position it
//     replaces the byte b with b - (b >> shift) for shift 0..7, a
//     decreasing series from zero back up toward b, skipping shifts that
//     change nothing.
//
// A seen set de-duplicates candidates across rounds, which is what
// guarantees termination: every accepted candidate is a pool that was
// never tried before, and the candidate space below the original pool is
// finite.

type shrinkStream interface {
	next() (*Pool, bool)
}

type spanRemovals struct {
	seed *Pool
	idx  int
}

func newSpanRemovals(seed *Pool) *spanRemovals {
	return &spanRemovals{seed: seed, idx: len(seed.spans) - 1}
}

func (s *spanRemovals) next() (*Pool, bool) {
	for s.idx >= 0 {
		sp := s.seed.spans[s.idx]
		s.idx--
		if sp.Empty() || sp.End > len(s.seed.data) {
			continue
		}
		return cutPool(s.seed, sp.Start, sp.End), true
	}
	return nil, false
}

type chunkRemovals struct {
	seed   *Pool
	log2sz int
	level  int
	chunk  int
}

func newChunkRemovals(seed *Pool) *chunkRemovals {
	maxIdx := 0
	if len(seed.data) > 0 {
		maxIdx = len(seed.data) - 1
	}
	return &chunkRemovals{seed: seed, log2sz: bits.Len(uint(maxIdx))}
}

func (s *chunkRemovals) next() (*Pool, bool) {
	for {
		if s.level > s.log2sz {
			return nil, false
		}
		width := 1 << (s.log2sz - s.level)
		start := s.chunk * width
		if start >= len(s.seed.data) {
			// Ran off the end at this granularity; halve the cut.
			s.chunk = 0
			s.level++
			continue
		}
		s.chunk++
		end := min(start+width, len(s.seed.data))
		return cutPool(s.seed, start, end), true
	}
}

type scalarShrinks struct {
	seed   *Pool
	pos    int
	bitoff uint
}

func newScalarShrinks(seed *Pool) *scalarShrinks {
	return &scalarShrinks{seed: seed}
}

func (s *scalarShrinks) next() (*Pool, bool) {
	for s.pos < len(s.seed.data) {
		orig := s.seed.data[s.pos]
		if s.bitoff >= uint(bits.Len8(orig)) {
			// Plateau: further shifts reproduce orig unchanged.
			s.pos++
			s.bitoff = 0
			continue
		}
		shrunk := orig - orig>>s.bitoff
		s.bitoff++
		data := make([]byte, len(s.seed.data))
		copy(data, s.seed.data)
		data[s.pos] = shrunk
		return &Pool{data: data}, true
	}
	return nil, false
}

func cutPool(seed *Pool, start, end int) *Pool {
	data := make([]byte, 0, len(seed.data)-(end-start))
	data = append(data, seed.data[:start]...)
	data = append(data, seed.data[end:]...)
	return &Pool{data: data}
}

// Minimize finds a local-minimum pool that still satisfies pred, starting
// from p (which is assumed to satisfy it). pred is handed a recording
// source replaying each candidate, so when it accepts one, the bytes and
// spans it actually consumed become the next round's seed; recomputed
// provenance is what lets span removal keep biting on later rounds. If
// nothing smaller satisfies pred, p itself is returned.
func Minimize(p *Pool, pred func(Source) bool) *Pool {
	return minimizePools(p, func(cand *Pool) (*Pool, bool) {
		rec := NewRecorder(cand.Replay())
		if !pred(rec) {
			rec.Discard()
			return nil, false
		}
		return trimZeroSuffix(rec.IntoPool()), true
	})
}

// trimZeroSuffix drops trailing zero bytes from a recorded pool. Replaying
// past the end of a pool zero-fills, so a zero suffix decodes identically
// whether present or not; keeping it would let recorded pools grow back
// past the candidate that was just accepted. Spans into the suffix are
// clamped to the kept range.
func trimZeroSuffix(p *Pool) *Pool {
	n := len(p.data)
	for n > 0 && p.data[n-1] == 0 {
		n--
	}
	if n == len(p.data) {
		return p
	}
	spans := make([]Span, 0, len(p.spans))
	for _, s := range p.spans {
		if s.Start >= n {
			continue
		}
		spans = append(spans, Span{Start: s.Start, End: min(s.End, n), Level: s.Level})
	}
	return &Pool{data: p.data[:n], spans: spans}
}

// MinimizeBytes is Minimize for raw byte inputs with no generator in the
// loop, e.g. delta-debugging an input file against an external command.
// Only the structure-agnostic strategies apply, since a literal buffer
// carries no spans.
func MinimizeBytes(data []byte, pred func([]byte) bool) []byte {
	out := minimizePools(PoolOf(data), func(cand *Pool) (*Pool, bool) {
		return cand, pred(cand.data)
	})
	return out.Buffer()
}

func minimizePools(p *Pool, test func(*Pool) (*Pool, bool)) *Pool {
	best := p
	seen := map[string]struct{}{string(p.data): {}}
	for {
		improved := false
		streams := []shrinkStream{
			newSpanRemovals(best),
			newChunkRemovals(best),
			newScalarShrinks(best),
		}
	round:
		for _, stream := range streams {
			for {
				cand, ok := stream.next()
				if !ok {
					break
				}
				key := string(cand.data)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				if accepted, ok := test(cand); ok {
					seen[string(accepted.data)] = struct{}{}
					best = accepted
					improved = true
					break round
				}
			}
		}
		if !improved {
			return best
		}
	}
}

// FindMinimal finds the smallest pool for which gen still generates a
// value satisfying check. Mostly a convenience wrapper around Minimize
// for generator-shaped predicates; the property runner uses it to shrink
// counterexamples.
func FindMinimal[T any](gen Generator[T], pool *Pool, check func(T) bool) *Pool {
	return Minimize(pool, func(src Source) bool {
		val, err := DrawFrom(src, gen)
		if err != nil {
			return false
		}
		return check(val)
	})
}
