package suppose

// SliceGenerator generates slices with items from an inner generator.
// Length is encoded as a geometric chain of continuation coins: before
// each element a weighted coin decides whether to keep going. Truncating
// the pool turns later coins into zero bytes, i.e. "stop", which is what
// lets removal shrinking also shrink the slice's length.
type SliceGenerator[T any] struct {
	inner   Generator[T]
	meanLen int
}

// SliceOf generates slices with items given by inner and a mean length
// of 10.
func SliceOf[T any](inner Generator[T]) *SliceGenerator[T] {
	return &SliceGenerator[T]{inner: inner, meanLen: 10}
}

// MeanLength returns a copy of the generator with the given mean length.
func (g *SliceGenerator[T]) MeanLength(mean int) *SliceGenerator[T] {
	return &SliceGenerator[T]{inner: g.inner, meanLen: mean}
}

// Generate implements Generator.
func (g *SliceGenerator[T]) Generate(src Source) ([]T, error) {
	var result []T
	pFinal := 1.0 / (1.0 + float64(g.meanLen))
	opts := OptionalBy(WeightedCoin(1.0-pFinal), g.inner)
	for {
		item, err := DrawFrom(src, opts)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return result, nil
		}
		result = append(result, *item)
	}
}

// CollectionGenerator populates an arbitrary collection type with
// elements from an inner generator, using the same geometric length
// encoding as SliceGenerator. For collections with set semantics the mean
// number of generated items may exceed the mean final size.
type CollectionGenerator[C, T any] struct {
	empty   func() C
	add     func(C, T) C
	inner   Generator[T]
	meanLen int
}

// CollectionOf generates collections of type C seeded by empty and grown
// one element at a time by add, with a mean of 16 generated items.
func CollectionOf[C, T any](empty func() C, add func(C, T) C, inner Generator[T]) *CollectionGenerator[C, T] {
	return &CollectionGenerator[C, T]{empty: empty, add: add, inner: inner, meanLen: 16}
}

// MeanLength returns a copy of the generator with the given mean number
// of generated items.
func (g *CollectionGenerator[C, T]) MeanLength(mean int) *CollectionGenerator[C, T] {
	return &CollectionGenerator[C, T]{empty: g.empty, add: g.add, inner: g.inner, meanLen: mean}
}

// Generate implements Generator.
func (g *CollectionGenerator[C, T]) Generate(src Source) (C, error) {
	coll := g.empty()
	pFinal := 1.0 / (1.0 + float64(g.meanLen))
	opts := OptionalBy(WeightedCoin(1.0-pFinal), g.inner)
	for {
		item, err := DrawFrom(src, opts)
		if err != nil {
			var zero C
			return zero, err
		}
		if item == nil {
			return coll, nil
		}
		coll = g.add(coll, *item)
	}
}

// MapOf generates maps whose entries come from the key and value
// generators. Duplicate keys overwrite, so the final size may be below
// the mean entry count.
func MapOf[K comparable, V any](keys Generator[K], vals Generator[V]) *CollectionGenerator[map[K]V, Tuple2[K, V]] {
	return CollectionOf(
		func() map[K]V { return map[K]V{} },
		func(m map[K]V, kv Tuple2[K, V]) map[K]V {
			m[kv.A] = kv.B
			return m
		},
		Tuple2Of(keys, vals),
	)
}

// Choice returns one of the given items, selected by a scaled uint32
// draw. An empty item list is a skip, not a panic.
func Choice[T any](items ...T) Generator[T] {
	return GeneratorFunc[T](func(src Source) (T, error) {
		var zero T
		if len(items) == 0 {
			return zero, ErrSkipItem
		}
		idx, err := DrawFrom(src, Upto(U32s(), uint32(len(items))))
		if err != nil {
			return zero, err
		}
		return items[idx], nil
	})
}

// Pools randomly generates fixed-length pools. Mostly used for stating
// properties about other generators.
func Pools(size int) Generator[*Pool] {
	return GeneratorFunc[*Pool](func(src Source) (*Pool, error) {
		data := make([]byte, size)
		for i := range data {
			b, err := U8s().Generate(src)
			if err != nil {
				return nil, err
			}
			data[i] = b
		}
		return &Pool{data: data}, nil
	})
}

// Runes generates valid Unicode code points (surrogates excluded), so
// strings built from them are well-formed UTF-8. Minimizes toward
// U+0000.
func Runes() Generator[rune] {
	return FilterMap(Upto(U32s(), 0x110000), func(v uint32) (rune, error) {
		if v >= 0xD800 && v <= 0xDFFF {
			return 0, ErrSkipItem
		}
		return rune(v), nil
	})
}

// Strings generates UTF-8 strings of runes with a mean length of 10.
func Strings() Generator[string] {
	return Map(SliceOf(Runes()), func(rs []rune) string { return string(rs) })
}
