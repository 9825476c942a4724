package suppose

// Struct tuples and their generators, up to arity 12. Each tuple
// generator runs its component generators in order against the same
// source; the first skip aborts the whole tuple.

type Tuple2[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

type Tuple10[A, B, C, D, E, F, G, H, I, J any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
}

type Tuple11[A, B, C, D, E, F, G, H, I, J, K any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
}

type Tuple12[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
}

// Tuple2Of generates pairs from the two component generators.
func Tuple2Of[A, B any](ga Generator[A], gb Generator[B]) Generator[Tuple2[A, B]] {
	return GeneratorFunc[Tuple2[A, B]](func(src Source) (Tuple2[A, B], error) {
		var out Tuple2[A, B]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple3Of generates triples from the component generators.
func Tuple3Of[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Tuple3[A, B, C]] {
	return GeneratorFunc[Tuple3[A, B, C]](func(src Source) (Tuple3[A, B, C], error) {
		var out Tuple3[A, B, C]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple4Of generates 4-tuples from the component generators.
func Tuple4Of[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[Tuple4[A, B, C, D]] {
	return GeneratorFunc[Tuple4[A, B, C, D]](func(src Source) (Tuple4[A, B, C, D], error) {
		var out Tuple4[A, B, C, D]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		if out.D, err = gd.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple5Of generates 5-tuples from the component generators.
func Tuple5Of[A, B, C, D, E any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E]) Generator[Tuple5[A, B, C, D, E]] {
	return GeneratorFunc[Tuple5[A, B, C, D, E]](func(src Source) (Tuple5[A, B, C, D, E], error) {
		var out Tuple5[A, B, C, D, E]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		if out.D, err = gd.Generate(src); err != nil {
			return out, err
		}
		if out.E, err = ge.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple6Of generates 6-tuples from the component generators.
func Tuple6Of[A, B, C, D, E, F any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F]) Generator[Tuple6[A, B, C, D, E, F]] {
	return GeneratorFunc[Tuple6[A, B, C, D, E, F]](func(src Source) (Tuple6[A, B, C, D, E, F], error) {
		var out Tuple6[A, B, C, D, E, F]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		if out.D, err = gd.Generate(src); err != nil {
			return out, err
		}
		if out.E, err = ge.Generate(src); err != nil {
			return out, err
		}
		if out.F, err = gf.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple7Of generates 7-tuples from the component generators.
func Tuple7Of[A, B, C, D, E, F, G any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F], gg Generator[G]) Generator[Tuple7[A, B, C, D, E, F, G]] {
	return GeneratorFunc[Tuple7[A, B, C, D, E, F, G]](func(src Source) (Tuple7[A, B, C, D, E, F, G], error) {
		var out Tuple7[A, B, C, D, E, F, G]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		if out.D, err = gd.Generate(src); err != nil {
			return out, err
		}
		if out.E, err = ge.Generate(src); err != nil {
			return out, err
		}
		if out.F, err = gf.Generate(src); err != nil {
			return out, err
		}
		if out.G, err = gg.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple8Of generates 8-tuples from the component generators.
func Tuple8Of[A, B, C, D, E, F, G, H any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F], gg Generator[G], gh Generator[H]) Generator[Tuple8[A, B, C, D, E, F, G, H]] {
	return GeneratorFunc[Tuple8[A, B, C, D, E, F, G, H]](func(src Source) (Tuple8[A, B, C, D, E, F, G, H], error) {
		var out Tuple8[A, B, C, D, E, F, G, H]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		if out.D, err = gd.Generate(src); err != nil {
			return out, err
		}
		if out.E, err = ge.Generate(src); err != nil {
			return out, err
		}
		if out.F, err = gf.Generate(src); err != nil {
			return out, err
		}
		if out.G, err = gg.Generate(src); err != nil {
			return out, err
		}
		if out.H, err = gh.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple9Of generates 9-tuples from the component generators.
func Tuple9Of[A, B, C, D, E, F, G, H, I any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F], gg Generator[G], gh Generator[H], gi Generator[I]) Generator[Tuple9[A, B, C, D, E, F, G, H, I]] {
	return GeneratorFunc[Tuple9[A, B, C, D, E, F, G, H, I]](func(src Source) (Tuple9[A, B, C, D, E, F, G, H, I], error) {
		var out Tuple9[A, B, C, D, E, F, G, H, I]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		if out.D, err = gd.Generate(src); err != nil {
			return out, err
		}
		if out.E, err = ge.Generate(src); err != nil {
			return out, err
		}
		if out.F, err = gf.Generate(src); err != nil {
			return out, err
		}
		if out.G, err = gg.Generate(src); err != nil {
			return out, err
		}
		if out.H, err = gh.Generate(src); err != nil {
			return out, err
		}
		if out.I, err = gi.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple10Of generates 10-tuples from the component generators.
func Tuple10Of[A, B, C, D, E, F, G, H, I, J any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F], gg Generator[G], gh Generator[H], gi Generator[I], gj Generator[J]) Generator[Tuple10[A, B, C, D, E, F, G, H, I, J]] {
	return GeneratorFunc[Tuple10[A, B, C, D, E, F, G, H, I, J]](func(src Source) (Tuple10[A, B, C, D, E, F, G, H, I, J], error) {
		var out Tuple10[A, B, C, D, E, F, G, H, I, J]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		if out.D, err = gd.Generate(src); err != nil {
			return out, err
		}
		if out.E, err = ge.Generate(src); err != nil {
			return out, err
		}
		if out.F, err = gf.Generate(src); err != nil {
			return out, err
		}
		if out.G, err = gg.Generate(src); err != nil {
			return out, err
		}
		if out.H, err = gh.Generate(src); err != nil {
			return out, err
		}
		if out.I, err = gi.Generate(src); err != nil {
			return out, err
		}
		if out.J, err = gj.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple11Of generates 11-tuples from the component generators.
func Tuple11Of[A, B, C, D, E, F, G, H, I, J, K any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F], gg Generator[G], gh Generator[H], gi Generator[I], gj Generator[J], gk Generator[K]) Generator[Tuple11[A, B, C, D, E, F, G, H, I, J, K]] {
	return GeneratorFunc[Tuple11[A, B, C, D, E, F, G, H, I, J, K]](func(src Source) (Tuple11[A, B, C, D, E, F, G, H, I, J, K], error) {
		var out Tuple11[A, B, C, D, E, F, G, H, I, J, K]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		if out.D, err = gd.Generate(src); err != nil {
			return out, err
		}
		if out.E, err = ge.Generate(src); err != nil {
			return out, err
		}
		if out.F, err = gf.Generate(src); err != nil {
			return out, err
		}
		if out.G, err = gg.Generate(src); err != nil {
			return out, err
		}
		if out.H, err = gh.Generate(src); err != nil {
			return out, err
		}
		if out.I, err = gi.Generate(src); err != nil {
			return out, err
		}
		if out.J, err = gj.Generate(src); err != nil {
			return out, err
		}
		if out.K, err = gk.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}

// Tuple12Of generates 12-tuples from the component generators.
func Tuple12Of[A, B, C, D, E, F, G, H, I, J, K, L any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F], gg Generator[G], gh Generator[H], gi Generator[I], gj Generator[J], gk Generator[K], gl Generator[L]) Generator[Tuple12[A, B, C, D, E, F, G, H, I, J, K, L]] {
	return GeneratorFunc[Tuple12[A, B, C, D, E, F, G, H, I, J, K, L]](func(src Source) (Tuple12[A, B, C, D, E, F, G, H, I, J, K, L], error) {
		var out Tuple12[A, B, C, D, E, F, G, H, I, J, K, L]
		var err error
		if out.A, err = ga.Generate(src); err != nil {
			return out, err
		}
		if out.B, err = gb.Generate(src); err != nil {
			return out, err
		}
		if out.C, err = gc.Generate(src); err != nil {
			return out, err
		}
		if out.D, err = gd.Generate(src); err != nil {
			return out, err
		}
		if out.E, err = ge.Generate(src); err != nil {
			return out, err
		}
		if out.F, err = gf.Generate(src); err != nil {
			return out, err
		}
		if out.G, err = gg.Generate(src); err != nil {
			return out, err
		}
		if out.H, err = gh.Generate(src); err != nil {
			return out, err
		}
		if out.I, err = gi.Generate(src); err != nil {
			return out, err
		}
		if out.J, err = gj.Generate(src); err != nil {
			return out, err
		}
		if out.K, err = gk.Generate(src); err != nil {
			return out, err
		}
		if out.L, err = gl.Generate(src); err != nil {
			return out, err
		}
		return out, nil
	})
}
