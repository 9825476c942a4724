package suppose

import (
	"math"
	"math/bits"
	"unsafe"
)

// Unsigned constrains the unsigned integer types we can generate and scale.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// uintGen generates unsigned integers of type N by folding sizeof(N)
// consecutive bytes big-endian, so all-zero input decodes to 0 and
// earlier bytes dominate the magnitude.
type uintGen[N Unsigned] struct{}

// U8s generates uint8 values.
func U8s() Generator[uint8] { return uintGen[uint8]{} }

// U16s generates uint16 values.
func U16s() Generator[uint16] { return uintGen[uint16]{} }

// U32s generates uint32 values.
func U32s() Generator[uint32] { return uintGen[uint32]{} }

// U64s generates uint64 values.
func U64s() Generator[uint64] { return uintGen[uint64]{} }

// Uints generates uint values.
func Uints() Generator[uint] { return uintGen[uint]{} }

// Generate implements Generator.
func (uintGen[N]) Generate(src Source) (N, error) {
	var val N
	var acc uint64
	for i := 0; i < int(unsafe.Sizeof(val)); i++ {
		acc = acc<<8 | uint64(src.DrawByte())
	}
	return N(acc), nil
}

// Upto scales the output of an unsigned generator into [0, max).
// Scaling uses a multiply-and-shift rather than modulo, which avoids
// modulo bias and keeps output monotonic in the input, so shrinking
// still converges.
func Upto[N Unsigned](g Generator[N], max N) Generator[N] {
	return GeneratorFunc[N](func(src Source) (N, error) {
		v, err := g.Generate(src)
		if err != nil {
			return 0, err
		}
		return scaleUint(v, max), nil
	})
}

// Between scales the output of an unsigned generator into [min, max],
// inclusive of both ends.
func Between[N Unsigned](g Generator[N], min, max N) Generator[N] {
	return Map(Upto(g, max-min+1), func(v N) N { return v + min })
}

// scaleUint computes (v * max) >> bitwidth via a double-width
// intermediate; the widest types go through a full 64x64 -> 128 multiply.
func scaleUint[N Unsigned](v, max N) N {
	width := unsafe.Sizeof(v) * 8
	if width == 64 {
		hi, _ := bits.Mul64(uint64(v), uint64(max))
		return N(hi)
	}
	return N(uint64(v) * uint64(max) >> width)
}

// Signed constrains the signed integer types we can generate.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// intGen decodes a signed integer from the equal-width unsigned value:
// the low bit picks the sign, the remaining bits are the magnitude. The
// all-zero input decodes to 0.
type intGen[S Signed, U Unsigned] struct{}

func (intGen[S, U]) Generate(src Source) (S, error) {
	uval, err := uintGen[U]{}.Generate(src)
	if err != nil {
		return 0, err
	}
	neg := uval&1 == 0
	uval >>= 1
	if neg {
		return -S(uval), nil
	}
	return S(uval), nil
}

// I8s generates the full range of int8.
func I8s() Generator[int8] { return intGen[int8, uint8]{} }

// I16s generates the full range of int16.
func I16s() Generator[int16] { return intGen[int16, uint16]{} }

// I32s generates the full range of int32.
func I32s() Generator[int32] { return intGen[int32, uint32]{} }

// I64s generates the full range of int64.
func I64s() Generator[int64] { return intGen[int64, uint64]{} }

// Ints generates the full range of int.
func Ints() Generator[int] { return intGen[int, uint]{} }

// F32s generates values spanning all possible float32s, positive and
// negative, including NaN and subnormals. The low bit of the unsigned
// draw picks the sign; the rest is reinterpreted as the IEEE bit pattern.
func F32s() Generator[float32] {
	return GeneratorFunc[float32](func(src Source) (float32, error) {
		uval, err := U32s().Generate(src)
		if err != nil {
			return 0, err
		}
		neg := uval&1 == 0
		fval := math.Float32frombits(uval >> 1)
		if neg {
			fval = -fval
		}
		return fval, nil
	})
}

// F64s generates values spanning all possible float64s, including NaN and
// subnormals.
func F64s() Generator[float64] {
	return GeneratorFunc[float64](func(src Source) (float64, error) {
		uval, err := U64s().Generate(src)
		if err != nil {
			return 0, err
		}
		neg := uval&1 == 0
		fval := math.Float64frombits(uval >> 1)
		if neg {
			fval = -fval
		}
		return fval, nil
	})
}

// UniformF32s generates uniformly distributed float32s with 0 <= x < 1.
func UniformF32s() Generator[float32] {
	return GeneratorFunc[float32](func(src Source) (float32, error) {
		uval, err := U32s().Generate(src)
		if err != nil {
			return 0, err
		}
		return float32(uval) / float32(math.MaxUint32), nil
	})
}

// UniformF64s generates uniformly distributed float64s with 0 <= x < 1.
func UniformF64s() Generator[float64] {
	return GeneratorFunc[float64](func(src Source) (float64, error) {
		uval, err := U64s().Generate(src)
		if err != nil {
			return 0, err
		}
		return float64(uval) / float64(math.MaxUint64), nil
	})
}
