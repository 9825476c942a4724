package tests

import (
	"fmt"
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"
	"github.com/vmihailenco/msgpack/v5"

	suppose "github.com/synadia-labs/suppose.go/runtime"
)

// Round-tripping generated values through real codecs is the classic
// integration property: it exercises every generator at once and states
// something a unit fixture cannot, namely that decode(encode(x)) == x
// for arbitrary x.

type event struct {
	ID    uint64   `cbor:"id" msgpack:"id"`
	Name  string   `cbor:"name" msgpack:"name"`
	Tags  []string `cbor:"tags" msgpack:"tags"`
	Score int64    `cbor:"score" msgpack:"score"`
	OK    bool     `cbor:"ok" msgpack:"ok"`
}

func events() suppose.Generator[event] {
	return suppose.Map(
		suppose.Tuple5Of[uint64, string, []string, int64, bool](
			suppose.U64s(),
			suppose.Strings(),
			suppose.SliceOf(suppose.Strings()).MeanLength(3),
			suppose.I64s(),
			suppose.Booleans(),
		),
		func(t suppose.Tuple5[uint64, string, []string, int64, bool]) event {
			return event{ID: t.A, Name: t.B, Tags: t.C, Score: t.D, OK: t.E}
		},
	)
}

// eventsEqual compares events treating a nil tag slice and an empty one
// as the same, since codecs differ on which they decode to.
func eventsEqual(a, b event) bool {
	if a.ID != b.ID || a.Name != b.Name || a.Score != b.Score || a.OK != b.OK {
		return false
	}
	if len(a.Tags) != len(b.Tags) {
		return false
	}
	for i := range a.Tags {
		if a.Tags[i] != b.Tags[i] {
			return false
		}
	}
	return true
}

// TestCBORRoundTrip round-trips generated structs through fxamacker/cbor.
func TestCBORRoundTrip(t *testing.T) {
	err := suppose.Property(events()).Seed(41).CheckErr(func(in event) error {
		raw, err := cbor.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		var out event
		if err := cbor.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
		if !eventsEqual(in, out) {
			return fmt.Errorf("round trip changed the value: %+v -> %+v", in, out)
		}
		return nil
	})
	require.NoError(t, err)
}

// TestCBORFloatRoundTrip round-trips finite floats, where the codec's
// shortest-float encoding must still be lossless.
func TestCBORFloatRoundTrip(t *testing.T) {
	finite := suppose.Filter(suppose.F64s(), func(v float64) bool { return !math.IsNaN(v) })
	err := suppose.Property(finite).Seed(42).CheckErr(func(in float64) error {
		raw, err := cbor.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		var out float64
		if err := cbor.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
		if out != in {
			return fmt.Errorf("round trip changed %v to %v", in, out)
		}
		return nil
	})
	require.NoError(t, err)
}

// TestMsgpackRoundTrip round-trips generated structs through
// vmihailenco/msgpack.
func TestMsgpackRoundTrip(t *testing.T) {
	err := suppose.Property(events()).Seed(43).CheckErr(func(in event) error {
		raw, err := msgpack.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		var out event
		if err := msgpack.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
		if !eventsEqual(in, out) {
			return fmt.Errorf("round trip changed the value: %+v -> %+v", in, out)
		}
		return nil
	})
	require.NoError(t, err)
}

// TestMsgpPrimitivesRoundTrip round-trips scalars through tinylib/msgp's
// append/read primitives, including the leftover-bytes contract.
func TestMsgpPrimitivesRoundTrip(t *testing.T) {
	gen := suppose.Tuple3Of(suppose.I64s(), suppose.Strings(), suppose.Booleans())
	err := suppose.Property(gen).Seed(44).CheckErr(func(in suppose.Tuple3[int64, string, bool]) error {
		raw := msgp.AppendInt64(nil, in.A)
		raw = msgp.AppendString(raw, in.B)
		raw = msgp.AppendBool(raw, in.C)

		i, rest, err := msgp.ReadInt64Bytes(raw)
		if err != nil {
			return fmt.Errorf("read int64: %w", err)
		}
		s, rest, err := msgp.ReadStringBytes(rest)
		if err != nil {
			return fmt.Errorf("read string: %w", err)
		}
		b, rest, err := msgp.ReadBoolBytes(rest)
		if err != nil {
			return fmt.Errorf("read bool: %w", err)
		}
		if len(rest) != 0 {
			return fmt.Errorf("%d bytes left over", len(rest))
		}
		if i != in.A || s != in.B || b != in.C {
			return fmt.Errorf("round trip changed (%d, %q, %v) to (%d, %q, %v)", in.A, in.B, in.C, i, s, b)
		}
		return nil
	})
	require.NoError(t, err)
}

// TestCodecsAgreeOnEmpty pins the degenerate case across codecs: the
// zero event round-trips everywhere.
func TestCodecsAgreeOnEmpty(t *testing.T) {
	zero, err := suppose.GenerateFrom(events(), suppose.PoolOf(nil))
	require.NoError(t, err)
	require.Equal(t, event{}, zero, "zero pool should decode the zero event")

	raw, err := cbor.Marshal(zero)
	require.NoError(t, err)
	var viaCBOR event
	require.NoError(t, cbor.Unmarshal(raw, &viaCBOR))
	require.True(t, eventsEqual(zero, viaCBOR))

	raw, err = msgpack.Marshal(zero)
	require.NoError(t, err)
	var viaMsgpack event
	require.NoError(t, msgpack.Unmarshal(raw, &viaMsgpack))
	require.True(t, eventsEqual(zero, viaMsgpack))
}
