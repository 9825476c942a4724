package tests

import (
	"errors"
	"strings"
	"testing"

	suppose "github.com/synadia-labs/suppose.go/runtime"
)

func reverse[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// TestDoubleReversePasses is the hello-world property: reversing twice
// is the identity.
func TestDoubleReversePasses(t *testing.T) {
	gen := suppose.SliceOf(suppose.U8s())
	err := suppose.Property[[]uint8](gen).Check(func(vs []uint8) bool {
		rr := reverse(reverse(vs))
		if len(rr) != len(vs) {
			return false
		}
		for i := range vs {
			if rr[i] != vs[i] {
				return false
			}
		}
		return true
	})
	if err != nil {
		t.Fatalf("property failed: %v", err)
	}
}

// TestCheckReportsMinimizedFailure checks a failing predicate comes back
// as a FailureError naming the minimized argument. A predicate that only
// accepts true fails on false, and false is also the shrink target, so
// the reported argument is deterministic.
func TestCheckReportsMinimizedFailure(t *testing.T) {
	err := suppose.Property(suppose.Booleans()).Check(func(b bool) bool { return b })
	if err == nil {
		t.Fatal("expected a failure")
	}

	var fail *suppose.FailureError
	if !errors.As(err, &fail) {
		t.Fatalf("expected FailureError, got %T: %v", err, err)
	}
	want := "Predicate failed for argument false; check returned false"
	if err.Error() != want {
		t.Fatalf("message: got %q want %q", err.Error(), want)
	}
	if fail.Pool == nil || fail.Pool.Len() != 0 {
		t.Fatalf("minimal pool for false should be empty, got %v", fail.Pool)
	}
}

// TestCheckShrinksNumericFailure checks the counterexample is minimized,
// not just reported: the smallest uint8 above 100 is 101.
func TestCheckShrinksNumericFailure(t *testing.T) {
	err := suppose.Property(suppose.U8s()).Seed(7).Check(func(v uint8) bool {
		return v <= 100
	})
	if err == nil {
		t.Skip("seed never produced a value above 100")
	}
	var fail *suppose.FailureError
	if !errors.As(err, &fail) {
		t.Fatalf("expected FailureError, got %T: %v", err, err)
	}
	if fail.Arg != "101" {
		t.Fatalf("minimized argument: got %q want %q", fail.Arg, "101")
	}
}

// TestCheckErrCarriesMessage checks the error text of a failing CheckErr
// predicate lands in the report.
func TestCheckErrCarriesMessage(t *testing.T) {
	err := suppose.Property(suppose.U8s()).CheckErr(func(v uint8) error {
		return errors.New("nothing is ever good enough")
	})
	if err == nil {
		t.Fatal("expected a failure")
	}
	if !strings.Contains(err.Error(), "nothing is ever good enough") {
		t.Fatalf("message lost: %v", err)
	}
}

// TestRunRecoversPanic checks panics inside Run predicates become
// failures carrying the panic message.
func TestRunRecoversPanic(t *testing.T) {
	err := suppose.Property(suppose.Booleans()).Run(func(b bool) {
		panic("deliberate failure")
	})
	if err == nil {
		t.Fatal("expected a failure")
	}
	var fail *suppose.FailureError
	if !errors.As(err, &fail) {
		t.Fatalf("expected FailureError, got %T: %v", err, err)
	}
	if fail.Result != "deliberate failure" {
		t.Fatalf("result: got %q want the panic message", fail.Result)
	}
}

// TestSkipBudgetAborts checks an unsatisfiable filter exhausts the skip
// budget and reports how far the run got.
func TestSkipBudgetAborts(t *testing.T) {
	gen := suppose.Filter(suppose.U8s(), func(uint8) bool { return false })
	err := suppose.Property(gen).Check(func(uint8) bool { return true })
	if err == nil {
		t.Fatal("expected a budget failure")
	}

	var budget *suppose.BudgetError
	if !errors.As(err, &budget) {
		t.Fatalf("expected BudgetError, got %T: %v", err, err)
	}
	if budget.TestsRun != 0 || budget.NumTests != suppose.DefaultNumTests {
		t.Fatalf("counters: got %+v", budget)
	}
	if !strings.Contains(err.Error(), "Could not finish on 0/100 tests") {
		t.Fatalf("message: %v", err)
	}
}

// TestPartialSkipsStillFinish checks a filter rejecting only part of the
// space stays within the default budget.
func TestPartialSkipsStillFinish(t *testing.T) {
	gen := suppose.Filter(suppose.U8s(), func(v uint8) bool { return v%2 == 0 })
	err := suppose.Property(gen).Check(func(v uint8) bool { return v%2 == 0 })
	if err != nil {
		t.Fatalf("property failed: %v", err)
	}
}

// TestSeededRunsReproduce checks two runs with the same seed report the
// same counterexample, and that seeding is reflected in the pool.
func TestSeededRunsReproduce(t *testing.T) {
	run := func() *suppose.FailureError {
		err := suppose.Property(suppose.Tuple2Of(suppose.U32s(), suppose.U32s())).
			Seed(99).
			Check(func(v suppose.Tuple2[uint32, uint32]) bool {
				return v.A == v.B // almost never true
			})
		var fail *suppose.FailureError
		if !errors.As(err, &fail) {
			t.Fatalf("expected FailureError, got %v", err)
		}
		return fail
	}

	a, b := run(), run()
	if a.Arg != b.Arg {
		t.Fatalf("same seed, different arguments: %q vs %q", a.Arg, b.Arg)
	}
	if !a.Pool.Equal(b.Pool) {
		t.Fatalf("same seed, different pools: %s vs %s", a.Pool, b.Pool)
	}
}

// TestNumTestsHonored counts predicate invocations for a passing run.
func TestNumTestsHonored(t *testing.T) {
	calls := 0
	err := suppose.Property(suppose.U8s()).NumTests(17).Check(func(uint8) bool {
		calls++
		return true
	})
	if err != nil {
		t.Fatalf("property failed: %v", err)
	}
	if calls != 17 {
		t.Fatalf("predicate calls: got %d want 17", calls)
	}
}

// TestConfigDefaults checks PropertyWith treats the zero config like the
// defaults.
func TestConfigDefaults(t *testing.T) {
	calls := 0
	err := suppose.PropertyWith(suppose.Config{}, suppose.Booleans()).Run(func(bool) {
		calls++
	})
	if err != nil {
		t.Fatalf("property failed: %v", err)
	}
	if calls != suppose.DefaultNumTests {
		t.Fatalf("predicate calls: got %d want %d", calls, suppose.DefaultNumTests)
	}
}

// TestPoolSizeCapsConsumption checks the per-trial randomness budget: a
// predicate draining the source sees zeroes past the configured size.
func TestPoolSizeCapsConsumption(t *testing.T) {
	gen := suppose.GeneratorFunc[int](func(src suppose.Source) (int, error) {
		nonzero := 0
		for i := 0; i < 4096; i++ {
			if src.DrawByte() != 0 {
				nonzero = i + 1
			}
		}
		return nonzero, nil
	})
	err := suppose.Property[int](gen).PoolSize(64).Check(func(lastNonzero int) bool {
		return lastNonzero <= 64
	})
	if err != nil {
		t.Fatalf("draws past the budget were not zero-filled: %v", err)
	}
}
