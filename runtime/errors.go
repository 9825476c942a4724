package suppose

import (
	"fmt"
)

var (
	// ErrSkipItem is returned when a combinator declines to produce a
	// value for the current bytes (a filter rejected the draw, a choice
	// had nothing to choose from). The caller should retry with a fresh
	// draw; the byte source itself is fine.
	ErrSkipItem error = errSkip{}

	// ErrPoolExhausted is reported by sources that track real
	// exhaustion, such as a CountingSource that ran past its budget.
	// Replay and RandSource never surface it: exhaustion there is
	// silent zero-fill, which the shrinker's removal strategy relies on.
	ErrPoolExhausted error = errExhausted{}
)

// Error is the interface satisfied by all of the errors that originate
// from data generation in this package.
type Error interface {
	error

	// Skippable returns whether the error means only that this
	// particular draw should be discarded and retried, as opposed to
	// the source itself being unusable.
	Skippable() bool
}

// Skippable reports whether an error calls for a redraw rather than an
// abort. Unknown errors are not skippable.
func Skippable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Skippable()
	}
	return false
}

type errSkip struct{}

func (errSkip) Error() string   { return "suppose: combinator skipped this draw" }
func (errSkip) Skippable() bool { return true }

type errExhausted struct{}

func (errExhausted) Error() string   { return "suppose: pool exhausted" }
func (errExhausted) Skippable() bool { return false }

// FailureError reports a property check that failed after minimization.
// Arg renders the minimal counterexample; Result carries the check's own
// result text: "false" for a boolean check, the error text for an error
// check, or the panic message verbatim when the predicate panicked.
type FailureError struct {
	Arg    string
	Result string
	Pool   *Pool
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("Predicate failed for argument %s; check returned %s", e.Arg, e.Result)
}

// BudgetError reports that the skip budget ran out before enough trials
// completed. There is no counterexample to minimize in this case.
type BudgetError struct {
	TestsRun int
	NumTests int
	Skipped  int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("Could not finish on %d/%d tests (have skipped %d times)",
		e.TestsRun, e.NumTests, e.Skipped)
}
