package suppose

import (
	"fmt"
	"math/rand/v2"
)

// Defaults for property runs.
const (
	// DefaultNumTests is the number of trials a property runs.
	DefaultNumTests = 100
	// DefaultPoolSize caps the fresh random bytes drawn per trial;
	// draws past the cap zero-fill, the same as replaying a short pool.
	DefaultPoolSize = 1024
)

// Config carries the tunable parameters of a property run. Zero values
// select the defaults, so Config{} behaves like the stock runner.
type Config struct {
	// NumTests is the number of generated trials.
	NumTests int
	// MaxSkips bounds the total skipped draws across the run before it
	// aborts; defaults to 10x NumTests.
	MaxSkips int
	// PoolSize is the fresh-randomness budget per trial, in bytes.
	PoolSize int
	// Seed makes the run reproducible. Zero draws fresh entropy, so
	// each unseeded run explores different inputs.
	Seed uint64
}

// Prop is a configured property: a generator plus run parameters,
// awaiting a predicate to check.
type Prop[T any] struct {
	gen Generator[T]
	cfg Config
}

// Property is the main entry point: it pairs a generator with the default
// configuration. Adjust with the builder methods, then call one of Check,
// CheckErr or Run.
func Property[T any](gen Generator[T]) *Prop[T] {
	return &Prop[T]{gen: gen}
}

// PropertyWith is Property with an explicit configuration.
func PropertyWith[T any](cfg Config, gen Generator[T]) *Prop[T] {
	return &Prop[T]{gen: gen, cfg: cfg}
}

// NumTests returns a copy of the property running n trials.
func (p *Prop[T]) NumTests(n int) *Prop[T] {
	cfg := p.cfg
	cfg.NumTests = n
	return &Prop[T]{gen: p.gen, cfg: cfg}
}

// MaxSkips returns a copy of the property with an explicit skip budget.
func (p *Prop[T]) MaxSkips(n int) *Prop[T] {
	cfg := p.cfg
	cfg.MaxSkips = n
	return &Prop[T]{gen: p.gen, cfg: cfg}
}

// PoolSize returns a copy of the property with an explicit per-trial
// randomness budget.
func (p *Prop[T]) PoolSize(n int) *Prop[T] {
	cfg := p.cfg
	cfg.PoolSize = n
	return &Prop[T]{gen: p.gen, cfg: cfg}
}

// Seed returns a copy of the property seeded for reproducibility.
func (p *Prop[T]) Seed(seed uint64) *Prop[T] {
	cfg := p.cfg
	cfg.Seed = seed
	return &Prop[T]{gen: p.gen, cfg: cfg}
}

// Check runs the property against a boolean predicate. It returns nil
// when every trial passes, a *FailureError carrying the minimized
// counterexample when the predicate fails (or panics), and a
// *BudgetError when the skip budget runs out first.
func (p *Prop[T]) Check(check func(T) bool) error {
	return p.run(func(v T) outcome {
		if check(v) {
			return outcome{result: "true"}
		}
		return outcome{failed: true, result: "false"}
	})
}

// CheckErr runs the property against an error-returning predicate; any
// non-nil error is a failure and its text becomes the check result.
func (p *Prop[T]) CheckErr(check func(T) error) error {
	return p.run(func(v T) outcome {
		if err := check(v); err != nil {
			return outcome{failed: true, result: err.Error()}
		}
		return outcome{result: "ok"}
	})
}

// Run runs the property against a predicate with no return value; only a
// panic counts as a failure, and the panic message is reported verbatim.
func (p *Prop[T]) Run(check func(T)) error {
	return p.run(func(v T) outcome {
		check(v)
		return outcome{result: "ok"}
	})
}

// outcome is the normalized result of one predicate invocation.
type outcome struct {
	failed bool
	result string
}

func (p *Prop[T]) run(subject func(T) outcome) error {
	cfg := p.cfg
	if cfg.NumTests <= 0 {
		cfg.NumTests = DefaultNumTests
	}
	if cfg.MaxSkips <= 0 {
		cfg.MaxSkips = 10 * cfg.NumTests
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = DefaultPoolSize
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	// Each trial owns its own source, seeded from a per-run sequence;
	// there is no ambient RNG state shared across trials.
	seeds := NewSeededSource(seed)

	testsRun, skipped := 0, 0
	for testsRun < cfg.NumTests {
		trialSeed := uint64(0)
		for i := 0; i < 8; i++ {
			trialSeed = trialSeed<<8 | uint64(seeds.DrawByte())
		}
		src := NewCountingSource(NewSeededSource(trialSeed), cfg.PoolSize)
		rec := NewRecorder(src)

		val, err := p.gen.Generate(rec)
		if err != nil {
			rec.Discard()
			skipped++
			if skipped >= cfg.MaxSkips {
				return &BudgetError{TestsRun: testsRun, NumTests: cfg.NumTests, Skipped: skipped}
			}
			continue
		}
		testsRun++

		out := guard(subject, val)
		if !out.failed {
			rec.Discard()
			continue
		}

		pool := rec.IntoPool()
		minPool := Minimize(pool, func(s Source) bool {
			v, err := DrawFrom(s, p.gen)
			if err != nil {
				return false
			}
			return guard(subject, v).failed
		})

		minVal, err := GenerateFrom(p.gen, minPool)
		if err != nil {
			return &FailureError{Arg: fmt.Sprintf("<undecodable: %v>", err), Result: out.result, Pool: minPool}
		}
		res := guard(subject, minVal)
		return &FailureError{Arg: fmt.Sprintf("%v", minVal), Result: res.result, Pool: minPool}
	}
	return nil
}

// guard invokes the predicate inside a failure-isolating boundary: a
// panic becomes a failing outcome carrying the panic message, so user
// assertions feed into shrinking the same way a false return does.
func guard[T any](subject func(T) outcome, val T) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = outcome{failed: true, result: fmt.Sprint(r)}
		}
	}()
	return subject(val)
}
