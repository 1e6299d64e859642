// Package engine implements the search-and-shrink core: the trial runner
// that generates argument tuples and invokes the property under test, and
// the breadth-first shrinker that reduces a failing tuple to a local
// minimum. It is deterministic under a 64-bit run seed and composes over
// arbitrary user-supplied input types through the typeinfo vocabulary.
package engine

import (
	"io"

	"github.com/lucaskalb/theftcore/typeinfo"
)

// Outcome classifies a trial, a shrink re-invocation of the property, or
// (via Duplicate) a trial the bloom filter short-circuited.
type Outcome int

const (
	// Pass means the property judged this input acceptable.
	Pass Outcome = iota
	// Fail means the property found a counterexample.
	Fail
	// Skip means the property declined to judge this input.
	Skip
	// Error aborts the run.
	Error
	// Duplicate is never returned by a property; it is the "latest
	// outcome" value handed to the progress hook when the bloom filter
	// recognizes an argument tuple it has already tested.
	Duplicate
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	case Error:
		return "error"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// PropertyFunc is the core's property contract: given the argument tuple
// for one trial (positional, matching Config.Types) and the user
// environment, it returns the trial's outcome. It must not re-enter the
// engine instance that is calling it.
type PropertyFunc func(args []any, env any) Outcome

// Action is returned by a ProgressHook to control whether the run
// continues.
type Action int

const (
	// Continue proceeds to the next trial.
	Continue Action = iota
	// Halt terminates the run cleanly with the current counters.
	Halt
)

// ProgressHook observes every trial's terminal outcome (including
// duplicates) as it happens, in ascending trial order.
type ProgressHook func(report Report, trial int, seed uint64, outcome Outcome) Action

// Config is a single property run's configuration.
type Config struct {
	// Name is used in failure messages; optional.
	Name string
	// Property is the predicate under test. Required.
	Property PropertyFunc
	// Types holds one type-info entry per argument position; len(Types)
	// is the tuple arity N. Required, at least one entry.
	Types []typeinfo.Any
	// Trials is the number of trials to run. 0 defaults to 100.
	Trials int
	// Seed is the run seed every trial seed is derived from. 0 falls back
	// to a seed derived from the current time.
	Seed uint64
	// Progress, if set, is invoked after every trial (pass, fail, skip,
	// error, or duplicate).
	Progress ProgressHook
	// Report, if set, is reset at the start of Run and kept up to date on
	// every transition, so a caller can observe live counters or read them
	// after Run returns.
	Report *Report
	// Output, if set, receives one human-readable Failure report per FAIL.
	Output io.Writer
	// Env is an opaque pointer passed by reference to every callback. The
	// engine never inspects or mutates it.
	Env any
}
