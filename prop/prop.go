// Package prop provides testing.T-integrated property-based testing on top
// of the engine package. It allows you to test properties of your code by
// generating random test cases and automatically shrinking counterexamples
// when failures are found.
package prop

import (
	"flag"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lucaskalb/theftcore/engine"
	"github.com/lucaskalb/theftcore/gen"
	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Config holds the configuration for property-based testing.
type Config struct {
	// Seed is the random seed used for test case generation.
	// If zero, a random seed will be generated based on the current time.
	Seed uint64

	// Examples is the number of test cases to generate and run.
	Examples int

	// MaxShrink is the maximum number of shrinking steps to perform when a
	// counterexample is found. Enforced here, not inside the engine: once
	// a trial's shrink step count passes MaxShrink, the property wrapper
	// stops reporting FAIL, so the engine's shrinker sees a PASS and
	// settles on whatever it had already accepted.
	MaxShrink int

	// ShrinkStrat specifies the shrinking strategy to use.
	// Supported strategies: "bfs" (breadth-first), "dfs" (depth-first).
	ShrinkStrat string

	// StopOnFirstFailure determines whether to stop testing
	// after the first failing test case is found.
	StopOnFirstFailure bool

	// Parallelism specifies the number of parallel workers to use
	// for running test cases. Must be at least 1.
	Parallelism int
}

var (
	// flagSeed sets the random seed for test case generation.
	// Default: 0 (random seed based on current time).
	flagSeed = flag.Uint64("theftcore.seed", 0, "Random seed for test case generation")

	// flagExamples sets the number of test cases to generate.
	// Default: 100.
	flagExamples = flag.Int("theftcore.examples", 100, "Number of test cases to generate")

	// flagMaxShrink sets the maximum number of shrinking steps.
	// Default: 400.
	flagMaxShrink = flag.Int("theftcore.maxshrink", 400, "Maximum number of shrinking steps")

	// flagShrinkStrat sets the shrinking strategy.
	// Default: "bfs" (breadth-first search).
	flagShrinkStrat = flag.String("theftcore.shrink.strategy", "bfs", "Shrinking strategy (bfs or dfs)")

	// flagParallelism sets the number of parallel workers.
	// Default: 1.
	flagParallelism = flag.Int("theftcore.shrink.parallel", 1, "Number of parallel workers")
)

// Default returns a Config with default values based on command-line flags.
// This is the recommended way to create a configuration for property-based testing.
func Default() Config {
	return Config{
		Seed:               *flagSeed,
		Examples:           *flagExamples,
		MaxShrink:          *flagMaxShrink,
		ShrinkStrat:        *flagShrinkStrat,
		StopOnFirstFailure: true,
		Parallelism:        *flagParallelism,
	}
}

// effectiveSeed returns the effective seed to use for random number generation.
// If the configured seed is zero, it returns a random seed based on the current time.
func (c Config) effectiveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

func (c Config) shrinkStrategy() gen.ShrinkStrategy {
	if c.ShrinkStrat == "dfs" {
		return gen.ShrinkStrategyDFS
	}
	return gen.ShrinkStrategyBFS
}

// exampleResult is one example's outcome after its trial and any shrinking:
// whether it failed, the minimal counterexample tuple (if it did), and how
// many shrink steps were accepted. It is arity-agnostic: min holds one
// entry per argument position, matching the types slice runExample was
// given, so the same plumbing serves ForAll's single argument and
// ForAll2..ForAll4's multiple arguments alike.
type exampleResult struct {
	index  int
	name   string
	failed bool
	min    []any
	steps  int
}

// runExample drives exactly one engine trial (and its shrink phase, if it
// fails) for example index i, reporting every attempt through t.Run so
// go test -v shows "ex#N" and, for each shrink candidate the engine tries
// (accepted or not), "ex#N/shrink#M". invoke receives the trial's argument tuple and type-
// asserts each position before calling the caller's typed test body. It
// returns once the engine settles on a final value.
func runExample(t *testing.T, cfg Config, types []typeinfo.Any, i int, seed uint64, invoke func(st *testing.T, args []any)) exampleResult {
	name := fmt.Sprintf("ex#%d", i+1)
	shrinkStep := 0
	steps := 0
	var min []any

	property := func(args []any, env any) engine.Outcome {
		if shrinkStep > cfg.MaxShrink {
			return engine.Pass
		}
		runName := name
		if shrinkStep > 0 {
			runName = fmt.Sprintf("%s/shrink#%d", name, shrinkStep)
		}
		passed := t.Run(runName, func(st *testing.T) { invoke(st, args) })
		thisStep := shrinkStep
		shrinkStep++
		if passed {
			return engine.Pass
		}
		min = args
		if thisStep > 0 {
			steps++
		}
		return engine.Fail
	}

	ecfg := engine.Config{
		Property: property,
		Types:    types,
		Trials:   1,
		Seed:     seed,
	}
	outcome := engine.Init(0).Run(ecfg)
	return exampleResult{index: i, name: name, failed: outcome == engine.Fail, min: min, steps: steps}
}

// ForAll creates a property-based test that generates test cases using the
// provided type-info and runs them against the given test function. It
// returns a function that takes the test body as a parameter.
//
// The test will generate cfg.Examples number of test cases, and if any
// fail, it will attempt to shrink the counterexample to find a minimal
// failing case.
//
// Example usage:
//
//	ForAll(t, prop.Default(), gen.Int(gen.Size{}))(func(t *testing.T, x int) {
//	    // Test property: x + 0 == x
//	    if x+0 != x {
//	        t.Errorf("addition identity failed for %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg Config, ti typeinfo.TypeInfo[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		types := []typeinfo.Any{typeinfo.Of(ti)}
		invoke := func(st *testing.T, args []any) { body(st, args[0].(T)) }
		logAndRun(t, cfg, types, invoke)
	}
}

// logAndRun applies cfg's shrink-strategy flag, logs the run header every
// ForAll* wrapper shares, and dispatches to the sequential or parallel
// example loop depending on cfg.Parallelism.
func logAndRun(t *testing.T, cfg Config, types []typeinfo.Any, invoke func(*testing.T, []any)) {
	seed := cfg.effectiveSeed()
	gen.SetShrinkStrategy(cfg.shrinkStrategy())

	t.Logf("[theftcore] seed=%d examples=%d maxshrink=%d strategy=%s parallelism=%d",
		seed, cfg.Examples, cfg.MaxShrink, cfg.ShrinkStrat, cfg.Parallelism)

	if cfg.Parallelism <= 1 {
		runSequential(t, cfg, types, invoke, seed)
	} else {
		runParallel(t, cfg, types, invoke, seed)
	}
}

// runSequential executes property-based tests sequentially (single-threaded).
func runSequential(t *testing.T, cfg Config, types []typeinfo.Any, invoke func(*testing.T, []any), seed uint64) {
	for i := 0; i < cfg.Examples; i++ {
		trialSeed := stream.DeriveTrialSeed(seed, i)
		result := runExample(t, cfg, types, i, uint64(trialSeed), invoke)
		if !result.failed {
			continue
		}
		reportFailure(t, cfg, seed, i, result)
		if cfg.StopOnFirstFailure {
			return
		}
	}
}

// runParallel executes property-based tests in parallel using multiple
// goroutines, bounded by cfg.Parallelism. Each example owns its own engine
// run and trial seed, so no shared random state needs protecting.
func runParallel(t *testing.T, cfg Config, types []typeinfo.Any, invoke func(*testing.T, []any), seed uint64) {
	indices := make(chan int, cfg.Examples)
	for i := 0; i < cfg.Examples; i++ {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	failures := make(chan exampleResult, cfg.Examples)
	stop := make(chan struct{})
	var stopOnce sync.Once

	for w := 0; w < cfg.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				select {
				case <-stop:
					return
				default:
				}
				trialSeed := stream.DeriveTrialSeed(seed, i)
				result := runExample(t, cfg, types, i, uint64(trialSeed), invoke)
				if result.failed {
					failures <- result
					if cfg.StopOnFirstFailure {
						stopOnce.Do(func() { close(stop) })
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(failures)
	}()

	for result := range failures {
		reportFailure(t, cfg, seed, result.index, result)
		if cfg.StopOnFirstFailure {
			return
		}
	}
}

// reportFailure renders a counterexample tuple of any arity: a single
// argument prints as its own %#v; two or more print as "arg[i]=..." pairs
// so a ForAll2..ForAll4 failure still reads as one value per position.
func reportFailure(t *testing.T, cfg Config, seed uint64, index int, result exampleResult) {
	full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), result.name)
	var rendered string
	if len(result.min) == 1 {
		rendered = fmt.Sprintf("%#v", result.min[0])
	} else {
		var b strings.Builder
		for i, v := range result.min {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "arg[%d]=%#v", i, v)
		}
		rendered = b.String()
	}
	t.Fatalf("[theftcore] property failed; seed=%d; examples_run=%d; shrunk_steps=%d\n"+
		"counterexample (min): %s\nreplay: go test -run '%s' -theftcore.seed=%d",
		seed, index+1, result.steps, rendered, full, seed)
}
