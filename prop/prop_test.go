// Package prop contains tests for the prop package: configuration defaults,
// sequential and parallel ForAll execution, and shrinking behavior observed
// through counterexample minimality.
package prop

import (
	"sync"
	"testing"
	"time"

	"github.com/lucaskalb/theftcore/gen"
)

func TestConfigEffectiveSeedZeroGeneratesNonZero(t *testing.T) {
	cfg := Config{Seed: 0}
	if cfg.effectiveSeed() == 0 {
		t.Fatalf("expected a non-zero seed derived from the current time")
	}
}

func TestConfigEffectiveSeedNonZeroIsPreserved(t *testing.T) {
	cfg := Config{Seed: 12345}
	if cfg.effectiveSeed() != 12345 {
		t.Fatalf("expected configured seed to be returned unchanged")
	}
}

func TestConfigEffectiveSeedVariesOverTime(t *testing.T) {
	cfg := Config{Seed: 0}
	first := cfg.effectiveSeed()
	time.Sleep(time.Microsecond)
	second := cfg.effectiveSeed()
	if first == second {
		t.Fatalf("expected distinct auto-generated seeds across calls, got %d twice", first)
	}
}

func TestDefaultHasSaneValues(t *testing.T) {
	cfg := Default()
	if cfg.Examples <= 0 {
		t.Fatalf("expected Examples > 0, got %d", cfg.Examples)
	}
	if cfg.MaxShrink <= 0 {
		t.Fatalf("expected MaxShrink > 0, got %d", cfg.MaxShrink)
	}
	if !cfg.StopOnFirstFailure {
		t.Fatalf("expected StopOnFirstFailure to default true")
	}
	if cfg.Parallelism < 1 {
		t.Fatalf("expected Parallelism >= 1, got %d", cfg.Parallelism)
	}
}

func TestShrinkStrategyDefaultsToBFS(t *testing.T) {
	cfg := Config{ShrinkStrat: ""}
	if cfg.shrinkStrategy() != gen.ShrinkStrategyBFS {
		t.Fatalf("expected default strategy BFS")
	}
	cfg.ShrinkStrat = "dfs"
	if cfg.shrinkStrategy() != gen.ShrinkStrategyDFS {
		t.Fatalf("expected dfs to map to ShrinkStrategyDFS")
	}
}

func TestForAllPassingPropertyNeverFails(t *testing.T) {
	cfg := Config{Examples: 20, Seed: 7, MaxShrink: 50, StopOnFirstFailure: true, Parallelism: 1}
	ForAll(t, cfg, gen.IntRange(-100, 100))(func(st *testing.T, x int) {
		if x+0 != x {
			st.Fatalf("additive identity failed for %d", x)
		}
	})
}

func TestForAllRunsExpectedNumberOfExamples(t *testing.T) {
	seen := 0
	cfg := Config{Examples: 17, Seed: 42, MaxShrink: 50, StopOnFirstFailure: true, Parallelism: 1}
	ForAll(t, cfg, gen.IntRange(-50, 50))(func(st *testing.T, x int) {
		seen++
	})
	if seen != 17 {
		t.Fatalf("expected the property body to run exactly Examples=17 times, ran %d", seen)
	}
}

func TestForAllParallelRunsExpectedNumberOfExamples(t *testing.T) {
	var mu sync.Mutex
	seen := 0
	cfg := Config{Examples: 17, Seed: 43, MaxShrink: 50, StopOnFirstFailure: true, Parallelism: 4}
	ForAll(t, cfg, gen.IntRange(-50, 50))(func(st *testing.T, x int) {
		mu.Lock()
		seen++
		mu.Unlock()
	})
	if seen != 17 {
		t.Fatalf("expected the property body to run exactly Examples=17 times across workers, ran %d", seen)
	}
}

func TestForAll2PassingPropertyNeverFails(t *testing.T) {
	cfg := Config{Examples: 20, Seed: 11, MaxShrink: 50, StopOnFirstFailure: true, Parallelism: 1}
	ForAll2(t, cfg, gen.IntRange(-100, 100), gen.IntRange(-100, 100))(func(st *testing.T, a, b int) {
		if a+b != b+a {
			st.Fatalf("addition is not commutative for %d, %d", a, b)
		}
	})
}

func TestForAll2RunsExpectedNumberOfExamples(t *testing.T) {
	seen := 0
	cfg := Config{Examples: 13, Seed: 23, MaxShrink: 50, StopOnFirstFailure: true, Parallelism: 1}
	ForAll2(t, cfg, gen.IntRange(-50, 50), gen.Bool())(func(st *testing.T, x int, b bool) {
		seen++
	})
	if seen != 13 {
		t.Fatalf("expected the property body to run exactly Examples=13 times, ran %d", seen)
	}
}

func TestForAll3RunsExpectedNumberOfExamples(t *testing.T) {
	seen := 0
	cfg := Config{Examples: 9, Seed: 29, MaxShrink: 50, StopOnFirstFailure: true, Parallelism: 1}
	ForAll3(t, cfg, gen.IntRange(-50, 50), gen.Bool(), gen.IntRange(0, 10))(func(st *testing.T, x int, b bool, y int) {
		seen++
	})
	if seen != 9 {
		t.Fatalf("expected the property body to run exactly Examples=9 times, ran %d", seen)
	}
}

func TestForAll4RunsExpectedNumberOfExamples(t *testing.T) {
	seen := 0
	cfg := Config{Examples: 7, Seed: 31, MaxShrink: 50, StopOnFirstFailure: true, Parallelism: 1}
	ForAll4(t, cfg, gen.IntRange(-50, 50), gen.Bool(), gen.IntRange(0, 10), gen.Bool())(func(st *testing.T, x int, b bool, y int, c bool) {
		seen++
	})
	if seen != 7 {
		t.Fatalf("expected the property body to run exactly Examples=7 times, ran %d", seen)
	}
}
