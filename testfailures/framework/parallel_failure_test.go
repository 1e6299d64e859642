//go:build demo
// +build demo

// Package framework contains tests that verify theftcore's behavior when
// properties fail intentionally. These tests ensure that ForAll correctly
// handles failures, shrinking, and the sequential and parallel execution
// paths.
package framework

import (
	"testing"

	"github.com/lucaskalb/theftcore/prop"
)

// TestForAll_ParallelFailure exercises runParallel's failure path with a
// generator that never shrinks.
func TestForAll_ParallelFailure(t *testing.T) {
	config := prop.Config{
		Seed:        12345,
		Examples:    3,
		MaxShrink:   5,
		ShrinkStrat: "bfs",
		Parallelism: 2,
	}

	prop.ForAll(t, config, constant(42))(func(t *testing.T, val int) {
		t.Errorf("this should fail: got %d", val)
	})
}

// TestForAll_ParallelFailureWithShrinking exercises runParallel's failure
// path alongside a shrinkable generator.
func TestForAll_ParallelFailureWithShrinking(t *testing.T) {
	config := prop.Config{
		Seed:        12345,
		Examples:    2,
		MaxShrink:   3,
		ShrinkStrat: "bfs",
		Parallelism: 2,
	}

	prop.ForAll(t, config, countdown(5, 2))(func(t *testing.T, val int) {
		t.Errorf("this should fail: got %d", val)
	})
}

// TestForAll_ParallelStopOnFirstFailureFalse exercises runParallel with
// StopOnFirstFailure set to false.
func TestForAll_ParallelStopOnFirstFailureFalse(t *testing.T) {
	config := prop.Config{
		Seed:               12345,
		Examples:           3,
		MaxShrink:          2,
		ShrinkStrat:        "bfs",
		Parallelism:        2,
		StopOnFirstFailure: false,
	}

	prop.ForAll(t, config, constant(42))(func(t *testing.T, val int) {
		t.Errorf("this should fail: got %d", val)
	})
}
