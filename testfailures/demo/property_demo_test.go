//go:build demo
// +build demo

// Package demo contains demonstration tests that are designed to fail
// intentionally. These tests showcase the shrinking mechanism and
// property-based testing capabilities of theftcore. They are meant for
// educational and demonstration purposes.
package demo

import (
	"testing"

	"github.com/lucaskalb/theftcore/gen"
	"github.com/lucaskalb/theftcore/gen/domain"
	"github.com/lucaskalb/theftcore/prop"
)

// Test_String_FalsaRegra demonstrates a property-based test that is
// designed to fail. It verifies a false property: "all generated strings
// are empty". This example shows how the shrinking mechanism finds a
// minimal counterexample when the property fails, helping developers
// understand why their assumptions are incorrect.
func Test_String_FalsaRegra(t *testing.T) {
	alphanumeric := "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	prop.ForAll(t, prop.Default(), gen.String(gen.Size{Min: 0, Max: 32}, alphanumeric))(
		func(t *testing.T, s string) {
			if s != "" {
				t.Fatalf("expected empty string, got %q", s)
			}
		},
	)
}

// Test_CPF_Invalid demonstrates a property-based test that is designed to
// fail. It expects every generated CPF to start with digit 9, which is not
// true for valid CPF generation. This example shows the shrinking
// mechanism finding a minimal counterexample.
func Test_CPF_Invalid(t *testing.T) {
	cfg := prop.Default()
	prop.ForAll(t, cfg, domain.CPFGen())(func(t *testing.T, cpf domain.CPF) {
		if cpf.Digits[0] != 9 {
			t.Fatalf("expected first digit 9, but got %v", cpf.Digits)
		}
	})
}

// Test_TwoInts_SumNeverExceeds100 demonstrates ForAll2's two-argument
// shrinking: it verifies a false property over a pair of independently
// generated ints, and each position shrinks towards its own target
// (engine/shrink.go's per-position BFS), reported as "arg[0]=.., arg[1]=..".
func Test_TwoInts_SumNeverExceeds100(t *testing.T) {
	prop.ForAll2(t, prop.Default(), gen.IntRange(0, 1000), gen.IntRange(0, 1000))(
		func(t *testing.T, a, b int) {
			if a+b > 100 {
				t.Fatalf("expected a+b <= 100, got a=%d b=%d sum=%d", a, b, a+b)
			}
		},
	)
}
