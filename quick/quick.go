// Package quick provides value-comparison assertion helpers for
// theftcore's own tests and for property bodies written against it.
package quick

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Equal compares two values of the same type and fails the test if they are
// not equal. It uses go-cmp for deep comparison and reports a (-want +got)
// diff when values differ.
//
// Example usage:
//
//	quick.Equal(t, result, expected)
//	quick.Equal(t, []int{1, 2, 3}, []int{1, 2, 3})
//	quick.Equal(t, map[string]int{"a": 1}, map[string]int{"a": 1})
func Equal[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
