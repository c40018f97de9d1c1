package math_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	decimal "github.com/db47h/decmath"
)

func dec(s string) decimal.Decimal {
	return decimal.MustParse(s)
}

// requireNear fails t if got differs from want by more than tol.
func requireNear(t *testing.T, want string, got decimal.Decimal, tol string) {
	t.Helper()
	if d := got.Sub(dec(want)); d.CmpAbs(dec(tol)) > 0 {
		t.Fatalf("got %s\nwant %s ± %s (off by %s)\n%s", got, want, tol, d, spew.Sdump(got))
	}
}

// requireEqual fails t if got and want are not numerically equal.
func requireEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("got %s, want %s\n%s", got, want, spew.Sdump(got))
	}
}
