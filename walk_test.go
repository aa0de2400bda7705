package affine_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/affine"
)

func TestWalk(t *testing.T) {
	ctx := affine.NewContext()
	e := affine.Must(affine.Add(affine.Must(affine.MulConst(ctx.Dim(0), 2)), ctx.Symbol(0)))
	var got []string
	for sub := range affine.Walk(e) {
		got = append(got, sub.String())
	}
	want := []string{"d0", "2", "d0 * 2", "s0", "(d0 * 2) + s0"}
	if !cmp.Equal(got, want) {
		t.Errorf("incorrect walk order: got %v but want %v", got, want)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	ctx := affine.NewContext()
	e := affine.Must(affine.AddConst(ctx.Dim(0), 2))
	var got []string
	for sub := range affine.Walk(e) {
		got = append(got, sub.String())
		break
	}
	want := []string{"d0"}
	if !cmp.Equal(got, want) {
		t.Errorf("incorrect walk prefix: got %v but want %v", got, want)
	}
}

func TestReplaceDimsAndSymbols(t *testing.T) {
	ctx := affine.NewContext()
	d0, d1, s0 := ctx.Dim(0), ctx.Dim(1), ctx.Symbol(0)
	e := affine.Must(affine.Add(affine.Must(affine.MulConst(d0, 2)), s0))

	// Replace d0 by d1 and s0 by the constant 3.
	got, err := affine.ReplaceDimsAndSymbols(e,
		[]affine.Expr{d1},
		[]affine.Expr{ctx.Constant(3)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := "(d1 * 2) + 3"; got.String() != want {
		t.Errorf("got %s but want %s", got, want)
	}

	// The result is recanonicalized, so constant terms fold together.
	sum := affine.Must(affine.Add(d0, s0))
	got, err = affine.ReplaceDimsAndSymbols(sum,
		[]affine.Expr{affine.Must(affine.AddConst(d1, 1))},
		[]affine.Expr{ctx.Constant(3)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := "d1 + 4"; got.String() != want {
		t.Errorf("got %s but want %s", got, want)
	}

	// Out of range and nil replacements keep the identifier.
	got, err = affine.ReplaceDimsAndSymbols(e, []affine.Expr{nil}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != e {
		t.Errorf("got %s but want %s unchanged", got, e)
	}
}

func TestReplaceRejectsDimensionInDivisor(t *testing.T) {
	ctx := affine.NewContext()
	e := affine.Must(affine.Mod(ctx.Dim(0), ctx.Symbol(0)))
	_, err := affine.ReplaceDimsAndSymbols(e, nil, []affine.Expr{ctx.Dim(1)})
	if !errors.Is(err, affine.ErrInvalidExpression) {
		t.Errorf("got error %v but want %v", err, affine.ErrInvalidExpression)
	}
}

func TestShiftDims(t *testing.T) {
	ctx := affine.NewContext()
	e := affine.Must(affine.Add(ctx.Dim(0), ctx.Dim(1)))
	got, err := affine.ShiftDims(e, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := affine.Must(affine.Add(ctx.Dim(2), ctx.Dim(3))); got != want {
		t.Errorf("got %s but want %s", got, want)
	}
	if _, err := affine.ShiftDims(e, -1); !errors.Is(err, affine.ErrInvalidExpression) {
		t.Errorf("got error %v but want %v", err, affine.ErrInvalidExpression)
	}
	// Symbols are untouched.
	s0 := ctx.Symbol(0)
	got, err = affine.ShiftDims(s0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != s0 {
		t.Errorf("got %s but want %s unchanged", got, s0)
	}
}

func TestShiftSymbols(t *testing.T) {
	ctx := affine.NewContext()
	e := affine.Must(affine.Add(ctx.Dim(0), ctx.Symbol(0)))
	got, err := affine.ShiftSymbols(e, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := affine.Must(affine.Add(ctx.Dim(0), ctx.Symbol(1))); got != want {
		t.Errorf("got %s but want %s", got, want)
	}
	if _, err := affine.ShiftSymbols(e, -1); !errors.Is(err, affine.ErrInvalidExpression) {
		t.Errorf("got error %v but want %v", err, affine.ErrInvalidExpression)
	}
}
