package affine_test

import (
	"testing"

	"github.com/gx-org/affine"
)

func TestString(t *testing.T) {
	ctx := affine.NewContext()
	d0, d1, s0 := ctx.Dim(0), ctx.Dim(1), ctx.Symbol(0)
	tests := []struct {
		expr affine.Expr
		want string
	}{
		{expr: ctx.Constant(42), want: "42"},
		{expr: ctx.Constant(-42), want: "-42"},
		{expr: d0, want: "d0"},
		{expr: ctx.Dim(10), want: "d10"},
		{expr: s0, want: "s0"},
		{expr: affine.Must(affine.Add(d0, s0)), want: "d0 + s0"},
		{expr: affine.Must(affine.MulConst(d1, -1)), want: "d1 * -1"},
		{expr: affine.Must(affine.ModConst(d0, 3)), want: "d0 mod 3"},
		{expr: affine.Must(affine.FloorDiv(d0, s0)), want: "d0 floordiv s0"},
		{expr: affine.Must(affine.CeilDivConst(d0, 4)), want: "d0 ceildiv 4"},
		{
			expr: affine.Must(affine.Add(
				affine.Must(affine.MulConst(d0, 2)),
				affine.Must(affine.ModConst(d1, 3)),
			)),
			want: "(d0 * 2) + (d1 mod 3)",
		},
		{
			expr: affine.Must(affine.FloorDivConst(
				affine.Must(affine.Add(d0, s0)), 2,
			)),
			want: "(d0 + s0) floordiv 2",
		},
	}
	for _, test := range tests {
		if got := test.expr.String(); got != test.want {
			t.Errorf("got %s but want %s", got, test.want)
		}
	}
}
