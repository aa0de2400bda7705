// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package affine

import (
	"github.com/gx-org/affine/opkind"
	"github.com/pkg/errors"
)

// The functions in this file reduce an operation over two canonical
// operands to its canonical result before interning. A binary node is
// only interned once no rule below applies to its immediate shape, so
// the context never stores two representations of the same value.

// constValue returns the value of a constant expression.
func constValue(e Expr) (int64, bool) {
	c, ok := e.(*ConstantExpr)
	if !ok {
		return 0, false
	}
	return c.value, true
}

// isConst returns true if e is the constant value.
func isConst(e Expr, value int64) bool {
	c, ok := constValue(e)
	return ok && c == value
}

// addExpr returns the canonical sum of two canonical operands.
func addExpr(ctx *Context, lhs, rhs Expr) Expr {
	if lv, ok := constValue(lhs); ok {
		if rv, ok := constValue(rhs); ok {
			return ctx.Constant(lv + rv)
		}
	}
	// Commuted operand orders intern to the same node.
	if Compare(lhs, rhs) > 0 {
		lhs, rhs = rhs, lhs
	}
	if rv, ok := constValue(rhs); ok {
		if rv == 0 {
			return lhs
		}
		// (x + c1) + c2 reduces to x + (c1 + c2).
		if lBin, ok := lhs.(*BinaryExpr); ok && lBin.kind == opkind.Add {
			if c1, ok := constValue(lBin.rhs); ok {
				return addExpr(ctx, lBin.lhs, ctx.Constant(c1+rv))
			}
		}
	}
	return ctx.binary(opkind.Add, lhs, rhs)
}

// mulExpr returns the canonical product of two canonical operands. The
// product of two dimension-dependent expressions is not linear in the
// dimensions and is rejected with ErrInvalidExpression.
func mulExpr(ctx *Context, lhs, rhs Expr) (Expr, error) {
	if lv, ok := constValue(lhs); ok {
		if rv, ok := constValue(rhs); ok {
			return ctx.Constant(lv * rv), nil
		}
	}
	if !IsSymbolicOrConstant(lhs) && !IsSymbolicOrConstant(rhs) {
		return nil, errors.Wrapf(ErrInvalidExpression, "cannot multiply %s by %s: both operands depend on a dimension", lhs, rhs)
	}
	// The symbolic-or-constant operand goes to the right; when both
	// operands qualify, the total order fixes the sides.
	if IsSymbolicOrConstant(lhs) && (!IsSymbolicOrConstant(rhs) || Compare(lhs, rhs) > 0) {
		lhs, rhs = rhs, lhs
	}
	if rv, ok := constValue(rhs); ok {
		switch rv {
		case 0:
			return rhs, nil
		case 1:
			return lhs, nil
		}
		// (x * c1) * c2 reduces to x * (c1 * c2).
		if lBin, ok := lhs.(*BinaryExpr); ok && lBin.kind == opkind.Mul {
			if c1, ok := constValue(lBin.rhs); ok {
				return mulExpr(ctx, lBin.lhs, ctx.Constant(c1*rv))
			}
		}
	}
	return ctx.binary(opkind.Mul, lhs, rhs), nil
}

// checkDivisor validates the right operand of a mod, floordiv, or ceildiv.
func checkDivisor(kind opkind.Kind, lhs, rhs Expr) error {
	if !IsSymbolicOrConstant(rhs) {
		return errors.Wrapf(ErrInvalidExpression, "cannot build %s %s %s: the divisor depends on a dimension", lhs, kind, rhs)
	}
	if isConst(rhs, 0) {
		return errors.Wrapf(ErrDivisionByZero, "cannot build %s %s %s", lhs, kind, rhs)
	}
	return nil
}

// floorDivExpr returns the canonical floor division of two canonical
// operands.
func floorDivExpr(ctx *Context, lhs, rhs Expr) (Expr, error) {
	if err := checkDivisor(opkind.FloorDiv, lhs, rhs); err != nil {
		return nil, err
	}
	if lv, ok := constValue(lhs); ok {
		if rv, ok := constValue(rhs); ok {
			return ctx.Constant(floorDiv(lv, rv)), nil
		}
		if lv == 0 {
			return lhs, nil
		}
	}
	if isConst(rhs, 1) {
		return lhs, nil
	}
	return ctx.binary(opkind.FloorDiv, lhs, rhs), nil
}

// ceilDivExpr returns the canonical ceil division of two canonical
// operands.
func ceilDivExpr(ctx *Context, lhs, rhs Expr) (Expr, error) {
	if err := checkDivisor(opkind.CeilDiv, lhs, rhs); err != nil {
		return nil, err
	}
	if lv, ok := constValue(lhs); ok {
		if rv, ok := constValue(rhs); ok {
			return ctx.Constant(ceilDiv(lv, rv)), nil
		}
		if lv == 0 {
			return lhs, nil
		}
	}
	if isConst(rhs, 1) {
		return lhs, nil
	}
	return ctx.binary(opkind.CeilDiv, lhs, rhs), nil
}

// modExpr returns the canonical modulo of two canonical operands.
func modExpr(ctx *Context, lhs, rhs Expr) (Expr, error) {
	if err := checkDivisor(opkind.Mod, lhs, rhs); err != nil {
		return nil, err
	}
	if lv, ok := constValue(lhs); ok {
		if rv, ok := constValue(rhs); ok {
			return ctx.Constant(mod(lv, rv)), nil
		}
		if lv == 0 {
			return lhs, nil
		}
	}
	if rv, ok := constValue(rhs); ok && rv > 0 {
		// x mod c is 0 whenever c divides every value of x.
		if LargestKnownDivisor(lhs)%uint64(rv) == 0 {
			return ctx.Constant(0), nil
		}
	}
	return ctx.binary(opkind.Mod, lhs, rhs), nil
}

// floorDiv returns the quotient of a and b rounded toward negative
// infinity: floorDiv(7, 2) is 3 and floorDiv(-7, 2) is -4.
func floorDiv(a, b int64) int64 {
	quo := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		quo--
	}
	return quo
}

// ceilDiv returns the quotient of a and b rounded toward positive
// infinity: ceilDiv(7, 2) is 4.
func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}

// mod returns a reduced modulo b, in [0, b) for b > 0:
// mod(-7, 2) is 1.
func mod(a, b int64) int64 {
	return a - b*floorDiv(a, b)
}
