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

// operands validates that two expressions can be combined in a binary
// operation and returns their common context.
func operands(lhs, rhs Expr) (*Context, error) {
	if lhs == nil || rhs == nil {
		return nil, errors.Wrap(ErrInvalidExpression, "nil operand")
	}
	if lhs.Context() != rhs.Context() {
		return nil, errors.Wrapf(ErrInvalidExpression, "operands %s and %s belong to different contexts", lhs, rhs)
	}
	return lhs.Context(), nil
}

// Binary returns the canonical expression for an operation applied to
// two operands.
func Binary(kind opkind.Kind, lhs, rhs Expr) (Expr, error) {
	ctx, err := operands(lhs, rhs)
	if err != nil {
		return nil, err
	}
	switch kind {
	case opkind.Add:
		return addExpr(ctx, lhs, rhs), nil
	case opkind.Mul:
		return mulExpr(ctx, lhs, rhs)
	case opkind.Mod:
		return modExpr(ctx, lhs, rhs)
	case opkind.FloorDiv:
		return floorDivExpr(ctx, lhs, rhs)
	case opkind.CeilDiv:
		return ceilDivExpr(ctx, lhs, rhs)
	default:
		return nil, errors.Wrapf(ErrInvalidExpression, "binary operation %s not supported", kind)
	}
}

// Add returns the canonical sum of two expressions.
func Add(lhs, rhs Expr) (Expr, error) {
	return Binary(opkind.Add, lhs, rhs)
}

// Mul returns the canonical product of two expressions. At most one
// operand can depend on a dimension.
func Mul(lhs, rhs Expr) (Expr, error) {
	return Binary(opkind.Mul, lhs, rhs)
}

// Mod returns the canonical modulo of lhs by rhs, with the remainder
// convention of floor division. The divisor cannot depend on a dimension.
func Mod(lhs, rhs Expr) (Expr, error) {
	return Binary(opkind.Mod, lhs, rhs)
}

// FloorDiv returns the canonical quotient of lhs by rhs, rounded toward
// negative infinity. The divisor cannot depend on a dimension.
func FloorDiv(lhs, rhs Expr) (Expr, error) {
	return Binary(opkind.FloorDiv, lhs, rhs)
}

// CeilDiv returns the canonical quotient of lhs by rhs, rounded toward
// positive infinity. The divisor cannot depend on a dimension.
func CeilDiv(lhs, rhs Expr) (Expr, error) {
	return Binary(opkind.CeilDiv, lhs, rhs)
}

// Sub returns the canonical difference of two expressions, represented
// as lhs + rhs * -1.
func Sub(lhs, rhs Expr) (Expr, error) {
	neg, err := Neg(rhs)
	if err != nil {
		return nil, err
	}
	return Add(lhs, neg)
}

// Neg returns the canonical negation of an expression, represented as
// a multiplication by -1.
func Neg(e Expr) (Expr, error) {
	return MulConst(e, -1)
}

// AddConst returns the canonical sum of an expression and a constant.
func AddConst(e Expr, value int64) (Expr, error) {
	if e == nil {
		return nil, errors.Wrap(ErrInvalidExpression, "nil operand")
	}
	return Add(e, e.Context().Constant(value))
}

// SubConst returns the canonical difference of an expression and a
// constant.
func SubConst(e Expr, value int64) (Expr, error) {
	return AddConst(e, -value)
}

// MulConst returns the canonical product of an expression and a constant.
func MulConst(e Expr, value int64) (Expr, error) {
	if e == nil {
		return nil, errors.Wrap(ErrInvalidExpression, "nil operand")
	}
	return Mul(e, e.Context().Constant(value))
}

// ModConst returns the canonical modulo of an expression by a constant.
func ModConst(e Expr, value int64) (Expr, error) {
	if e == nil {
		return nil, errors.Wrap(ErrInvalidExpression, "nil operand")
	}
	return Mod(e, e.Context().Constant(value))
}

// FloorDivConst returns the canonical floor division of an expression by
// a constant.
func FloorDivConst(e Expr, value int64) (Expr, error) {
	if e == nil {
		return nil, errors.Wrap(ErrInvalidExpression, "nil operand")
	}
	return FloorDiv(e, e.Context().Constant(value))
}

// CeilDivConst returns the canonical ceil division of an expression by
// a constant.
func CeilDivConst(e Expr, value int64) (Expr, error) {
	if e == nil {
		return nil, errors.Wrap(ErrInvalidExpression, "nil operand")
	}
	return CeilDiv(e, e.Context().Constant(value))
}

// Must returns an expression, panicking if its construction failed. It
// is intended for expressions known valid by construction, such as
// literals in tests.
func Must(e Expr, err error) Expr {
	if err != nil {
		panic(err)
	}
	return e
}
