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
	"iter"

	"github.com/pkg/errors"
)

// Walk returns a post-order iterator over the nodes of an expression:
// operands are yielded before their parent and e is yielded last. A
// subexpression shared between several parents is yielded once per
// occurrence.
func Walk(e Expr) iter.Seq[Expr] {
	return func(yield func(Expr) bool) {
		walk(e, yield)
	}
}

func walk(e Expr, yield func(Expr) bool) bool {
	if eT, ok := e.(*BinaryExpr); ok {
		if !walk(eT.lhs, yield) {
			return false
		}
		if !walk(eT.rhs, yield) {
			return false
		}
	}
	return yield(e)
}

// ReplaceDimsAndSymbols returns the expression with the dimension at
// position i replaced by dims[i] and the symbol at position i replaced
// by symbols[i]. Identifiers whose position is beyond the end of the
// replacement slice, or whose replacement is nil, are kept.
//
// The result is rebuilt through the canonicalization rules, so a
// replacement that moves a dimension into a position restricted to
// symbols or constants fails with ErrInvalidExpression.
func ReplaceDimsAndSymbols(e Expr, dims, symbols []Expr) (Expr, error) {
	switch eT := e.(type) {
	case *ConstantExpr:
		return e, nil
	case *DimExpr:
		if eT.position < len(dims) && dims[eT.position] != nil {
			return dims[eT.position], nil
		}
		return e, nil
	case *SymbolExpr:
		if eT.position < len(symbols) && symbols[eT.position] != nil {
			return symbols[eT.position], nil
		}
		return e, nil
	case *BinaryExpr:
		lhs, err := ReplaceDimsAndSymbols(eT.lhs, dims, symbols)
		if err != nil {
			return nil, err
		}
		rhs, err := ReplaceDimsAndSymbols(eT.rhs, dims, symbols)
		if err != nil {
			return nil, err
		}
		return Binary(eT.kind, lhs, rhs)
	default:
		panic("unreachable")
	}
}

// ShiftDims returns the expression with every dimension position
// incremented by shift. A shift yielding a negative position fails with
// ErrInvalidExpression.
func ShiftDims(e Expr, shift int) (Expr, error) {
	switch eT := e.(type) {
	case *DimExpr:
		position := eT.position + shift
		if position < 0 {
			return nil, errors.Wrapf(ErrInvalidExpression, "shifting %s by %d yields a negative position", e, shift)
		}
		return eT.ctx.Dim(position), nil
	case *BinaryExpr:
		lhs, err := ShiftDims(eT.lhs, shift)
		if err != nil {
			return nil, err
		}
		rhs, err := ShiftDims(eT.rhs, shift)
		if err != nil {
			return nil, err
		}
		return Binary(eT.kind, lhs, rhs)
	default:
		return e, nil
	}
}

// ShiftSymbols returns the expression with every symbol position
// incremented by shift. A shift yielding a negative position fails with
// ErrInvalidExpression.
func ShiftSymbols(e Expr, shift int) (Expr, error) {
	switch eT := e.(type) {
	case *SymbolExpr:
		position := eT.position + shift
		if position < 0 {
			return nil, errors.Wrapf(ErrInvalidExpression, "shifting %s by %d yields a negative position", e, shift)
		}
		return eT.ctx.Symbol(position), nil
	case *BinaryExpr:
		lhs, err := ShiftSymbols(eT.lhs, shift)
		if err != nil {
			return nil, err
		}
		rhs, err := ShiftSymbols(eT.rhs, shift)
		if err != nil {
			return nil, err
		}
		return Binary(eT.kind, lhs, rhs)
	default:
		return e, nil
	}
}
