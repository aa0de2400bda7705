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
	"golang.org/x/exp/constraints"

	"github.com/gx-org/affine/opkind"
)

// IsSymbolicOrConstant returns true if the expression is made of only
// symbols and constants, that is, it does not involve any dimension
// identifier.
func IsSymbolicOrConstant(e Expr) bool {
	switch eT := e.(type) {
	case *ConstantExpr, *SymbolExpr:
		return true
	case *DimExpr:
		return false
	case *BinaryExpr:
		return IsSymbolicOrConstant(eT.lhs) && IsSymbolicOrConstant(eT.rhs)
	default:
		panic("unreachable")
	}
}

// IsPureAffine returns true if the expression is pure affine:
// multiplications have a constant operand and divisions and modulos have
// a constant divisor.
//
// Purity is stricter than constructibility. Mul accepts any
// symbolic-or-constant operand and mod, floordiv, and ceildiv accept any
// symbolic-or-constant divisor, so an expression such as d0 floordiv s0
// builds fine yet is not pure affine. The two predicates are distinct on
// purpose; see IsSymbolicOrConstant for the constructibility side.
func IsPureAffine(e Expr) bool {
	switch eT := e.(type) {
	case *ConstantExpr, *DimExpr, *SymbolExpr:
		return true
	case *BinaryExpr:
		switch eT.kind {
		case opkind.Add:
			return IsPureAffine(eT.lhs) && IsPureAffine(eT.rhs)
		case opkind.Mul:
			if !isConstExpr(eT.lhs) && !isConstExpr(eT.rhs) {
				return false
			}
			return IsPureAffine(eT.lhs) && IsPureAffine(eT.rhs)
		default: // Mod, FloorDiv, CeilDiv.
			return IsPureAffine(eT.lhs) && isConstExpr(eT.rhs)
		}
	default:
		panic("unreachable")
	}
}

// LargestKnownDivisor returns the greatest positive integer known to
// divide the expression for every assignment of its identifiers.
//
// The zero constant reports 0: every integer divides zero, and 0 is the
// identity of gcd, so an unbounded divisor propagates correctly through
// the rules below without a separate sentinel.
func LargestKnownDivisor(e Expr) uint64 {
	switch eT := e.(type) {
	case *ConstantExpr:
		return absInt64(eT.value)
	case *DimExpr, *SymbolExpr:
		return 1
	case *BinaryExpr:
		switch eT.kind {
		case opkind.Add:
			return gcd(LargestKnownDivisor(eT.lhs), LargestKnownDivisor(eT.rhs))
		case opkind.Mul:
			return LargestKnownDivisor(eT.lhs) * LargestKnownDivisor(eT.rhs)
		case opkind.FloorDiv, opkind.CeilDiv:
			if c, ok := constValue(eT.rhs); ok && c != 0 {
				div := LargestKnownDivisor(eT.lhs)
				if factor := absInt64(c); div%factor == 0 {
					return div / factor
				}
			}
			return 1
		default: // Mod: no divisibility guarantee survives a modulo.
			return 1
		}
	default:
		panic("unreachable")
	}
}

// IsMultipleOf returns true if the expression is known to be a multiple
// of factor for every assignment of its identifiers. Only the zero
// constant is a multiple of zero.
func IsMultipleOf(e Expr, factor int64) bool {
	div := LargestKnownDivisor(e)
	if factor == 0 {
		return div == 0
	}
	return div%absInt64(factor) == 0
}

// IsFunctionOfDim returns true if the expression involves the dimension
// identifier at a position.
func IsFunctionOfDim(e Expr, position int) bool {
	switch eT := e.(type) {
	case *DimExpr:
		return eT.position == position
	case *BinaryExpr:
		return IsFunctionOfDim(eT.lhs, position) || IsFunctionOfDim(eT.rhs, position)
	default:
		return false
	}
}

// IsFunctionOfSymbol returns true if the expression involves the symbol
// identifier at a position.
func IsFunctionOfSymbol(e Expr, position int) bool {
	switch eT := e.(type) {
	case *SymbolExpr:
		return eT.position == position
	case *BinaryExpr:
		return IsFunctionOfSymbol(eT.lhs, position) || IsFunctionOfSymbol(eT.rhs, position)
	default:
		return false
	}
}

func isConstExpr(e Expr) bool {
	_, ok := e.(*ConstantExpr)
	return ok
}

func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func gcd[T constraints.Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
