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

import "cmp"

// Compare returns an integer comparing two expressions in the total order
// used to normalize the operands of commutative operations. The result is
// 0 if a and b are structurally equal, -1 if a orders before b, and +1 if
// a orders after b.
//
// Binary expressions order first, then dimension identifiers, symbol
// identifiers, and constants last. Identifiers of the same kind are
// ordered by position, constants by value, and binary expressions by
// operation and then recursively by operands.
func Compare(a, b Expr) int {
	if a == b {
		return 0
	}
	if c := cmp.Compare(exprRank(a), exprRank(b)); c != 0 {
		return c
	}
	switch aT := a.(type) {
	case *ConstantExpr:
		return cmp.Compare(aT.value, b.(*ConstantExpr).value)
	case *DimExpr:
		return cmp.Compare(aT.position, b.(*DimExpr).position)
	case *SymbolExpr:
		return cmp.Compare(aT.position, b.(*SymbolExpr).position)
	case *BinaryExpr:
		bT := b.(*BinaryExpr)
		if c := cmp.Compare(aT.kind, bT.kind); c != 0 {
			return c
		}
		if c := Compare(aT.lhs, bT.lhs); c != 0 {
			return c
		}
		return Compare(aT.rhs, bT.rhs)
	default:
		panic("unreachable")
	}
}

// exprRank returns the rank of an expression kind in the total order.
func exprRank(e Expr) int {
	switch e.(type) {
	case *BinaryExpr:
		return 0
	case *DimExpr:
		return 1
	case *SymbolExpr:
		return 2
	case *ConstantExpr:
		return 3
	default:
		panic("unreachable")
	}
}
