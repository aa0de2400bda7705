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

// Package affine builds, canonicalizes, and analyzes integer affine
// expressions: combinations of dimension identifiers, symbol identifiers,
// and constants under addition, multiplication, floor/ceil division, and
// modulo, restricted so that the result stays linear in the dimensions.
// Such expressions describe loop bounds, array index maps, and
// iteration-space constraints in a polyhedral-style compiler middle end.
//
// Expressions are immutable and interned by a [Context]: two expressions
// are structurally equal if and only if they are the same instance, so
// equality between [Expr] values is the == operator. Every construction
// operator reduces its operands to a canonical shape before interning,
// which makes, for example, Add(a, b) and Add(b, a) the same instance.
package affine

import "github.com/gx-org/affine/opkind"

// Expr is a one-dimensional affine expression.
//
// An Expr is a handle on a node owned by its [Context]. Handles are
// freely copyable; the node behind a handle never changes. The concrete
// type of an Expr is one of [*ConstantExpr], [*DimExpr], [*SymbolExpr],
// or [*BinaryExpr], and a type switch over these four cases is the way
// to discriminate expressions.
type Expr interface {
	// Context returns the context owning the expression.
	Context() *Context

	// String returns a deterministic textual rendering of the expression.
	// Structurally equal expressions always render identically.
	String() string

	// expr marks a type as an expression node. It prevents
	// implementations of the interface outside of this package.
	expr()
}

// ConstantExpr is an integer constant appearing in an affine expression.
type ConstantExpr struct {
	ctx   *Context
	value int64
}

var _ Expr = (*ConstantExpr)(nil)

// Context returns the context owning the expression.
func (e *ConstantExpr) Context() *Context { return e.ctx }

// Value returns the constant value.
func (e *ConstantExpr) Value() int64 { return e.value }

func (*ConstantExpr) expr() {}

// DimExpr is a dimension identifier appearing in an affine expression,
// a positional placeholder for one of the expression's variable
// arguments (for example a loop induction variable).
type DimExpr struct {
	ctx      *Context
	position int
}

var _ Expr = (*DimExpr)(nil)

// Context returns the context owning the expression.
func (e *DimExpr) Context() *Context { return e.ctx }

// Position returns the position of the identifier in the dimension
// argument list.
func (e *DimExpr) Position() int { return e.position }

func (*DimExpr) expr() {}

// SymbolExpr is a symbol identifier appearing in an affine expression,
// a positional placeholder for a value that is constant in the
// expression's scope of use but unknown at construction time.
type SymbolExpr struct {
	ctx      *Context
	position int
}

var _ Expr = (*SymbolExpr)(nil)

// Context returns the context owning the expression.
func (e *SymbolExpr) Context() *Context { return e.ctx }

// Position returns the position of the identifier in the symbol
// argument list.
func (e *SymbolExpr) Position() int { return e.position }

func (*SymbolExpr) expr() {}

// BinaryExpr is an affine binary operation: add, mul, mod, floordiv, or
// ceildiv. Subtraction is represented as an addition of the right
// operand multiplied by -1.
//
// Binary expressions are always interned in canonical form. Both
// operands are never constants, the operands of commutative operations
// are in the order fixed by [Compare], and the right operand of mul,
// mod, floordiv, and ceildiv never depends on a dimension.
type BinaryExpr struct {
	ctx      *Context
	kind     opkind.Kind
	lhs, rhs Expr
}

var _ Expr = (*BinaryExpr)(nil)

// Context returns the context owning the expression.
func (e *BinaryExpr) Context() *Context { return e.ctx }

// Kind returns the operation of the expression.
func (e *BinaryExpr) Kind() opkind.Kind { return e.kind }

// LHS returns the left operand.
func (e *BinaryExpr) LHS() Expr { return e.lhs }

// RHS returns the right operand.
func (e *BinaryExpr) RHS() Expr { return e.rhs }

func (*BinaryExpr) expr() {}
