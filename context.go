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
	"fmt"
	"iter"
	"sync"

	baseiter "github.com/gx-org/affine/base/iter"
	"github.com/gx-org/affine/base/ordered"
	"github.com/gx-org/affine/opkind"
)

type (
	// binaryKey identifies a binary node by its operation and the
	// identity of its already-interned operands.
	binaryKey struct {
		kind     opkind.Kind
		lhs, rhs Expr
	}

	// Context owns and interns every expression node built through it.
	// Structurally equal expressions obtained from the same context are
	// always the same instance, so comparing expressions is comparing
	// handles with ==.
	//
	// A context only grows: nodes are never removed and live until the
	// context itself becomes unreachable. A context can be shared between
	// goroutines; interned nodes are immutable and can be read without
	// synchronization.
	Context struct {
		mu sync.Mutex

		dims     []Expr
		symbols  []Expr
		consts   *ordered.Map[int64, Expr]
		binaries *ordered.Map[binaryKey, Expr]
	}
)

// NewContext returns an empty expression context.
func NewContext() *Context {
	return &Context{
		consts:   ordered.NewMap[int64, Expr](),
		binaries: ordered.NewMap[binaryKey, Expr](),
	}
}

// Constant returns the expression for an integer constant.
func (ctx *Context) Constant(value int64) Expr {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if e, ok := ctx.consts.Load(value); ok {
		return e
	}
	e := &ConstantExpr{ctx: ctx, value: value}
	ctx.consts.Store(value, e)
	return e
}

// Dim returns the dimension identifier at a position. The position is the
// index of the identifier in the expression's dimension argument list and
// cannot be negative.
func (ctx *Context) Dim(position int) Expr {
	if position < 0 {
		panic(fmt.Sprintf("affine: negative dimension position: %d", position))
	}
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	for len(ctx.dims) <= position {
		ctx.dims = append(ctx.dims, &DimExpr{ctx: ctx, position: len(ctx.dims)})
	}
	return ctx.dims[position]
}

// Symbol returns the symbol identifier at a position. The position is the
// index of the identifier in the expression's symbol argument list and
// cannot be negative.
func (ctx *Context) Symbol(position int) Expr {
	if position < 0 {
		panic(fmt.Sprintf("affine: negative symbol position: %d", position))
	}
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	for len(ctx.symbols) <= position {
		ctx.symbols = append(ctx.symbols, &SymbolExpr{ctx: ctx, position: len(ctx.symbols)})
	}
	return ctx.symbols[position]
}

// binary interns the binary node for an operation applied to two operands.
// The operands are already canonical and the simplification rules have
// already established that no further reduction applies.
func (ctx *Context) binary(kind opkind.Kind, lhs, rhs Expr) Expr {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	key := binaryKey{kind: kind, lhs: lhs, rhs: rhs}
	if e, ok := ctx.binaries.Load(key); ok {
		return e
	}
	e := &BinaryExpr{ctx: ctx, kind: kind, lhs: lhs, rhs: rhs}
	ctx.binaries.Store(key, e)
	return e
}

// NumExprs returns the number of expressions interned in the context.
func (ctx *Context) NumExprs() int {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return len(ctx.dims) + len(ctx.symbols) + ctx.consts.Size() + ctx.binaries.Size()
}

// Exprs returns an iterator over every expression interned in the context
// at the time of the call: dimensions first, then symbols, constants, and
// binary expressions, each group in insertion order. Operands of a binary
// expression always appear before the expression itself.
func (ctx *Context) Exprs() iter.Seq[Expr] {
	ctx.mu.Lock()
	all := make([]Expr, 0, len(ctx.dims)+len(ctx.symbols)+ctx.consts.Size()+ctx.binaries.Size())
	all = append(all, ctx.dims...)
	all = append(all, ctx.symbols...)
	for e := range ctx.consts.Values() {
		all = append(all, e)
	}
	for e := range ctx.binaries.Values() {
		all = append(all, e)
	}
	ctx.mu.Unlock()
	return baseiter.All(all)
}
