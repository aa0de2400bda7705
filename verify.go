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
	"go.uber.org/multierr"
)

// Verify checks that every node reachable from the expression satisfies
// the canonical-form invariant: no immediate shape that the construction
// rules would have reduced. All violations are returned, combined into a
// single error. A nil result means the expression is canonical.
func Verify(e Expr) error {
	var errs error
	for sub := range Walk(e) {
		errs = multierr.Append(errs, verifyNode(sub))
	}
	return errs
}

// Verify audits every expression interned in the context. Interned
// operands are audited as their own entries, so each node is checked
// exactly once.
func (ctx *Context) Verify() error {
	var errs error
	for e := range ctx.Exprs() {
		errs = multierr.Append(errs, verifyNode(e))
	}
	return errs
}

// verifyNode checks the immediate shape of a single node. Leaves are
// always canonical.
func verifyNode(e Expr) error {
	eT, ok := e.(*BinaryExpr)
	if !ok {
		return nil
	}
	var errs error
	fail := func(format string, a ...any) {
		errs = multierr.Append(errs, errors.Errorf("%s: "+format, append([]any{e}, a...)...))
	}
	lv, lConst := constValue(eT.lhs)
	rv, rConst := constValue(eT.rhs)
	if lConst && rConst {
		fail("constant operation left unfolded")
	}
	switch eT.kind {
	case opkind.Add:
		if Compare(eT.lhs, eT.rhs) > 0 {
			fail("operands out of canonical order")
		}
		if rConst {
			if rv == 0 {
				fail("additive identity left unfolded")
			}
			if lBin, ok := eT.lhs.(*BinaryExpr); ok && lBin.kind == opkind.Add {
				if _, ok := constValue(lBin.rhs); ok {
					fail("constant tail not folded into the right operand")
				}
			}
		}
	case opkind.Mul:
		if !IsSymbolicOrConstant(eT.rhs) {
			fail("right operand depends on a dimension")
		}
		if IsSymbolicOrConstant(eT.lhs) && Compare(eT.lhs, eT.rhs) > 0 {
			fail("operands out of canonical order")
		}
		if rConst && (rv == 0 || rv == 1) {
			fail("multiplicative unit left unfolded")
		}
	case opkind.Mod, opkind.FloorDiv, opkind.CeilDiv:
		if !IsSymbolicOrConstant(eT.rhs) {
			fail("divisor depends on a dimension")
		}
		if rConst && rv == 0 {
			fail("zero divisor")
		}
		if rConst && rv == 1 && eT.kind != opkind.Mod {
			fail("division by one left unfolded")
		}
		if eT.kind == opkind.Mod && rConst && rv > 0 && LargestKnownDivisor(eT.lhs)%uint64(rv) == 0 {
			fail("modulo of a provably divisible numerator left unfolded")
		}
		if lConst && lv == 0 {
			fail("zero numerator left unfolded")
		}
	default:
		fail("operation %s not supported", eT.kind)
	}
	return errs
}
