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

// Package opkind defines the operator kinds of affine binary expressions.
package opkind

// Kind of an affine binary operation.
type Kind uint

// Binary operations supported in affine expressions.
const (
	Invalid Kind = iota
	Add
	Mul
	Mod
	FloorDiv
	CeilDiv
)

// String returns the operator token used in textual renderings.
func (k Kind) String() string {
	switch k {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Mod:
		return "mod"
	case FloorDiv:
		return "floordiv"
	case CeilDiv:
		return "ceildiv"
	}
	return "invalid"
}

// FromString returns the kind matching an operator token.
func FromString(token string) Kind {
	switch token {
	case "+":
		return Add
	case "*":
		return Mul
	case "mod":
		return Mod
	case "floordiv":
		return FloorDiv
	case "ceildiv":
		return CeilDiv
	}
	return Invalid
}

// IsCommutative returns true if the operands of the operation can be
// exchanged without changing its value.
func (k Kind) IsCommutative() bool {
	return k == Add || k == Mul
}
