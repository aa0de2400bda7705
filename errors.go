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

import "github.com/pkg/errors"

// Construction failures. Both report a defect in the expression being
// built rather than a transient condition: the caller is expected to
// surface them to whoever authored the malformed expression. Analyses
// never fail. Test for them with errors.Is.
var (
	// ErrInvalidExpression reports a construction that would leave the
	// affine domain: a product of two dimension-dependent operands, or a
	// mod, floordiv, or ceildiv whose divisor depends on a dimension.
	ErrInvalidExpression = errors.New("invalid affine expression")

	// ErrDivisionByZero reports a mod, floordiv, or ceildiv with a zero
	// constant divisor.
	ErrDivisionByZero = errors.New("division by zero")
)
