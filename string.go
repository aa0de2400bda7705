package affine

import (
	"fmt"
	"strconv"
)

// String returns the decimal rendering of the constant.
func (e *ConstantExpr) String() string {
	return strconv.FormatInt(e.value, 10)
}

// String renders the dimension identifier as d<position>.
func (e *DimExpr) String() string {
	return "d" + strconv.Itoa(e.position)
}

// String renders the symbol identifier as s<position>.
func (e *SymbolExpr) String() string {
	return "s" + strconv.Itoa(e.position)
}

// String renders the operation with its operator token, parenthesizing
// operands that are themselves binary expressions. The rendering is a
// pure function of the canonical shape, so structurally equal
// expressions always render identically and a parser reading the text
// back reconstructs the same interned instance.
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", operandString(e.lhs), e.kind, operandString(e.rhs))
}

func operandString(e Expr) string {
	if _, ok := e.(*BinaryExpr); ok {
		return "(" + e.String() + ")"
	}
	return e.String()
}
