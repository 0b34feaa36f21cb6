package emit

import (
	"fmt"
	"strings"

	"py2coffee/internal/diag"
	"py2coffee/internal/pyast"
	"py2coffee/internal/source"
)

// opTable maps every operator kind to its rendered spelling. Boolean and
// membership operators carry their surrounding spaces; context markers are
// bracketed tags that never appear in output from well-formed trees.
var opTable = map[pyast.Op]string{
	// Binary operators
	pyast.OpAdd:      "+",
	pyast.OpBitAnd:   "&",
	pyast.OpBitOr:    "|",
	pyast.OpBitXor:   "^",
	pyast.OpDiv:      "/",
	pyast.OpFloorDiv: "//",
	pyast.OpLShift:   "<<",
	pyast.OpMod:      "%",
	pyast.OpMult:     "*",
	pyast.OpPow:      "**",
	pyast.OpRShift:   ">>",
	pyast.OpSub:      "-",
	// Boolean operators
	pyast.OpAnd: " and ",
	pyast.OpOr:  " or ",
	// Comparison operators
	pyast.OpEq:    "==",
	pyast.OpGt:    ">",
	pyast.OpGtE:   ">=",
	pyast.OpIn:    " in ",
	pyast.OpIs:    " is ",
	pyast.OpIsNot: " is not ",
	pyast.OpLt:    "<",
	pyast.OpLtE:   "<=",
	pyast.OpNotEq: "!=",
	pyast.OpNotIn: " not in ",
	// Context markers
	pyast.OpAugLoad:  "<AugLoad>",
	pyast.OpAugStore: "<AugStore>",
	pyast.OpDel:      "<Del>",
	pyast.OpLoad:     "<Load>",
	pyast.OpParam:    "<Param>",
	pyast.OpStore:    "<Store>",
	// Unary operators
	pyast.OpInvert: "~",
	pyast.OpNot:    " not ",
	pyast.OpUAdd:   "+",
	pyast.OpUSub:   "-",
}

// opName returns the rendered spelling for an operator kind. An unknown
// kind is fatal under strict mode; otherwise it renders a bracketed
// placeholder tag and the file keeps translating.
func (e *emitter) opName(op pyast.Op) (string, error) {
	if s, ok := opTable[op]; ok {
		return s, nil
	}
	if e.opt.Strict {
		return "", fmt.Errorf("emit: unknown operator %s", op)
	}
	diag.ReportWarning(e.opt.Reporter, diag.EmitUnknownOperator, source.Span{},
		fmt.Sprintf("unknown operator %s rendered as placeholder", op))
	return "<" + op.String() + ">", nil
}

func (e *emitter) emitBinOp(node *pyast.BinOp) (string, error) {
	left, err := e.visit(node.Left)
	if err != nil {
		return "", err
	}
	op, err := e.opName(node.Op)
	if err != nil {
		return "", err
	}
	right, err := e.visit(node.Right)
	if err != nil {
		return "", err
	}
	return left + op + right, nil
}

func (e *emitter) emitBoolOp(node *pyast.BoolOp) (string, error) {
	op, err := e.opName(node.Op)
	if err != nil {
		return "", err
	}
	values := make([]string, 0, len(node.Values))
	for _, v := range node.Values {
		s, err := e.visit(v)
		if err != nil {
			return "", err
		}
		values = append(values, s)
	}
	return strings.Join(values, op), nil
}

func (e *emitter) emitCompare(node *pyast.Compare) (string, error) {
	var b strings.Builder
	left, err := e.visit(node.Left)
	if err != nil {
		return "", err
	}
	b.WriteString(left)
	if len(node.Ops) != len(node.Comparators) {
		diag.ReportWarning(e.opt.Reporter, diag.EmitInfo, source.Span{},
			fmt.Sprintf("comparison with %d operators but %d comparators", len(node.Ops), len(node.Comparators)))
		return b.String(), nil
	}
	for i := range node.Ops {
		op, err := e.opName(node.Ops[i])
		if err != nil {
			return "", err
		}
		comp, err := e.visit(node.Comparators[i])
		if err != nil {
			return "", err
		}
		b.WriteString(op)
		b.WriteString(comp)
	}
	return b.String(), nil
}

func (e *emitter) emitIfExp(node *pyast.IfExp) (string, error) {
	body, err := e.visit(node.Body)
	if err != nil {
		return "", err
	}
	test, err := e.visit(node.Test)
	if err != nil {
		return "", err
	}
	orelse, err := e.visit(node.Orelse)
	if err != nil {
		return "", err
	}
	return body + " if " + test + " else " + orelse + " ", nil
}

func (e *emitter) emitUnaryOp(node *pyast.UnaryOp) (string, error) {
	op, err := e.opName(node.Op)
	if err != nil {
		return "", err
	}
	operand, err := e.visit(node.Operand)
	if err != nil {
		return "", err
	}
	return op + operand, nil
}
