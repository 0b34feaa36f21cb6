package emit

import (
	"strings"

	"py2coffee/internal/pyast"
)

// Simple statements share one shape: recovered leading lines, the rendered
// body at the current indent, a closing newline.

func (e *emitter) emitAssert(node *pyast.Assert) (string, error) {
	head := e.leading(node)
	test, err := e.visit(node.Test)
	if err != nil {
		return "", err
	}
	s := "assert " + test
	if node.Msg != nil {
		msg, err := e.visit(node.Msg)
		if err != nil {
			return "", err
		}
		s = "assert " + test + ", " + msg
	}
	return head + e.indent(s) + "\n", nil
}

func (e *emitter) emitAssign(node *pyast.Assign) (string, error) {
	head := e.leading(node)
	targets, err := e.visitList(node.Targets, "=")
	if err != nil {
		return "", err
	}
	value, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	return head + e.indent(targets+"="+value) + "\n", nil
}

func (e *emitter) emitAugAssign(node *pyast.AugAssign) (string, error) {
	head := e.leading(node)
	target, err := e.visit(node.Target)
	if err != nil {
		return "", err
	}
	op, err := e.opName(node.Op)
	if err != nil {
		return "", err
	}
	value, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	return head + e.indent(target+op+"="+value) + "\n", nil
}

func (e *emitter) emitBreak(node *pyast.Break) (string, error) {
	return e.leading(node) + e.indent("break") + "\n", nil
}

func (e *emitter) emitContinue(node *pyast.Continue) (string, error) {
	return e.leading(node) + e.indent("continue") + "\n", nil
}

func (e *emitter) emitDelete(node *pyast.Delete) (string, error) {
	head := e.leading(node)
	targets, err := e.visitList(node.Targets, ",")
	if err != nil {
		return "", err
	}
	return head + e.indent("del "+targets) + "\n", nil
}

// An outer expression: must be indented.
func (e *emitter) emitExprStmt(node *pyast.ExprStmt) (string, error) {
	head := e.leading(node)
	s, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	return head + e.indent(s) + "\n", nil
}

func (e *emitter) emitFor(node *pyast.For) (string, error) {
	var b strings.Builder
	b.WriteString(e.leading(node))
	target, err := e.visit(node.Target)
	if err != nil {
		return "", err
	}
	iter, err := e.visit(node.Iter)
	if err != nil {
		return "", err
	}
	b.WriteString(e.indent("for " + target + " in " + iter + ":"))
	b.WriteString("\n")
	body, err := e.body(node.Body)
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	if len(node.Orelse) > 0 {
		b.WriteString(e.indent("else:\n"))
		orelse, err := e.body(node.Orelse)
		if err != nil {
			return "", err
		}
		b.WriteString(orelse)
	}
	return b.String(), nil
}

func (e *emitter) emitGlobal(node *pyast.Global) (string, error) {
	return e.leading(node) + e.indent("global "+strings.Join(node.Names, ",")) + "\n", nil
}

func (e *emitter) emitIf(node *pyast.If) (string, error) {
	var b strings.Builder
	b.WriteString(e.leading(node))
	test, err := e.visit(node.Test)
	if err != nil {
		return "", err
	}
	b.WriteString(e.indent("if " + test + ":"))
	b.WriteString("\n")
	body, err := e.body(node.Body)
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	if len(node.Orelse) > 0 {
		b.WriteString(e.indent("else:\n"))
		orelse, err := e.body(node.Orelse)
		if err != nil {
			return "", err
		}
		b.WriteString(orelse)
	}
	return b.String(), nil
}

// Imports have no direct CoffeeScript analogue; they render as disabled
// lines so the original construct stays traceable in the output.

func (e *emitter) emitImport(node *pyast.Import) (string, error) {
	head := e.leading(node)
	names := make([]string, 0, len(node.Names))
	for _, alias := range node.Names {
		s, err := e.emitAlias(alias)
		if err != nil {
			return "", err
		}
		names = append(names, s)
	}
	return head + e.indent("pass # import "+strings.Join(names, ",")) + "\n", nil
}

func (e *emitter) emitImportFrom(node *pyast.ImportFrom) (string, error) {
	head := e.leading(node)
	names := make([]string, 0, len(node.Names))
	for _, alias := range node.Names {
		s, err := e.emitAlias(alias)
		if err != nil {
			return "", err
		}
		names = append(names, s)
	}
	return head + e.indent("pass # from "+node.Module+" import "+strings.Join(names, ",")) + "\n", nil
}

func (e *emitter) emitPass(node *pyast.Pass) (string, error) {
	return e.leading(node) + e.indent("pass") + "\n", nil
}

func (e *emitter) emitRaise(node *pyast.Raise) (string, error) {
	head := e.leading(node)
	var args []string
	if node.Exc != nil {
		exc, err := e.visit(node.Exc)
		if err != nil {
			return "", err
		}
		args = append(args, exc)
	}
	if node.Cause != nil {
		cause, err := e.visit(node.Cause)
		if err != nil {
			return "", err
		}
		args = append(args, cause)
	}
	s := "raise"
	if len(args) > 0 {
		s = "raise " + strings.Join(args, ", ")
	}
	return head + e.indent(s) + "\n", nil
}

func (e *emitter) emitReturn(node *pyast.Return) (string, error) {
	head := e.leading(node)
	if node.Value == nil {
		return head + e.indent("return") + "\n", nil
	}
	value, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	return head + e.indent("return "+strings.TrimSpace(value)) + "\n", nil
}

func (e *emitter) emitTry(node *pyast.Try) (string, error) {
	var b strings.Builder
	b.WriteString(e.leading(node))
	b.WriteString(e.indent("try"))
	b.WriteString("\n")
	body, err := e.body(node.Body)
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	for _, h := range node.Handlers {
		s, err := e.visit(h)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	if len(node.Orelse) > 0 {
		b.WriteString(e.indent("else:"))
		b.WriteString("\n")
		orelse, err := e.body(node.Orelse)
		if err != nil {
			return "", err
		}
		b.WriteString(orelse)
	}
	if len(node.Finalbody) > 0 {
		b.WriteString(e.indent("finally:"))
		b.WriteString("\n")
		final, err := e.body(node.Finalbody)
		if err != nil {
			return "", err
		}
		b.WriteString(final)
	}
	return b.String(), nil
}

func (e *emitter) emitExceptHandler(node *pyast.ExceptHandler) (string, error) {
	var b strings.Builder
	b.WriteString(e.leading(node))
	s := "except"
	if node.Type != nil {
		typ, err := e.visit(node.Type)
		if err != nil {
			return "", err
		}
		s += " " + typ
	}
	if node.Name != "" {
		s += " as " + node.Name
	}
	b.WriteString(e.indent(s + ":"))
	b.WriteString("\n")
	body, err := e.body(node.Body)
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	return b.String(), nil
}

func (e *emitter) emitWhile(node *pyast.While) (string, error) {
	var b strings.Builder
	b.WriteString(e.leading(node))
	test, err := e.visit(node.Test)
	if err != nil {
		return "", err
	}
	b.WriteString(e.indent("while " + test + ":"))
	b.WriteString("\n")
	body, err := e.body(node.Body)
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	if len(node.Orelse) > 0 {
		b.WriteString(e.indent("else:\n"))
		orelse, err := e.body(node.Orelse)
		if err != nil {
			return "", err
		}
		b.WriteString(orelse)
	}
	return b.String(), nil
}

func (e *emitter) emitWith(node *pyast.With) (string, error) {
	var b strings.Builder
	b.WriteString(e.leading(node))
	ctx, err := e.visit(node.ContextExpr)
	if err != nil {
		return "", err
	}
	s := "with " + ctx
	if node.OptionalVars != nil {
		vars, err := e.visit(node.OptionalVars)
		if err != nil {
			return "", err
		}
		s += " as " + vars
	}
	b.WriteString(e.indent(s + ":"))
	b.WriteString("\n")
	body, err := e.body(node.Body)
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	return b.String(), nil
}
