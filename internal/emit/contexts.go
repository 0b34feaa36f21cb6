package emit

import (
	"strings"

	"py2coffee/internal/pyast"
)

func (e *emitter) emitModule(node *pyast.Module) (string, error) {
	var b strings.Builder
	for _, stmt := range node.Body {
		s, err := e.visit(stmt)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func (e *emitter) emitClassDef(node *pyast.ClassDef) (string, error) {
	var b strings.Builder
	b.WriteString(e.leading(node))

	var s string
	if len(node.Bases) > 0 {
		bases, err := e.visitList(node.Bases, ", ")
		if err != nil {
			return "", err
		}
		s = "class " + node.Name + " extends " + bases
	} else {
		s = "class " + node.Name
	}
	b.WriteString(e.indent(s))
	b.WriteString("\n")

	e.classStack = append(e.classStack, node.Name)
	body, err := e.body(node.Body)
	e.classStack = e.classStack[:len(e.classStack)-1]
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	return b.String(), nil
}

func (e *emitter) emitFunctionDef(node *pyast.FunctionDef) (string, error) {
	var b strings.Builder
	b.WriteString(e.leading(node))

	for _, dec := range node.DecoratorList {
		s, err := e.visit(dec)
		if err != nil {
			return "", err
		}
		b.WriteString(e.indent("@" + s))
		b.WriteString("\n")
	}

	var parts []string
	if node.Args != nil {
		var err error
		parts, err = e.argParts(node.Args)
		if err != nil {
			return "", err
		}
	}
	// Implicit receiver: inside a class the leading 'self' parameter is
	// elided from the rendered list; references to it inside the body
	// rewrite to '@'.
	if len(e.classStack) > 0 && len(parts) > 0 && parts[0] == receiverName {
		parts = parts[1:]
	}

	args := ""
	if len(parts) > 0 {
		args = "(" + strings.Join(parts, ", ") + ") "
	}
	sep := " = "
	if len(e.classStack) > 0 {
		sep = ": "
	}
	b.WriteString(e.indent(node.Name + sep + args + "->"))
	b.WriteString("\n")

	body, err := e.body(node.Body)
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	return b.String(), nil
}

func (e *emitter) emitLambda(node *pyast.Lambda) (string, error) {
	args := ""
	if node.Args != nil {
		parts, err := e.argParts(node.Args)
		if err != nil {
			return "", err
		}
		args = strings.Join(parts, ", ")
	}
	body, err := e.visit(node.Body)
	if err != nil {
		return "", err
	}
	return e.indent("lambda " + args + ": " + body), nil
}

// argParts renders a parameter list: plain names first, then the trailing
// parameters paired positionally with their defaults, then the variadic
// markers. With N parameters and D defaults, parameter i >= N-D renders as
// name=defaults[i-(N-D)].
func (e *emitter) argParts(node *pyast.Arguments) ([]string, error) {
	names := make([]string, 0, len(node.Args))
	for _, a := range node.Args {
		s, err := e.visit(a)
		if err != nil {
			return nil, err
		}
		names = append(names, s)
	}
	defaults := make([]string, 0, len(node.Defaults))
	for _, d := range node.Defaults {
		s, err := e.visit(d)
		if err != nil {
			return nil, err
		}
		defaults = append(defaults, s)
	}

	nPlain := len(names) - len(defaults)
	parts := make([]string, 0, len(names)+2)
	for i, name := range names {
		if i < nPlain {
			parts = append(parts, name)
		} else {
			parts = append(parts, name+"="+defaults[i-nPlain])
		}
	}
	if node.Vararg != "" {
		parts = append(parts, "*"+node.Vararg)
	}
	if node.Kwarg != "" {
		parts = append(parts, "**"+node.Kwarg)
	}
	return parts, nil
}

func (e *emitter) emitArguments(node *pyast.Arguments) (string, error) {
	parts, err := e.argParts(node)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, ", "), nil
}
