package emit

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"py2coffee/internal/diag"
	"py2coffee/internal/pyast"
	"py2coffee/internal/source"
)

// receiverName is the Python implicit-receiver convention; references to it
// rewrite to the CoffeeScript receiver marker.
const receiverName = "self"

// receiverMarker is the rendered CoffeeScript receiver.
const receiverMarker = "@"

// comprehension clauses that render empty are substituted with an explicit
// placeholder so the clause count survives.
const emptyClause = "<**None**>"

func (e *emitter) emitAttribute(node *pyast.Attribute) (string, error) {
	val, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	if val == receiverMarker {
		return receiverMarker + node.Attr, nil
	}
	return val + "." + node.Attr, nil
}

func (e *emitter) emitCall(node *pyast.Call) (string, error) {
	fn, err := e.visit(node.Func)
	if err != nil {
		return "", err
	}
	args := make([]string, 0, len(node.Args)+len(node.Keywords)+2)
	for _, a := range node.Args {
		s, err := e.visit(a)
		if err != nil {
			return "", err
		}
		args = append(args, s)
	}
	for _, kw := range node.Keywords {
		s, err := e.visit(kw)
		if err != nil {
			return "", err
		}
		args = append(args, s)
	}
	if node.Starargs != nil {
		s, err := e.visit(node.Starargs)
		if err != nil {
			return "", err
		}
		args = append(args, "*"+s)
	}
	if node.Kwargs != nil {
		s, err := e.visit(node.Kwargs)
		if err != nil {
			return "", err
		}
		args = append(args, "**"+s)
	}
	kept := args[:0]
	for _, a := range args {
		if a != "" {
			kept = append(kept, a)
		}
	}
	return fn + "(" + strings.Join(kept, ",") + ")", nil
}

func (e *emitter) emitKeyword(node *pyast.Keyword) (string, error) {
	value, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	// A keyword *argument*, not a language keyword.
	return node.Arg + "=" + value, nil
}

func (e *emitter) emitComprehension(node *pyast.Comprehension) (string, error) {
	target, err := e.visit(node.Target)
	if err != nil {
		return "", err
	}
	iter, err := e.visit(node.Iter)
	if err != nil {
		return "", err
	}
	s := target + " in " + iter
	if len(node.Ifs) > 0 {
		ifs, err := e.visitList(node.Ifs, "")
		if err != nil {
			return "", err
		}
		s += " if " + ifs
	}
	return s, nil
}

// clauseSegments renders comprehension generators, substituting the
// placeholder for any clause that comes back empty so the segment count is
// preserved.
func (e *emitter) clauseSegments(generators []pyast.Node) ([]string, error) {
	gens := make([]string, 0, len(generators))
	for _, g := range generators {
		s, err := e.visit(g)
		if err != nil {
			return nil, err
		}
		if s == "" {
			s = emptyClause
		}
		gens = append(gens, s)
	}
	return gens, nil
}

func (e *emitter) emitDict(node *pyast.Dict) (string, error) {
	if len(node.Keys) != len(node.Values) {
		diag.ReportWarning(e.opt.Reporter, diag.EmitDictMismatch, source.Span{},
			fmt.Sprintf("dict literal with %d keys and %d values on line %d", len(node.Keys), len(node.Values), node.Line()))
		return "{}", nil
	}
	items := make([]string, 0, len(node.Keys))
	for i := range node.Keys {
		key, err := e.visit(node.Keys[i])
		if err != nil {
			return "", err
		}
		value, err := e.visit(node.Values[i])
		if err != nil {
			return "", err
		}
		items = append(items, key+":"+value)
	}
	return "{" + strings.Join(items, ", ") + "}", nil
}

func (e *emitter) emitDictComp(node *pyast.DictComp) (string, error) {
	key, err := e.visit(node.Key)
	if err != nil {
		return "", err
	}
	value, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	gens, err := e.clauseSegments(node.Generators)
	if err != nil {
		return "", err
	}
	return key + ":" + value + " for " + strings.Join(gens, ""), nil
}

func (e *emitter) emitGeneratorExp(node *pyast.GeneratorExp) (string, error) {
	elt, err := e.visit(node.Elt)
	if err != nil {
		return "", err
	}
	gens, err := e.clauseSegments(node.Generators)
	if err != nil {
		return "", err
	}
	return "<gen " + elt + " for " + strings.Join(gens, ",") + ">", nil
}

func (e *emitter) emitList(node *pyast.List) (string, error) {
	elts, err := e.visitList(node.Elts, ",")
	if err != nil {
		return "", err
	}
	return "[" + elts + "]", nil
}

func (e *emitter) emitListComp(node *pyast.ListComp) (string, error) {
	elt, err := e.visit(node.Elt)
	if err != nil {
		return "", err
	}
	gens, err := e.clauseSegments(node.Generators)
	if err != nil {
		return "", err
	}
	return elt + " for " + strings.Join(gens, ""), nil
}

func (e *emitter) emitName(node *pyast.Name) (string, error) {
	if node.ID == receiverName {
		return receiverMarker, nil
	}
	return node.ID, nil
}

// NameConstant renders with the target language's own spelling, a distinct
// token from the source one.
func (e *emitter) emitNameConstant(node *pyast.NameConstant) (string, error) {
	switch node.Value {
	case "True":
		return "true", nil
	case "False":
		return "false", nil
	case "None":
		return "null", nil
	}
	return "", fmt.Errorf("emit: unknown name constant %q", node.Value)
}

// Num renders through the target's canonical numeric form: integers in
// decimal, floats via the shortest round-trip spelling. Source integers have
// no width limit, so past int64 the digits go through big.Int instead of
// losing precision in float64.
func (e *emitter) emitNum(node *pyast.Num) (string, error) {
	if v, err := strconv.ParseInt(node.Spelling, 0, 64); err == nil {
		return strconv.FormatInt(v, 10), nil
	} else if errors.Is(err, strconv.ErrRange) {
		if v, ok := new(big.Int).SetString(node.Spelling, 0); ok {
			return v.String(), nil
		}
	}
	if v, err := strconv.ParseFloat(node.Spelling, 64); err == nil {
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, nil
	}
	return node.Spelling, nil
}

func (e *emitter) emitSet(node *pyast.Set) (string, error) {
	elts, err := e.visitList(node.Elts, ", ")
	if err != nil {
		return "", err
	}
	return "{" + elts + "}", nil
}

func (e *emitter) emitSetComp(node *pyast.SetComp) (string, error) {
	elt, err := e.visit(node.Elt)
	if err != nil {
		return "", err
	}
	gens, err := e.clauseSegments(node.Generators)
	if err != nil {
		return "", err
	}
	return elt + " for " + strings.Join(gens, ""), nil
}

func (e *emitter) emitSlice(node *pyast.Slice) (string, error) {
	lower, upper, step := "", "", ""
	var err error
	if node.Lower != nil {
		if lower, err = e.visit(node.Lower); err != nil {
			return "", err
		}
	}
	if node.Upper != nil {
		if upper, err = e.visit(node.Upper); err != nil {
			return "", err
		}
	}
	if node.Step != nil {
		if step, err = e.visit(node.Step); err != nil {
			return "", err
		}
	}
	if step != "" {
		return lower + ":" + upper + ":" + step, nil
	}
	return lower + ":" + upper, nil
}

func (e *emitter) emitStarred(node *pyast.Starred) (string, error) {
	value, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	return "*" + value, nil
}

func (e *emitter) emitSubscript(node *pyast.Subscript) (string, error) {
	value, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	index, err := e.visit(node.Index)
	if err != nil {
		return "", err
	}
	return value + "[" + index + "]", nil
}

func (e *emitter) emitTuple(node *pyast.Tuple) (string, error) {
	elts, err := e.visitList(node.Elts, ", ")
	if err != nil {
		return "", err
	}
	return "(" + elts + ")", nil
}

func (e *emitter) emitYield(node *pyast.Yield) (string, error) {
	if node.Value == nil {
		return "yield", nil
	}
	value, err := e.visit(node.Value)
	if err != nil {
		return "", err
	}
	return "yield " + value, nil
}

func (e *emitter) emitAlias(node *pyast.Alias) (string, error) {
	if node.AsName != "" {
		return node.Name + " as " + node.AsName, nil
	}
	return node.Name, nil
}
