package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"py2coffee/internal/pyast"
)

// FormatTreePretty dumps a syntax tree one node per line, children
// indented. Each line shows the node kind, its source line, and the fields
// that matter for a quick read.
func FormatTreePretty(w io.Writer, root pyast.Node) error {
	d := treeDumper{w: w}
	d.dump(root, 0)
	return d.err
}

type treeDumper struct {
	w   io.Writer
	err error
}

func (d *treeDumper) printf(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *treeDumper) dump(n pyast.Node, depth int) {
	if n == nil {
		d.printf(depth, "<nil>")
		return
	}
	d.printf(depth, "%s%s [line %d]", n.Kind(), d.detail(n), n.Line())
	for _, child := range children(n) {
		d.dump(child, depth+1)
	}
}

func (d *treeDumper) detail(n pyast.Node) string {
	switch node := n.(type) {
	case *pyast.ClassDef:
		return " " + node.Name
	case *pyast.FunctionDef:
		return " " + node.Name
	case *pyast.Arg:
		return " " + node.Name
	case *pyast.Name:
		return " " + node.ID
	case *pyast.NameConstant:
		return " " + node.Value
	case *pyast.Num:
		return " " + node.Spelling
	case *pyast.Str:
		return fmt.Sprintf(" %q", node.Value)
	case *pyast.Attribute:
		return " ." + node.Attr
	case *pyast.BinOp:
		return " " + node.Op.String()
	case *pyast.BoolOp:
		return " " + node.Op.String()
	case *pyast.UnaryOp:
		return " " + node.Op.String()
	case *pyast.AugAssign:
		return " " + node.Op.String()
	case *pyast.Compare:
		names := make([]string, 0, len(node.Ops))
		for _, op := range node.Ops {
			names = append(names, op.String())
		}
		return " " + strings.Join(names, " ")
	case *pyast.Global:
		return " " + strings.Join(node.Names, ", ")
	case *pyast.Alias:
		if node.AsName != "" {
			return " " + node.Name + " as " + node.AsName
		}
		return " " + node.Name
	case *pyast.ImportFrom:
		return " " + node.Module
	case *pyast.ExceptHandler:
		if node.Name != "" {
			return " as " + node.Name
		}
	case *pyast.Keyword:
		return " " + node.Arg + "="
	}
	return ""
}

// children lists a node's direct children in source order.
func children(n pyast.Node) []pyast.Node {
	switch node := n.(type) {
	case *pyast.Module:
		return node.Body
	case *pyast.ClassDef:
		return concat(node.DecoratorList, node.Bases, node.Body)
	case *pyast.FunctionDef:
		out := append([]pyast.Node{}, node.DecoratorList...)
		if node.Args != nil {
			out = append(out, node.Args)
		}
		return append(out, node.Body...)
	case *pyast.Arguments:
		return concat(node.Args, node.Defaults, nil)
	case *pyast.Lambda:
		out := []pyast.Node{}
		if node.Args != nil {
			out = append(out, node.Args)
		}
		return append(out, node.Body)
	case *pyast.Assert:
		return compact(node.Test, node.Msg)
	case *pyast.Assign:
		return append(append([]pyast.Node{}, node.Targets...), node.Value)
	case *pyast.AugAssign:
		return compact(node.Target, node.Value)
	case *pyast.Delete:
		return node.Targets
	case *pyast.ExprStmt:
		return compact(node.Value)
	case *pyast.For:
		return concat(compact(node.Target, node.Iter), node.Body, node.Orelse)
	case *pyast.If:
		return concat(compact(node.Test), node.Body, node.Orelse)
	case *pyast.Import:
		out := make([]pyast.Node, 0, len(node.Names))
		for _, a := range node.Names {
			out = append(out, a)
		}
		return out
	case *pyast.ImportFrom:
		out := make([]pyast.Node, 0, len(node.Names))
		for _, a := range node.Names {
			out = append(out, a)
		}
		return out
	case *pyast.Raise:
		return compact(node.Exc, node.Cause)
	case *pyast.Return:
		return compact(node.Value)
	case *pyast.Try:
		return concat(node.Body, node.Handlers, concat(node.Orelse, node.Finalbody, nil))
	case *pyast.ExceptHandler:
		return concat(compact(node.Type), node.Body, nil)
	case *pyast.While:
		return concat(compact(node.Test), node.Body, node.Orelse)
	case *pyast.With:
		return concat(compact(node.ContextExpr, node.OptionalVars), node.Body, nil)
	case *pyast.Attribute:
		return compact(node.Value)
	case *pyast.BinOp:
		return compact(node.Left, node.Right)
	case *pyast.BoolOp:
		return node.Values
	case *pyast.Call:
		return concat(compact(node.Func), node.Args, concat(node.Keywords, compact(node.Starargs, node.Kwargs), nil))
	case *pyast.Keyword:
		return compact(node.Value)
	case *pyast.Compare:
		return append(compact(node.Left), node.Comparators...)
	case *pyast.Dict:
		out := make([]pyast.Node, 0, len(node.Keys)*2)
		for i := range node.Keys {
			out = append(out, node.Keys[i])
			if i < len(node.Values) {
				out = append(out, node.Values[i])
			}
		}
		return out
	case *pyast.DictComp:
		return concat(compact(node.Key, node.Value), node.Generators, nil)
	case *pyast.GeneratorExp:
		return concat(compact(node.Elt), node.Generators, nil)
	case *pyast.Comprehension:
		return concat(compact(node.Target, node.Iter), node.Ifs, nil)
	case *pyast.IfExp:
		return compact(node.Test, node.Body, node.Orelse)
	case *pyast.List:
		return node.Elts
	case *pyast.ListComp:
		return concat(compact(node.Elt), node.Generators, nil)
	case *pyast.Set:
		return node.Elts
	case *pyast.SetComp:
		return concat(compact(node.Elt), node.Generators, nil)
	case *pyast.Slice:
		return compact(node.Lower, node.Upper, node.Step)
	case *pyast.Starred:
		return compact(node.Value)
	case *pyast.Subscript:
		return compact(node.Value, node.Index)
	case *pyast.Tuple:
		return node.Elts
	case *pyast.UnaryOp:
		return compact(node.Operand)
	case *pyast.Yield:
		return compact(node.Value)
	}
	return nil
}

func compact(nodes ...pyast.Node) []pyast.Node {
	out := make([]pyast.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func concat(a, b, c []pyast.Node) []pyast.Node {
	out := make([]pyast.Node, 0, len(a)+len(b)+len(c))
	out = append(out, a...)
	out = append(out, b...)
	return append(out, c...)
}
