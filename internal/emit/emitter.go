package emit

import (
	"fmt"
	"strings"

	"py2coffee/internal/diag"
	"py2coffee/internal/pyast"
	"py2coffee/internal/toksync"
)

// Options configures one emission pass.
type Options struct {
	// Strict makes an unknown operator kind fatal instead of rendering a
	// bracketed placeholder.
	Strict bool
	// Reporter receives diagnostic-and-degrade conditions (string queue
	// underflow, dict mismatches, permissive-mode operators).
	Reporter diag.Reporter
}

// nilChild is rendered whenever a nil child node is visited directly.
const nilChild = "null"

// emitter walks one syntax tree and produces CoffeeScript text. Its only
// state evolves with the call stack of visit: the indentation level and the
// enclosing-class name stack. Both are reset per file and never shared.
type emitter struct {
	sync       *toksync.Sync
	opt        Options
	level      int
	classStack []string
}

// Emit translates a parsed module into CoffeeScript text, consulting the
// synchronizer for leading lines and literal spellings. A construct without
// an emission rule aborts the file.
func Emit(tree pyast.Node, sync *toksync.Sync, opt Options) (string, error) {
	if opt.Reporter == nil {
		opt.Reporter = diag.NopReporter{}
	}
	e := &emitter{sync: sync, opt: opt}
	return e.visit(tree)
}

// visit dispatches by node kind to exactly one rule. The switch is total
// over the grammar: a kind missing here is a fatal "unsupported construct"
// error, not a silent drop.
func (e *emitter) visit(n pyast.Node) (string, error) {
	if n == nil {
		return nilChild, nil
	}
	switch node := n.(type) {
	case *pyast.Module:
		return e.emitModule(node)
	case *pyast.ClassDef:
		return e.emitClassDef(node)
	case *pyast.FunctionDef:
		return e.emitFunctionDef(node)
	case *pyast.Lambda:
		return e.emitLambda(node)

	case *pyast.Assert:
		return e.emitAssert(node)
	case *pyast.Assign:
		return e.emitAssign(node)
	case *pyast.AugAssign:
		return e.emitAugAssign(node)
	case *pyast.Break:
		return e.emitBreak(node)
	case *pyast.Continue:
		return e.emitContinue(node)
	case *pyast.Delete:
		return e.emitDelete(node)
	case *pyast.ExprStmt:
		return e.emitExprStmt(node)
	case *pyast.For:
		return e.emitFor(node)
	case *pyast.Global:
		return e.emitGlobal(node)
	case *pyast.If:
		return e.emitIf(node)
	case *pyast.Import:
		return e.emitImport(node)
	case *pyast.ImportFrom:
		return e.emitImportFrom(node)
	case *pyast.Pass:
		return e.emitPass(node)
	case *pyast.Raise:
		return e.emitRaise(node)
	case *pyast.Return:
		return e.emitReturn(node)
	case *pyast.Try:
		return e.emitTry(node)
	case *pyast.ExceptHandler:
		return e.emitExceptHandler(node)
	case *pyast.While:
		return e.emitWhile(node)
	case *pyast.With:
		return e.emitWith(node)

	case *pyast.Arguments:
		return e.emitArguments(node)
	case *pyast.Arg:
		return node.Name, nil
	case *pyast.Keyword:
		return e.emitKeyword(node)
	case *pyast.Comprehension:
		return e.emitComprehension(node)
	case *pyast.Alias:
		return e.emitAlias(node)

	case *pyast.Attribute:
		return e.emitAttribute(node)
	case *pyast.BinOp:
		return e.emitBinOp(node)
	case *pyast.BoolOp:
		return e.emitBoolOp(node)
	case *pyast.Call:
		return e.emitCall(node)
	case *pyast.Compare:
		return e.emitCompare(node)
	case *pyast.Dict:
		return e.emitDict(node)
	case *pyast.DictComp:
		return e.emitDictComp(node)
	case *pyast.GeneratorExp:
		return e.emitGeneratorExp(node)
	case *pyast.IfExp:
		return e.emitIfExp(node)
	case *pyast.List:
		return e.emitList(node)
	case *pyast.ListComp:
		return e.emitListComp(node)
	case *pyast.Name:
		return e.emitName(node)
	case *pyast.NameConstant:
		return e.emitNameConstant(node)
	case *pyast.Num:
		return e.emitNum(node)
	case *pyast.Set:
		return e.emitSet(node)
	case *pyast.SetComp:
		return e.emitSetComp(node)
	case *pyast.Slice:
		return e.emitSlice(node)
	case *pyast.Starred:
		return e.emitStarred(node)
	case *pyast.Str:
		return e.sync.RecoverString(node), nil
	case *pyast.Subscript:
		return e.emitSubscript(node)
	case *pyast.Tuple:
		return e.emitTuple(node)
	case *pyast.UnaryOp:
		return e.emitUnaryOp(node)
	case *pyast.Yield:
		return e.emitYield(node)
	}
	return "", fmt.Errorf("emit: unsupported construct %s", n.Kind())
}

// visitList renders a node sequence joined by sep (comma-space for
// expression lists, empty for statement blocks).
func (e *emitter) visitList(nodes []pyast.Node, sep string) (string, error) {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		s, err := e.visit(n)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}

// indent prefixes s with the current indentation. Leading newlines in s are
// counted, stripped, and re-emitted before the indent so recovered blank
// lines keep their exact count.
func (e *emitter) indent(s string) string {
	n := 0
	for strings.HasPrefix(s, "\n") {
		n++
		s = s[1:]
	}
	return strings.Repeat("\n", n) + strings.Repeat(" ", 4*e.level) + s
}

// body renders a statement block one level deeper. The level is restored on
// every exit path, including errors.
func (e *emitter) body(stmts []pyast.Node) (string, error) {
	e.level++
	defer func() { e.level-- }()
	var b strings.Builder
	for _, stmt := range stmts {
		s, err := e.visit(stmt)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// leading prepends the recovered comment/blank lines for the node.
func (e *emitter) leading(n pyast.Node) string {
	return e.sync.LeadingString(n)
}
