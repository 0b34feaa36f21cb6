package pyast

// Module is the root of one parsed file.
type Module struct {
	Base
	Body []Node
}

func (*Module) Kind() Kind { return KindModule }

// ClassDef is a class definition with optional base classes and decorators.
type ClassDef struct {
	Base
	Name          string
	Bases         []Node
	Body          []Node
	DecoratorList []Node
}

func (*ClassDef) Kind() Kind { return KindClassDef }

// FunctionDef is a function or method definition.
type FunctionDef struct {
	Base
	Name          string
	Args          *Arguments
	Body          []Node
	DecoratorList []Node
}

func (*FunctionDef) Kind() Kind { return KindFunctionDef }

// Arguments is a parameter list: positional args, positional defaults paired
// to the trailing args, and the optional *vararg / **kwarg names.
type Arguments struct {
	Base
	Args     []Node // *Arg
	Defaults []Node
	Vararg   string
	Kwarg    string
}

func (*Arguments) Kind() Kind { return KindArguments }

// Arg is one named parameter.
type Arg struct {
	Base
	Name string
}

func (*Arg) Kind() Kind { return KindArg }

// Assert is an assert statement with an optional message.
type Assert struct {
	Base
	Test Node
	Msg  Node
}

func (*Assert) Kind() Kind { return KindAssert }

// Assign is an assignment, possibly chained (a = b = expr).
type Assign struct {
	Base
	Targets []Node
	Value   Node
}

func (*Assign) Kind() Kind { return KindAssign }

// AugAssign is an augmented assignment (target op= value).
type AugAssign struct {
	Base
	Target Node
	Op     Op
	Value  Node
}

func (*AugAssign) Kind() Kind { return KindAugAssign }

// Break is a break statement.
type Break struct {
	Base
}

func (*Break) Kind() Kind { return KindBreak }

// Continue is a continue statement.
type Continue struct {
	Base
}

func (*Continue) Kind() Kind { return KindContinue }

// Delete is a del statement.
type Delete struct {
	Base
	Targets []Node
}

func (*Delete) Kind() Kind { return KindDelete }

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	Base
	Value Node
}

func (*ExprStmt) Kind() Kind { return KindExprStmt }

// For is a for loop with an optional else block.
type For struct {
	Base
	Target Node
	Iter   Node
	Body   []Node
	Orelse []Node
}

func (*For) Kind() Kind { return KindFor }

// Global is a global declaration.
type Global struct {
	Base
	Names []string
}

func (*Global) Kind() Kind { return KindGlobal }

// If is a conditional with an optional else block; elif chains nest as a
// single-If Orelse.
type If struct {
	Base
	Test   Node
	Body   []Node
	Orelse []Node
}

func (*If) Kind() Kind { return KindIf }

// Alias is one name in an import statement, optionally renamed.
type Alias struct {
	Base
	Name   string
	AsName string
}

func (*Alias) Kind() Kind { return KindAlias }

// Import is an import statement.
type Import struct {
	Base
	Names []*Alias
}

func (*Import) Kind() Kind { return KindImport }

// ImportFrom is a from-import statement.
type ImportFrom struct {
	Base
	Module string
	Names  []*Alias
}

func (*ImportFrom) Kind() Kind { return KindImportFrom }

// Pass is a pass statement.
type Pass struct {
	Base
}

func (*Pass) Kind() Kind { return KindPass }

// Raise is a raise statement with an optional exception and cause.
type Raise struct {
	Base
	Exc   Node
	Cause Node
}

func (*Raise) Kind() Kind { return KindRaise }

// Return is a return statement with an optional value.
type Return struct {
	Base
	Value Node
}

func (*Return) Kind() Kind { return KindReturn }

// Try is a try statement with handlers, an optional else block, and an
// optional finally block.
type Try struct {
	Base
	Body      []Node
	Handlers  []Node // *ExceptHandler
	Orelse    []Node
	Finalbody []Node
}

func (*Try) Kind() Kind { return KindTry }

// ExceptHandler is one except clause.
type ExceptHandler struct {
	Base
	Type Node
	Name string
	Body []Node
}

func (*ExceptHandler) Kind() Kind { return KindExceptHandler }

// While is a while loop with an optional else block.
type While struct {
	Base
	Test   Node
	Body   []Node
	Orelse []Node
}

func (*While) Kind() Kind { return KindWhile }

// With is a with statement; one context expression with an optional target.
type With struct {
	Base
	ContextExpr  Node
	OptionalVars Node
	Body         []Node
}

func (*With) Kind() Kind { return KindWith }
