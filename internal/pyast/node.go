package pyast

// Node is one construct of the Python grammar. Every node reports its kind
// and the 1-based source line it starts on (0 when the parser had no line
// to attach).
type Node interface {
	Kind() Kind
	Line() uint32
}

// Base carries the source line shared by all node variants.
type Base struct {
	LineNo uint32
}

func (b Base) Line() uint32 { return b.LineNo }

// Kind identifies a node variant. The emitter dispatches over this set and
// must stay total: adding a kind here without an emission rule is a bug the
// emitter reports as a fatal "unsupported construct" error.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindModule
	KindClassDef
	KindFunctionDef

	// Statements
	KindAssert
	KindAssign
	KindAugAssign
	KindBreak
	KindContinue
	KindDelete
	KindExprStmt
	KindFor
	KindGlobal
	KindIf
	KindImport
	KindImportFrom
	KindPass
	KindRaise
	KindReturn
	KindTry
	KindWhile
	KindWith

	// Clause helpers
	KindExceptHandler
	KindArguments
	KindArg
	KindKeyword
	KindComprehension
	KindAlias

	// Expressions
	KindAttribute
	KindBinOp
	KindBoolOp
	KindCall
	KindCompare
	KindDict
	KindDictComp
	KindGeneratorExp
	KindIfExp
	KindLambda
	KindList
	KindListComp
	KindName
	KindNameConstant
	KindNum
	KindSet
	KindSetComp
	KindSlice
	KindStarred
	KindStr
	KindSubscript
	KindTuple
	KindUnaryOp
	KindYield
)

var kindNames = map[Kind]string{
	KindInvalid:       "Invalid",
	KindModule:        "Module",
	KindClassDef:      "ClassDef",
	KindFunctionDef:   "FunctionDef",
	KindAssert:        "Assert",
	KindAssign:        "Assign",
	KindAugAssign:     "AugAssign",
	KindBreak:         "Break",
	KindContinue:      "Continue",
	KindDelete:        "Delete",
	KindExprStmt:      "ExprStmt",
	KindFor:           "For",
	KindGlobal:        "Global",
	KindIf:            "If",
	KindImport:        "Import",
	KindImportFrom:    "ImportFrom",
	KindPass:          "Pass",
	KindRaise:         "Raise",
	KindReturn:        "Return",
	KindTry:           "Try",
	KindWhile:         "While",
	KindWith:          "With",
	KindExceptHandler: "ExceptHandler",
	KindArguments:     "Arguments",
	KindArg:           "Arg",
	KindKeyword:       "Keyword",
	KindComprehension: "Comprehension",
	KindAlias:         "Alias",
	KindAttribute:     "Attribute",
	KindBinOp:         "BinOp",
	KindBoolOp:        "BoolOp",
	KindCall:          "Call",
	KindCompare:       "Compare",
	KindDict:          "Dict",
	KindDictComp:      "DictComp",
	KindGeneratorExp:  "GeneratorExp",
	KindIfExp:         "IfExp",
	KindLambda:        "Lambda",
	KindList:          "List",
	KindListComp:      "ListComp",
	KindName:          "Name",
	KindNameConstant:  "NameConstant",
	KindNum:           "Num",
	KindSet:           "Set",
	KindSetComp:       "SetComp",
	KindSlice:         "Slice",
	KindStarred:       "Starred",
	KindStr:           "Str",
	KindSubscript:     "Subscript",
	KindTuple:         "Tuple",
	KindUnaryOp:       "UnaryOp",
	KindYield:         "Yield",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
