package pyast

// Attribute is value.attr access.
type Attribute struct {
	Base
	Value Node
	Attr  string
}

func (*Attribute) Kind() Kind { return KindAttribute }

// BinOp is a binary arithmetic/bitwise operation.
type BinOp struct {
	Base
	Left  Node
	Op    Op
	Right Node
}

func (*BinOp) Kind() Kind { return KindBinOp }

// BoolOp joins two or more values with 'and' or 'or'.
type BoolOp struct {
	Base
	Op     Op
	Values []Node
}

func (*BoolOp) Kind() Kind { return KindBoolOp }

// Call is a function call with positional args and keyword args.
type Call struct {
	Base
	Func     Node
	Args     []Node
	Keywords []Node // *Keyword
	Starargs Node
	Kwargs   Node
}

func (*Call) Kind() Kind { return KindCall }

// Keyword is one name=value argument in a call.
type Keyword struct {
	Base
	Arg   string
	Value Node
}

func (*Keyword) Kind() Kind { return KindKeyword }

// Compare is a chained comparison: Left op0 comparators[0] op1 ...
type Compare struct {
	Base
	Left        Node
	Ops         []Op
	Comparators []Node
}

func (*Compare) Kind() Kind { return KindCompare }

// Dict is a dict literal; Keys and Values pair positionally.
type Dict struct {
	Base
	Keys   []Node
	Values []Node
}

func (*Dict) Kind() Kind { return KindDict }

// DictComp is a dict comprehension.
type DictComp struct {
	Base
	Key        Node
	Value      Node
	Generators []Node // *Comprehension
}

func (*DictComp) Kind() Kind { return KindDictComp }

// GeneratorExp is a generator expression.
type GeneratorExp struct {
	Base
	Elt        Node
	Generators []Node // *Comprehension
}

func (*GeneratorExp) Kind() Kind { return KindGeneratorExp }

// Comprehension is one 'for target in iter [if cond]...' clause.
type Comprehension struct {
	Base
	Target Node
	Iter   Node
	Ifs    []Node
}

func (*Comprehension) Kind() Kind { return KindComprehension }

// IfExp is the ternary 'body if test else orelse'.
type IfExp struct {
	Base
	Test   Node
	Body   Node
	Orelse Node
}

func (*IfExp) Kind() Kind { return KindIfExp }

// Lambda is an anonymous function expression.
type Lambda struct {
	Base
	Args *Arguments
	Body Node
}

func (*Lambda) Kind() Kind { return KindLambda }

// List is a list literal.
type List struct {
	Base
	Elts []Node
}

func (*List) Kind() Kind { return KindList }

// ListComp is a list comprehension.
type ListComp struct {
	Base
	Elt        Node
	Generators []Node // *Comprehension
}

func (*ListComp) Kind() Kind { return KindListComp }

// Name is an identifier reference.
type Name struct {
	Base
	ID string
}

func (*Name) Kind() Kind { return KindName }

// NameConstant is True, False, or None.
type NameConstant struct {
	Base
	Value string // "True", "False", "None"
}

func (*NameConstant) Kind() Kind { return KindNameConstant }

// Num is a numeric literal; Spelling keeps the source text.
type Num struct {
	Base
	Spelling string
}

func (*Num) Kind() Kind { return KindNum }

// Set is a set literal.
type Set struct {
	Base
	Elts []Node
}

func (*Set) Kind() Kind { return KindSet }

// SetComp is a set comprehension.
type SetComp struct {
	Base
	Elt        Node
	Generators []Node // *Comprehension
}

func (*SetComp) Kind() Kind { return KindSetComp }

// Slice is a [lower:upper:step] subscript; any part may be nil.
type Slice struct {
	Base
	Lower Node
	Upper Node
	Step  Node
}

func (*Slice) Kind() Kind { return KindSlice }

// Starred is *value in a call or assignment context.
type Starred struct {
	Base
	Value Node
}

func (*Starred) Kind() Kind { return KindStarred }

// Str is a string literal. Value holds the unquoted contents; the original
// spelling (quotes and escapes) is recovered from the token stream at
// emission time.
type Str struct {
	Base
	Value string
}

func (*Str) Kind() Kind { return KindStr }

// Subscript is value[slice].
type Subscript struct {
	Base
	Value Node
	Index Node
}

func (*Subscript) Kind() Kind { return KindSubscript }

// Tuple is a tuple literal or target.
type Tuple struct {
	Base
	Elts []Node
}

func (*Tuple) Kind() Kind { return KindTuple }

// UnaryOp is a unary operation.
type UnaryOp struct {
	Base
	Op      Op
	Operand Node
}

func (*UnaryOp) Kind() Kind { return KindUnaryOp }

// Yield is a yield expression with an optional value.
type Yield struct {
	Base
	Value Node
}

func (*Yield) Kind() Kind { return KindYield }
