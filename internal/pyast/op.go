package pyast

// Op identifies an operator node: binary, boolean, comparison, unary, or
// expression-context marker. Context markers never reach emitted output in
// well-formed trees but the rendering table stays total over them.
type Op uint8

const (
	OpInvalid Op = iota

	// Binary operators
	OpAdd
	OpBitAnd
	OpBitOr
	OpBitXor
	OpDiv
	OpFloorDiv
	OpLShift
	OpMod
	OpMult
	OpPow
	OpRShift
	OpSub

	// Boolean operators
	OpAnd
	OpOr

	// Comparison operators
	OpEq
	OpGt
	OpGtE
	OpIn
	OpIs
	OpIsNot
	OpLt
	OpLtE
	OpNotEq
	OpNotIn

	// Unary operators
	OpInvert
	OpNot
	OpUAdd
	OpUSub

	// Context markers
	OpLoad
	OpStore
	OpDel
	OpParam
	OpAugLoad
	OpAugStore
)

var opNames = map[Op]string{
	OpAdd:      "Add",
	OpBitAnd:   "BitAnd",
	OpBitOr:    "BitOr",
	OpBitXor:   "BitXor",
	OpDiv:      "Div",
	OpFloorDiv: "FloorDiv",
	OpLShift:   "LShift",
	OpMod:      "Mod",
	OpMult:     "Mult",
	OpPow:      "Pow",
	OpRShift:   "RShift",
	OpSub:      "Sub",
	OpAnd:      "And",
	OpOr:       "Or",
	OpEq:       "Eq",
	OpGt:       "Gt",
	OpGtE:      "GtE",
	OpIn:       "In",
	OpIs:       "Is",
	OpIsNot:    "IsNot",
	OpLt:       "Lt",
	OpLtE:      "LtE",
	OpNotEq:    "NotEq",
	OpNotIn:    "NotIn",
	OpInvert:   "Invert",
	OpNot:      "Not",
	OpUAdd:     "UAdd",
	OpUSub:     "USub",
	OpLoad:     "Load",
	OpStore:    "Store",
	OpDel:      "Del",
	OpParam:    "Param",
	OpAugLoad:  "AugLoad",
	OpAugStore: "AugStore",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "Invalid"
}
