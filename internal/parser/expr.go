package parser

import (
	"py2coffee/internal/diag"
	"py2coffee/internal/pyast"
	"py2coffee/internal/token"
)

// parseExpr parses a full expression: lambda, conditional, or anything
// below.
func (p *Parser) parseExpr() pyast.Node {
	if p.atKeyword("lambda") {
		return p.parseLambda()
	}
	body := p.parseOr()
	if p.atKeyword("if") {
		t := p.next()
		test := p.parseOr()
		p.expectKeyword("else")
		orelse := p.parseExpr()
		return &pyast.IfExp{Base: base(t), Test: test, Body: body, Orelse: orelse}
	}
	return body
}

// parseTestlist parses a comma list of expressions; two or more become a
// Tuple.
func (p *Parser) parseTestlist() pyast.Node {
	first := p.parseExpr()
	if !p.atOp(",") {
		return first
	}
	elts := []pyast.Node{first}
	for p.eatOp(",") {
		if !p.exprStart() {
			break
		}
		elts = append(elts, p.parseExpr())
	}
	return &pyast.Tuple{Base: pyast.Base{LineNo: lineOf(first)}, Elts: elts}
}

func lineOf(n pyast.Node) uint32 {
	if n == nil {
		return 0
	}
	return n.Line()
}

// exprStart reports whether the cursor could begin an expression.
func (p *Parser) exprStart() bool {
	t := p.cur()
	switch t.Kind {
	case token.Number, token.String:
		return true
	case token.Name:
		if !token.IsKeyword(t.Val) {
			return true
		}
		switch t.Val {
		case "lambda", "not", "None", "True", "False", "yield":
			return true
		}
		return false
	case token.Op:
		switch t.Val {
		case "(", "[", "{", "+", "-", "~", "*", "**":
			return true
		}
	}
	return false
}

func (p *Parser) parseLambda() pyast.Node {
	t := p.next()
	node := &pyast.Lambda{Base: base(t)}
	node.Args = p.parseParams(":", false)
	p.expectOp(":", diag.SynExpectColon)
	node.Body = p.parseExpr()
	return node
}

func (p *Parser) parseOr() pyast.Node {
	left := p.parseAnd()
	if !p.atKeyword("or") {
		return left
	}
	node := &pyast.BoolOp{Base: pyast.Base{LineNo: lineOf(left)}, Op: pyast.OpOr, Values: []pyast.Node{left}}
	for p.eatKeyword("or") {
		node.Values = append(node.Values, p.parseAnd())
	}
	return node
}

func (p *Parser) parseAnd() pyast.Node {
	left := p.parseNot()
	if !p.atKeyword("and") {
		return left
	}
	node := &pyast.BoolOp{Base: pyast.Base{LineNo: lineOf(left)}, Op: pyast.OpAnd, Values: []pyast.Node{left}}
	for p.eatKeyword("and") {
		node.Values = append(node.Values, p.parseNot())
	}
	return node
}

func (p *Parser) parseNot() pyast.Node {
	if p.atKeyword("not") {
		t := p.next()
		return &pyast.UnaryOp{Base: base(t), Op: pyast.OpNot, Operand: p.parseNot()}
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() pyast.Node {
	left := p.parseBitOr()
	var ops []pyast.Op
	var comparators []pyast.Node
	for {
		op, ok := p.comparisonOp()
		if !ok {
			break
		}
		ops = append(ops, op)
		comparators = append(comparators, p.parseBitOr())
	}
	if len(ops) == 0 {
		return left
	}
	return &pyast.Compare{
		Base: pyast.Base{LineNo: lineOf(left)},
		Left: left, Ops: ops, Comparators: comparators,
	}
}

// comparisonOp consumes one comparison operator if present.
func (p *Parser) comparisonOp() (pyast.Op, bool) {
	if p.at(token.Op) {
		var op pyast.Op
		switch p.cur().Val {
		case "<":
			op = pyast.OpLt
		case ">":
			op = pyast.OpGt
		case "<=":
			op = pyast.OpLtE
		case ">=":
			op = pyast.OpGtE
		case "==":
			op = pyast.OpEq
		case "!=":
			op = pyast.OpNotEq
		default:
			return 0, false
		}
		p.next()
		return op, true
	}
	switch {
	case p.atKeyword("in"):
		p.next()
		return pyast.OpIn, true
	case p.atKeyword("not") && p.peek().Kind == token.Name && p.peek().Val == "in":
		p.next()
		p.next()
		return pyast.OpNotIn, true
	case p.atKeyword("is"):
		p.next()
		if p.eatKeyword("not") {
			return pyast.OpIsNot, true
		}
		return pyast.OpIs, true
	}
	return 0, false
}

var binOps = map[string]pyast.Op{
	"|": pyast.OpBitOr, "^": pyast.OpBitXor, "&": pyast.OpBitAnd,
	"<<": pyast.OpLShift, ">>": pyast.OpRShift,
	"+": pyast.OpAdd, "-": pyast.OpSub,
	"*": pyast.OpMult, "/": pyast.OpDiv, "//": pyast.OpFloorDiv, "%": pyast.OpMod,
}

// binaryChain parses a left-associative chain over the given operator
// spellings.
func (p *Parser) binaryChain(operand func() pyast.Node, spellings ...string) pyast.Node {
	left := operand()
	for {
		matched := false
		for _, s := range spellings {
			if p.atOp(s) {
				p.next()
				right := operand()
				left = &pyast.BinOp{
					Base: pyast.Base{LineNo: lineOf(left)},
					Left: left, Op: binOps[s], Right: right,
				}
				matched = true
				break
			}
		}
		if !matched {
			return left
		}
	}
}

func (p *Parser) parseBitOr() pyast.Node {
	return p.binaryChain(p.parseBitXor, "|")
}

func (p *Parser) parseBitXor() pyast.Node {
	return p.binaryChain(p.parseBitAnd, "^")
}

func (p *Parser) parseBitAnd() pyast.Node {
	return p.binaryChain(p.parseShift, "&")
}

func (p *Parser) parseShift() pyast.Node {
	return p.binaryChain(p.parseArith, "<<", ">>")
}

func (p *Parser) parseArith() pyast.Node {
	return p.binaryChain(p.parseTerm, "+", "-")
}

func (p *Parser) parseTerm() pyast.Node {
	return p.binaryChain(p.parseFactor, "*", "/", "//", "%")
}

func (p *Parser) parseFactor() pyast.Node {
	t := p.cur()
	if t.Kind == token.Op {
		switch t.Val {
		case "+":
			p.next()
			return &pyast.UnaryOp{Base: base(t), Op: pyast.OpUAdd, Operand: p.parseFactor()}
		case "-":
			p.next()
			return &pyast.UnaryOp{Base: base(t), Op: pyast.OpUSub, Operand: p.parseFactor()}
		case "~":
			p.next()
			return &pyast.UnaryOp{Base: base(t), Op: pyast.OpInvert, Operand: p.parseFactor()}
		}
	}
	return p.parsePower()
}

// parsePower binds ** tighter than unary on the left, looser on the right.
func (p *Parser) parsePower() pyast.Node {
	left := p.parsePostfix()
	if p.eatOp("**") {
		return &pyast.BinOp{
			Base: pyast.Base{LineNo: lineOf(left)},
			Left: left, Op: pyast.OpPow, Right: p.parseFactor(),
		}
	}
	return left
}

// parsePostfix parses an atom followed by call, subscript and attribute
// trailers.
func (p *Parser) parsePostfix() pyast.Node {
	node := p.parseAtom()
	for {
		switch {
		case p.atOp("("):
			node = p.parseCall(node)
		case p.atOp("["):
			node = p.parseSubscript(node)
		case p.atOp(".") && p.peek().Kind == token.Name:
			p.next()
			attr := p.next().Val
			node = &pyast.Attribute{Base: pyast.Base{LineNo: lineOf(node)}, Value: node, Attr: attr}
		default:
			return node
		}
	}
}

func (p *Parser) parseCall(fn pyast.Node) pyast.Node {
	p.next() // (
	node := &pyast.Call{Base: pyast.Base{LineNo: lineOf(fn)}, Func: fn}
	for !p.atOp(")") && !p.at(token.EOF) {
		switch {
		case p.eatOp("*"):
			node.Starargs = p.parseExpr()
		case p.eatOp("**"):
			node.Kwargs = p.parseExpr()
		case p.cur().Kind == token.Name && !p.cur().IsKeywordToken() && p.peekOpIs("="):
			kt := p.next()
			p.next()
			node.Keywords = append(node.Keywords, &pyast.Keyword{
				Base: base(kt), Arg: kt.Val, Value: p.parseExpr(),
			})
		default:
			arg := p.parseExpr()
			if p.atKeyword("for") {
				// bare generator argument: f(x for x in xs)
				arg = &pyast.GeneratorExp{
					Base: pyast.Base{LineNo: lineOf(arg)},
					Elt:  arg, Generators: p.parseCompClauses(),
				}
			}
			node.Args = append(node.Args, arg)
		}
		if !p.eatOp(",") {
			break
		}
	}
	p.expectOp(")", diag.SynUnclosedDelimiter)
	return node
}

func (p *Parser) parseSubscript(value pyast.Node) pyast.Node {
	p.next() // [
	node := &pyast.Subscript{Base: pyast.Base{LineNo: lineOf(value)}, Value: value}
	var lower pyast.Node
	if !p.atOp(":") && !p.atOp("]") {
		lower = p.parseTestlist()
	}
	if p.atOp(":") {
		sl := &pyast.Slice{Base: pyast.Base{LineNo: lineOf(value)}, Lower: lower}
		p.next()
		if !p.atOp(":") && !p.atOp("]") {
			sl.Upper = p.parseExpr()
		}
		if p.eatOp(":") && !p.atOp("]") {
			sl.Step = p.parseExpr()
		}
		node.Index = sl
	} else {
		node.Index = lower
	}
	p.expectOp("]", diag.SynUnclosedDelimiter)
	return node
}

func (p *Parser) parseAtom() pyast.Node {
	t := p.cur()
	switch t.Kind {
	case token.Number:
		p.next()
		return &pyast.Num{Base: base(t), Spelling: t.Val}
	case token.String:
		return p.parseStringAtom()
	case token.Name:
		switch t.Val {
		case "True", "False", "None":
			p.next()
			return &pyast.NameConstant{Base: base(t), Value: t.Val}
		case "yield":
			p.next()
			node := &pyast.Yield{Base: base(t)}
			if p.exprStart() {
				node.Value = p.parseTestlist()
			}
			return node
		case "lambda":
			return p.parseLambda()
		}
		if token.IsKeyword(t.Val) {
			p.errorf(diag.SynExpectExpression, "unexpected keyword %q", t.Val)
			p.next()
			return nil
		}
		p.next()
		return &pyast.Name{Base: base(t), ID: t.Val}
	case token.Op:
		switch t.Val {
		case "(":
			return p.parseParenAtom()
		case "[":
			return p.parseListAtom()
		case "{":
			return p.parseBraceAtom()
		case "*":
			p.next()
			return &pyast.Starred{Base: base(t), Value: p.parseExpr()}
		}
	}
	p.errorf(diag.SynExpectExpression, "expected expression, found %q", t.Val)
	p.next()
	return nil
}

// parseStringAtom consumes a run of adjacent string literals as one node,
// the implicit concatenation rule. Value holds the cooked contents; the
// exact spelling is recovered from the token stream at emission time.
func (p *Parser) parseStringAtom() pyast.Node {
	t := p.cur()
	cooked := ""
	for p.at(token.String) {
		cooked += cookString(p.next().Val)
	}
	return &pyast.Str{Base: base(t), Value: cooked}
}

func (p *Parser) parseParenAtom() pyast.Node {
	t := p.next() // (
	if p.atOp(")") {
		p.next()
		return &pyast.Tuple{Base: base(t)}
	}
	first := p.parseExpr()
	switch {
	case p.atKeyword("for"):
		node := &pyast.GeneratorExp{Base: base(t), Elt: first, Generators: p.parseCompClauses()}
		p.expectOp(")", diag.SynUnclosedDelimiter)
		return node
	case p.atOp(","):
		node := &pyast.Tuple{Base: base(t), Elts: []pyast.Node{first}}
		for p.eatOp(",") {
			if p.atOp(")") {
				break
			}
			node.Elts = append(node.Elts, p.parseExpr())
		}
		p.expectOp(")", diag.SynUnclosedDelimiter)
		return node
	}
	p.expectOp(")", diag.SynUnclosedDelimiter)
	return first
}

func (p *Parser) parseListAtom() pyast.Node {
	t := p.next() // [
	if p.atOp("]") {
		p.next()
		return &pyast.List{Base: base(t)}
	}
	first := p.parseExpr()
	if p.atKeyword("for") {
		node := &pyast.ListComp{Base: base(t), Elt: first, Generators: p.parseCompClauses()}
		p.expectOp("]", diag.SynUnclosedDelimiter)
		return node
	}
	node := &pyast.List{Base: base(t), Elts: []pyast.Node{first}}
	for p.eatOp(",") {
		if p.atOp("]") {
			break
		}
		node.Elts = append(node.Elts, p.parseExpr())
	}
	p.expectOp("]", diag.SynUnclosedDelimiter)
	return node
}

// parseBraceAtom disambiguates dict, set, and their comprehensions.
func (p *Parser) parseBraceAtom() pyast.Node {
	t := p.next() // {
	if p.atOp("}") {
		p.next()
		return &pyast.Dict{Base: base(t)}
	}
	first := p.parseExpr()
	if p.eatOp(":") {
		value := p.parseExpr()
		if p.atKeyword("for") {
			node := &pyast.DictComp{Base: base(t), Key: first, Value: value, Generators: p.parseCompClauses()}
			p.expectOp("}", diag.SynUnclosedDelimiter)
			return node
		}
		node := &pyast.Dict{Base: base(t), Keys: []pyast.Node{first}, Values: []pyast.Node{value}}
		for p.eatOp(",") {
			if p.atOp("}") {
				break
			}
			node.Keys = append(node.Keys, p.parseExpr())
			p.expectOp(":", diag.SynExpectColon)
			node.Values = append(node.Values, p.parseExpr())
		}
		p.expectOp("}", diag.SynUnclosedDelimiter)
		return node
	}
	if p.atKeyword("for") {
		node := &pyast.SetComp{Base: base(t), Elt: first, Generators: p.parseCompClauses()}
		p.expectOp("}", diag.SynUnclosedDelimiter)
		return node
	}
	node := &pyast.Set{Base: base(t), Elts: []pyast.Node{first}}
	for p.eatOp(",") {
		if p.atOp("}") {
			break
		}
		node.Elts = append(node.Elts, p.parseExpr())
	}
	p.expectOp("}", diag.SynUnclosedDelimiter)
	return node
}

// parseCompClauses parses 'for target in iter [if cond]...' clauses.
func (p *Parser) parseCompClauses() []pyast.Node {
	var clauses []pyast.Node
	for p.atKeyword("for") {
		t := p.next()
		clause := &pyast.Comprehension{Base: base(t), Target: p.parseTargetList()}
		p.expectKeyword("in")
		clause.Iter = p.parseOr()
		for p.eatKeyword("if") {
			clause.Ifs = append(clause.Ifs, p.parseOr())
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// parseTarget parses an assignment target without comparison operators, so
// 'for x in xs' does not swallow the 'in'.
func (p *Parser) parseTarget() pyast.Node {
	if p.atOp("*") {
		t := p.next()
		return &pyast.Starred{Base: base(t), Value: p.parseTarget()}
	}
	return p.parsePostfix()
}

func (p *Parser) parseTargetList() pyast.Node {
	first := p.parseTarget()
	if !p.atOp(",") {
		return first
	}
	elts := []pyast.Node{first}
	for p.eatOp(",") {
		if !p.exprStart() {
			break
		}
		elts = append(elts, p.parseTarget())
	}
	return &pyast.Tuple{Base: pyast.Base{LineNo: lineOf(first)}, Elts: elts}
}
