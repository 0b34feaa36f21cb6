package parser

import (
	"py2coffee/internal/diag"
	"py2coffee/internal/pyast"
	"py2coffee/internal/token"
)

// parseStatementInto parses one statement line. A compound statement
// contributes one node; a line of semicolon-separated small statements
// contributes one node each.
func (p *Parser) parseStatementInto(body *[]pyast.Node) {
	t := p.cur()
	if t.Kind == token.Name && token.IsKeyword(t.Val) {
		switch t.Val {
		case "if":
			appendNode(body, p.parseIf())
			return
		case "while":
			appendNode(body, p.parseWhile())
			return
		case "for":
			appendNode(body, p.parseFor())
			return
		case "try":
			appendNode(body, p.parseTry())
			return
		case "with":
			appendNode(body, p.parseWith())
			return
		case "def":
			appendNode(body, p.parseFunctionDef(nil))
			return
		case "class":
			appendNode(body, p.parseClassDef(nil))
			return
		case "else", "elif", "except", "finally", "as", "in", "is",
			"and", "or", "import", "from":
			// import/from are small statements, the rest are misplaced
			// clause keywords; both fall through to the small-stmt line.
		}
	}
	if p.atOp("@") {
		appendNode(body, p.parseDecorated())
		return
	}
	p.parseSmallStmtLineInto(body)
}

func appendNode(body *[]pyast.Node, n pyast.Node) {
	if n != nil {
		*body = append(*body, n)
	}
}

// parseSmallStmtLineInto parses small statements separated by ';' and the
// terminating newline.
func (p *Parser) parseSmallStmtLineInto(body *[]pyast.Node) {
	for {
		appendNode(body, p.parseSmallStmt())
		if !p.eatOp(";") || p.endOfStmt() {
			break
		}
	}
	if p.at(token.Newline) {
		p.next()
		return
	}
	if p.at(token.EOF) || p.at(token.Dedent) {
		return
	}
	p.errorf(diag.SynUnexpectedToken, "unexpected %q after statement", p.cur().Val)
	p.syncToNewline()
}

func (p *Parser) parseSmallStmt() pyast.Node {
	t := p.cur()
	if t.Kind == token.Name && token.IsKeyword(t.Val) {
		switch t.Val {
		case "pass":
			p.next()
			return &pyast.Pass{Base: base(t)}
		case "break":
			p.next()
			return &pyast.Break{Base: base(t)}
		case "continue":
			p.next()
			return &pyast.Continue{Base: base(t)}
		case "return":
			p.next()
			node := &pyast.Return{Base: base(t)}
			if !p.endOfStmt() {
				node.Value = p.parseTestlist()
			}
			return node
		case "raise":
			p.next()
			node := &pyast.Raise{Base: base(t)}
			if !p.endOfStmt() {
				node.Exc = p.parseExpr()
				if p.eatKeyword("from") {
					node.Cause = p.parseExpr()
				}
			}
			return node
		case "global":
			p.next()
			node := &pyast.Global{Base: base(t)}
			for {
				node.Names = append(node.Names, p.expectName())
				if !p.eatOp(",") {
					break
				}
			}
			return node
		case "del":
			p.next()
			node := &pyast.Delete{Base: base(t)}
			for {
				node.Targets = append(node.Targets, p.parseTarget())
				if !p.eatOp(",") {
					break
				}
			}
			return node
		case "assert":
			p.next()
			node := &pyast.Assert{Base: base(t), Test: p.parseExpr()}
			if p.eatOp(",") {
				node.Msg = p.parseExpr()
			}
			return node
		case "import":
			return p.parseImport()
		case "from":
			return p.parseImportFrom()
		}
	}
	return p.parseExprStmt()
}

// parseExprStmt parses an expression statement, assignment chain, or
// augmented assignment.
func (p *Parser) parseExprStmt() pyast.Node {
	t := p.cur()
	first := p.parseTestlist()
	if first == nil {
		p.syncToNewline()
		return nil
	}

	if op, ok := augOps[p.cur().Val]; ok && p.at(token.Op) {
		p.next()
		p.checkTarget(first)
		return &pyast.AugAssign{Base: base(t), Target: first, Op: op, Value: p.parseTestlist()}
	}

	if p.atOp("=") {
		var targets []pyast.Node
		value := first
		for p.eatOp("=") {
			p.checkTarget(value)
			targets = append(targets, value)
			value = p.parseTestlist()
		}
		return &pyast.Assign{Base: base(t), Targets: targets, Value: value}
	}

	return &pyast.ExprStmt{Base: base(t), Value: first}
}

var augOps = map[string]pyast.Op{
	"+=":  pyast.OpAdd,
	"-=":  pyast.OpSub,
	"*=":  pyast.OpMult,
	"/=":  pyast.OpDiv,
	"//=": pyast.OpFloorDiv,
	"%=":  pyast.OpMod,
	"**=": pyast.OpPow,
	">>=": pyast.OpRShift,
	"<<=": pyast.OpLShift,
	"&=":  pyast.OpBitAnd,
	"|=":  pyast.OpBitOr,
	"^=":  pyast.OpBitXor,
}

// checkTarget reports assignment targets the grammar does not allow.
func (p *Parser) checkTarget(n pyast.Node) {
	switch n := n.(type) {
	case *pyast.Name, *pyast.Attribute, *pyast.Subscript:
	case *pyast.Starred:
		p.checkTarget(n.Value)
	case *pyast.Tuple:
		for _, elt := range n.Elts {
			p.checkTarget(elt)
		}
	case *pyast.List:
		for _, elt := range n.Elts {
			p.checkTarget(elt)
		}
	case nil:
	default:
		p.errorf(diag.SynBadAssignTarget, "cannot assign to %s", n.Kind())
	}
}

func (p *Parser) parseImport() pyast.Node {
	t := p.next()
	node := &pyast.Import{Base: base(t)}
	for {
		node.Names = append(node.Names, p.parseAlias(true))
		if !p.eatOp(",") {
			break
		}
	}
	return node
}

func (p *Parser) parseImportFrom() pyast.Node {
	t := p.next()
	node := &pyast.ImportFrom{Base: base(t)}
	module := ""
	for p.atOp(".") || p.atOp("...") {
		module += p.next().Val
	}
	if p.cur().Kind == token.Name && !p.cur().IsKeywordToken() {
		module += p.dottedName()
	}
	node.Module = module
	p.expectKeyword("import")

	if p.atOp("*") {
		t := p.next()
		node.Names = append(node.Names, &pyast.Alias{Base: base(t), Name: "*"})
		return node
	}
	parens := p.eatOp("(")
	for {
		node.Names = append(node.Names, p.parseAlias(false))
		if !p.eatOp(",") {
			break
		}
		if parens && p.atOp(")") {
			break
		}
	}
	if parens {
		p.expectOp(")", diag.SynUnclosedDelimiter)
	}
	return node
}

func (p *Parser) parseAlias(dotted bool) *pyast.Alias {
	t := p.cur()
	node := &pyast.Alias{Base: base(t)}
	if dotted {
		node.Name = p.dottedName()
	} else {
		node.Name = p.expectName()
	}
	if p.eatKeyword("as") {
		node.AsName = p.expectName()
	}
	return node
}

func (p *Parser) dottedName() string {
	name := p.expectName()
	for p.atOp(".") && p.peek().Kind == token.Name {
		p.next()
		name += "." + p.expectName()
	}
	return name
}

// parseSuite parses ':' and either an indented block or an inline
// small-statement line.
func (p *Parser) parseSuite() []pyast.Node {
	if !p.expectOp(":", diag.SynExpectColon) {
		p.syncToNewline()
		return nil
	}
	var body []pyast.Node
	if p.at(token.Newline) {
		p.next()
		if !p.at(token.Indent) {
			p.errorf(diag.SynExpectIndent, "expected an indented block")
			return nil
		}
		p.next()
		for !p.at(token.Dedent) && !p.at(token.EOF) {
			if p.at(token.Newline) {
				p.next()
				continue
			}
			p.parseStatementInto(&body)
		}
		if p.at(token.Dedent) {
			p.next()
		}
		return body
	}
	p.parseSmallStmtLineInto(&body)
	return body
}

func (p *Parser) parseIf() pyast.Node {
	t := p.next() // if or elif
	node := &pyast.If{Base: base(t), Test: p.parseExpr()}
	node.Body = p.parseSuite()
	switch {
	case p.atKeyword("elif"):
		node.Orelse = []pyast.Node{p.parseIf()}
	case p.eatKeyword("else"):
		node.Orelse = p.parseSuite()
	}
	return node
}

func (p *Parser) parseWhile() pyast.Node {
	t := p.next()
	node := &pyast.While{Base: base(t), Test: p.parseExpr()}
	node.Body = p.parseSuite()
	if p.eatKeyword("else") {
		node.Orelse = p.parseSuite()
	}
	return node
}

func (p *Parser) parseFor() pyast.Node {
	t := p.next()
	node := &pyast.For{Base: base(t), Target: p.parseTargetList()}
	p.expectKeyword("in")
	node.Iter = p.parseTestlist()
	node.Body = p.parseSuite()
	if p.eatKeyword("else") {
		node.Orelse = p.parseSuite()
	}
	return node
}

func (p *Parser) parseTry() pyast.Node {
	t := p.next()
	node := &pyast.Try{Base: base(t)}
	node.Body = p.parseSuite()
	for p.atKeyword("except") {
		ht := p.next()
		handler := &pyast.ExceptHandler{Base: base(ht)}
		if !p.atOp(":") {
			handler.Type = p.parseExpr()
			if p.eatKeyword("as") {
				handler.Name = p.expectName()
			} else if p.eatOp(",") {
				// legacy 'except E, name' spelling
				handler.Name = p.expectName()
			}
		}
		handler.Body = p.parseSuite()
		node.Handlers = append(node.Handlers, handler)
	}
	if p.eatKeyword("else") {
		node.Orelse = p.parseSuite()
	}
	if p.eatKeyword("finally") {
		node.Finalbody = p.parseSuite()
	}
	if len(node.Handlers) == 0 && len(node.Finalbody) == 0 {
		p.errorf(diag.SynUnexpectedToken, "try statement needs an except or finally clause")
	}
	return node
}

// parseWith parses a with statement; multiple context managers nest,
// innermost holding the body.
func (p *Parser) parseWith() pyast.Node {
	t := p.next()
	node := &pyast.With{Base: base(t), ContextExpr: p.parseExpr()}
	if p.eatKeyword("as") {
		node.OptionalVars = p.parseTargetList()
	}
	if p.eatOp(",") {
		inner := p.parseWithTail(t)
		node.Body = []pyast.Node{inner}
		return node
	}
	node.Body = p.parseSuite()
	return node
}

func (p *Parser) parseWithTail(t token.Token) pyast.Node {
	node := &pyast.With{Base: base(t), ContextExpr: p.parseExpr()}
	if p.eatKeyword("as") {
		node.OptionalVars = p.parseTargetList()
	}
	if p.eatOp(",") {
		node.Body = []pyast.Node{p.parseWithTail(t)}
		return node
	}
	node.Body = p.parseSuite()
	return node
}

func (p *Parser) parseDecorated() pyast.Node {
	var decorators []pyast.Node
	for p.atOp("@") {
		p.next()
		decorators = append(decorators, p.parseExpr())
		if p.at(token.Newline) {
			p.next()
		}
	}
	switch {
	case p.atKeyword("def"):
		return p.parseFunctionDef(decorators)
	case p.atKeyword("class"):
		return p.parseClassDef(decorators)
	}
	p.errorf(diag.SynUnexpectedToken, "expected def or class after decorators")
	p.syncToNewline()
	return nil
}

func (p *Parser) parseFunctionDef(decorators []pyast.Node) pyast.Node {
	t := p.next()
	node := &pyast.FunctionDef{Base: base(t), DecoratorList: decorators}
	node.Name = p.expectName()
	p.expectOp("(", diag.SynUnexpectedToken)
	node.Args = p.parseParams(")", true)
	p.expectOp(")", diag.SynUnclosedDelimiter)
	if p.eatOp("->") {
		p.parseExpr() // return annotation, not represented
	}
	node.Body = p.parseSuite()
	return node
}

func (p *Parser) parseClassDef(decorators []pyast.Node) pyast.Node {
	t := p.next()
	node := &pyast.ClassDef{Base: base(t), DecoratorList: decorators}
	node.Name = p.expectName()
	if p.eatOp("(") {
		for !p.atOp(")") && !p.at(token.EOF) {
			// keyword arguments like metaclass= are not represented
			if p.cur().Kind == token.Name && p.peekOpIs("=") {
				p.next()
				p.next()
				p.parseExpr()
			} else {
				node.Bases = append(node.Bases, p.parseExpr())
			}
			if !p.eatOp(",") {
				break
			}
		}
		p.expectOp(")", diag.SynUnclosedDelimiter)
	}
	node.Body = p.parseSuite()
	return node
}

func (p *Parser) peekOpIs(s string) bool {
	t := p.peek()
	return t.Kind == token.Op && t.Val == s
}

// parseParams parses a parameter list up to the closing delimiter.
// Annotations are consumed and dropped when allowed (def, not lambda).
func (p *Parser) parseParams(closer string, annotations bool) *pyast.Arguments {
	args := &pyast.Arguments{Base: base(p.cur())}
	for !p.atOp(closer) && !p.at(token.EOF) {
		switch {
		case p.eatOp("*"):
			if p.cur().Kind == token.Name && !p.cur().IsKeywordToken() {
				args.Vararg = p.expectName()
			}
		case p.eatOp("**"):
			args.Kwarg = p.expectName()
		default:
			at := p.cur()
			name := p.expectName()
			if name == "" {
				p.syncToNewline()
				return args
			}
			if annotations && p.eatOp(":") {
				p.parseExpr()
			}
			args.Args = append(args.Args, &pyast.Arg{Base: base(at), Name: name})
			if p.eatOp("=") {
				args.Defaults = append(args.Defaults, p.parseExpr())
			}
		}
		if !p.eatOp(",") {
			break
		}
	}
	return args
}
