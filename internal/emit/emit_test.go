package emit_test

import (
	"strings"
	"testing"

	"py2coffee/internal/diag"
	"py2coffee/internal/emit"
	"py2coffee/internal/lexer"
	"py2coffee/internal/parser"
	"py2coffee/internal/pyast"
	"py2coffee/internal/source"
	"py2coffee/internal/toksync"
)

// translate runs the whole pipeline over one in-memory source.
func translate(t *testing.T, src string, strict bool) (string, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte(src))
	sf := fs.Get(id)
	bag := diag.NewBag(50)
	rep := diag.BagReporter{Bag: bag}

	toks := lexer.Tokenize(sf, lexer.Options{Reporter: rep})
	tree := parser.New(sf, toks, rep).ParseModule()
	if bag.HasErrors() {
		t.Fatalf("input %q: %s", src, bagSummary(bag))
	}
	sync, err := toksync.New(sf, toks, rep)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	out, err := emit.Emit(tree, sync, emit.Options{Strict: strict, Reporter: rep})
	return out, bag, err
}

func expectOutput(t *testing.T, src, want string) {
	t.Helper()
	got, bag, err := translate(t, src, false)
	if err != nil {
		t.Fatalf("input %q: %v (%s)", src, err, bagSummary(bag))
	}
	if got != want {
		t.Errorf("input %q:\n got %q\nwant %q", src, got, want)
	}
}

func bagSummary(bag *diag.Bag) string {
	parts := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		parts = append(parts, d.Code.ID()+" "+d.Message)
	}
	return strings.Join(parts, "; ")
}

func TestSimpleAssign(t *testing.T) {
	expectOutput(t, "x = 1\n", "x=1\n")
}

func TestCommentAndBlankRecovery(t *testing.T) {
	expectOutput(t,
		"# header\n\nx = 1\n",
		"# header\n\nx=1\n")
}

func TestBlankCountSurvives(t *testing.T) {
	expectOutput(t,
		"a = 1\n\n\nb = 2\n",
		"a=1\n\n\nb=2\n")
}

func TestInlineCommentDropped(t *testing.T) {
	expectOutput(t, "x = 1  # gone\n", "x=1\n")
}

func TestFunctionDefaultsPairTrailingParams(t *testing.T) {
	expectOutput(t,
		"def f(a, b=1, c=2):\n    return a\n",
		"f = (a, b=1, c=2) ->\n    return a\n")
}

func TestFunctionWithoutParams(t *testing.T) {
	expectOutput(t,
		"def f():\n    pass\n",
		"f = ->\n    pass\n")
}

func TestVariadicParams(t *testing.T) {
	expectOutput(t,
		"def f(a, *rest, **kw):\n    pass\n",
		"f = (a, *rest, **kw) ->\n    pass\n")
}

func TestClassExtendsAndReceiverElision(t *testing.T) {
	src := "class A(Base):\n" +
		"    def m(self, x):\n" +
		"        return self.x\n"
	want := "class A extends Base\n" +
		"    m: (x) ->\n" +
		"        return @x\n"
	expectOutput(t, src, want)
}

func TestClassWithoutBases(t *testing.T) {
	expectOutput(t,
		"class A:\n    pass\n",
		"class A\n    pass\n")
}

func TestMethodWithOnlyReceiver(t *testing.T) {
	src := "class A:\n" +
		"    def m(self):\n" +
		"        return 1\n"
	want := "class A\n" +
		"    m: ->\n" +
		"        return 1\n"
	expectOutput(t, src, want)
}

func TestTopLevelSelfStillRewrites(t *testing.T) {
	// Outside a class the parameter stays, but the reference rewrite is
	// unconditional.
	expectOutput(t,
		"def f(self):\n    return self.x\n",
		"f = (self) ->\n    return @x\n")
}

func TestDecorators(t *testing.T) {
	expectOutput(t,
		"@dec\ndef f():\n    pass\n",
		"@dec\nf = ->\n    pass\n")
}

func TestNameConstants(t *testing.T) {
	expectOutput(t,
		"a = True\nb = False\nc = None\n",
		"a=true\nb=false\nc=null\n")
}

func TestNumericCanonicalization(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x = 0x10\n", "x=16\n"},
		{"x = 0o17\n", "x=15\n"},
		{"x = 0b101\n", "x=5\n"},
		{"x = 1_000\n", "x=1000\n"},
		{"x = 1.5\n", "x=1.5\n"},
		{"x = 1e3\n", "x=1000.0\n"},
		{"x = 2.0\n", "x=2.0\n"},
		{"x = 42\n", "x=42\n"},
	}
	for _, tt := range tests {
		expectOutput(t, tt.src, tt.want)
	}
}

func TestBigIntegersKeepPrecision(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x = 12345678901234567890\n", "x=12345678901234567890\n"},
		{"x = 0x1_0000_0000_0000_0000\n", "x=18446744073709551616\n"},
		{"x = -9223372036854775808\n", "x=-9223372036854775808\n"},
	}
	for _, tt := range tests {
		expectOutput(t, tt.src, tt.want)
	}
}

func TestStringSpellingPreserved(t *testing.T) {
	expectOutput(t,
		"s = 'a\"b'\nt = \"c\\n\"\nu = r'\\d+'\n",
		"s='a\"b'\nt=\"c\\n\"\nu=r'\\d+'\n")
}

func TestImportsRenderDisabled(t *testing.T) {
	expectOutput(t,
		"import os, sys\nfrom os import path as p\n",
		"pass # import os,sys\npass # from os import path as p\n")
}

func TestIfElifElse(t *testing.T) {
	src := "if a:\n    x = 1\nelif b:\n    y = 2\nelse:\n    z = 3\n"
	want := "if a:\n" +
		"    x=1\n" +
		"else:\n" +
		"    if b:\n" +
		"        y=2\n" +
		"    else:\n" +
		"        z=3\n"
	expectOutput(t, src, want)
}

func TestWhileAndFor(t *testing.T) {
	expectOutput(t,
		"while x > 0:\n    x -= 1\n",
		"while x>0:\n    x-=1\n")
	expectOutput(t,
		"for i in xs:\n    f(i)\n",
		"for i in xs:\n    f(i)\n")
}

func TestTryHeaderHasNoColon(t *testing.T) {
	src := "try:\n" +
		"    x = 1\n" +
		"except ValueError as e:\n" +
		"    pass\n" +
		"finally:\n" +
		"    done()\n"
	want := "try\n" +
		"    x=1\n" +
		"except ValueError as e:\n" +
		"    pass\n" +
		"finally:\n" +
		"    done()\n"
	expectOutput(t, src, want)
}

func TestWithStatement(t *testing.T) {
	expectOutput(t,
		"with open(f) as fh:\n    pass\n",
		"with open(f) as fh:\n    pass\n")
}

func TestCallShapes(t *testing.T) {
	expectOutput(t, "f(a, b)\n", "f(a,b)\n")
	expectOutput(t, "f(a, key=1)\n", "f(a,key=1)\n")
	expectOutput(t, "f(*args, **kw)\n", "f(*args,**kw)\n")
	expectOutput(t, "obj.method(x)\n", "obj.method(x)\n")
}

func TestCollectionLiterals(t *testing.T) {
	expectOutput(t, "a = [1, 2]\n", "a=[1,2]\n")
	expectOutput(t, "t = (1, 2)\n", "t=(1, 2)\n")
	expectOutput(t, "d = {'k': 1}\n", "d={'k':1}\n")
	expectOutput(t, "s = {1, 2}\n", "s={1, 2}\n")
}

func TestComprehensions(t *testing.T) {
	expectOutput(t,
		"ys = [x for x in xs if x]\n",
		"ys=x for x in xs if x\n")
	expectOutput(t,
		"g = (x for x in xs)\n",
		"g=<gen x for x in xs>\n")
}

func TestTernaryKeepsTrailingSpace(t *testing.T) {
	expectOutput(t, "x = a if b else c\n", "x=a if b else c \n")
	// return trims the trailing space back off
	expectOutput(t,
		"def f():\n    return a if b else c\n",
		"f = ->\n    return a if b else c\n")
}

func TestOperators(t *testing.T) {
	expectOutput(t, "x = a + b * c\n", "x=a+b*c\n")
	expectOutput(t, "x = a // b ** c\n", "x=a//b**c\n")
	expectOutput(t, "x = a and b or not c\n", "x=a and b or  not c\n")
	expectOutput(t, "x = a not in b\n", "x=a not in b\n")
	expectOutput(t, "x = -a\n", "x=-a\n")
}

func TestSliceForms(t *testing.T) {
	expectOutput(t, "x = a[1:2]\n", "x=a[1:2]\n")
	expectOutput(t, "x = a[1:2:3]\n", "x=a[1:2:3]\n")
	expectOutput(t, "x = a[:]\n", "x=a[:]\n")
}

func TestSmallStatements(t *testing.T) {
	expectOutput(t, "del a, b\n", "del a,b\n")
	expectOutput(t, "global a, b\n", "global a,b\n")
	expectOutput(t, "assert x, 'msg'\n", "assert x, 'msg'\n")
	expectOutput(t, "raise ValueError(x)\n", "raise ValueError(x)\n")
	expectOutput(t, "raise\n", "raise\n")
	expectOutput(t, "break\n", "break\n")
	expectOutput(t, "continue\n", "continue\n")
}

func TestChainedAssign(t *testing.T) {
	expectOutput(t, "a = b = 1\n", "a=b=1\n")
}

func TestYield(t *testing.T) {
	expectOutput(t,
		"def f():\n    yield x\n",
		"f = ->\n    yield x\n")
}

func TestNestedCommentKeepsSourceIndent(t *testing.T) {
	src := "def f():\n    # inner\n    return 1\n"
	want := "f = ->\n    # inner\n    return 1\n"
	expectOutput(t, src, want)
}

func TestDictMismatchDegrades(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", nil)
	sync, err := toksync.New(fs.Get(id), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	bag := diag.NewBag(10)

	tree := &pyast.Module{Body: []pyast.Node{
		&pyast.ExprStmt{Value: &pyast.Dict{
			Keys: []pyast.Node{&pyast.Num{Spelling: "1"}},
		}},
	}}
	out, emitErr := emit.Emit(tree, sync, emit.Options{Reporter: diag.BagReporter{Bag: bag}})
	if emitErr != nil {
		t.Fatalf("emit: %v", emitErr)
	}
	if out != "{}\n" {
		t.Errorf("output = %q, want {}\\n", out)
	}
	if !hasCode(bag, diag.EmitDictMismatch) {
		t.Error("mismatch did not report EmitDictMismatch")
	}
}

func TestUnknownOperatorStrictVsPermissive(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", nil)
	sync, err := toksync.New(fs.Get(id), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	tree := func() pyast.Node {
		return &pyast.Module{Body: []pyast.Node{
			&pyast.ExprStmt{Value: &pyast.BinOp{
				Left:  &pyast.Name{ID: "a"},
				Op:    pyast.OpInvalid,
				Right: &pyast.Name{ID: "b"},
			}},
		}}
	}

	if _, err := emit.Emit(tree(), sync, emit.Options{Strict: true}); err == nil {
		t.Error("strict mode must fail on an unknown operator")
	}

	bag := diag.NewBag(10)
	out, err := emit.Emit(tree(), sync, emit.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("permissive emit: %v", err)
	}
	if !strings.Contains(out, "<Invalid>") {
		t.Errorf("output = %q, want bracketed placeholder", out)
	}
	if !hasCode(bag, diag.EmitUnknownOperator) {
		t.Error("placeholder did not report EmitUnknownOperator")
	}
}

func TestCompareMismatchDegrades(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", nil)
	sync, err := toksync.New(fs.Get(id), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	bag := diag.NewBag(10)

	tree := &pyast.Module{Body: []pyast.Node{
		&pyast.ExprStmt{Value: &pyast.Compare{
			Left: &pyast.Name{ID: "a"},
			Ops:  []pyast.Op{pyast.OpLt},
		}},
	}}
	out, emitErr := emit.Emit(tree, sync, emit.Options{Reporter: diag.BagReporter{Bag: bag}})
	if emitErr != nil {
		t.Fatalf("emit: %v", emitErr)
	}
	if out != "a\n" {
		t.Errorf("output = %q, want left operand only", out)
	}
	if !hasCode(bag, diag.EmitInfo) {
		t.Error("mismatch did not report a diagnostic")
	}
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
