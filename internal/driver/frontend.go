package driver

import (
	"py2coffee/internal/diag"
	"py2coffee/internal/lexer"
	"py2coffee/internal/parser"
	"py2coffee/internal/pyast"
	"py2coffee/internal/source"
	"py2coffee/internal/token"
)

// TokenizeResult is the front-end output for one file, used by the debug
// commands.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads and tokenizes a single file.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Tokenize(fileSet.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{FileSet: fileSet, FileID: fileID, Tokens: toks, Bag: bag}, nil
}

// ParseResult is the parsed tree for one file.
type ParseResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tree    *pyast.Module
	Bag     *diag.Bag
}

// Parse loads, tokenizes and parses a single file.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	tok, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	sf := tok.FileSet.Get(tok.FileID)
	tree := parser.New(sf, tok.Tokens, diag.BagReporter{Bag: tok.Bag}).ParseModule()
	return &ParseResult{FileSet: tok.FileSet, FileID: tok.FileID, Tree: tree, Bag: tok.Bag}, nil
}
