package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadIndent          Code = 1004
	LexUnclosedBracket    Code = 1005

	// Syntactic
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectColon       Code = 2003
	SynExpectIndent      Code = 2004
	SynExpectExpression  Code = 2005
	SynUnclosedDelimiter Code = 2006
	SynBadAssignTarget   Code = 2007

	// Token synchronization
	SyncInfo             Code = 3000
	SyncCommentCollision Code = 3001
	SyncStringUnderflow  Code = 3002

	// Emission
	EmitInfo            Code = 4000
	EmitUnsupportedNode Code = 4001
	EmitUnknownOperator Code = 4002
	EmitDictMismatch    Code = 4003

	// I/O and batch driver
	IOLoadFileError    Code = 5000
	IOWriteFileError   Code = 5001
	IOOutputDirMissing Code = 5002
	IOOutputExists     Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadNumber:          "Malformed numeric literal",
	LexBadIndent:          "Inconsistent indentation",
	LexUnclosedBracket:    "Unclosed bracket at end of file",
	SynInfo:               "Syntactic information",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectColon:        "Expected ':'",
	SynExpectIndent:       "Expected indented block",
	SynExpectExpression:   "Expected expression",
	SynUnclosedDelimiter:  "Unclosed delimiter",
	SynBadAssignTarget:    "Invalid assignment target",
	SyncInfo:              "Token synchronization information",
	SyncCommentCollision:  "Multiple full-line comments on one line",
	SyncStringUnderflow:   "String token queue underflow",
	EmitInfo:              "Emission information",
	EmitUnsupportedNode:   "Unsupported construct",
	EmitUnknownOperator:   "Unknown operator",
	EmitDictMismatch:      "Dict literal key/value count mismatch",
	IOLoadFileError:       "I/O load file error",
	IOWriteFileError:      "I/O write file error",
	IOOutputDirMissing:    "Output directory not found",
	IOOutputExists:        "Output file already exists",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TSY%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("EMT%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
