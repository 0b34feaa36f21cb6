package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"py2coffee/internal/token"
)

func pos(row, col int) token.Pos {
	r, err := safecast.Conv[uint32](row + 1)
	if err != nil {
		panic(fmt.Errorf("token row overflow: %w", err))
	}
	c, err := safecast.Conv[uint32](col)
	if err != nil {
		panic(fmt.Errorf("token col overflow: %w", err))
	}
	return token.Pos{Row: r, Col: c}
}

// Identifier bytes. Any byte >= 0x80 is allowed to start or continue an
// identifier; the scanner validates the UTF-8 and normalizes afterwards.
func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
