package pyast_test

import (
	"testing"

	"py2coffee/internal/pyast"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind pyast.Kind
		want string
	}{
		{pyast.KindInvalid, "Invalid"},
		{pyast.KindExceptHandler, "ExceptHandler"},
		{pyast.KindGeneratorExp, "GeneratorExp"},
		{pyast.KindYield, "Yield"},
		{pyast.Kind(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
