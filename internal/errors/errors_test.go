package errors

import (
	"fmt"
	"io"
	"testing"
)

func TestErrorMessageFallbacks(t *testing.T) {
	cases := []struct {
		name string
		err  Error
		want string
	}{
		{"message wins", New(CodeParseFailed, "bad file", io.EOF), "bad file"},
		{"wrapped error", New(CodeParseFailed, "", io.EOF), io.EOF.Error()},
		{"code only", New(CodeUnknownTheme, "", nil), string(CodeUnknownTheme)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCodeOfWalksChain(t *testing.T) {
	base := New(CodeInvalidColor, "invalid accent", nil)
	wrapped := fmt.Errorf("apply theme: %w", base)

	if got := CodeOf(wrapped); got != CodeInvalidColor {
		t.Fatalf("CodeOf = %q, want %q", got, CodeInvalidColor)
	}
	if !IsCode(wrapped, CodeInvalidColor) {
		t.Fatal("expected IsCode to match wrapped code")
	}
	if got := CodeOf(io.EOF); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %q, want %q", got, CodeUnknown)
	}
}
