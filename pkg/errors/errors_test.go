package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("unexpected EOF")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeTooLarge, "graph has %d vertices (max %d)", 9, 8), "TOO_LARGE: graph has 9 vertices (max 8)"},
		{"with cause", Wrap(ErrCodeInvalidInput, cause, "decode %s", "graph.json"), "INVALID_INPUT: decode graph.json: unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeInvalidPath, cause, "write out.svg")
	if errors.Unwrap(err) != cause || !errors.Is(err, cause) {
		t.Errorf("cause lost: %v", err)
	}
	if New(ErrCodeNotFound, "x").Cause != nil {
		t.Error("New should not set a cause")
	}
}

func TestCodeLookups(t *testing.T) {
	tooLarge := New(ErrCodeTooLarge, "graph has 70000 vertices")
	aborted := Wrap(ErrCodeSearchAborted, New(ErrCodeInvalidInput, "inner"), "search aborted")

	tests := []struct {
		name     string
		err      error
		code     Code
		wantCode Code
		wantMsg  string
	}{
		{"coded", tooLarge, ErrCodeTooLarge, ErrCodeTooLarge, "graph has 70000 vertices"},
		{"wrapped by fmt", fmt.Errorf("load: %w", tooLarge), ErrCodeTooLarge, ErrCodeTooLarge, "graph has 70000 vertices"},
		{"outermost code wins", aborted, ErrCodeSearchAborted, ErrCodeSearchAborted, "search aborted"},
		{"inner code is shadowed", aborted, ErrCodeInvalidInput, ErrCodeSearchAborted, "search aborted"},
		{"uncoded", errors.New("plain error"), ErrCodeInternal, "", "plain error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantIs := tt.code == tt.wantCode
			if got := Is(tt.err, tt.code); got != wantIs {
				t.Errorf("Is(%s) = %v, want %v", tt.code, got, wantIs)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
			if got := UserMessage(tt.err); got != tt.wantMsg {
				t.Errorf("UserMessage() = %q, want %q", got, tt.wantMsg)
			}
		})
	}

	if Is(nil, ErrCodeInternal) || GetCode(nil) != "" {
		t.Error("nil carries no code")
	}
}
