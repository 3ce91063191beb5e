package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failure paths need a mock *testing.T, so these cover success cases and
// the message formatting helpers.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "C3", "C3")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, len("twixt") == 5)
	AssertFalse(t, len("twixt") == 0)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"depth %d", 3}, "depth 3"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
	if got := prefix(); got != "" {
		t.Errorf("prefix() = %q, want empty", got)
	}
	if got := prefix("ctx"); got != "ctx: " {
		t.Errorf("prefix(ctx) = %q, want %q", got, "ctx: ")
	}
}
