package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDuplicateID, "action %q already exists", "a1")

	if err.Code != ErrCodeDuplicateID {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeDuplicateID)
	}

	if err.Message != `action "a1" already exists` {
		t.Errorf("Message = %v, want %v", err.Message, `action "a1" already exists`)
	}

	expected := `DUPLICATE_ID: action "a1" already exists`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("XML syntax error on line 3")
	err := Wrap(ErrCodeMalformedDocument, cause, "decode document")

	if err.Code != ErrCodeMalformedDocument {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedDocument)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeOutOfRange, "test"),
			code:     ErrCodeOutOfRange,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeOutOfRange, "test"),
			code:     ErrCodeDuplicateID,
			expected: false,
		},
		{
			name:     "outermost code wins",
			err:      Wrap(ErrCodeMalformedDocument, New(ErrCodeDuplicateID, "inner"), "outer"),
			code:     ErrCodeMalformedDocument,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("edit edge: %w", New(ErrCodeUnsupported, "outranking")),
			code:     ErrCodeUnsupported,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvertNotPermitted, "x")); got != ErrCodeInvertNotPermitted {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvertNotPermitted)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeNotFound, "action %q not found", "b")); got != `action "b" not found` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
