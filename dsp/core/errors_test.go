package core

import (
	"errors"
	"testing"

	"github.com/joomcode/errorx"
)

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name string
		typ  *errorx.Type
	}{
		{"invalid configuration", ErrInvalidConfiguration},
		{"unsupported effect", ErrUnsupportedEffect},
		{"numeric backend", ErrNumericBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.New("boom %d", 1)
			if !errorx.IsOfType(err, tt.typ) {
				t.Fatalf("expected %v to be of type %v", err, tt.typ)
			}

			wrapped := errorx.Decorate(err, "context")
			if !errorx.IsOfType(wrapped, tt.typ) {
				t.Fatalf("decorated error lost its type: %v", wrapped)
			}
		})
	}

	if errorx.IsOfType(errors.New("plain"), ErrInvalidConfiguration) {
		t.Fatal("plain error must not match an errorx type")
	}
}
