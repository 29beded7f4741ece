package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	cause := errors.New("disk full")
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"validation", Validation("text is empty"), CodeInvalidArgument},
		{"not found", NotFound("chat %q not found", "9"), CodeNotFound},
		{"persistence", Persistence("save theme", cause), CodePersistence},
		{"wrapped", fmt.Errorf("append: %w", NotFound("x")), CodeNotFound},
		{"plain", cause, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPersistenceUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Persistence("save theme", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Error() != "save theme: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsPersistence(err) || IsValidation(err) || IsNotFound(err) {
		t.Error("predicates disagree with code")
	}
}

func TestPredicatesOnNil(t *testing.T) {
	if IsValidation(nil) || IsNotFound(nil) || IsPersistence(nil) {
		t.Error("nil error matched a predicate")
	}
}
