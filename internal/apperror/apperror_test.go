package apperror

import (
	"errors"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{"NotFound wraps ErrNotFound", NotFound("tweet", 42), ErrNotFound, true},
		{"AlreadyExists wraps ErrAlreadyExists", AlreadyExists("tweet already liked"), ErrAlreadyExists, true},
		{"SelfFollow wraps ErrSelfFollow", SelfFollow(), ErrSelfFollow, true},
		{"Unauthenticated wraps ErrUnauthenticated", Unauthenticated(), ErrUnauthenticated, true},
		{"InvalidInput wraps ErrInvalidInput", InvalidInput("file must have a name"), ErrInvalidInput, true},
		{"NotFound does not match ErrAlreadyExists", NotFound("user", 1), ErrAlreadyExists, false},
		{"SelfFollow does not match ErrNotFound", SelfFollow(), ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is() = %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("tweet", 7)
	if err.Error() != "tweet 7 not found" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
