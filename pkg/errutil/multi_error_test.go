package errutil

import (
	"errors"
	"testing"
)

var (
	err1 = errors.New("error 1")
	err2 = errors.New("error 2")
	err3 = errors.New("error 3")
)

func TestMulti(t *testing.T) {
	if Multi() != nil {
		t.Errorf("Multi() -> non-nil")
	}
	if Multi(nil, nil) != nil {
		t.Errorf("Multi(nil, nil) -> non-nil")
	}
	if Multi(err1) != err1 {
		t.Errorf("Multi(err1) != err1")
	}
	if Multi(nil, err1) != err1 {
		t.Errorf("Multi(nil, err1) != err1")
	}

	want := "multiple errors: error 1; error 2; error 3"
	if got := Multi(Multi(err1, err2), err3).Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMulti_Is(t *testing.T) {
	err := Multi(err1, err2)
	if !errors.Is(err, err2) {
		t.Errorf("errors.Is(Multi(err1, err2), err2) -> false")
	}
	if errors.Is(err, err3) {
		t.Errorf("errors.Is(Multi(err1, err2), err3) -> true")
	}
}
