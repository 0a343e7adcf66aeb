// Package errutil contains utilities for combining errors.
package errutil

import "strings"

// Multi combines multiple errors into one. Nil arguments are dropped; if no
// error is left it returns nil, and if only one is left it is returned as is.
// Errors returned by Multi are flattened when passed to Multi again.
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			nonNil = append(nonNil, err...)
		default:
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

type multiError []error

func (me multiError) Error() string {
	msgs := make([]string, len(me))
	for i, e := range me {
		msgs[i] = e.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// Unwrap supports errors.Is and errors.As on the combined errors.
func (me multiError) Unwrap() []error { return me }
