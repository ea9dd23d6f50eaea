package repo

import "errors"

// ErrNotFound is returned when no matching row exists.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a unique value is already taken.
var ErrAlreadyExists = errors.New("already exists")

// ErrAmbiguous is returned when a lookup that must match exactly one
// row matches several. It signals a store integrity problem, not a
// caller error.
var ErrAmbiguous = errors.New("ambiguous match")
