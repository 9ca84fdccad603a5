package repository

import "errors"

// ErrNotFound indicates the requested row does not exist. Repository
// methods wrap it with the entity name; callers match with errors.Is.
var ErrNotFound = errors.New("not found")
