package db

import "errors"

var (
	// ErrNotFound covers both a missing row and a row owned by a
	// different user; callers cannot tell the two apart.
	ErrNotFound = errors.New("record not found")

	ErrDuplicateUsername = errors.New("username already exists")
)
