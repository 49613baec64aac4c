package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned by stores on unique constraint violations.
	ErrConflict = errors.New("already exists")

	// ErrRefreshTokenNotPresent is returned when a conditional whitelist update finds no matching token.
	ErrRefreshTokenNotPresent = errors.New("refresh token not present")

	// ErrPasswordTooLong is returned by PasswordHasher.Hash for inputs it cannot hash.
	ErrPasswordTooLong = errors.New("password too long")
)
