package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures carry no enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden rejects an authenticated user lacking the required role.
	ErrForbidden = errors.New("forbidden")

	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrDocumentNotFound  = errors.New("document not found")
)
