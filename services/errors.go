package services

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrEmailInUse     = errors.New("email in use")
	ErrBadCredentials = errors.New("email or password is wrong")
)
