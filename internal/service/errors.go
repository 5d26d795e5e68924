package service

import "errors"

// Errors surfaced to the menu layer on top of the store sentinels.
var (
	ErrInvalidRole    = errors.New("invalid role")
	ErrAuthentication = errors.New("invalid username or password")
	ErrInvalidInput   = errors.New("invalid input")
)
