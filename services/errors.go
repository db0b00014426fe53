package services

import "errors"

var (
	ErrAlreadyMember = errors.New("user is already in a dinner group")
	ErrNotMember     = errors.New("user is not in a dinner group")
)
