package controller

import "errors"

var (
	ErrNilBody       = errors.New("controller: physics body is nil")
	ErrInvalidConfig = errors.New("controller: invalid config")
)
