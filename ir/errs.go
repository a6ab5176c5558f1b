package ir

import "errors"

var (
	ErrCycle = errors.New("cyclic value")
	ErrPath  = errors.New("path error")
)
