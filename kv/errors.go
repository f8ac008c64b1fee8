package kv

import "errors"

var (
	ErrNotFound = errors.New("kv: not found")
	ErrClosed   = errors.New("kv: store closed")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
