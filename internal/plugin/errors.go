package plugin

import "errors"

var (
	ErrConfiguration = errors.New("configuration error")
	ErrBuild         = errors.New("build failed")
	ErrUnknownHook   = errors.New("unknown hook")
)
