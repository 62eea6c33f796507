package service

import "errors"

var (
	ErrRead  = errors.New("service configuration read failed")
	ErrParse = errors.New("service configuration parse failed")
)
