package architect

import "errors"

var (
	ErrScheduler = errors.New("build scheduling failed")
	ErrWatch     = errors.New("watch setup failed")
)
