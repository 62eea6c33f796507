package buildsys

import "errors"

var (
	ErrUndetected          = errors.New("unable to detect a build system")
	ErrUnsupported         = errors.New("unsupported build system")
	ErrMissingDependencies = errors.New("required build dependencies are missing")
	ErrUnknownDestination  = errors.New("unknown destination")
)
