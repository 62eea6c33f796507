package workspace

import "errors"

var (
	ErrRead            = errors.New("workspace configuration read failed")
	ErrProjectNotFound = errors.New("project not found in workspace")
	ErrTargetNotFound  = errors.New("target not found in project")
)
