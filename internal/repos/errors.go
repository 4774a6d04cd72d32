package repos

import "errors"

var (
	ErrNotARepository  = errors.New("not a repository")
	ErrUnsupportedMode = errors.New("unsupported mode")
	ErrInvalidPattern  = errors.New("invalid directory pattern")
	ErrInvalidTarget   = errors.New("invalid traversal target")
	ErrRemoteNotFound  = errors.New("remote not found")
)
