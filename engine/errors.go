package engine

import "errors"

// Dispatch-miss conditions, reported instead of silently doing nothing
var (
	ErrPaddleNotFound  = errors.New("paddle not found")
	ErrWallRoleMissing = errors.New("wall role missing")
	ErrBallNotFound    = errors.New("ball not found")
	ErrDuplicateRole   = errors.New("role bound to more than one entity")
)
