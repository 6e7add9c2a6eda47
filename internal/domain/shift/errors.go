package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftInUse         = errors.New("shift is still referenced by assignments")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
)
