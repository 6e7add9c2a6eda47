package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidOverride    = errors.New("status override must be leave or sick")
)
