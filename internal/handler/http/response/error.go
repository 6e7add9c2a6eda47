package response

import (
	"errors"
	"net/http"

	"github.com/patpaw111/web-absn/internal/domain/attendance"
	"github.com/patpaw111/web-absn/internal/domain/auth"
	"github.com/patpaw111/web-absn/internal/domain/holiday"
	"github.com/patpaw111/web-absn/internal/domain/performance"
	"github.com/patpaw111/web-absn/internal/domain/shift"
	"github.com/patpaw111/web-absn/internal/domain/user"
	"github.com/patpaw111/web-absn/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "validation failed", validationErrs.ToMap())
		return
	}

	var computationErr *performance.ComputationError
	if errors.As(err, &computationErr) {
		BadRequest(w, computationErr.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound), errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, err.Error())

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrInvalidOverride):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "an unexpected error occurred")
	}
}
