package performance

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidClockTime  = errors.New("invalid shift start time format")
)

// ComputationError carries the (employee, date) context of a malformed field
// found mid-computation. The whole computation aborts; partial results are
// never returned.
type ComputationError struct {
	EmployeeID string
	Date       string
	Err        error
}

func (e *ComputationError) Error() string {
	if e.EmployeeID == "" {
		return fmt.Sprintf("computation failed at %s: %v", e.Date, e.Err)
	}
	return fmt.Sprintf("computation failed for employee %s at %s: %v", e.EmployeeID, e.Date, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}
