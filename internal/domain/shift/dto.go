package shift

import (
	"context"

	"github.com/patpaw111/web-absn/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateAssignmentRequest struct {
	EmployeeID string  `json:"employee_id"`
	ShiftID    string  `json:"shift_id"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	startDate, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if r.EndDate != nil {
		endDate, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if endDate.Before(startDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AssignmentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	ShiftID      string  `json:"shift_id"`
	ShiftName    string  `json:"shift_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
}

type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error

	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context) ([]AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string) error
}
