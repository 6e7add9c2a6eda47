package attendance

import (
	"context"

	"github.com/patpaw111/web-absn/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     *string `json:"status"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.CheckIn == nil && r.Status == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in is required unless a status override is set",
		})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 timestamp",
			})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 timestamp",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, OverrideValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be leave or sick",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   *string `json:"status"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 timestamp",
			})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 timestamp",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, OverrideValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be leave or sick",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	Status       *string `json:"status"`
}

type DailyRecapResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	LateMinutes  int     `json:"late_minutes"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
}

type AttendanceService interface {
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error
}
