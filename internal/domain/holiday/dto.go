package holiday

import (
	"context"

	"github.com/patpaw111/web-absn/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type HolidayService interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
