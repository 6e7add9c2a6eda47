package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/patpaw111/web-absn/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) *HolidayServiceImpl {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.HolidayResponse{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return toResponse(created), nil
}

func (s *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toResponse(h))
	}
	return responses, nil
}

func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Description: h.Description,
	}
}
