package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/patpaw111/web-absn/internal/domain/attendance"
	"github.com/patpaw111/web-absn/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, user.ErrUserNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		CheckIn:    parseInstant(req.CheckIn),
		CheckOut:   parseInstant(req.CheckOut),
		Status:     req.Status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return toResponse(created), nil
}

func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	found, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return toResponse(found), nil
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if req.CheckIn != nil {
		existing.CheckIn = parseInstant(req.CheckIn)
	}
	if req.CheckOut != nil {
		existing.CheckOut = parseInstant(req.CheckOut)
	}
	if req.Status != nil {
		existing.Status = req.Status
	}

	if err := s.attendanceRepo.Update(ctx, existing); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	return toResponse(existing), nil
}

func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	_, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to get attendance: %w", err)
	}

	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// parseInstant trusts its input; Validate has already checked the format.
func parseInstant(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339Nano, *s)
	}
	utc := t.UTC()
	return &utc
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Status:     a.Status,
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	if a.CheckIn != nil {
		s := a.CheckIn.UTC().Format(time.RFC3339)
		resp.CheckIn = &s
	}
	if a.CheckOut != nil {
		s := a.CheckOut.UTC().Format(time.RFC3339)
		resp.CheckOut = &s
	}
	return resp
}
