package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/patpaw111/web-absn/internal/domain/shift"
	"github.com/patpaw111/web-absn/internal/domain/user"
)

type ShiftServiceImpl struct {
	shiftRepo      shift.ShiftRepository
	assignmentRepo shift.ShiftAssignmentRepository
	userRepo       user.UserRepository
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.ShiftAssignmentRepository,
	userRepo user.UserRepository,
) *ShiftServiceImpl {
	return &ShiftServiceImpl{
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
	}
}

func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toShiftResponse(created), nil
}

func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.StartTime != nil {
		existing.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		existing.EndTime = *req.EndTime
	}

	if err := s.shiftRepo.Update(ctx, existing); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return toShiftResponse(existing), nil
}

func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	_, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		var pgErr *pgconn.PgError
		// 23503 foreign_key_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return shift.ErrShiftInUse
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func (s *ShiftServiceImpl) CreateAssignment(ctx context.Context, req shift.CreateAssignmentRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.AssignmentResponse{}, user.ErrUserNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.AssignmentResponse{}, shift.ErrShiftNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.EndDate)
		endDate = &parsed
	}

	created, err := s.assignmentRepo.Create(ctx, shift.ShiftAssignment{
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		return shift.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	// Re-read to pick up the joined employee and shift names.
	created, err = s.assignmentRepo.GetByID(ctx, created.ID)
	if err != nil {
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get assignment: %w", err)
	}
	return toAssignmentResponse(created), nil
}

func (s *ShiftServiceImpl) ListAssignments(ctx context.Context) ([]shift.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}
	return responses, nil
}

func (s *ShiftServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	_, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func toAssignmentResponse(a shift.ShiftAssignment) shift.AssignmentResponse {
	resp := shift.AssignmentResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		ShiftID:    a.ShiftID,
		StartDate:  a.StartDate.Format("2006-01-02"),
	}
	if a.EndDate != nil {
		endDate := a.EndDate.Format("2006-01-02")
		resp.EndDate = &endDate
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	if a.ShiftName != nil {
		resp.ShiftName = *a.ShiftName
	}
	return resp
}
