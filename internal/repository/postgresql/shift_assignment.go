package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/patpaw111/web-absn/internal/domain/shift"
	"github.com/patpaw111/web-absn/internal/pkg/database"
)

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.ShiftAssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

// Create implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Create(ctx context.Context, assignment shift.ShiftAssignment) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (employee_id, shift_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, shift_id, start_date, end_date, created_at, updated_at
	`

	var created shift.ShiftAssignment
	err := q.QueryRow(ctx, query,
		assignment.EmployeeID,
		assignment.ShiftID,
		assignment.StartDate,
		assignment.EndDate,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.ShiftID,
		&created.StartDate,
		&created.EndDate,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftAssignment{}, err
	}

	return created, nil
}

// GetByID implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) GetByID(ctx context.Context, id string) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.shift_id, sa.start_date, sa.end_date,
			   sa.created_at, sa.updated_at, u.full_name, s.name
		FROM shift_assignments sa
		JOIN users u ON u.id = sa.employee_id
		JOIN shifts s ON s.id = sa.shift_id
		WHERE sa.id = $1
	`

	var found shift.ShiftAssignment
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.EmployeeID,
		&found.ShiftID,
		&found.StartDate,
		&found.EndDate,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.EmployeeName,
		&found.ShiftName,
	)
	if err != nil {
		return shift.ShiftAssignment{}, err
	}

	return found, nil
}

// List implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) List(ctx context.Context) ([]shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.shift_id, sa.start_date, sa.end_date,
			   sa.created_at, sa.updated_at, u.full_name, s.name
		FROM shift_assignments sa
		JOIN users u ON u.id = sa.employee_id
		JOIN shifts s ON s.id = sa.shift_id
		ORDER BY sa.start_date DESC, sa.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// Update implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Update(ctx context.Context, a shift.ShiftAssignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_assignments
		SET employee_id = $1, shift_id = $2, start_date = $3, end_date = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := q.Exec(ctx, query, a.EmployeeID, a.ShiftID, a.StartDate, a.EndDate, a.ID)
	return err
}

// Delete implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	return err
}

// GetOverlappingPeriod implements shift.ShiftAssignmentRepository. Open-ended
// assignments overlap every period starting after their start_date.
func (r *shiftAssignmentRepositoryImpl) GetOverlappingPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.shift_id, sa.start_date, sa.end_date,
			   sa.created_at, sa.updated_at, u.full_name, s.name
		FROM shift_assignments sa
		JOIN users u ON u.id = sa.employee_id
		JOIN shifts s ON s.id = sa.shift_id
		WHERE sa.start_date <= $2
		  AND (sa.end_date IS NULL OR sa.end_date >= $1)
		ORDER BY sa.created_at
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func scanAssignments(rows pgx.Rows) ([]shift.ShiftAssignment, error) {
	var assignments []shift.ShiftAssignment
	for rows.Next() {
		var a shift.ShiftAssignment
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.ShiftID,
			&a.StartDate,
			&a.EndDate,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.EmployeeName,
			&a.ShiftName,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
