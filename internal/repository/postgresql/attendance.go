package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/patpaw111/web-absn/internal/domain/attendance"
	"github.com/patpaw111/web-absn/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (employee_id, check_in, check_out, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, check_in, check_out, status, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		a.EmployeeID,
		a.CheckIn,
		a.CheckOut,
		a.Status,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.CheckIn,
		&created.CheckOut,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.check_in, a.check_out, a.status,
			   a.created_at, a.updated_at, u.full_name
		FROM attendance_events a
		JOIN users u ON u.id = a.employee_id
		WHERE a.id = $1
	`

	var found attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.EmployeeID,
		&found.CheckIn,
		&found.CheckOut,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.EmployeeName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return found, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.check_in, a.check_out, a.status,
			   a.created_at, a.updated_at, u.full_name
		FROM attendance_events a
		JOIN users u ON u.id = a.employee_id
		WHERE ($1::text IS NULL OR a.employee_id = $1::uuid)
		  AND ($2::date IS NULL OR a.check_in >= $2::date)
		  AND ($3::date IS NULL OR a.check_in < $3::date + INTERVAL '1 day')
		ORDER BY a.check_in DESC NULLS LAST, a.created_at DESC
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendance(rows)
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_events
		SET check_in = $1, check_out = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := q.Exec(ctx, query, a.CheckIn, a.CheckOut, a.Status, a.ID)
	return err
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM attendance_events WHERE id = $1`, id)
	return err
}

// GetByCheckInWindow implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByCheckInWindow(ctx context.Context, periodStart, periodEnd time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.check_in, a.check_out, a.status,
			   a.created_at, a.updated_at, u.full_name
		FROM attendance_events a
		JOIN users u ON u.id = a.employee_id
		WHERE a.check_in >= $1
		  AND a.check_in < $2::date + INTERVAL '1 day'
		ORDER BY a.created_at
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendance(rows)
}

func scanAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	var events []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.CheckIn,
			&a.CheckOut,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, a)
	}
	return events, rows.Err()
}
