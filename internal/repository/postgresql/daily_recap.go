package postgresql

import (
	"context"
	"time"

	"github.com/patpaw111/web-absn/internal/domain/attendance"
	"github.com/patpaw111/web-absn/internal/pkg/database"
)

type dailyRecapRepositoryImpl struct {
	db *database.DB
}

func NewDailyRecapRepository(db *database.DB) attendance.DailyRecapRepository {
	return &dailyRecapRepositoryImpl{db: db}
}

// Upsert implements attendance.DailyRecapRepository. Regenerating a period
// overwrites earlier rows for the same (employee_id, date).
func (r *dailyRecapRepositoryImpl) Upsert(ctx context.Context, recap attendance.DailyRecap) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_recaps (employee_id, date, status, late_minutes, check_in, check_out)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET status = EXCLUDED.status,
			late_minutes = EXCLUDED.late_minutes,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		recap.EmployeeID,
		recap.Date,
		recap.Status,
		recap.LateMinutes,
		recap.CheckIn,
		recap.CheckOut,
	)
	return err
}

// ListPeriod implements attendance.DailyRecapRepository.
func (r *dailyRecapRepositoryImpl) ListPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]attendance.DailyRecap, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT dr.employee_id, dr.date, dr.status, dr.late_minutes, dr.check_in, dr.check_out, u.full_name
		FROM daily_recaps dr
		JOIN users u ON u.id = dr.employee_id
		WHERE dr.date BETWEEN $1 AND $2
		ORDER BY dr.date, dr.employee_id
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recaps []attendance.DailyRecap
	for rows.Next() {
		var rec attendance.DailyRecap
		err := rows.Scan(
			&rec.EmployeeID,
			&rec.Date,
			&rec.Status,
			&rec.LateMinutes,
			&rec.CheckIn,
			&rec.CheckOut,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		recaps = append(recaps, rec)
	}

	return recaps, rows.Err()
}
