package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/patpaw111/web-absn/internal/domain/holiday"
	"github.com/patpaw111/web-absn/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, description)
		VALUES ($1, $2)
		RETURNING id, date, description, created_at, updated_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query, newHoliday.Date, newHoliday.Description).Scan(
		&created.ID,
		&created.Date,
		&created.Description,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, err
	}

	return created, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, description, created_at, updated_at
		FROM holidays
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		err := rows.Scan(&h.ID, &h.Date, &h.Description, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetDatesInPeriod implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetDatesInPeriod(ctx context.Context, periodStart, periodEnd time.Time) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(date, 'YYYY-MM-DD')
		FROM holidays
		WHERE date BETWEEN $1 AND $2
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make(map[string]bool)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates[date] = true
	}

	return dates, rows.Err()
}
