package postgresql

import (
	"context"

	"github.com/patpaw111/web-absn/internal/domain/shift"
	"github.com/patpaw111/web-absn/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (name, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id, name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), created_at, updated_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query,
		newShift.Name,
		newShift.StartTime,
		newShift.EndTime,
	).Scan(
		&created.ID,
		&created.Name,
		&created.StartTime,
		&created.EndTime,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var found shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.StartTime,
		&found.EndTime,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	return found, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), created_at, updated_at
		FROM shifts
		ORDER BY start_time, name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := q.Exec(ctx, query, s.Name, s.StartTime, s.EndTime, s.ID)
	return err
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	return err
}

// GetStartTimes implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetStartTimes(ctx context.Context) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, to_char(start_time, 'HH24:MI') FROM shifts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	startTimes := make(map[string]string)
	for rows.Next() {
		var id, startTime string
		if err := rows.Scan(&id, &startTime); err != nil {
			return nil, err
		}
		startTimes[id] = startTime
	}

	return startTimes, rows.Err()
}
