package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"joinery/internal/domain"
)

func (s *Store) CreateHoliday(ctx context.Context, input HolidayInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO holidays (user_id, start_date, end_date, notes)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		input.UserID, input.StartDate, input.EndDate, input.Notes,
	).Scan(&id)
	return id, err
}

func (s *Store) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, user_id, start_date, end_date, notes, created_at, updated_at
		FROM holidays
		ORDER BY start_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHolidays(rows)
}

// ListHolidaysInRange returns the holidays touching the inclusive range
// [from, to].
func (s *Store) ListHolidaysInRange(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, user_id, start_date, end_date, notes, created_at, updated_at
		FROM holidays
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date, id`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHolidays(rows)
}

func (s *Store) DeleteHoliday(ctx context.Context, id int64) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM holidays WHERE id=$1`, id)
	return err
}

func scanHolidays(rows pgx.Rows) ([]domain.Holiday, error) {
	holidays := make([]domain.Holiday, 0)
	for rows.Next() {
		var holiday domain.Holiday
		if err := rows.Scan(&holiday.ID, &holiday.UserID, &holiday.StartDate, &holiday.EndDate, &holiday.Notes, &holiday.CreatedAt, &holiday.UpdatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}
	return holidays, rows.Err()
}
