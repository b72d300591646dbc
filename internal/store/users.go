package store

import (
	"context"

	"joinery/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, input UserInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `INSERT INTO users (name) VALUES ($1) RETURNING id`, input.Name).Scan(&id)
	return id, err
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.DB.Query(ctx, `SELECT id, name, created_at, updated_at FROM users ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	return err
}
