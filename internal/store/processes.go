package store

import (
	"context"

	"joinery/internal/domain"
)

func (s *Store) CreateProcess(ctx context.Context, input ProcessInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO processes (project_id, code, name, estimated_hours, sort_order)
		VALUES ($1,$2,$3,$4, CASE WHEN $5 > 0 THEN $5 ELSE (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM processes WHERE project_id=$1) END)
		RETURNING id`,
		input.ProjectID, input.Code, input.Name, input.EstimatedHours, input.SortOrder,
	).Scan(&id)
	return id, err
}

func (s *Store) ListProcessesByProject(ctx context.Context, projectID int64) ([]domain.Process, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, project_id, code, name, estimated_hours, sort_order, created_at, updated_at
		FROM processes
		WHERE project_id=$1
		ORDER BY sort_order, id`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	processes := make([]domain.Process, 0)
	for rows.Next() {
		var process domain.Process
		if err := rows.Scan(&process.ID, &process.ProjectID, &process.Code, &process.Name, &process.EstimatedHours, &process.SortOrder, &process.CreatedAt, &process.UpdatedAt); err != nil {
			return nil, err
		}
		processes = append(processes, process)
	}
	return processes, rows.Err()
}

func (s *Store) DeleteProcess(ctx context.Context, id int64) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM processes WHERE id=$1`, id)
	return err
}
