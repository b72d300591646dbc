package store

import (
	"context"

	"github.com/shopspring/decimal"

	"joinery/internal/domain"
)

func (s *Store) CreateProject(ctx context.Context, input ProjectInput) (int64, error) {
	status := input.Status
	if status == "" {
		status = string(domain.ProjectStatusConfirmed)
	}
	var id int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO projects (name, status, start_date, delivery_date, value_gbp, expected_hours, total_project_hours)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		input.Name, status, input.StartDate, input.DeliveryDate, input.ValueGBP, input.ExpectedHours, input.TotalProjectHours,
	).Scan(&id)
	return id, err
}

func (s *Store) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	var project domain.Project
	var value string
	row := s.DB.QueryRow(ctx, `
		SELECT id, name, status, start_date, delivery_date, value_gbp::text, expected_hours, total_project_hours, created_at, updated_at
		FROM projects
		WHERE id=$1`, id)
	if err := row.Scan(&project.ID, &project.Name, &project.Status, &project.StartDate, &project.DeliveryDate, &value, &project.ExpectedHours, &project.TotalProjectHours, &project.CreatedAt, &project.UpdatedAt); err != nil {
		return domain.Project{}, err
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return domain.Project{}, err
	}
	project.ValueGBP = amount

	processes, err := s.ListProcessesByProject(ctx, project.ID)
	if err != nil {
		return domain.Project{}, err
	}
	project.Processes = processes
	return project, nil
}

// ListProjects returns every project in scheduling view, processes
// included, ordered by start date with undated projects last.
func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, name, status, start_date, delivery_date, value_gbp::text, expected_hours, total_project_hours, created_at, updated_at
		FROM projects
		ORDER BY start_date NULLS LAST, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		var project domain.Project
		var value string
		if err := rows.Scan(&project.ID, &project.Name, &project.Status, &project.StartDate, &project.DeliveryDate, &value, &project.ExpectedHours, &project.TotalProjectHours, &project.CreatedAt, &project.UpdatedAt); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, err
		}
		project.ValueGBP = amount
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		processes, err := s.ListProcessesByProject(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Processes = processes
	}
	return projects, nil
}

func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	return err
}
