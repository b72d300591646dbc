package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SeedDemo inserts a small workshop dataset: two joiners, one of them
// away for a week, and a confirmed project with a three-step process
// list. Safe to run against an empty database only.
func (s *Store) SeedDemo(ctx context.Context, now time.Time) error {
	daveID, err := s.CreateUser(ctx, UserInput{Name: "Dave Ashworth"})
	if err != nil {
		return err
	}
	if _, err := s.CreateUser(ctx, UserInput{Name: "Priya Patel"}); err != nil {
		return err
	}

	holidayStart := now.AddDate(0, 0, 14)
	if _, err := s.CreateHoliday(ctx, HolidayInput{
		UserID:    daveID,
		StartDate: holidayStart,
		EndDate:   holidayStart.AddDate(0, 0, 6),
		Notes:     "Annual leave",
	}); err != nil {
		return err
	}

	start := now
	delivery := now.AddDate(0, 0, 27)
	expected := 120.0
	projectID, err := s.CreateProject(ctx, ProjectInput{
		Name:          "Oak sash windows, 14 Mill Lane",
		StartDate:     &start,
		DeliveryDate:  &delivery,
		ValueGBP:      decimal.NewFromInt(18500),
		ExpectedHours: &expected,
	})
	if err != nil {
		return err
	}

	steps := []struct {
		code  string
		name  string
		hours float64
	}{
		{"MACHINING", "Machining", 60},
		{"SANDING", "Sanding", 20},
		{"GLAZING", "Glazing", 40},
	}
	for i, step := range steps {
		h := step.hours
		if _, err := s.CreateProcess(ctx, ProcessInput{
			ProjectID:      projectID,
			Code:           step.code,
			Name:           step.name,
			EstimatedHours: &h,
			SortOrder:      i + 1,
		}); err != nil {
			return err
		}
	}
	return nil
}
