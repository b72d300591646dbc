package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"joinery/internal/domain"
	"joinery/internal/plan"
)

// ProjectSchedule builds the process segments for one project. Projects
// without both dates, or without estimated processes, come back with an
// empty schedule rather than an error.
func (s *Service) ProjectSchedule(ctx context.Context, projectID int64) (domain.Project, []domain.ScheduledSegment, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return domain.Project{}, nil, err
	}
	if !project.HasDates() {
		return project, []domain.ScheduledSegment{}, nil
	}
	segments := plan.BuildSchedule(*project.StartDate, *project.DeliveryDate, project.Processes)
	return project, segments, nil
}

// WeekViewFor assembles the weekly grid data for the week starting at
// weekStart (normalised to its Monday): per-project chunks plus the
// capacity/demand picture.
func (s *Service) WeekViewFor(ctx context.Context, weekStart time.Time) (WeekView, error) {
	weekStart = plan.StartOfWeek(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)

	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return WeekView{}, err
	}
	roster, err := s.store.ListUsers(ctx)
	if err != nil {
		return WeekView{}, err
	}
	holidays, err := s.store.ListHolidaysInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return WeekView{}, err
	}

	scheduled := make([]domain.Project, 0, len(projects))
	cells := make([]ProjectWeekCells, 0, len(projects))
	for _, project := range projects {
		if !project.HasDates() {
			continue
		}
		scheduled = append(scheduled, project)
		segments := plan.BuildSchedule(*project.StartDate, *project.DeliveryDate, project.Processes)
		chunks := plan.ProjectOntoWeek(segments, weekStart, weekEnd)
		if len(chunks) == 0 {
			continue
		}
		cells = append(cells, ProjectWeekCells{Project: project, Chunks: chunks})
	}

	load := plan.WeekLoad(weekStart, weekEnd, roster, holidays, scheduled, s.workdayHours)
	return WeekView{Load: load, Projects: cells}, nil
}

// CalendarRange returns consecutive week views starting from the week
// containing `from`.
func (s *Service) CalendarRange(ctx context.Context, from time.Time, weeks int) ([]WeekView, error) {
	if weeks < 1 {
		weeks = 1
	}
	views := make([]WeekView, 0, weeks)
	weekStart := plan.StartOfWeek(from)
	for i := 0; i < weeks; i++ {
		view, err := s.WeekViewFor(ctx, weekStart)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
		weekStart = weekStart.AddDate(0, 0, 7)
	}
	return views, nil
}

// ValueProjectionFor prorates each project's value over its overlap
// with [rangeStart, rangeEnd] and totals the result.
func (s *Service) ValueProjectionFor(ctx context.Context, rangeStart, rangeEnd time.Time) (ValueProjection, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return ValueProjection{}, err
	}
	projection := ValueProjection{
		RangeStart: plan.DateOnly(rangeStart),
		RangeEnd:   plan.DateOnly(rangeEnd),
		Total:      decimal.Zero,
	}
	for _, project := range projects {
		amount := plan.ProrateValue(project, rangeStart, rangeEnd)
		if amount.IsZero() {
			continue
		}
		projection.Projects = append(projection.Projects, ProjectedValue{Project: project, Amount: amount})
		projection.Total = projection.Total.Add(amount)
	}
	return projection, nil
}
