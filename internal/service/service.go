package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"joinery/internal/domain"
	"joinery/internal/plan"
	"joinery/internal/store"
)

type Store interface {
	GetProject(ctx context.Context, id int64) (domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, input store.ProjectInput) (int64, error)
	DeleteProject(ctx context.Context, id int64) error
	CreateProcess(ctx context.Context, input store.ProcessInput) (int64, error)
	DeleteProcess(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input store.UserInput) (int64, error)
	ListHolidays(ctx context.Context) ([]domain.Holiday, error)
	ListHolidaysInRange(ctx context.Context, from, to time.Time) ([]domain.Holiday, error)
	CreateHoliday(ctx context.Context, input store.HolidayInput) (int64, error)
	DeleteHoliday(ctx context.Context, id int64) error
}

type Service struct {
	store        Store
	workdayHours float64
}

func New(store Store, workdayHours float64) *Service {
	if workdayHours <= 0 {
		workdayHours = plan.DefaultWorkdayHours
	}
	return &Service{store: store, workdayHours: workdayHours}
}

// ProjectWeekCells is one project's presence in one rendered week.
type ProjectWeekCells struct {
	Project domain.Project
	Chunks  []domain.WeekCellChunk
}

// WeekView is everything the weekly grid needs for one week: which
// process chunks land in it per project, and the capacity picture.
type WeekView struct {
	Load     domain.WeekLoad
	Projects []ProjectWeekCells
}

// ProjectedValue is one project's share of value earned in a range.
type ProjectedValue struct {
	Project domain.Project
	Amount  decimal.Decimal
}

// ValueProjection is the prorated revenue picture for a date range.
type ValueProjection struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Total      decimal.Decimal
	Projects   []ProjectedValue
}

func (s *Service) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	return s.store.GetProject(ctx, id)
}

func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListProjects(ctx)
}

func (s *Service) CreateProject(ctx context.Context, input store.ProjectInput) (int64, error) {
	return s.store.CreateProject(ctx, input)
}

func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	return s.store.DeleteProject(ctx, id)
}

func (s *Service) CreateProcess(ctx context.Context, input store.ProcessInput) (int64, error) {
	return s.store.CreateProcess(ctx, input)
}

func (s *Service) DeleteProcess(ctx context.Context, id int64) error {
	return s.store.DeleteProcess(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, input store.UserInput) (int64, error) {
	return s.store.CreateUser(ctx, input)
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *Service) CreateHoliday(ctx context.Context, input store.HolidayInput) (int64, error) {
	return s.store.CreateHoliday(ctx, input)
}

func (s *Service) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	return s.store.ListHolidays(ctx)
}

func (s *Service) DeleteHoliday(ctx context.Context, id int64) error {
	return s.store.DeleteHoliday(ctx, id)
}
