package store

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Store struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type ProjectInput struct {
	Name              string
	Status            string
	StartDate         *time.Time
	DeliveryDate      *time.Time
	ValueGBP          decimal.Decimal
	ExpectedHours     *float64
	TotalProjectHours *float64
}

type ProcessInput struct {
	ProjectID      int64
	Code           string
	Name           string
	EstimatedHours *float64
	SortOrder      int
}

type UserInput struct {
	Name string
}

type HolidayInput struct {
	UserID    int64
	StartDate time.Time
	EndDate   time.Time
	Notes     string
}
