package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectStatus string

const (
	ProjectStatusQuoted     ProjectStatus = "quoted"
	ProjectStatusConfirmed  ProjectStatus = "confirmed"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusDelivered  ProjectStatus = "delivered"
)

type User struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Holiday is one staff member's absence, inclusive of both end dates.
// It only ever reduces that member's available capacity.
type Holiday struct {
	ID        int64
	UserID    int64
	StartDate time.Time
	EndDate   time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Process is one manufacturing step of a project (machining, sanding,
// glazing, ...). EstimatedHours is nil for steps that have not been
// estimated yet; those never take part in scheduling.
type Process struct {
	ID             int64
	ProjectID      int64
	Code           string
	Name           string
	EstimatedHours *float64
	SortOrder      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Hours returns the estimated hours, zero when unset.
func (p Process) Hours() float64 {
	if p.EstimatedHours == nil {
		return 0
	}
	return *p.EstimatedHours
}

// Project carries only the scheduling view of a project: the calendar
// window, the money and the hour estimates. Leads, quotes and product
// configuration live elsewhere.
type Project struct {
	ID                int64
	Name              string
	Status            ProjectStatus
	StartDate         *time.Time
	DeliveryDate      *time.Time
	ValueGBP          decimal.Decimal
	ExpectedHours     *float64
	TotalProjectHours *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Processes         []Process
}

// HasDates reports whether the project can appear in calendar and
// capacity views at all.
func (p Project) HasDates() bool {
	return p.StartDate != nil && p.DeliveryDate != nil
}

// Hours returns the expected hours, falling back to the total project
// hours estimate, zero when neither is set.
func (p Project) Hours() float64 {
	if p.ExpectedHours != nil {
		return *p.ExpectedHours
	}
	if p.TotalProjectHours != nil {
		return *p.TotalProjectHours
	}
	return 0
}

// ScheduledSegment is a contiguous run of calendar days assigned to one
// process. Start and End are inclusive day-granularity dates. Segments
// are derived on demand and never persisted.
type ScheduledSegment struct {
	ProcessID int64
	Code      string
	Name      string
	SortOrder int
	Start     time.Time
	End       time.Time
	Hours     float64
}

// WeekCellChunk is the slice of a segment that falls inside one rendered
// week. ProportionOfWeek is the fraction of the 7-day week the segment
// overlaps; Hours are prorated to that overlap.
type WeekCellChunk struct {
	ProcessID        int64
	Code             string
	Name             string
	SortOrder        int
	ProportionOfWeek float64
	Hours            float64
	Color            string
}

// WeekLoad is the capacity picture for one week.
type WeekLoad struct {
	WeekStart  time.Time
	WeekEnd    time.Time
	Capacity   float64
	Demand     float64
	Free       float64
	Overbooked bool
}
