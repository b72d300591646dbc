package plan

import (
	"time"

	"joinery/internal/domain"
)

// DefaultWorkdayHours is the working hours one roster member
// contributes per weekday.
const DefaultWorkdayHours = 8.0

// WeekCapacity sums the working hours the roster can supply over
// [weekStart, weekEnd]. Only Mon-Fri days count. A member's own
// holidays remove days from that member alone; a member on holiday all
// week contributes zero. Empty roster or holiday data degrades to zero
// contribution from the missing piece, never an error.
func WeekCapacity(weekStart, weekEnd time.Time, roster []domain.User, holidays []domain.Holiday, workdayHours float64) float64 {
	start, end := DateOnly(weekStart), DateOnly(weekEnd)

	byUser := make(map[int64][]domain.Holiday, len(holidays))
	for _, h := range holidays {
		byUser[h.UserID] = append(byUser[h.UserID], h)
	}

	var capacity float64
	for _, member := range roster {
		days := 0
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			if !IsWorkday(day) {
				continue
			}
			if onHoliday(day, byUser[member.ID]) {
				continue
			}
			days++
		}
		capacity += float64(days) * workdayHours
	}
	return capacity
}

func onHoliday(day time.Time, holidays []domain.Holiday) bool {
	for _, h := range holidays {
		hs, he := DateOnly(h.StartDate), DateOnly(h.EndDate)
		if !day.Before(hs) && !day.After(he) {
			return true
		}
	}
	return false
}

// WeekDemand sums the hours the given projects commit to the week
// [weekStart, weekEnd]. Each project's expected hours are prorated by
// its calendar-day overlap with the week over its weekday duration, the
// weekday basis matching WeekCapacity. Projects without both dates or
// without hours contribute nothing.
func WeekDemand(weekStart, weekEnd time.Time, projects []domain.Project) float64 {
	var demand float64
	for _, p := range projects {
		if !p.HasDates() || p.Hours() <= 0 {
			continue
		}
		overlap := OverlapDays(*p.StartDate, *p.DeliveryDate, weekStart, weekEnd)
		if overlap == 0 {
			continue
		}
		weekdayDays := WeekdaysBetween(*p.StartDate, *p.DeliveryDate)
		if weekdayDays == 0 {
			continue
		}
		demand += p.Hours() * float64(overlap) / float64(weekdayDays)
	}
	return demand
}

// WeekLoad derives the free/overbooked signal for one week. Free is
// capacity minus demand and deliberately goes negative when the week is
// overbooked.
func WeekLoad(weekStart, weekEnd time.Time, roster []domain.User, holidays []domain.Holiday, projects []domain.Project, workdayHours float64) domain.WeekLoad {
	capacity := WeekCapacity(weekStart, weekEnd, roster, holidays, workdayHours)
	demand := WeekDemand(weekStart, weekEnd, projects)
	free := capacity - demand
	return domain.WeekLoad{
		WeekStart:  DateOnly(weekStart),
		WeekEnd:    DateOnly(weekEnd),
		Capacity:   capacity,
		Demand:     demand,
		Free:       free,
		Overbooked: free < 0,
	}
}
