package plan

import (
	"math"
	"sort"
	"time"

	"joinery/internal/domain"
)

// BuildSchedule allocates a project's processes across its calendar
// window, one contiguous day-segment per process, proportional to each
// process's share of the total estimated hours. Process order is the
// given manufacturing order (SortOrder ascending, ties stable); it is
// never re-sequenced here.
//
// The returned segments are contiguous, non-overlapping and together
// cover exactly [projectStart, projectEnd]. The last segment always
// ends on projectEnd, absorbing whatever rounding drift the earlier
// shares produced.
func BuildSchedule(projectStart, projectEnd time.Time, processes []domain.Process) []domain.ScheduledSegment {
	start := DateOnly(projectStart)
	end := DateOnly(projectEnd)
	if end.Before(start) {
		end = start
	}

	scheduled := make([]domain.Process, 0, len(processes))
	for _, p := range processes {
		if p.Hours() > 0 {
			scheduled = append(scheduled, p)
		}
	}
	if len(scheduled) == 0 {
		return []domain.ScheduledSegment{}
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].SortOrder < scheduled[j].SortOrder
	})

	totalDays := DaysBetween(start, end)
	var totalHours float64
	for _, p := range scheduled {
		totalHours += p.Hours()
	}

	segments := make([]domain.ScheduledSegment, 0, len(scheduled))
	cursor := start
	remaining := totalDays

	for i, p := range scheduled {
		last := i == len(scheduled)-1

		days := remaining
		if !last {
			days = int(math.Round(float64(totalDays) * p.Hours() / totalHours))
			// Leave at least one day for every process still to come,
			// then at least one day for this one.
			if most := remaining - (len(scheduled) - i - 1); days > most {
				days = most
			}
			if days < 1 {
				days = 1
			}
		}

		segEnd := cursor.AddDate(0, 0, days-1)
		if last {
			segEnd = end
		}
		segStart := cursor
		if segStart.After(segEnd) {
			segStart = segEnd
		}

		segments = append(segments, domain.ScheduledSegment{
			ProcessID: p.ID,
			Code:      p.Code,
			Name:      p.Name,
			SortOrder: p.SortOrder,
			Start:     segStart,
			End:       segEnd,
			Hours:     p.Hours(),
		})

		cursor = segEnd.AddDate(0, 0, 1)
		remaining -= days
	}

	return segments
}
