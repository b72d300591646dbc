package plan

import (
	"math"
	"sort"
	"time"

	"joinery/internal/domain"
)

// ProjectOntoWeek computes how much of the week [weekStart, weekEnd]
// each segment occupies, as a fraction of the 7-day week and as
// prorated hours. Segments that do not touch the week contribute no
// chunk. Hours assume uniform effort across a segment's calendar span
// and round to one decimal place.
//
// Chunks come back in manufacturing order regardless of where the
// overlaps sit inside the week.
func ProjectOntoWeek(segments []domain.ScheduledSegment, weekStart, weekEnd time.Time) []domain.WeekCellChunk {
	chunks := make([]domain.WeekCellChunk, 0, len(segments))
	for _, seg := range segments {
		overlap := OverlapDays(seg.Start, seg.End, weekStart, weekEnd)
		if overlap == 0 {
			continue
		}
		segDays := DaysBetween(seg.Start, seg.End)
		hours := math.Round(seg.Hours*float64(overlap)/float64(segDays)*10) / 10
		chunks = append(chunks, domain.WeekCellChunk{
			ProcessID:        seg.ProcessID,
			Code:             seg.Code,
			Name:             seg.Name,
			SortOrder:        seg.SortOrder,
			ProportionOfWeek: float64(overlap) / 7,
			Hours:            hours,
			Color:            ColorForCode(seg.Code),
		})
	}
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].SortOrder < chunks[j].SortOrder
	})
	return chunks
}
