package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"joinery/internal/domain"
)

// ScheduleFeed serialises a project's segments as an iCalendar feed,
// one all-day event per process segment, for workshop wall displays
// and staff calendar subscriptions.
func ScheduleFeed(project domain.Project, segments []domain.ScheduledSegment) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//joinery//production-scheduler//EN")
	cal.SetName(fmt.Sprintf("%s - production schedule", project.Name))

	now := time.Now().UTC()
	for _, seg := range segments {
		event := cal.AddEvent(fmt.Sprintf("project-%d-process-%d@joinery", project.ID, seg.ProcessID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(seg.Start)
		// DTEND is exclusive for all-day events
		event.SetAllDayEndAt(seg.End.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s: %s", project.Name, seg.Name))
		event.SetDescription(fmt.Sprintf("%.1f estimated hours", seg.Hours))
	}

	return cal.Serialize()
}
