package export

import (
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"joinery/internal/domain"
	"joinery/internal/service"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleViews() []service.WeekView {
	return []service.WeekView{
		{
			Load: domain.WeekLoad{
				WeekStart: mustDate("2026-03-09"),
				WeekEnd:   mustDate("2026-03-15"),
				Capacity:  80,
				Demand:    100,
				Free:      -20,
				Overbooked: true,
			},
			Projects: []service.ProjectWeekCells{
				{
					Project: domain.Project{ID: 1, Name: "Oak sash windows"},
					Chunks: []domain.WeekCellChunk{
						{ProcessID: 10, Code: "MACHINING", Name: "Machining", SortOrder: 1, ProportionOfWeek: 5.0 / 7.0, Hours: 32.5, Color: "#4E79A7"},
					},
				},
			},
		},
	}
}

func TestPlanWorkbook(t *testing.T) {
	buf, filename, err := PlanWorkbook(sampleViews())
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	if filename != "production-plan-2026-03-09.xlsx" {
		t.Fatalf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	week, err := f.GetCellValue(planSheet, "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if week != "2026-03-09" {
		t.Fatalf("expected week header got %q", week)
	}
	summary, err := f.GetCellValue(planSheet, "F2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if !strings.Contains(summary, "OVERBOOKED") {
		t.Fatalf("expected overbooked marker got %q", summary)
	}
	project, err := f.GetCellValue(planSheet, "B3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if project != "Oak sash windows" {
		t.Fatalf("expected project row got %q", project)
	}
}

func TestScheduleFeed(t *testing.T) {
	project := domain.Project{ID: 7, Name: "Oak sash windows"}
	segments := []domain.ScheduledSegment{
		{ProcessID: 10, Code: "MACHINING", Name: "Machining", SortOrder: 1, Start: mustDate("2026-03-02"), End: mustDate("2026-03-06"), Hours: 40},
		{ProcessID: 11, Code: "GLAZING", Name: "Glazing", SortOrder: 2, Start: mustDate("2026-03-07"), End: mustDate("2026-03-09"), Hours: 12},
	}
	feed := ScheduleFeed(project, segments)

	if !strings.Contains(feed, "BEGIN:VCALENDAR") || !strings.Contains(feed, "END:VCALENDAR") {
		t.Fatalf("not a calendar: %q", feed)
	}
	if got := strings.Count(feed, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("expected 2 events got %d", got)
	}
	if !strings.Contains(feed, "20260302") {
		t.Fatalf("expected first segment start in feed")
	}
	if !strings.Contains(feed, "Machining") {
		t.Fatalf("expected process summary in feed")
	}
}
