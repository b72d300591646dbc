package plan

import (
	"testing"

	"github.com/shopspring/decimal"

	"joinery/internal/domain"
)

func valuedProject(value string, start, end string) domain.Project {
	s, e := mustDate(start), mustDate(end)
	return domain.Project{
		ID:           1,
		Name:         "Oak staircase",
		StartDate:    &s,
		DeliveryDate: &e,
		ValueGBP:     decimal.RequireFromString(value),
	}
}

func TestProrateValueSubRange(t *testing.T) {
	// £10,000 over a 10-day window, 5-day sub-range fully inside it.
	p := valuedProject("10000", "2026-01-01", "2026-01-10")
	got := ProrateValue(p, mustDate("2026-01-03"), mustDate("2026-01-07"))
	if !got.Equal(decimal.RequireFromString("5000")) {
		t.Fatalf("expected 5000 got %s", got)
	}
}

func TestProrateValueFullRange(t *testing.T) {
	p := valuedProject("10000", "2026-01-01", "2026-01-10")
	got := ProrateValue(p, mustDate("2025-12-01"), mustDate("2026-02-01"))
	if !got.Equal(decimal.RequireFromString("10000")) {
		t.Fatalf("expected 10000 got %s", got)
	}
}

func TestProrateValueNoOverlap(t *testing.T) {
	p := valuedProject("10000", "2026-01-01", "2026-01-10")
	if got := ProrateValue(p, mustDate("2026-02-01"), mustDate("2026-02-28")); !got.IsZero() {
		t.Fatalf("expected 0 got %s", got)
	}
}

func TestProrateValueMissingData(t *testing.T) {
	s := mustDate("2026-01-01")
	cases := []struct {
		name    string
		project domain.Project
	}{
		{name: "no dates", project: domain.Project{ValueGBP: decimal.RequireFromString("10000")}},
		{name: "start only", project: domain.Project{StartDate: &s, ValueGBP: decimal.RequireFromString("10000")}},
		{name: "no value", project: func() domain.Project {
			p := valuedProject("10000", "2026-01-01", "2026-01-10")
			p.ValueGBP = decimal.Zero
			return p
		}()},
	}
	for _, tc := range cases {
		if got := ProrateValue(tc.project, mustDate("2026-01-01"), mustDate("2026-01-31")); !got.IsZero() {
			t.Fatalf("%s: expected 0 got %s", tc.name, got)
		}
	}
}

func TestProrateValueRoundsToPennies(t *testing.T) {
	// £100 over 3 days, 1-day range: 33.333... -> 33.33
	p := valuedProject("100", "2026-01-01", "2026-01-03")
	got := ProrateValue(p, mustDate("2026-01-01"), mustDate("2026-01-01"))
	if !got.Equal(decimal.RequireFromString("33.33")) {
		t.Fatalf("expected 33.33 got %s", got)
	}
}
