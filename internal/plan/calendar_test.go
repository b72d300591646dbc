package plan

import (
	"math/rand"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name   string
		a, b   time.Time
		expect int
	}{
		{name: "same day", a: date(2026, 1, 5), b: date(2026, 1, 5), expect: 1},
		{name: "one week", a: date(2026, 1, 5), b: date(2026, 1, 11), expect: 7},
		{name: "inverted clamps to 1", a: date(2026, 1, 11), b: date(2026, 1, 5), expect: 1},
		{name: "time of day ignored", a: time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC), b: time.Date(2026, 1, 6, 0, 15, 0, 0, time.UTC), expect: 2},
		{name: "across month", a: date(2026, 1, 28), b: date(2026, 2, 3), expect: 7},
	}
	for _, tc := range cases {
		if got := DaysBetween(tc.a, tc.b); got != tc.expect {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.expect, got)
		}
	}
}

func TestOverlapDays(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		expect                     int
	}{
		{name: "disjoint", aStart: date(2026, 1, 1), aEnd: date(2026, 1, 4), bStart: date(2026, 1, 5), bEnd: date(2026, 1, 11), expect: 0},
		{name: "touching edge", aStart: date(2026, 1, 1), aEnd: date(2026, 1, 5), bStart: date(2026, 1, 5), bEnd: date(2026, 1, 11), expect: 1},
		{name: "contained", aStart: date(2026, 1, 6), aEnd: date(2026, 1, 8), bStart: date(2026, 1, 5), bEnd: date(2026, 1, 11), expect: 3},
		{name: "spanning", aStart: date(2026, 1, 1), aEnd: date(2026, 1, 31), bStart: date(2026, 1, 5), bEnd: date(2026, 1, 11), expect: 7},
	}
	for _, tc := range cases {
		if got := OverlapDays(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.expect {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.expect, got)
		}
	}
}

// Randomised check of the closed-interval formula against counting the
// shared days one by one.
func TestOverlapDaysMatchesNaiveCount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := date(2026, 1, 1)
	for i := 0; i < 500; i++ {
		aStart := base.AddDate(0, 0, rng.Intn(60))
		aEnd := aStart.AddDate(0, 0, rng.Intn(30))
		bStart := base.AddDate(0, 0, rng.Intn(60))
		bEnd := bStart.AddDate(0, 0, rng.Intn(30))

		naive := 0
		for day := aStart; !day.After(aEnd); day = day.AddDate(0, 0, 1) {
			if !day.Before(bStart) && !day.After(bEnd) {
				naive++
			}
		}
		if got := OverlapDays(aStart, aEnd, bStart, bEnd); got != naive {
			t.Fatalf("[%v,%v] x [%v,%v]: expected %d got %d", aStart, aEnd, bStart, bEnd, naive, got)
		}
	}
}

func TestWeekdaysBetween(t *testing.T) {
	// Mon 5 Jan 2026 .. Sun 11 Jan 2026
	if got := WeekdaysBetween(date(2026, 1, 5), date(2026, 1, 11)); got != 5 {
		t.Fatalf("full week: expected 5 got %d", got)
	}
	// Sat .. Sun only
	if got := WeekdaysBetween(date(2026, 1, 10), date(2026, 1, 11)); got != 0 {
		t.Fatalf("weekend: expected 0 got %d", got)
	}
	// Two full weeks
	if got := WeekdaysBetween(date(2026, 1, 5), date(2026, 1, 18)); got != 10 {
		t.Fatalf("fortnight: expected 10 got %d", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	monday := date(2026, 1, 5)
	for offset := 0; offset < 7; offset++ {
		got := StartOfWeek(monday.AddDate(0, 0, offset))
		if !got.Equal(monday) {
			t.Fatalf("offset %d: expected %v got %v", offset, monday, got)
		}
	}
}
