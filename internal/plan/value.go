package plan

import (
	"time"

	"github.com/shopspring/decimal"

	"joinery/internal/domain"
)

// ProrateValue spreads a project's value evenly over its calendar days
// and returns the share earned inside [rangeStart, rangeEnd], rounded
// to pennies. Projects without both dates, without value, or outside
// the range return zero. This is a projection aid, not an
// accounting-grade allocation.
func ProrateValue(p domain.Project, rangeStart, rangeEnd time.Time) decimal.Decimal {
	if !p.HasDates() || p.ValueGBP.IsZero() {
		return decimal.Zero
	}
	overlap := OverlapDays(*p.StartDate, *p.DeliveryDate, rangeStart, rangeEnd)
	if overlap == 0 {
		return decimal.Zero
	}
	totalDays := DaysBetween(*p.StartDate, *p.DeliveryDate)
	return p.ValueGBP.
		Mul(decimal.NewFromInt(int64(overlap))).
		Div(decimal.NewFromInt(int64(totalDays))).
		Round(2)
}
