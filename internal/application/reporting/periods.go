package reporting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period granularity for report buckets.
type Period string

// Supported granularities.
const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Weeks start on Saturday, matching the Persian calendar.
const weekStart = time.Saturday

// EnrichedSale is one sale reduced to the numbers the accounting report needs.
type EnrichedSale struct {
	ID            string
	CreatedAt     time.Time
	PaymentMethod string
	Revenue       decimal.Decimal
	Expense       decimal.Decimal
}

// Profit is revenue minus expense.
func (s EnrichedSale) Profit() decimal.Decimal {
	return s.Revenue.Sub(s.Expense)
}

// Segment is one ordered, non-overlapping period bucket.
type Segment struct {
	Key     string
	Period  Period
	Start   time.Time
	End     time.Time
	Revenue decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
	Orders  int
}

// SegmentOptions controls bucketing. Historical ranges from the earliest sale
// to Now; otherwise Count trailing buckets ending at Now are produced.
type SegmentOptions struct {
	Period     Period
	Count      int
	Historical bool
	Now        time.Time
}

// BuildSegments folds sales into contiguous period buckets. Buckets are
// returned oldest first; a sale belongs to the bucket whose [Start, End]
// range contains its creation time.
func BuildSegments(sales []EnrichedSale, opts SegmentOptions) []Segment {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	type window struct{ start, end time.Time }
	var windows []window

	if opts.Historical {
		earliest := now
		for _, s := range sales {
			if s.CreatedAt.Before(earliest) {
				earliest = s.CreatedAt
			}
		}
		cursor := PeriodStart(opts.Period, earliest)
		last := PeriodStart(opts.Period, now)
		for !cursor.After(last) {
			windows = append(windows, window{cursor, PeriodEnd(opts.Period, cursor)})
			cursor = ShiftPeriod(opts.Period, cursor, 1)
		}
	} else {
		count := opts.Count
		if count < 1 {
			count = 1
		}
		base := PeriodStart(opts.Period, now)
		for i := count - 1; i >= 0; i-- {
			start := ShiftPeriod(opts.Period, base, -i)
			windows = append(windows, window{start, PeriodEnd(opts.Period, start)})
		}
	}

	segments := make([]Segment, 0, len(windows))
	for _, w := range windows {
		seg := Segment{
			Key:     fmt.Sprintf("%s-%s", opts.Period, w.start.Format(time.RFC3339)),
			Period:  opts.Period,
			Start:   w.start,
			End:     w.end,
			Revenue: decimal.Zero,
			Expense: decimal.Zero,
			Profit:  decimal.Zero,
		}
		for _, s := range sales {
			if s.CreatedAt.Before(w.start) || s.CreatedAt.After(w.end) {
				continue
			}
			seg.Revenue = seg.Revenue.Add(s.Revenue)
			seg.Expense = seg.Expense.Add(s.Expense)
			seg.Orders++
		}
		seg.Profit = seg.Revenue.Sub(seg.Expense)
		segments = append(segments, seg)
	}
	return segments
}

// Margin returns profit/revenue×100, or nil when revenue is zero so callers
// render "no data" instead of dividing by zero.
func Margin(revenue, profit decimal.Decimal) *decimal.Decimal {
	if revenue.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	m := profit.Div(revenue).Mul(decimal.NewFromInt(100))
	return &m
}

// PeriodStart truncates t to the start of its bucket.
func PeriodStart(p Period, t time.Time) time.Time {
	switch p {
	case PeriodDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case PeriodWeek:
		daysSinceStart := (int(t.Weekday()) - int(weekStart) + 7) % 7
		d := t.AddDate(0, 0, -daysSinceStart)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
	case PeriodMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default: // PeriodYear
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	}
}

// PeriodEnd returns the inclusive end of the bucket starting at start.
func PeriodEnd(p Period, start time.Time) time.Time {
	return ShiftPeriod(p, start, 1).Add(-time.Nanosecond)
}

// ShiftPeriod moves a bucket start n periods forward (negative n moves back).
func ShiftPeriod(p Period, start time.Time, n int) time.Time {
	switch p {
	case PeriodDay:
		return start.AddDate(0, 0, n)
	case PeriodWeek:
		return start.AddDate(0, 0, 7*n)
	case PeriodMonth:
		return start.AddDate(0, n, 0)
	default: // PeriodYear
		return start.AddDate(n, 0, 0)
	}
}

// ValidPeriod reports whether p names a supported granularity.
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}
