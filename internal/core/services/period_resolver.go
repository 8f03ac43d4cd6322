package services

import (
	"fmt"
	"time"

	"github.com/pvicentin/taskreports/internal/core/domain"
)

const dateLayout = "2006-01-02"

const (
	weeklySuggestions  = 8
	monthlySuggestions = 12
	annualSuggestions  = 5
)

// ResolvePeriod maps a report type plus optional explicit bounds to a
// concrete inclusive period. When both bounds are present they win;
// otherwise the period is computed automatically, anchored at ref.
func ResolvePeriod(rt domain.ReportType, explicitStart, explicitEnd string, ref time.Time) (domain.Period, error) {
	if explicitStart != "" && explicitEnd != "" {
		return resolveExplicit(rt, explicitStart, explicitEnd)
	}

	switch rt {
	case domain.ReportWeekly:
		monday := mondayOf(ref)
		return weekPeriod(monday), nil
	case domain.ReportMonthly:
		return PeriodFromYearMonth(ref.Year(), int(ref.Month()))
	case domain.ReportAnnual:
		return PeriodFromYear(ref.Year()), nil
	}

	return domain.Period{}, fmt.Errorf("%w: unknown report type %q", domain.ErrInvalidDate, rt)
}

func resolveExplicit(rt domain.ReportType, startStr, endStr string) (domain.Period, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: start date %q, expected YYYY-MM-DD", domain.ErrInvalidDate, startStr)
	}

	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: end date %q, expected YYYY-MM-DD", domain.ErrInvalidDate, endStr)
	}

	if end.Before(start) {
		return domain.Period{}, fmt.Errorf("%w: end date %s is before start date %s", domain.ErrInvalidDate, endStr, startStr)
	}

	return domain.Period{
		Type:  rt,
		Start: start,
		End:   end,
		Label: periodLabel(rt, start, end),
	}, nil
}

// PeriodFromWeekStart resolves a weekly period starting at the given
// date, spanning 7 days inclusive.
func PeriodFromWeekStart(weekStart string) (domain.Period, error) {
	start, err := time.Parse(dateLayout, weekStart)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: week start %q, expected YYYY-MM-DD", domain.ErrInvalidDate, weekStart)
	}
	return weekPeriod(start), nil
}

// PeriodFromYearMonth resolves the calendar month period. The month
// must be in 1..12; the end date is the last day of that month.
func PeriodFromYearMonth(year, month int) (domain.Period, error) {
	if month < 1 || month > 12 {
		return domain.Period{}, fmt.Errorf("%w: month %d out of range 1..12", domain.ErrInvalidDate, month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return domain.Period{
		Type:  domain.ReportMonthly,
		Start: first,
		End:   last,
		Label: periodLabel(domain.ReportMonthly, first, last),
	}, nil
}

// PeriodFromYear resolves the calendar year period, Jan 1 to Dec 31.
func PeriodFromYear(year int) domain.Period {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	return domain.Period{
		Type:  domain.ReportAnnual,
		Start: first,
		End:   last,
		Label: periodLabel(domain.ReportAnnual, first, last),
	}
}

// SuggestPeriods produces the candidate period identifiers a UI picker
// offers: 8 week-start dates, 12 year-months or 5 years, newest first.
// Every element is derived independently from ref.
func SuggestPeriods(rt domain.ReportType, ref time.Time) ([]string, error) {
	switch rt {
	case domain.ReportWeekly:
		monday := mondayOf(ref)
		out := make([]string, 0, weeklySuggestions)
		for i := 0; i < weeklySuggestions; i++ {
			out = append(out, monday.AddDate(0, 0, -7*i).Format(dateLayout))
		}
		return out, nil

	case domain.ReportMonthly:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		out := make([]string, 0, monthlySuggestions)
		for i := 0; i < monthlySuggestions; i++ {
			out = append(out, first.AddDate(0, -i, 0).Format("2006-01"))
		}
		return out, nil

	case domain.ReportAnnual:
		out := make([]string, 0, annualSuggestions)
		for i := 0; i < annualSuggestions; i++ {
			out = append(out, fmt.Sprintf("%d", ref.Year()-i))
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: unknown report type %q", domain.ErrInvalidDate, rt)
}

func weekPeriod(start time.Time) domain.Period {
	end := start.AddDate(0, 0, 6)
	return domain.Period{
		Type:  domain.ReportWeekly,
		Start: start,
		End:   end,
		Label: periodLabel(domain.ReportWeekly, start, end),
	}
}

// mondayOf returns the Monday of the ISO week containing t, at date
// precision in UTC.
func mondayOf(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func periodLabel(rt domain.ReportType, start, end time.Time) string {
	switch rt {
	case domain.ReportWeekly:
		return fmt.Sprintf("Week of %s to %s", start.Format("02/01/2006"), end.Format("02/01/2006"))
	case domain.ReportMonthly:
		return start.Format("01/2006")
	default:
		return start.Format("2006")
	}
}

// endOfDay pushes a date-precision bound to the last instant of its
// day so inclusive range queries catch records with intraday times.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
