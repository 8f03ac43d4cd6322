package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvicentin/taskreports/internal/core/domain"
	"github.com/pvicentin/taskreports/internal/core/services"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod_Auto(t *testing.T) {
	ref := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC) // a Wednesday

	t.Run("Success: Weekly spans Monday to Sunday of the reference week", func(t *testing.T) {
		period, err := services.ResolvePeriod(domain.ReportWeekly, "", "", ref)

		require.NoError(t, err)
		assert.Equal(t, date(2024, time.January, 8), period.Start)
		assert.Equal(t, date(2024, time.January, 14), period.End)
		assert.Equal(t, "Week of 08/01/2024 to 14/01/2024", period.Label)
	})

	t.Run("Success: Monthly spans the full calendar month", func(t *testing.T) {
		period, err := services.ResolvePeriod(domain.ReportMonthly, "", "", ref)

		require.NoError(t, err)
		assert.Equal(t, date(2024, time.January, 1), period.Start)
		assert.Equal(t, date(2024, time.January, 31), period.End)
		assert.Equal(t, "01/2024", period.Label)
	})

	t.Run("Success: Annual spans Jan 1 to Dec 31", func(t *testing.T) {
		period, err := services.ResolvePeriod(domain.ReportAnnual, "", "", ref)

		require.NoError(t, err)
		assert.Equal(t, date(2024, time.January, 1), period.Start)
		assert.Equal(t, date(2024, time.December, 31), period.End)
		assert.Equal(t, "2024", period.Label)
	})

	t.Run("Success: Start never exceeds end for any type or reference date", func(t *testing.T) {
		refs := []time.Time{
			time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC),
		}
		types := []domain.ReportType{domain.ReportWeekly, domain.ReportMonthly, domain.ReportAnnual}

		for _, rt := range types {
			for _, r := range refs {
				period, err := services.ResolvePeriod(rt, "", "", r)
				require.NoError(t, err)
				assert.False(t, period.Start.After(period.End), "start after end for %s at %s", rt, r)

				if rt == domain.ReportWeekly {
					assert.Equal(t, 6, int(period.End.Sub(period.Start).Hours()/24))
				}
				if rt == domain.ReportMonthly {
					assert.Equal(t, 1, period.Start.Day())
				}
			}
		}
	})

	t.Run("Edge Case: December rolls over to January correctly", func(t *testing.T) {
		period, err := services.ResolvePeriod(domain.ReportMonthly, "", "", date(2023, time.December, 15))

		require.NoError(t, err)
		assert.Equal(t, date(2023, time.December, 31), period.End)
	})

	t.Run("Fail: Unknown report type is rejected", func(t *testing.T) {
		_, err := services.ResolvePeriod(domain.ReportType("daily"), "", "", ref)

		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestResolvePeriod_Explicit(t *testing.T) {
	ref := date(2024, time.January, 10)

	t.Run("Success: Explicit bounds win over the reference date", func(t *testing.T) {
		period, err := services.ResolvePeriod(domain.ReportWeekly, "2024-03-01", "2024-03-10", ref)

		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 1), period.Start)
		assert.Equal(t, date(2024, time.March, 10), period.End)
	})

	t.Run("Fail: Malformed start date", func(t *testing.T) {
		_, err := services.ResolvePeriod(domain.ReportWeekly, "01-03-2024", "2024-03-10", ref)

		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("Fail: Malformed end date", func(t *testing.T) {
		_, err := services.ResolvePeriod(domain.ReportWeekly, "2024-03-01", "2024-13-99", ref)

		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("Fail: End before start is rejected", func(t *testing.T) {
		_, err := services.ResolvePeriod(domain.ReportWeekly, "2024-03-10", "2024-03-01", ref)

		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestPeriodFromYearMonth(t *testing.T) {
	t.Run("Success: Leap February ends on the 29th", func(t *testing.T) {
		period, err := services.PeriodFromYearMonth(2024, 2)

		require.NoError(t, err)
		assert.Equal(t, date(2024, time.February, 29), period.End)
	})

	t.Run("Success: Non-leap February ends on the 28th", func(t *testing.T) {
		period, err := services.PeriodFromYearMonth(2023, 2)

		require.NoError(t, err)
		assert.Equal(t, date(2023, time.February, 28), period.End)
	})

	t.Run("Success: Every valid month ends on its last calendar day", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			period, err := services.PeriodFromYearMonth(2023, month)
			require.NoError(t, err)

			assert.Equal(t, 1, period.Start.Day())
			next := period.End.AddDate(0, 0, 1)
			assert.Equal(t, 1, next.Day(), "end of month %d must be the day before the 1st", month)
		}
	})

	t.Run("Fail: Month outside 1..12", func(t *testing.T) {
		_, err := services.PeriodFromYearMonth(2024, 13)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)

		_, err = services.PeriodFromYearMonth(2024, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestPeriodFromWeekStart(t *testing.T) {
	t.Run("Success: Spans seven days inclusive from the given date", func(t *testing.T) {
		period, err := services.PeriodFromWeekStart("2024-01-08")

		require.NoError(t, err)
		assert.Equal(t, date(2024, time.January, 8), period.Start)
		assert.Equal(t, date(2024, time.January, 14), period.End)
		assert.Equal(t, domain.ReportWeekly, period.Type)
	})

	t.Run("Fail: Malformed date", func(t *testing.T) {
		_, err := services.PeriodFromWeekStart("next monday")

		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestPeriodFromYear(t *testing.T) {
	period := services.PeriodFromYear(2024)

	assert.Equal(t, date(2024, time.January, 1), period.Start)
	assert.Equal(t, date(2024, time.December, 31), period.End)
	assert.Equal(t, "2024", period.Label)
}

func TestSuggestPeriods(t *testing.T) {
	ref := date(2024, time.January, 10) // a Wednesday

	t.Run("Success: Weekly yields 8 Mondays strictly decreasing by 7 days", func(t *testing.T) {
		suggestions, err := services.SuggestPeriods(domain.ReportWeekly, ref)

		require.NoError(t, err)
		require.Len(t, suggestions, 8)

		prev := time.Time{}
		for i, s := range suggestions {
			d, err := time.Parse("2006-01-02", s)
			require.NoError(t, err, "suggestion %q must be a valid date", s)
			assert.Equal(t, time.Monday, d.Weekday())

			if i > 0 {
				assert.Equal(t, -7*24*time.Hour, d.Sub(prev))
			}
			prev = d
		}

		assert.Equal(t, "2024-01-08", suggestions[0])
	})

	t.Run("Success: Monthly yields 12 year-months newest first", func(t *testing.T) {
		suggestions, err := services.SuggestPeriods(domain.ReportMonthly, ref)

		require.NoError(t, err)
		require.Len(t, suggestions, 12)
		assert.Equal(t, "2024-01", suggestions[0])
		assert.Equal(t, "2023-12", suggestions[1])
		assert.Equal(t, "2023-02", suggestions[11])
	})

	t.Run("Success: Annual yields 5 years newest first", func(t *testing.T) {
		suggestions, err := services.SuggestPeriods(domain.ReportAnnual, ref)

		require.NoError(t, err)
		assert.Equal(t, []string{"2024", "2023", "2022", "2021", "2020"}, suggestions)
	})

	t.Run("Success: Re-invocation restarts the sequence identically", func(t *testing.T) {
		first, err := services.SuggestPeriods(domain.ReportWeekly, ref)
		require.NoError(t, err)
		second, err := services.SuggestPeriods(domain.ReportWeekly, ref)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Fail: Unknown report type", func(t *testing.T) {
		_, err := services.SuggestPeriods(domain.ReportType("hourly"), ref)

		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}
