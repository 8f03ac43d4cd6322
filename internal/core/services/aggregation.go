package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/pvicentin/taskreports/internal/core/domain"
)

const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

const (
	topProductivePeriods = 5
	topCategories        = 10
)

// record is the neutral view the aggregation engine works on. Tasks
// and goals collapse into it so the grouping and ranking logic exists
// once, independent of storage.
type record struct {
	when     time.Time
	bucket   domain.StatusBucket
	category string
}

func taskRecords(tasks []*domain.Task) []record {
	recs := make([]record, 0, len(tasks))
	for _, t := range tasks {
		recs = append(recs, record{when: t.DefiningTime(), bucket: t.Bucket(), category: t.Category})
	}
	return recs
}

func goalRecords(goals []*domain.Goal) []record {
	recs := make([]record, 0, len(goals))
	for _, g := range goals {
		recs = append(recs, record{when: g.DefiningTime(), bucket: g.Bucket(), category: g.Category})
	}
	return recs
}

type summaryCounts struct {
	Total     int
	Completed int
	Partial   int
	Third     int
}

// summarize counts the tracked status buckets. The third bucket is
// kind-specific: postponed for tasks, not-completed for goals. Records
// outside the tracked buckets only contribute to Total.
func summarize(recs []record, third domain.StatusBucket) summaryCounts {
	counts := summaryCounts{Total: len(recs)}

	for _, r := range recs {
		switch r.bucket {
		case domain.BucketCompleted:
			counts.Completed++
		case domain.BucketPartial:
			counts.Partial++
		case third:
			counts.Third++
		}
	}

	return counts
}

// percentage returns part over total as 0..100, and 0 for an empty
// total so summaries never divide by zero.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(part) / float64(total) * 100.0
}

// rankProductivePeriods groups completed records by sub-period key
// (ISO week, year-month or year depending on report granularity) and
// keeps the top 5, ties broken by key ascending.
func rankProductivePeriods(recs []record, rt domain.ReportType) []domain.ProductivePeriod {
	completedByKey := make(map[string]int)
	for _, r := range recs {
		if r.bucket != domain.BucketCompleted {
			continue
		}
		completedByKey[subPeriodKey(r.when, rt)]++
	}

	ranked := make([]domain.ProductivePeriod, 0, len(completedByKey))
	for key, count := range completedByKey {
		ranked = append(ranked, domain.ProductivePeriod{Period: key, Completed: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Completed != ranked[j].Completed {
			return ranked[i].Completed > ranked[j].Completed
		}
		return ranked[i].Period < ranked[j].Period
	})

	if len(ranked) > topProductivePeriods {
		ranked = ranked[:topProductivePeriods]
	}
	return ranked
}

// rankTimeSlots classifies every record's hour of day into the fixed
// morning/afternoon/evening partition. All three slots are always
// present; ties keep the morning, afternoon, evening order.
func rankTimeSlots(recs []record) []domain.TimeSlotProductivity {
	slots := []domain.TimeSlotProductivity{
		{Slot: SlotMorning},
		{Slot: SlotAfternoon},
		{Slot: SlotEvening},
	}
	index := map[string]int{SlotMorning: 0, SlotAfternoon: 1, SlotEvening: 2}

	for _, r := range recs {
		i := index[timeSlotFor(r.when.Hour())]
		slots[i].Total++
		if r.bucket == domain.BucketCompleted {
			slots[i].Completed++
		}
	}

	for i := range slots {
		slots[i].CompletionRate = percentage(slots[i].Completed, slots[i].Total)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Completed > slots[j].Completed
	})

	return slots
}

// rankCategories groups by non-empty category label and keeps the top
// 10 by completed count, ties broken by label ascending.
func rankCategories(recs []record) []domain.CategoryStats {
	type tally struct {
		total     int
		completed int
	}
	byCategory := make(map[string]*tally)

	for _, r := range recs {
		if r.category == "" {
			continue
		}
		t, ok := byCategory[r.category]
		if !ok {
			t = &tally{}
			byCategory[r.category] = t
		}
		t.total++
		if r.bucket == domain.BucketCompleted {
			t.completed++
		}
	}

	ranked := make([]domain.CategoryStats, 0, len(byCategory))
	for label, t := range byCategory {
		ranked = append(ranked, domain.CategoryStats{
			Category:       label,
			Total:          t.total,
			Completed:      t.completed,
			CompletionRate: percentage(t.completed, t.total),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Completed != ranked[j].Completed {
			return ranked[i].Completed > ranked[j].Completed
		}
		return ranked[i].Category < ranked[j].Category
	})

	if len(ranked) > topCategories {
		ranked = ranked[:topCategories]
	}
	return ranked
}

// subPeriodKey buckets a timestamp at the granularity of the report:
// ISO week for weekly, year-month for monthly, year for annual. Keys
// sort lexicographically in chronological order.
func subPeriodKey(t time.Time, rt domain.ReportType) string {
	switch rt {
	case domain.ReportWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case domain.ReportMonthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006")
	}
}

func timeSlotFor(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}
