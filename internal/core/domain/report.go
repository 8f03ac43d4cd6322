package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate covers every caller input problem on the report
	// path: malformed date strings, out-of-range months, unknown
	// report-type tokens. Never retryable.
	ErrInvalidDate = errors.New("invalid date")

	// ErrStorage wraps a record reader failure. A report is never
	// partially built: the first storage error aborts the whole run.
	ErrStorage = errors.New("storage failure")
)

type ReportType string

const (
	ReportWeekly  ReportType = "weekly"
	ReportMonthly ReportType = "monthly"
	ReportAnnual  ReportType = "annual"
)

func ParseReportType(token string) (ReportType, error) {
	switch ReportType(token) {
	case ReportWeekly, ReportMonthly, ReportAnnual:
		return ReportType(token), nil
	}
	return "", fmt.Errorf("%w: unknown report type %q", ErrInvalidDate, token)
}

// Period is a resolved inclusive date range plus its display label.
// Start and End carry only date precision; End covers its whole day.
type Period struct {
	Type  ReportType
	Start time.Time
	End   time.Time
	Label string
}

// PeriodInfo is the serialized form of a Period inside a Report.
type PeriodInfo struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
}

func (p Period) Info() PeriodInfo {
	return PeriodInfo{
		Type:      string(p.Type),
		StartDate: p.Start.Format("2006-01-02"),
		EndDate:   p.End.Format("2006-01-02"),
		Label:     p.Label,
	}
}

type TaskSummary struct {
	TotalTasks             int     `json:"total_tasks"`
	ExecutedTasks          int     `json:"executed_tasks"`
	PartiallyExecutedTasks int     `json:"partially_executed_tasks"`
	PostponedTasks         int     `json:"postponed_tasks"`
	CompletionRate         float64 `json:"completion_rate"`
	PartialRate            float64 `json:"partial_rate"`
}

type GoalSummary struct {
	TotalGoals              int     `json:"total_goals"`
	CompletedGoals          int     `json:"completed_goals"`
	PartiallyCompletedGoals int     `json:"partially_completed_goals"`
	NotCompletedGoals       int     `json:"not_completed_goals"`
	CompletionRate          float64 `json:"completion_rate"`
	PartialRate             float64 `json:"partial_rate"`
}

// ProductivePeriod is one sub-period bucket (ISO week, year-month or
// year, depending on report granularity) with its completed count.
type ProductivePeriod struct {
	Period    string `json:"period"`
	Completed int    `json:"completed"`
}

type TimeSlotProductivity struct {
	Slot           string  `json:"slot"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

type CategoryStats struct {
	Category       string  `json:"category"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

type ProductivityInsights struct {
	TaskPeriods   []ProductivePeriod     `json:"task_periods"`
	GoalPeriods   []ProductivePeriod     `json:"goal_periods"`
	TaskTimeSlots []TimeSlotProductivity `json:"task_time_slots"`
	GoalTimeSlots []TimeSlotProductivity `json:"goal_time_slots"`
}

type CategoryAnalysis struct {
	TopTaskCategories []CategoryStats `json:"top_task_categories"`
	TopGoalCategories []CategoryStats `json:"top_goal_categories"`
}

type Report struct {
	Period       PeriodInfo           `json:"period"`
	TaskSummary  TaskSummary          `json:"task_summary"`
	GoalSummary  GoalSummary          `json:"goal_summary"`
	Productivity ProductivityInsights `json:"productivity"`
	Categories   CategoryAnalysis     `json:"categories"`
}
