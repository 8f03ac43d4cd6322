package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pvicentin/taskreports/internal/core/domain"
)

// ReportService composes period resolution and aggregation into one
// report. It is stateless between calls: every generation is a
// self-contained read over the injected readers.
type ReportService struct {
	taskReader domain.TaskReader
	goalReader domain.GoalReader

	// now anchors auto-computed periods; injectable for tests.
	now func() time.Time
}

func NewReportService(tasks domain.TaskReader, goals domain.GoalReader) *ReportService {
	return &ReportService{
		taskReader: tasks,
		goalReader: goals,
		now:        time.Now,
	}
}

type GenerateReportInput struct {
	ReportType string
	StartDate  string
	EndDate    string
	UserID     string // empty means all users
}

// Generate builds the unified report for the resolved period. Invalid
// input surfaces as domain.ErrInvalidDate, reader failures as
// domain.ErrStorage; nothing partial is ever returned.
func (s *ReportService) Generate(ctx context.Context, input GenerateReportInput) (*domain.Report, error) {
	rt, err := domain.ParseReportType(input.ReportType)
	if err != nil {
		return nil, err
	}

	period, err := ResolvePeriod(rt, input.StartDate, input.EndDate, s.now())
	if err != nil {
		return nil, err
	}

	return s.compose(ctx, period, input.UserID)
}

// WeeklyReport is the shorthand entry point for a week starting at the
// given date.
func (s *ReportService) WeeklyReport(ctx context.Context, weekStart, userID string) (*domain.Report, error) {
	period, err := PeriodFromWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, period, userID)
}

// MonthlyReport is the shorthand entry point for one calendar month.
func (s *ReportService) MonthlyReport(ctx context.Context, year, month int, userID string) (*domain.Report, error) {
	period, err := PeriodFromYearMonth(year, month)
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, period, userID)
}

// AnnualReport is the shorthand entry point for one calendar year.
func (s *ReportService) AnnualReport(ctx context.Context, year int, userID string) (*domain.Report, error) {
	return s.compose(ctx, PeriodFromYear(year), userID)
}

// DateSuggestions lists the candidate period identifiers for pickers.
func (s *ReportService) DateSuggestions(reportType string) ([]string, error) {
	rt, err := domain.ParseReportType(reportType)
	if err != nil {
		return nil, err
	}
	return SuggestPeriods(rt, s.now())
}

func (s *ReportService) compose(ctx context.Context, period domain.Period, userID string) (*domain.Report, error) {
	from := period.Start
	to := endOfDay(period.End)

	var (
		tasks   []*domain.Task
		goals   []*domain.Goal
		taskErr error
		goalErr error
	)

	// The two reads are independent and read-only; fetch them in
	// parallel and fail the whole report on the first error.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		tasks, taskErr = s.taskReader.ListByDateRange(ctx, userID, from, to)
	}()
	go func() {
		defer wg.Done()
		goals, goalErr = s.goalReader.ListByDateRange(ctx, userID, from, to)
	}()
	wg.Wait()

	if taskErr != nil {
		return nil, fmt.Errorf("%w: reading tasks: %v", domain.ErrStorage, taskErr)
	}
	if goalErr != nil {
		return nil, fmt.Errorf("%w: reading goals: %v", domain.ErrStorage, goalErr)
	}

	taskRecs := taskRecords(tasks)
	goalRecs := goalRecords(goals)

	tc := summarize(taskRecs, domain.BucketPostponed)
	gc := summarize(goalRecs, domain.BucketNotCompleted)

	return &domain.Report{
		Period: period.Info(),
		TaskSummary: domain.TaskSummary{
			TotalTasks:             tc.Total,
			ExecutedTasks:          tc.Completed,
			PartiallyExecutedTasks: tc.Partial,
			PostponedTasks:         tc.Third,
			CompletionRate:         percentage(tc.Completed, tc.Total),
			PartialRate:            percentage(tc.Partial, tc.Total),
		},
		GoalSummary: domain.GoalSummary{
			TotalGoals:              gc.Total,
			CompletedGoals:          gc.Completed,
			PartiallyCompletedGoals: gc.Partial,
			NotCompletedGoals:       gc.Third,
			CompletionRate:          percentage(gc.Completed, gc.Total),
			PartialRate:             percentage(gc.Partial, gc.Total),
		},
		Productivity: domain.ProductivityInsights{
			TaskPeriods:   rankProductivePeriods(taskRecs, period.Type),
			GoalPeriods:   rankProductivePeriods(goalRecs, period.Type),
			TaskTimeSlots: rankTimeSlots(taskRecs),
			GoalTimeSlots: rankTimeSlots(goalRecs),
		},
		Categories: domain.CategoryAnalysis{
			TopTaskCategories: rankCategories(taskRecs),
			TopGoalCategories: rankCategories(goalRecs),
		},
	}, nil
}
