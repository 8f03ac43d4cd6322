package domain

import "strings"

// StatusBucket is the closed enumeration the report engine counts by.
// Free-text status labels from storage are normalized into exactly one
// bucket; anything unrecognized lands in BucketOther and only counts
// toward totals.
type StatusBucket int

const (
	BucketOther StatusBucket = iota
	BucketPending
	BucketCompleted
	BucketPartial
	BucketPostponed
	BucketNotCompleted
	BucketInProgress
	BucketNotStarted
)

// Canonical task status labels. The seed vocabulary is the Portuguese
// one; English variants are accepted as aliases on read.
const (
	TaskStatusPending           = "Pendente"
	TaskStatusExecuted          = "Executada"
	TaskStatusPartiallyExecuted = "ParcialmenteExecutada"
	TaskStatusPostponed         = "Adiada"
)

// Canonical goal status labels.
const (
	GoalStatusCompleted          = "Completed"
	GoalStatusPartiallyCompleted = "PartiallyCompleted"
	GoalStatusNotCompleted       = "NotCompleted"
	GoalStatusInProgress         = "InProgress"
	GoalStatusNotStarted         = "NotStarted"
)

var taskStatusBuckets = map[string]StatusBucket{
	"pendente":              BucketPending,
	"pending":               BucketPending,
	"executada":             BucketCompleted,
	"completed":             BucketCompleted,
	"parcialmenteexecutada": BucketPartial,
	"partiallycompleted":    BucketPartial,
	"adiada":                BucketPostponed,
	"postponed":             BucketPostponed,
}

var goalStatusBuckets = map[string]StatusBucket{
	"completed":             BucketCompleted,
	"concluida":             BucketCompleted,
	"partiallycompleted":    BucketPartial,
	"parcialmenteconcluida": BucketPartial,
	"notcompleted":          BucketNotCompleted,
	"naoconcluida":          BucketNotCompleted,
	"inprogress":            BucketInProgress,
	"notstarted":            BucketNotStarted,
}

// TaskStatusBucket maps a raw task status label to its bucket.
func TaskStatusBucket(label string) StatusBucket {
	if b, ok := taskStatusBuckets[normalizeLabel(label)]; ok {
		return b
	}
	return BucketOther
}

// GoalStatusBucket maps a raw goal status label to its bucket.
func GoalStatusBucket(label string) StatusBucket {
	if b, ok := goalStatusBuckets[normalizeLabel(label)]; ok {
		return b
	}
	return BucketOther
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
