package constants

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusReview     TaskStatus = "review"
	StatusCompleted  TaskStatus = "completed"
	StatusArchived   TaskStatus = "archived"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TaskContext tags which workspace a task belongs to.
type TaskContext string

const (
	ContextBusiness TaskContext = "business"
	ContextPersonal TaskContext = "personal"
)

func (c TaskContext) IsValid() bool {
	return c == ContextBusiness || c == ContextPersonal
}

// DefaultDueSoonWindow is how far ahead of now a todo task counts as coming due.
const DefaultDueSoonWindow = 72 * time.Hour
