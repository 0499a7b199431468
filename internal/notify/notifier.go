package notify

import (
	"context"
	"time"

	"curtisos.com/curtisos/internal/constants"
	model "curtisos.com/curtisos/internal/models"
)

// Notifier is told about every successful task update so that views built
// from task lists can be refreshed.
type Notifier interface {
	TaskUpdated(ctx context.Context, task *model.Task) error
}

type Event struct {
	TaskID    uint                   `json:"taskId"`
	Status    constants.TaskStatus   `json:"status"`
	Priority  constants.TaskPriority `json:"priority"`
	Context   *constants.TaskContext `json:"context,omitempty"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

func NewEvent(task *model.Task) Event {
	return Event{
		TaskID:    task.ID,
		Status:    task.Status,
		Priority:  task.Priority,
		Context:   task.Context,
		UpdatedAt: task.UpdatedAt,
	}
}

type NopNotifier struct{}

func (NopNotifier) TaskUpdated(context.Context, *model.Task) error {
	return nil
}
