package services

import (
	"database/sql"

	"curtisos.com/curtisos/internal/constants"
	apperrors "curtisos.com/curtisos/internal/errors"
)

// TaskUpdate is a partial task record. A nil field is left untouched.
// CompletedAt with Valid=false clears the completion timestamp.
type TaskUpdate struct {
	Status      *constants.TaskStatus
	Priority    *constants.TaskPriority
	Context     *constants.TaskContext
	CompletedAt *sql.NullTime
}

func (u TaskUpdate) IsEmpty() bool {
	return u.Status == nil && u.Priority == nil && u.Context == nil && u.CompletedAt == nil
}

func (u TaskUpdate) Validate() error {
	if u.IsEmpty() {
		return apperrors.ErrInvalidUpdatePayload
	}
	if u.Status != nil && !u.Status.IsValid() {
		return apperrors.ErrInvalidStatus
	}
	if u.Priority != nil && !u.Priority.IsValid() {
		return apperrors.ErrInvalidPriority
	}
	if u.Context != nil && !u.Context.IsValid() {
		return apperrors.ErrInvalidContext
	}
	return nil
}

// columns builds a fresh column map on every call; the repository may
// rewrite values in place.
func (u TaskUpdate) columns() map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	if u.Priority != nil {
		cols["priority"] = *u.Priority
	}
	if u.Context != nil {
		cols["context"] = *u.Context
	}
	if u.CompletedAt != nil {
		if u.CompletedAt.Valid {
			cols["completed_at"] = u.CompletedAt.Time
		} else {
			cols["completed_at"] = nil
		}
	}
	return cols
}
