package validators

import (
	"database/sql"
	"strconv"
	"strings"

	"curtisos.com/curtisos/internal/constants"
	dto "curtisos.com/curtisos/internal/data_models"
	apperrors "curtisos.com/curtisos/internal/errors"
	"curtisos.com/curtisos/internal/services"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ErrTitleRequired
	}
	if r.Priority != "" && !constants.TaskPriority(r.Priority).IsValid() {
		return apperrors.ErrInvalidPriority
	}
	if r.Context != nil && !constants.TaskContext(*r.Context).IsValid() {
		return apperrors.ErrInvalidContext
	}
	return nil
}

func ValidateBulkUpdateRequest(r *dto.BulkUpdateRequest) (services.TaskUpdate, error) {
	if len(r.TaskIDs) == 0 {
		return services.TaskUpdate{}, apperrors.ErrTaskIDsRequired
	}
	for _, id := range r.TaskIDs {
		if id == 0 {
			return services.TaskUpdate{}, apperrors.ErrInvalidTaskID
		}
	}
	return ValidateTaskUpdate(&r.Update)
}

// ValidateTaskUpdate converts the wire form of a partial update into a
// services.TaskUpdate, rejecting empty or out-of-range payloads.
func ValidateTaskUpdate(d *dto.TaskUpdateData) (services.TaskUpdate, error) {
	var u services.TaskUpdate
	if d.Status != nil {
		s := constants.TaskStatus(*d.Status)
		u.Status = &s
	}
	if d.Priority != nil {
		p := constants.TaskPriority(*d.Priority)
		u.Priority = &p
	}
	if d.Context != nil {
		c := constants.TaskContext(*d.Context)
		u.Context = &c
	}
	if d.CompletedAt.Set {
		nt := sql.NullTime{}
		if d.CompletedAt.Time != nil {
			nt = sql.NullTime{Time: *d.CompletedAt.Time, Valid: true}
		}
		u.CompletedAt = &nt
	}

	if err := u.Validate(); err != nil {
		return services.TaskUpdate{}, err
	}
	return u, nil
}

func ParseTaskID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidTaskID
	}
	return uint(id), nil
}
