package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

type CreateTaskRequest struct {
	Title     string     `json:"title"`
	Priority  string     `json:"priority"`
	DueDate   *time.Time `json:"dueDate"`
	ProjectID *uint      `json:"projectId"`
	Context   *string    `json:"context"`
}

type TaskUpdateData struct {
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority"`
	Context     *string      `json:"context"`
	CompletedAt NullableTime `json:"completedAt"`
}

type BulkUpdateRequest struct {
	TaskIDs []uint         `json:"taskIds"`
	Update  TaskUpdateData `json:"update"`
}

type BulkUpdateResponse struct {
	Updated []uint          `json:"updated"`
	Failed  []uint          `json:"failed"`
	Errors  map[uint]string `json:"errors,omitempty"`
}

// NullableTime tells an absent JSON field apart from an explicit null.
type NullableTime struct {
	Set  bool
	Time *time.Time
}

func (n *NullableTime) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		n.Time = nil
		return nil
	}

	var t time.Time
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	n.Time = &t
	return nil
}
