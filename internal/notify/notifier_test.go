package notify

import (
	"encoding/json"
	"testing"
	"time"

	"curtisos.com/curtisos/internal/constants"
	model "curtisos.com/curtisos/internal/models"
)

func TestNewEvent(t *testing.T) {
	personal := constants.ContextPersonal
	updatedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	task := &model.Task{
		ID:        7,
		Title:     "renew passport",
		Status:    constants.StatusCompleted,
		Priority:  constants.PriorityHigh,
		Context:   &personal,
		UpdatedAt: updatedAt,
	}

	payload, err := json.Marshal(NewEvent(task))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"taskId":7,"status":"completed","priority":"high","context":"personal","updatedAt":"2026-02-01T00:00:00Z"}`
	if string(payload) != want {
		t.Errorf("expected %s, got %s", want, payload)
	}
}
