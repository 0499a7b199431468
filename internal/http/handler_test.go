package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	config "curtisos.com/curtisos/internal/configs"
	"curtisos.com/curtisos/internal/constants"
	dto "curtisos.com/curtisos/internal/data_models"
	model "curtisos.com/curtisos/internal/models"
	repository "curtisos.com/curtisos/internal/repositories"
	"curtisos.com/curtisos/internal/services"
)

var now = time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

func setupServer(t *testing.T) (*echo.Echo, *repository.TaskRepository) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := config.OpenDatabase(dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	repo := repository.NewTaskRepository(db)
	service := services.NewTaskService(repo, nil, services.WithClock(func() time.Time { return now }))

	e := echo.New()
	Register(e, NewHandler(service), 1000)
	return e, repo
}

func seed(t *testing.T, repo *repository.TaskRepository, title string, due time.Duration) *model.Task {
	t.Helper()
	d := now.Add(due)
	task := &model.Task{Title: title, Status: constants.StatusTodo, Priority: constants.PriorityMedium, DueDate: &d}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return task
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_DueSoon(t *testing.T) {
	e, repo := setupServer(t)
	seed(t, repo, "inside", 24*time.Hour)
	seed(t, repo, "after", 96*time.Hour)
	seed(t, repo, "before", -24*time.Hour)

	rec := do(e, http.MethodGet, "/tasks/due-soon", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var tasks []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(tasks) != 1 || tasks[0]["title"] != "inside" {
		t.Fatalf("expected [inside], got %v", tasks)
	}
	for _, key := range []string{"id", "title", "status", "priority", "dueDate"} {
		if _, ok := tasks[0][key]; !ok {
			t.Errorf("missing %q in %v", key, tasks[0])
		}
	}
}

func TestHandler_DueSoonEmptyArray(t *testing.T) {
	e, _ := setupServer(t)

	rec := do(e, http.MethodGet, "/tasks/due-soon", "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected 200 [], got %d %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_BulkUpdatePartialFailure(t *testing.T) {
	e, repo := setupServer(t)
	a := seed(t, repo, "a", time.Hour)
	b := seed(t, repo, "b", time.Hour)

	body := fmt.Sprintf(`{"taskIds":[%d,%d,999],"update":{"status":"completed","completedAt":"2026-05-04T09:00:00Z"}}`, a.ID, b.ID)
	rec := do(e, http.MethodPatch, "/tasks/bulk", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.BulkUpdateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if fmt.Sprint(resp.Updated) != fmt.Sprint([]uint{a.ID, b.ID}) || fmt.Sprint(resp.Failed) != "[999]" {
		t.Errorf("unexpected response: %+v", resp)
	}

	rec = do(e, http.MethodGet, "/tasks/due-soon", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("completed tasks must leave the due-soon list, got %s", rec.Body.String())
	}
}

func TestHandler_BulkUpdateValidation(t *testing.T) {
	e, repo := setupServer(t)
	a := seed(t, repo, "a", time.Hour)

	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{"taskIds":`},
		{"no ids", `{"taskIds":[],"update":{"status":"completed"}}`},
		{"no fields", fmt.Sprintf(`{"taskIds":[%d],"update":{}}`, a.ID)},
		{"unknown fields only", fmt.Sprintf(`{"taskIds":[%d],"update":{"colour":"red"}}`, a.ID)},
		{"bad priority", fmt.Sprintf(`{"taskIds":[%d],"update":{"priority":"urgent"}}`, a.ID)},
		{"zero id", `{"taskIds":[0],"update":{"status":"todo"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, http.MethodPatch, "/tasks/bulk", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandler_TaskCRUD(t *testing.T) {
	e, _ := setupServer(t)

	rec := do(e, http.MethodPost, "/tasks", `{"title":"call accountant","priority":"high","context":"business","dueDate":"2026-05-05T10:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	rec = do(e, http.MethodGet, fmt.Sprintf("/tasks/%d", created.ID), "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	rec = do(e, http.MethodPatch, fmt.Sprintf("/tasks/%d", created.ID), `{"status":"in_progress"}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"in_progress"`) {
		t.Errorf("expected in_progress, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodGet, "/tasks?context=business", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"count":1`) {
		t.Errorf("expected one business task, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodGet, "/tasks/999", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	rec = do(e, http.MethodGet, "/tasks/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	rec = do(e, http.MethodPost, "/tasks", `{"title":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_RequestID(t *testing.T) {
	e, _ := setupServer(t)

	rec := do(e, http.MethodGet, "/tasks", "")
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Error("expected a request id header")
	}
}
