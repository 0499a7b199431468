package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"curtisos.com/curtisos/internal/constants"
	apperrors "curtisos.com/curtisos/internal/errors"
	model "curtisos.com/curtisos/internal/models"
	"curtisos.com/curtisos/internal/notify"
	repository "curtisos.com/curtisos/internal/repositories"
)

type TaskService struct {
	repo          *repository.TaskRepository
	notifier      notify.Notifier
	dueSoonWindow time.Duration
	now           func() time.Time
}

type Option func(*TaskService)

// WithClock replaces time.Now as the source of "now" for the due-soon query.
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func WithDueSoonWindow(window time.Duration) Option {
	return func(s *TaskService) {
		if window > 0 {
			s.dueSoonWindow = window
		}
	}
}

func NewTaskService(
	repo *repository.TaskRepository,
	notifier notify.Notifier,
	opts ...Option,
) *TaskService {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}

	s := &TaskService{
		repo:          repo,
		notifier:      notifier,
		dueSoonWindow: constants.DefaultDueSoonWindow,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateTaskInput struct {
	Title     string
	Priority  constants.TaskPriority
	DueDate   *time.Time
	ProjectID *uint
	Context   *constants.TaskContext
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	priority := in.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}
	if in.Context != nil && !in.Context.IsValid() {
		return nil, apperrors.ErrInvalidContext
	}

	task := &model.Task{
		Title:     title,
		Status:    constants.StatusTodo,
		Priority:  priority,
		DueDate:   in.DueDate,
		ProjectID: in.ProjectID,
		Context:   in.Context,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if filter.Context != nil && !filter.Context.IsValid() {
		return nil, apperrors.ErrInvalidContext
	}
	return s.repo.List(ctx, filter)
}

// DueSoon returns todo tasks due between now and now+window inclusive,
// ordered by due date. now is read from the service clock on every call.
func (s *TaskService) DueSoon(ctx context.Context) ([]model.Task, error) {
	return s.repo.DueSoon(ctx, s.now(), s.dueSoonWindow)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, update TaskUpdate) (*model.Task, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, id, update)
}

type BulkResult struct {
	Updated []uint
	Failed  []uint
	Errors  map[uint]string
	Tasks   []model.Task
}

// BulkUpdate applies the same update to every id independently. A failure
// on one id is recorded in the result and does not stop the others; only an
// invalid request fails the call as a whole.
func (s *TaskService) BulkUpdate(ctx context.Context, ids []uint, update TaskUpdate) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, apperrors.ErrTaskIDsRequired
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	result := &BulkResult{
		Updated: make([]uint, 0, len(ids)),
		Failed:  make([]uint, 0),
		Errors:  make(map[uint]string),
		Tasks:   make([]model.Task, 0, len(ids)),
	}

	for _, id := range dedupe(ids) {
		if err := ctx.Err(); err != nil {
			result.fail(id, err)
			continue
		}

		task, err := s.applyUpdate(ctx, id, update)
		if err != nil {
			if !errors.Is(err, apperrors.ErrTaskNotFound) {
				log.Printf("bulk update: task %d: %v", id, err)
			}
			result.fail(id, err)
			continue
		}

		result.Updated = append(result.Updated, id)
		result.Tasks = append(result.Tasks, *task)
	}

	return result, nil
}

func (r *BulkResult) fail(id uint, err error) {
	msg := apperrors.Message(err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		msg = err.Error()
	}
	r.Failed = append(r.Failed, id)
	r.Errors[id] = msg
}

func (s *TaskService) applyUpdate(ctx context.Context, id uint, update TaskUpdate) (*model.Task, error) {
	task, err := s.repo.Patch(ctx, id, update.columns())
	if err != nil {
		return nil, err
	}

	if err := s.notifier.TaskUpdated(ctx, task); err != nil {
		log.Printf("failed to publish update for task %d: %v", id, err)
	}
	return task, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
