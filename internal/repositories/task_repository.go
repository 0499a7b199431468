package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"curtisos.com/curtisos/internal/constants"
	apperrors "curtisos.com/curtisos/internal/errors"
	model "curtisos.com/curtisos/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskFilter struct {
	Status  *constants.TaskStatus
	Context *constants.TaskContext
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	task.DueDate = utc(task.DueDate)
	task.CompletedAt = utc(task.CompletedAt)

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return storeError(err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Context != nil {
		query = query.Where("context = ?", *filter.Context)
	}

	var tasks []model.Task
	err := query.Order("due_date IS NULL, due_date asc, id asc").Find(&tasks).Error
	if err != nil {
		return nil, storeError(err)
	}
	return tasks, nil
}

// DueSoon returns open todo tasks whose due date falls in [now, now+window],
// earliest first.
func (r *TaskRepository) DueSoon(ctx context.Context, now time.Time, window time.Duration) ([]model.Task, error) {
	from := now.UTC()
	to := from.Add(window)

	tasks := make([]model.Task, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", constants.StatusTodo).
		Where("completed_at IS NULL").
		Where("due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", from, to).
		Order("due_date asc, id asc").
		Find(&tasks).Error
	if err != nil {
		return nil, storeError(err)
	}
	return tasks, nil
}

// Patch overwrites the given columns of one task and returns the stored row.
// Keys are column names; time values are normalised to UTC before writing.
func (r *TaskRepository) Patch(ctx context.Context, id uint, columns map[string]interface{}) (*model.Task, error) {
	for k, v := range columns {
		if t, ok := v.(time.Time); ok {
			columns[k] = t.UTC()
		}
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return nil, storeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

func storeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
