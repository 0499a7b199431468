package model

import (
	"time"

	"curtisos.com/curtisos/internal/constants"
)

type Task struct {
	ID          uint                   `gorm:"primaryKey" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null;default:todo;index" json:"status"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null;default:medium" json:"priority"`
	DueDate     *time.Time             `gorm:"index" json:"dueDate"`
	CompletedAt *time.Time             `json:"completedAt"`
	ProjectID   *uint                  `gorm:"index" json:"projectId"`
	Project     *Project               `json:"-"`
	Context     *constants.TaskContext `gorm:"type:varchar(20)" json:"context"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// Project is only modelled so that tasks.project_id is a real foreign key.
type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Tasks     []Task    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
