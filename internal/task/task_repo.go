package task

import (
	"context"
	"database/sql"

	"go-taskboard/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error

	// Ba query scope tương ứng ba tab
	FindOwn(ctx context.Context, userID string) ([]Task, error)
	FindByTeam(ctx context.Context, teamID string) ([]Task, error)
	FindDepartment(ctx context.Context, userID, location string) ([]Task, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx trả về repository mà mọi câu lệnh chạy bên trong tx của service.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db, err := connection.GormOverTx(tx)
	if err != nil {
		// Gắn lỗi vào session để câu lệnh đầu tiên fail thay vì lặng lẽ
		// chạy ngoài transaction
		db = r.db.Session(&gorm.Session{NewDB: true})
		_ = db.AddError(err)
	}
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Assignee").
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Task{}, "id = ?", id).Error
}

func (r *repository) FindOwn(ctx context.Context, userID string) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Assignee").
		Where("created_by = ? OR assigned_to = ?", userID, userID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindByTeam(ctx context.Context, teamID string) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Assignee").
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

// FindDepartment: task public trong khu vực + task của chính mình.
// Luật hiển thị chi tiết hơn được xét lại ở tầng permission.
func (r *repository) FindDepartment(ctx context.Context, userID, location string) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Assignee").
		Where(
			r.db.Where("location = ? AND share_scope = ?", location, "public").
				Or("created_by = ?", userID).
				Or("assigned_to = ?", userID),
		).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}
