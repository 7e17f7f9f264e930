package schedule

import (
	"context"
	"database/sql"
	"time"

	"go-taskboard/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreatePlan(ctx context.Context, p *ScheduledTask) error
	FindPlansInRange(ctx context.Context, from, to time.Time) ([]ScheduledTask, error)

	FindAssignmentsInRange(ctx context.Context, from, to time.Time) ([]ShiftAssignment, error)
	FindAssignmentsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]ShiftAssignment, error)
	CreateAssignment(ctx context.Context, a *ShiftAssignment) error
	DeleteAssignment(ctx context.Context, id string) error
	DeleteAssignmentsInRange(ctx context.Context, from, to time.Time) error
	BulkCreateAssignments(ctx context.Context, assignments []ShiftAssignment) error
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

func (r *repository) CreatePlan(ctx context.Context, p *ScheduledTask) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindPlansInRange(ctx context.Context, from, to time.Time) ([]ScheduledTask, error) {
	var plans []ScheduledTask
	err := r.db.WithContext(ctx).
		Where("scheduled_date BETWEEN ? AND ?", from, to).
		Order("scheduled_date ASC, scheduled_time ASC NULLS LAST").
		Find(&plans).Error
	return plans, err
}

func (r *repository) FindAssignmentsInRange(ctx context.Context, from, to time.Time) ([]ShiftAssignment, error) {
	var assignments []ShiftAssignment
	err := r.db.WithContext(ctx).
		Where("shift_date BETWEEN ? AND ?", from, to).
		Order("shift_date ASC, slot ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *repository) FindAssignmentsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]ShiftAssignment, error) {
	var assignments []ShiftAssignment
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND shift_date = ?", employeeID, date).
		Find(&assignments).Error
	return assignments, err
}

func (r *repository) CreateAssignment(ctx context.Context, a *ShiftAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) DeleteAssignment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&ShiftAssignment{}, "id = ?", id).Error
}

func (r *repository) DeleteAssignmentsInRange(ctx context.Context, from, to time.Time) error {
	return r.db.WithContext(ctx).
		Where("shift_date BETWEEN ? AND ?", from, to).
		Delete(&ShiftAssignment{}).Error
}

func (r *repository) BulkCreateAssignments(ctx context.Context, assignments []ShiftAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&assignments).Error
}
