package team

import (
	"context"
	"database/sql"

	"go-taskboard/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Team) error
	FindAll(ctx context.Context) ([]Team, error)
	FindAllByLocation(ctx context.Context, location string) ([]Team, error)
	FindByID(ctx context.Context, id string) (*Team, error)
	Update(ctx context.Context, t *Team) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *repository) FindAllByLocation(ctx context.Context, location string) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Team, error) {
	var t Team
	err := r.db.WithContext(ctx).
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) Update(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Team{}, "id = ?", id).Error
}
