package user

import (
	"context"
	"database/sql"

	"go-taskboard/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindAllByTeam(ctx context.Context, teamID string) ([]User, error)
	FindAllByLocation(ctx context.Context, location string) ([]User, error)
	Update(ctx context.Context, u *User) error
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

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindAllByTeam(ctx context.Context, teamID string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindAllByLocation(ctx context.Context, location string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
