package permission

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RolePermission là một dòng policy (role, resource, action) trong DB.
type RolePermission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Role     string    `gorm:"type:varchar(30);not null;index"`
	Resource string    `gorm:"type:varchar(50);not null"`
	Action   string    `gorm:"type:varchar(30);not null"`

	CreatedAt time.Time
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

//go:generate mockgen -source=permission_repo.go -destination=mock/permission_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions() ([]RolePermission, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRolePermissions() ([]RolePermission, error) {
	var perms []RolePermission
	err := r.db.Find(&perms).Error
	return perms, err
}
