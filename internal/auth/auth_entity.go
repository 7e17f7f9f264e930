package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account là hình chiếu của bảng users dưới góc nhìn đăng nhập.
type Account struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string     `gorm:"type:varchar(255);not null"`
	Email    string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string     `gorm:"type:varchar(255);not null"`
	Role     string     `gorm:"type:varchar(30);not null;default:'employee'"`
	TeamID   *uuid.UUID `gorm:"type:uuid"`
	Location string     `gorm:"type:varchar(20);not null"`
	IsActive bool       `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Account) TableName() string {
	return "users"
}
