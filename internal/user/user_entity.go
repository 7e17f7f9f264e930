package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string     `gorm:"type:varchar(255);not null"`
	Email    string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string     `gorm:"type:varchar(255);not null"`
	Role     string     `gorm:"type:varchar(30);not null;default:'employee';index"`
	TeamID   *uuid.UUID `gorm:"type:uuid;index"`
	Location string     `gorm:"type:varchar(20);not null;index"`
	IsActive bool       `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
