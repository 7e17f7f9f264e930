package schedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Các ca làm việc cố định của cửa hàng.
const (
	SlotFullDay   = "8h-17h30"
	SlotMorning   = "8h-12h"
	SlotAfternoon = "13h30-17h30"
	SlotEvening   = "17h30-21h"
)

func ValidSlot(slot string) bool {
	switch slot {
	case SlotFullDay, SlotMorning, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

// ScheduledTask là một kế hoạch trên lịch: có thể gắn vào một task
// hoặc đứng độc lập.
type ScheduledTask struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Description   string     `gorm:"type:text"`
	ScheduledDate time.Time  `gorm:"type:date;not null;index"`
	ScheduledTime *string    `gorm:"type:varchar(10)"`
	TaskID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Location      string     `gorm:"type:varchar(20);not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ScheduledTask) TableName() string {
	return "scheduled_tasks"
}

// ShiftAssignment gán một nhân viên vào một ca của một ngày.
// Ràng buộc nghiệp vụ: mỗi nhân viên tối đa một ca mỗi ngày,
// thay ca phải có xác nhận.
type ShiftAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_assignment_employee_date"`
	ShiftDate  time.Time `gorm:"type:date;not null;index:idx_assignment_employee_date"`
	Slot       string    `gorm:"type:varchar(20);not null"`
	Location   string    `gorm:"type:varchar(20);not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShiftAssignment) TableName() string {
	return "schedule_assignments"
}
