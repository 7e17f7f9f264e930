package task

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusNewRequests = "new-requests" // chưa bắt đầu
	StatusApproved    = "approved"     // đang thực hiện
	StatusLive        = "live"         // hoàn thành
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

const (
	WorkTypeArchitectNew = "architect-new"
	WorkTypeArchitectOld = "architect-old"
	WorkTypePartnerNew   = "partner-new"
	WorkTypePartnerOld   = "partner-old"
	WorkTypeCustomerNew  = "customer-new"
	WorkTypeCustomerOld  = "customer-old"
	WorkTypeQuoteNew     = "quote-new"
	WorkTypeQuoteOld     = "quote-old"
	WorkTypeOther        = "other"
)

var knownWorkTypes = map[string]bool{
	WorkTypeArchitectNew: true,
	WorkTypeArchitectOld: true,
	WorkTypePartnerNew:   true,
	WorkTypePartnerOld:   true,
	WorkTypeCustomerNew:  true,
	WorkTypeCustomerOld:  true,
	WorkTypeQuoteNew:     true,
	WorkTypeQuoteOld:     true,
	WorkTypeOther:        true,
}

// NormalizeWorkType đưa giá trị lạ về "other" thay vì báo lỗi.
func NormalizeWorkType(v string) string {
	v = strings.TrimSpace(v)
	if knownWorkTypes[v] {
		return v
	}
	return WorkTypeOther
}

// WorkTypeList xử lý cột work_types với dữ liệu lịch sử không đồng nhất:
// có dòng lưu "architect-new", có dòng lưu chuỗi JSON `["architect-new"]`.
// Chuẩn hoá một lần duy nhất ở biên data-access, các tầng trên không bao giờ
// phải parse lại.
type WorkTypeList []string

func (w *WorkTypeList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*w = WorkTypeList{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("work_types: unsupported column type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*w = WorkTypeList{}
		return nil
	}

	var values []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			// Dữ liệu hỏng: coi như một giá trị đơn, không làm vỡ cả query
			values = []string{raw}
		}
	} else {
		values = strings.Split(raw, ",")
	}

	out := make(WorkTypeList, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, NormalizeWorkType(v))
	}
	*w = out
	return nil
}

func (w WorkTypeList) Value() (driver.Value, error) {
	if len(w) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(w))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (w WorkTypeList) Contains(workType string) bool {
	for _, v := range w {
		if v == workType {
			return true
		}
	}
	return false
}

type Task struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string       `gorm:"type:varchar(255);not null"`
	Description string       `gorm:"type:text"`
	WorkTypes   WorkTypeList `gorm:"type:text;not null;default:'[]'"`
	Priority    string       `gorm:"type:varchar(10);not null;default:'normal'"`
	Status      string       `gorm:"type:varchar(20);not null;default:'new-requests';index"`
	ShareScope  string       `gorm:"type:varchar(10);not null;default:'team';index"`

	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedTo *uuid.UUID `gorm:"type:uuid;index"`
	TeamID     *uuid.UUID `gorm:"type:uuid;index"`
	Location   string     `gorm:"type:varchar(20);not null;index"`

	StartDate *time.Time `gorm:"type:date"`
	DueDate   *time.Time `gorm:"type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Creator  *UserRef `gorm:"foreignKey:CreatedBy;references:ID"`
	Assignee *UserRef `gorm:"foreignKey:AssignedTo;references:ID"`
}

func (Task) TableName() string {
	return "tasks"
}

type UserRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (UserRef) TableName() string {
	return "users"
}
