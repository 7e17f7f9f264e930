package dateutil

import (
	"fmt"
	"time"
)

const LayoutLocalDate = "2006-01-02"

// FormatLocalDate trả về key YYYY-MM-DD từ các thành phần lịch local của t.
// Tuyệt đối không dùng t.UTC() ở đây: nửa đêm local format qua UTC sẽ bị lùi
// một ngày với múi giờ dương (GMT+7).
func FormatLocalDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseLocalDate parse key YYYY-MM-DD thành nửa đêm local.
func ParseLocalDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutLocalDate, s, time.Local)
}

// StartOfDay cắt t về nửa đêm local cùng ngày.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek trả về thứ Hai của tuần chứa t (nửa đêm local).
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Chủ nhật tính là ngày cuối tuần
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// EndOfWeek trả về Chủ nhật của tuần chứa t (nửa đêm local).
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// StartOfMonth trả về ngày 1 của tháng chứa t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth trả về ngày cuối của tháng chứa t.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// SameLocalDate so sánh hai mốc thời gian theo ngày lịch local.
func SameLocalDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WithinDays kiểm tra t nằm trong [from, to] theo ngày lịch local (bao gồm hai đầu).
func WithinDays(t, from, to time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(StartOfDay(from)) && !d.After(StartOfDay(to))
}

// IsPastDate báo ngày của t đã qua so với now (theo lịch local).
func IsPastDate(t, now time.Time) bool {
	return StartOfDay(t).Before(StartOfDay(now))
}
