package apperror

import "fmt"

// AppError mang đồng thời mã máy đọc được và message tiếng Việt cho
// client; handler không bao giờ tự bịa message.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // lỗi gốc, chỉ vào log
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is so sánh theo Code để bản wrap của một sentinel vẫn match sentinel đó
// qua errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap giữ nguyên mã + message nhưng đính kèm lỗi gốc.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
