package common

import (
	"errors"
	"net/http"
)

// ErrorResponse API 에러 응답
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// CustomError 상태 코드를 가진 애플리케이션 에러
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 같은 코드면 같은 에러로 본다 (errors.Is 지원)
func (e *CustomError) Is(target error) bool {
	var t *CustomError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// NewError 새 CustomError 생성
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Wrap 미리 정의된 에러에 원인을 붙인 사본을 만든다
func (e *CustomError) Wrap(err error) *CustomError {
	return NewError(e.Code, e.Message, e.Status, err)
}

// ValidationError 입력 검증 실패
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 새 ValidationError 생성
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 검증 에러 여부
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// AsCustomError err 체인에서 CustomError를 찾는다. 없으면 ErrInternalError로 감싼다
func AsCustomError(err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	if IsValidationError(err) {
		return ErrInvalidRequest.Wrap(err)
	}
	return ErrInternalError.Wrap(err)
}

// 에러 코드
const (
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"   // 408
	ErrCodeTooLarge        = "PAYLOAD_TOO_LARGE" // 413
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
)

// 미리 정의된 에러
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "잘못된 요청입니다", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "리소스를 찾을 수 없습니다", http.StatusNotFound, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "요청 시간이 초과되었습니다", http.StatusRequestTimeout, nil)
	ErrTooLarge        = NewError(ErrCodeTooLarge, "요청 본문이 너무 큽니다", http.StatusRequestEntityTooLarge, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "요청이 너무 많습니다", http.StatusTooManyRequests, nil)

	ErrInternalError      = NewError(ErrCodeInternalError, "서버 내부 오류", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "서비스를 일시적으로 사용할 수 없습니다", http.StatusServiceUnavailable, nil)

	// 도메인 에러
	ErrMealRecordNotFound = NewError(ErrCodeNotFound, "식사 기록을 찾을 수 없습니다", http.StatusNotFound, nil)
	ErrUnknownMenu        = NewError("UNKNOWN_MENU", "카탈로그에 없는 메뉴입니다", http.StatusBadRequest, nil)
)
