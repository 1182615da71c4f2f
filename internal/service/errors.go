package service

import "errors"

// 业务错误类型，处理器按类型映射为响应码
var (
	ErrOperationFailed    = errors.New("operation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrBadRequest         = errors.New("bad request")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrPhoneExists        = errors.New("phone exists")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrTrackingNumberBusy = errors.New("tracking number generation failed")
)

// BizError 携带自定义提示的业务错误
type BizError struct {
	Kind    error
	Message string
	Err     error
}

func (e *BizError) Error() string {
	msg := e.Message
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

// Is 按错误类型匹配
func (e *BizError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *BizError) Unwrap() error {
	return e.Err
}

func newBizError(kind error, message string, err error) *BizError {
	return &BizError{Kind: kind, Message: message, Err: err}
}

func badRequest(message string, err error) *BizError {
	return newBizError(ErrBadRequest, message, err)
}

// MessageOf 返回错误携带的自定义提示，没有时返回空字符串
func MessageOf(err error) string {
	var bizErr *BizError
	if errors.As(err, &bizErr) {
		return bizErr.Message
	}
	return ""
}
