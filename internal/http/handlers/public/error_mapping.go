package public

import (
	"errors"

	"github.com/send-logistics/internal/http/response"
	"github.com/send-logistics/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

var serviceErrorRules = []mappedHandlerError{
	{target: service.ErrBadRequest, code: response.CodeBadRequest, msg: response.MsgBadRequest},
	{target: service.ErrUnauthorized, code: response.CodeUnauthorized, msg: response.MsgUnauthorized},
	{target: service.ErrTokenExpired, code: response.CodeUnauthorized, msg: response.MsgTokenExpired},
	{target: service.ErrTokenInvalid, code: response.CodeUnauthorized, msg: response.MsgTokenInvalid},
	{target: service.ErrForbidden, code: response.CodeForbidden, msg: response.MsgForbidden},
	{target: service.ErrUserNotFound, code: response.CodeUserNotFound, msg: response.MsgUserNotFound},
	{target: service.ErrInvalidPassword, code: response.CodeUserPasswordError, msg: response.MsgUserPasswordError},
	{target: service.ErrPhoneExists, code: response.CodeUserPhoneExists, msg: response.MsgUserPhoneExists},
	{target: service.ErrOrderNotFound, code: response.CodeOrderNotFound, msg: response.MsgOrderNotFound},
	{target: service.ErrAddressNotFound, code: response.CodeAddressNotFound, msg: response.MsgAddressNotFound},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: response.MsgNotFound},
	{target: service.ErrTooManyRequests, code: response.CodeTooManyRequests, msg: response.MsgTooManyRequests},
}

// respondServiceError 按业务错误类型返回响应码；未识别的错误记录日志并返回通用失败。
func respondServiceError(c *gin.Context, err error) {
	for _, rule := range serviceErrorRules {
		if errors.Is(err, rule.target) {
			msg := rule.msg
			if custom := service.MessageOf(err); custom != "" {
				msg = custom
			}
			respondError(c, rule.code, msg, nil)
			return
		}
	}
	msg := response.MsgInternal
	if errors.Is(err, service.ErrOperationFailed) {
		if custom := service.MessageOf(err); custom != "" {
			msg = custom
		}
	}
	respondError(c, response.CodeInternal, msg, err)
}
