package shared

import (
	"github.com/send-logistics/internal/http/response"
	"github.com/send-logistics/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"

// RequestLog 提供携带 request_id 的日志实例
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if id := c.GetString(requestIDKey); id != "" {
		return logger.SW("request_id", id, "path", c.FullPath())
	}
	return logger.S()
}

// RespondError 写出业务错误信封；携带原始错误时按 code 分级记录日志
func RespondError(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		log := RequestLog(c)
		if code == response.CodeInternal {
			log.Errorw("handler_error", "code", code, "message", msg, "error", err)
		} else {
			log.Warnw("handler_rejected", "code", code, "message", msg, "error", err)
		}
	}
	response.Error(c, code, msg)
}
