package router

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/send-logistics/internal/config"
	"github.com/send-logistics/internal/constants"
	"github.com/send-logistics/internal/http/response"
	"github.com/send-logistics/internal/logger"
	"github.com/send-logistics/internal/models"
	"github.com/send-logistics/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"

// TokenUserResolver 校验令牌并返回令牌所属用户
type TokenUserResolver interface {
	ResolveTokenUser(tokenString string) (*models.User, error)
}

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{"Content-Type", "Authorization", requestIDHeader}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Z()
	}
	sugar := log.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if userID, ok := c.Get(constants.ContextKeyUserID); ok {
			fields = fields.With("user_id", userID)
		}
		if len(c.Errors) > 0 {
			fields.Errorw("request", "errors", c.Errors.String())
			return
		}
		fields.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// UserJWTAuthMiddleware 用户 JWT 鉴权中间件，缺少或格式错误的 Authorization 头按未登录处理
func UserJWTAuthMiddleware(resolver TokenUserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, present, wellFormed := bearerToken(c)
		if !present || !wellFormed {
			response.Abort(c, response.CodeUnauthorized, response.MsgUnauthorized)
			return
		}
		if !authenticate(c, resolver, tokenString) {
			return
		}
		c.Next()
	}
}

// OptionalUserJWTAuthMiddleware 可选鉴权：没有 Authorization 头时放行，携带的令牌无效时拒绝
func OptionalUserJWTAuthMiddleware(resolver TokenUserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, present, wellFormed := bearerToken(c)
		if !present {
			c.Next()
			return
		}
		if !wellFormed {
			response.Abort(c, response.CodeUnauthorized, response.MsgUnauthorized)
			return
		}
		if !authenticate(c, resolver, tokenString) {
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool, bool) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return "", false, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", true, false
	}
	return strings.TrimSpace(parts[1]), true, true
}

func authenticate(c *gin.Context, resolver TokenUserResolver, tokenString string) bool {
	if resolver == nil {
		response.Abort(c, response.CodeUnauthorized, response.MsgTokenInvalid)
		return false
	}
	user, err := resolver.ResolveTokenUser(tokenString)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenExpired):
			response.Abort(c, response.CodeUnauthorized, response.MsgTokenExpired)
		case errors.Is(err, service.ErrTokenInvalid):
			response.Abort(c, response.CodeUnauthorized, response.MsgTokenInvalid)
		default:
			logger.SW("request_id", getRequestID(c)).Errorw("auth_resolve_user_failed", "error", err)
			response.Abort(c, response.CodeInternal, response.MsgInternal)
		}
		return false
	}
	c.Set(constants.ContextKeyUserID, user.ID)
	c.Set(constants.ContextKeyUserPhone, user.Phone)
	return true
}
