package router

import (
	"strings"

	"github.com/send-logistics/internal/cache"
	"github.com/send-logistics/internal/config"
	publichandlers "github.com/send-logistics/internal/http/handlers/public"
	"github.com/send-logistics/internal/logger"
	"github.com/send-logistics/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	h := publichandlers.New(c)
	loginRule := RateLimitRule{
		Prefix:        "rate:login",
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}
	requireUser := UserJWTAuthMiddleware(c.UserAuthService)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled {
		r.Use(MetricsMiddleware())
	}

	api := r.Group("/api")
	{
		// 用户认证接口
		auth := api.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("phone")), h.Login)
			auth.POST("/register", h.Register)
			auth.GET("/user-info", requireUser, h.GetUserInfo)
			auth.PUT("/user-info", requireUser, h.UpdateUserInfo)
		}

		// 地址簿（需鉴权）
		addresses := api.Group("/addresses")
		addresses.Use(requireUser)
		{
			addresses.GET("", h.ListAddresses)
			addresses.GET("/:id", h.GetAddress)
			addresses.POST("", h.CreateAddress)
			addresses.PUT("/:id", h.UpdateAddress)
			addresses.DELETE("/:id", h.DeleteAddress)
			addresses.PUT("/:id/default", h.SetDefaultAddress)
		}

		// 订单
		orders := api.Group("/orders")
		{
			orders.GET("/tracking/:trackingNumber", h.GetOrderByTrackingNumber)
			orders.POST("", requireUser, h.CreateOrder)
			orders.GET("", requireUser, h.ListOrders)
			orders.GET("/:id", requireUser, h.GetOrder)
			orders.PUT("/:id/status", requireUser, h.UpdateOrderStatus)
			orders.DELETE("/:id", requireUser, h.DeleteOrder)
		}

		// 物流轨迹
		logistics := api.Group("/logistics")
		{
			logistics.GET("/:orderId", h.GetTrackingInfo)
			logistics.POST("", OptionalUserJWTAuthMiddleware(c.UserAuthService), h.AddLogisticsNode)
		}

		api.GET("/areas/data", h.GetAreaData)
	}

	// 健康检查
	r.GET("/healthz", h.Health)
	if cfg.Metrics.Enabled {
		path := strings.TrimSpace(cfg.Metrics.Path)
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, MetricsHandler())
	}

	return r
}
