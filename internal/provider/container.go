package provider

import (
	"github.com/send-logistics/internal/cache"
	"github.com/send-logistics/internal/config"
	"github.com/send-logistics/internal/logger"
	"github.com/send-logistics/internal/models"
	"github.com/send-logistics/internal/repository"
	"github.com/send-logistics/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	// Repositories
	UserRepo          repository.UserRepository
	AddressRepo       repository.AddressRepository
	OrderRepo         repository.OrderRepository
	LogisticsNodeRepo repository.LogisticsNodeRepository

	// Services
	TokenService     *service.TokenService
	UserAuthService  *service.UserAuthService
	AddressService   *service.AddressService
	OrderService     *service.OrderService
	LogisticsService *service.LogisticsService
	AreaService      *service.AreaService
}

// NewContainer 初始化容器，使用全局数据库连接
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 基于指定数据库连接初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.UserRepo = repository.NewUserRepository(c.DB)
	c.AddressRepo = repository.NewAddressRepository(c.DB)
	c.OrderRepo = repository.NewOrderRepository(c.DB)
	c.LogisticsNodeRepo = repository.NewLogisticsNodeRepository(c.DB)
}

func (c *Container) initServices() {
	c.TokenService = service.NewTokenService(c.Config.JWT)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.TokenService)
	c.AddressService = service.NewAddressService(c.AddressRepo, c.UserRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.LogisticsNodeRepo)
	c.LogisticsService = service.NewLogisticsService(c.OrderRepo, c.LogisticsNodeRepo)
	c.AreaService = service.NewAreaService(c.Config.Area)
}
