package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/send-logistics/internal/config"
	"github.com/send-logistics/internal/models"
	"github.com/send-logistics/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServices struct {
	db        *gorm.DB
	cfg       *config.Config
	tokens    *TokenService
	auth      *UserAuthService
	address   *AddressService
	order     *OrderService
	logistics *LogisticsService
}

func setupServiceTest(t *testing.T) *testServices {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := config.Default()
	cfg.JWT.SecretKey = "service-test-secret"
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	nodeRepo := repository.NewLogisticsNodeRepository(db)
	tokens := NewTokenService(cfg.JWT)

	return &testServices{
		db:        db,
		cfg:       cfg,
		tokens:    tokens,
		auth:      NewUserAuthService(cfg, userRepo, tokens),
		address:   NewAddressService(addressRepo, userRepo),
		order:     NewOrderService(orderRepo, nodeRepo),
		logistics: NewLogisticsService(orderRepo, nodeRepo),
	}
}

func registerTestUser(t *testing.T, s *testServices, phone string) *models.User {
	t.Helper()
	user, err := s.auth.Register(RegisterInput{Username: "测试用户", Phone: phone, Password: "123456"})
	require.NoError(t, err)
	return user
}

func sampleOrderInput() CreateOrderInput {
	return CreateOrderInput{
		CourierCompany:  "顺丰速运",
		ItemName:        "文件",
		SenderName:      "李四",
		SenderPhone:     "13800138001",
		SenderAddress:   "广东省深圳市南山区科技园南路88号",
		ReceiverName:    "王五",
		ReceiverPhone:   "13800138002",
		ReceiverAddress: "上海市浦东新区世纪大道100号",
		EstimatedTime:   "预计明天送达",
	}
}

func sampleAddressInput(addressType string, isDefault bool) AddressInput {
	return AddressInput{
		Name:      "张三",
		Phone:     "13800138001",
		Province:  "广东省",
		City:      "深圳市",
		District:  "南山区",
		Detail:    "科技园南路88号",
		Tag:       "home",
		IsDefault: isDefault,
		Type:      addressType,
	}
}
