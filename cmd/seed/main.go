package main

import (
	"errors"
	"flag"

	"github.com/send-logistics/internal/config"
	"github.com/send-logistics/internal/logger"
	"github.com/send-logistics/internal/models"
	"github.com/send-logistics/internal/provider"
	"github.com/send-logistics/internal/service"

	"github.com/AlekSi/pointer"
)

func main() {
	var phone, password string
	flag.StringVar(&phone, "phone", "13800138000", "演示账号手机号")
	flag.StringVar(&password, "password", "123456", "演示账号密码")
	flag.Parse()

	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.LogLevel, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	c := provider.NewContainerWithDB(cfg, models.DB)

	user, err := c.UserAuthService.Register(service.RegisterInput{
		Username: "演示用户",
		Phone:    phone,
		Password: password,
	})
	if errors.Is(err, service.ErrPhoneExists) {
		stdLog.Printf("演示账号 %s 已存在，跳过数据初始化", phone)
		return
	}
	if err != nil {
		stdLog.Fatalf("Failed to create demo user: %v", err)
	}

	addresses := []service.AddressInput{
		{Name: "张三", Phone: "13800138001", Province: "广东省", City: "深圳市", District: "南山区", Detail: "科技园南路88号", Tag: "公司", IsDefault: true, Type: "sender"},
		{Name: "张三", Phone: "13800138001", Province: "广东省", City: "广州市", District: "天河区", Detail: "天河路385号", Tag: "家", Type: "sender"},
		{Name: "王五", Phone: "13800138002", Province: "上海市", City: "上海市", District: "浦东新区", Detail: "世纪大道100号", Tag: "朋友", IsDefault: true, Type: "receiver"},
	}
	for _, input := range addresses {
		if _, err := c.AddressService.Create(user.ID, input); err != nil {
			stdLog.Fatalf("Failed to create address: %v", err)
		}
	}

	orders := []struct {
		input  service.CreateOrderInput
		nodes  []service.AddNodeInput
		status string
	}{
		{
			input: service.CreateOrderInput{
				CourierCompany:  "顺丰速运",
				ItemName:        "文件",
				SenderName:      "张三",
				SenderPhone:     "13800138001",
				SenderAddress:   "广东省深圳市南山区科技园南路88号",
				ReceiverName:    "王五",
				ReceiverPhone:   "13800138002",
				ReceiverAddress: "上海市浦东新区世纪大道100号",
				EstimatedTime:   "预计明天送达",
			},
			nodes: []service.AddNodeInput{
				{Location: "深圳市", Status: "已揽收", Description: "快递员已取件"},
				{Location: "上海市", Status: "运输中", Description: "快件已到达上海转运中心"},
			},
			status: "in_transit",
		},
		{
			input: service.CreateOrderInput{
				CourierCompany:  "中通快递",
				ItemName:        "衣服",
				SenderName:      "张三",
				SenderPhone:     "13800138001",
				SenderAddress:   "广东省广州市天河区天河路385号",
				ReceiverName:    "王五",
				ReceiverPhone:   "13800138002",
				ReceiverAddress: "上海市浦东新区世纪大道100号",
			},
			nodes: []service.AddNodeInput{
				{Location: "上海市", Status: "已签收", Description: "本人签收", IsActive: pointer.ToBool(true)},
			},
			status: "delivered",
		},
		{
			input: service.CreateOrderInput{
				CourierCompany:  "韵达快递",
				ItemName:        "书籍",
				SenderName:      "张三",
				SenderPhone:     "13800138001",
				SenderAddress:   "广东省深圳市南山区科技园南路88号",
				ReceiverName:    "王五",
				ReceiverPhone:   "13800138002",
				ReceiverAddress: "上海市浦东新区世纪大道100号",
			},
		},
	}
	for _, item := range orders {
		order, err := c.OrderService.Create(user.ID, item.input)
		if err != nil {
			stdLog.Fatalf("Failed to create order: %v", err)
		}
		for _, node := range item.nodes {
			node.OrderID = order.ID
			if _, err := c.LogisticsService.AddNode(node); err != nil {
				stdLog.Fatalf("Failed to add logistics node: %v", err)
			}
		}
		if item.status != "" {
			if _, err := c.OrderService.UpdateStatus(order.ID, user.ID, service.OrderStatusInput{Status: item.status}); err != nil {
				stdLog.Fatalf("Failed to update order status: %v", err)
			}
		}
		logger.Infow("seed_order_created", "order_id", order.ID, "tracking_number", order.TrackingNumber)
	}

	_, err = c.UserAuthService.UpdateProfile(user.ID, service.UpdateProfileInput{
		Avatar: pointer.ToString("https://api.dicebear.com/7.x/avataaars/svg?seed=" + phone),
	})
	if err != nil {
		stdLog.Fatalf("Failed to update demo profile: %v", err)
	}

	stdLog.Printf("Seed data created for %s", phone)
}
