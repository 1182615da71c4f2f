package service

import (
	"strings"
	"time"

	"github.com/send-logistics/internal/constants"
	"github.com/send-logistics/internal/logger"
	"github.com/send-logistics/internal/models"
	"github.com/send-logistics/internal/repository"

	"gorm.io/gorm"
)

const (
	defaultOrderPage     = 1
	defaultOrderPageSize = 10
	maxOrderPageSize     = 100
)

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
	nodeRepo  repository.LogisticsNodeRepository
	now       func() time.Time
	generate  func(courierCompany string, now time.Time) string
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, nodeRepo repository.LogisticsNodeRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		nodeRepo:  nodeRepo,
		now:       time.Now,
		generate:  generateTrackingNumber,
	}
}

// Create 创建订单并写入首个物流节点；单号撞上唯一索引时换号重试
func (s *OrderService) Create(userID uint, input CreateOrderInput) (*OrderView, error) {
	input = normalizeCreateOrderInput(input)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	for round := 0; round < trackingGenerateRounds; round++ {
		trackingNumber := s.generate(input.CourierCompany, now)
		order := &models.Order{
			TrackingNumber:  trackingNumber,
			CourierCompany:  input.CourierCompany,
			CourierLogo:     input.CourierLogo,
			Status:          constants.OrderStatusPending,
			ItemName:        input.ItemName,
			SenderName:      input.SenderName,
			SenderPhone:     input.SenderPhone,
			SenderAddress:   input.SenderAddress,
			ReceiverName:    input.ReceiverName,
			ReceiverPhone:   input.ReceiverPhone,
			ReceiverAddress: input.ReceiverAddress,
			EstimatedTime:   input.EstimatedTime,
			UserID:          userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		seed := &models.LogisticsNode{
			TrackingNumber: trackingNumber,
			Time:           now,
			Location:       extractCity(input.SenderAddress),
			Status:         constants.SeedNodeStatus,
			Description:    constants.SeedNodeDescription,
			IsActive:       true,
			CreatedAt:      now,
		}

		err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
			if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
				return err
			}
			seed.OrderID = order.ID
			return s.nodeRepo.WithTx(tx).Create(seed)
		})
		if repository.IsUniqueViolation(err) {
			logger.Warnw("tracking_number_conflict",
				"tracking_number", trackingNumber,
				"round", round+1,
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		logger.Infow("order_created",
			"user_id", userID,
			"order_id", order.ID,
			"tracking_number", order.TrackingNumber,
		)
		return newOrderView(order, []models.LogisticsNode{*seed}), nil
	}
	return nil, newBizError(ErrOperationFailed, "快递单号生成失败，请重试", ErrTrackingNumberBusy)
}

// List 用户订单分页列表
func (s *OrderService) List(userID uint, input OrderQueryInput) (*PageResult[OrderView], error) {
	input.Status = strings.TrimSpace(input.Status)
	input.Keyword = strings.TrimSpace(input.Keyword)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	page, pageSize := normalizeOrderPagination(input.Page, input.PageSize)

	orders, total, err := s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   input.Status,
		Keyword:  input.Keyword,
	})
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, *newOrderView(&orders[i], nil))
	}
	return newPageResult(views, total, page, pageSize), nil
}

// Get 订单详情，附带物流轨迹
func (s *OrderService) Get(id, userID uint) (*OrderView, error) {
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.withNodes(order)
}

// GetByTrackingNumber 按快递单号公开查询
func (s *OrderService) GetByTrackingNumber(trackingNumber string) (*OrderView, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByTrackingNumber(trackingNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.withNodes(order)
}

// UpdateStatus 更新订单状态，任意合法状态之间均可切换
func (s *OrderService) UpdateStatus(id, userID uint, input OrderStatusInput) (*OrderView, error) {
	input.Status = strings.TrimSpace(input.Status)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	affected, err := s.orderRepo.UpdateStatus(id, userID, input.Status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	logger.Infow("order_status_updated", "order_id", id, "status", input.Status)
	return newOrderView(order, nil), nil
}

// Delete 软删除订单
func (s *OrderService) Delete(id, userID uint) error {
	affected, err := s.orderRepo.SoftDelete(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	logger.Infow("order_deleted", "user_id", userID, "order_id", id)
	return nil
}

func (s *OrderService) withNodes(order *models.Order) (*OrderView, error) {
	nodes, err := s.nodeRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = []models.LogisticsNode{}
	}
	return newOrderView(order, nodes), nil
}

func normalizeOrderPagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultOrderPage
	}
	if pageSize <= 0 {
		pageSize = defaultOrderPageSize
	}
	if pageSize > maxOrderPageSize {
		pageSize = maxOrderPageSize
	}
	return page, pageSize
}

func normalizeCreateOrderInput(input CreateOrderInput) CreateOrderInput {
	input.CourierCompany = strings.TrimSpace(input.CourierCompany)
	input.CourierLogo = strings.TrimSpace(input.CourierLogo)
	input.ItemName = strings.TrimSpace(input.ItemName)
	input.SenderName = strings.TrimSpace(input.SenderName)
	input.SenderPhone = strings.TrimSpace(input.SenderPhone)
	input.SenderAddress = strings.TrimSpace(input.SenderAddress)
	input.ReceiverName = strings.TrimSpace(input.ReceiverName)
	input.ReceiverPhone = strings.TrimSpace(input.ReceiverPhone)
	input.ReceiverAddress = strings.TrimSpace(input.ReceiverAddress)
	input.EstimatedTime = strings.TrimSpace(input.EstimatedTime)
	return input
}
