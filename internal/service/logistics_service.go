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

// LogisticsService 物流轨迹服务
type LogisticsService struct {
	orderRepo repository.OrderRepository
	nodeRepo  repository.LogisticsNodeRepository
	now       func() time.Time
}

// NewLogisticsService 创建物流轨迹服务
func NewLogisticsService(orderRepo repository.OrderRepository, nodeRepo repository.LogisticsNodeRepository) *LogisticsService {
	return &LogisticsService{
		orderRepo: orderRepo,
		nodeRepo:  nodeRepo,
		now:       time.Now,
	}
}

// GetTrackingInfo 订单物流追踪信息
func (s *LogisticsService) GetTrackingInfo(orderID uint) (*TrackingView, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	nodes, err := s.nodeRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = []models.LogisticsNode{}
	}
	return &TrackingView{
		OrderID:        order.ID,
		TrackingNumber: order.TrackingNumber,
		CourierCompany: order.CourierCompany,
		CourierLogo:    order.CourierLogo,
		Status:         order.Status,
		StatusText:     constants.OrderStatusText(order.Status),
		Nodes:          nodes,
	}, nil
}

// AddNode 追加物流节点；设为当前节点时在同一事务内先取消其余当前节点
func (s *LogisticsService) AddNode(input AddNodeInput) (*models.LogisticsNode, error) {
	input.Location = strings.TrimSpace(input.Location)
	input.Status = strings.TrimSpace(input.Status)
	input.Description = strings.TrimSpace(input.Description)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	eventTime, err := parseEventTime(input.Time, now)
	if err != nil {
		return nil, err
	}

	var node *models.LogisticsNode
	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.WithTx(tx).LockByID(input.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		txNodes := s.nodeRepo.WithTx(tx)
		if input.active() {
			if err := txNodes.ClearActive(order.ID); err != nil {
				return err
			}
		}
		node = &models.LogisticsNode{
			OrderID:        order.ID,
			TrackingNumber: order.TrackingNumber,
			Time:           eventTime,
			Location:       input.Location,
			Status:         input.Status,
			Description:    input.Description,
			IsActive:       input.active(),
			CreatedAt:      now,
		}
		return txNodes.Create(node)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("logistics_node_added",
		"order_id", node.OrderID,
		"node_id", node.ID,
		"is_active", node.IsActive,
	)
	return node, nil
}

var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseEventTime 解析节点时间，空值返回 fallback；无时区的格式按本地时间处理，结果统一为 UTC
// sqlite 以文本保存时间，偏移量不一致时 event_time 排序会错乱
func parseEventTime(raw string, fallback time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	for _, layout := range eventTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, badRequest("物流时间格式不正确", nil)
}
