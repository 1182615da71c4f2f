package repository

import (
	"github.com/send-logistics/internal/models"

	"gorm.io/gorm"
)

// LogisticsNodeRepository 物流节点数据访问接口
type LogisticsNodeRepository interface {
	ListByOrder(orderID uint) ([]models.LogisticsNode, error)
	Create(node *models.LogisticsNode) error
	ClearActive(orderID uint) error
	WithTx(tx *gorm.DB) *GormLogisticsNodeRepository
}

// GormLogisticsNodeRepository GORM 实现
type GormLogisticsNodeRepository struct {
	db *gorm.DB
}

// NewLogisticsNodeRepository 创建物流节点仓库
func NewLogisticsNodeRepository(db *gorm.DB) *GormLogisticsNodeRepository {
	return &GormLogisticsNodeRepository{db: db}
}

// WithTx 绑定事务
func (r *GormLogisticsNodeRepository) WithTx(tx *gorm.DB) *GormLogisticsNodeRepository {
	if tx == nil {
		return r
	}
	return &GormLogisticsNodeRepository{db: tx}
}

// ListByOrder 订单物流轨迹，按事件时间倒序
func (r *GormLogisticsNodeRepository) ListByOrder(orderID uint) ([]models.LogisticsNode, error) {
	var nodes []models.LogisticsNode
	if err := r.db.Where("order_id = ?", orderID).
		Order("event_time DESC").
		Order("id DESC").
		Find(&nodes).Error; err != nil {
		return nil, err
	}
	return nodes, nil
}

// Create 追加物流节点
func (r *GormLogisticsNodeRepository) Create(node *models.LogisticsNode) error {
	return r.db.Create(node).Error
}

// ClearActive 取消订单下全部当前节点标记
func (r *GormLogisticsNodeRepository) ClearActive(orderID uint) error {
	return r.db.Model(&models.LogisticsNode{}).
		Where("order_id = ? AND is_active = ?", orderID, true).
		Update("is_active", false).Error
}
