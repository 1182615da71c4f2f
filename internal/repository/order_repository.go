package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/send-logistics/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderKeywordColumns 订单关键字搜索覆盖的列
var orderKeywordColumns = []string{"tracking_number", "receiver_name", "receiver_phone", "sender_name"}

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndUser(id, userID uint) (*models.Order, error)
	GetByTrackingNumber(trackingNumber string) (*models.Order, error)
	ListByUser(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id, userID uint, status string) (int64, error)
	SoftDelete(id, userID uint) (int64, error)
	LockByID(id uint) (*models.Order, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction 执行事务
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return runTransaction(r.db, fn)
}

func (r *GormOrderRepository) alive() *gorm.DB {
	return r.db.Model(&models.Order{}).Where("deleted = ?", false)
}

func firstOrder(query *gorm.DB) (*models.Order, error) {
	var order models.Order
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Create 创建订单
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID 获取订单（不校验归属）
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	return firstOrder(r.alive().Where("id = ?", id))
}

// GetByIDAndUser 获取用户自己的订单
func (r *GormOrderRepository) GetByIDAndUser(id, userID uint) (*models.Order, error) {
	return firstOrder(r.alive().Where("id = ? AND user_id = ?", id, userID))
}

// GetByTrackingNumber 根据快递单号获取订单
func (r *GormOrderRepository) GetByTrackingNumber(trackingNumber string) (*models.Order, error) {
	return firstOrder(r.alive().Where("tracking_number = ?", trackingNumber))
}

// ListByUser 用户订单列表
func (r *GormOrderRepository) ListByUser(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.alive().Where("user_id = ?", filter.UserID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		condition, argCount := buildLikeCondition(r.db, orderKeywordColumns)
		query = query.Where(condition, repeatLikeArgs("%"+escapeLike(keyword)+"%", argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var orders []models.Order
	if err := query.Order("created_at DESC").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 更新用户自己订单的状态，返回影响行数
func (r *GormOrderRepository) UpdateStatus(id, userID uint, status string) (int64, error) {
	result := r.alive().Where("id = ? AND user_id = ?", id, userID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

// SoftDelete 软删除用户自己的订单，返回影响行数
func (r *GormOrderRepository) SoftDelete(id, userID uint) (int64, error) {
	result := r.alive().Where("id = ? AND user_id = ?", id, userID).Updates(map[string]interface{}{
		"deleted":    true,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

// LockByID 加锁读取订单，用于串行化同一订单的物流节点写入；sqlite 下不生成锁子句。
func (r *GormOrderRepository) LockByID(id uint) (*models.Order, error) {
	return firstOrder(r.alive().Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id))
}
