package repository

import (
	"errors"
	"time"

	"github.com/send-logistics/internal/models"

	"gorm.io/gorm"
)

// AddressRepository 地址簿数据访问接口
type AddressRepository interface {
	ListByUser(filter AddressListFilter) ([]models.Address, error)
	GetByIDAndUser(id, userID uint) (*models.Address, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	SoftDelete(id, userID uint) (int64, error)
	ClearDefault(userID uint, addressType string) error
	SetDefault(id, userID uint) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormAddressRepository
}

// GormAddressRepository GORM 实现
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository 创建地址仓库
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAddressRepository) WithTx(tx *gorm.DB) *GormAddressRepository {
	if tx == nil {
		return r
	}
	return &GormAddressRepository{db: tx}
}

// Transaction 执行事务
func (r *GormAddressRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return runTransaction(r.db, fn)
}

func (r *GormAddressRepository) ownerScope(userID uint) *gorm.DB {
	return r.db.Model(&models.Address{}).Where("user_id = ? AND deleted = ?", userID, false)
}

// ListByUser 用户地址列表，默认地址优先，其余按创建时间倒序
func (r *GormAddressRepository) ListByUser(filter AddressListFilter) ([]models.Address, error) {
	query := r.ownerScope(filter.UserID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	var addresses []models.Address
	if err := query.Order("is_default DESC").Order("created_at DESC").Order("id DESC").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetByIDAndUser 获取用户自己的地址
func (r *GormAddressRepository) GetByIDAndUser(id, userID uint) (*models.Address, error) {
	var address models.Address
	if err := r.ownerScope(userID).Where("id = ?", id).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// Create 创建地址
func (r *GormAddressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

// Update 更新地址
func (r *GormAddressRepository) Update(address *models.Address) error {
	return r.db.Save(address).Error
}

// SoftDelete 软删除用户自己的地址，返回影响行数
func (r *GormAddressRepository) SoftDelete(id, userID uint) (int64, error) {
	result := r.ownerScope(userID).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted":    true,
		"is_default": false,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

// ClearDefault 取消用户某类型下的全部默认地址
func (r *GormAddressRepository) ClearDefault(userID uint, addressType string) error {
	return r.ownerScope(userID).
		Where("type = ? AND is_default = ?", addressType, true).
		Updates(map[string]interface{}{
			"is_default": false,
			"updated_at": time.Now(),
		}).Error
}

// SetDefault 设置默认地址，返回影响行数
func (r *GormAddressRepository) SetDefault(id, userID uint) (int64, error) {
	result := r.ownerScope(userID).Where("id = ?", id).Updates(map[string]interface{}{
		"is_default": true,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}
