package service

import (
	"strings"
	"time"

	"github.com/send-logistics/internal/logger"
	"github.com/send-logistics/internal/models"
	"github.com/send-logistics/internal/repository"

	"gorm.io/gorm"
)

// AddressService 地址簿服务
type AddressService struct {
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
}

// NewAddressService 创建地址簿服务
func NewAddressService(addressRepo repository.AddressRepository, userRepo repository.UserRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		userRepo:    userRepo,
	}
}

// List 用户地址列表，可按类型过滤
func (s *AddressService) List(userID uint, addressType string) ([]AddressView, error) {
	addresses, err := s.addressRepo.ListByUser(repository.AddressListFilter{
		UserID: userID,
		Type:   strings.TrimSpace(addressType),
	})
	if err != nil {
		return nil, err
	}
	views := make([]AddressView, 0, len(addresses))
	for i := range addresses {
		views = append(views, *newAddressView(&addresses[i]))
	}
	return views, nil
}

// Get 获取地址详情
func (s *AddressService) Get(id, userID uint) (*AddressView, error) {
	address, err := s.addressRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return newAddressView(address), nil
}

// Create 新增地址；设为默认时在同一事务内先取消同类型默认地址
func (s *AddressService) Create(userID uint, input AddressInput) (*AddressView, error) {
	input = normalizeAddressInput(input)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	address := &models.Address{UserID: userID, CreatedAt: now}
	applyAddressInput(address, input, now)

	err := s.addressRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.addressRepo.WithTx(tx)
		if address.IsDefault {
			if err := s.userRepo.WithTx(tx).LockByID(userID); err != nil {
				return err
			}
			if err := txRepo.ClearDefault(userID, address.Type); err != nil {
				return err
			}
		}
		return txRepo.Create(address)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("address_created", "user_id", userID, "address_id", address.ID, "is_default", address.IsDefault)
	return newAddressView(address), nil
}

// Update 编辑地址
func (s *AddressService) Update(id, userID uint, input AddressInput) (*AddressView, error) {
	input = normalizeAddressInput(input)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *models.Address
	err := s.addressRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.addressRepo.WithTx(tx)
		if input.IsDefault {
			if err := s.userRepo.WithTx(tx).LockByID(userID); err != nil {
				return err
			}
		}
		address, err := txRepo.GetByIDAndUser(id, userID)
		if err != nil {
			return err
		}
		if address == nil {
			return ErrAddressNotFound
		}
		if input.IsDefault {
			if err := txRepo.ClearDefault(userID, input.Type); err != nil {
				return err
			}
		}
		applyAddressInput(address, input, time.Now())
		if err := txRepo.Update(address); err != nil {
			return err
		}
		updated = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newAddressView(updated), nil
}

// Delete 软删除地址
func (s *AddressService) Delete(id, userID uint) error {
	affected, err := s.addressRepo.SoftDelete(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}
	logger.Infow("address_deleted", "user_id", userID, "address_id", id)
	return nil
}

// SetDefault 设为默认地址
func (s *AddressService) SetDefault(id, userID uint) error {
	return s.addressRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.addressRepo.WithTx(tx)
		if err := s.userRepo.WithTx(tx).LockByID(userID); err != nil {
			return err
		}
		address, err := txRepo.GetByIDAndUser(id, userID)
		if err != nil {
			return err
		}
		if address == nil {
			return ErrAddressNotFound
		}
		if err := txRepo.ClearDefault(userID, address.Type); err != nil {
			return err
		}
		affected, err := txRepo.SetDefault(id, userID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAddressNotFound
		}
		return nil
	})
}

func normalizeAddressInput(input AddressInput) AddressInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Province = strings.TrimSpace(input.Province)
	input.City = strings.TrimSpace(input.City)
	input.District = strings.TrimSpace(input.District)
	input.Detail = strings.TrimSpace(input.Detail)
	input.Tag = strings.TrimSpace(input.Tag)
	input.Type = strings.ToLower(strings.TrimSpace(input.Type))
	return input
}

func applyAddressInput(address *models.Address, input AddressInput, now time.Time) {
	address.Name = input.Name
	address.Phone = input.Phone
	address.Province = input.Province
	address.City = input.City
	address.District = input.District
	address.Detail = input.Detail
	address.Tag = input.Tag
	address.Type = input.Type
	address.IsDefault = input.IsDefault
	address.UpdatedAt = now
}
