package repository

import (
	"testing"
	"time"

	"github.com/send-logistics/internal/constants"
	"github.com/send-logistics/internal/models"
)

func createTestAddress(t *testing.T, repo *GormAddressRepository, userID uint, addressType string, isDefault bool, createdAt time.Time) *models.Address {
	t.Helper()
	address := &models.Address{
		UserID:    userID,
		Name:      "张三",
		Phone:     "13800138000",
		Province:  "广东省",
		City:      "深圳市",
		District:  "南山区",
		Detail:    "科技园路1号",
		Type:      addressType,
		IsDefault: isDefault,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := repo.Create(address); err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	return address
}

func TestAddressRepositoryListOrdersDefaultFirst(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewAddressRepository(db)
	user := createTestUser(t, db, "13800138000")
	base := time.Now().Add(-time.Hour)

	older := createTestAddress(t, repo, user.ID, constants.AddressTypeSender, true, base)
	newer := createTestAddress(t, repo, user.ID, constants.AddressTypeSender, false, base.Add(time.Minute))
	receiver := createTestAddress(t, repo, user.ID, constants.AddressTypeReceiver, false, base.Add(2*time.Minute))

	all, err := repo.ListByUser(AddressListFilter{UserID: user.ID})
	if err != nil {
		t.Fatalf("list addresses failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 addresses, got %d", len(all))
	}
	if all[0].ID != older.ID || all[1].ID != receiver.ID || all[2].ID != newer.ID {
		t.Fatalf("unexpected order: %d %d %d", all[0].ID, all[1].ID, all[2].ID)
	}

	senders, err := repo.ListByUser(AddressListFilter{UserID: user.ID, Type: constants.AddressTypeSender})
	if err != nil {
		t.Fatalf("list sender addresses failed: %v", err)
	}
	if len(senders) != 2 {
		t.Fatalf("expected 2 sender addresses, got %d", len(senders))
	}
}

func TestAddressRepositoryClearAndSetDefaultScopedByType(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewAddressRepository(db)
	user := createTestUser(t, db, "13800138000")
	now := time.Now()

	sender := createTestAddress(t, repo, user.ID, constants.AddressTypeSender, true, now)
	receiver := createTestAddress(t, repo, user.ID, constants.AddressTypeReceiver, true, now)
	other := createTestAddress(t, repo, user.ID, constants.AddressTypeSender, false, now)

	if err := repo.ClearDefault(user.ID, constants.AddressTypeSender); err != nil {
		t.Fatalf("clear default failed: %v", err)
	}
	affected, err := repo.SetDefault(other.ID, user.ID)
	if err != nil || affected != 1 {
		t.Fatalf("set default failed: affected=%d err=%v", affected, err)
	}

	gotSender, _ := repo.GetByIDAndUser(sender.ID, user.ID)
	gotReceiver, _ := repo.GetByIDAndUser(receiver.ID, user.ID)
	gotOther, _ := repo.GetByIDAndUser(other.ID, user.ID)
	if gotSender.IsDefault {
		t.Fatalf("previous sender default should be cleared")
	}
	if !gotReceiver.IsDefault {
		t.Fatalf("receiver default should be untouched")
	}
	if !gotOther.IsDefault {
		t.Fatalf("new sender default should be set")
	}
}

func TestAddressRepositorySoftDeleteScopedByOwner(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewAddressRepository(db)
	owner := createTestUser(t, db, "13800138000")
	stranger := createTestUser(t, db, "13900139000")
	address := createTestAddress(t, repo, owner.ID, constants.AddressTypeSender, false, time.Now())

	affected, err := repo.SoftDelete(address.ID, stranger.ID)
	if err != nil {
		t.Fatalf("soft delete by stranger failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("stranger should not delete address, affected=%d", affected)
	}

	affected, err = repo.SoftDelete(address.ID, owner.ID)
	if err != nil || affected != 1 {
		t.Fatalf("soft delete by owner failed: affected=%d err=%v", affected, err)
	}

	got, err := repo.GetByIDAndUser(address.ID, owner.ID)
	if err != nil {
		t.Fatalf("get deleted address failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted address should not be readable")
	}
	list, err := repo.ListByUser(AddressListFilter{UserID: owner.ID})
	if err != nil {
		t.Fatalf("list addresses failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("deleted address should not be listed, got %d", len(list))
	}

	affected, err = repo.SoftDelete(address.ID, owner.ID)
	if err != nil || affected != 0 {
		t.Fatalf("second delete should affect nothing: affected=%d err=%v", affected, err)
	}
}
