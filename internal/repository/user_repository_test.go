package repository

import (
	"testing"
	"time"

	"github.com/send-logistics/internal/models"
)

func TestUserRepositoryGetByPhone(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)
	created := createTestUser(t, db, "13800138000")

	got, err := repo.GetByPhone("13800138000")
	if err != nil {
		t.Fatalf("get by phone failed: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("expected user %d, got %+v", created.ID, got)
	}

	missing, err := repo.GetByPhone("13900139000")
	if err != nil {
		t.Fatalf("get missing phone failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing phone, got %+v", missing)
	}
}

func TestUserRepositoryCreateDuplicatePhone(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, "13800138000")

	now := time.Now()
	err := repo.Create(&models.User{
		Username:     "重复",
		Phone:        "13800138000",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err == nil {
		t.Fatalf("expected unique violation on duplicate phone")
	}
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}

func TestUserRepositoryLockByIDMissingUser(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)
	if err := repo.LockByID(999); err != nil {
		t.Fatalf("lock missing user should be a no-op, got %v", err)
	}
}
