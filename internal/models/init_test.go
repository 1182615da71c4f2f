package models

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func setupModelsTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:models_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	if err := InitDB("sqlite", dsn, "silent", DBPoolConfig{}); err != nil {
		t.Fatalf("init db failed: %v", err)
	}
	if err := AutoMigrate(); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		DB = nil
	})
}

func TestInitDemoUser(t *testing.T) {
	setupModelsTestDB(t)

	if err := InitDemoUser("", "secret", ""); err != nil {
		t.Fatalf("empty phone should be a no-op: %v", err)
	}
	if err := InitDemoUser("13800138000", "123456", ""); err != nil {
		t.Fatalf("init demo user failed: %v", err)
	}
	if err := InitDemoUser("13800138000", "654321", "other"); err != nil {
		t.Fatalf("second init should skip: %v", err)
	}

	var users []User
	if err := DB.Find(&users).Error; err != nil {
		t.Fatalf("load users failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("want 1 user got %d", len(users))
	}
	if users[0].Username != "演示用户" {
		t.Fatalf("default username want 演示用户 got %s", users[0].Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("123456")); err != nil {
		t.Fatalf("password hash should match the first password: %v", err)
	}
}

func TestPing(t *testing.T) {
	setupModelsTestDB(t)
	if err := Ping(context.Background(), DB); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if err := Ping(context.Background(), nil); err == nil {
		t.Fatalf("nil db should fail")
	}
}

func TestAddressFullAddress(t *testing.T) {
	addr := Address{Province: "广东省", City: "深圳市", District: "南山区", Detail: "科技园南路88号"}
	if got := addr.FullAddress(); got != "广东省深圳市南山区科技园南路88号" {
		t.Fatalf("unexpected full address: %s", got)
	}
}

func TestEnsureSQLiteDir(t *testing.T) {
	dir := t.TempDir()
	if err := ensureSQLiteDir(filepath.Join(dir, "nested", "logistics.db")); err != nil {
		t.Fatalf("ensure dir failed: %v", err)
	}
	if info, err := os.Stat(filepath.Join(dir, "nested")); err != nil || !info.IsDir() {
		t.Fatalf("nested dir should exist: %v", err)
	}
	if err := ensureSQLiteDir("file:memdb?mode=memory"); err != nil {
		t.Fatalf("memory dsn should be skipped: %v", err)
	}
}
