package models

import (
	"errors"
	"strings"
	"time"

	"github.com/send-logistics/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDemoUser 按环境变量初始化演示账号；手机号已存在时跳过。
func InitDemoUser(phone, password, username string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil
	}

	var existing User
	err := DB.Where("phone = ?", phone).Take(&existing).Error
	if err == nil {
		logger.Debugw("demo_user_exists", "user_id", existing.ID)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if strings.TrimSpace(username) == "" {
		username = "演示用户"
	}
	now := time.Now()
	user := User{
		Username:     username,
		Phone:        phone,
		PasswordHash: string(hash),
		Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=" + phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := DB.Create(&user).Error; err != nil {
		return err
	}
	logger.Warnw("demo_user_created", "user_id", user.ID, "password_hidden", true)
	return nil
}
