package models

import "time"

// User 用户表
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                               // 主键
	Username     string    `gorm:"type:varchar(50);not null" json:"username"`          // 用户名
	Phone        string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"` // 手机号
	PasswordHash string    `gorm:"not null" json:"-"`                                  // 密码哈希（不返回给前端）
	Avatar       string    `gorm:"type:varchar(255);default:''" json:"avatar"`         // 头像
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`                             // 创建时间
	UpdatedAt    time.Time `json:"updatedAt"`                                          // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
