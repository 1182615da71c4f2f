package models

import "time"

// Address 地址簿
// 同一用户同一类型下至多一条 IsDefault=true，由写事务维护，表上没有唯一约束。
type Address struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index:idx_addresses_owner;not null" json:"-"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`  // 联系人
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"` // 联系电话
	Province  string    `gorm:"type:varchar(50);not null" json:"province"`
	City      string    `gorm:"type:varchar(50);not null" json:"city"`
	District  string    `gorm:"type:varchar(50);not null" json:"district"`
	Detail    string    `gorm:"type:varchar(255);not null" json:"detail"`
	Tag       string    `gorm:"type:varchar(20);default:''" json:"tag"`                          // home / company / school
	Type      string    `gorm:"type:varchar(20);index:idx_addresses_owner;not null" json:"type"` // sender / receiver
	IsDefault bool      `gorm:"not null;default:false" json:"isDefault"`
	Deleted   bool      `gorm:"index;not null;default:false" json:"-"` // 软删除标记
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}

// FullAddress 拼接完整地址
func (a Address) FullAddress() string {
	return a.Province + a.City + a.District + a.Detail
}
