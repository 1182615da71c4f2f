package models

import "time"

// LogisticsNode 物流轨迹节点，只追加不修改
type LogisticsNode struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	OrderID        uint      `gorm:"index;not null" json:"orderId"`
	TrackingNumber string    `gorm:"type:varchar(32);index;not null" json:"trackingNumber"` // 冗余快递单号
	Time           time.Time `gorm:"column:event_time;index;not null" json:"time"`          // 事件时间
	Location       string    `gorm:"type:varchar(100);default:''" json:"location"`
	Status         string    `gorm:"type:varchar(50);not null" json:"status"` // 节点状态文本
	Description    string    `gorm:"type:varchar(255);default:''" json:"description"`
	IsActive       bool      `gorm:"not null;default:false" json:"isActive"` // 是否为当前节点，每个订单至多一条
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName 指定表名
func (LogisticsNode) TableName() string {
	return "logistics_nodes"
}
