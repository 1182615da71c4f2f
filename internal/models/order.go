package models

import "time"

// Order 寄件订单表
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                        // 主键
	TrackingNumber  string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"trackingNumber"` // 快递单号
	CourierCompany  string    `gorm:"type:varchar(50);not null" json:"courierCompany"`             // 快递公司
	CourierLogo     string    `gorm:"type:varchar(255);default:''" json:"courierLogo"`             // 快递公司 Logo
	Status          string    `gorm:"type:varchar(20);index;not null" json:"status"`               // 订单状态
	ItemName        string    `gorm:"type:varchar(100);default:''" json:"itemName"`                // 物品名称
	SenderName      string    `gorm:"type:varchar(50);not null" json:"senderName"`
	SenderPhone     string    `gorm:"type:varchar(20);not null" json:"senderPhone"`
	SenderAddress   string    `gorm:"type:varchar(255);not null" json:"senderAddress"`
	ReceiverName    string    `gorm:"type:varchar(50);not null" json:"receiverName"`
	ReceiverPhone   string    `gorm:"type:varchar(20);not null" json:"receiverPhone"`
	ReceiverAddress string    `gorm:"type:varchar(255);not null" json:"receiverAddress"`
	EstimatedTime   string    `gorm:"type:varchar(50);default:''" json:"estimatedTime"` // 预计送达时间（文本）
	UserID          uint      `gorm:"index;not null" json:"-"`                          // 所属用户
	Deleted         bool      `gorm:"index;not null;default:false" json:"-"`            // 软删除标记
	CreatedAt       time.Time `gorm:"index" json:"createdAt"`                           // 创建时间
	UpdatedAt       time.Time `json:"updatedAt"`                                        // 更新时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
