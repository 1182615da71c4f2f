package service

import (
	"math"
	"time"

	"github.com/send-logistics/internal/constants"
	"github.com/send-logistics/internal/models"
)

// LoginResult 登录结果
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// AddressView 地址展示结构
type AddressView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Province    string    `json:"province"`
	City        string    `json:"city"`
	District    string    `json:"district"`
	Detail      string    `json:"detail"`
	FullAddress string    `json:"fullAddress"`
	Tag         string    `json:"tag"`
	IsDefault   bool      `json:"isDefault"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newAddressView(address *models.Address) *AddressView {
	return &AddressView{
		ID:          address.ID,
		Name:        address.Name,
		Phone:       address.Phone,
		Province:    address.Province,
		City:        address.City,
		District:    address.District,
		Detail:      address.Detail,
		FullAddress: address.FullAddress(),
		Tag:         address.Tag,
		IsDefault:   address.IsDefault,
		Type:        address.Type,
		CreatedAt:   address.CreatedAt,
	}
}

// OrderView 订单展示结构
type OrderView struct {
	ID              uint                   `json:"id"`
	TrackingNumber  string                 `json:"trackingNumber"`
	CourierCompany  string                 `json:"courierCompany"`
	CourierLogo     string                 `json:"courierLogo"`
	Status          string                 `json:"status"`
	StatusText      string                 `json:"statusText"`
	ItemName        string                 `json:"itemName"`
	SenderName      string                 `json:"senderName"`
	SenderPhone     string                 `json:"senderPhone"`
	SenderAddress   string                 `json:"senderAddress"`
	ReceiverName    string                 `json:"receiverName"`
	ReceiverPhone   string                 `json:"receiverPhone"`
	ReceiverAddress string                 `json:"receiverAddress"`
	EstimatedTime   string                 `json:"estimatedTime"`
	CreatedAt       time.Time              `json:"createdAt"`
	LogisticsNodes  []models.LogisticsNode `json:"logisticsNodes,omitempty"`
}

func newOrderView(order *models.Order, nodes []models.LogisticsNode) *OrderView {
	return &OrderView{
		ID:              order.ID,
		TrackingNumber:  order.TrackingNumber,
		CourierCompany:  order.CourierCompany,
		CourierLogo:     order.CourierLogo,
		Status:          order.Status,
		StatusText:      constants.OrderStatusText(order.Status),
		ItemName:        order.ItemName,
		SenderName:      order.SenderName,
		SenderPhone:     order.SenderPhone,
		SenderAddress:   order.SenderAddress,
		ReceiverName:    order.ReceiverName,
		ReceiverPhone:   order.ReceiverPhone,
		ReceiverAddress: order.ReceiverAddress,
		EstimatedTime:   order.EstimatedTime,
		CreatedAt:       order.CreatedAt,
		LogisticsNodes:  nodes,
	}
}

// TrackingView 物流追踪信息
type TrackingView struct {
	OrderID        uint                   `json:"orderId"`
	TrackingNumber string                 `json:"trackingNumber"`
	CourierCompany string                 `json:"courierCompany"`
	CourierLogo    string                 `json:"courierLogo"`
	Status         string                 `json:"status"`
	StatusText     string                 `json:"statusText"`
	Nodes          []models.LogisticsNode `json:"nodes"`
}

// PageResult 分页结果
type PageResult[T any] struct {
	List       []T   `json:"list"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

func newPageResult[T any](list []T, total int64, page, pageSize int) *PageResult[T] {
	if list == nil {
		list = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}
	return &PageResult[T]{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
