package public

import (
	"github.com/send-logistics/internal/http/response"
	"github.com/send-logistics/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrder 创建寄件订单
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req service.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, response.MsgBadRequest, nil)
		return
	}
	order, err := h.OrderService.Create(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var query service.OrderQueryInput
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, response.MsgBadRequest, nil)
		return
	}
	result, err := h.OrderService.List(userID, query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatus 更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.OrderStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, response.MsgBadRequest, nil)
		return
	}
	order, err := h.OrderService.UpdateStatus(id, userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// DeleteOrder 删除订单
func (h *Handler) DeleteOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.OrderService.Delete(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetOrderByTrackingNumber 按快递单号查询（无需登录）
func (h *Handler) GetOrderByTrackingNumber(c *gin.Context) {
	order, err := h.OrderService.GetByTrackingNumber(c.Param("trackingNumber"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}
