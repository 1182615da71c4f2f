package public

import (
	"github.com/send-logistics/internal/http/response"
	"github.com/send-logistics/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAddresses 地址列表
func (h *Handler) ListAddresses(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	addresses, err := h.AddressService.List(userID, c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, addresses)
}

// GetAddress 地址详情
func (h *Handler) GetAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	address, err := h.AddressService.Get(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, address)
}

// CreateAddress 新增地址
func (h *Handler) CreateAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req service.AddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, response.MsgBadRequest, nil)
		return
	}
	address, err := h.AddressService.Create(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, address)
}

// UpdateAddress 编辑地址
func (h *Handler) UpdateAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.AddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, response.MsgBadRequest, nil)
		return
	}
	address, err := h.AddressService.Update(id, userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, address)
}

// DeleteAddress 删除地址
func (h *Handler) DeleteAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AddressService.Delete(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// SetDefaultAddress 设为默认地址
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AddressService.SetDefault(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
