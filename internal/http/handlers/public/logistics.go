package public

import (
	"github.com/send-logistics/internal/http/response"
	"github.com/send-logistics/internal/service"

	"github.com/gin-gonic/gin"
)

// GetTrackingInfo 物流追踪信息（无需登录）
func (h *Handler) GetTrackingInfo(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	info, err := h.LogisticsService.GetTrackingInfo(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, info)
}

// AddLogisticsNode 追加物流节点
func (h *Handler) AddLogisticsNode(c *gin.Context) {
	var req service.AddNodeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, response.MsgBadRequest, nil)
		return
	}
	node, err := h.LogisticsService.AddNode(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, node)
}
