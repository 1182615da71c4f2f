package public

import (
	"github.com/send-logistics/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetAreaData 省市区数据代理
func (h *Handler) GetAreaData(c *gin.Context) {
	data, err := h.AreaService.Fetch(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, data)
}
