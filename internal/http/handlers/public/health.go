package public

import (
	"context"
	"net/http"
	"time"

	"github.com/send-logistics/internal/models"

	"github.com/gin-gonic/gin"
)

// Health 就绪探针，检查数据库连通性
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := models.Ping(ctx, h.DB); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
