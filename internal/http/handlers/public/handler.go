package public

import "github.com/send-logistics/internal/provider"

// Handler 用户侧与公开接口处理器
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
