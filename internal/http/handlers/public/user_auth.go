package public

import (
	"github.com/send-logistics/internal/http/response"
	"github.com/send-logistics/internal/service"

	"github.com/gin-gonic/gin"
)

// Login 手机号密码登录
func (h *Handler) Login(c *gin.Context) {
	var req service.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, response.MsgBadRequest, nil)
		return
	}
	result, err := h.UserAuthService.Login(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, response.MsgBadRequest, nil)
		return
	}
	user, err := h.UserAuthService.Register(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, user)
}

// GetUserInfo 获取当前用户资料
func (h *Handler) GetUserInfo(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateUserInfo 更新当前用户资料
func (h *Handler) UpdateUserInfo(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req service.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, response.MsgBadRequest, nil)
		return
	}
	user, err := h.UserAuthService.UpdateProfile(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, user)
}
