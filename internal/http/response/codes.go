package response

// 业务状态码，HTTP 状态恒为 200
const (
	CodeOK                = 200
	CodeBadRequest        = 400
	CodeUnauthorized      = 401
	CodeForbidden         = 403
	CodeNotFound          = 404
	CodeTooManyRequests   = 429
	CodeInternal          = 500
	CodeUserNotFound      = 1001
	CodeUserPasswordError = 1002
	CodeUserPhoneExists   = 1003
	CodeOrderNotFound     = 2001
	CodeAddressNotFound   = 3001
)

// 默认提示文本
const (
	MsgOK                = "操作成功"
	MsgInternal          = "操作失败"
	MsgUnauthorized      = "未授权，请先登录"
	MsgForbidden         = "没有权限访问"
	MsgNotFound          = "资源不存在"
	MsgBadRequest        = "请求参数错误"
	MsgTokenExpired      = "Token已过期"
	MsgTokenInvalid      = "Token无效"
	MsgUserNotFound      = "用户不存在"
	MsgUserPasswordError = "密码错误"
	MsgUserPhoneExists   = "手机号已存在"
	MsgOrderNotFound     = "订单不存在"
	MsgAddressNotFound   = "地址不存在"
	MsgTooManyRequests   = "请求过于频繁，请稍后再试"
)
