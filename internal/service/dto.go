package service

// LoginInput 登录参数
type LoginInput struct {
	Phone    string `json:"phone" label:"手机号" validate:"required"`
	Password string `json:"password" label:"密码" validate:"required"`
}

// Validate 校验登录参数
func (in LoginInput) Validate() error {
	return validateStruct(in)
}

// RegisterInput 注册参数，密码长度由密码策略单独校验
type RegisterInput struct {
	Username string `json:"username" label:"用户名" validate:"required,min=2,max=20"`
	Phone    string `json:"phone" label:"手机号" validate:"required,cnphone"`
	Password string `json:"password" label:"密码" validate:"required"`
}

// Validate 校验注册参数
func (in RegisterInput) Validate() error {
	return validateStruct(in)
}

// UpdateProfileInput 更新资料参数，nil 字段保持不变
type UpdateProfileInput struct {
	Username *string `json:"username" label:"用户名" validate:"omitempty,min=2,max=20"`
	Avatar   *string `json:"avatar" label:"头像" validate:"omitempty,max=255"`
}

// Validate 校验资料参数
func (in UpdateProfileInput) Validate() error {
	return validateStruct(in)
}

// AddressInput 新增/编辑地址参数
type AddressInput struct {
	Name      string `json:"name" label:"联系人姓名" validate:"required,max=50"`
	Phone     string `json:"phone" label:"联系电话" validate:"required,cnphone"`
	Province  string `json:"province" label:"省份" validate:"required,max=50"`
	City      string `json:"city" label:"城市" validate:"required,max=50"`
	District  string `json:"district" label:"区县" validate:"required,max=50"`
	Detail    string `json:"detail" label:"详细地址" validate:"required,max=255"`
	Tag       string `json:"tag" label:"地址标签" validate:"max=20"`
	IsDefault bool   `json:"isDefault"`
	Type      string `json:"type" label:"地址类型" validate:"required,addrtype"`
}

// Validate 校验地址参数
func (in AddressInput) Validate() error {
	return validateStruct(in)
}

// CreateOrderInput 创建订单参数
type CreateOrderInput struct {
	CourierCompany  string `json:"courierCompany" label:"快递公司" validate:"required,max=50"`
	CourierLogo     string `json:"courierLogo" label:"快递公司Logo" validate:"max=255"`
	ItemName        string `json:"itemName" label:"物品名称" validate:"max=100"`
	SenderName      string `json:"senderName" label:"寄件人姓名" validate:"required,max=50"`
	SenderPhone     string `json:"senderPhone" label:"寄件人电话" validate:"required,cnphone"`
	SenderAddress   string `json:"senderAddress" label:"寄件人地址" validate:"required,max=255"`
	ReceiverName    string `json:"receiverName" label:"收件人姓名" validate:"required,max=50"`
	ReceiverPhone   string `json:"receiverPhone" label:"收件人电话" validate:"required,cnphone"`
	ReceiverAddress string `json:"receiverAddress" label:"收件人地址" validate:"required,max=255"`
	EstimatedTime   string `json:"estimatedTime" label:"预计送达时间" validate:"max=50"`
}

// Validate 校验订单参数
func (in CreateOrderInput) Validate() error {
	return validateStruct(in)
}

// OrderQueryInput 订单列表查询参数
type OrderQueryInput struct {
	Page     int    `form:"page" json:"page"`
	PageSize int    `form:"pageSize" json:"pageSize"`
	Status   string `form:"status" json:"status" label:"订单状态" validate:"omitempty,orderstatus"`
	Keyword  string `form:"keyword" json:"keyword"`
}

// Validate 校验查询参数
func (in OrderQueryInput) Validate() error {
	return validateStruct(in)
}

// OrderStatusInput 更新订单状态参数
type OrderStatusInput struct {
	Status string `json:"status" label:"订单状态" validate:"required,orderstatus"`
}

// Validate 校验状态参数
func (in OrderStatusInput) Validate() error {
	return validateStruct(in)
}

// AddNodeInput 追加物流节点参数，IsActive 缺省为 true
type AddNodeInput struct {
	OrderID     uint   `json:"orderId" label:"订单ID" validate:"required"`
	Time        string `json:"time"` // RFC3339 或 2006-01-02T15:04:05，缺省为当前时间
	Location    string `json:"location" label:"当前位置" validate:"max=100"`
	Status      string `json:"status" label:"物流状态" validate:"required,max=50"`
	Description string `json:"description" label:"物流描述" validate:"max=255"`
	IsActive    *bool  `json:"isActive"`
}

// Validate 校验节点参数
func (in AddNodeInput) Validate() error {
	return validateStruct(in)
}

func (in AddNodeInput) active() bool {
	return in.IsActive == nil || *in.IsActive
}
