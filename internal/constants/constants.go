package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusInTransit = "in_transit"
	OrderStatusDelivered = "delivered"
	OrderStatusException = "exception"
)

// OrderStatusUnknownText 未映射状态的展示文本
const OrderStatusUnknownText = "未知"

var orderStatusTexts = map[string]string{
	OrderStatusPending:   "待取件",
	OrderStatusInTransit: "运输中",
	OrderStatusDelivered: "已签收",
	OrderStatusException: "异常",
}

// OrderStatusText 返回订单状态的展示文本
func OrderStatusText(status string) string {
	if text, ok := orderStatusTexts[status]; ok {
		return text
	}
	return OrderStatusUnknownText
}

// IsValidOrderStatus 判断是否为合法订单状态
func IsValidOrderStatus(status string) bool {
	_, ok := orderStatusTexts[status]
	return ok
}

// 地址类型常量
const (
	AddressTypeSender   = "sender"
	AddressTypeReceiver = "receiver"
)

// IsValidAddressType 判断是否为合法地址类型
func IsValidAddressType(addressType string) bool {
	return addressType == AddressTypeSender || addressType == AddressTypeReceiver
}

// 初始物流节点
const (
	SeedNodeStatus      = "待取件"
	SeedNodeDescription = "快递员已接单，等待上门取件"
)

// CourierPrefix 快递公司名称关键字到单号前缀的映射
type CourierPrefix struct {
	Keyword string
	Prefix  string
}

// 按顺序匹配，第一个命中的关键字生效
var courierPrefixes = []CourierPrefix{
	{Keyword: "顺丰", Prefix: "SF"},
	{Keyword: "圆通", Prefix: "YT"},
	{Keyword: "中通", Prefix: "ZTO"},
	{Keyword: "韵达", Prefix: "YD"},
	{Keyword: "申通", Prefix: "STO"},
}

// TrackingPrefixFallback 未匹配任何快递公司时使用的前缀
const TrackingPrefixFallback = "EX"

// CourierPrefixes 返回前缀表副本
func CourierPrefixes() []CourierPrefix {
	out := make([]CourierPrefix, len(courierPrefixes))
	copy(out, courierPrefixes)
	return out
}

// 请求上下文 key
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserPhone = "user_phone"
)
