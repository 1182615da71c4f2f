package repository

// AddressListFilter 查询地址列表的过滤条件
type AddressListFilter struct {
	UserID uint
	Type   string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
	Keyword  string
}
