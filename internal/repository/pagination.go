package repository

import "gorm.io/gorm"

// maxPageSize 单页上限，调用方未做归一化时兜底
const maxPageSize = 100

// applyPagination 追加 LIMIT/OFFSET；pageSize 非正时返回全部结果
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
