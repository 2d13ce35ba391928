package service

import "errors"

var (
	// ErrNotFound 资源不存在
	ErrNotFound = errors.New("resource not found")
	// ErrSlugExists slug 已被占用
	ErrSlugExists = errors.New("slug already exists")
	// ErrProductTitleRequired 商品标题缺失
	ErrProductTitleRequired = errors.New("product title required")
	// ErrProductPriceInvalid 变体价格非法
	ErrProductPriceInvalid = errors.New("variant price invalid")
	// ErrOptionAlignmentInvalid 变体选项值与选项组数量不对齐
	ErrOptionAlignmentInvalid = errors.New("variant option values misaligned with option groups")
	// ErrDuplicateOptionTuple 变体选项元组重复
	ErrDuplicateOptionTuple = errors.New("duplicate variant option tuple")
)
