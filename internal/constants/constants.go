package constants

const (
	// InventoryManagementTracked 库存受平台跟踪的管理方式标识（主题数据沿用 shopify 取值）
	InventoryManagementTracked = "shopify"

	// DefaultLowStockThreshold 低库存提示阈值（含边界，quantity <= threshold 视为低库存）
	DefaultLowStockThreshold = 10

	// PriceFragmentIDPrefix 价格片段元素 ID 前缀（片段内元素 id 为 price-<sectionId>）
	PriceFragmentIDPrefix = "price-"

	// VariantQueryParam 地址栏中携带变体 ID 的查询参数名
	VariantQueryParam = "variant"

	// SectionQueryParam 商品信息片段接口的 section 查询参数名
	SectionQueryParam = "section_id"
)

const (
	// EventOptionValueSelectionChange 外部变体选择器发布的选中变更事件
	EventOptionValueSelectionChange = "option_value_selection_change"
)
