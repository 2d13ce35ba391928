package models

import (
	"time"

	"gorm.io/gorm"
)

// Variant 商品变体表（options 与选项组按 Position 位置对齐，加载后只读）
type Variant struct {
	ID                  uint           `gorm:"primarykey" json:"id"`                                      // 主键
	ProductID           uint           `gorm:"not null;index" json:"product_id"`                          // 商品ID
	OptionValues        StringArray    `gorm:"type:json;not null" json:"option_values"`                   // 选项值元组（每组一个，按位置对齐）
	Available           bool           `gorm:"default:true;index" json:"available"`                       // 是否可售
	PriceAmount         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 价格
	SKU                 string         `gorm:"type:varchar(64)" json:"sku"`                               // SKU 编码（可为空）
	Barcode             string         `gorm:"type:varchar(64)" json:"barcode"`                           // 条码（可为空）
	InventoryManagement string         `gorm:"type:varchar(20)" json:"inventory_management"`              // 库存管理方式（空为不跟踪）
	InventoryQuantity   int            `gorm:"not null;default:0" json:"inventory_quantity"`              // 库存数量（仅跟踪时有意义）
	FeaturedMediaID     *int64         `gorm:"index" json:"featured_media_id,omitempty"`                  // 主图媒体 ID（外部编号，可为空）
	CreatedAt           time.Time      `json:"created_at"`                                                // 创建时间
	UpdatedAt           time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间
}

// TableName 指定表名
func (Variant) TableName() string {
	return "variants"
}

// InventoryTracked 库存是否受跟踪（管理方式为空即不跟踪）
func (v Variant) InventoryTracked() bool {
	return v.InventoryManagement != ""
}
