package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`              // 主键
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`  // 唯一标识
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`      // 商品描述
	Images      StringArray    `gorm:"type:json" json:"images"`           // 图片数组
	IsActive    bool           `gorm:"default:true;index" json:"is_active"` // 是否上架
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"` // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                        // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间

	// 关联
	Options  []ProductOption `gorm:"foreignKey:ProductID" json:"options,omitempty"`  // 选项组列表
	Variants []Variant       `gorm:"foreignKey:ProductID" json:"variants,omitempty"` // 变体列表
	Media    []MediaItem     `gorm:"foreignKey:ProductID" json:"media,omitempty"`    // 媒体列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// ProductOption 商品选项组表（如 Color / Size，Position 为变体选项元组的对齐索引）
type ProductOption struct {
	ID        uint        `gorm:"primarykey" json:"id"`                               // 主键
	ProductID uint        `gorm:"not null;index" json:"product_id"`                   // 商品ID
	Name      string      `gorm:"type:varchar(100);not null" json:"name"`             // 选项组名称
	Position  int         `gorm:"not null;default:0;index" json:"position"`           // 选项组位置（0 起）
	Values    StringArray `gorm:"type:json;not null" json:"values"`                   // 可选值列表
	CreatedAt time.Time   `json:"created_at"`                                         // 创建时间
	UpdatedAt time.Time   `json:"updated_at"`                                         // 更新时间
}

// TableName 指定表名
func (ProductOption) TableName() string {
	return "product_options"
}
