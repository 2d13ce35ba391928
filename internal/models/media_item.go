package models

import (
	"time"

	"gorm.io/gorm"
)

// MediaItem 商品媒体表（MediaID 为对外编号，与 section id 组成复合键定位图库元素）
type MediaItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`                       // 主键
	ProductID  uint           `gorm:"not null;index" json:"product_id"`           // 商品ID
	MediaID    int64          `gorm:"not null;index" json:"media_id"`             // 媒体对外编号
	Position   int            `gorm:"not null;default:1;index" json:"position"`   // 位置（1 起，用于计数器展示）
	Src        string         `gorm:"type:varchar(500);not null" json:"src"`      // 图片地址
	Alt        string         `gorm:"type:varchar(255)" json:"alt"`               // 替代文本
	VariantIDs Int64Array     `gorm:"type:json" json:"variant_ids"`               // 关联的变体 ID 列表
	CreatedAt  time.Time      `json:"created_at"`                                 // 创建时间
	UpdatedAt  time.Time      `json:"updated_at"`                                 // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                             // 软删除时间
}

// TableName 指定表名
func (MediaItem) TableName() string {
	return "media_items"
}
