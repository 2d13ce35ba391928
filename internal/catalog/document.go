package catalog

import (
	"github.com/showcase-next/internal/models"
)

// OptionGroupView 选项组视图（Position 即变体选项元组的对齐索引）
type OptionGroupView struct {
	Name     string   `json:"name"`
	Position int      `json:"position"`
	Values   []string `json:"values"`
}

// FeaturedMediaView 变体主图引用
type FeaturedMediaView struct {
	ID       int64 `json:"id"`
	Position int   `json:"position"`
}

// VariantView 变体视图（与主题页面内嵌 JSON 的字段对齐）
type VariantView struct {
	ID                  int64              `json:"id"`
	Options             []string           `json:"options"`
	Available           bool               `json:"available"`
	Price               models.Money       `json:"price"`
	SKU                 string             `json:"sku,omitempty"`
	Barcode             string             `json:"barcode,omitempty"`
	InventoryManagement string             `json:"inventory_management,omitempty"`
	InventoryQuantity   int                `json:"inventory_quantity"`
	FeaturedMedia       *FeaturedMediaView `json:"featured_media,omitempty"`
}

// InventoryTracked 库存是否受跟踪
func (v VariantView) InventoryTracked() bool {
	return v.InventoryManagement != ""
}

// MediaView 媒体视图（含变体关联，用于图库按变体切换）
type MediaView struct {
	ID         int64   `json:"id"`
	Position   int     `json:"position"`
	Src        string  `json:"src"`
	Alt        string  `json:"alt,omitempty"`
	VariantIDs []int64 `json:"variant_ids,omitempty"`
}

// Document 商品展示文档：页面初始化时一次性内嵌的变体与媒体数据
type Document struct {
	ProductID    uint              `json:"product_id"`
	Slug         string            `json:"slug"`
	Title        string            `json:"title"`
	OptionGroups []OptionGroupView `json:"option_groups"`
	Variants     []VariantView     `json:"variants"`
	Media        []MediaView       `json:"media"`
}

// VariantByID 根据变体 ID 查找
func (d *Document) VariantByID(id int64) *VariantView {
	if d == nil {
		return nil
	}
	for i := range d.Variants {
		if d.Variants[i].ID == id {
			return &d.Variants[i]
		}
	}
	return nil
}

// MediaByID 根据媒体对外编号查找
func (d *Document) MediaByID(id int64) *MediaView {
	if d == nil {
		return nil
	}
	for i := range d.Media {
		if d.Media[i].ID == id {
			return &d.Media[i]
		}
	}
	return nil
}

// MediaForVariant 查找与变体关联的首个媒体
func (d *Document) MediaForVariant(variantID int64) *MediaView {
	if d == nil {
		return nil
	}
	for i := range d.Media {
		for _, vid := range d.Media[i].VariantIDs {
			if vid == variantID {
				return &d.Media[i]
			}
		}
	}
	return nil
}

// FromProduct 由商品模型构建展示文档
func FromProduct(product *models.Product) *Document {
	if product == nil {
		return &Document{}
	}
	doc := &Document{
		ProductID: product.ID,
		Slug:      product.Slug,
		Title:     product.Title,
	}
	for _, option := range product.Options {
		doc.OptionGroups = append(doc.OptionGroups, OptionGroupView{
			Name:     option.Name,
			Position: option.Position,
			Values:   append([]string(nil), option.Values...),
		})
	}
	for _, variant := range product.Variants {
		view := VariantView{
			ID:                  int64(variant.ID),
			Options:             append([]string(nil), variant.OptionValues...),
			Available:           variant.Available,
			Price:               variant.PriceAmount,
			SKU:                 variant.SKU,
			Barcode:             variant.Barcode,
			InventoryManagement: variant.InventoryManagement,
			InventoryQuantity:   variant.InventoryQuantity,
		}
		if variant.FeaturedMediaID != nil {
			for _, media := range product.Media {
				if media.MediaID == *variant.FeaturedMediaID {
					view.FeaturedMedia = &FeaturedMediaView{ID: media.MediaID, Position: media.Position}
					break
				}
			}
		}
		doc.Variants = append(doc.Variants, view)
	}
	for _, media := range product.Media {
		doc.Media = append(doc.Media, MediaView{
			ID:         media.MediaID,
			Position:   media.Position,
			Src:        media.Src,
			Alt:        media.Alt,
			VariantIDs: append([]int64(nil), media.VariantIDs...),
		})
	}
	return doc
}
