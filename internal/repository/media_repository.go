package repository

import (
	"errors"

	"github.com/showcase-next/internal/models"

	"gorm.io/gorm"
)

// MediaRepository 媒体数据访问接口
type MediaRepository interface {
	ListByProduct(productID uint) ([]models.MediaItem, error)
	GetByMediaID(productID uint, mediaID int64) (*models.MediaItem, error)
	ReplaceForProduct(productID uint, items []models.MediaItem) error
}

// GormMediaRepository GORM 实现
type GormMediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository 创建媒体仓库
func NewMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

// ListByProduct 商品下的媒体列表（按位置排序）
func (r *GormMediaRepository) ListByProduct(productID uint) ([]models.MediaItem, error) {
	var items []models.MediaItem
	if err := r.db.Where("product_id = ?", productID).Order("position ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByMediaID 根据商品和媒体对外编号获取媒体
func (r *GormMediaRepository) GetByMediaID(productID uint, mediaID int64) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.Where("product_id = ? AND media_id = ?", productID, mediaID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ReplaceForProduct 整体替换商品下的媒体列表
func (r *GormMediaRepository) ReplaceForProduct(productID uint, items []models.MediaItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("product_id = ?", productID).Delete(&models.MediaItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ProductID = productID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
