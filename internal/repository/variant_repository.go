package repository

import (
	"errors"

	"github.com/showcase-next/internal/models"

	"gorm.io/gorm"
)

// VariantRepository 变体数据访问接口
type VariantRepository interface {
	ListByProduct(productID uint) ([]models.Variant, error)
	GetByID(id string) (*models.Variant, error)
	ReplaceForProduct(productID uint, variants []models.Variant) error
}

// GormVariantRepository GORM 实现
type GormVariantRepository struct {
	db *gorm.DB
}

// NewVariantRepository 创建变体仓库
func NewVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// ListByProduct 商品下的变体列表
func (r *GormVariantRepository) ListByProduct(productID uint) ([]models.Variant, error) {
	var variants []models.Variant
	if err := r.db.Where("product_id = ?", productID).Order("id ASC").Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// GetByID 根据 ID 获取变体
func (r *GormVariantRepository) GetByID(id string) (*models.Variant, error) {
	var variant models.Variant
	if err := r.db.First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// ReplaceForProduct 整体替换商品下的变体列表
func (r *GormVariantRepository) ReplaceForProduct(productID uint, variants []models.Variant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("product_id = ?", productID).Delete(&models.Variant{}).Error; err != nil {
			return err
		}
		for i := range variants {
			variants[i].ProductID = productID
		}
		if len(variants) == 0 {
			return nil
		}
		return tx.Create(&variants).Error
	})
}
