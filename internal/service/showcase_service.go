package service

import (
	"github.com/showcase-next/internal/catalog"
	"github.com/showcase-next/internal/models"
	"github.com/showcase-next/internal/repository"
)

// ShowcaseService 店面展示服务：构建页面内嵌的展示文档，支撑商品信息片段接口
type ShowcaseService struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewShowcaseService 创建展示服务
func NewShowcaseService(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
) *ShowcaseService {
	return &ShowcaseService{productRepo: productRepo, variantRepo: variantRepo}
}

// DocumentBySlug 按 slug 构建商品展示文档（每个页面视图加载一次）
func (s *ShowcaseService) DocumentBySlug(slug string) (*catalog.Document, error) {
	product, err := s.productRepo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return catalog.FromProduct(product), nil
}

// VariantByID 按 ID 获取变体（商品信息片段接口用）
func (s *ShowcaseService) VariantByID(id string) (*models.Variant, error) {
	variant, err := s.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrNotFound
	}
	return variant, nil
}
