package service

import (
	"strconv"
	"strings"

	"github.com/showcase-next/internal/models"
	"github.com/showcase-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品管理服务（后台模拟端：内存库存储，重启即清空，无真实后端契约）
type ProductService struct {
	repo        repository.ProductRepository
	variantRepo repository.VariantRepository
	mediaRepo   repository.MediaRepository
}

// NewProductService 创建商品服务
func NewProductService(
	repo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	mediaRepo repository.MediaRepository,
) *ProductService {
	return &ProductService{repo: repo, variantRepo: variantRepo, mediaRepo: mediaRepo}
}

// OptionInput 选项组输入
type OptionInput struct {
	Name   string
	Values []string
}

// VariantInput 变体输入
type VariantInput struct {
	OptionValues        []string
	Available           bool
	Price               decimal.Decimal
	SKU                 string
	Barcode             string
	InventoryManagement string
	InventoryQuantity   int
	FeaturedMediaID     *int64
}

// MediaInput 媒体输入
type MediaInput struct {
	MediaID    int64
	Position   int
	Src        string
	Alt        string
	VariantIDs []int64
}

// SaveProductInput 创建/更新商品输入
type SaveProductInput struct {
	Slug        string
	Title       string
	Description string
	Images      []string
	IsActive    *bool
	SortOrder   int
	Options     []OptionInput
	Variants    []VariantInput
	Media       []MediaInput
}

// List 商品列表
func (s *ProductService) List(search string, onlyActive bool, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     search,
		OnlyActive: onlyActive,
	}
	return s.repo.List(filter)
}

// GetByID 商品详情（含选项/变体/媒体）
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input SaveProductInput) (*models.Product, error) {
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}
	count, err := s.repo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	product := assembleProduct(input)
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return s.repo.GetByID(formatID(product.ID))
}

// Update 更新商品（选项/变体/媒体整体替换）
func (s *ProductService) Update(id string, input SaveProductInput) (*models.Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}
	count, err := s.repo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	next := assembleProduct(input)
	existing.Slug = next.Slug
	existing.Title = next.Title
	existing.Description = next.Description
	existing.Images = next.Images
	existing.IsActive = next.IsActive
	existing.SortOrder = next.SortOrder
	existing.Options = nil
	existing.Variants = nil
	existing.Media = nil
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceOptions(existing.ID, next.Options); err != nil {
		return nil, err
	}
	if err := s.variantRepo.ReplaceForProduct(existing.ID, next.Variants); err != nil {
		return nil, err
	}
	if err := s.mediaRepo.ReplaceForProduct(existing.ID, next.Media); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Delete 删除商品
func (s *ProductService) Delete(id string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func validateSaveInput(input SaveProductInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrProductTitleRequired
	}
	groupCount := len(input.Options)
	seen := make(map[string]struct{}, len(input.Variants))
	for _, variant := range input.Variants {
		if len(variant.OptionValues) != groupCount {
			return ErrOptionAlignmentInvalid
		}
		if variant.Price.IsNegative() {
			return ErrProductPriceInvalid
		}
		key := strings.Join(variant.OptionValues, "\x00")
		if _, dup := seen[key]; dup {
			return ErrDuplicateOptionTuple
		}
		seen[key] = struct{}{}
	}
	return nil
}

func assembleProduct(input SaveProductInput) *models.Product {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	product := &models.Product{
		Slug:        strings.TrimSpace(input.Slug),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Images:      input.Images,
		IsActive:    isActive,
		SortOrder:   input.SortOrder,
	}
	for position, option := range input.Options {
		product.Options = append(product.Options, models.ProductOption{
			Name:     option.Name,
			Position: position,
			Values:   option.Values,
		})
	}
	for _, variant := range input.Variants {
		product.Variants = append(product.Variants, models.Variant{
			OptionValues:        variant.OptionValues,
			Available:           variant.Available,
			PriceAmount:         models.NewMoneyFromDecimal(variant.Price),
			SKU:                 variant.SKU,
			Barcode:             variant.Barcode,
			InventoryManagement: variant.InventoryManagement,
			InventoryQuantity:   variant.InventoryQuantity,
			FeaturedMediaID:     variant.FeaturedMediaID,
		})
	}
	for _, media := range input.Media {
		position := media.Position
		if position <= 0 {
			position = len(product.Media) + 1
		}
		product.Media = append(product.Media, models.MediaItem{
			MediaID:    media.MediaID,
			Position:   position,
			Src:        media.Src,
			Alt:        media.Alt,
			VariantIDs: media.VariantIDs,
		})
	}
	return product
}
