package admin

import (
	"errors"
	"strconv"

	"github.com/showcase-next/internal/http/response"
	"github.com/showcase-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductOptionRequest 选项组请求体
type ProductOptionRequest struct {
	Name   string   `json:"name" binding:"required"`
	Values []string `json:"values" binding:"required"`
}

// ProductVariantRequest 变体请求体
type ProductVariantRequest struct {
	OptionValues        []string `json:"option_values"`
	Available           bool     `json:"available"`
	Price               string   `json:"price" binding:"required"`
	SKU                 string   `json:"sku"`
	Barcode             string   `json:"barcode"`
	InventoryManagement string   `json:"inventory_management"`
	InventoryQuantity   int      `json:"inventory_quantity"`
	FeaturedMediaID     *int64   `json:"featured_media_id"`
}

// ProductMediaRequest 媒体请求体
type ProductMediaRequest struct {
	MediaID    int64   `json:"media_id" binding:"required"`
	Position   int     `json:"position"`
	Src        string  `json:"src" binding:"required"`
	Alt        string  `json:"alt"`
	VariantIDs []int64 `json:"variant_ids"`
}

// ProductUpsertRequest 商品创建/更新请求
type ProductUpsertRequest struct {
	Slug        string                  `json:"slug" binding:"required"`
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	Images      []string                `json:"images"`
	IsActive    *bool                   `json:"is_active"`
	SortOrder   int                     `json:"sort_order"`
	Options     []ProductOptionRequest  `json:"options"`
	Variants    []ProductVariantRequest `json:"variants"`
	Media       []ProductMediaRequest   `json:"media"`
}

func (r ProductUpsertRequest) toInput() (service.SaveProductInput, error) {
	input := service.SaveProductInput{
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Images:      r.Images,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
	for _, option := range r.Options {
		input.Options = append(input.Options, service.OptionInput{
			Name:   option.Name,
			Values: option.Values,
		})
	}
	for _, variant := range r.Variants {
		price, err := decimal.NewFromString(variant.Price)
		if err != nil {
			return service.SaveProductInput{}, err
		}
		input.Variants = append(input.Variants, service.VariantInput{
			OptionValues:        variant.OptionValues,
			Available:           variant.Available,
			Price:               price,
			SKU:                 variant.SKU,
			Barcode:             variant.Barcode,
			InventoryManagement: variant.InventoryManagement,
			InventoryQuantity:   variant.InventoryQuantity,
			FeaturedMediaID:     variant.FeaturedMediaID,
		})
	}
	for _, media := range r.Media {
		input.Media = append(input.Media, service.MediaInput{
			MediaID:    media.MediaID,
			Position:   media.Position,
			Src:        media.Src,
			Alt:        media.Alt,
			VariantIDs: media.VariantIDs,
		})
	}
	return input, nil
}

// GetAdminProducts 获取后台商品列表
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	search := c.Query("search")

	products, total, err := h.ProductService.List(search, false, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetAdminProduct 获取后台商品详情
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id := c.Param("id")
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.product_price_invalid", err)
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		respondSaveError(c, err, "error.product_create_failed")
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品（选项/变体/媒体整体替换）
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.product_price_invalid", err)
		return
	}

	product, err := h.ProductService.Update(id, input)
	if err != nil {
		respondSaveError(c, err, "error.product_update_failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_delete_failed", err)
		return
	}

	response.Success(c, gin.H{
		"deleted": true,
	})
}

func respondSaveError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.product_slug_exists", nil)
	case errors.Is(err, service.ErrProductTitleRequired):
		respondError(c, response.CodeBadRequest, "error.product_title_required", nil)
	case errors.Is(err, service.ErrProductPriceInvalid):
		respondError(c, response.CodeBadRequest, "error.product_price_invalid", nil)
	case errors.Is(err, service.ErrOptionAlignmentInvalid):
		respondError(c, response.CodeBadRequest, "error.product_option_alignment_invalid", nil)
	case errors.Is(err, service.ErrDuplicateOptionTuple):
		respondError(c, response.CodeBadRequest, "error.product_option_tuple_duplicate", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}
