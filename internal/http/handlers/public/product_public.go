package public

import (
	"strconv"

	"github.com/showcase-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取公开商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	search := c.Query("search")

	products, total, err := h.ProductService.List(search, true, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetProductShowcase 获取商品展示文档（页面初始化一次性内嵌的变体与媒体数据）
func (h *Handler) GetProductShowcase(c *gin.Context) {
	slug := c.Param("slug")
	doc, err := h.ShowcaseService.DocumentBySlug(slug)
	if err != nil {
		respondWithMappedError(c, err, showcaseErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, doc)
}
