package public

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/showcase-next/internal/catalog"
	"github.com/showcase-next/internal/config"
	"github.com/showcase-next/internal/constants"
	"github.com/showcase-next/internal/http/response"
	"github.com/showcase-next/internal/models"
	"github.com/showcase-next/internal/showcase"

	"github.com/gin-gonic/gin"
)

// 商品信息片段模板。price-<sectionId> 元素标识是与客户端价格面约定的硬契约，
// 提取方按该 id 取子片段原样替换。
const productInfoTemplate = `<div class="product-info" data-section="{{.SectionID}}">
  <div id="price-{{.SectionID}}" class="price">
    <span class="price-item price-item--regular">{{.Price}}</span>
  </div>
  <p id="Sku-{{.SectionID}}" class="product__sku{{if not .SKU}} visibility-hidden{{end}}">{{.SKU}}</p>
  <p id="Inventory-{{.SectionID}}" class="product__inventory{{if .InventoryHidden}} visibility-hidden{{end}}" data-state="{{.InventoryState}}">{{.InventoryLabel}}</p>
</div>
`

var productInfoTmpl = template.Must(template.New("product_info").Parse(productInfoTemplate))

type productInfoView struct {
	SectionID       string
	Price           string
	SKU             string
	InventoryHidden bool
	InventoryState  showcase.InventoryState
	InventoryLabel  string
}

// GetProductInfo 渲染商品信息 HTML 片段（价格面回源的服务端）
func (h *Handler) GetProductInfo(c *gin.Context) {
	variantID := strings.TrimSpace(c.Query(constants.VariantQueryParam))
	sectionID := strings.TrimSpace(c.Query(constants.SectionQueryParam))
	if variantID == "" || sectionID == "" {
		response.BadRequest(c, "error.product_info_params_invalid")
		return
	}

	variant, err := h.ShowcaseService.VariantByID(variantID)
	if err != nil {
		respondWithMappedError(c, err, showcaseErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}

	view := buildProductInfoView(sectionID, variant, h.Config.Storefront.Inventory)
	var buf bytes.Buffer
	if err := productInfoTmpl.Execute(&buf, view); err != nil {
		respondError(c, response.CodeInternal, "error.product_info_render_failed", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func buildProductInfoView(sectionID string, variant *models.Variant, cfg config.InventoryConfig) productInfoView {
	view := catalog.VariantView{
		ID:                  int64(variant.ID),
		Available:           variant.Available,
		Price:               variant.PriceAmount,
		SKU:                 variant.SKU,
		Barcode:             variant.Barcode,
		InventoryManagement: variant.InventoryManagement,
		InventoryQuantity:   variant.InventoryQuantity,
	}
	state, label := showcase.ResolveInventory(&view, cfg)
	return productInfoView{
		SectionID:       sectionID,
		Price:           variant.PriceAmount.String(),
		SKU:             variant.SKU,
		InventoryHidden: state == showcase.InventoryHidden,
		InventoryState:  state,
		InventoryLabel:  label,
	}
}
