package showcase

import (
	"context"
	"strconv"
	"strings"

	"github.com/showcase-next/internal/catalog"
	"github.com/showcase-next/internal/config"
	"github.com/showcase-next/internal/logger"

	"go.uber.org/zap"
)

// InventoryState 库存提示的三态展示
type InventoryState string

const (
	InventoryHidden     InventoryState = "hidden"       // 不跟踪库存，隐藏
	InventoryInStock    InventoryState = "in_stock"     // 跟踪且充足
	InventoryLowStock   InventoryState = "low_stock"    // 跟踪且低于阈值（含边界）
	InventoryOutOfStock InventoryState = "out_of_stock" // 跟踪且为零
)

// PriceSource 价格片段来源：按变体 ID 与 section 标识抓取最新价格 HTML
type PriceSource interface {
	FetchPriceFragment(ctx context.Context, variantID int64, sectionID string) (string, error)
}

// PriceSink 价格面接收端
type PriceSink interface {
	SetPriceHTML(html string)
}

// SKUSink SKU/条码面接收端（有则展示，无则隐藏）
type SKUSink interface {
	ShowSKU(sku, barcode string)
	HideSKU()
}

// InventorySink 库存面接收端
type InventorySink interface {
	ShowInventory(state InventoryState, label string)
	HideInventory()
}

// MediaSink 图库面接收端（按媒体对外编号切换主图/缩略图）
type MediaSink interface {
	ActivateMedia(mediaID int64, position int) bool
}

// URLSink 地址面接收端
type URLSink interface {
	SetVariantParam(variantID int64)
}

// ProjectorOptions 投影器装配选项。任一接收端为 nil 时该面静默跳过，绝不整体失败。
type ProjectorOptions struct {
	SectionID   string
	Inventory   config.InventoryConfig
	PriceSource PriceSource
	Price       PriceSink
	SKU         SKUSink
	InventorySk InventorySink
	Media       MediaSink
	URL         URLSink
	Logger      *zap.SugaredLogger

	// PriceFetchDone 价格异步抓取完成回调（可选，便于观测与测试）
	PriceFetchDone func(err error)
}

// Projector 选择投影器：把解析出的变体应用到各依赖面。
// 幂等——相同变体 ID 重复应用由身份比较短路；各面更新彼此独立且顺序无关，
// 任一面失败不阻断其余面；价格抓取异步脱离主链路，后到者覆盖先到者。
type Projector struct {
	opts             ProjectorOptions
	currentVariantID int64
}

// NewProjector 创建投影器
func NewProjector(opts ProjectorOptions) *Projector {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.Inventory.LowStockThreshold <= 0 {
		opts.Inventory.LowStockThreshold = 10
	}
	return &Projector{opts: opts}
}

// CurrentVariantID 当前已应用的变体 ID（0 表示尚未应用）
func (p *Projector) CurrentVariantID() int64 {
	return p.currentVariantID
}

// Apply 应用变体到全部依赖面。变体为 nil 或与当前已应用变体同 ID 时不做任何事，
// 返回是否发生了实际应用。
func (p *Projector) Apply(ctx context.Context, variant *catalog.VariantView) bool {
	if variant == nil {
		return false
	}
	if p.currentVariantID == variant.ID {
		return false
	}
	p.currentVariantID = variant.ID

	// 同步面：SKU、库存、图库、地址；顺序无关，缺失接收端静默跳过
	p.applySKU(variant)
	p.applyInventory(variant)
	p.applyMedia(variant)
	p.applyURL(variant)

	// 价格面：网络回源，发射后不管；失败只留旧值，无重试无取消，后到响应覆盖先到
	p.applyPriceAsync(ctx, variant)
	return true
}

func (p *Projector) applySKU(variant *catalog.VariantView) {
	if p.opts.SKU == nil {
		return
	}
	if strings.TrimSpace(variant.SKU) == "" && strings.TrimSpace(variant.Barcode) == "" {
		p.opts.SKU.HideSKU()
		return
	}
	p.opts.SKU.ShowSKU(variant.SKU, variant.Barcode)
}

func (p *Projector) applyInventory(variant *catalog.VariantView) {
	if p.opts.InventorySk == nil {
		return
	}
	state, label := ResolveInventory(variant, p.opts.Inventory)
	if state == InventoryHidden {
		p.opts.InventorySk.HideInventory()
		return
	}
	p.opts.InventorySk.ShowInventory(state, label)
}

// ResolveInventory 计算变体的库存提示三态与文案（阈值与文案来自配置）
func ResolveInventory(variant *catalog.VariantView, cfg config.InventoryConfig) (InventoryState, string) {
	if !variant.InventoryTracked() {
		return InventoryHidden, ""
	}
	threshold := cfg.LowStockThreshold
	if threshold <= 0 {
		threshold = 10
	}
	quantity := variant.InventoryQuantity
	if quantity <= 0 {
		return InventoryOutOfStock, cfg.OutOfStockLabel
	}
	// 阈值为含边界比较：quantity <= threshold 即低库存
	if quantity <= threshold {
		return InventoryLowStock, interpolateCount(cfg.LowStockLabel, quantity)
	}
	return InventoryInStock, interpolateCount(cfg.InStockLabel, quantity)
}

func (p *Projector) applyMedia(variant *catalog.VariantView) {
	if p.opts.Media == nil || variant.FeaturedMedia == nil {
		return
	}
	if !p.opts.Media.ActivateMedia(variant.FeaturedMedia.ID, variant.FeaturedMedia.Position) {
		p.opts.Logger.Debugw("showcase_media_target_missing",
			"section_id", p.opts.SectionID,
			"media_id", variant.FeaturedMedia.ID,
		)
	}
}

func (p *Projector) applyURL(variant *catalog.VariantView) {
	if p.opts.URL == nil {
		return
	}
	p.opts.URL.SetVariantParam(variant.ID)
}

func (p *Projector) applyPriceAsync(ctx context.Context, variant *catalog.VariantView) {
	if p.opts.PriceSource == nil || p.opts.Price == nil {
		if p.opts.PriceFetchDone != nil {
			p.opts.PriceFetchDone(nil)
		}
		return
	}
	variantID := variant.ID
	go func() {
		html, err := p.opts.PriceSource.FetchPriceFragment(ctx, variantID, p.opts.SectionID)
		if err != nil {
			// 静默降级：价格面保持旧值，不向用户抛错
			p.opts.Logger.Warnw("showcase_price_fetch_failed",
				"section_id", p.opts.SectionID,
				"variant_id", variantID,
				"error", err,
			)
			if p.opts.PriceFetchDone != nil {
				p.opts.PriceFetchDone(err)
			}
			return
		}
		p.opts.Price.SetPriceHTML(html)
		if p.opts.PriceFetchDone != nil {
			p.opts.PriceFetchDone(nil)
		}
	}()
}

func interpolateCount(label string, count int) string {
	return strings.ReplaceAll(label, "{count}", strconv.Itoa(count))
}
