package showcase

import (
	"context"
	"sync"

	"github.com/showcase-next/internal/catalog"
	"github.com/showcase-next/internal/constants"
	"github.com/showcase-next/internal/logger"
	"github.com/showcase-next/internal/pubsub"

	"go.uber.org/zap"
)

// UpdateResult 一次命令分发后的组件状态快照
type UpdateResult struct {
	Variant      *catalog.VariantView    // 完整选择解析出的变体，无匹配或选择不完整为 nil
	Availability map[int]map[string]bool // 组位置 -> 候选值 -> 是否可选（不可选的输入应禁用但仍渲染）
	Applied      bool                    // 本次是否实际触发了投影
}

// ComponentOptions 组件装配选项
type ComponentOptions struct {
	Doc       *catalog.Document
	Projector *Projector
	Bus       *pubsub.Bus
	Logger    *zap.SugaredLogger
}

// Component 变体展示组件：每个商品视图一个实例，独占持有展示文档与选择状态。
// 选择只在用户交互或外部选择器事件时变更；命令分发同步完成（价格回源除外）。
// Close 负责退订总线，避免事件打到已拆除的组件上。
type Component struct {
	mu        sync.Mutex
	doc       *catalog.Document
	resolver  *Resolver
	projector *Projector
	selection Selection
	sub       *pubsub.Subscription
	log       *zap.SugaredLogger
	closed    bool
}

// NewComponent 创建组件并订阅外部变体选择事件
func NewComponent(opts ComponentOptions) *Component {
	doc := opts.Doc
	if doc == nil {
		doc = &catalog.Document{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.S()
	}
	c := &Component{
		doc:       doc,
		resolver:  NewResolver(doc),
		projector: opts.Projector,
		selection: NewSelection(),
		log:       log,
	}
	if opts.Bus != nil {
		c.sub = opts.Bus.Subscribe(c.handleBusEvent)
	}
	return c
}

// Dispatch 分发命令：更新选择状态、整表重算可选性，完整选择解析成功时触发投影
func (c *Component) Dispatch(ctx context.Context, cmd Command) (*UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, nil
	}

	switch command := cmd.(type) {
	case SelectOption:
		if command.Group < 0 || command.Group >= c.resolver.GroupCount() {
			return nil, ErrUnknownGroup
		}
		c.selection.Set(command.Group, command.Value)
	case SelectVariant:
		variant := c.doc.VariantByID(command.VariantID)
		if variant == nil {
			return nil, ErrUnknownVariant
		}
		for group, value := range variant.Options {
			c.selection.Set(group, value)
		}
	case ClearSelection:
		c.selection = NewSelection()
	default:
		return nil, ErrUnknownCommand
	}

	return c.project(ctx), nil
}

// Selection 当前选择状态快照
func (c *Component) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Clone()
}

// Close 拆除组件：退订总线，此后不再处理任何命令或事件
func (c *Component) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	if c.sub != nil {
		c.sub.Cancel()
	}
}

// handleBusEvent 外部选择器事件与本地输入变更走同一条解析/投影链路
func (c *Component) handleBusEvent(event pubsub.Event) {
	if event.Name != constants.EventOptionValueSelectionChange || event.Variant == nil {
		return
	}
	if event.ProductID != 0 && event.ProductID != c.doc.ProductID {
		return
	}
	if _, err := c.Dispatch(context.Background(), SelectVariant{VariantID: event.Variant.ID}); err != nil {
		c.log.Debugw("showcase_bus_event_ignored",
			"product_id", event.ProductID,
			"error", err,
		)
	}
}

// project 重算可选性并在完整选择解析成功时应用投影；调用方需持有锁
func (c *Component) project(ctx context.Context) *UpdateResult {
	result := &UpdateResult{
		Availability: c.resolver.Availability(c.selection),
	}
	variant := c.resolver.FindVariant(c.selection)
	if variant == nil {
		// 完整选择但无精确匹配：不是错误，各面保持上一次状态
		return result
	}
	result.Variant = variant
	if c.projector != nil {
		result.Applied = c.projector.Apply(ctx, variant)
	}
	return result
}
