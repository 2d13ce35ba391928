package pubsub

import (
	"sync"

	"github.com/showcase-next/internal/catalog"

	"github.com/google/uuid"
)

// Event 变体选择器事件：外部选择器变更时广播 {event, variant}
type Event struct {
	Name      string               `json:"event"`
	ProductID uint                 `json:"product_id"`
	Variant   *catalog.VariantView `json:"variant,omitempty"`
}

// Handler 事件处理函数
type Handler func(Event)

// Bus 进程内类型化事件总线。订阅生命周期显式：Subscribe 返回的句柄
// 在组件拆除时必须 Cancel，取消后不再投递。投递同步执行。
type Bus struct {
	mu   sync.RWMutex
	subs map[string]Handler
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{subs: make(map[string]Handler)}
}

// Subscribe 订阅事件，返回可取消的订阅句柄
func (b *Bus) Subscribe(handler Handler) *Subscription {
	if handler == nil {
		return &Subscription{}
	}
	id := uuid.NewString()
	b.mu.Lock()
	b.subs[id] = handler
	b.mu.Unlock()
	return &Subscription{id: id, bus: b}
}

// Publish 同步投递事件到全部订阅者
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, handler := range b.subs {
		handlers = append(handlers, handler)
	}
	b.mu.RUnlock()
	for _, handler := range handlers {
		handler(event)
	}
}

// SubscriberCount 当前订阅者数量
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Subscription 订阅句柄
type Subscription struct {
	id   string
	bus  *Bus
	once sync.Once
}

// Cancel 取消订阅；幂等，取消后不再收到任何事件
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s.id)
		s.bus.mu.Unlock()
	})
}
