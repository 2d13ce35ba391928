package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/showcase-next/internal/config"
	"github.com/showcase-next/internal/logger"

	"github.com/redis/go-redis/v9"
)

// RedisBridge 把外部变体选择器经 Redis 频道广播的事件转发进本地总线。
// 作为 app.Service 随应用启停。
type RedisBridge struct {
	name    string
	client  *redis.Client
	channel string
	bus     *Bus
}

// NewRedisBridge 创建 Redis 事件桥；配置未启用时返回 nil
func NewRedisBridge(cfg *config.RedisConfig, bus *Bus) *RedisBridge {
	if cfg == nil || !cfg.Enabled || bus == nil {
		return nil
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "sc"
	}
	channel := strings.TrimSpace(cfg.Channel)
	if channel == "" {
		channel = "variant_picker_events"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisBridge{
		name:    "pubsub_bridge",
		client:  client,
		channel: prefix + ":" + channel,
		bus:     bus,
	}
}

// Name 服务名称
func (b *RedisBridge) Name() string {
	if b == nil || b.name == "" {
		return "pubsub_bridge"
	}
	return b.name
}

// Start 订阅 Redis 频道并持续转发事件，直到 ctx 结束
func (b *RedisBridge) Start(ctx context.Context) error {
	if b == nil || b.client == nil {
		return errors.New("redis bridge not initialized")
	}
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.relay(msg.Payload)
		}
	}
}

// Stop 停止桥接并关闭客户端
func (b *RedisBridge) Stop(ctx context.Context) error {
	if b == nil || b.client == nil {
		return nil
	}
	_ = ctx
	return b.client.Close()
}

func (b *RedisBridge) relay(payload string) {
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		logger.Warnw("pubsub_bridge_payload_invalid", "error", err)
		return
	}
	b.bus.Publish(event)
}
