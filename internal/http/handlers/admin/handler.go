package admin

import "github.com/showcase-next/internal/provider"

// Handler 后台管理接口处理器入口
// 说明：模拟管理端，内存存储，无鉴权，仅用于联调与演示。
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func normalizePagination(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
