package showcase

import (
	"net/url"
	"strconv"

	"github.com/showcase-next/internal/constants"
)

// History 页面地址栈：replace 原地替换当前条目，push 追加新条目。
// 变体深链接写入走 replace，避免在返回栈里堆积记录。
type History struct {
	entries []*url.URL
}

// NewHistory 以当前页面地址初始化地址栈
func NewHistory(current string) (*History, error) {
	u, err := url.Parse(current)
	if err != nil {
		return nil, err
	}
	return &History{entries: []*url.URL{u}}, nil
}

// Current 当前地址
func (h *History) Current() *url.URL {
	if h == nil || len(h.entries) == 0 {
		return nil
	}
	return h.entries[len(h.entries)-1]
}

// Len 返回栈内条目数
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Replace 原地替换当前条目（不产生新的返回栈记录）
func (h *History) Replace(u *url.URL) {
	if h == nil || u == nil || len(h.entries) == 0 {
		return
	}
	h.entries[len(h.entries)-1] = u
}

// Push 追加新条目
func (h *History) Push(u *url.URL) {
	if h == nil || u == nil {
		return
	}
	h.entries = append(h.entries, u)
}

// SetVariantParam 将变体 ID 写入 variant 查询参数并原地替换当前地址
func (h *History) SetVariantParam(variantID int64) {
	current := h.Current()
	if current == nil {
		return
	}
	next := *current
	query := next.Query()
	query.Set(constants.VariantQueryParam, strconv.FormatInt(variantID, 10))
	next.RawQuery = query.Encode()
	h.Replace(&next)
}

// VariantParam 读取当前地址中的 variant 查询参数
func (h *History) VariantParam() string {
	current := h.Current()
	if current == nil {
		return ""
	}
	return current.Query().Get(constants.VariantQueryParam)
}
