package gallery

import (
	"fmt"

	"github.com/showcase-next/internal/catalog"
)

// SlideKey 图库元素复合键：data-media-id / data-target 取值为 <sectionId>-<mediaId>
func SlideKey(sectionID string, mediaID int64) string {
	return fmt.Sprintf("%s-%d", sectionID, mediaID)
}

// Slide 图库单页
type Slide struct {
	Key      string // 复合键
	MediaID  int64  // 媒体对外编号
	Position int    // 1 起的位置，用于计数器
	Src      string
	Alt      string
}

// State 媒体图库状态：主图与缩略图共用一个激活下标，选中互相同步，
// is-active 语义通过 ActiveKey/IsActive 暴露给渲染适配器。
type State struct {
	sectionID   string
	slides      []Slide
	activeIndex int
}

// NewState 由展示文档的媒体列表构建图库状态
func NewState(sectionID string, media []catalog.MediaView) *State {
	state := &State{sectionID: sectionID}
	for _, item := range media {
		state.slides = append(state.slides, Slide{
			Key:      SlideKey(sectionID, item.ID),
			MediaID:  item.ID,
			Position: item.Position,
			Src:      item.Src,
			Alt:      item.Alt,
		})
	}
	return state
}

// Slides 全部单页
func (s *State) Slides() []Slide {
	return s.slides
}

// Len 单页数量
func (s *State) Len() int {
	return len(s.slides)
}

// ActiveIndex 当前激活下标（空图库返回 -1）
func (s *State) ActiveIndex() int {
	if len(s.slides) == 0 {
		return -1
	}
	return s.activeIndex
}

// ActiveKey 当前激活单页的复合键（主图与缩略图同键）
func (s *State) ActiveKey() string {
	if len(s.slides) == 0 {
		return ""
	}
	return s.slides[s.activeIndex].Key
}

// IsActive 指定复合键是否为当前激活页
func (s *State) IsActive(key string) bool {
	return key != "" && key == s.ActiveKey()
}

// Counter 计数器取值：当前页的 1 起位置与总页数
func (s *State) Counter() (current, total int) {
	if len(s.slides) == 0 {
		return 0, 0
	}
	return s.slides[s.activeIndex].Position, len(s.slides)
}

// Select 选中指定下标；主图选中同时同步缩略图与计数器
func (s *State) Select(index int) bool {
	if index < 0 || index >= len(s.slides) {
		return false
	}
	s.activeIndex = index
	return true
}

// Next 前进一页
func (s *State) Next() bool {
	return s.Select(s.activeIndex + 1)
}

// Prev 后退一页
func (s *State) Prev() bool {
	return s.Select(s.activeIndex - 1)
}

// CanNext 是否还能前进
func (s *State) CanNext() bool {
	return s.activeIndex+1 < len(s.slides)
}

// CanPrev 是否还能后退
func (s *State) CanPrev() bool {
	return s.activeIndex > 0 && len(s.slides) > 0
}

// ActivateMedia 按媒体对外编号切换激活页；找不到目标时返回 false 且状态不变。
// 实现 showcase.MediaSink，变体主图切换从这里进入。
func (s *State) ActivateMedia(mediaID int64, position int) bool {
	_ = position
	for i := range s.slides {
		if s.slides[i].MediaID == mediaID {
			s.activeIndex = i
			return true
		}
	}
	return false
}

// ActivateForVariant 查找与变体关联的媒体并切换（外部选择器事件路径）
func (s *State) ActivateForVariant(doc *catalog.Document, variantID int64) bool {
	media := doc.MediaForVariant(variantID)
	if media == nil {
		return false
	}
	return s.ActivateMedia(media.ID, media.Position)
}
