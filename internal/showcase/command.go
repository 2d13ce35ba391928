package showcase

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown showcase command")
	ErrUnknownVariant = errors.New("unknown variant id")
	ErrUnknownGroup   = errors.New("unknown option group")
)

// Command 展示组件命令。边界适配器把 DOM/接口事件翻译为带标签的命令，
// 统一经 Component.Dispatch 分发，取代按 CSS 类名的隐式动态分发。
type Command interface {
	isCommand()
}

// SelectOption 选中某选项组的一个值
type SelectOption struct {
	Group int
	Value string
}

// SelectVariant 按变体 ID 直接选中（外部选择器、深链接恢复）
type SelectVariant struct {
	VariantID int64
}

// ClearSelection 清空全部选中值
type ClearSelection struct{}

func (SelectOption) isCommand()   {}
func (SelectVariant) isCommand()  {}
func (ClearSelection) isCommand() {}
