package showcase

// Selection 选项选择状态：选项组位置 -> 选中值。
// 每组同一时刻至多一个值（单选语义），初始加载期间允许部分组未选。
// 状态只经由显式转移修改，渲染层读写被隔离在边界适配器中。
type Selection map[int]string

// NewSelection 创建空选择
func NewSelection() Selection {
	return make(Selection)
}

// Set 选中某组的值（覆盖该组旧值）
func (s Selection) Set(group int, value string) {
	s[group] = value
}

// Unset 清除某组的选中值
func (s Selection) Unset(group int) {
	delete(s, group)
}

// Value 读取某组选中值
func (s Selection) Value(group int) (string, bool) {
	value, ok := s[group]
	return value, ok
}

// Complete 是否每个选项组都已有选中值
func (s Selection) Complete(groupCount int) bool {
	if groupCount <= 0 {
		return false
	}
	for i := 0; i < groupCount; i++ {
		if _, ok := s[i]; !ok {
			return false
		}
	}
	return true
}

// Tuple 导出按位置对齐的完整选项值元组；选择不完整时返回 false
func (s Selection) Tuple(groupCount int) ([]string, bool) {
	if !s.Complete(groupCount) {
		return nil, false
	}
	tuple := make([]string, groupCount)
	for i := 0; i < groupCount; i++ {
		tuple[i] = s[i]
	}
	return tuple, true
}

// Clone 复制选择状态
func (s Selection) Clone() Selection {
	clone := make(Selection, len(s))
	for group, value := range s {
		clone[group] = value
	}
	return clone
}
