package showcase

import (
	"github.com/showcase-next/internal/catalog"
)

// Resolver 变体解析器：对 (变体列表, 选项组, 选择状态) 的纯函数计算。
// 可售性永远是派生值，不做缓存存储，每次选择变更后整表重算。
type Resolver struct {
	doc *catalog.Document
}

// NewResolver 创建解析器
func NewResolver(doc *catalog.Document) *Resolver {
	if doc == nil {
		doc = &catalog.Document{}
	}
	return &Resolver{doc: doc}
}

// GroupCount 选项组数量
func (r *Resolver) GroupCount() int {
	return len(r.doc.OptionGroups)
}

// FindVariant 返回选项元组与完整选择逐位精确相等的唯一变体。
// 选择不完整或无匹配时返回 nil。匹配为逐位字符串全等，不做大小写或模糊处理。
// 注意：不检查 available 标志——记录本身照常返回，可购性由可售性层面（
// IsOptionAvailable 驱动的输入禁用）负责。
func (r *Resolver) FindVariant(selection Selection) *catalog.VariantView {
	tuple, ok := selection.Tuple(r.GroupCount())
	if !ok {
		return nil
	}
	for i := range r.doc.Variants {
		if tupleEqual(r.doc.Variants[i].Options, tuple) {
			return &r.doc.Variants[i]
		}
	}
	return nil
}

// IsOptionAvailable 固定其余各组当前选中值，判断候选值是否仍有可售组合：
// 存在某变体满足 available=true、options[group]=candidate、且其余已选组逐位相等。
// 未选中的组不构成约束。变体列表为空（降级模式）时一律视为可选。
func (r *Resolver) IsOptionAvailable(group int, candidate string, selection Selection) bool {
	if len(r.doc.Variants) == 0 {
		return true
	}
	for i := range r.doc.Variants {
		variant := &r.doc.Variants[i]
		if !variant.Available {
			continue
		}
		if group < 0 || group >= len(variant.Options) {
			continue
		}
		if variant.Options[group] != candidate {
			continue
		}
		if r.matchesFixedOthers(variant, group, selection) {
			return true
		}
	}
	return false
}

// Availability 重算全部选项组、全部候选值的可选状态。
// 每次选择变更都整表重算，O(组数×值数×变体数)，店面规模（几十个变体）下可接受。
func (r *Resolver) Availability(selection Selection) map[int]map[string]bool {
	result := make(map[int]map[string]bool, len(r.doc.OptionGroups))
	for _, optionGroup := range r.doc.OptionGroups {
		values := make(map[string]bool, len(optionGroup.Values))
		for _, value := range optionGroup.Values {
			values[value] = r.IsOptionAvailable(optionGroup.Position, value, selection)
		}
		result[optionGroup.Position] = values
	}
	return result
}

func (r *Resolver) matchesFixedOthers(variant *catalog.VariantView, group int, selection Selection) bool {
	for other, fixed := range selection {
		if other == group {
			continue
		}
		if other < 0 || other >= len(variant.Options) {
			return false
		}
		if variant.Options[other] != fixed {
			return false
		}
	}
	return true
}

func tupleEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
