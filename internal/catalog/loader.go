package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/showcase-next/internal/logger"
)

var (
	ErrDocumentEmpty   = errors.New("showcase document empty")
	ErrDocumentInvalid = errors.New("showcase document invalid")
)

// Parse 解析页面内嵌的展示文档 JSON，校验选项元组对齐不变量
func Parse(raw []byte) (*Document, error) {
	if len(raw) == 0 {
		return nil, ErrDocumentEmpty
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	groups := len(doc.OptionGroups)
	for _, variant := range doc.Variants {
		if len(variant.Options) != groups {
			return nil, fmt.Errorf("%w: variant %d has %d option values, want %d",
				ErrDocumentInvalid, variant.ID, len(variant.Options), groups)
		}
	}
	return &doc, nil
}

// Load 解析展示文档；数据损坏时记录日志并进入降级模式（空变体列表，页面不崩溃）
func Load(raw []byte) *Document {
	doc, err := Parse(raw)
	if err != nil {
		logger.Errorw("showcase_document_parse_failed", "error", err)
		return &Document{}
	}
	return doc
}
