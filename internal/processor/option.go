package processor

import (
	"resume-parser-go/internal/parser"
)

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// ----- 组件选项 -----

// WithAnnotator 设置文本标注引擎
func WithAnnotator(annotator parser.Annotator) ComponentOpt {
	return func(c *Components) {
		c.Annotator = annotator
	}
}

// WithSkillAnnotator 设置技能标注引擎
func WithSkillAnnotator(annotator parser.SkillAnnotator) ComponentOpt {
	return func(c *Components) {
		c.SkillAnnotator = annotator
	}
}

// WithPDFExtractor 设置PDF文本提取器
func WithPDFExtractor(extractor parser.PDFExtractor) ComponentOpt {
	return func(c *Components) {
		c.PDFExtractor = extractor
	}
}

// WithKeywordStore 设置关键词表
func WithKeywordStore(store *parser.KeywordStore) ComponentOpt {
	return func(c *Components) {
		c.Keywords = store
	}
}

// ----- 设置选项 -----

// WithConcurrency 设置批量提取的并发度
func WithConcurrency(n int) SettingOpt {
	return func(s *Settings) {
		if n > 0 {
			s.Concurrency = n
		}
	}
}

// WithDebug 设置调试模式
func WithDebug(debug bool) SettingOpt {
	return func(s *Settings) {
		s.Debug = debug
	}
}
