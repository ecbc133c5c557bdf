package parser

import (
	"context"

	"resume-parser-go/internal/types"
)

// Annotator 文本标注引擎
// 输入原始文本，输出带词元和命名实体的标注文档
type Annotator interface {
	// Annotate 标注一段文本，服务不可用时返回 ErrAnnotationUnavailable 分类错误
	Annotate(ctx context.Context, text string) (*types.AnnotatedDocument, error)
	// Healthy 探活
	Healthy(ctx context.Context) bool
}

// SkillAnnotator 技能实体标注引擎
// 与通用标注引擎分离：技能模型单独训练和部署，可用性也单独降级
type SkillAnnotator interface {
	// AnnotateSkills 返回文本中识别出的技能实体
	AnnotateSkills(ctx context.Context, text string) ([]types.Entity, error)
}

// PDFExtractor PDF正文提取器
type PDFExtractor interface {
	// ExtractText 提取PDF字节流的纯文本正文
	ExtractText(ctx context.Context, data []byte, filename string) (string, error)
}
