package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"

	"resume-parser-go/internal/logger"
)

// EinoPDFTextExtractor 使用 Eino PDF Parser 提取简历正文
type EinoPDFTextExtractor struct {
	parser  *pdf.PDFParser
	timeout time.Duration
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFTextExtractor)

// WithEinoTimeout 配置单次解析的超时时间
func WithEinoTimeout(timeout time.Duration) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.timeout = timeout
	}
}

// 确保EinoPDFTextExtractor实现了PDFExtractor接口
var _ PDFExtractor = (*EinoPDFTextExtractor)(nil)

// NewEinoPDFTextExtractor 初始化 Eino PDF 文本提取器
// 不按页面分割，整份PDF的文本作为单个字符串返回
func NewEinoPDFTextExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	extractor := &EinoPDFTextExtractor{
		parser:  p,
		timeout: 30 * time.Second,
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor, nil
}

// ExtractText 从PDF字节流提取纯文本正文
func (e *EinoPDFTextExtractor) ExtractText(ctx context.Context, data []byte, filename string) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, bytes.NewReader(data),
		einoParser.WithURI(filename),
	)
	if err != nil {
		return "", fmt.Errorf("PDF解析失败 %s: %w", filename, err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("PDF解析无结果: %s", filename)
	}

	// 合并所有文档内容，正常配置下只有一个
	var builder strings.Builder
	for i, doc := range docs {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(doc.Content)
	}
	text := builder.String()

	logger.Debug().
		Str("filename", filename).
		Int("chars", len(text)).
		Dur("duration", time.Since(start)).
		Msg("PDF文本提取完成")
	return text, nil
}
