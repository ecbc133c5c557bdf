package parser

import (
	"regexp"

	"resume-parser-go/internal/types"
)

// 联系方式识别模式
var (
	// emailShapeRe 判断一段文本是否整体呈邮箱形态
	emailShapeRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// phoneRe 可选国家码(1-3位) + 3-3-4 分组，分隔符允许 - . 空格 括号
	phoneRe = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)

	// phoneSeparatorRe 校验前清理的分隔符
	phoneSeparatorRe = regexp.MustCompile(`[-.\s()]`)

	// validPhoneRe 通用电话校验：7-15位数字，可带+前缀
	validPhoneRe = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// ContactExtractor 从标注文档中提取邮箱和电话
type ContactExtractor struct{}

// NewContactExtractor 创建联系方式提取器
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{}
}

// ExtractEmail 返回第一个呈邮箱形态的实体或词元，没有则返回空串
// 只认标注产物：标注不可用时邮箱按缺失处理，不在原文上二次搜索
func (e *ContactExtractor) ExtractEmail(doc *types.AnnotatedDocument) string {
	if doc == nil {
		return ""
	}
	for _, ent := range doc.Entities {
		if ent.Label == types.LabelEmail || emailShapeRe.MatchString(ent.Text) {
			return ent.Text
		}
	}
	for _, token := range doc.Tokens {
		if emailShapeRe.MatchString(token.Text) {
			return token.Text
		}
	}
	return ""
}

// ExtractPhone 返回原文中第一个匹配电话模式的串，没有则返回空串
// 除位数边界外不做国家格式校验
func (e *ContactExtractor) ExtractPhone(doc *types.AnnotatedDocument) string {
	if doc == nil || doc.RawText == "" {
		return ""
	}
	return phoneRe.FindString(doc.RawText)
}

// ValidateEmail 校验邮箱格式
func ValidateEmail(email string) bool {
	return email != "" && emailShapeRe.MatchString(email)
}

// ValidatePhone 通用电话校验：清理分隔符后要求7-15位数字
func ValidatePhone(phone string) bool {
	if phone == "" {
		return false
	}
	cleaned := phoneSeparatorRe.ReplaceAllString(phone, "")
	return validPhoneRe.MatchString(cleaned)
}
