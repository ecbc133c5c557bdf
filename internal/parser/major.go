package parser

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

var (
	// bachelorCSRe 最常见的完整学位写法，直接定案
	bachelorCSRe = regexp.MustCompile(`(?i)\bBachelor\s+of\s+Computer\s+Science\b`)

	// fieldCaptureRes 学位短语后捕获具体专业名
	fieldCaptureRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bBachelor\s+of\s+Technology\s+in\s+([A-Za-z]+(?:\s+[A-Za-z]+)*)`),
		regexp.MustCompile(`(?i)\bBachelor\s+of\s+Engineering\s+in\s+([A-Za-z]+(?:\s+[A-Za-z]+)*)`),
		regexp.MustCompile(`(?i)\bBachelor\s+of\s+Science\s+in\s+([A-Za-z]+(?:\s+[A-Za-z]+)*)`),
		regexp.MustCompile(`(?i)\bB\.?\s?Tech\s+in\s+([A-Za-z]+(?:\s+[A-Za-z]+)*)`),
		regexp.MustCompile(`(?i)\bB\.?E\.?\s+in\s+([A-Za-z]+(?:\s+[A-Za-z]+)*)`),
	}

	// degreeAbbrevPatterns 学位缩写 -> 通用专业标签
	// 顺序即优先级：本科工科在前，硕士和文商科在后；
	// 必须用有序切片而不是map，保证同一文档两次分类结果一致
	degreeAbbrevPatterns = []struct {
		re    *regexp.Regexp
		label string
	}{
		{regexp.MustCompile(`(?i)\bb\.?\s?tech\b|\bbachelor\s+of\s+technology\b`), "ENGINEERING"},
		{regexp.MustCompile(`(?i)\bb\.?e\.?\b`), "ENGINEERING"},
		{regexp.MustCompile(`(?i)\bm\.?\s?tech\b|\bmaster\s+of\s+technology\b`), "ENGINEERING"},
		{regexp.MustCompile(`(?i)\bb\.?\s?sc\b|\bbachelor\s+of\s+science\b`), "SCIENCE"},
		{regexp.MustCompile(`(?i)\bm\.?\s?sc\b|\bmaster\s+of\s+science\b`), "SCIENCE"},
		{regexp.MustCompile(`(?i)\bb\.?\s?com\b|\bbachelor\s+of\s+commerce\b`), "COMMERCE"},
		{regexp.MustCompile(`(?i)\bmba\b|\bmaster\s+of\s+business\s+administration\b`), "BUSINESS ADMINISTRATION"},
		{regexp.MustCompile(`(?i)\bb\.?a\.?\b|\bbachelor\s+of\s+arts\b`), "ARTS"},
		{regexp.MustCompile(`(?i)\bm\.?a\.?\b|\bmaster\s+of\s+arts\b`), "ARTS"},
	}
)

// MajorClassifier 学位专业分类器
// 四级回退：学位短语捕获 -> 专业表精确子串 -> 专业表词级部分匹配 -> 学位缩写通用标签
type MajorClassifier struct {
	majors *KeywordSet
}

// NewMajorClassifier 创建专业分类器
func NewMajorClassifier(majors *KeywordSet) *MajorClassifier {
	return &MajorClassifier{majors: majors}
}

// Classify 返回识别出的专业名，无法识别时返回空串
func (c *MajorClassifier) Classify(doc *types.AnnotatedDocument) string {
	if doc == nil || doc.RawText == "" {
		return ""
	}
	text := doc.RawText
	textLower := strings.ToLower(text)

	// 策略0：学位短语里直接带专业名
	if bachelorCSRe.MatchString(text) {
		return "COMPUTER SCIENCE"
	}
	for _, re := range fieldCaptureRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return c.reconcile(m[1])
		}
	}

	// 策略1：专业表精确子串
	for _, major := range c.majors.Keywords() {
		if strings.Contains(textLower, strings.ToLower(major)) {
			return major
		}
	}

	// 策略2：词级部分匹配，专业名的所有长词都出现即认定
	for _, major := range c.majors.Keywords() {
		words := strings.Fields(strings.ToLower(major))
		matched := 0
		total := 0
		for _, w := range words {
			if len(w) <= 3 {
				continue
			}
			total++
			if strings.Contains(textLower, w) {
				matched++
			}
		}
		if total > 0 && matched == total {
			return major
		}
	}

	// 策略3：学位缩写推断通用标签
	for _, p := range degreeAbbrevPatterns {
		if p.re.MatchString(text) {
			return c.reconcile(p.label)
		}
	}

	return ""
}

// reconcile 将捕获的专业名与专业表对齐
// 双向子串命中则采用表里的规范写法，否则大写返回捕获值
func (c *MajorClassifier) reconcile(field string) string {
	fieldLower := strings.ToLower(strings.TrimSpace(field))
	for _, major := range c.majors.Keywords() {
		majorLower := strings.ToLower(major)
		if strings.Contains(majorLower, fieldLower) || strings.Contains(fieldLower, majorLower) {
			return major
		}
	}
	return strings.ToUpper(strings.TrimSpace(field))
}
