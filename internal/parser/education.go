package parser

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

var (
	// institutionAbbrevRe 区域性机构缩写 + 校区名，如 "NIT Tiruchirappalli"
	institutionAbbrevRe = regexp.MustCompile(`\b(NIT|IIT|IIM|BITS|IIIT)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`)

	// institutionFullRe 专有名词 + 机构类型词，如 "Delhi University"
	institutionFullRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(University|College|Institute|Academy)\b`)
)

// EducationExtractor 教育机构提取器
// 三趟提取：机构实体、全文正则、教育章节定向扫描
// 结果按发现顺序去重后返回
type EducationExtractor struct{}

// NewEducationExtractor 创建教育机构提取器
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// Extract 返回文档中识别出的教育机构名列表
func (e *EducationExtractor) Extract(doc *types.AnnotatedDocument) []string {
	if doc == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var institutions []string
	add := func(name string, minLen int) {
		name = strings.TrimSpace(name)
		if len(name) <= minLen {
			return
		}
		if containsAnyOf(strings.ToLower(name), institutionSkipWords) {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		institutions = append(institutions, name)
	}

	// 第一趟：带机构关键词的ORG实体
	for _, ent := range doc.Entities {
		if ent.Label != types.LabelOrg {
			continue
		}
		if containsAnyOf(strings.ToLower(ent.Text), institutionKeywords) {
			add(ent.Text, 3)
		}
	}

	// 第二趟：全文正则
	for _, m := range institutionAbbrevRe.FindAllStringSubmatch(doc.RawText, -1) {
		add(m[1]+" "+m[2], 3)
	}
	for _, m := range institutionFullRe.FindAllString(doc.RawText, -1) {
		add(m, 3)
	}

	// 第三趟：教育章节内定向扫描
	// 章节标题行要求短（排除正文里偶然出现的education），
	// 向下最多扫10行，碰到其他大章节关键词即停
	lines := strings.Split(doc.RawText, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) >= 30 || !strings.Contains(strings.ToLower(trimmed), "education") {
			continue
		}
		end := i + 10
		if end > len(lines) {
			end = len(lines)
		}
		for j := i + 1; j < end; j++ {
			if containsAnyOf(strings.ToLower(lines[j]), sectionStopWords) {
				break
			}
			for _, m := range institutionAbbrevRe.FindAllStringSubmatch(lines[j], -1) {
				add(m[1]+" "+m[2], 5)
			}
			for _, m := range institutionFullRe.FindAllString(lines[j], -1) {
				add(m, 5)
			}
		}
	}

	return institutions
}
