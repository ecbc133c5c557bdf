package parser

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

var (
	// yearPatternRe 年份或年份区间，如 2019 / 2019-2023，常从项目经历里误捞出来
	yearPatternRe = regexp.MustCompile(`^\d{4}(-\d{4})?$`)

	// phoneLikeRe 只含数字和电话符号的串
	phoneLikeRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)

	// separatorRe 归一化时被替换为空格的标点
	separatorRe = regexp.MustCompile(`[._\-]`)
)

// skillMatcher 单个技能关键词的预编译匹配器
// 原始大小写保留用于产出，匹配统一在小写上进行
type skillMatcher struct {
	original   string
	lower      string
	boundary   *regexp.Regexp
	normLower  string
	normBound  *regexp.Regexp
}

// SkillExtractor 技能提取器
// 关键词表匹配为主，技能标注引擎为辅；引擎不可用时静默降级为纯表匹配
type SkillExtractor struct {
	matchers  []skillMatcher
	annotator SkillAnnotator
}

// NewSkillExtractor 基于技能表构建提取器，匹配器在构建期一次性编译
func NewSkillExtractor(skills *KeywordSet, annotator SkillAnnotator) *SkillExtractor {
	e := &SkillExtractor{annotator: annotator}
	for _, kw := range skills.Keywords() {
		lower := strings.ToLower(kw)
		norm := normalizeSeparators(lower)
		e.matchers = append(e.matchers, skillMatcher{
			original:  kw,
			lower:     lower,
			boundary:  regexp.MustCompile(`\b` + regexp.QuoteMeta(lower) + `\b`),
			normLower: norm,
			normBound: regexp.MustCompile(`\b` + regexp.QuoteMeta(norm) + `\b`),
		})
	}
	return e
}

// Extract 返回有效、去重、按字典序（忽略大小写）排序的技能列表
func (e *SkillExtractor) Extract(ctx context.Context, doc *types.AnnotatedDocument) []string {
	if doc == nil || doc.RawText == "" {
		return nil
	}

	docLower := strings.ToLower(doc.RawText)
	docNorm := normalizeSeparators(docLower)

	var found []string
	for _, m := range e.matchers {
		if strings.Contains(docLower, m.lower) || m.boundary.MatchString(docLower) ||
			strings.Contains(docNorm, m.normLower) || m.normBound.MatchString(docNorm) {
			found = append(found, m.original)
		}
	}

	// 技能实体标注补充表里没有的技能
	if e.annotator != nil {
		entities, err := e.annotator.AnnotateSkills(ctx, doc.RawText)
		if err != nil {
			logger.Warn().Err(err).Msg("技能标注引擎不可用，仅使用关键词表结果")
		} else {
			for _, ent := range entities {
				if ent.Label != types.LabelSkill {
					continue
				}
				text := strings.TrimSpace(ent.Text)
				if len(text) > 1 && hasAlnum(text) {
					found = append(found, text)
				}
			}
		}
	}

	// 有效性过滤 + 忽略大小写去重，首次出现的大小写获胜
	seen := make(map[string]struct{}, len(found))
	var skills []string
	for _, s := range found {
		if !isValidSkill(s) {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, s)
	}

	sort.SliceStable(skills, func(i, j int) bool {
		return strings.ToLower(skills[i]) < strings.ToLower(skills[j])
	})
	return skills
}

// isValidSkill 过滤掉混进候选集的年份、电话片段和纯数字
func isValidSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	if len(skill) < 2 {
		return false
	}
	if isAllDigits(skill) {
		return false
	}
	if yearPatternRe.MatchString(skill) {
		return false
	}
	if phoneLikeRe.MatchString(skill) && countDigits(skill) > 6 {
		return false
	}
	return hasLetter(skill)
}

// normalizeSeparators 将点、下划线、连字符归一化为空格
// 让 "Node.js" 和 "Node js"、"scikit-learn" 和 "scikit learn" 互相可匹配
func normalizeSeparators(s string) string {
	return separatorRe.ReplaceAllString(s, " ")
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
