package parser

import (
	"sort"
	"strings"

	"resume-parser-go/internal/types"
)

// 动作动词分级表
// 简历里的动词词干按管理强度分三档，命中即定级
var (
	seniorVerbs    = []string{"lead", "manage", "direct", "oversee", "supervise", "orchestrate", "govern"}
	midSeniorVerbs = []string{"develop", "design", "analyze", "implement", "coordinate", "execute", "strategize"}
	midJuniorVerbs = []string{"assist", "support", "collaborate", "participate", "aid", "facilitate", "contribute"}
)

// ExperienceClassifier 经验级别分类器
// 基于文档动词与动作动词表的匹配，从高到低逐档判定
type ExperienceClassifier struct{}

// NewExperienceClassifier 创建经验级别分类器
func NewExperienceClassifier() *ExperienceClassifier {
	return &ExperienceClassifier{}
}

// Classify 返回经验级别，文档无动词或无命中时为入门级
func (c *ExperienceClassifier) Classify(doc *types.AnnotatedDocument) types.ExperienceLevel {
	verbs := documentVerbs(doc)
	switch {
	case anyVerbMatches(verbs, seniorVerbs):
		return types.LevelSenior
	case anyVerbMatches(verbs, midSeniorVerbs):
		return types.LevelMidSenior
	case anyVerbMatches(verbs, midJuniorVerbs):
		return types.LevelMidJunior
	default:
		return types.LevelEntry
	}
}

// documentVerbs 收集文档中全部动词词元，小写去重后排序
func documentVerbs(doc *types.AnnotatedDocument) []string {
	if doc == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, token := range doc.Tokens {
		if token.PartOfSpeech != types.PosVerb {
			continue
		}
		seen[strings.ToLower(token.Text)] = struct{}{}
	}
	verbs := make([]string, 0, len(seen))
	for v := range seen {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}

// anyVerbMatches 任一文档动词包含任一词干即命中
// 包含匹配覆盖时态变化："developed"、"developing" 都命中 "develop"
func anyVerbMatches(verbs, stems []string) bool {
	for _, verb := range verbs {
		for _, stem := range stems {
			if strings.Contains(verb, stem) {
				return true
			}
		}
	}
	return false
}
