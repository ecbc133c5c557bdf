package parser

import (
	"strings"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

// 岗位推荐打分用的技术词表
var (
	// techPositionWords 岗位名中出现即视为技术岗位
	techPositionWords = []string{
		"software", "developer", "engineer", "programmer", "coder",
		"data", "scientist", "analyst", "designer", "architect",
		"devops", "security", "network", "cloud", "ai", "ml",
	}

	// coreTechSkills 与技术岗位组合出加分的核心技能
	coreTechSkills = newWordSet(
		"python", "java", "javascript", "react", "node", "express",
		"mongodb", "sql", "git", "docker", "aws", "azure", "html", "css", "api",
	)

	// fallbackTechSkills 低分段兜底判定用的更宽技术技能表
	fallbackTechSkills = newWordSet(
		"python", "java", "javascript", "react", "node", "express",
		"mongodb", "sql", "html", "css", "git", "docker", "aws", "azure",
		"api", "backend", "frontend",
	)

	// minimalTechSkills 零分兜底判定用的最小技术技能表
	minimalTechSkills = newWordSet(
		"python", "java", "javascript", "react", "node", "express",
		"mongodb", "sql", "html", "css", "git", "docker",
	)
)

// PositionSuggester 基于技能和动词的岗位推荐器
// 对每个配置岗位打分取最高，低分段回退到通用技术岗位判定
type PositionSuggester struct {
	positions *PositionKeywordMap
}

// NewPositionSuggester 创建岗位推荐器
func NewPositionSuggester(positions *PositionKeywordMap) *PositionSuggester {
	return &PositionSuggester{positions: positions}
}

// Suggest 返回推荐岗位名
// 打分规则：技术岗位且有核心技能+20；技能与岗位名互为子串+10；
// 岗位关键词命中技能+5；岗位关键词命中文档动词+2。
// 岗位按字典序遍历且同分保留先者，同样输入必然得到同样输出
func (s *PositionSuggester) Suggest(doc *types.AnnotatedDocument, skills []string) string {
	skillSet := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		skillSet[strings.ToLower(skill)] = struct{}{}
	}
	verbs := documentVerbs(doc)

	bestScore := 0
	bestPosition := ""
	for _, position := range s.positions.Positions() {
		score := s.scorePosition(position, skillSet, verbs)
		if score > bestScore {
			bestScore = score
			bestPosition = position
		}
	}

	logger.Debug().
		Str("position", bestPosition).
		Int("score", bestScore).
		Msg("岗位打分完成")

	switch {
	case bestScore >= 5:
		return bestPosition
	case bestScore >= 2:
		// 低置信命中：有通用技术技能则回退到通用技术岗位
		if anySkillIn(skillSet, fallbackTechSkills) {
			return constants.DefaultTechPosition
		}
		return bestPosition
	default:
		if anySkillIn(skillSet, minimalTechSkills) {
			return constants.DefaultTechPosition
		}
		return constants.DefaultPositionNotIdentified
	}
}

// scorePosition 单个岗位的得分
func (s *PositionSuggester) scorePosition(position string, skillSet map[string]struct{}, verbs []string) int {
	posLower := strings.ToLower(position)
	score := 0

	if containsAnyOf(posLower, techPositionWords) && anySkillIn(skillSet, coreTechSkills) {
		score += 20
	}

	for skill := range skillSet {
		if strings.Contains(posLower, skill) || strings.Contains(skill, posLower) {
			score += 10
		}
	}

	for _, keyword := range s.positions.Keywords(position) {
		if _, ok := skillSet[keyword]; ok {
			score += 5
		}
		for _, verb := range verbs {
			if strings.Contains(verb, keyword) {
				score += 2
				break
			}
		}
	}
	return score
}

// anySkillIn 技能集合与词表是否有交集
func anySkillIn(skillSet map[string]struct{}, set wordSet) bool {
	for skill := range skillSet {
		if set.contains(skill) {
			return true
		}
	}
	return false
}
