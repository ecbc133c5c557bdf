package parser

import (
	"strings"

	"resume-parser-go/internal/types"
)

// categoryRule 单个分类及其成员关键词
// 规则按表中顺序求值，先精确匹配后子串匹配，首个命中的分类获胜
type categoryRule struct {
	category types.SkillCategory
	members  wordSet
}

// categoryRules 分类优先级表
// 顺序有语义："react" 先归入Web而不是框架，"pandas" 先归入数据科学
var categoryRules = []categoryRule{
	{types.CategoryProgrammingLanguages, newWordSet(
		"python", "java", "javascript", "typescript", "c", "c++", "c#",
		"go", "golang", "rust", "ruby", "php", "swift", "kotlin", "scala",
		"r", "perl", "dart", "matlab", "objective-c",
	)},
	{types.CategoryWebTechnologies, newWordSet(
		"html", "css", "react", "angular", "vue", "node", "node.js", "nodejs",
		"express", "express.js", "django", "flask", "spring", "laravel",
		"rails", "asp.net", "jquery", "bootstrap", "tailwind", "sass",
		"rest", "rest api", "graphql", "next.js", "nuxt",
	)},
	{types.CategoryDatabases, newWordSet(
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
		"sqlite", "oracle", "cassandra", "elasticsearch", "dynamodb",
		"mariadb", "neo4j", "couchdb",
	)},
	{types.CategoryCloudDevOps, newWordSet(
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"terraform", "ansible", "jenkins", "ci/cd", "gitlab", "github actions",
		"linux", "nginx", "serverless", "microservices", "devops",
	)},
	{types.CategoryDataScienceML, newWordSet(
		"machine learning", "deep learning", "tensorflow", "pytorch", "keras",
		"scikit-learn", "scikit learn", "pandas", "numpy", "scipy",
		"data analysis", "data science", "nlp", "computer vision",
		"ai", "ml", "statistics", "tableau", "power bi",
	)},
	{types.CategoryFrameworksTools, newWordSet(
		"git", "jira", "confluence", "postman", "figma", "webpack",
		"babel", "maven", "gradle", "junit", "selenium", "agile", "scrum",
		"vs code", "intellij", "eclipse", "vim",
	)},
	{types.CategorySoftSkills, newWordSet(
		"leadership", "communication", "teamwork", "problem solving",
		"time management", "critical thinking", "collaboration",
		"presentation", "mentoring", "adaptability",
	)},
}

// CategorizeSkills 将技能列表划分到固定分类
// 输入顺序在每个分类内保留；没有命中的技能落入Other；
// 空分类不出现在结果里
func CategorizeSkills(skills []string) map[types.SkillCategory][]string {
	result := make(map[types.SkillCategory][]string)
	for _, skill := range skills {
		category := categorize(skill)
		result[category] = append(result[category], skill)
	}
	return result
}

// categorize 单个技能的分类判定
// 两轮扫描保证精确匹配整体优先于子串匹配，避免 "java" 把 "javascript" 抢走
func categorize(skill string) types.SkillCategory {
	lower := strings.ToLower(strings.TrimSpace(skill))
	for _, rule := range categoryRules {
		if rule.members.contains(lower) {
			return rule.category
		}
	}
	for _, rule := range categoryRules {
		// 子串轮只用3字符以上的成员，"c"/"r"/"go"这类短名只参与精确匹配
		for member := range rule.members {
			if len(member) >= 3 && strings.Contains(lower, member) {
				return rule.category
			}
		}
	}
	return types.CategoryOther
}
