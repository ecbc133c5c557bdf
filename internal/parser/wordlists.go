package parser

import "strings"

// 本文件集中维护提取启发式使用的词表。
// 这些词表是配置数据而非代码逻辑：按领域/地区定制时只需改这里。
// 人名校验相关的拒绝词表在全仓库只保留这一份规范版本。

// wordSet 小写词集合
type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// contains 判断小写词是否在集合中
func (s wordSet) contains(word string) bool {
	_, ok := s[word]
	return ok
}

// containsAnySubstring 判断文本（应已小写）是否包含集合中任一词作为子串
func (s wordSet) containsAnySubstring(textLower string) bool {
	for w := range s {
		if w != "" && strings.Contains(textLower, w) {
			return true
		}
	}
	return false
}

// orgWords 指示组织/教育机构的词，不可能是人名
var orgWords = newWordSet(
	"college", "university", "institute", "school", "academy",
	"corporation", "company", "ltd", "inc", "llc", "pvt", "limited",
	"department", "faculty", "campus", "technologies", "solutions",
	"systems", "services", "group", "industries", "enterprises",
)

// jobTitleWords 容易被误识别为人名的岗位头衔
var jobTitleWords = newWordSet(
	"software", "engineer", "developer", "manager", "director", "analyst",
	"consultant", "specialist", "coordinator", "assistant", "executive",
	"officer", "lead", "senior", "junior", "intern", "trainee", "associate",
	"administrator", "admin", "programmer", "coder", "architect", "designer",
)

// techWords 技术/框架名称，不应被当作人名
var techWords = newWordSet(
	"express", "js", "javascript", "node", "react", "angular", "vue",
	"python", "java", "c++", "c#", "php", "ruby", "rust",
	"django", "flask", "spring", "laravel", "rails", "asp",
	"mongodb", "mysql", "postgresql", "redis", "elasticsearch",
	"docker", "kubernetes", "aws", "azure", "gcp", "terraform",
	"jenkins", "gitlab", "github", "bitbucket", "jira", "confluence",
	"html", "css", "sass", "less", "bootstrap", "tailwind",
	"typescript", "coffeescript", "swift", "kotlin", "dart", "flutter",
	"tensorflow", "pytorch", "keras", "scikit", "pandas", "numpy",
	"graphql", "rest", "api", "soap", "microservices", "serverless",
)

// nonNameWords 简历中常见的标签/栏目词，不是人名
var nonNameWords = newWordSet(
	"first", "last", "name", "full", "given", "surname", "family",
	"certifications", "certified", "certificate", "certification",
	"education", "experience", "skills", "summary", "objective",
	"contact", "address", "phone", "email", "mobile", "linkedin",
	"github", "portfolio", "website", "resume", "cv", "curriculum",
	"vitae", "profile", "about", "work", "employment", "projects",
	"achievements", "awards", "publications", "references",
)

// placeSuffixes 地名后缀（印度地址中常见）
var placeSuffixes = newWordSet(
	"ganj", "nagar", "pur", "abad", "garh", "pura", "vihar",
	"colony", "road", "street", "lane", "avenue", "marg", "path",
	"village", "town", "city", "state", "district", "taluka", "tehsil",
)

// namePrefixes 姓名前缀/称谓，提取时剔除
var namePrefixes = newWordSet(
	"mr", "mrs", "miss", "ms", "dr", "professor", "prof", "sir", "madam",
	"mr.", "mrs.", "ms.", "dr.",
)

// contactIndicators 联系方式指示词，人名后紧跟这些词是强正向信号
var contactIndicators = []string{"@", "email", "phone", "mobile", "address"}

// lineSkipPatterns 含这些子串的行一定不是姓名行
var lineSkipPatterns = []string{
	"email", "phone", "address", "resume", "cv", "@",
	"www.", "http", "linkedin", "github", "portfolio",
}

// institutionKeywords 教育机构识别关键词（含区域性缩写）
var institutionKeywords = []string{
	"university", "college", "institute", "academy",
	"nit", "iit", "iim", "bits", "iiit",
}

// institutionSkipWords 机构名里出现这些词则判为误匹配
var institutionSkipWords = []string{
	"email", "phone", "address", "resume", "cv", "github", "linkedin",
}

// sectionStopWords 教育章节扫描遇到这些词视为进入了其他大章节
var sectionStopWords = []string{
	"experience", "skills", "projects", "work", "certification", "awards",
}

// hasPlaceSuffix 判断小写词是否以任一地名后缀结尾
func hasPlaceSuffix(wordLower string) bool {
	for suffix := range placeSuffixes {
		if strings.HasSuffix(wordLower, suffix) {
			return true
		}
	}
	return false
}
