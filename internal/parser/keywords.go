package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
)

// headerWords 常见表头词，首行首列命中则跳过表头
var headerWords = newWordSet("major", "skill", "position", "keywords", "name", "title")

// KeywordSet 大小写保留的关键词集合
// 加载一次后只读，可在并发提取间共享
type KeywordSet struct {
	members map[string]struct{}
	sorted  []string
}

// NewKeywordSet 从字符串列表构建关键词集合
func NewKeywordSet(keywords ...string) *KeywordSet {
	s := &KeywordSet{members: make(map[string]struct{}, len(keywords))}
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := s.members[k]; !ok {
			s.members[k] = struct{}{}
			s.sorted = append(s.sorted, k)
		}
	}
	sort.Strings(s.sorted)
	return s
}

// Len 集合大小
func (s *KeywordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Keywords 按字典序返回全部关键词，保证遍历顺序稳定
func (s *KeywordSet) Keywords() []string {
	if s == nil {
		return nil
	}
	return s.sorted
}

// Contains 精确（保留大小写）成员判断
func (s *KeywordSet) Contains(keyword string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[keyword]
	return ok
}

// PositionKeywordMap 岗位名 -> 小写关键词列表
type PositionKeywordMap struct {
	keywords  map[string][]string
	positions []string // 排序后的岗位名，保证遍历顺序稳定
}

// Positions 按字典序返回全部岗位名
func (m *PositionKeywordMap) Positions() []string {
	if m == nil {
		return nil
	}
	return m.positions
}

// Keywords 返回岗位配置的关键词列表
func (m *PositionKeywordMap) Keywords(position string) []string {
	if m == nil {
		return nil
	}
	return m.keywords[position]
}

// Len 岗位数量
func (m *PositionKeywordMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.positions)
}

// KeywordStore 聚合全部关键词表
// 进程内加载一次，所有表只读，跨并发提取安全共享
type KeywordStore struct {
	Skills    *KeywordSet         // 技能表
	Majors    *KeywordSet         // 专业表
	Positions *PositionKeywordMap // 岗位->关键词表
	JobSkills map[string][]string // 岗位(小写)->建议技能表
}

// NewKeywordStore 按配置加载全部关键词表
// 任一文件缺失只记告警并以空表降级，不阻断启动
func NewKeywordStore(cfg config.KeywordsConfig) *KeywordStore {
	store := &KeywordStore{
		Skills:    NewKeywordSet(),
		Majors:    NewKeywordSet(),
		Positions: &PositionKeywordMap{keywords: map[string][]string{}},
		JobSkills: map[string][]string{},
	}

	if set, err := LoadKeywordSet(cfg.SkillsCSV); err != nil {
		logger.Warn().Err(err).Str("file", cfg.SkillsCSV).Msg("技能表加载失败，使用空表")
	} else {
		store.Skills = set
	}

	if set, err := LoadKeywordSet(cfg.MajorsCSV); err != nil {
		logger.Warn().Err(err).Str("file", cfg.MajorsCSV).Msg("专业表加载失败，使用空表")
	} else {
		store.Majors = set
	}

	if m, err := LoadPositionKeywords(cfg.PositionsCSV); err != nil {
		logger.Warn().Err(err).Str("file", cfg.PositionsCSV).Msg("岗位关键词表加载失败，使用空表")
	} else {
		store.Positions = m
	}

	if m, err := LoadJobSkills(cfg.SuggestedSkillsCSV); err != nil {
		logger.Warn().Err(err).Str("file", cfg.SuggestedSkillsCSV).Msg("建议技能表加载失败，使用空表")
	} else {
		store.JobSkills = m
	}

	logger.Info().
		Int("skills", store.Skills.Len()).
		Int("majors", store.Majors.Len()).
		Int("positions", store.Positions.Len()).
		Int("job_skills", len(store.JobSkills)).
		Msg("关键词表加载完成")

	return store
}

// readCSVRows 读取CSV全部行，列数不一致的行按原样保留
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewDataSourceError("read_csv", fmt.Sprintf("%s: %v", path, err))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // 允许行列数不一致，坏行在上层跳过
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, NewDataSourceError("read_csv", fmt.Sprintf("%s: %v", path, err))
	}
	return rows, nil
}

// hasHeaderRow 首行首列是常见表头词则判定为表头
func hasHeaderRow(rows [][]string) bool {
	return len(rows) > 0 && len(rows[0]) > 0 &&
		headerWords.contains(strings.ToLower(strings.TrimSpace(rows[0][0])))
}

// LoadKeywordSet 加载单列关键词表（技能/专业）
// 表头行按常见表头词启发式跳过，空行和畸形行直接忽略
func LoadKeywordSet(path string) (*KeywordSet, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return NewKeywordSet(), err
	}

	start := 0
	if hasHeaderRow(rows) {
		start = 1
	}

	var keywords []string
	for _, row := range rows[start:] {
		if len(row) == 0 {
			continue
		}
		if k := strings.TrimSpace(row[0]); k != "" {
			keywords = append(keywords, k)
		}
	}
	return NewKeywordSet(keywords...), nil
}

// LoadPositionKeywords 加载 position,keywords 两列表
// keywords列为逗号分隔的关键词串，统一转小写
func LoadPositionKeywords(path string) (*PositionKeywordMap, error) {
	result := &PositionKeywordMap{keywords: map[string][]string{}}

	rows, err := readCSVRows(path)
	if err != nil {
		return result, err
	}
	if len(rows) == 0 {
		return result, nil
	}

	// 按表头定位列，表头缺失时按 0/1 列处理
	posCol, kwCol := 0, 1
	start := 0
	if hasHeaderRow(rows) {
		start = 1
		for i, col := range rows[0] {
			switch strings.ToLower(strings.TrimSpace(col)) {
			case "position":
				posCol = i
			case "keywords":
				kwCol = i
			}
		}
	}

	for _, row := range rows[start:] {
		if len(row) <= posCol || len(row) <= kwCol {
			continue
		}
		position := strings.TrimSpace(row[posCol])
		if position == "" {
			continue
		}
		var keywords []string
		for _, k := range strings.Split(row[kwCol], ",") {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		if _, exists := result.keywords[position]; !exists {
			result.positions = append(result.positions, position)
		}
		result.keywords[position] = keywords
	}
	sort.Strings(result.positions)
	return result, nil
}

// LoadJobSkills 加载 job_title, skill1, skill2, ... 宽表
// 岗位名小写作为查询键
func LoadJobSkills(path string) (map[string][]string, error) {
	result := map[string][]string{}

	rows, err := readCSVRows(path)
	if err != nil {
		return result, err
	}

	start := 0
	if hasHeaderRow(rows) {
		start = 1
	}

	for _, row := range rows[start:] {
		if len(row) < 2 {
			continue
		}
		job := strings.ToLower(strings.TrimSpace(row[0]))
		if job == "" {
			continue
		}
		var skills []string
		for _, s := range row[1:] {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
		result[job] = skills
	}
	return result, nil
}
