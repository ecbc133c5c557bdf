package parser

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

// Name 提取出的姓名对
// First为空时Last必为空
type Name struct {
	First string
	Last  string
}

// IsZero 是否为空结果
func (n Name) IsZero() bool {
	return n.First == ""
}

var (
	// namePatternRe 常见姓名行模式：首词至少3个字母，后跟1-3个首字母大写的词
	namePatternRe = regexp.MustCompile(`^[A-Z][a-z]{2,}(?:\s+[A-Z][a-z]+){1,3}$`)

	// nameWordRe 姓名词只允许字母、连字符和点
	nameWordRe = regexp.MustCompile(`^[A-Za-z\-.]+$`)

	// camelPartsRe 从驼峰串中切出词，如 ShivamKumarMishra
	camelPartsRe = regexp.MustCompile(`[A-Z][a-z]+`)

	// emailLocalPartsRe 从邮箱本地部分切词（驼峰或纯小写段）
	emailLocalPartsRe = regexp.MustCompile(`[A-Z]?[a-z]+`)

	// lowerRunsRe 纯小写段兜底切分
	lowerRunsRe = regexp.MustCompile(`[a-z]+`)

	// filenamePrefixRe / filenameSuffixRe 文件名中的前导数字下划线和尾部下划线
	filenamePrefixRe = regexp.MustCompile(`^[\d_]+`)
	filenameSuffixRe = regexp.MustCompile(`_+$`)

	// digitsRe / nonLetterDotRe 邮箱本地部分清理
	digitsRe       = regexp.MustCompile(`\d+`)
	nonLetterDotRe = regexp.MustCompile(`[^a-zA-Z.]`)
)

// nameStrategy 单个姓名提取策略
// 返回已通过自身过滤的候选姓名，或"无匹配"
type nameStrategy interface {
	name() string
	attempt(ctx context.Context, doc *types.AnnotatedDocument) (Name, bool)
}

// NameResolver 多策略姓名提取器
// 策略按顺序尝试，首个通过交叉校验的结果即为答案；
// 校验不通过则继续向后，而不是返回坏结果
type NameResolver struct {
	strategies []nameStrategy
}

// NewNameResolver 创建姓名提取器
// annotator 用于对候选行复标注验证，传nil则该验证按"结论不确定"降级
func NewNameResolver(annotator Annotator) *NameResolver {
	return &NameResolver{
		strategies: []nameStrategy{
			&entityNameStrategy{},
			&firstLinesStrategy{annotator: annotator},
			&patternNameStrategy{},
		},
	}
}

// Resolve 依次执行实体、首行、模式三个文档策略，再退到文件名和邮箱兜底
// 每个策略的产出都要过一遍最终交叉校验
func (r *NameResolver) Resolve(ctx context.Context, doc *types.AnnotatedDocument, filename, email string) Name {
	if doc != nil {
		for _, strat := range r.strategies {
			candidate, ok := strat.attempt(ctx, doc)
			if !ok {
				continue
			}
			if validateName(candidate) {
				return candidate
			}
			logger.Debug().
				Str("strategy", strat.name()).
				Str("first", candidate.First).
				Str("last", candidate.Last).
				Msg("姓名候选未通过交叉校验，继续下一策略")
		}
	}

	if filename != "" {
		if candidate, ok := nameFromFilename(filename); ok && validateName(candidate) {
			logger.Debug().Str("filename", filename).Msg("从文件名提取到姓名")
			return candidate
		}
	}

	if email != "" {
		if candidate, ok := nameFromEmail(email); ok && validateName(candidate) {
			logger.Debug().Str("email", email).Msg("从邮箱提取到姓名")
			return candidate
		}
	}

	return Name{}
}

// validateName 最终交叉校验
// 姓、名或其拼接命中拒绝词表（栏目词/岗位头衔/技术词）则判为坏结果
func validateName(n Name) bool {
	if n.IsZero() {
		return false
	}
	first := strings.ToLower(n.First)
	last := strings.ToLower(n.Last)
	combined := strings.TrimSpace(first + " " + last)

	if nonNameWords.contains(first) || (last != "" && nonNameWords.contains(last)) {
		return false
	}
	if jobTitleWords.containsAnySubstring(combined) ||
		jobTitleWords.contains(first) || jobTitleWords.contains(last) {
		return false
	}
	if techWords.containsAnySubstring(combined) {
		return false
	}
	return true
}

// ---------- 策略1：PERSON实体 ----------

// personCandidate 通过全部过滤的PERSON实体候选
type personCandidate struct {
	words    []string
	position int
	atTop    bool
	text     string
}

type entityNameStrategy struct{}

func (s *entityNameStrategy) name() string { return "entity" }

func (s *entityNameStrategy) attempt(_ context.Context, doc *types.AnnotatedDocument) (Name, bool) {
	text := doc.RawText
	firstLine := ""
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = strings.TrimSpace(text[:idx])
	} else {
		firstLine = strings.TrimSpace(text)
	}
	firstLineLower := strings.ToLower(firstLine)

	var candidates []personCandidate
	for _, ent := range doc.Entities {
		if ent.Label != types.LabelPerson {
			continue
		}
		words := strings.Fields(ent.Text)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		entLower := strings.ToLower(ent.Text)

		if rejectedByDenylists(entLower, words) {
			continue
		}
		// 附近50字符窗口内若有位置实体且其文本落在本实体内，判为地名误标
		if overlapsLocationEntity(doc.Entities, ent) {
			continue
		}
		if !allTitleOrUpper(words) {
			continue
		}
		if anyWordIn(words, namePrefixes) || anyWordIn(words, orgWords) {
			continue
		}
		// 首词不能只是单个非字母字符（如 "S."）
		firstWord := words[0]
		if len(firstWord) == 1 && !isAlphaWord(firstWord) {
			continue
		}

		candidates = append(candidates, personCandidate{
			words:    words,
			position: ent.StartChar,
			atTop:    ent.StartChar < constants.TopOfDocumentChars,
			text:     ent.Text,
		})
	}

	// 排序：文档顶部优先，其次与首行一致者，再按出现位置
	sortCandidates(candidates, firstLineLower)

	for _, cand := range candidates {
		context100 := lowerWindow(text, cand.position, 100)
		if cand.atTop {
			window := clampPrefix(context100, constants.ContactWindowChars)
			hasContact := containsAnyOf(window, contactIndicators)
			hasJob := jobTitleWords.containsAnySubstring(window) || orgWords.containsAnySubstring(window)
			// 顶部候选：后跟联系方式且无岗位/机构词，或仅无岗位/机构词，接受
			if (hasContact && !hasJob) || !hasJob {
				return splitName(cand.words), true
			}
		} else {
			window := clampPrefix(context100, constants.JobKeywordWindowChars)
			if !jobTitleWords.containsAnySubstring(window) && !orgWords.containsAnySubstring(window) {
				return splitName(cand.words), true
			}
		}
	}
	return Name{}, false
}

// rejectedByDenylists 对实体文本及逐词执行四类拒绝词表和地名后缀检查
func rejectedByDenylists(entLower string, words []string) bool {
	if jobTitleWords.containsAnySubstring(entLower) || anyWordIn(words, jobTitleWords) {
		return true
	}
	if techWords.containsAnySubstring(entLower) || anyWordIn(words, techWords) {
		return true
	}
	if nonNameWords.containsAnySubstring(entLower) || anyWordIn(words, nonNameWords) {
		return true
	}
	if placeSuffixes.containsAnySubstring(entLower) {
		return true
	}
	for _, w := range words {
		if hasPlaceSuffix(strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// overlapsLocationEntity 判断附近窗口内是否有位置实体与本实体文本重叠
func overlapsLocationEntity(entities []types.Entity, ent types.Entity) bool {
	entLower := strings.ToLower(ent.Text)
	for _, other := range entities {
		if !other.Label.IsLocation() {
			continue
		}
		if other.StartChar <= ent.EndChar+constants.JobKeywordWindowChars &&
			other.StartChar >= ent.StartChar-constants.JobKeywordWindowChars &&
			strings.Contains(entLower, strings.ToLower(other.Text)) {
			return true
		}
	}
	return false
}

// sortCandidates 稳定排序：顶部在前，匹配首行者在前，位置升序
func sortCandidates(candidates []personCandidate, firstLineLower string) {
	// 插入排序，候选数量极小且需要稳定性
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidateLess(candidates[j], candidates[j-1], firstLineLower); j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
}

func candidateLess(a, b personCandidate, firstLineLower string) bool {
	if a.atTop != b.atTop {
		return a.atTop
	}
	aMatches := firstLineLower != "" && strings.ToLower(a.text) == firstLineLower
	bMatches := firstLineLower != "" && strings.ToLower(b.text) == firstLineLower
	if aMatches != bMatches {
		return aMatches
	}
	return a.position < b.position
}

// ---------- 策略2：首行扫描 ----------

type firstLinesStrategy struct {
	annotator Annotator
}

func (s *firstLinesStrategy) name() string { return "first_lines" }

func (s *firstLinesStrategy) attempt(ctx context.Context, doc *types.AnnotatedDocument) (Name, bool) {
	lines := strings.Split(doc.RawText, "\n")
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		if name, ok := s.checkLine(ctx, line); ok {
			return name, true
		}
	}
	return Name{}, false
}

// checkLine 单行姓名判定
// 行先过拒绝词表和形态检查，再交给标注引擎复验；
// 标注结论不确定但无机构/拒绝词命中时，作为较弱的正向信号接受
func (s *firstLinesStrategy) checkLine(ctx context.Context, line string) (Name, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Name{}, false
	}
	lower := strings.ToLower(line)

	if containsAnyOf(lower, lineSkipPatterns) {
		return Name{}, false
	}
	if nonNameWords.containsAnySubstring(lower) ||
		jobTitleWords.containsAnySubstring(lower) ||
		techWords.containsAnySubstring(lower) ||
		orgWords.containsAnySubstring(lower) ||
		placeSuffixes.containsAnySubstring(lower) {
		return Name{}, false
	}

	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return Name{}, false
	}
	if anyWordIn(words, techWords) || anyWordIn(words, jobTitleWords) {
		return Name{}, false
	}
	if !allTitleOrUpper(words) {
		return Name{}, false
	}
	for _, w := range words {
		if !nameWordRe.MatchString(w) {
			return Name{}, false
		}
		if hasPlaceSuffix(strings.ToLower(w)) {
			return Name{}, false
		}
	}
	// 首词不能只是缩写（如 "S."），除非整行有3个以上词
	if len(words[0]) <= 1 && len(words) < 3 {
		return Name{}, false
	}

	isPerson, isOrg, isLocation := s.annotateLine(ctx, line)
	if isOrg || isLocation {
		return Name{}, false
	}

	filtered := dropPrefixAndLabelWords(words)
	if isPerson {
		if len(filtered) >= 2 {
			return splitName(filtered), true
		}
		return Name{}, false
	}
	// 标注不确定：形态通过且无任何拒绝词命中，按弱信号接受
	if len(filtered) >= 2 && len(filtered[0]) >= 2 {
		return splitName(filtered), true
	}
	return Name{}, false
}

// annotateLine 对孤立行复标注，返回(含人名, 含机构, 含位置)
// 标注器缺失或失败一律按不确定处理
func (s *firstLinesStrategy) annotateLine(ctx context.Context, line string) (bool, bool, bool) {
	if s.annotator == nil {
		return false, false, false
	}
	lineDoc, err := s.annotator.Annotate(ctx, line)
	if err != nil || lineDoc == nil {
		logger.Debug().Err(err).Msg("候选行复标注失败，按不确定处理")
		return false, false, false
	}
	var isPerson, isOrg, isLocation bool
	for _, ent := range lineDoc.Entities {
		switch {
		case ent.Label == types.LabelPerson:
			isPerson = true
		case ent.Label == types.LabelOrg:
			isOrg = true
		case ent.Label.IsLocation():
			isLocation = true
		}
	}
	return isPerson, isOrg, isLocation
}

// ---------- 策略3：姓名行正则 ----------

type patternNameStrategy struct{}

func (s *patternNameStrategy) name() string { return "pattern" }

func (s *patternNameStrategy) attempt(_ context.Context, doc *types.AnnotatedDocument) (Name, bool) {
	lines := strings.Split(doc.RawText, "\n")
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if orgWords.containsAnySubstring(lower) {
			continue
		}
		words := strings.Fields(line)
		if anyWordIn(words, techWords) {
			continue
		}
		if !namePatternRe.MatchString(line) {
			continue
		}
		if anyWordIn(words, techWords) || anyWordIn(words, nonNameWords) {
			continue
		}
		return splitName(words), true
	}
	return Name{}, false
}

// ---------- 兜底1：文件名 ----------

// nameFromFilename 从文件名提取姓名
// 支持 "111121112_ShivamKumarMishra_.pdf" 和 "Shivam_Kumar_Mishra.pdf" 两类形态
func nameFromFilename(filename string) (Name, bool) {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stem = filenamePrefixRe.ReplaceAllString(stem, "")
	stem = filenameSuffixRe.ReplaceAllString(stem, "")
	if stem == "" {
		return Name{}, false
	}

	var parts []string
	if strings.Contains(stem, "_") {
		for _, p := range strings.Split(stem, "_") {
			if p != "" {
				parts = append(parts, p)
			}
		}
	} else {
		parts = camelPartsRe.FindAllString(stem, -1)
		if len(parts) == 0 {
			// 没有标准驼峰时按大写字母切分
			parts = splitBeforeUppers(stem)
		}
	}

	var cleaned []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, capitalize(p))
		}
	}
	if len(cleaned) < 2 {
		return Name{}, false
	}
	return splitName(cleaned), true
}

// ---------- 兜底2：邮箱 ----------

// nameFromEmail 从邮箱本地部分提取姓名
// 例如 prince.kumar@example.com -> (Prince, Kumar)
func nameFromEmail(email string) (Name, bool) {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return Name{}, false
	}
	local := email[:at]
	local = digitsRe.ReplaceAllString(local, "")
	local = nonLetterDotRe.ReplaceAllString(local, "")
	if local == "" {
		return Name{}, false
	}

	var parts []string
	if strings.Contains(local, ".") {
		for _, p := range strings.Split(local, ".") {
			if p != "" {
				parts = append(parts, capitalize(p))
			}
		}
	} else {
		raw := emailLocalPartsRe.FindAllString(local, -1)
		if len(raw) == 0 {
			raw = lowerRunsRe.FindAllString(local, -1)
		}
		for _, p := range raw {
			if len(p) > 2 {
				parts = append(parts, capitalize(p))
			}
		}
	}

	if len(parts) >= 2 {
		return splitName(parts), true
	}
	if len(parts) == 1 && len(parts[0]) > 3 {
		return Name{First: parts[0]}, true
	}
	return Name{}, false
}

// ---------- 通用辅助 ----------

// splitName 首词为名，其余拼为姓
func splitName(words []string) Name {
	return Name{First: words[0], Last: strings.Join(words[1:], " ")}
}

// dropPrefixAndLabelWords 剔除称谓和栏目词
func dropPrefixAndLabelWords(words []string) []string {
	var out []string
	for _, w := range words {
		lower := strings.ToLower(w)
		if namePrefixes.contains(lower) || nonNameWords.contains(lower) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// anyWordIn 判断任一词（小写后）是否在集合中
func anyWordIn(words []string, set wordSet) bool {
	for _, w := range words {
		if set.contains(strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// allTitleOrUpper 所有词都是首字母大写或全大写
func allTitleOrUpper(words []string) bool {
	for _, w := range words {
		if !isTitleWord(w) && !isUpperWord(w) {
			return false
		}
	}
	return true
}

// isTitleWord 首字母大写且其余字母无大写
func isTitleWord(w string) bool {
	first := true
	hasLetter := false
	for _, r := range w {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if first {
			if !unicode.IsUpper(r) {
				return false
			}
			first = false
		} else if unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}

// isUpperWord 所有字母都是大写
func isUpperWord(w string) bool {
	hasLetter := false
	for _, r := range w {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isAlphaWord 全部为字母
func isAlphaWord(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return w != ""
}

// capitalize 首字母大写其余小写
func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

// splitBeforeUppers 在每个大写字母前切分
func splitBeforeUppers(s string) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			if s[start:i] != "" {
				parts = append(parts, s[start:i])
			}
			start = i
		}
	}
	if s[start:] != "" {
		parts = append(parts, s[start:])
	}
	return parts
}

// containsAnyOf 文本是否包含任一子串
func containsAnyOf(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// lowerWindow 取 text[pos:pos+size] 的小写形式，越界自动截断
func lowerWindow(text string, pos, size int) string {
	if pos < 0 {
		pos = 0
	}
	if pos >= len(text) {
		return ""
	}
	end := pos + size
	if end > len(text) {
		end = len(text)
	}
	return strings.ToLower(text[pos:end])
}

// clampPrefix 取字符串前n个字节
func clampPrefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
