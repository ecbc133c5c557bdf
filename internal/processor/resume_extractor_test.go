package processor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/types"
)

// fakeAnnotator 从原文构造最简标注的测试替身
// 约定：首行视为PERSON实体，其余词元不做实体标注
type fakeAnnotator struct {
	verbs []string
	fail  bool
}

func (f *fakeAnnotator) Annotate(_ context.Context, text string) (*types.AnnotatedDocument, error) {
	if f.fail {
		return nil, parser.NewAnnotationError("annotate", "service down")
	}
	doc := types.EmptyDocument(text)
	firstLine := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	if firstLine != "" {
		doc.Entities = append(doc.Entities, types.Entity{
			Text:      firstLine,
			Label:     types.LabelPerson,
			StartChar: 0,
			EndChar:   len(firstLine),
		})
	}
	for _, word := range strings.Fields(text) {
		doc.Tokens = append(doc.Tokens, types.Token{Text: word, PartOfSpeech: "X"})
	}
	for _, v := range f.verbs {
		doc.Tokens = append(doc.Tokens, types.Token{Text: v, PartOfSpeech: types.PosVerb})
	}
	return doc, nil
}

func (f *fakeAnnotator) Healthy(_ context.Context) bool { return !f.fail }

// testKeywordStore 构造带少量词表的关键词仓库
func testKeywordStore() *parser.KeywordStore {
	return &parser.KeywordStore{
		Skills:    parser.NewKeywordSet("Python", "SQL", "Git"),
		Majors:    parser.NewKeywordSet("COMPUTER SCIENCE"),
		Positions: &parser.PositionKeywordMap{},
		JobSkills: map[string][]string{
			"software engineer": {"Python", "Git", "Docker"},
		},
	}
}

func newTestExtractor(annotator parser.Annotator) *ResumeExtractor {
	return NewResumeExtractor(
		[]ComponentOpt{
			WithAnnotator(annotator),
			WithKeywordStore(testKeywordStore()),
		},
		[]SettingOpt{WithConcurrency(2)},
	)
}

const sampleResume = "Shivam Mishra\nEmail: shivam.mishra@example.com\nPhone: 987-654-3210\n" +
	"Education\nBachelor of Technology in Computer Science\nNIT Tiruchirappalli\n" +
	"Skills: Python, SQL, Git\n"

// TestExtractRecordFullPipeline 验证完整流水线各字段产出
func TestExtractRecordFullPipeline(t *testing.T) {
	extractor := newTestExtractor(&fakeAnnotator{verbs: []string{"developed", "designed"}})

	record, err := extractor.ExtractRecord(context.Background(), sampleResume, "resume.txt")
	require.NoError(t, err)

	assert.Equal(t, "Shivam", record.FirstName)
	assert.Equal(t, "Mishra", record.LastName)
	assert.Equal(t, "shivam.mishra@example.com", record.Email)
	assert.Equal(t, "987-654-3210", record.Phone)
	assert.Equal(t, "COMPUTER SCIENCE", record.DegreeMajor)
	assert.Contains(t, record.Institutions, "NIT Tiruchirappalli")
	assert.ElementsMatch(t, []string{"Python", "SQL", "Git"}, record.Skills)
	assert.Equal(t, types.LevelMidSenior, record.ExperienceLevel)
	assert.Equal(t, 100, record.CompletenessScore)
}

// TestExtractRecordIdempotent 验证同一输入重复提取产出完全一致
func TestExtractRecordIdempotent(t *testing.T) {
	extractor := newTestExtractor(&fakeAnnotator{verbs: []string{"developed"}})

	first, err := extractor.ExtractRecord(context.Background(), sampleResume, "resume.txt")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := extractor.ExtractRecord(context.Background(), sampleResume, "resume.txt")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestExtractRecordAnnotatorDown 验证标注引擎故障时的降级提取
// 依赖标注产物的字段按缺失处理，正则和关键词路径照常工作
func TestExtractRecordAnnotatorDown(t *testing.T) {
	extractor := newTestExtractor(&fakeAnnotator{fail: true})

	record, err := extractor.ExtractRecord(context.Background(), sampleResume, "resume.txt")
	require.NoError(t, err)

	// 邮箱只认实体和词元，空标注文档下为空
	assert.Equal(t, "", record.Email)
	assert.Equal(t, "987-654-3210", record.Phone)
	assert.ElementsMatch(t, []string{"Python", "SQL", "Git"}, record.Skills)
	assert.Contains(t, record.Institutions, "NIT Tiruchirappalli")
}

// TestExtractRecordScoreInvariant 验证完整度评分恒为25的倍数且不超过100
func TestExtractRecordScoreInvariant(t *testing.T) {
	extractor := newTestExtractor(nil)

	inputs := []string{sampleResume, "just some text", "", "Python developer with SQL"}
	for _, input := range inputs {
		record, err := extractor.ExtractRecord(context.Background(), input, "x.txt")
		require.NoError(t, err)
		assert.Equal(t, 0, record.CompletenessScore%25)
		assert.LessOrEqual(t, record.CompletenessScore, 100)
		assert.GreaterOrEqual(t, record.CompletenessScore, 0)
	}
}

// TestExtractRecordNameInvariant 验证名为空则姓必为空
func TestExtractRecordNameInvariant(t *testing.T) {
	extractor := newTestExtractor(nil)
	record, err := extractor.ExtractRecord(context.Background(), "no names here at all", "data.txt")
	require.NoError(t, err)
	if record.FirstName == "" {
		assert.Equal(t, "", record.LastName)
	}
}

// TestExtractBatchPreservesOrder 验证批量提取结果次序与输入一致
func TestExtractBatchPreservesOrder(t *testing.T) {
	extractor := newTestExtractor(&fakeAnnotator{})

	items := []BatchItem{
		{Filename: "a.txt", RawText: "Rahul Verma\nEmail: rahul@example.com\n"},
		{Filename: "b.txt", RawText: "Ankit Sharma\nEmail: ankit@example.com\n"},
		{Filename: "c.txt", RawText: "plain text resume"},
	}
	results := extractor.ExtractBatch(context.Background(), items)

	require.Len(t, results, 3)
	assert.Equal(t, "a.txt", results[0].Filename)
	assert.Equal(t, "b.txt", results[1].Filename)
	assert.Equal(t, "c.txt", results[2].Filename)
	assert.Equal(t, "Rahul", results[0].Record.FirstName)
	assert.Equal(t, "Ankit", results[1].Record.FirstName)
}

// fakePDFExtractor 返回固定文本的PDF提取替身
type fakePDFExtractor struct {
	text string
	err  error
}

func (f *fakePDFExtractor) ExtractText(_ context.Context, _ []byte, _ string) (string, error) {
	return f.text, f.err
}

// TestResolveTextPlain 验证非PDF文件按纯文本处理
func TestResolveTextPlain(t *testing.T) {
	extractor := newTestExtractor(nil)

	text, err := extractor.ResolveText(context.Background(), []byte("plain resume body"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "plain resume body", text)
}

// TestResolveTextPDFWithoutExtractor 验证未配置PDF提取器时拒绝PDF文件
func TestResolveTextPDFWithoutExtractor(t *testing.T) {
	extractor := newTestExtractor(nil)

	_, err := extractor.ResolveText(context.Background(), []byte("%PDF-1.4"), "resume.pdf")
	require.Error(t, err)
}

// TestResolveTextPDF 验证PDF文件经提取器转文本，扩展名忽略大小写
func TestResolveTextPDF(t *testing.T) {
	extractor := NewResumeExtractor(
		[]ComponentOpt{
			WithPDFExtractor(&fakePDFExtractor{text: "extracted body"}),
			WithKeywordStore(testKeywordStore()),
		},
		nil,
	)

	text, err := extractor.ResolveText(context.Background(), []byte("%PDF-1.4"), "Resume.PDF")
	require.NoError(t, err)
	assert.Equal(t, "extracted body", text)
}

// TestAnnotatorStatus 验证标注引擎健康状态上报
func TestAnnotatorStatus(t *testing.T) {
	assert.Equal(t, "disabled", newTestExtractor(nil).AnnotatorStatus(context.Background()))
	assert.Equal(t, "up", newTestExtractor(&fakeAnnotator{}).AnnotatorStatus(context.Background()))
	assert.Equal(t, "down", newTestExtractor(&fakeAnnotator{fail: true}).AnnotatorStatus(context.Background()))
}

// TestWithDebugSetting 验证调试开关写入设置
func TestWithDebugSetting(t *testing.T) {
	extractor := NewResumeExtractor(
		[]ComponentOpt{WithKeywordStore(testKeywordStore())},
		[]SettingOpt{WithDebug(true)},
	)
	assert.True(t, extractor.settings.Debug)
}

// TestSuggestSkillsForJob 验证岗位建议技能查询忽略大小写
func TestSuggestSkillsForJob(t *testing.T) {
	extractor := newTestExtractor(nil)

	assert.Equal(t, []string{"Python", "Git", "Docker"}, extractor.SuggestSkillsForJob("Software Engineer"))
	assert.Equal(t, []string{"Python", "Git", "Docker"}, extractor.SuggestSkillsForJob("  software engineer "))
	assert.Nil(t, extractor.SuggestSkillsForJob("Astronaut"))
}
