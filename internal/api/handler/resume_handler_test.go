package handler

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/processor"
	"resume-parser-go/internal/types"
)

// fakeAnnotator 把正文按空白切词元的测试替身
type fakeAnnotator struct{}

func (f *fakeAnnotator) Annotate(_ context.Context, text string) (*types.AnnotatedDocument, error) {
	doc := types.EmptyDocument(text)
	for _, word := range strings.Fields(text) {
		doc.Tokens = append(doc.Tokens, types.Token{Text: word, PartOfSpeech: "X"})
	}
	return doc, nil
}

func (f *fakeAnnotator) Healthy(_ context.Context) bool { return true }

// newTestHandler 构造无存储、无PDF提取器的最小处理器
func newTestHandler() *ResumeHandler {
	store := &parser.KeywordStore{
		Skills:    parser.NewKeywordSet("Python", "SQL", "Git"),
		Majors:    parser.NewKeywordSet("COMPUTER SCIENCE"),
		Positions: &parser.PositionKeywordMap{},
		JobSkills: map[string][]string{
			"data analyst": {"SQL", "Excel", "Tableau"},
		},
	}
	extractor := processor.NewResumeExtractor(
		[]processor.ComponentOpt{
			processor.WithAnnotator(&fakeAnnotator{}),
			processor.WithKeywordStore(store),
		},
		nil,
	)
	return NewResumeHandler(nil, extractor)
}

const sampleText = "Ankit Sharma\nEmail: ankit.sharma@example.com\nPhone: 987-654-3210\n" +
	"Education\nBachelor of Technology in Computer Science\n" +
	"Skills: Python, SQL, Git\n"

// TestHandleResumeParseWithoutStorage 验证未配置存储时只提取不落库
func TestHandleResumeParseWithoutStorage(t *testing.T) {
	h := newTestHandler()

	resp, err := h.HandleResumeParse(context.Background(), []byte(sampleText), "resume.txt")
	require.NoError(t, err)

	assert.Equal(t, StatusExtracted, resp.Status)
	assert.Empty(t, resp.SubmissionID)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "ankit.sharma@example.com", resp.Record.Email)
	assert.ElementsMatch(t, []string{"Python", "SQL", "Git"}, resp.Record.Skills)
	assert.NotEmpty(t, resp.SkillCategories)
}

// TestHandleResumeParsePDFWithoutExtractor 验证未配置PDF提取器时拒绝PDF文件
func TestHandleResumeParsePDFWithoutExtractor(t *testing.T) {
	h := newTestHandler()

	resp, err := h.HandleResumeParse(context.Background(), []byte("%PDF-1.4"), "resume.pdf")
	require.Error(t, err)
	assert.Nil(t, resp)
}

// TestHandleResumeParseEmptyContent 验证空白正文直接报错
func TestHandleResumeParseEmptyContent(t *testing.T) {
	h := newTestHandler()

	resp, err := h.HandleResumeParse(context.Background(), []byte("   \n\t  "), "blank.txt")
	require.Error(t, err)
	assert.Nil(t, resp)
}

// TestHandleResumeParseBatch 验证批量解析结果与输入一一对应
func TestHandleResumeParseBatch(t *testing.T) {
	h := newTestHandler()

	items := []processor.BatchItem{
		{Filename: "a.txt", RawText: "Rahul Verma\nEmail: rahul@example.com\n"},
		{Filename: "b.txt", RawText: "plain text"},
	}
	results := h.HandleResumeParseBatch(context.Background(), items)

	require.Len(t, results, 2)
	assert.Equal(t, "a.txt", results[0].Filename)
	assert.Equal(t, "b.txt", results[1].Filename)
	require.NotNil(t, results[0].Record)
	assert.Equal(t, "rahul@example.com", results[0].Record.Email)
}

// TestHandleJobSkills 验证岗位建议技能查询透传
func TestHandleJobSkills(t *testing.T) {
	h := newTestHandler()

	assert.Equal(t, []string{"SQL", "Excel", "Tableau"}, h.HandleJobSkills("Data Analyst"))
	assert.Nil(t, h.HandleJobSkills("Astronaut"))
}

// TestHandleGetSubmissionWithoutStorage 验证未配置存储时查询报错
func TestHandleGetSubmissionWithoutStorage(t *testing.T) {
	h := newTestHandler()

	submission, err := h.HandleGetSubmission(context.Background(), "any-id")
	require.Error(t, err)
	assert.Nil(t, submission)
	assert.NotErrorIs(t, err, ErrSubmissionNotFound)
}

// TestHandleHealth 验证健康信息包含标注引擎状态
func TestHandleHealth(t *testing.T) {
	h := newTestHandler()

	info := h.HandleHealth(context.Background())
	assert.Equal(t, "ok", info["status"])
	assert.Equal(t, "up", info["annotator"])
}

// TestCalculateMD5 验证MD5摘要为32位十六进制且输入敏感
func TestCalculateMD5(t *testing.T) {
	a := calculateMD5([]byte("hello"))
	b := calculateMD5([]byte("hello "))
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, calculateMD5([]byte("hello")))
}
