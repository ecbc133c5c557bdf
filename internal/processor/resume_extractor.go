package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/types"
)

// Components 聚合所有功能组件依赖，便于集中管理和测试替换
type Components struct {
	Annotator      parser.Annotator      // 文本标注引擎
	SkillAnnotator parser.SkillAnnotator // 技能标注引擎，可选
	PDFExtractor   parser.PDFExtractor   // PDF文本提取器，可选
	Keywords       *parser.KeywordStore  // 关键词表
}

// Settings 纯配置项，不包含任何业务逻辑组件
type Settings struct {
	Concurrency int  // 批量提取并发度
	Debug       bool // 是否开启调试模式
}

// ResumeExtractor 简历字段提取器聚合类
// 组合各字段提取器执行完整提取流水线，同一输入必然产出同一结果
type ResumeExtractor struct {
	components Components
	settings   Settings

	nameResolver *parser.NameResolver
	contact      *parser.ContactExtractor
	education    *parser.EducationExtractor
	skills       *parser.SkillExtractor
	major        *parser.MajorClassifier
	experience   *parser.ExperienceClassifier
	position     *parser.PositionSuggester
}

// BatchItem 批量提取的单个输入
type BatchItem struct {
	Filename string // 来源文件名，姓名兜底和溯源用
	RawText  string // 简历正文
}

// BatchResult 批量提取的单个结果，次序与输入一致
type BatchResult struct {
	Filename string
	Record   *types.ResumeRecord
	Err      error
}

// NewResumeExtractor 组装提取器
// 关键词表缺失时以空表构造，所有提取路径按各自规则降级
func NewResumeExtractor(compOpts []ComponentOpt, setOpts []SettingOpt) *ResumeExtractor {
	components := Components{}
	for _, opt := range compOpts {
		opt(&components)
	}
	settings := Settings{Concurrency: 4}
	for _, opt := range setOpts {
		opt(&settings)
	}
	if components.Keywords == nil {
		components.Keywords = &parser.KeywordStore{
			Skills:    parser.NewKeywordSet(),
			Majors:    parser.NewKeywordSet(),
			Positions: &parser.PositionKeywordMap{},
			JobSkills: map[string][]string{},
		}
	}

	return &ResumeExtractor{
		components:   components,
		settings:     settings,
		nameResolver: parser.NewNameResolver(components.Annotator),
		contact:      parser.NewContactExtractor(),
		education:    parser.NewEducationExtractor(),
		skills:       parser.NewSkillExtractor(components.Keywords.Skills, components.SkillAnnotator),
		major:        parser.NewMajorClassifier(components.Keywords.Majors),
		experience:   parser.NewExperienceClassifier(),
		position:     parser.NewPositionSuggester(components.Keywords.Positions),
	}
}

// ExtractRecord 对一份简历文本执行完整提取流水线
// 标注引擎不可用时以空标注文档继续，正则和关键词路径照常工作；
// 提取本身不返回错误，缺失字段以零值体现在结果里
func (e *ResumeExtractor) ExtractRecord(ctx context.Context, rawText, filename string) (*types.ResumeRecord, error) {
	tracer := otel.Tracer(constants.AppName)
	ctx, span := tracer.Start(ctx, "ResumeExtractor.ExtractRecord",
		trace.WithAttributes(
			attribute.String("resume.filename", filename),
			attribute.Int("resume.text_length", len(rawText)),
		))
	defer span.End()

	doc := e.annotate(ctx, rawText)

	record := &types.ResumeRecord{}

	// 联系方式先于姓名：邮箱是姓名兜底链的最后一环
	record.Email = e.contact.ExtractEmail(doc)
	record.Phone = e.contact.ExtractPhone(doc)

	name := e.nameResolver.Resolve(ctx, doc, filename, record.Email)
	record.FirstName = name.First
	record.LastName = name.Last

	record.Institutions = e.education.Extract(doc)
	record.Skills = e.skills.Extract(ctx, doc)
	record.DegreeMajor = e.major.Classify(doc)
	record.ExperienceLevel = e.experience.Classify(doc)
	record.SuggestedPosition = e.position.Suggest(doc, record.Skills)
	record.CompletenessScore = completenessScore(record)

	span.SetAttributes(
		attribute.Int("resume.skills", len(record.Skills)),
		attribute.Int("resume.score", record.CompletenessScore),
	)
	if e.settings.Debug {
		logger.Debug().
			Str("filename", filename).
			Str("first_name", record.FirstName).
			Str("last_name", record.LastName).
			Str("email", record.Email).
			Str("degree_major", record.DegreeMajor).
			Strs("institutions", record.Institutions).
			Strs("skills", record.Skills).
			Str("experience_level", string(record.ExperienceLevel)).
			Str("suggested_position", record.SuggestedPosition).
			Msg("字段级提取明细")
	}
	logger.Info().
		Str("filename", filename).
		Bool("has_name", record.HasName()).
		Int("skills", len(record.Skills)).
		Int("score", record.CompletenessScore).
		Msg("简历字段提取完成")
	return record, nil
}

// annotate 获取标注文档，引擎缺失或失败时降级为空标注文档
func (e *ResumeExtractor) annotate(ctx context.Context, rawText string) *types.AnnotatedDocument {
	if e.components.Annotator == nil {
		return types.EmptyDocument(rawText)
	}
	doc, err := e.components.Annotator.Annotate(ctx, rawText)
	if err != nil || doc == nil {
		logger.Warn().Err(err).Msg("文本标注失败，以空标注文档降级提取")
		span := trace.SpanFromContext(ctx)
		span.SetStatus(codes.Error, "annotation degraded")
		return types.EmptyDocument(rawText)
	}
	return doc
}

// ResolveText 按文件类型取出简历正文
// PDF经PDF提取器转文本，其余文件按UTF-8纯文本处理
func (e *ResumeExtractor) ResolveText(ctx context.Context, fileBytes []byte, filename string) (string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		if e.components.PDFExtractor == nil {
			return "", fmt.Errorf("未配置PDF提取器，无法处理PDF文件: %s", filename)
		}
		text, err := e.components.PDFExtractor.ExtractText(ctx, fileBytes, filename)
		if err != nil {
			return "", fmt.Errorf("PDF文本提取失败: %w", err)
		}
		return text, nil
	}
	return string(fileBytes), nil
}

// AnnotatorStatus 返回标注引擎的健康状态
// disabled表示未配置，up/down来自探活结果
func (e *ResumeExtractor) AnnotatorStatus(ctx context.Context) string {
	if e.components.Annotator == nil {
		return "disabled"
	}
	if e.components.Annotator.Healthy(ctx) {
		return "up"
	}
	return "down"
}

// ExtractBatch 并发提取一批简历，结果次序与输入一致
func (e *ResumeExtractor) ExtractBatch(ctx context.Context, items []BatchItem) []BatchResult {
	results := make([]BatchResult, len(items))
	if len(items) == 0 {
		return results
	}

	concurrency := e.settings.Concurrency
	if concurrency > len(items) {
		concurrency = len(items)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				record, err := e.ExtractRecord(ctx, items[i].RawText, items[i].Filename)
				results[i] = BatchResult{
					Filename: items[i].Filename,
					Record:   record,
					Err:      err,
				}
			}
		}()
	}
	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	return results
}

// SuggestSkillsForJob 按岗位名返回建议技能表
// 岗位名匹配忽略大小写，未配置的岗位返回nil
func (e *ResumeExtractor) SuggestSkillsForJob(job string) []string {
	return e.components.Keywords.JobSkills[strings.ToLower(strings.TrimSpace(job))]
}

// completenessScore 四项存在性各25分
// 姓名要求姓和名都存在，技能要求至少一项
func completenessScore(record *types.ResumeRecord) int {
	score := 0
	if record.HasName() {
		score += constants.ScorePerField
	}
	if record.Email != "" {
		score += constants.ScorePerField
	}
	if record.DegreeMajor != "" {
		score += constants.ScorePerField
	}
	if len(record.Skills) > 0 {
		score += constants.ScorePerField
	}
	return score
}
