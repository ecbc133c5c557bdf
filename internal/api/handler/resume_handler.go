package handler

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/processor"
	"resume-parser-go/internal/storage"
	"resume-parser-go/internal/storage/models"
	"resume-parser-go/internal/types"
)

// 解析请求的处理状态
const (
	StatusExtracted          = "EXTRACTED"            // 提取完成，未配置落库
	StatusExtractedAndStored = "EXTRACTED_AND_STORED" // 提取完成且已落库
	StatusDuplicateSkipped   = "DUPLICATE_TEXT_SKIPPED"
)

// ErrSubmissionNotFound 提交ID不存在
var ErrSubmissionNotFound = errors.New("提交记录不存在")

// ResumeHandler 简历解析处理器，协调提取、去重与落库
type ResumeHandler struct {
	storage   *storage.Storage
	extractor *processor.ResumeExtractor
}

// NewResumeHandler 创建简历解析处理器
// storage可为nil，去重和落库按降级路径关闭
func NewResumeHandler(storage *storage.Storage, extractor *processor.ResumeExtractor) *ResumeHandler {
	return &ResumeHandler{
		storage:   storage,
		extractor: extractor,
	}
}

// ResumeParseResponse 简历解析响应
type ResumeParseResponse struct {
	SubmissionID    string                           `json:"submission_id,omitempty"`
	Status          string                           `json:"status"`
	Record          *types.ResumeRecord              `json:"record,omitempty"`
	SkillCategories map[types.SkillCategory][]string `json:"skill_categories,omitempty"`
}

// HandleResumeParse 处理一份简历文件的完整解析流程
// PDF文件先过文本提取，其余按纯文本处理；
// 原文MD5重复的提交直接跳过，不触发提取
func (h *ResumeHandler) HandleResumeParse(ctx context.Context, fileBytes []byte, filename string) (*ResumeParseResponse, error) {
	rawText, err := h.extractor.ResolveText(ctx, fileBytes, filename)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("简历内容为空: %s", filename)
	}

	textMD5 := calculateMD5([]byte(rawText))

	// 去重基于提取后的正文而不是文件字节：同一份简历换个文件名或重新导出PDF仍会命中
	if h.storage != nil && h.storage.Redis != nil {
		fresh, err := h.storage.Redis.CheckAndRecordRawTextMD5(ctx, textMD5)
		if err != nil {
			logger.Warn().Err(err).Str("md5", textMD5).Msg("MD5去重检查失败，跳过去重继续处理")
		} else if !fresh {
			logger.Info().Str("md5", textMD5).Str("filename", filename).Msg("检测到重复的简历正文，跳过处理")
			return &ResumeParseResponse{Status: StatusDuplicateSkipped}, nil
		}
	}

	record, err := h.extractor.ExtractRecord(ctx, rawText, filename)
	if err != nil {
		return nil, fmt.Errorf("提取简历字段失败: %w", err)
	}

	response := &ResumeParseResponse{
		Status:          StatusExtracted,
		Record:          record,
		SkillCategories: parser.CategorizeSkills(record.Skills),
	}

	if h.storage != nil && h.storage.MySQL != nil {
		submissionID, err := h.storage.MySQL.SaveRecord(ctx, record, filename, textMD5)
		if err != nil {
			// 落库失败回滚去重登记，同一份简历的重试不会被误判为重复
			if h.storage.Redis != nil {
				if rmErr := h.storage.Redis.RemoveRawTextMD5(ctx, textMD5); rmErr != nil {
					logger.Warn().Err(rmErr).Str("md5", textMD5).Msg("回滚MD5登记失败")
				}
			}
			return nil, fmt.Errorf("保存解析结果失败: %w", err)
		}
		response.SubmissionID = submissionID
		response.Status = StatusExtractedAndStored
	}

	return response, nil
}

// BatchParseResult 批量解析中单个文件的结果
type BatchParseResult struct {
	Filename string              `json:"filename"`
	Record   *types.ResumeRecord `json:"record,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// HandleResumeParseBatch 并发解析一批纯文本简历
// 批量路径只做提取，去重和落库留给单份提交接口
func (h *ResumeHandler) HandleResumeParseBatch(ctx context.Context, items []processor.BatchItem) []BatchParseResult {
	results := h.extractor.ExtractBatch(ctx, items)
	out := make([]BatchParseResult, len(results))
	for i, r := range results {
		out[i] = BatchParseResult{Filename: r.Filename, Record: r.Record}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}

// HandleJobSkills 按岗位名返回建议技能表，岗位未配置时返回nil
func (h *ResumeHandler) HandleJobSkills(job string) []string {
	return h.extractor.SuggestSkillsForJob(job)
}

// HandleGetSubmission 按提交ID读取已落库的解析记录
func (h *ResumeHandler) HandleGetSubmission(ctx context.Context, submissionID string) (*models.ResumeSubmission, error) {
	if h.storage == nil || h.storage.MySQL == nil {
		return nil, fmt.Errorf("未配置记录存储，无法查询提交记录")
	}
	submission, err := h.storage.MySQL.GetSubmission(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("查询提交记录失败: %w", err)
	}
	return submission, nil
}

// HandleHealth 服务健康信息，附带标注引擎可用性
func (h *ResumeHandler) HandleHealth(ctx context.Context) map[string]string {
	return map[string]string{
		"status":    "ok",
		"annotator": h.extractor.AnnotatorStatus(ctx),
	}
}

// calculateMD5 计算字节流的MD5十六进制摘要
func calculateMD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
