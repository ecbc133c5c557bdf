package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

// HTTPAnnotator 基于HTTP标注服务的标注引擎客户端
// 通用标注和技能标注可以指向不同的服务实例，各自独立降级
type HTTPAnnotator struct {
	// 标注服务地址，例如 http://localhost:8090
	ServerURL string
	// 技能标注服务地址，为空时复用ServerURL
	SkillServerURL string
	// HTTP客户端，可配置超时等参数
	Client *http.Client
}

// AnnotatorOption 定义配置选项函数
type AnnotatorOption func(*HTTPAnnotator)

// WithAnnotatorTimeout 配置HTTP客户端超时时间
func WithAnnotatorTimeout(timeout time.Duration) AnnotatorOption {
	return func(a *HTTPAnnotator) {
		a.Client.Timeout = timeout
	}
}

// WithSkillServerURL 配置独立的技能标注服务地址
func WithSkillServerURL(url string) AnnotatorOption {
	return func(a *HTTPAnnotator) {
		a.SkillServerURL = url
	}
}

// WithHTTPClient 配置自定义HTTP客户端
func WithHTTPClient(client *http.Client) AnnotatorOption {
	return func(a *HTTPAnnotator) {
		a.Client = client
	}
}

// 确保HTTPAnnotator同时实现两个标注接口
var (
	_ Annotator      = (*HTTPAnnotator)(nil)
	_ SkillAnnotator = (*HTTPAnnotator)(nil)
)

// NewHTTPAnnotator 创建标注服务客户端
func NewHTTPAnnotator(serverURL string, options ...AnnotatorOption) *HTTPAnnotator {
	annotator := &HTTPAnnotator{
		ServerURL: serverURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, option := range options {
		option(annotator)
	}
	if annotator.SkillServerURL == "" {
		annotator.SkillServerURL = serverURL
	}
	return annotator
}

// annotateRequest 标注请求体
type annotateRequest struct {
	Text string `json:"text"`
}

// skillResponse 技能标注响应体
type skillResponse struct {
	Entities []types.Entity `json:"entities"`
}

// Annotate 将文本提交给标注服务，返回标注文档
// 服务不可用、超时或响应异常都归为 ErrAnnotationUnavailable 分类
func (a *HTTPAnnotator) Annotate(ctx context.Context, text string) (*types.AnnotatedDocument, error) {
	start := time.Now()

	body, err := a.post(ctx, a.ServerURL+"/annotate", text)
	if err != nil {
		return nil, err
	}

	var doc types.AnnotatedDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, NewAnnotationError("annotate", fmt.Sprintf("解析响应失败: %v", err))
	}
	// 服务端不回传原文时补上，下游提取逻辑依赖RawText
	if doc.RawText == "" {
		doc.RawText = text
	}

	logger.Debug().
		Int("tokens", len(doc.Tokens)).
		Int("entities", len(doc.Entities)).
		Dur("duration", time.Since(start)).
		Msg("文本标注完成")
	return &doc, nil
}

// AnnotateSkills 将文本提交给技能标注服务，返回技能实体列表
func (a *HTTPAnnotator) AnnotateSkills(ctx context.Context, text string) ([]types.Entity, error) {
	body, err := a.post(ctx, a.SkillServerURL+"/skills", text)
	if err != nil {
		return nil, err
	}

	var resp skillResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewAnnotationError("annotate_skills", fmt.Sprintf("解析响应失败: %v", err))
	}
	return resp.Entities, nil
}

// Healthy 探活标注服务
func (a *HTTPAnnotator) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.ServerURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := a.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// post 提交标注请求并读取响应体
func (a *HTTPAnnotator) post(ctx context.Context, url, text string) ([]byte, error) {
	payload, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, NewAnnotationError("marshal_request", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, NewAnnotationError("build_request", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, NewAnnotationError("send_request", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAnnotationError("send_request", fmt.Sprintf("标注服务返回状态码: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewAnnotationError("read_response", err.Error())
	}
	return body, nil
}
