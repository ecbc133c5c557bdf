package parser

import (
	"errors"
	"fmt"
)

// 提取过程的错误分类
// 这里没有致命错误：每类错误都对应一条降级路径，部分结果永远比失败记录有用
var (
	// ErrDataSourceMissing 关键词文件缺失或不可读，对应表降级为空表
	ErrDataSourceMissing = errors.New("关键词数据源缺失")
	// ErrAnnotationUnavailable 标注引擎不可用，提取走弱降级链路
	ErrAnnotationUnavailable = errors.New("标注引擎不可用")
	// ErrValidationRejected 候选结果未通过交叉校验，被丢弃并触发下一个降级策略
	ErrValidationRejected = errors.New("候选结果校验未通过")
)

// ExtractError 带操作上下文的提取错误
type ExtractError struct {
	Op      string // 操作名，如 load_keywords
	BaseErr error  // 基础错误分类
	Detail  string // 细节信息
}

func (e *ExtractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s): %s", e.BaseErr, e.Op, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s)", e.BaseErr, e.Op)
}

func (e *ExtractError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 以支持错误分类比较
func (e *ExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewDataSourceError 构造数据源缺失错误
func NewDataSourceError(op, detail string) error {
	return &ExtractError{Op: op, BaseErr: ErrDataSourceMissing, Detail: detail}
}

// NewAnnotationError 构造标注不可用错误
func NewAnnotationError(op, detail string) error {
	return &ExtractError{Op: op, BaseErr: ErrAnnotationUnavailable, Detail: detail}
}
