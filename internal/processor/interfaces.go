package processor

import (
	"context"

	"resume-parser-go/internal/types"
)

// RecordStore 提取结果的持久化接口
// 存储不可用时实现方应返回错误而不是panic，调用方决定是否降级
type RecordStore interface {
	// SaveRecord 保存一条提取结果，返回生成的提交ID
	SaveRecord(ctx context.Context, record *types.ResumeRecord, sourceFilename, rawTextMD5 string) (string, error)
}
