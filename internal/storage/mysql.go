package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/processor"
	"resume-parser-go/internal/storage/models"
	"resume-parser-go/internal/types"
)

var mysqlTracer = otel.Tracer("resume-parser-go/storage/mysql")

// 落库实现必须满足提取侧定义的持久化契约
var _ processor.RecordStore = (*MySQL)(nil)

// MySQL 关系型存储，保存解析结果记录
type MySQL struct {
	db *gorm.DB
}

// NewMySQL 建立MySQL连接并迁移表结构
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil || cfg.DSN == "" {
		return nil, fmt.Errorf("MySQL DSN未配置")
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接池失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := db.AutoMigrate(&models.ResumeSubmission{}); err != nil {
		return nil, fmt.Errorf("迁移表结构失败: %w", err)
	}

	logger.Info().Msg("MySQL连接初始化完成")
	return &MySQL{db: db}, nil
}

// SaveRecord 保存一条提取结果，返回UUIDv7提交ID
// 时间有序的提交ID让记录天然按提交顺序聚簇
func (m *MySQL) SaveRecord(ctx context.Context, record *types.ResumeRecord, sourceFilename, rawTextMD5 string) (string, error) {
	ctx, span := mysqlTracer.Start(ctx, "MySQL.SaveRecord",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("resume.filename", sourceFilename)),
	)
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		span.SetStatus(codes.Error, "generate id failed")
		return "", fmt.Errorf("生成提交ID失败: %w", err)
	}

	submission, err := submissionFromRecord(record, id.String(), sourceFilename, rawTextMD5)
	if err != nil {
		span.SetStatus(codes.Error, "serialize failed")
		return "", err
	}

	if err := m.db.WithContext(ctx).Create(submission).Error; err != nil {
		span.SetStatus(codes.Error, "insert failed")
		return "", fmt.Errorf("保存提取结果失败: %w", err)
	}
	return id.String(), nil
}

// GetSubmission 按提交ID读取记录
func (m *MySQL) GetSubmission(ctx context.Context, submissionID string) (*models.ResumeSubmission, error) {
	var submission models.ResumeSubmission
	err := m.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// Close 关闭连接池
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// submissionFromRecord 领域记录转数据库模型
func submissionFromRecord(record *types.ResumeRecord, submissionID, sourceFilename, rawTextMD5 string) (*models.ResumeSubmission, error) {
	institutions, err := json.Marshal(record.Institutions)
	if err != nil {
		return nil, fmt.Errorf("序列化院校列表失败: %w", err)
	}
	skills, err := json.Marshal(record.Skills)
	if err != nil {
		return nil, fmt.Errorf("序列化技能列表失败: %w", err)
	}
	categories, err := json.Marshal(parser.CategorizeSkills(record.Skills))
	if err != nil {
		return nil, fmt.Errorf("序列化技能分类失败: %w", err)
	}

	return &models.ResumeSubmission{
		SubmissionID:      submissionID,
		SourceFilename:    sourceFilename,
		RawTextMD5:        rawTextMD5,
		FirstName:         record.FirstName,
		LastName:          record.LastName,
		Email:             record.Email,
		Phone:             record.Phone,
		DegreeMajor:       record.DegreeMajor,
		Institutions:      institutions,
		Skills:            skills,
		SkillCategories:   categories,
		ExperienceLevel:   string(record.ExperienceLevel),
		SuggestedPosition: record.SuggestedPosition,
		CompletenessScore: record.CompletenessScore,
		ParserVersion:     constants.ParserVersion,
	}, nil
}
