package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
)

const defaultTenantID = "default_tenant"

// Redis 键值存储，承担原文MD5去重
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// FormatKey 格式化带租户占位符的Redis键
func (r *Redis) FormatKey(keyConstant string, parts ...string) string {
	base := strings.Replace(keyConstant, constants.TenantPlaceholder, defaultTenantID, 1)
	if len(parts) > 0 {
		return base + ":" + strings.Join(parts, ":")
	}
	return base
}

// NewRedisAdapter 建立Redis连接并注册追踪钩子
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis配置不能为空")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis地址未配置")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis连接检查失败: %w", err)
	}

	if err := redisotel.InstrumentTracing(client); err != nil {
		logger.Warn().Err(err).Msg("注册Redis追踪钩子失败，继续但不追踪")
	}

	logger.Info().Str("address", cfg.Address).Msg("Redis连接初始化完成")
	return &Redis{Client: client, config: cfg}, nil
}

// CheckAndRecordRawTextMD5 原子地检查并登记简历原文MD5
// 返回true表示MD5首次出现，false表示重复提交
func (r *Redis) CheckAndRecordRawTextMD5(ctx context.Context, md5Hex string) (bool, error) {
	key := r.FormatKey(constants.KeyRawTextMD5Set)
	added, err := r.Client.SAdd(ctx, key, md5Hex).Result()
	if err != nil {
		return false, fmt.Errorf("登记原文MD5失败: %w", err)
	}
	// 集合只在首个成员写入时设置过期，滚动续期会让去重窗口永不关闭
	if added > 0 {
		expire := time.Duration(r.config.MD5RecordExpireDays) * 24 * time.Hour
		if expire > 0 {
			r.Client.ExpireNX(ctx, key, expire)
		}
	}
	return added > 0, nil
}

// RemoveRawTextMD5 移除登记的MD5，落库失败后回滚去重状态用
func (r *Redis) RemoveRawTextMD5(ctx context.Context, md5Hex string) error {
	key := r.FormatKey(constants.KeyRawTextMD5Set)
	return r.Client.SRem(ctx, key, md5Hex).Err()
}

// Close 关闭连接
func (r *Redis) Close() error {
	return r.Client.Close()
}
