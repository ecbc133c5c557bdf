package storage

import (
	"fmt"
	"strings"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
)

// Storage 存储管理器，聚合所有存储相关依赖
// 单个组件初始化失败只降级对应能力，不阻断服务启动
type Storage struct {
	// 关系型数据库，保存解析结果
	MySQL *MySQL

	// 键值存储，原文MD5去重
	Redis *Redis
}

// NewStorage 按配置初始化存储组件
// 未配置的组件直接跳过；全部配置了但全部失败才返回错误
func NewStorage(cfg *config.Config) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	storage := &Storage{}
	var initErrors []string
	configured := 0

	if cfg.MySQL.DSN != "" {
		configured++
		mysql, err := NewMySQL(&cfg.MySQL)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化MySQL失败，记录落库能力降级")
			initErrors = append(initErrors, fmt.Sprintf("MySQL: %v", err))
		} else {
			storage.MySQL = mysql
		}
	} else {
		logger.Info().Msg("MySQL未配置，跳过初始化")
	}

	if cfg.Redis.Address != "" {
		configured++
		redis, err := NewRedisAdapter(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化Redis失败，重复提交检测能力降级")
			initErrors = append(initErrors, fmt.Sprintf("Redis: %v", err))
		} else {
			storage.Redis = redis
		}
	} else {
		logger.Info().Msg("Redis未配置，跳过初始化")
	}

	if configured > 0 && len(initErrors) == configured {
		return nil, fmt.Errorf("所有存储组件初始化失败: %s", strings.Join(initErrors, "; "))
	}
	return storage, nil
}

// Close 关闭所有连接
func (s *Storage) Close() {
	if s.MySQL != nil {
		if err := s.MySQL.Close(); err != nil {
			logger.Warn().Err(err).Msg("关闭MySQL连接失败")
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			logger.Warn().Err(err).Msg("关闭Redis连接失败")
		}
	}
}
