package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证YAML配置文件的加载与默认值合并
func TestLoadConfigFromFile(t *testing.T) {
	content := `
server:
  address: ":9000"
annotator:
  server_url: "http://localhost:9090"
  timeout_seconds: 10
redis:
  address: "localhost:6379"
  md5_record_expire_days: 7
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, "http://localhost:9090", cfg.Annotator.ServerURL)
	assert.Equal(t, 10, cfg.Annotator.TimeoutSeconds)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 7, cfg.Redis.MD5RecordExpireDays)
	// 未出现在文件中的字段保持默认
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "data/skills.csv", cfg.Keywords.SkillsCSV)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
}

// TestLoadConfigDefaults 验证找不到配置文件时回落到默认配置
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 30, cfg.Annotator.TimeoutSeconds)
	assert.Equal(t, 30, cfg.Redis.MD5RecordExpireDays)
	assert.Equal(t, 20, cfg.MySQL.MaxOpenConns)
}

// TestLoadConfigMissingFile 验证显式指定的文件缺失时报错
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

// TestLoadConfigEnvOverrides 验证环境变量覆盖敏感配置项
func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/resume")
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("ANNOTATOR_SERVER_URL", "http://annotator:9090")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "user:pass@tcp(localhost:3306)/resume", cfg.MySQL.DSN)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, "http://annotator:9090", cfg.Annotator.ServerURL)
}
