package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"resume-parser-go/internal/logger"
)

// MySQLConfig MySQL连接配置
type MySQLConfig struct {
	DSN string `yaml:"dsn"` // 留空则禁用记录落库
	// 连接池设置
	MaxIdleConns    int `yaml:"max_idle_conns"`
	MaxOpenConns    int `yaml:"max_open_conns"`
	ConnMaxLifetime int `yaml:"conn_max_lifetime_minutes"` // 连接最大生命周期(分钟)
}

// RedisConfig Redis连接配置
type RedisConfig struct {
	Address  string `yaml:"address"` // 留空则禁用MD5去重
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// 连接池设置
	PoolSize     int `yaml:"pool_size"`
	MinIdleConns int `yaml:"min_idle_conns"`
	// 超时设置
	DialTimeoutSeconds  int `yaml:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
	// MD5记录过期时间(天)
	MD5RecordExpireDays int `yaml:"md5_record_expire_days"`
}

// AnnotatorConfig 外部NLP标注服务配置
type AnnotatorConfig struct {
	ServerURL      string `yaml:"server_url"` // 例如 http://localhost:9090
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	// 可选的二级技能标注服务，留空则仅用关键词表提取技能
	SkillServerURL string `yaml:"skill_server_url"`
}

// KeywordsConfig 关键词表文件路径配置
type KeywordsConfig struct {
	SkillsCSV          string `yaml:"skills_csv"`
	MajorsCSV          string `yaml:"majors_csv"`
	PositionsCSV       string `yaml:"positions_csv"`
	SuggestedSkillsCSV string `yaml:"suggested_skills_csv"`
}

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Address string `yaml:"address"` // 监听地址，如 :8080
}

// TracingConfig OpenTelemetry追踪配置
type TracingConfig struct {
	Enabled      bool   `yaml:"enabled"`
	OTLPEndpoint string `yaml:"otlp_endpoint"` // OTLP gRPC收集器地址
}

// Config 应用程序配置
type Config struct {
	Logger    logger.Config   `yaml:"logger"`
	Server    ServerConfig    `yaml:"server"`
	Annotator AnnotatorConfig `yaml:"annotator"`
	Keywords  KeywordsConfig  `yaml:"keywords"`
	MySQL     MySQLConfig     `yaml:"mysql"`
	Redis     RedisConfig     `yaml:"redis"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// LoadConfig 加载配置文件
// configPath为空时依次尝试常见位置，找不到则使用默认配置
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		candidates := []string{
			"config.yaml",
			"internal/config/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-parser", "config.yaml"),
		}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				configPath = candidate
				break
			}
		}
	}

	config := defaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败 %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("解析配置文件失败 %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(config)
	return config, nil
}

// defaultConfig 返回默认配置
func defaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			Address: ":8080",
		},
		Annotator: AnnotatorConfig{
			TimeoutSeconds: 30,
		},
		Keywords: KeywordsConfig{
			SkillsCSV:          "data/skills.csv",
			MajorsCSV:          "data/majors.csv",
			PositionsCSV:       "data/positions.csv",
			SuggestedSkillsCSV: "data/suggested_skills.csv",
		},
		Redis: RedisConfig{
			PoolSize:            10,
			DialTimeoutSeconds:  5,
			ReadTimeoutSeconds:  3,
			WriteTimeoutSeconds: 3,
			MD5RecordExpireDays: 30,
		},
		MySQL: MySQLConfig{
			MaxIdleConns:    5,
			MaxOpenConns:    20,
			ConnMaxLifetime: 30,
		},
	}
}

// applyEnvOverrides 用环境变量覆盖敏感配置项
func applyEnvOverrides(config *Config) {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		config.MySQL.DSN = dsn
	}
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		config.Redis.Address = addr
	}
	if pwd := os.Getenv("REDIS_PASSWORD"); pwd != "" {
		config.Redis.Password = pwd
	}
	if url := os.Getenv("ANNOTATOR_SERVER_URL"); url != "" {
		config.Annotator.ServerURL = url
	}
}
