package llm

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 环境变量名
const (
	EnvAPIKey  = "CHAT402_API_KEY"
	EnvAPIURL  = "CHAT402_API_URL"
	EnvModel   = "CHAT402_MODEL"
	EnvTimeout = "CHAT402_TIMEOUT"
)

// Config 包含了创建客户端和执行一次Chat调用所需的所有配置。
type Config struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	APIURL   string        `yaml:"api_url"`
	Timeout  time.Duration `yaml:"timeout"`

	// APIKey 只从环境变量（或 .env）读取，不写进配置文件。
	APIKey string `yaml:"-"`
	// Logger 为空时客户端不输出日志。
	Logger *log.Logger `yaml:"-"`
}

// LoadConfig 读取配置，优先级从低到高：YAML 文件、.env 文件、进程环境变量。
// path 为空时跳过 YAML 文件。
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	// .env 不存在时忽略；已存在的环境变量不会被覆盖
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	cfg.APIKey = os.Getenv(EnvAPIKey)
	cfg.APIURL = getEnv(EnvAPIURL, cfg.APIURL)
	cfg.Model = getEnv(EnvModel, cfg.Model)
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
