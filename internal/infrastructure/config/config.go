package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖；
// 客户端必须能在没有任何配置文件的情况下以默认值运行
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Client ClientConfig `mapstructure:"client"`
}

type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`   // 后端API根地址（含/api/v1前缀）
	Timeout   time.Duration `mapstructure:"timeout"`    // 单次请求超时
	TokenFile string        `mapstructure:"token_file"` // Token持久化文件路径（空则使用默认位置）
}

type ClientConfig struct {
	Mode string `mapstructure:"mode"` // normal | verbose
}

// TokenPath 返回Token持久化文件的最终路径
// 规则：配置了token_file则直接使用，否则落在用户配置目录下
// （如~/.config/bookshop/token），与浏览器localStorage的定位等价
func (c *Config) TokenPath() (string, error) {
	if c.API.TokenFile != "" {
		return c.API.TokenFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "bookshop", "token"), nil
}

// Load 加载配置
// 支持：
// 1. 默认加载./config/config.yaml或./config.yaml（可缺省）
// 2. 环境变量覆盖（如BOOKSHOP_API_BASE_URL）
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile 从指定路径加载配置（path为空时走默认搜索路径）
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	// 默认值：指向本地开发后端
	v.SetDefault("api.base_url", "http://127.0.0.1:8000/api/v1")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("api.token_file", "")
	v.SetDefault("client.mode", "normal")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")

		// 配置文件缺省是合法的，其他读取错误照常上报
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	// 环境变量绑定（自动转换，如BOOKSHOP_API_BASE_URL → api.base_url）
	v.SetEnvPrefix("BOOKSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if !strings.HasPrefix(cfg.API.BaseURL, "http://") && !strings.HasPrefix(cfg.API.BaseURL, "https://") {
		return fmt.Errorf("invalid api.base_url: %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive: %s", cfg.API.Timeout)
	}
	return nil
}
