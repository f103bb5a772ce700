// Package config loads ocr-shim settings from defaults, an optional config
// file and OCRSHIM_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ocr-shim/internal/ocr"
)

type Config struct {
	Engine      string          `mapstructure:"engine"`
	Lang        string          `mapstructure:"lang"`
	UseAngleCls bool            `mapstructure:"use_angle_cls"`
	LogLevel    string          `mapstructure:"log_level"`
	Tesseract   TesseractConfig `mapstructure:"tesseract"`
	Ollama      OllamaConfig    `mapstructure:"ollama"`
}

type TesseractConfig struct {
	PageSegMode int    `mapstructure:"page_seg_mode"`
	Whitelist   string `mapstructure:"whitelist"`
}

type OllamaConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads the configuration. An empty configPath searches for
// ocr-shim.yaml in the working directory and $HOME/.config/ocr-shim; a
// missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("engine", "tesseract")
	v.SetDefault("lang", "en")
	v.SetDefault("use_angle_cls", true)
	v.SetDefault("log_level", "")
	v.SetDefault("tesseract.page_seg_mode", 0)
	v.SetDefault("tesseract.whitelist", "")
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.2-vision")
	v.SetDefault("ollama.timeout", "2m")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("ocr-shim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ocr-shim")
	}

	v.SetEnvPrefix("OCRSHIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Engine {
	case "tesseract", "gosseract", "ollama":
	default:
		return fmt.Errorf("engine must be tesseract or ollama, got %q", c.Engine)
	}
	if c.Lang == "" {
		return fmt.Errorf("lang is required")
	}
	if c.Tesseract.PageSegMode < 0 || c.Tesseract.PageSegMode > 13 {
		return fmt.Errorf("tesseract.page_seg_mode must be between 0 and 13")
	}
	if c.Ollama.Timeout < 0 {
		return fmt.Errorf("ollama.timeout must not be negative")
	}
	return nil
}

// EngineOptions translates the configuration into engine construction options.
func (c *Config) EngineOptions() ocr.Options {
	return ocr.Options{
		Lang:        c.Lang,
		UseAngleCls: c.UseAngleCls,
		PageSegMode: c.Tesseract.PageSegMode,
		Whitelist:   c.Tesseract.Whitelist,
		BaseURL:     c.Ollama.BaseURL,
		Model:       c.Ollama.Model,
		Timeout:     c.Ollama.Timeout,
	}
}
