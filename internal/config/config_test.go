package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocr-shim/internal/ocr"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ocr-shim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "tesseract", cfg.Engine)
	assert.Equal(t, "en", cfg.Lang)
	assert.True(t, cfg.UseAngleCls)
	assert.Equal(t, 2*time.Minute, cfg.Ollama.Timeout)
	assert.Equal(t, ocr.Options{
		Lang:        "en",
		UseAngleCls: true,
		BaseURL:     "http://localhost:11434",
		Model:       "llama3.2-vision",
		Timeout:     2 * time.Minute,
	}, cfg.EngineOptions())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
engine: ollama
lang: fr
use_angle_cls: false
ollama:
  model: llava
  timeout: 30s
tesseract:
  page_seg_mode: 6
`)
	t.Setenv("OCRSHIM_OLLAMA_BASE_URL", "http://gpu-box:11434")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Engine)
	assert.Equal(t, "fr", cfg.Lang)
	assert.False(t, cfg.UseAngleCls)
	assert.Equal(t, "llava", cfg.Ollama.Model)
	assert.Equal(t, 30*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, "http://gpu-box:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, 6, cfg.Tesseract.PageSegMode)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := Config{Engine: "tesseract", Lang: "en"}
	require.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown engine", mutate: func(c *Config) { c.Engine = "paddle" }},
		{name: "empty lang", mutate: func(c *Config) { c.Lang = "" }},
		{name: "bad psm", mutate: func(c *Config) { c.Tesseract.PageSegMode = 14 }},
		{name: "negative timeout", mutate: func(c *Config) { c.Ollama.Timeout = -time.Second }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
