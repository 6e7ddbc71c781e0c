// Package config 负责加载 srcmetrics 的配置文件。
// 支持 yaml/toml/json 三种格式，未找到配置文件时使用默认值。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config 是完整配置。
type Config struct {
	Scan    ScanConfig    `koanf:"scan"`
	Output  OutputConfig  `koanf:"output"`
	Columns ColumnsConfig `koanf:"columns"`
}

// ScanConfig 控制扫描并发度。
type ScanConfig struct {
	Workers int `koanf:"workers"`
}

// OutputConfig 控制输出格式。
type OutputConfig struct {
	Format   string `koanf:"format"` // table, json, yaml
	File     string `koanf:"file"`   // json/yaml 导出路径，为空则不导出
	Color    bool   `koanf:"color"`
	Progress bool   `koanf:"progress"`
}

// ColumnsConfig 控制表格中展示的列组，全部为 false 时展示全部列。
type ColumnsConfig struct {
	Lines    bool `koanf:"lines"`
	Words    bool `koanf:"words"`
	Chars    bool `koanf:"chars"`
	Source   bool `koanf:"source"`
	Comments bool `koanf:"comments"`
	Halstead bool `koanf:"halstead"`
}

// DefaultFileNames 是未指定 --config 时依次查找的文件名。
var DefaultFileNames = []string{
	".srcmetrics.yaml",
	".srcmetrics.yml",
	".srcmetrics.toml",
	".srcmetrics.json",
}

// Default 返回默认配置。
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
	}
}

// Load 从指定文件加载配置，文件中未出现的键保留默认值。
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault 在 dir 中按 DefaultFileNames 顺序查找配置文件。
// 找到文件但解析失败时返回错误，而不是静默回退到默认值。
func LoadOrDefault(dir string) (*Config, error) {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// Validate 检查配置取值。
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Output.Format)) {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q, allowed values: table, json, yaml", c.Output.Format)
	}
	if c.Scan.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}
	return nil
}
