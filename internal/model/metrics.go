// Package model 定义 srcmetrics 的核心数据模型。
// 这些结构会被分析器、扫描器、输出层和命令层共同使用。
package model

// LineMetrics 表示一组文本级统计值。
//
// 注意：
// - Lines/Words/Chars 对任何文件都统计
// - Code/Comment 只对可识别的源码后缀统计
// - Code/Comment 可以在同一行同时 +1（例如: int x = 1; /* start）
type LineMetrics struct {
	Lines   int64 `json:"lines" yaml:"lines"`
	Words   int64 `json:"words" yaml:"words"`
	Chars   int64 `json:"chars" yaml:"chars"`
	Code    int64 `json:"code" yaml:"code"`
	Comment int64 `json:"comment" yaml:"comment"`
}

// Add 将另一个统计结果叠加到当前对象。
func (m *LineMetrics) Add(other LineMetrics) {
	m.Lines += other.Lines
	m.Words += other.Words
	m.Chars += other.Chars
	m.Code += other.Code
	m.Comment += other.Comment
}

// FileMetrics 表示单文件扫描结果。
// 文件扫描结束后即不再修改。
type FileMetrics struct {
	Path      string          `json:"path" yaml:"path"`
	Language  string          `json:"language" yaml:"language"`
	Extension string          `json:"extension" yaml:"extension"`
	Metrics   LineMetrics     `json:"metrics" yaml:"metrics"`
	Halstead  HalsteadMetrics `json:"halstead" yaml:"halstead"`
}

// LanguageMetrics 表示某个语言的聚合结果。
type LanguageMetrics struct {
	Language   string          `json:"language" yaml:"language"`
	Extensions []string        `json:"extensions" yaml:"extensions"`
	Files      int64           `json:"files" yaml:"files"`
	Metrics    LineMetrics     `json:"metrics" yaml:"metrics"`
	Halstead   HalsteadMetrics `json:"halstead" yaml:"halstead"`
}

// Add 累加一个文件的统计值到语言汇总中。
func (m *LanguageMetrics) Add(file FileMetrics) {
	m.Files++
	m.Metrics.Add(file.Metrics)
	m.Halstead.Add(file.Halstead)
}

// TotalMetrics 表示本次运行的总计信息。
// Halstead 派生值同样是逐文件求和，而不是基于全局合并后的集合重新计算。
type TotalMetrics struct {
	Files int64 `json:"files" yaml:"files"`
	LineMetrics `yaml:",inline"`
	Halstead    HalsteadMetrics `json:"halstead" yaml:"halstead"`
}

// AddFileMetrics 累加一个文件的统计值到总计中。
func (m *TotalMetrics) AddFileMetrics(file FileMetrics) {
	m.Files++
	m.LineMetrics.Add(file.Metrics)
	m.Halstead.Add(file.Halstead)
}

// ScanResult 是 scan 命令的完整输出模型。
// Files 保持输入顺序，Languages 按语言名排序。
type ScanResult struct {
	Files     []FileMetrics     `json:"files" yaml:"files"`
	Languages []LanguageMetrics `json:"languages" yaml:"languages"`
	Total     TotalMetrics      `json:"total" yaml:"total"`
}
