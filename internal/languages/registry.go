package languages

import (
	"io"
	"path/filepath"
	"sort"
	"strings"

	"srcmetrics/internal/model"
)

// Analyzer 定义单文件分析器接口。
type Analyzer interface {
	// Name 返回语言名称（例如 C、Java）。
	Name() string
	// Extensions 返回该语言支持的后缀列表（包含点号，如 .c）。
	Extensions() []string
	// Analyze 读取完整文件内容并输出统计结果。
	Analyze(reader io.Reader) (model.FileMetrics, error)
}

// PlainTextName 是不可识别后缀使用的语言名称。
const PlainTextName = "Text"

// Profile 是一种语言的只读画像：后缀列表和两张关键字表。
// 画像在注册时构建一次，之后只读，可被多个 goroutine 共享。
type Profile struct {
	name              string
	extensions        []string
	classify          bool
	includedOperators map[string]struct{}
	excludedOperands  map[string]struct{}
}

// newProfile 构建一个参与代码/注释分类的语言画像。
func newProfile(name string, extensions []string, includedOperators []string, excludedOperands []string) *Profile {
	return &Profile{
		name:              name,
		extensions:        extensions,
		classify:          true,
		includedOperators: toSet(includedOperators),
		excludedOperands:  toSet(excludedOperands),
	}
}

// newPlainTextProfile 构建纯文本画像：只统计行/词/字符，关键字表为空。
func newPlainTextProfile() *Profile {
	return &Profile{
		name:              PlainTextName,
		includedOperators: map[string]struct{}{},
		excludedOperands:  map[string]struct{}{},
	}
}

// Name 返回语言名称。
func (p *Profile) Name() string {
	return p.name
}

// Extensions 返回后缀列表副本。
func (p *Profile) Extensions() []string {
	return append([]string(nil), p.extensions...)
}

// Classifies 表示该画像是否执行代码/注释分类与 Halstead 统计。
func (p *Profile) Classifies() bool {
	return p.classify
}

// IsOperatorKeyword 判断保留字是否按操作符计数。
func (p *Profile) IsOperatorKeyword(token string) bool {
	_, ok := p.includedOperators[token]
	return ok
}

// IsExcludedOperand 判断保留字是否永远不计为操作数。
func (p *Profile) IsExcludedOperand(token string) bool {
	_, ok := p.excludedOperands[token]
	return ok
}

// Analyze 对单个文件执行一次完整扫描。
func (p *Profile) Analyze(reader io.Reader) (model.FileMetrics, error) {
	return analyze(reader, p)
}

// LanguageDescriptor 用于对外展示语言及后缀信息。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
}

// Registry 管理语言画像注册与后缀映射。
type Registry struct {
	profiles     []*Profile
	profileByExt map[string]*Profile
	plainText    *Profile
}

// NewRegistry 创建并注册所有内置语言画像。
func NewRegistry() *Registry {
	profiles := builtinProfiles()

	registry := &Registry{
		profiles:     profiles,
		profileByExt: make(map[string]*Profile),
		plainText:    newPlainTextProfile(),
	}

	for _, profile := range profiles {
		for _, ext := range profile.extensions {
			registry.profileByExt[ext] = profile
		}
	}

	return registry
}

// ProfileForFile 根据文件后缀查找语言画像。
// 后缀区分大小写；不可识别的后缀返回纯文本画像，第二个返回值为 false。
func (r *Registry) ProfileForFile(path string) (*Profile, bool) {
	profile, ok := r.profileByExt[Extension(path)]
	if !ok {
		return r.plainText, false
	}
	return profile, true
}

// Languages 返回已注册语言清单。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.profiles))
	for _, profile := range r.profiles {
		extensions := profile.Extensions()
		sort.Strings(extensions)
		result = append(result, LanguageDescriptor{
			Name:       profile.Name(),
			Extensions: extensions,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// ExtensionsForLanguage 返回指定语言对应的全部后缀。
func (r *Registry) ExtensionsForLanguage(language string) []string {
	for _, profile := range r.profiles {
		if profile.Name() == language {
			extensions := profile.Extensions()
			sort.Strings(extensions)
			return extensions
		}
	}
	return nil
}

// Extension 返回文件名最后一个点号之后的部分（含点号）。
// 文件名中没有点号时返回空串。
func Extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return ""
	}
	return base[idx:]
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
