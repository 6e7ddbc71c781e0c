// Package scanner 提供多文件扫描调度能力。
// 该层负责路径校验、任务分发、并发执行和结果聚合，不负责行/词法分类细节。
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"srcmetrics/internal/languages"
	applog "srcmetrics/internal/log"
	"srcmetrics/internal/model"
)

var (
	// ErrNoFiles 表示没有传入任何文件。
	ErrNoFiles = errors.New("no input files")
	// ErrFileNotFound 表示输入文件不存在，整次运行因此失败。
	ErrFileNotFound = errors.New("file not found")
	// ErrNotRegularFile 表示输入路径是目录或其它非普通文件。
	ErrNotRegularFile = errors.New("not a regular file")
)

// ProgressFunc 在每个文件处理完成后调用，可能被并发调用。
type ProgressFunc func()

// Service 是扫描服务对象。
type Service struct {
	registry   *languages.Registry
	workers    int
	logger     *slog.Logger
	onProgress ProgressFunc
}

// Option 定制 Service。
type Option func(*Service)

// WithLogger 指定日志器，默认使用 slog.Default()。
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress 指定进度回调。
func WithProgress(fn ProgressFunc) Option {
	return func(s *Service) {
		s.onProgress = fn
	}
}

// scanTask 表示一个待分析文件任务。
type scanTask struct {
	index   int
	path    string
	profile *languages.Profile
}

// NewService 创建扫描服务。
func NewService(registry *languages.Registry, workers int, opts ...Option) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	service := &Service{
		registry: registry,
		workers:  workers,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// ScanFiles 扫描给定的文件列表。
//
// 所有路径会先校验存在性，任何一个文件缺失都会让整次运行失败且不产生部分结果。
// 文件之间相互独立，按 workers 并发处理；结果按输入顺序返回。
func (s *Service) ScanFiles(ctx context.Context, paths []string) (model.ScanResult, error) {
	var result model.ScanResult

	tasks, err := s.buildTasks(paths)
	if err != nil {
		return result, err
	}

	files := make([]model.FileMetrics, len(tasks))

	p := pool.New().
		WithMaxGoroutines(s.workers).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for _, task := range tasks {
		p.Go(func(ctx context.Context) error {
			metrics, err := s.analyzeFile(ctx, task)
			if err != nil {
				return err
			}
			// 每个 goroutine 只写自己的下标，无需加锁。
			files[task.index] = metrics
			if s.onProgress != nil {
				s.onProgress()
			}
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return result, err
	}

	result.Files = files
	s.buildSummaries(&result)

	s.logger.DebugContext(ctx, "scan finished",
		slog.Int64("files", result.Total.Files),
		slog.Int64("lines", result.Total.Lines),
	)
	return result, nil
}

// buildTasks 校验输入路径并生成任务列表。
func (s *Service) buildTasks(paths []string) ([]scanTask, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	tasks := make([]scanTask, 0, len(paths))
	for idx, rawPath := range paths {
		path := strings.TrimSpace(rawPath)
		if path == "" {
			return nil, fmt.Errorf("%w: empty path at position %d", ErrFileNotFound, idx+1)
		}

		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
		}

		profile, _ := s.registry.ProfileForFile(path)
		tasks = append(tasks, scanTask{
			index:   idx,
			path:    path,
			profile: profile,
		})
	}
	return tasks, nil
}

// analyzeFile 执行真实的文件读取和分析。
func (s *Service) analyzeFile(ctx context.Context, task scanTask) (model.FileMetrics, error) {
	if err := ctx.Err(); err != nil {
		return model.FileMetrics{}, err
	}

	ctx = applog.ContextAttrs(ctx,
		slog.String("path", task.path),
		slog.String("language", task.profile.Name()),
	)

	file, err := os.Open(task.path)
	if err != nil {
		return model.FileMetrics{}, fmt.Errorf("open %s: %w", task.path, err)
	}
	defer file.Close()

	metrics, err := task.profile.Analyze(file)
	if err != nil {
		return model.FileMetrics{}, fmt.Errorf("analyze %s: %w", task.path, err)
	}

	metrics.Path = task.path
	metrics.Extension = languages.Extension(task.path)

	s.logger.DebugContext(ctx, "file analyzed",
		slog.Int64("lines", metrics.Metrics.Lines),
		slog.Int64("code", metrics.Metrics.Code),
		slog.Int64("comment", metrics.Metrics.Comment),
	)
	return metrics, nil
}

// buildSummaries 计算语言级汇总和总计信息。
// Files 保持输入顺序，不在这里排序。
func (s *Service) buildSummaries(result *model.ScanResult) {
	byLanguage := make(map[string]*model.LanguageMetrics)
	result.Total = model.TotalMetrics{}

	for _, item := range result.Files {
		result.Total.AddFileMetrics(item)

		summary, ok := byLanguage[item.Language]
		if !ok {
			summary = &model.LanguageMetrics{
				Language:   item.Language,
				Extensions: s.registry.ExtensionsForLanguage(item.Language),
			}
			byLanguage[item.Language] = summary
		}
		summary.Add(item)
	}

	result.Languages = make([]model.LanguageMetrics, 0, len(byLanguage))
	for _, item := range byLanguage {
		result.Languages = append(result.Languages, *item)
	}

	sort.Slice(result.Languages, func(i int, j int) bool {
		return result.Languages[i].Language < result.Languages[j].Language
	})
}
