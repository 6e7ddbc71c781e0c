package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcmetrics/internal/languages"
)

// writeFixtureFile 是测试辅助函数，用于在临时目录快速落地测试文件。
func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestScanSingleFile 验证单文件扫描结果。
func TestScanSingleFile(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "single.c")

	writeFixtureFile(t, filePath, strings.Join([]string{
		"/* header",
		"   comment */",
		"int x = 5; // trailing",
		"",
		"x++;",
	}, "\n"))

	service := NewService(languages.NewRegistry(), 2)
	result, err := service.ScanFiles(context.Background(), []string{filePath})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	file := result.Files[0]
	assert.Equal(t, filePath, file.Path)
	assert.Equal(t, "C", file.Language)
	assert.Equal(t, ".c", file.Extension)
	assert.Equal(t, int64(5), file.Metrics.Lines)
	assert.Equal(t, int64(2), file.Metrics.Code)
	assert.Equal(t, int64(3), file.Metrics.Comment)

	assert.Equal(t, int64(1), result.Total.Files)
	assert.Equal(t, file.Metrics, result.Total.LineMetrics)
	assert.Equal(t, file.Halstead, result.Total.Halstead)
}

// TestScanPreservesInputOrder 验证结果顺序与输入顺序一致。
func TestScanPreservesInputOrder(t *testing.T) {
	tempDir := t.TempDir()

	names := []string{"z.java", "a.c", "m.txt", "b.hpp", "k.h"}
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(tempDir, name)
		writeFixtureFile(t, path, "a = b + c; // "+name+"\n")
		paths = append(paths, path)
	}

	service := NewService(languages.NewRegistry(), 4)
	result, err := service.ScanFiles(context.Background(), paths)
	require.NoError(t, err)

	require.Len(t, result.Files, len(paths))
	for i, file := range result.Files {
		assert.Equal(t, paths[i], file.Path)
	}

	assert.Equal(t, int64(5), result.Total.Files)
	assert.Equal(t, int64(5), result.Total.Lines)
	// 纯文本文件不参与代码/注释统计。
	assert.Equal(t, int64(4), result.Total.Code)
	assert.Equal(t, int64(4), result.Total.Comment)

	languageNames := make([]string, 0, len(result.Languages))
	for _, item := range result.Languages {
		languageNames = append(languageNames, item.Language)
	}
	assert.Equal(t, []string{"C", "C++", "Java", "Text"}, languageNames)
	assert.Equal(t, int64(2), result.Languages[0].Files)
	assert.Equal(t, []string{".c", ".h"}, result.Languages[0].Extensions)
}

// TestScanTotalsAreFieldWiseSums 验证总计是逐文件求和。
func TestScanTotalsAreFieldWiseSums(t *testing.T) {
	tempDir := t.TempDir()
	first := filepath.Join(tempDir, "one.c")
	second := filepath.Join(tempDir, "two.c")
	writeFixtureFile(t, first, "if (a >= b) return a;\n")
	writeFixtureFile(t, second, "while (i < n) { sum += i; i++; }\n")

	service := NewService(languages.NewRegistry(), 2)
	result, err := service.ScanFiles(context.Background(), []string{first, second})
	require.NoError(t, err)

	a, b := result.Files[0].Halstead, result.Files[1].Halstead
	total := result.Total.Halstead
	assert.Equal(t, a.OperatorsUnique+b.OperatorsUnique, total.OperatorsUnique)
	assert.Equal(t, a.Volume+b.Volume, total.Volume)
	assert.Equal(t, a.Difficulty+b.Difficulty, total.Difficulty)
	assert.Equal(t, a.Effort+b.Effort, total.Effort)
}

// TestScanMissingFileIsFatal 验证缺失文件会让整次运行失败。
func TestScanMissingFileIsFatal(t *testing.T) {
	tempDir := t.TempDir()
	existing := filepath.Join(tempDir, "ok.c")
	writeFixtureFile(t, existing, "int a;\n")

	service := NewService(languages.NewRegistry(), 1)
	result, err := service.ScanFiles(context.Background(), []string{existing, filepath.Join(tempDir, "missing.c")})

	require.ErrorIs(t, err, ErrFileNotFound)
	assert.Contains(t, err.Error(), "missing.c")
	assert.Empty(t, result.Files)
}

// TestScanRejectsDirectory 验证目录参数会被拒绝。
func TestScanRejectsDirectory(t *testing.T) {
	service := NewService(languages.NewRegistry(), 1)
	_, err := service.ScanFiles(context.Background(), []string{t.TempDir()})
	require.ErrorIs(t, err, ErrNotRegularFile)
}

// TestScanNoFiles 验证空输入。
func TestScanNoFiles(t *testing.T) {
	service := NewService(languages.NewRegistry(), 1)
	_, err := service.ScanFiles(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoFiles)
}

// TestScanCanceledContext 验证取消的 context 会终止扫描。
func TestScanCanceledContext(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "a.c")
	writeFixtureFile(t, filePath, "int a;\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := NewService(languages.NewRegistry(), 1)
	_, err := service.ScanFiles(ctx, []string{filePath})
	require.ErrorIs(t, err, context.Canceled)
}

// TestScanProgressCallback 验证每个文件都会回调一次进度。
func TestScanProgressCallback(t *testing.T) {
	tempDir := t.TempDir()
	paths := make([]string, 0, 6)
	for _, name := range []string{"a.c", "b.c", "c.c", "d.c", "e.c", "f.c"} {
		path := filepath.Join(tempDir, name)
		writeFixtureFile(t, path, "x = 1;\n")
		paths = append(paths, path)
	}

	var ticks atomic.Int64
	service := NewService(languages.NewRegistry(), 3, WithProgress(func() { ticks.Add(1) }))
	_, err := service.ScanFiles(context.Background(), paths)
	require.NoError(t, err)
	assert.Equal(t, int64(len(paths)), ticks.Load())
}

// TestScanEmptyFile 验证空文件所有统计为 0。
func TestScanEmptyFile(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "empty.java")
	writeFixtureFile(t, filePath, "")

	service := NewService(languages.NewRegistry(), 1)
	result, err := service.ScanFiles(context.Background(), []string{filePath})
	require.NoError(t, err)

	assert.Zero(t, result.Files[0].Metrics)
	assert.Zero(t, result.Files[0].Halstead)
}
