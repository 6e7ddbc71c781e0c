package languages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcmetrics/internal/model"
)

// analyzeText 是测试辅助函数，用指定后缀的画像分析一段文本。
func analyzeText(t *testing.T, ext string, content string) model.FileMetrics {
	t.Helper()

	profile, _ := NewRegistry().ProfileForFile("fixture" + ext)
	metrics, err := profile.Analyze(strings.NewReader(content))
	require.NoError(t, err)
	return metrics
}

func TestAnalyzeEmptyFile(t *testing.T) {
	metrics := analyzeText(t, ".c", "")

	assert.Equal(t, model.LineMetrics{}, metrics.Metrics)
	assert.Equal(t, model.HalsteadMetrics{}, metrics.Halstead)
	assert.Equal(t, "C", metrics.Language)
}

func TestAnalyzeJavaCommentOnly(t *testing.T) {
	metrics := analyzeText(t, ".java", "// comment only\n")

	assert.Equal(t, model.LineMetrics{Lines: 1, Words: 3, Chars: 16, Comment: 1}, metrics.Metrics)
	assert.Equal(t, model.HalsteadMetrics{}, metrics.Halstead)
}

func TestAnalyzeCTrailingComment(t *testing.T) {
	metrics := analyzeText(t, ".c", "int x = 5; // trailing")

	assert.Equal(t, int64(1), metrics.Metrics.Code)
	assert.Equal(t, int64(1), metrics.Metrics.Comment)
	assert.Equal(t, int64(1), metrics.Halstead.OperatorsUnique)
	assert.Equal(t, int64(1), metrics.Halstead.OperatorsTotal)
	assert.Equal(t, int64(2), metrics.Halstead.OperandsUnique)
	assert.Equal(t, int64(2), metrics.Halstead.OperandsTotal)
}

func TestAnalyzeBlockCommentSpanningLines(t *testing.T) {
	content := strings.Join([]string{
		"/* start",
		"middle",
		"end */",
	}, "\n")
	metrics := analyzeText(t, ".cpp", content)

	assert.Equal(t, int64(3), metrics.Metrics.Lines)
	assert.Equal(t, int64(3), metrics.Metrics.Comment)
	assert.Equal(t, int64(0), metrics.Metrics.Code)
	assert.Equal(t, model.HalsteadMetrics{}, metrics.Halstead)
}

func TestAnalyzeBlockCommentWithTrailingCode(t *testing.T) {
	content := strings.Join([]string{
		"/* start",
		"middle",
		"end */ foo = bar;",
	}, "\n")
	metrics := analyzeText(t, ".c", content)

	assert.Equal(t, int64(3), metrics.Metrics.Comment)
	assert.Equal(t, int64(1), metrics.Metrics.Code)

	h := metrics.Halstead
	assert.Equal(t, int64(1), h.OperatorsUnique)
	assert.Equal(t, int64(2), h.OperandsUnique)
	assert.Equal(t, int64(3), h.Vocabulary)
	assert.Equal(t, int64(3), h.Length)
	assert.Equal(t, int64(2), h.EstimatedLength)
	assert.Equal(t, int64(2), h.Volume)
	assert.Equal(t, int64(0), h.Difficulty)
	assert.Equal(t, int64(0), h.Bugs)
}

func TestAnalyzeCodeBeforeUnterminatedBlock(t *testing.T) {
	metrics := analyzeText(t, ".c", "int x = 1; /* start\n")

	// 同一行同时计入代码和注释。
	assert.Equal(t, int64(1), metrics.Metrics.Code)
	assert.Equal(t, int64(1), metrics.Metrics.Comment)
	// 行尾仍在块注释中，代码片段不参与分词。
	assert.Equal(t, model.HalsteadMetrics{}, metrics.Halstead)
}

func TestAnalyzeBlockStateResetsPerFile(t *testing.T) {
	first := analyzeText(t, ".c", "/* never closed\n")
	second := analyzeText(t, ".c", "a = b;\n")

	assert.Equal(t, int64(1), first.Metrics.Comment)
	assert.Equal(t, int64(1), second.Metrics.Code)
	assert.Equal(t, int64(0), second.Metrics.Comment)
}

func TestAnalyzeEmptyLinesAreNotClassified(t *testing.T) {
	metrics := analyzeText(t, ".h", "\n\nint a;\n")

	assert.Equal(t, model.LineMetrics{Lines: 3, Words: 2, Chars: 9, Code: 1}, metrics.Metrics)
	assert.Equal(t, int64(1), metrics.Halstead.OperandsTotal)
	assert.Equal(t, int64(0), metrics.Halstead.OperatorsTotal)
}

func TestAnalyzePlainTextFile(t *testing.T) {
	metrics := analyzeText(t, ".txt", "hello world\n// not a comment here\n")

	assert.Equal(t, "Text", metrics.Language)
	assert.Equal(t, model.LineMetrics{Lines: 2, Words: 7, Chars: 34}, metrics.Metrics)
	assert.Equal(t, model.HalsteadMetrics{}, metrics.Halstead)
}

func TestAnalyzeLineSeparators(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   int64
	}{
		{name: "lf", content: "a\nb\n", lines: 2},
		{name: "no trailing newline", content: "a\nb", lines: 2},
		{name: "crlf", content: "a\r\nb\r\n", lines: 2},
		{name: "lone cr", content: "a\rb", lines: 2},
		{name: "blank lines kept", content: "\n\n\n", lines: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := analyzeText(t, ".txt", tt.content)
			assert.Equal(t, tt.lines, metrics.Metrics.Lines)
		})
	}
}

func TestAnalyzeCountsRunes(t *testing.T) {
	metrics := analyzeText(t, ".txt", "héllo\n")
	assert.Equal(t, int64(6), metrics.Metrics.Chars)
}

func TestAnalyzeIdempotent(t *testing.T) {
	content := strings.Join([]string{
		"#include <stdio.h>",
		"/* entry point */",
		"int main(int argc, char **argv) {",
		"    int total = 0; // running sum",
		"    for (int i = 0; i < argc; i++) {",
		"        total += i;",
		"    }",
		"    return total > 0 ? 0 : 1;",
		"}",
	}, "\n")

	first := analyzeText(t, ".c", content)
	second := analyzeText(t, ".c", content)
	assert.Equal(t, first, second)

	h := first.Halstead
	assert.GreaterOrEqual(t, h.OperatorsTotal, h.OperatorsUnique)
	assert.GreaterOrEqual(t, h.OperandsTotal, h.OperandsUnique)
	assert.LessOrEqual(t, first.Metrics.Code, first.Metrics.Lines)
	assert.LessOrEqual(t, first.Metrics.Comment, first.Metrics.Lines)
}
