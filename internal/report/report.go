// Package report 提供 srcmetrics 的输出能力。
// 支持 table 控制台格式以及 JSON/YAML 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"srcmetrics/internal/model"
)

// Format 是输出格式。
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat 解析格式字符串（忽略大小写与首尾空白）。
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q, allowed values: table, json, yaml", value)
	}
}

// TableOptions 控制表格输出。
type TableOptions struct {
	Columns   Columns
	Colored   bool
	Languages bool
}

// PrintTable 使用表格展示扫描结果。
// 每个文件一行（输入顺序），多于一个文件时追加 total 行。
func PrintTable(writer io.Writer, result model.ScanResult, options TableOptions) error {
	columns := options.Columns.Normalize().selected()

	headers := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		headers = append(headers, col.name)
	}
	headers = append(headers, "filename")

	rows := make([][]string, 0, len(result.Files)+1)
	for _, file := range result.Files {
		rows = append(rows, renderRow(columns, row{
			name:     file.Path,
			metrics:  file.Metrics,
			halstead: file.Halstead,
		}))
	}
	if len(result.Files) > 1 {
		rows = append(rows, renderRow(columns, row{
			name:     "total",
			metrics:  result.Total.LineMetrics,
			halstead: result.Total.Halstead,
		}))
	}

	if err := renderTable(writer, headers, rows); err != nil {
		return err
	}

	if options.Languages && len(result.Languages) > 0 {
		return printLanguages(writer, result.Languages, options.Colored)
	}
	return nil
}

// printLanguages 输出语言级汇总表。
func printLanguages(writer io.Writer, items []model.LanguageMetrics, colored bool) error {
	printTitle(writer, "Languages", colored)

	headers := []string{"language", "files", "lines", "source", "comments", "volume", "effort"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Language,
			strconv.FormatInt(item.Files, 10),
			strconv.FormatInt(item.Metrics.Lines, 10),
			strconv.FormatInt(item.Metrics.Code, 10),
			strconv.FormatInt(item.Metrics.Comment, 10),
			strconv.FormatInt(item.Halstead.Volume, 10),
			strconv.FormatInt(item.Halstead.Effort, 10),
		})
	}
	return renderTable(writer, headers, rows)
}

func renderRow(columns []column, r row) []string {
	cells := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		cells = append(cells, col.cell(r))
	}
	return append(cells, r.name)
}

func printTitle(writer io.Writer, title string, colored bool) {
	fmt.Fprintln(writer)
	if colored {
		color.New(color.Bold, color.FgCyan).Fprintln(writer, title)
	} else {
		fmt.Fprintln(writer, title)
	}
}

// renderTable 使用无边框样式输出表格。
func renderTable(writer io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(writer,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignRight},
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignRight},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		}),
	)

	table.Header(headers)
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return fmt.Errorf("append table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := marshal(FormatJSON, result)
	if err != nil {
		return err
	}
	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// PrintYAML 把扫描结果按 YAML 输出到任意 writer。
func PrintYAML(writer io.Writer, result model.ScanResult) error {
	content, err := marshal(FormatYAML, result)
	if err != nil {
		return err
	}
	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return nil
}

// WriteFile 将 JSON/YAML 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteFile(path string, format Format, result model.ScanResult) error {
	content, err := marshal(format, result)
	if err != nil {
		return err
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}

func marshal(format Format, result model.ScanResult) ([]byte, error) {
	switch format {
	case FormatJSON:
		content, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(content, '\n'), nil
	case FormatYAML:
		content, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return content, nil
	default:
		return nil, fmt.Errorf("format %q cannot be exported", format)
	}
}
