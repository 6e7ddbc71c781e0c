package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"srcmetrics/internal/config"
	"srcmetrics/internal/languages"
	"srcmetrics/internal/progress"
	"srcmetrics/internal/report"
	"srcmetrics/internal/scanner"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	format    string
	output    string
	workers   int
	noColor   bool
	progress  bool
	languages bool
	columns   report.Columns
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	srcmetrics scan main.c util.h
//	srcmetrics scan -l -s -H src/App.java
//	srcmetrics scan a.c b.c --format json --output result.json
func newScanCmd(registry *languages.Registry, global *globalOptions) *cobra.Command {
	options := scanOptions{}

	scanCmd := &cobra.Command{
		Use:   "scan <file>...",
		Short: "统计一个或多个文件的文本度量与 Halstead 指标",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global.configPath)
			if err != nil {
				return err
			}
			applyScanFlags(cmd, cfg, options)
			if err := cfg.Validate(); err != nil {
				return err
			}

			format, err := report.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}

			serviceOptions := []scanner.Option{scanner.WithLogger(slog.Default())}
			if cfg.Output.Progress && len(args) > 1 {
				tracker := progress.NewTracker("Analyzing", len(args))
				defer tracker.Finish()
				serviceOptions = append(serviceOptions, scanner.WithProgress(tracker.Tick))
			}

			service := scanner.NewService(registry, cfg.Scan.Workers, serviceOptions...)
			result, err := service.ScanFiles(cmd.Context(), args)
			if err != nil {
				return err
			}

			switch format {
			case report.FormatTable:
				return report.PrintTable(cmd.OutOrStdout(), result, report.TableOptions{
					Columns:   columnsFromConfig(cfg.Columns),
					Colored:   cfg.Output.Color,
					Languages: options.languages,
				})
			case report.FormatJSON:
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			case report.FormatYAML:
				if err := report.PrintYAML(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			}

			if cfg.Output.File != "" {
				if err := report.WriteFile(cfg.Output.File, format, result); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s exported to %s\n", format, cfg.Output.File)
			}
			return nil
		},
	}

	flags := scanCmd.Flags()
	flags.BoolVarP(&options.columns.Lines, "lines", "l", false, "输出行数")
	flags.BoolVarP(&options.columns.Words, "words", "w", false, "输出词数")
	flags.BoolVarP(&options.columns.Chars, "chars", "c", false, "输出字符数")
	flags.BoolVarP(&options.columns.Source, "source", "s", false, "输出代码行数")
	flags.BoolVarP(&options.columns.Comments, "comments", "C", false, "输出注释行数")
	flags.BoolVarP(&options.columns.Halstead, "halstead", "H", false, "输出 Halstead 指标")
	flags.StringVar(&options.format, "format", "table", "输出格式: table、json 或 yaml")
	flags.StringVarP(&options.output, "output", "o", "", "json/yaml 导出文件路径")
	flags.IntVar(&options.workers, "workers", 0, "并发 worker 数量，默认 CPU 核数")
	flags.BoolVar(&options.noColor, "no-color", false, "关闭彩色输出")
	flags.BoolVar(&options.progress, "progress", false, "多文件时在 stderr 显示进度条")
	flags.BoolVar(&options.languages, "by-language", false, "表格模式下追加语言汇总")

	return scanCmd
}

// loadConfig 读取 --config 指定的文件，未指定时在当前目录查找默认文件。
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(".")
}

// applyScanFlags 用显式传入的命令行参数覆盖配置文件中的值。
func applyScanFlags(cmd *cobra.Command, cfg *config.Config, options scanOptions) {
	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.Output.Format = options.format
	}
	if flags.Changed("output") {
		cfg.Output.File = options.output
	}
	if flags.Changed("workers") {
		cfg.Scan.Workers = options.workers
	}
	if flags.Changed("no-color") {
		cfg.Output.Color = !options.noColor
	}
	if flags.Changed("progress") {
		cfg.Output.Progress = options.progress
	}

	// 只要命令行选择了任意列组，就完全以命令行为准。
	if options.columns != (report.Columns{}) {
		cfg.Columns = config.ColumnsConfig{
			Lines:    options.columns.Lines,
			Words:    options.columns.Words,
			Chars:    options.columns.Chars,
			Source:   options.columns.Source,
			Comments: options.columns.Comments,
			Halstead: options.columns.Halstead,
		}
	}
}

func columnsFromConfig(columns config.ColumnsConfig) report.Columns {
	return report.Columns{
		Lines:    columns.Lines,
		Words:    columns.Words,
		Chars:    columns.Chars,
		Source:   columns.Source,
		Comments: columns.Comments,
		Halstead: columns.Halstead,
	}
}
