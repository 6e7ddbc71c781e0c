// Package cmd 提供 srcmetrics 的命令行入口与子命令编排。
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"srcmetrics/internal/languages"
	applog "srcmetrics/internal/log"
)

// globalOptions 存放所有子命令共享的参数。
type globalOptions struct {
	configPath string
	verbose    bool
}

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	options := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "srcmetrics",
		Short: "源码文本度量与 Halstead 复杂度统计工具",
		Long: "srcmetrics 统计文件的行数、词数、字符数，\n" +
			"对 C/C++/Java 源码区分代码行与注释行，并计算 Halstead 复杂度指标。",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			slog.SetDefault(applog.New(options.verbose))
		},
	}

	rootCmd.PersistentFlags().StringVar(&options.configPath, "config", "", "配置文件路径（yaml/toml/json），默认查找 .srcmetrics.*")
	rootCmd.PersistentFlags().BoolVarP(&options.verbose, "verbose", "v", false, "输出 debug 日志到 stderr")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newScanCmd(registry, options))

	return rootCmd
}
