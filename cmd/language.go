package cmd

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"srcmetrics/internal/languages"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示会做代码/注释分类与 Halstead 统计的语言及对应文件后缀。
func newLanguageCmd(registry *languages.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示已支持语言及后缀",
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewTable(cmd.OutOrStdout())
			table.Header([]string{"Language", "Extensions"})

			for _, item := range registry.Languages() {
				if err := table.Append([]string{item.Name, strings.Join(item.Extensions, ", ")}); err != nil {
					return err
				}
			}

			return table.Render()
		},
	}
}
