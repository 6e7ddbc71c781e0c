package report

import (
	"strconv"

	"srcmetrics/internal/model"
)

// Columns 选择表格中展示的列组。
type Columns struct {
	Lines    bool
	Words    bool
	Chars    bool
	Source   bool
	Comments bool
	Halstead bool
}

// AllColumns 返回全部列组。
func AllColumns() Columns {
	return Columns{Lines: true, Words: true, Chars: true, Source: true, Comments: true, Halstead: true}
}

// Normalize 在没有选择任何列组时返回全部列组。
func (c Columns) Normalize() Columns {
	if c == (Columns{}) {
		return AllColumns()
	}
	return c
}

// row 是表格一行的数据来源（单文件或总计）。
type row struct {
	name     string
	metrics  model.LineMetrics
	halstead model.HalsteadMetrics
}

// column 描述一列：名称、取值方式以及值为 0 时是否留空。
type column struct {
	name       string
	value      func(row) int64
	blankZeros bool
}

// 文本类统计总是输出；代码/注释/Halstead 统计为 0 时留空。
var (
	linesColumn    = column{name: "lines", value: func(r row) int64 { return r.metrics.Lines }}
	wordsColumn    = column{name: "words", value: func(r row) int64 { return r.metrics.Words }}
	charsColumn    = column{name: "chars", value: func(r row) int64 { return r.metrics.Chars }}
	sourceColumn   = column{name: "source", value: func(r row) int64 { return r.metrics.Code }, blankZeros: true}
	commentsColumn = column{name: "comments", value: func(r row) int64 { return r.metrics.Comment }, blankZeros: true}

	halsteadColumns = []column{
		{name: "operators", value: func(r row) int64 { return r.halstead.OperatorsTotal }, blankZeros: true},
		{name: "operands", value: func(r row) int64 { return r.halstead.OperandsTotal }, blankZeros: true},
		{name: "unqOperators", value: func(r row) int64 { return r.halstead.OperatorsUnique }, blankZeros: true},
		{name: "unqOperands", value: func(r row) int64 { return r.halstead.OperandsUnique }, blankZeros: true},
		{name: "vocab", value: func(r row) int64 { return r.halstead.Vocabulary }, blankZeros: true},
		{name: "length", value: func(r row) int64 { return r.halstead.Length }, blankZeros: true},
		{name: "calcLength", value: func(r row) int64 { return r.halstead.EstimatedLength }, blankZeros: true},
		{name: "volume", value: func(r row) int64 { return r.halstead.Volume }, blankZeros: true},
		{name: "difficulty", value: func(r row) int64 { return r.halstead.Difficulty }, blankZeros: true},
		{name: "effort", value: func(r row) int64 { return r.halstead.Effort }, blankZeros: true},
		{name: "estTime", value: func(r row) int64 { return r.halstead.Time }, blankZeros: true},
		{name: "estBugs", value: func(r row) int64 { return r.halstead.Bugs }, blankZeros: true},
	}
)

// selected 按固定顺序展开选中的列。
func (c Columns) selected() []column {
	columns := make([]column, 0, 5+len(halsteadColumns))
	if c.Lines {
		columns = append(columns, linesColumn)
	}
	if c.Words {
		columns = append(columns, wordsColumn)
	}
	if c.Chars {
		columns = append(columns, charsColumn)
	}
	if c.Source {
		columns = append(columns, sourceColumn)
	}
	if c.Comments {
		columns = append(columns, commentsColumn)
	}
	if c.Halstead {
		columns = append(columns, halsteadColumns...)
	}
	return columns
}

func (col column) cell(r row) string {
	value := col.value(r)
	if col.blankZeros && value == 0 {
		return ""
	}
	return strconv.FormatInt(value, 10)
}
