package languages

import (
	"regexp"

	"srcmetrics/internal/model"
)

// operatorPattern 匹配操作符号。RE2 的分支按书写顺序优先，
// 所以长符号必须排在其前缀之前（>>>= 先于 >>= 先于 >> 先于 >）。
var operatorPattern = regexp.MustCompile(
	`>>>=|<<=|>>=|>>>|==|<=|>=|!=|&&|\|\||\+\+|--|<<|>>|\+=|-=|\*=|/=|&=|\|=|\^=|%=|[=><!~?:+\-*/&|^%]`,
)

// operandPattern 匹配最长的单词字符序列（字母、数字、下划线）。
var operandPattern = regexp.MustCompile(`\w+`)

// HalsteadAccumulator 累积单个文件的操作符/操作数集合与出现次数。
// 由单个文件的扫描过程独占，不需要加锁。
type HalsteadAccumulator struct {
	operators      map[string]struct{}
	operands       map[string]struct{}
	totalOperators int64
	totalOperands  int64
}

// NewHalsteadAccumulator 创建空的累积器。
func NewHalsteadAccumulator() *HalsteadAccumulator {
	return &HalsteadAccumulator{
		operators: make(map[string]struct{}),
		operands:  make(map[string]struct{}),
	}
}

// AddCode 从一段纯代码片段中提取操作符与操作数并合并进累积器。
func (h *HalsteadAccumulator) AddCode(code string, profile *Profile) {
	for _, symbol := range operatorPattern.FindAllString(code, -1) {
		if symbol != "" {
			h.addOperator(symbol)
		}
	}

	for _, token := range operandPattern.FindAllString(code, -1) {
		switch {
		case profile.IsOperatorKeyword(token):
			// 行为上等同于操作符的保留字改记为操作符。
			h.addOperator(token)
		case !profile.IsExcludedOperand(token):
			h.addOperand(token)
		}
	}
}

func (h *HalsteadAccumulator) addOperator(token string) {
	h.operators[token] = struct{}{}
	h.totalOperators++
}

func (h *HalsteadAccumulator) addOperand(token string) {
	h.operands[token] = struct{}{}
	h.totalOperands++
}

// UniqueOperators 返回不同操作符的数量。
func (h *HalsteadAccumulator) UniqueOperators() int64 {
	return int64(len(h.operators))
}

// UniqueOperands 返回不同操作数的数量。
func (h *HalsteadAccumulator) UniqueOperands() int64 {
	return int64(len(h.operands))
}

// TotalOperators 返回操作符出现总次数。
func (h *HalsteadAccumulator) TotalOperators() int64 {
	return h.totalOperators
}

// TotalOperands 返回操作数出现总次数。
func (h *HalsteadAccumulator) TotalOperands() int64 {
	return h.totalOperands
}

// HasOperator 判断某个操作符是否出现过。
func (h *HalsteadAccumulator) HasOperator(token string) bool {
	_, ok := h.operators[token]
	return ok
}

// HasOperand 判断某个操作数是否出现过。
func (h *HalsteadAccumulator) HasOperand(token string) bool {
	_, ok := h.operands[token]
	return ok
}

// Finalize 基于最终累积状态推导 Halstead 度量。
func (h *HalsteadAccumulator) Finalize() model.HalsteadMetrics {
	return model.NewHalsteadMetrics(
		h.UniqueOperators(),
		h.UniqueOperands(),
		h.totalOperators,
		h.totalOperands,
	)
}
