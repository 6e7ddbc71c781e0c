package model

import "math"

// HalsteadMetrics 表示单文件（或汇总）的 Halstead 度量。
//
// 字段全部为整数：对数取整、difficulty/time/bugs 使用截断除法。
type HalsteadMetrics struct {
	OperatorsTotal  int64 `json:"operators_total" yaml:"operators_total"`   // N1
	OperandsTotal   int64 `json:"operands_total" yaml:"operands_total"`     // N2
	OperatorsUnique int64 `json:"operators_unique" yaml:"operators_unique"` // n1
	OperandsUnique  int64 `json:"operands_unique" yaml:"operands_unique"`   // n2
	Vocabulary      int64 `json:"vocabulary" yaml:"vocabulary"`
	Length          int64 `json:"length" yaml:"length"`
	EstimatedLength int64 `json:"estimated_length" yaml:"estimated_length"`
	Volume          int64 `json:"volume" yaml:"volume"`
	Difficulty      int64 `json:"difficulty" yaml:"difficulty"`
	Effort          int64 `json:"effort" yaml:"effort"`
	Time            int64 `json:"time" yaml:"time"`
	Bugs            int64 `json:"bugs" yaml:"bugs"`
}

// NewHalsteadMetrics 根据四个基础计数一次性推导全部派生值。
func NewHalsteadMetrics(operatorsUnique, operandsUnique, operatorsTotal, operandsTotal int64) HalsteadMetrics {
	h := HalsteadMetrics{
		OperatorsTotal:  operatorsTotal,
		OperandsTotal:   operandsTotal,
		OperatorsUnique: operatorsUnique,
		OperandsUnique:  operandsUnique,
	}

	h.Vocabulary = operatorsUnique + operandsUnique
	h.Length = operatorsTotal + operandsTotal
	h.EstimatedLength = operatorsUnique*log2(operatorsUnique) + operandsUnique*log2(operandsUnique)
	// volume 只乘以操作符总数，沿用原始工具的口径。
	h.Volume = operatorsTotal * log2(h.Vocabulary)

	if operandsUnique > 0 {
		h.Difficulty = (operatorsUnique / 2) * (operandsTotal / operandsUnique)
	}

	h.Effort = h.Difficulty * h.Volume
	h.Time = h.Effort / 18

	if h.Volume > 0 {
		h.Bugs = h.Volume / 3000
	}

	return h
}

// Add 将另一个 Halstead 结果逐字段叠加（用于汇总行）。
func (h *HalsteadMetrics) Add(other HalsteadMetrics) {
	h.OperatorsTotal += other.OperatorsTotal
	h.OperandsTotal += other.OperandsTotal
	h.OperatorsUnique += other.OperatorsUnique
	h.OperandsUnique += other.OperandsUnique
	h.Vocabulary += other.Vocabulary
	h.Length += other.Length
	h.EstimatedLength += other.EstimatedLength
	h.Volume += other.Volume
	h.Difficulty += other.Difficulty
	h.Effort += other.Effort
	h.Time += other.Time
	h.Bugs += other.Bugs
}

// log2 返回四舍五入后的二进制对数，n <= 0 时返回 0 而不是 NaN/-Inf。
func log2(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return int64(math.Round(math.Log2(float64(n))))
}
