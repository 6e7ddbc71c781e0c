package languages

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"srcmetrics/internal/model"
)

// fileScan 持有单个文件扫描期间的全部可变状态。
// 块注释标记只在同一文件内跨行传递，每个文件都会新建 fileScan。
type fileScan struct {
	profile        *Profile
	inBlockComment bool
	metrics        model.LineMetrics
	halstead       *HalsteadAccumulator
}

// analyze 读取完整内容一次（用于字符数），然后逐行折叠出统计结果。
func analyze(reader io.Reader, profile *Profile) (model.FileMetrics, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return model.FileMetrics{}, fmt.Errorf("read content: %w", err)
	}

	scan := &fileScan{
		profile:  profile,
		halstead: NewHalsteadAccumulator(),
	}
	scan.metrics.Chars = int64(utf8.RuneCount(content))

	lineScanner := bufio.NewScanner(bytes.NewReader(content))
	// 整个文件已在内存中，缓冲上限放宽到文件大小，避免超长行触发 ErrTooLong。
	lineScanner.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	lineScanner.Split(scanLines)

	for lineScanner.Scan() {
		scan.processLine(lineScanner.Text())
	}
	if err := lineScanner.Err(); err != nil {
		return model.FileMetrics{}, fmt.Errorf("split lines: %w", err)
	}

	return scan.finalize(), nil
}

// processLine 处理一行文本。
func (s *fileScan) processLine(line string) {
	s.metrics.Lines++
	s.metrics.Words += countWords(line)

	// 空行与不可识别后缀的文件不参与分类。
	if line == "" || !s.profile.Classifies() {
		return
	}

	class := ClassifyLine(line, s.inBlockComment)
	s.inBlockComment = class.InBlockComment

	if class.Comment {
		s.metrics.Comment++
	}
	if class.Code {
		s.metrics.Code++
	}

	// 本行结束时仍处于块注释中，则代码片段不参与分词。
	if !s.inBlockComment && len(class.CodeOnly) > 1 {
		s.halstead.AddCode(class.CodeOnly, s.profile)
	}
}

// finalize 生成不可变的文件统计结果。
func (s *fileScan) finalize() model.FileMetrics {
	return model.FileMetrics{
		Language: s.profile.Name(),
		Metrics:  s.metrics,
		Halstead: s.halstead.Finalize(),
	}
}
