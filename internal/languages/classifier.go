package languages

import "strings"

const (
	blockCommentOpen  = "/*"
	blockCommentClose = "*/"
	lineCommentMarker = "//"
)

// LineClass 是单行分类结果。
// Code 与 Comment 不互斥，同一行可以同时计入两个统计。
type LineClass struct {
	// InBlockComment 是处理完本行后的块注释状态，需传给下一行。
	InBlockComment bool
	Code           bool
	Comment        bool
	// CodeOnly 是去掉注释后剩余的代码片段，用于 Halstead 分词，可能为空。
	CodeOnly string
}

// ClassifyLine 按固定优先级对一行文本做代码/注释分类。
// 调用方负责在文件之间重置 inBlockComment。
//
// 规则（先命中者生效）：
//  1. 处于块注释且本行没有 */：整行为注释
//  2. 含 /*：注释；/* 之前或 */ 之后有足够内容时同时记为代码
//  3. 含 */：注释，离开块注释；*/ 之后有足够内容时同时记为代码
//  4. 含 //：注释；// 之前有足够内容时同时记为代码
//  5. 其它：代码，整行作为代码片段
func ClassifyLine(line string, inBlockComment bool) LineClass {
	hasOpen := strings.Contains(line, blockCommentOpen)
	hasClose := strings.Contains(line, blockCommentClose)

	switch {
	case inBlockComment && !hasClose:
		return LineClass{InBlockComment: true, Comment: true}

	case hasOpen:
		class := LineClass{InBlockComment: inBlockComment, Comment: true}

		// 以第一个 * 的前一位为界截取，* 位于行首时截取为空。
		cut := strings.IndexByte(line, '*') - 1
		if cut < 0 {
			cut = 0
		}
		before := strings.TrimSpace(line[:cut])
		after := ""
		if hasClose {
			after = trailingAfterClose(line)
		} else {
			class.InBlockComment = true
		}

		if len(before) > 1 {
			class.Code = true
			class.CodeOnly = before
		} else if len(after) > 2 {
			class.Code = true
			class.CodeOnly = after
		}
		return class

	case hasClose:
		class := LineClass{Comment: true}
		if after := trailingAfterClose(line); len(after) > 2 {
			class.Code = true
			class.CodeOnly = after
		}
		return class

	case strings.Contains(line, lineCommentMarker):
		class := LineClass{InBlockComment: inBlockComment, Comment: true}
		before := strings.TrimSpace(line[:strings.Index(line, lineCommentMarker)])
		if len(before) > 1 {
			class.Code = true
			class.CodeOnly = before
		}
		return class

	default:
		return LineClass{InBlockComment: inBlockComment, Code: true, CodeOnly: line}
	}
}

// trailingAfterClose 返回最后一个 */ 之后的内容（已去除首尾空白）。
func trailingAfterClose(line string) string {
	return strings.TrimSpace(line[strings.LastIndex(line, blockCommentClose)+len(blockCommentClose):])
}
