package languages

import (
	"bytes"
	"strings"
)

// scanLines 是 bufio.Scanner 的分行函数。
// 支持 \n、\r\n 以及单独的 \r；末尾的换行符不会产生额外的空行。
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if idx := bytes.IndexAny(data, "\r\n"); idx >= 0 {
		if data[idx] == '\n' {
			return idx + 1, data[:idx], nil
		}
		// \r 需要看下一个字节才能判断是否为 \r\n。
		if idx+1 < len(data) {
			if data[idx+1] == '\n' {
				return idx + 2, data[:idx], nil
			}
			return idx + 1, data[:idx], nil
		}
		if atEOF {
			return idx + 1, data[:idx], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// countWords 统计以空白分隔的词数。
func countWords(line string) int64 {
	return int64(len(strings.Fields(line)))
}
