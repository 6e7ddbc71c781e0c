// Package progress 在 stderr 上展示多文件扫描进度。
package progress

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Tracker 包装一个进度条。
type Tracker struct {
	bar *progressbar.ProgressBar
}

// NewTracker 创建写到 stderr 的进度条。
func NewTracker(label string, total int) *Tracker {
	return NewTrackerWithWriter(os.Stderr, label, total)
}

// NewTrackerWithWriter 创建写到指定 writer 的进度条。
func NewTrackerWithWriter(writer io.Writer, label string, total int) *Tracker {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &Tracker{bar: bar}
}

// Tick 进度 +1，可并发调用。
func (t *Tracker) Tick() {
	_ = t.bar.Add(1)
}

// Finish 结束并清除进度条。
func (t *Tracker) Finish() {
	_ = t.bar.Finish()
	_ = t.bar.Clear()
}
