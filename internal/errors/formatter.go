package errors

import (
	"fmt"
	"strings"
)

// ============================================================================
// 格式化器
// ============================================================================

// Formatter 诊断格式化器
type Formatter struct {
	Colors     bool // 是否使用颜色
	ShowSource bool // 是否显示源代码摘录
	TabWidth   int  // Tab 宽度
}

// NewFormatter 创建默认格式化器
func NewFormatter() *Formatter {
	return &Formatter{
		Colors:     true,
		ShowSource: true,
		TabWidth:   4,
	}
}

// Format 格式化一条诊断
//
// sourceLines 是出错文件按行切分的源代码，可为 nil，
// 此时只输出错误头和位置。
func (f *Formatter) Format(d *Diagnostic, sourceLines []string) string {
	var sb strings.Builder

	// 错误头: error: unexpected token `,`
	levelStr := f.colorize(d.Level.String(), f.levelColor(d.Level))
	sb.WriteString(fmt.Sprintf("%s: %s\n", levelStr, d.Message))

	// 位置: --> file.lume:5:12
	arrow := f.colorize("-->", ColorCyan)
	location := f.colorize(fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column), ColorCyan)
	sb.WriteString(fmt.Sprintf(" %s %s\n", arrow, location))

	if f.ShowSource && len(sourceLines) > 0 && d.Line > 0 && d.Line <= len(sourceLines) {
		sb.WriteString(f.excerpt(sourceLines[d.Line-1], d))
	}
	return sb.String()
}

// excerpt 输出出错行及 ^ 标注
func (f *Formatter) excerpt(line string, d *Diagnostic) string {
	var sb strings.Builder

	lineNumWidth := len(fmt.Sprintf("%d", d.Line))

	separator := f.colorize(strings.Repeat(" ", lineNumWidth)+" |", ColorBlue)
	sb.WriteString(separator + "\n")

	lineNum := f.colorize(fmt.Sprintf("%*d", lineNumWidth, d.Line), ColorBlue)
	pipe := f.colorize(" |", ColorBlue)
	sb.WriteString(fmt.Sprintf("%s%s %s\n", lineNum, pipe, f.expandTabs(line)))

	length := d.Length
	if length < 1 {
		length = 1
	}
	actualCol := f.actualColumn(line, d.Column)
	underline := strings.Repeat(" ", lineNumWidth+3+actualCol-1) +
		f.colorize(strings.Repeat("^", length), ColorRed)
	sb.WriteString(underline + "\n")

	return sb.String()
}

// expandTabs 展开 Tab 为空格
func (f *Formatter) expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", f.TabWidth))
}

// actualColumn 计算展开 Tab 后的列位置
func (f *Formatter) actualColumn(line string, col int) int {
	if col <= 0 {
		return 1
	}
	actual := 0
	for i := 0; i < col-1 && i < len(line); i++ {
		if line[i] == '\t' {
			actual += f.TabWidth
		} else {
			actual++
		}
	}
	return actual + 1
}

// levelColor 获取诊断级别对应的颜色
func (f *Formatter) levelColor(level Level) Color {
	switch level {
	case LevelWarning:
		return ColorYellow
	case LevelNote:
		return ColorCyan
	default:
		return ColorBoldRed
	}
}

// colorize 着色字符串
func (f *Formatter) colorize(s string, color Color) string {
	if !f.Colors {
		return s
	}
	return Colorize(s, color)
}

// ============================================================================
// 全局格式化器
// ============================================================================

var defaultFormatter = NewFormatter()

// Format 使用默认格式化器格式化诊断
func Format(d *Diagnostic, sourceLines []string) string {
	return defaultFormatter.Format(d, sourceLines)
}
