package errors

import "fmt"

// ============================================================================
// 诊断
// ============================================================================

// Level 诊断级别
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelNote
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	default:
		return "error"
	}
}

// Diagnostic 一条带位置的诊断
//
// Length 是错误标注覆盖的列数，最小为 1。
type Diagnostic struct {
	Level   Level
	Message string
	File    string
	Line    int
	Column  int
	Length  int
}

// Error 实现 error 接口
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
}
