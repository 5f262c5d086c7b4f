package errors

import (
	"os"
	"strings"
)

// Color 终端颜色
type Color int

const (
	ColorReset Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBoldRed
	ColorBoldWhite
)

// ANSI 颜色代码
var ansiCodes = map[Color]string{
	ColorReset:     "\033[0m",
	ColorRed:       "\033[31m",
	ColorGreen:     "\033[32m",
	ColorYellow:    "\033[33m",
	ColorBlue:      "\033[34m",
	ColorCyan:      "\033[36m",
	ColorWhite:     "\033[37m",
	ColorBoldRed:   "\033[1;31m",
	ColorBoldWhite: "\033[1;37m",
}

// colorsEnabled 是否启用颜色
var colorsEnabled = detectColorSupport()

// detectColorSupport 检测终端是否支持颜色
func detectColorSupport() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" {
		return false
	}

	if fileInfo, err := os.Stdout.Stat(); err == nil {
		if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
			return true
		}
	}

	if os.Getenv("COLORTERM") != "" {
		return true
	}

	colorTerms := []string{"xterm", "screen", "vt100", "linux", "ansi", "cygwin"}
	for _, ct := range colorTerms {
		if strings.Contains(strings.ToLower(term), ct) {
			return true
		}
	}
	return false
}

// EnableColors 启用颜色
func EnableColors() {
	colorsEnabled = true
}

// DisableColors 禁用颜色
func DisableColors() {
	colorsEnabled = false
}

// Colorize 给字符串着色
func Colorize(s string, color Color) string {
	if !colorsEnabled {
		return s
	}
	return ansiCodes[color] + s + ansiCodes[ColorReset]
}
