// Package i18n 提供 Lume 前端诊断信息的多语言支持
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

// 全局语言设置
var (
	currentLang Language = LangEnglish
	mu          sync.RWMutex
)

// SetLanguage 设置当前语言
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	currentLang = lang
}

// SetLanguageFromString 从字符串设置语言
func SetLanguageFromString(lang string) {
	switch strings.ToLower(lang) {
	case "zh", "zh-cn", "zh-tw", "zh-hk", "chinese":
		SetLanguage(LangChinese)
	default:
		SetLanguage(LangEnglish)
	}
}

// DetectLanguage 从环境变量检测语言
//
// 优先级：LUME_LANG > LC_ALL > LANG，都未设置时使用英文。
func DetectLanguage() {
	for _, env := range []string{"LUME_LANG", "LC_ALL", "LANG"} {
		if v := os.Getenv(env); v != "" {
			SetLanguageFromString(v)
			return
		}
	}
}

// GetLanguage 获取当前语言
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T 翻译消息（支持格式化参数）
func T(msgID string, args ...interface{}) string {
	mu.RLock()
	lang := currentLang
	mu.RUnlock()

	var messages map[string]string
	switch lang {
	case LangChinese:
		messages = messagesZH
	default:
		messages = messagesEN
	}

	if msg, ok := messages[msgID]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...)
		}
		return msg
	}

	// 回退到英文
	if msg, ok := messagesEN[msgID]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...)
		}
		return msg
	}

	// 找不到翻译则返回原始 ID
	return msgID
}
