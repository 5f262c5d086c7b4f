package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// Lexer - 词法分析器
// ============================================================================
//
// 词法分析器负责将 Lume 源代码字符串转换为 Token 序列。
//
// 性能优化说明：
// 1. ASCII 快速路径：大多数源代码字符是 ASCII，避免不必要的 UTF-8 解码
// 2. Token 切片预分配：根据源码长度预估 token 数量，减少切片扩容
// 3. 空白字符批量跳过：一次性跳过连续空白，减少循环次数
// 4. 字符串快速路径：无转义字符时直接切片，避免逐字符拷贝
//
// ============================================================================

// Lexer 词法分析器结构体
type Lexer struct {
	source   string        // 源代码字符串
	filename string        // 源文件名（用于错误报告）
	tokens   []token.Token // 已扫描的 Token 列表

	start     int // 当前 Token 的起始位置（字节偏移）
	current   int // 当前扫描位置（字节偏移）
	line      int // 当前行号（从1开始）
	column    int // 当前列号（从1开始）
	lineStart int // 当前行的起始偏移（用于计算列号）

	errors []Error // 词法错误列表
}

// Error 表示词法分析错误
type Error struct {
	Pos     token.Position // 错误位置
	Message string         // 错误信息
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ============================================================================
// 构造函数
// ============================================================================

// New 创建一个新的词法分析器
//
// 参数:
//   - source: 源代码字符串
//   - filename: 源文件名（用于错误报告）
func New(source, filename string) *Lexer {
	// 预估 token 数量：源码长度 / 5 是一个经验值
	estimatedTokens := len(source) / 5
	if estimatedTokens < 16 {
		estimatedTokens = 16
	}

	return &Lexer{
		source:   source,
		filename: filename,
		tokens:   make([]token.Token, 0, estimatedTokens),
		line:     1,
		column:   1,
	}
}

// ============================================================================
// 公共方法
// ============================================================================

// ScanTokens 扫描所有 tokens
//
// 这是词法分析的主入口，会扫描整个源代码并返回 Token 序列。
// 最后一个 Token 总是 EOF，表示文件结束。
func (l *Lexer) ScanTokens() []token.Token {
	for !l.isAtEnd() {
		// 记录当前 token 的起始位置
		l.start = l.current
		l.scanToken()
	}

	// 添加 EOF token 标记文件结束
	l.start = l.current
	l.tokens = append(l.tokens, token.Token{
		Type: token.EOF,
		Pos:  l.currentPos(),
	})

	return l.tokens
}

// Errors 返回所有词法错误
func (l *Lexer) Errors() []Error {
	return l.errors
}

// HasErrors 检查是否有错误
func (l *Lexer) HasErrors() bool {
	return len(l.errors) > 0
}

// ============================================================================
// 核心扫描逻辑
// ============================================================================

// scanToken 扫描单个 token
//
// 这是词法分析的核心函数，根据当前字符决定如何处理。
// switch 分支按字符出现频率排序：空白 > 分隔符 > 运算符 > 其他。
func (l *Lexer) scanToken() {
	ch := l.advance()

	switch ch {

	// ----------------------------------------------------------
	// 高频：空白字符
	// ----------------------------------------------------------
	case ' ', '\t', '\r':
		l.skipWhitespace()

	case '\n':
		l.newLine()
		l.skipWhitespace()

	// ----------------------------------------------------------
	// 高频：常用分隔符
	// ----------------------------------------------------------
	case '(':
		l.addToken(token.LPAREN)
	case ')':
		l.addToken(token.RPAREN)
	case '{':
		l.addToken(token.LBRACE)
	case '}':
		l.addToken(token.RBRACE)
	case '[':
		l.addToken(token.LBRACKET)
	case ']':
		l.addToken(token.RBRACKET)
	case ',':
		l.addToken(token.COMMA)
	case ';':
		l.addToken(token.SEMICOLON)
	case '\\':
		l.addToken(token.BACKSLASH)

	// ----------------------------------------------------------
	// 高频：常用运算符（可能是多字符）
	// ----------------------------------------------------------
	case '=':
		// = 或 == 或 === 或 =>
		if l.match('=') {
			if l.match('=') {
				l.addToken(token.IDENTICAL)
			} else {
				l.addToken(token.EQ)
			}
		} else if l.match('>') {
			l.addToken(token.DOUBLE_ARROW)
		} else {
			l.addToken(token.ASSIGN)
		}

	case ':':
		// : 或 ::
		if l.match(':') {
			l.addToken(token.DOUBLE_COLON)
		} else {
			l.addToken(token.COLON)
		}

	case '.':
		// . 或 .= 或 ... 或 浮点数 .5
		if l.match('.') {
			if l.match('.') {
				l.addToken(token.ELLIPSIS)
			} else {
				l.error(i18n.T(i18n.ErrUnexpectedDoubleDot))
			}
		} else if l.match('=') {
			l.addToken(token.DOT_ASSIGN)
		} else {
			l.addToken(token.DOT)
		}

	case '+':
		// + 或 ++ 或 +=
		if l.match('+') {
			l.addToken(token.INCREMENT)
		} else if l.match('=') {
			l.addToken(token.PLUS_ASSIGN)
		} else {
			l.addToken(token.PLUS)
		}

	case '-':
		// - 或 -- 或 -= 或 ->
		if l.match('-') {
			l.addToken(token.DECREMENT)
		} else if l.match('=') {
			l.addToken(token.MINUS_ASSIGN)
		} else if l.match('>') {
			l.addToken(token.ARROW)
		} else {
			l.addToken(token.MINUS)
		}

	case '*':
		// * 或 ** 或 *=
		if l.match('*') {
			l.addToken(token.POW)
		} else if l.match('=') {
			l.addToken(token.STAR_ASSIGN)
		} else {
			l.addToken(token.STAR)
		}

	case '/':
		// / 或 /= 或 // 注释 或 /* 块注释
		if l.match('/') {
			l.lineComment()
		} else if l.match('*') {
			l.blockComment()
		} else if l.match('=') {
			l.addToken(token.SLASH_ASSIGN)
		} else {
			l.addToken(token.SLASH)
		}

	case '%':
		// % 或 %=
		if l.match('=') {
			l.addToken(token.PERCENT_ASSIGN)
		} else {
			l.addToken(token.PERCENT)
		}

	// ----------------------------------------------------------
	// 中频：比较和逻辑运算符
	// ----------------------------------------------------------
	case '!':
		// ! 或 != 或 !==
		if l.match('=') {
			if l.match('=') {
				l.addToken(token.NOT_IDENTICAL)
			} else {
				l.addToken(token.NE)
			}
		} else {
			l.addToken(token.NOT)
		}

	case '<':
		// < 或 <= 或 <=> 或 <<
		if l.match('=') {
			if l.match('>') {
				l.addToken(token.SPACESHIP)
			} else {
				l.addToken(token.LE)
			}
		} else if l.match('<') {
			l.addToken(token.LEFT_SHIFT)
		} else {
			l.addToken(token.LT)
		}

	case '>':
		// > 或 >= 或 >>
		if l.match('=') {
			l.addToken(token.GE)
		} else if l.match('>') {
			l.addToken(token.RIGHT_SHIFT)
		} else {
			l.addToken(token.GT)
		}

	case '&':
		// & 或 &&
		if l.match('&') {
			l.addToken(token.AND)
		} else {
			l.addToken(token.BIT_AND)
		}

	case '|':
		// | 或 ||
		if l.match('|') {
			l.addToken(token.OR)
		} else {
			l.addToken(token.BIT_OR)
		}

	case '?':
		// ? 或 ?-> 或 ?? 或 ??=
		if l.match('?') {
			if l.match('=') {
				l.addToken(token.COALESCE_ASSIGN)
			} else {
				l.addToken(token.NULL_COALESCE)
			}
		} else if l.peekByte() == '-' && l.peekNextByte() == '>' {
			l.advanceByte()
			l.advanceByte()
			l.addToken(token.SAFE_ARROW)
		} else {
			l.addToken(token.QUESTION)
		}

	// ----------------------------------------------------------
	// 低频：单字符运算符
	// ----------------------------------------------------------
	case '^':
		l.addToken(token.BIT_XOR)
	case '~':
		l.addToken(token.BIT_NOT)

	// ----------------------------------------------------------
	// 属性开始标记 #[ 或 # 行注释
	// ----------------------------------------------------------
	case '#':
		if l.match('[') {
			l.addToken(token.ATTRIBUTE)
		} else {
			l.lineComment()
		}

	// ----------------------------------------------------------
	// 字符串字面量
	// ----------------------------------------------------------
	case '"':
		l.string('"')
	case '\'':
		l.string('\'')

	// ----------------------------------------------------------
	// 变量 ($开头)
	// ----------------------------------------------------------
	case '$':
		l.variable()

	// ----------------------------------------------------------
	// 默认：标识符、数字或非法字符
	// ----------------------------------------------------------
	default:
		if isDigit(ch) {
			l.number()
		} else if isAlpha(ch) {
			l.identifier()
		} else {
			l.error(i18n.T(i18n.ErrUnexpectedChar, ch))
		}
	}
}

// ============================================================================
// 空白字符处理
// ============================================================================

// skipWhitespace 批量跳过连续的空白字符
//
// 源代码中经常有连续的空格（缩进、对齐），一次性跳过比逐个处理更高效。
// 遇到换行时需要更新行号。
func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch := l.peekByte()

		switch ch {
		case ' ', '\t', '\r':
			l.advanceByte()
		case '\n':
			l.advanceByte()
			l.newLine()
		default:
			return
		}
	}
}

// ============================================================================
// 注释处理
// ============================================================================

// lineComment 处理单行注释 (// 或 #)
//
// 注释内容被丢弃，不生成 Token。
func (l *Lexer) lineComment() {
	for !l.isAtEnd() && l.peekByte() != '\n' {
		l.advance()
	}
	// 不消费换行符，让主循环处理（更新行号）
}

// blockComment 处理多行注释 /* */
//
// 支持嵌套注释，如 /* outer /* inner */ outer */
func (l *Lexer) blockComment() {
	depth := 1

	for depth > 0 && !l.isAtEnd() {
		if l.peekByte() == '/' && l.peekNextByte() == '*' {
			l.advance()
			l.advance()
			depth++
			continue
		}

		if l.peekByte() == '*' && l.peekNextByte() == '/' {
			l.advance()
			l.advance()
			depth--
			continue
		}

		if l.peekByte() == '\n' {
			l.advance()
			l.newLine()
			continue
		}

		l.advance()
	}

	if depth > 0 {
		l.error(i18n.T(i18n.ErrUnterminatedComment))
	}
}

// ============================================================================
// 字符串处理
// ============================================================================

// string 处理字符串字面量
//
// 支持单引号 'xxx' 和双引号 "xxx" 两种形式。
// 支持转义字符：\n \r \t \\ \' \" \0 \$
//
// 优化说明:
//   - 快速路径：字符串不包含转义字符时直接切片返回
//   - 慢速路径：包含转义字符时使用 strings.Builder 构建
func (l *Lexer) string(quote rune) {
	startOffset := l.current // 字符串内容的起始位置（引号后）

	// 快速扫描检查是否包含转义字符
	hasEscape := false
	scanPos := l.current

	for scanPos < len(l.source) {
		b := l.source[scanPos]
		if b == '\\' {
			hasEscape = true
			break
		}
		if b == byte(quote) || b == '\n' {
			break
		}
		scanPos++
	}

	// 快速路径：无转义字符，直接切片
	if !hasEscape {
		endPos := scanPos

		for l.current < endPos {
			l.advance()
		}

		if l.isAtEnd() || l.peek() == '\n' {
			l.error(i18n.T(i18n.ErrUnterminatedString))
			return
		}

		value := l.source[startOffset:l.current]
		l.advance() // 跳过结束引号

		l.addTokenWithValue(token.STRING, value)
		return
	}

	// 慢速路径：包含转义字符
	var sb strings.Builder
	sb.Grow(scanPos - startOffset + 16)

	for !l.isAtEnd() {
		ch := l.peek()

		if ch == quote {
			break
		}

		// 字符串不能跨行
		if ch == '\n' {
			l.error(i18n.T(i18n.ErrUnterminatedString))
			return
		}

		if ch == '\\' {
			l.advance() // 跳过反斜杠
			if l.isAtEnd() {
				l.error(i18n.T(i18n.ErrUnterminatedString))
				return
			}

			escaped := l.advance()
			switch escaped {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '\'':
				sb.WriteByte('\'')
			case '"':
				sb.WriteByte('"')
			case '$':
				sb.WriteByte('$')
			case '0':
				sb.WriteByte(0)
			default:
				// 未知转义，保留原字符
				sb.WriteRune(escaped)
			}
		} else {
			sb.WriteRune(l.advance())
		}
	}

	if l.isAtEnd() {
		l.error(i18n.T(i18n.ErrUnterminatedString))
		return
	}

	l.advance() // 跳过结束引号
	l.addTokenWithValue(token.STRING, sb.String())
}

// ============================================================================
// 变量处理
// ============================================================================

// variable 处理变量（$开头）
//
// 变量以 $ 开头，如 $name, $this, $user123。
// $this 不做特殊 token 处理，由 parser 在表达式层识别。
func (l *Lexer) variable() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	literal := l.source[l.start:l.current]

	// 只有 $ 没有变量名
	if literal == "$" {
		l.error(i18n.T(i18n.ErrExpectedVarName))
		return
	}

	l.addToken(token.VARIABLE)
}

// ============================================================================
// 数字处理
// ============================================================================

// number 处理数字字面量
//
// 支持以下格式：
//   - 十进制整数：123, 1_000_000
//   - 十六进制整数：0x1A2B
//   - 二进制整数：0b1010
//   - 八进制整数：0o777
//   - 浮点数：3.14
//   - 科学计数法：1.5e10, 2E-3
//
// 下划线分隔符在解析前被剥离。
func (l *Lexer) number() {
	firstDigit := l.source[l.start]

	// 十六进制数 0x...
	if firstDigit == '0' && (l.peekByte() == 'x' || l.peekByte() == 'X') {
		l.advance() // 跳过 'x'

		for isHexDigit(l.peek()) || l.peekByte() == '_' {
			l.advance()
		}

		literal := l.source[l.start:l.current]
		value, err := strconv.ParseInt(stripSeparators(literal), 0, 64)
		if err != nil {
			l.error(i18n.T(i18n.ErrInvalidHexNumber, literal))
			return
		}

		l.addTokenWithValue(token.INT, value)
		return
	}

	// 二进制数 0b...
	if firstDigit == '0' && (l.peekByte() == 'b' || l.peekByte() == 'B') {
		l.advance() // 跳过 'b'

		for l.peekByte() == '0' || l.peekByte() == '1' || l.peekByte() == '_' {
			l.advance()
		}

		literal := l.source[l.start:l.current]
		value, err := strconv.ParseInt(stripSeparators(literal), 0, 64)
		if err != nil {
			l.error(i18n.T(i18n.ErrInvalidBinaryNumber, literal))
			return
		}

		l.addTokenWithValue(token.INT, value)
		return
	}

	// 八进制数 0o...
	if firstDigit == '0' && (l.peekByte() == 'o' || l.peekByte() == 'O') {
		l.advance() // 跳过 'o'

		for l.peekByte() >= '0' && l.peekByte() <= '7' || l.peekByte() == '_' {
			l.advance()
		}

		literal := l.source[l.start:l.current]
		value, err := strconv.ParseInt(stripSeparators(literal), 0, 64)
		if err != nil {
			l.error(i18n.T(i18n.ErrInvalidOctalNumber, literal))
			return
		}

		l.addTokenWithValue(token.INT, value)
		return
	}

	// 十进制整数部分
	for isDigit(l.peek()) || l.peekByte() == '_' {
		l.advance()
	}

	// 小数部分
	isFloat := false
	if l.peekByte() == '.' && isDigit(l.peekNextRune()) {
		isFloat = true
		l.advance() // 跳过 '.'

		for isDigit(l.peek()) || l.peekByte() == '_' {
			l.advance()
		}
	}

	// 科学计数法 e/E
	if l.peekByte() == 'e' || l.peekByte() == 'E' {
		isFloat = true
		l.advance()

		if l.peekByte() == '+' || l.peekByte() == '-' {
			l.advance()
		}

		if !isDigit(l.peek()) {
			l.error(i18n.T(i18n.ErrInvalidExponent))
			return
		}

		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal := l.source[l.start:l.current]

	if isFloat {
		value, err := strconv.ParseFloat(stripSeparators(literal), 64)
		if err != nil {
			l.error(i18n.T(i18n.ErrInvalidFloat, literal))
			return
		}
		l.addTokenWithValue(token.FLOAT, value)
	} else {
		// 单位数整数快速路径，循环计数等场景非常常见
		if len(literal) == 1 {
			l.addTokenWithValue(token.INT, int64(literal[0]-'0'))
			return
		}

		value, err := strconv.ParseInt(stripSeparators(literal), 10, 64)
		if err != nil {
			l.error(i18n.T(i18n.ErrInvalidInteger, literal))
			return
		}
		l.addTokenWithValue(token.INT, value)
	}
}

// stripSeparators 剥离数字字面量中的下划线分隔符
func stripSeparators(literal string) string {
	if !strings.ContainsRune(literal, '_') {
		return literal
	}
	return strings.ReplaceAll(literal, "_", "")
}

// ============================================================================
// 标识符处理
// ============================================================================

// identifier 处理标识符和关键字
//
// 标识符以字母或下划线开头，后跟字母、数字或下划线。
// 扫描完成后查找关键字表，确定是标识符还是关键字。
func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.current]
	l.addToken(token.LookupIdent(text))
}

// ============================================================================
// 底层字符操作（带 ASCII 优化）
// ============================================================================

// isAtEnd 检查是否到达源代码末尾
func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// advance 前进一个字符并返回它
//
// 通用版本，支持完整的 UTF-8 字符。
// 对于 ASCII 字符自动使用快速路径。
func (l *Lexer) advance() rune {
	if l.current >= len(l.source) {
		return 0
	}

	b := l.source[l.current]

	// ASCII 快速路径
	if b < utf8.RuneSelf {
		l.current++
		l.column++
		return rune(b)
	}

	r, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	l.column++
	return r
}

// advanceByte 前进一个字节（仅用于已知是 ASCII 的情况）
func (l *Lexer) advanceByte() {
	l.current++
	l.column++
}

// peek 查看当前字符但不前进
func (l *Lexer) peek() rune {
	if l.current >= len(l.source) {
		return 0
	}

	b := l.source[l.current]

	if b < utf8.RuneSelf {
		return rune(b)
	}

	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

// peekByte 查看当前字节（仅用于 ASCII 检查）
func (l *Lexer) peekByte() byte {
	if l.current >= len(l.source) {
		return 0
	}
	return l.source[l.current]
}

// peekNextByte 查看下一个字节（用于 /* 等双字符序列检查）
func (l *Lexer) peekNextByte() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

// peekNextRune 查看下一个 rune（用于浮点数检测）
func (l *Lexer) peekNextRune() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}

	b := l.source[l.current+1]
	if b < utf8.RuneSelf {
		return rune(b)
	}

	r, _ := utf8.DecodeRuneInString(l.source[l.current+1:])
	return r
}

// match 如果当前字符匹配则前进
//
// 用于识别多字符运算符，如 == != <= 等。
func (l *Lexer) match(expected rune) bool {
	if l.current >= len(l.source) {
		return false
	}

	b := l.source[l.current]

	if b < utf8.RuneSelf {
		if rune(b) != expected {
			return false
		}
		l.current++
		l.column++
		return true
	}

	r, size := utf8.DecodeRuneInString(l.source[l.current:])
	if r != expected {
		return false
	}
	l.current += size
	l.column++
	return true
}

// ============================================================================
// 位置追踪
// ============================================================================

// newLine 处理换行，更新行号和列号计数器
func (l *Lexer) newLine() {
	l.line++
	l.column = 1
	l.lineStart = l.current
}

// currentPos 获取当前 token 的起始位置信息
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.column - (l.current - l.start),
		Offset:   l.start,
	}
}

// ============================================================================
// Token 生成
// ============================================================================

// addToken 添加一个无值的 Token
func (l *Lexer) addToken(tokenType token.TokenType) {
	literal := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{
		Type:    tokenType,
		Literal: literal,
		Pos:     l.currentPos(),
	})
}

// addTokenWithValue 添加一个带值的 Token
func (l *Lexer) addTokenWithValue(tokenType token.TokenType, value interface{}) {
	literal := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{
		Type:    tokenType,
		Literal: literal,
		Value:   value,
		Pos:     l.currentPos(),
	})
}

// ============================================================================
// 错误处理
// ============================================================================

// error 记录一个词法错误
//
// 错误会被收集起来，不会中断扫描过程。
// 同时会生成一个 ILLEGAL token。
func (l *Lexer) error(message string) {
	l.errors = append(l.errors, Error{
		Pos:     l.currentPos(),
		Message: message,
	})
	l.addToken(token.ILLEGAL)
}

// ============================================================================
// 字符分类函数
// ============================================================================

// isDigit 判断是否为数字 0-9
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// isHexDigit 判断是否为十六进制数字 0-9, a-f, A-F
func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isAlpha 判断是否为字母或下划线
//
// 支持 Unicode 字母，允许标识符使用非 ASCII 字符。
func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_' ||
		unicode.IsLetter(ch)
}

// isAlphaNumeric 判断是否为字母、数字或下划线
func isAlphaNumeric(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}
