package token

import "fmt"

// ============================================================================
// Token 类型定义
// ============================================================================
//
// TokenType 使用 iota 自动编号，按类别分组：
// 1. 特殊标记（ILLEGAL, EOF, COMMENT）
// 2. 字面量（标识符、变量、数字、字符串）
// 3. 运算符（算术、比较、逻辑、位运算、空合并）
// 4. 分隔符（括号、逗号、分号、属性开始标记等）
// 5. 关键字（声明、修饰符、控制流、值等）
//
// ============================================================================

// TokenType 表示 Token 的类型
type TokenType int

const (
	// ----------------------------------------------------------
	// 特殊标记
	// ----------------------------------------------------------
	ILLEGAL TokenType = iota // 非法字符
	EOF                      // 文件结束
	COMMENT                  // 注释

	// ----------------------------------------------------------
	// 字面量
	// ----------------------------------------------------------
	IDENT    // 标识符 (类名、方法名、常量名等)
	VARIABLE // 变量 ($开头)
	INT      // 整数字面量
	FLOAT    // 浮点数字面量
	STRING   // 字符串字面量

	// ----------------------------------------------------------
	// 算术运算符
	// ----------------------------------------------------------
	PLUS            // +
	MINUS           // -
	STAR            // *
	SLASH           // /
	PERCENT         // %
	POW             // **
	ASSIGN          // =
	PLUS_ASSIGN     // +=
	MINUS_ASSIGN    // -=
	STAR_ASSIGN     // *=
	SLASH_ASSIGN    // /=
	PERCENT_ASSIGN  // %=
	DOT_ASSIGN      // .=
	COALESCE_ASSIGN // ??=
	INCREMENT       // ++
	DECREMENT       // --

	// ----------------------------------------------------------
	// 比较运算符
	// ----------------------------------------------------------
	EQ            // ==
	NE            // !=
	IDENTICAL     // ===
	NOT_IDENTICAL // !==
	LT            // <
	LE            // <=
	GT            // >
	GE            // >=
	SPACESHIP     // <=>

	// ----------------------------------------------------------
	// 逻辑运算符
	// ----------------------------------------------------------
	AND // &&
	OR  // ||
	NOT // !

	// ----------------------------------------------------------
	// 位运算符
	// ----------------------------------------------------------
	BIT_AND     // &
	BIT_OR      // |
	BIT_XOR     // ^
	BIT_NOT     // ~
	LEFT_SHIFT  // <<
	RIGHT_SHIFT // >>

	// ----------------------------------------------------------
	// 分隔符
	// ----------------------------------------------------------
	LPAREN        // (
	RPAREN        // )
	LBRACE        // {
	RBRACE        // }
	LBRACKET      // [
	RBRACKET      // ]
	COMMA         // ,
	DOT           // .
	SEMICOLON     // ;
	COLON         // :
	DOUBLE_COLON  // ::
	QUESTION      // ?
	NULL_COALESCE // ??
	ARROW         // ->
	SAFE_ARROW    // ?->
	DOUBLE_ARROW  // =>
	ELLIPSIS      // ...
	BACKSLASH     // \ (命名空间分隔符)
	ATTRIBUTE     // #[ (属性开始标记)

	// ----------------------------------------------------------
	// 关键字 - 声明
	// ----------------------------------------------------------
	keyword_beg // 关键字起始标记（不是实际 token）
	CLASS       // class
	INTERFACE   // interface
	TRAIT       // trait
	ENUM        // enum
	CASE        // case
	EXTENDS     // extends
	IMPLEMENTS  // implements
	FUNCTION    // function
	FN          // fn (箭头函数)
	CONST       // const
	NAMESPACE   // namespace
	USE         // use

	// ----------------------------------------------------------
	// 关键字 - 修饰符
	// ----------------------------------------------------------
	PUBLIC    // public
	PROTECTED // protected
	PRIVATE   // private
	STATIC    // static
	ABSTRACT  // abstract
	FINAL     // final
	READONLY  // readonly

	// ----------------------------------------------------------
	// 关键字 - 控制流
	// ----------------------------------------------------------
	IF       // if
	ELSE     // else
	ELSEIF   // elseif
	WHILE    // while
	DO       // do
	FOR      // for
	FOREACH  // foreach
	BREAK    // break
	CONTINUE // continue
	RETURN   // return
	ECHO     // echo
	THROW    // throw
	TRY      // try
	CATCH    // catch
	FINALLY  // finally

	// ----------------------------------------------------------
	// 关键字 - 其他
	// ----------------------------------------------------------
	NEW        // new
	CLONE      // clone
	AS         // as
	INSTEADOF  // insteadof
	INSTANCEOF // instanceof
	SELF       // self
	PARENT     // parent
	CALLABLE   // callable

	// ----------------------------------------------------------
	// 关键字 - 值
	// ----------------------------------------------------------
	TRUE  // true
	FALSE // false
	NULL  // null

	keyword_end // 关键字结束标记（不是实际 token）
)

// ============================================================================
// Token 类型名称映射
// ============================================================================

var tokenNames = map[TokenType]string{
	// 特殊标记
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	// 字面量
	IDENT:    "IDENT",
	VARIABLE: "VARIABLE",
	INT:      "INT",
	FLOAT:    "FLOAT",
	STRING:   "STRING",

	// 算术运算符
	PLUS:            "+",
	MINUS:           "-",
	STAR:            "*",
	SLASH:           "/",
	PERCENT:         "%",
	POW:             "**",
	ASSIGN:          "=",
	PLUS_ASSIGN:     "+=",
	MINUS_ASSIGN:    "-=",
	STAR_ASSIGN:     "*=",
	SLASH_ASSIGN:    "/=",
	PERCENT_ASSIGN:  "%=",
	DOT_ASSIGN:      ".=",
	COALESCE_ASSIGN: "??=",
	INCREMENT:       "++",
	DECREMENT:       "--",

	// 比较运算符
	EQ:            "==",
	NE:            "!=",
	IDENTICAL:     "===",
	NOT_IDENTICAL: "!==",
	LT:            "<",
	LE:            "<=",
	GT:            ">",
	GE:            ">=",
	SPACESHIP:     "<=>",

	// 逻辑运算符
	AND: "&&",
	OR:  "||",
	NOT: "!",

	// 位运算符
	BIT_AND:     "&",
	BIT_OR:      "|",
	BIT_XOR:     "^",
	BIT_NOT:     "~",
	LEFT_SHIFT:  "<<",
	RIGHT_SHIFT: ">>",

	// 分隔符
	LPAREN:        "(",
	RPAREN:        ")",
	LBRACE:        "{",
	RBRACE:        "}",
	LBRACKET:      "[",
	RBRACKET:      "]",
	COMMA:         ",",
	DOT:           ".",
	SEMICOLON:     ";",
	COLON:         ":",
	DOUBLE_COLON:  "::",
	QUESTION:      "?",
	NULL_COALESCE: "??",
	ARROW:         "->",
	SAFE_ARROW:    "?->",
	DOUBLE_ARROW:  "=>",
	ELLIPSIS:      "...",
	BACKSLASH:     "\\",
	ATTRIBUTE:     "#[",

	// 关键字
	CLASS:      "class",
	INTERFACE:  "interface",
	TRAIT:      "trait",
	ENUM:       "enum",
	CASE:       "case",
	EXTENDS:    "extends",
	IMPLEMENTS: "implements",
	FUNCTION:   "function",
	FN:         "fn",
	CONST:      "const",
	NAMESPACE:  "namespace",
	USE:        "use",
	PUBLIC:     "public",
	PROTECTED:  "protected",
	PRIVATE:    "private",
	STATIC:     "static",
	ABSTRACT:   "abstract",
	FINAL:      "final",
	READONLY:   "readonly",
	IF:         "if",
	ELSE:       "else",
	ELSEIF:     "elseif",
	WHILE:      "while",
	DO:         "do",
	FOR:        "for",
	FOREACH:    "foreach",
	BREAK:      "break",
	CONTINUE:   "continue",
	RETURN:     "return",
	ECHO:       "echo",
	THROW:      "throw",
	TRY:        "try",
	CATCH:      "catch",
	FINALLY:    "finally",
	NEW:        "new",
	CLONE:      "clone",
	AS:         "as",
	INSTEADOF:  "insteadof",
	INSTANCEOF: "instanceof",
	SELF:       "self",
	PARENT:     "parent",
	CALLABLE:   "callable",
	TRUE:       "true",
	FALSE:      "false",
	NULL:       "null",
}

// ============================================================================
// 关键字映射
// ============================================================================

var keywords = map[string]TokenType{
	"class":      CLASS,
	"interface":  INTERFACE,
	"trait":      TRAIT,
	"enum":       ENUM,
	"case":       CASE,
	"extends":    EXTENDS,
	"implements": IMPLEMENTS,
	"function":   FUNCTION,
	"fn":         FN,
	"const":      CONST,
	"namespace":  NAMESPACE,
	"use":        USE,
	"public":     PUBLIC,
	"protected":  PROTECTED,
	"private":    PRIVATE,
	"static":     STATIC,
	"abstract":   ABSTRACT,
	"final":      FINAL,
	"readonly":   READONLY,
	"if":         IF,
	"else":       ELSE,
	"elseif":     ELSEIF,
	"while":      WHILE,
	"do":         DO,
	"for":        FOR,
	"foreach":    FOREACH,
	"break":      BREAK,
	"continue":   CONTINUE,
	"return":     RETURN,
	"echo":       ECHO,
	"throw":      THROW,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
	"new":        NEW,
	"clone":      CLONE,
	"as":         AS,
	"insteadof":  INSTEADOF,
	"instanceof": INSTANCEOF,
	"self":       SELF,
	"parent":     PARENT,
	"callable":   CALLABLE,
	"true":       TRUE,
	"false":      FALSE,
	"null":       NULL,
}

// LookupIdent 查询标识符是否是关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword 检查 token 类型是否是关键字
func IsKeyword(t TokenType) bool {
	return t > keyword_beg && t < keyword_end
}

// IsModifier 检查 token 类型是否是成员修饰符
//
// 修饰符的组合合法性由 parser 的修饰符分类器校验，
// 这里只做原始 token 级别的判断。
func IsModifier(t TokenType) bool {
	switch t {
	case PUBLIC, PROTECTED, PRIVATE, STATIC, ABSTRACT, FINAL, READONLY:
		return true
	}
	return false
}

// IsVisibility 检查 token 类型是否是可见性修饰符
func IsVisibility(t TokenType) bool {
	return t == PUBLIC || t == PROTECTED || t == PRIVATE
}

// String 返回 TokenType 的字符串表示
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// ============================================================================
// Position - 源代码位置
// ============================================================================

// Position 表示源代码中的位置
type Position struct {
	Filename string // 文件名
	Line     int    // 行号 (从1开始)
	Column   int    // 列号 (从1开始)
	Offset   int    // 字节偏移量 (从0开始)
}

// String 返回位置的字符串表示，格式为 "filename:line:column"
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid 检查位置是否有效
func (p Position) IsValid() bool {
	return p.Line > 0
}

// ============================================================================
// Span - 源代码范围
// ============================================================================

// Span 表示源代码中的一个范围（开始到结束）
//
// 每个语法节点都携带 Span，用于诊断信息和编辑器高亮。
type Span struct {
	Start Position // 开始位置
	End   Position // 结束位置
}

// NewSpan 创建新的 Span
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// SpanFromToken 从单个 Token 创建覆盖整个 Token 的 Span
func SpanFromToken(t Token) Span {
	end := t.Pos
	end.Column += len(t.Literal)
	end.Offset += len(t.Literal)
	return Span{Start: t.Pos, End: end}
}

// Union 合并两个 Span，返回覆盖两者的最小范围
func Union(a, b Span) Span {
	s := a
	if b.Start.Offset < s.Start.Offset {
		s.Start = b.Start
	}
	if b.End.Offset > s.End.Offset {
		s.End = b.End
	}
	return s
}

// String 返回 Span 的字符串表示
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s:%d:%d-%d", s.Start.Filename, s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.Start.Filename, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// ============================================================================
// Token - 词法单元
// ============================================================================

// Token 表示一个词法单元
type Token struct {
	Type    TokenType   // Token 类型
	Literal string      // 原始字面量
	Value   interface{} // 解析后的值 (用于数字、字符串)
	Pos     Position    // 位置信息
}

// String 返回 Token 的字符串表示（用于调试）
func (t Token) String() string {
	switch t.Type {
	case IDENT, VARIABLE, INT, FLOAT, STRING:
		return fmt.Sprintf("%s(%s) at %s", t.Type, t.Literal, t.Pos)
	default:
		return fmt.Sprintf("%s at %s", t.Type, t.Pos)
	}
}

// Span 返回覆盖该 Token 的 Span
func (t Token) Span() Span {
	return SpanFromToken(t)
}

// New 创建一个新的 Token
func New(tokenType TokenType, literal string, pos Position) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Pos:     pos,
	}
}

// NewWithValue 创建一个带值的 Token
//
// 用于数字和字符串字面量，value 参数存储解析后的实际值。
func NewWithValue(tokenType TokenType, literal string, value interface{}, pos Position) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Value:   value,
		Pos:     pos,
	}
}
