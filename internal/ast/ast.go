package ast

import (
	"strings"

	"github.com/lumelang/lume/internal/token"
)

// Node 是所有 AST 节点的基接口
type Node interface {
	Pos() token.Position // 返回节点在源代码中的位置
	End() token.Position // 返回节点结束位置
	String() string      // 返回节点的字符串表示（用于调试）
}

// Expression 表示一个表达式节点
type Expression interface {
	Node
	exprNode()
}

// Statement 表示一个语句节点
type Statement interface {
	Node
	stmtNode()
}

// Declaration 表示一个声明节点
type Declaration interface {
	Node
	declNode()
}

// TypeNode 表示类型注解节点
//
// IncludesCallable 和 IsBottom 用于属性类型合法性检查：
// 属性不能声明 callable 形态的类型，也不能声明底类型 (never/void)。
type TypeNode interface {
	Node
	typeNode()
	IncludesCallable() bool
	IsBottom() bool
}

// Span 返回覆盖整个节点的 Span
func Span(n Node) token.Span {
	return token.NewSpan(n.Pos(), n.End())
}

// ============================================================================
// 文件
// ============================================================================

// File 表示一个解析完成的源文件
type File struct {
	Filename     string
	Namespace    *NamespaceDecl // 可为 nil
	Uses         []*UseImport   // 顶层 use 导入
	Declarations []Declaration  // 类、接口、trait、枚举、函数
	Statements   []Statement    // 顶层语句（脚本入口）
}

func (f *File) Pos() token.Position { return token.Position{Filename: f.Filename, Line: 1, Column: 1} }
func (f *File) End() token.Position {
	if n := len(f.Statements); n > 0 {
		return f.Statements[n-1].End()
	}
	if n := len(f.Declarations); n > 0 {
		return f.Declarations[n-1].End()
	}
	return f.Pos()
}
func (f *File) String() string { return "file(" + f.Filename + ")" }

// NamespaceDecl 命名空间声明 namespace App\Http;
type NamespaceDecl struct {
	NamespaceToken token.Token
	Name           *Name
	Semicolon      token.Token
}

func (d *NamespaceDecl) Pos() token.Position { return d.NamespaceToken.Pos }
func (d *NamespaceDecl) End() token.Position { return d.Semicolon.Pos }
func (d *NamespaceDecl) String() string      { return "namespace " + d.Name.String() }
func (d *NamespaceDecl) declNode()           {}

// UseImport 顶层导入 use App\Models\User as U;
//
// 注意与类体内的 trait use 区分，后者是 TraitUseStmt。
type UseImport struct {
	UseToken  token.Token
	Name      *Name
	Alias     *Identifier // 可为 nil
	Semicolon token.Token
}

func (d *UseImport) Pos() token.Position { return d.UseToken.Pos }
func (d *UseImport) End() token.Position { return d.Semicolon.Pos }
func (d *UseImport) String() string {
	if d.Alias != nil {
		return "use " + d.Name.String() + " as " + d.Alias.Name
	}
	return "use " + d.Name.String()
}
func (d *UseImport) declNode() {}

// ============================================================================
// 标识符
// ============================================================================

// Identifier 裸标识符（方法名、常量名、枚举成员名等）
type Identifier struct {
	Token token.Token
	Name  string
}

func (e *Identifier) Pos() token.Position { return e.Token.Pos }
func (e *Identifier) End() token.Position { return e.Token.Span().End }
func (e *Identifier) String() string      { return e.Name }
func (e *Identifier) exprNode()           {}

// Name 可限定名称（类名、trait 名），如 Foo 或 App\Models\User
type Name struct {
	Tokens []token.Token // 组成名称的 token（含反斜杠）
	Value  string        // 完整名称文本
}

func (e *Name) Pos() token.Position { return e.Tokens[0].Pos }
func (e *Name) End() token.Position { return e.Tokens[len(e.Tokens)-1].Span().End }
func (e *Name) String() string      { return e.Value }
func (e *Name) exprNode()           {}

// Variable 变量 ($name)
type Variable struct {
	Token token.Token
	Name  string // 不含 $ 前缀
}

func (e *Variable) Pos() token.Position { return e.Token.Pos }
func (e *Variable) End() token.Position { return e.Token.Span().End }
func (e *Variable) String() string      { return "$" + e.Name }
func (e *Variable) exprNode()           {}

// ============================================================================
// 类型节点
// ============================================================================

// NamedType 命名类型 (int, string, App\Models\User, self, ...)
type NamedType struct {
	Name *Name
}

func (t *NamedType) Pos() token.Position { return t.Name.Pos() }
func (t *NamedType) End() token.Position { return t.Name.End() }
func (t *NamedType) String() string      { return t.Name.Value }
func (t *NamedType) typeNode()           {}

func (t *NamedType) IncludesCallable() bool { return false }

// IsBottom 判断是否为底类型
//
// never 和 void 都不能作为属性类型。类型名大小写不敏感。
func (t *NamedType) IsBottom() bool {
	switch strings.ToLower(t.Name.Value) {
	case "never", "void":
		return true
	}
	return false
}

// CallableType callable 类型
type CallableType struct {
	Token token.Token
}

func (t *CallableType) Pos() token.Position    { return t.Token.Pos }
func (t *CallableType) End() token.Position    { return t.Token.Span().End }
func (t *CallableType) String() string         { return "callable" }
func (t *CallableType) typeNode()              {}
func (t *CallableType) IncludesCallable() bool { return true }
func (t *CallableType) IsBottom() bool         { return false }

// NullableType 可空类型 (?Type)
type NullableType struct {
	Question token.Token
	Inner    TypeNode
}

func (t *NullableType) Pos() token.Position    { return t.Question.Pos }
func (t *NullableType) End() token.Position    { return t.Inner.End() }
func (t *NullableType) String() string         { return "?" + t.Inner.String() }
func (t *NullableType) typeNode()              {}
func (t *NullableType) IncludesCallable() bool { return t.Inner.IncludesCallable() }
func (t *NullableType) IsBottom() bool         { return t.Inner.IsBottom() }

// UnionType 联合类型 (A|B|C)
type UnionType struct {
	Types []TypeNode
}

func (t *UnionType) Pos() token.Position { return t.Types[0].Pos() }
func (t *UnionType) End() token.Position { return t.Types[len(t.Types)-1].End() }
func (t *UnionType) String() string {
	parts := make([]string, len(t.Types))
	for i, typ := range t.Types {
		parts[i] = typ.String()
	}
	return strings.Join(parts, "|")
}
func (t *UnionType) typeNode() {}

func (t *UnionType) IncludesCallable() bool {
	for _, typ := range t.Types {
		if typ.IncludesCallable() {
			return true
		}
	}
	return false
}

func (t *UnionType) IsBottom() bool {
	for _, typ := range t.Types {
		if typ.IsBottom() {
			return true
		}
	}
	return false
}

// IntersectionType 交叉类型 (A&B&C)
type IntersectionType struct {
	Types []TypeNode
}

func (t *IntersectionType) Pos() token.Position { return t.Types[0].Pos() }
func (t *IntersectionType) End() token.Position { return t.Types[len(t.Types)-1].End() }
func (t *IntersectionType) String() string {
	parts := make([]string, len(t.Types))
	for i, typ := range t.Types {
		parts[i] = typ.String()
	}
	return strings.Join(parts, "&")
}
func (t *IntersectionType) typeNode() {}

func (t *IntersectionType) IncludesCallable() bool {
	for _, typ := range t.Types {
		if typ.IncludesCallable() {
			return true
		}
	}
	return false
}

func (t *IntersectionType) IsBottom() bool {
	for _, typ := range t.Types {
		if typ.IsBottom() {
			return true
		}
	}
	return false
}
