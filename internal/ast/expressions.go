package ast

import (
	"fmt"
	"strings"

	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 字面量
// ============================================================================

// IntLit 整数字面量
type IntLit struct {
	Token token.Token
	Value int64
}

func (e *IntLit) Pos() token.Position { return e.Token.Pos }
func (e *IntLit) End() token.Position { return e.Token.Span().End }
func (e *IntLit) String() string      { return e.Token.Literal }
func (e *IntLit) exprNode()           {}

// FloatLit 浮点数字面量
type FloatLit struct {
	Token token.Token
	Value float64
}

func (e *FloatLit) Pos() token.Position { return e.Token.Pos }
func (e *FloatLit) End() token.Position { return e.Token.Span().End }
func (e *FloatLit) String() string      { return e.Token.Literal }
func (e *FloatLit) exprNode()           {}

// StringLit 字符串字面量
type StringLit struct {
	Token token.Token
	Value string
}

func (e *StringLit) Pos() token.Position { return e.Token.Pos }
func (e *StringLit) End() token.Position { return e.Token.Span().End }
func (e *StringLit) String() string      { return fmt.Sprintf("%q", e.Value) }
func (e *StringLit) exprNode()           {}

// BoolLit 布尔字面量
type BoolLit struct {
	Token token.Token
	Value bool
}

func (e *BoolLit) Pos() token.Position { return e.Token.Pos }
func (e *BoolLit) End() token.Position { return e.Token.Span().End }
func (e *BoolLit) String() string      { return e.Token.Literal }
func (e *BoolLit) exprNode()           {}

// NullLit null 字面量
type NullLit struct {
	Token token.Token
}

func (e *NullLit) Pos() token.Position { return e.Token.Pos }
func (e *NullLit) End() token.Position { return e.Token.Span().End }
func (e *NullLit) String() string      { return "null" }
func (e *NullLit) exprNode()           {}

// ArrayEntry 数组字面量中的一项
type ArrayEntry struct {
	Key    Expression // 可为 nil
	Value  Expression
	Spread bool // ...$items
}

// ArrayLit 数组字面量 [1, 2, "k" => $v, ...$rest]
type ArrayLit struct {
	LBracket token.Token
	Entries  []*ArrayEntry
	RBracket token.Token
}

func (e *ArrayLit) Pos() token.Position { return e.LBracket.Pos }
func (e *ArrayLit) End() token.Position { return e.RBracket.Span().End }
func (e *ArrayLit) String() string {
	parts := make([]string, len(e.Entries))
	for i, entry := range e.Entries {
		switch {
		case entry.Spread:
			parts[i] = "..." + entry.Value.String()
		case entry.Key != nil:
			parts[i] = entry.Key.String() + " => " + entry.Value.String()
		default:
			parts[i] = entry.Value.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (e *ArrayLit) exprNode() {}

// ============================================================================
// 运算表达式
// ============================================================================

// PrefixExpr 前缀表达式 (!$x, -$x, ~$x, ++$x)
type PrefixExpr struct {
	Operator token.Token
	Right    Expression
}

func (e *PrefixExpr) Pos() token.Position { return e.Operator.Pos }
func (e *PrefixExpr) End() token.Position { return e.Right.End() }
func (e *PrefixExpr) String() string      { return "(" + e.Operator.Literal + e.Right.String() + ")" }
func (e *PrefixExpr) exprNode()           {}

// PostfixExpr 后缀表达式 ($x++, $x--)
type PostfixExpr struct {
	Left     Expression
	Operator token.Token
}

func (e *PostfixExpr) Pos() token.Position { return e.Left.Pos() }
func (e *PostfixExpr) End() token.Position { return e.Operator.Span().End }
func (e *PostfixExpr) String() string      { return "(" + e.Left.String() + e.Operator.Literal + ")" }
func (e *PostfixExpr) exprNode()           {}

// InfixExpr 中缀表达式 ($a + $b, $a ?? $b, $a . $b)
type InfixExpr struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (e *InfixExpr) Pos() token.Position { return e.Left.Pos() }
func (e *InfixExpr) End() token.Position { return e.Right.End() }
func (e *InfixExpr) String() string {
	return "(" + e.Left.String() + " " + e.Operator.Literal + " " + e.Right.String() + ")"
}
func (e *InfixExpr) exprNode() {}

// AssignExpr 赋值表达式 ($x = 1, $x += 1, $x ??= 1)
type AssignExpr struct {
	Target   Expression
	Operator token.Token
	Value    Expression
}

func (e *AssignExpr) Pos() token.Position { return e.Target.Pos() }
func (e *AssignExpr) End() token.Position { return e.Value.End() }
func (e *AssignExpr) String() string {
	return "(" + e.Target.String() + " " + e.Operator.Literal + " " + e.Value.String() + ")"
}
func (e *AssignExpr) exprNode() {}

// TernaryExpr 三元表达式 ($c ? $a : $b 或短形式 $c ?: $b)
type TernaryExpr struct {
	Cond Expression
	Then Expression // 短形式时为 nil
	Else Expression
}

func (e *TernaryExpr) Pos() token.Position { return e.Cond.Pos() }
func (e *TernaryExpr) End() token.Position { return e.Else.End() }
func (e *TernaryExpr) String() string {
	if e.Then == nil {
		return "(" + e.Cond.String() + " ?: " + e.Else.String() + ")"
	}
	return "(" + e.Cond.String() + " ? " + e.Then.String() + " : " + e.Else.String() + ")"
}
func (e *TernaryExpr) exprNode() {}

// InstanceofExpr 类型检查表达式 ($x instanceof Foo)
type InstanceofExpr struct {
	Left  Expression
	Token token.Token
	Class Expression
}

func (e *InstanceofExpr) Pos() token.Position { return e.Left.Pos() }
func (e *InstanceofExpr) End() token.Position { return e.Class.End() }
func (e *InstanceofExpr) String() string {
	return "(" + e.Left.String() + " instanceof " + e.Class.String() + ")"
}
func (e *InstanceofExpr) exprNode() {}

// ============================================================================
// 访问与调用
// ============================================================================

// CallExpr 调用表达式 (foo(1, 2), $obj->m())
type CallExpr struct {
	Callee Expression
	LParen token.Token
	Args   []Expression
	RParen token.Token
}

func (e *CallExpr) Pos() token.Position { return e.Callee.Pos() }
func (e *CallExpr) End() token.Position { return e.RParen.Span().End }
func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}
func (e *CallExpr) exprNode() {}

// IndexExpr 下标表达式 ($arr[0])
type IndexExpr struct {
	Target   Expression
	LBracket token.Token
	Index    Expression // 可为 nil ($arr[] = 1)
	RBracket token.Token
}

func (e *IndexExpr) Pos() token.Position { return e.Target.Pos() }
func (e *IndexExpr) End() token.Position { return e.RBracket.Span().End }
func (e *IndexExpr) String() string {
	if e.Index == nil {
		return e.Target.String() + "[]"
	}
	return e.Target.String() + "[" + e.Index.String() + "]"
}
func (e *IndexExpr) exprNode() {}

// PropertyAccess 属性/方法访问 ($obj->name, $obj?->name)
type PropertyAccess struct {
	Object Expression
	Arrow  token.Token // -> 或 ?->
	Name   *Identifier
}

func (e *PropertyAccess) Pos() token.Position { return e.Object.Pos() }
func (e *PropertyAccess) End() token.Position { return e.Name.End() }
func (e *PropertyAccess) String() string {
	return e.Object.String() + e.Arrow.Literal + e.Name.Name
}
func (e *PropertyAccess) exprNode() {}

// StaticAccess 静态访问 (Foo::BAR, Foo::$prop, self::method)
type StaticAccess struct {
	Class       Expression // Name, self, parent, static 或表达式
	DoubleColon token.Token
	Member      Expression // *Identifier 或 *Variable
}

func (e *StaticAccess) Pos() token.Position { return e.Class.Pos() }
func (e *StaticAccess) End() token.Position { return e.Member.End() }
func (e *StaticAccess) String() string {
	return e.Class.String() + "::" + e.Member.String()
}
func (e *StaticAccess) exprNode() {}

// ============================================================================
// 对象创建
// ============================================================================

// NewExpr 对象创建 (new Foo(1), new class { ... })
type NewExpr struct {
	NewToken token.Token
	Class    Expression // *Name、表达式或 *AnonymousClassExpr
	Args     []Expression
	HasArgs  bool // 区分 new Foo 和 new Foo()
	EndPos   token.Position
}

func (e *NewExpr) Pos() token.Position { return e.NewToken.Pos }
func (e *NewExpr) End() token.Position { return e.EndPos }
func (e *NewExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	if e.HasArgs {
		return "new " + e.Class.String() + "(" + strings.Join(args, ", ") + ")"
	}
	return "new " + e.Class.String()
}
func (e *NewExpr) exprNode() {}

// AnonymousClassExpr 匿名类 (new class extends Base { ... } 的 class 部分)
type AnonymousClassExpr struct {
	ClassToken token.Token
	Extends    *Name   // 可为 nil
	Implements []*Name // 可为空
	LBrace     token.Token
	Members    []ClassMember
	RBrace     token.Token
}

func (e *AnonymousClassExpr) Pos() token.Position { return e.ClassToken.Pos }
func (e *AnonymousClassExpr) End() token.Position { return e.RBrace.Span().End }
func (e *AnonymousClassExpr) String() string      { return "class@anonymous" }
func (e *AnonymousClassExpr) exprNode()           {}

// CloneExpr 克隆表达式 (clone $obj)
type CloneExpr struct {
	CloneToken token.Token
	Operand    Expression
}

func (e *CloneExpr) Pos() token.Position { return e.CloneToken.Pos }
func (e *CloneExpr) End() token.Position { return e.Operand.End() }
func (e *CloneExpr) String() string      { return "clone " + e.Operand.String() }
func (e *CloneExpr) exprNode()           {}

// ============================================================================
// 闭包
// ============================================================================

// ClosureUse 闭包捕获变量 use ($a, &$b)
type ClosureUse struct {
	ByRef bool
	Var   *Variable
}

// ClosureExpr 闭包 function ($x) use ($y) { ... }
type ClosureExpr struct {
	FunctionToken token.Token
	Params        []*Parameter
	Uses          []*ClosureUse
	ReturnType    TypeNode // 可为 nil
	Body          *BlockStmt
}

func (e *ClosureExpr) Pos() token.Position { return e.FunctionToken.Pos }
func (e *ClosureExpr) End() token.Position { return e.Body.End() }
func (e *ClosureExpr) String() string      { return "function(...) {...}" }
func (e *ClosureExpr) exprNode()           {}

// ArrowFnExpr 箭头函数 fn ($x) => $x * 2
type ArrowFnExpr struct {
	FnToken    token.Token
	Params     []*Parameter
	ReturnType TypeNode // 可为 nil
	Expr       Expression
}

func (e *ArrowFnExpr) Pos() token.Position { return e.FnToken.Pos }
func (e *ArrowFnExpr) End() token.Position { return e.Expr.End() }
func (e *ArrowFnExpr) String() string      { return "fn(...) => " + e.Expr.String() }
func (e *ArrowFnExpr) exprNode()           {}
