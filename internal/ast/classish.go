package ast

import (
	"strings"

	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 属性标注 (attributes)
// ============================================================================

// Attribute 单个属性，如 Route("/users") 或 Deprecated
type Attribute struct {
	Name *Name
	Args []Expression // 无括号时为 nil
}

// AttributeGroup 一组属性 #[A, B(1)]
type AttributeGroup struct {
	HashToken token.Token // #[ token
	Attrs     []*Attribute
	RBracket  token.Token
}

func (g *AttributeGroup) Pos() token.Position { return g.HashToken.Pos }
func (g *AttributeGroup) End() token.Position { return g.RBracket.Span().End }
func (g *AttributeGroup) String() string {
	parts := make([]string, len(g.Attrs))
	for i, a := range g.Attrs {
		parts[i] = a.Name.Value
	}
	return "#[" + strings.Join(parts, ", ") + "]"
}

// ============================================================================
// 成员接口
// ============================================================================

// ClassMember 类/trait/匿名类体内的成员
//
// 实现者：MethodDecl、PropertyDecl、ClassConstDecl、TraitUseStmt。
// 接口体只允许 MethodDecl 和 ClassConstDecl，由成员分发器保证。
type ClassMember interface {
	Node
	classMemberNode()
}

// EnumMember 枚举体内的成员
//
// 实现者：EnumCase、MethodDecl、ClassConstDecl。
// 无值枚举的 case 不携带值、有值枚举的 case 必须携带值，
// 由成员分发器在解析时强制。
type EnumMember interface {
	Node
	enumMemberNode()
}

// ============================================================================
// 类型声明
// ============================================================================

// ClassDecl 类声明
type ClassDecl struct {
	Attributes []*AttributeGroup
	Modifiers  *ClassModifierGroup
	ClassToken token.Token
	Name       *Identifier
	Extends    *Name   // 可为 nil
	Implements []*Name // 可为空
	LBrace     token.Token
	Members    []ClassMember
	RBrace     token.Token
}

func (d *ClassDecl) Pos() token.Position {
	if len(d.Attributes) > 0 {
		return d.Attributes[0].Pos()
	}
	return d.ClassToken.Pos
}
func (d *ClassDecl) End() token.Position { return d.RBrace.Span().End }
func (d *ClassDecl) String() string      { return "class " + d.Name.Name }
func (d *ClassDecl) declNode()           {}

// InterfaceDecl 接口声明
type InterfaceDecl struct {
	Attributes     []*AttributeGroup
	InterfaceToken token.Token
	Name           *Identifier
	Extends        []*Name // 接口可以继承多个接口
	LBrace         token.Token
	Members        []ClassMember // 仅 MethodDecl / ClassConstDecl
	RBrace         token.Token
}

func (d *InterfaceDecl) Pos() token.Position {
	if len(d.Attributes) > 0 {
		return d.Attributes[0].Pos()
	}
	return d.InterfaceToken.Pos
}
func (d *InterfaceDecl) End() token.Position { return d.RBrace.Span().End }
func (d *InterfaceDecl) String() string      { return "interface " + d.Name.Name }
func (d *InterfaceDecl) declNode()           {}

// TraitDecl trait 声明
type TraitDecl struct {
	Attributes []*AttributeGroup
	TraitToken token.Token
	Name       *Identifier
	LBrace     token.Token
	Members    []ClassMember
	RBrace     token.Token
}

func (d *TraitDecl) Pos() token.Position {
	if len(d.Attributes) > 0 {
		return d.Attributes[0].Pos()
	}
	return d.TraitToken.Pos
}
func (d *TraitDecl) End() token.Position { return d.RBrace.Span().End }
func (d *TraitDecl) String() string      { return "trait " + d.Name.Name }
func (d *TraitDecl) declNode()           {}

// EnumDecl 枚举声明
//
// Backing 为 nil 时是无值枚举，否则是有值枚举。
type EnumDecl struct {
	Attributes []*AttributeGroup
	EnumToken  token.Token
	Name       *Identifier
	Backing    TypeNode // 可为 nil
	Implements []*Name
	LBrace     token.Token
	Members    []EnumMember
	RBrace     token.Token
}

func (d *EnumDecl) Pos() token.Position {
	if len(d.Attributes) > 0 {
		return d.Attributes[0].Pos()
	}
	return d.EnumToken.Pos
}
func (d *EnumDecl) End() token.Position { return d.RBrace.Span().End }
func (d *EnumDecl) String() string      { return "enum " + d.Name.Name }
func (d *EnumDecl) declNode()           {}

// IsBacked 判断是否为有值枚举
func (d *EnumDecl) IsBacked() bool { return d.Backing != nil }

// FunctionDecl 顶层函数声明
type FunctionDecl struct {
	Attributes    []*AttributeGroup
	FunctionToken token.Token
	Name          *Identifier
	Params        []*Parameter
	ReturnType    TypeNode // 可为 nil
	Body          *BlockStmt
}

func (d *FunctionDecl) Pos() token.Position {
	if len(d.Attributes) > 0 {
		return d.Attributes[0].Pos()
	}
	return d.FunctionToken.Pos
}
func (d *FunctionDecl) End() token.Position { return d.Body.End() }
func (d *FunctionDecl) String() string      { return "function " + d.Name.Name }
func (d *FunctionDecl) declNode()           {}

// ============================================================================
// 参数
// ============================================================================

// Parameter 函数/方法参数
//
// Promoted 非空时表示构造器提升属性参数。
type Parameter struct {
	Attributes []*AttributeGroup
	Promoted   *PromotedPropertyModifierGroup // 可为 nil
	Type       TypeNode                       // 可为 nil
	ByRef      bool
	Variadic   bool
	Var        *Variable
	Default    Expression // 可为 nil
}

// ============================================================================
// 类成员
// ============================================================================

// MethodDecl 方法声明
//
// Body 为 nil 表示抽象方法或接口方法（以分号结尾）。
type MethodDecl struct {
	Attributes    []*AttributeGroup
	Modifiers     *MethodModifierGroup
	Start         token.Position // 含修饰符的起始位置
	FunctionToken token.Token
	ByRef         bool // 按引用返回 function &m()
	Name          *Identifier
	Params        []*Parameter
	ReturnType    TypeNode // 可为 nil
	Body          *BlockStmt
	Semicolon     token.Token // Body 为 nil 时有效
}

func (d *MethodDecl) Pos() token.Position {
	if len(d.Attributes) > 0 {
		return d.Attributes[0].Pos()
	}
	return d.Start
}
func (d *MethodDecl) End() token.Position {
	if d.Body != nil {
		return d.Body.End()
	}
	return d.Semicolon.Span().End
}
func (d *MethodDecl) String() string  { return "method " + d.Name.Name }
func (d *MethodDecl) classMemberNode() {}
func (d *MethodDecl) enumMemberNode()  {}

// PropertyDecl 属性声明
type PropertyDecl struct {
	Attributes []*AttributeGroup
	Modifiers  *PropertyModifierGroup
	Start      token.Position // 含修饰符的起始位置
	Type       TypeNode       // 可为 nil
	Var        *Variable
	Default    Expression // 可为 nil
	Semicolon  token.Token
}

func (d *PropertyDecl) Pos() token.Position {
	if len(d.Attributes) > 0 {
		return d.Attributes[0].Pos()
	}
	return d.Start
}
func (d *PropertyDecl) End() token.Position { return d.Semicolon.Span().End }
func (d *PropertyDecl) String() string      { return "property $" + d.Var.Name }
func (d *PropertyDecl) classMemberNode()    {}

// ClassConstDecl 类常量声明
//
// Span 从起始关键字（或修饰符）一直覆盖到结束分号。
type ClassConstDecl struct {
	Attributes []*AttributeGroup
	Modifiers  *ConstantModifierGroup
	Start      token.Position // 含修饰符的起始位置
	ConstToken token.Token
	Name       *Identifier
	Value      Expression
	Semicolon  token.Token
}

func (d *ClassConstDecl) Pos() token.Position {
	if len(d.Attributes) > 0 {
		return d.Attributes[0].Pos()
	}
	return d.Start
}
func (d *ClassConstDecl) End() token.Position { return d.Semicolon.Span().End }
func (d *ClassConstDecl) String() string      { return "const " + d.Name.Name }
func (d *ClassConstDecl) classMemberNode()    {}
func (d *ClassConstDecl) enumMemberNode()     {}

// ============================================================================
// trait 导入
// ============================================================================

// TraitUseStmt 类体内的 trait 导入
//
// use A, B; 或 use A, B { adaptations }
type TraitUseStmt struct {
	UseToken    token.Token
	Traits      []*Name
	Adaptations []TraitAdaptation // 无大括号块时为空
	EndPos      token.Position    // 分号或右大括号的结束位置
}

func (d *TraitUseStmt) Pos() token.Position { return d.UseToken.Pos }
func (d *TraitUseStmt) End() token.Position { return d.EndPos }
func (d *TraitUseStmt) String() string {
	parts := make([]string, len(d.Traits))
	for i, t := range d.Traits {
		parts[i] = t.Value
	}
	return "use " + strings.Join(parts, ", ")
}
func (d *TraitUseStmt) classMemberNode() {}

// TraitAdaptation trait 适配规则
//
// 三种变体：
//   - TraitAlias:      A::foo as bar / foo as public bar
//   - TraitVisibility: A::foo as protected
//   - TraitPrecedence: A::foo insteadof B, C
type TraitAdaptation interface {
	adaptationNode()
}

// TraitAlias 重命名适配（可同时修改可见性）
type TraitAlias struct {
	Trait      *Name // 可为 nil (未限定方法名)
	Method     *Identifier
	Visibility *VisibilityModifier // 可为 nil
	Alias      *Identifier
}

func (a *TraitAlias) adaptationNode() {}

// TraitVisibilityChange 仅修改可见性的适配
type TraitVisibilityChange struct {
	Trait      *Name // 可为 nil
	Method     *Identifier
	Visibility *VisibilityModifier
}

func (a *TraitVisibilityChange) adaptationNode() {}

// TraitPrecedence 优先级适配
//
// InsteadOf 非空，记录被覆盖的 trait 名称（按书写顺序）。
type TraitPrecedence struct {
	Trait     *Name
	Method    *Identifier
	InsteadOf []*Name
}

func (a *TraitPrecedence) adaptationNode() {}

// ============================================================================
// 枚举成员
// ============================================================================

// EnumCase 枚举成员 case Hearts; 或 case Hearts = 'H';
//
// Value 为 nil 时属于无值枚举，非 nil 时属于有值枚举。
// 解析器保证值的有无与枚举的种类一致。case 不接受属性标注，
// 带属性的枚举成员只能是方法。
type EnumCase struct {
	CaseToken token.Token
	Name      *Identifier
	Value     Expression // 无值枚举恒为 nil
	Semicolon token.Token
}

func (d *EnumCase) Pos() token.Position { return d.CaseToken.Pos }
func (d *EnumCase) End() token.Position { return d.Semicolon.Span().End }
func (d *EnumCase) String() string      { return "case " + d.Name.Name }
func (d *EnumCase) enumMemberNode()     {}
