package ast

import (
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 修饰符组
// ============================================================================
//
// 修饰符组是已经过校验的修饰符集合，按所属构造分类。
// 原始修饰符 token 的组合合法性由 parser 的修饰符分类器校验，
// 校验通过后产出这里的组类型，保证：
//   - 最多一个可见性修饰符
//   - 无重复、无冲突的组合
//
// 组内保留原始 token，供诊断信息定位使用。
//
// ============================================================================

// Visibility 可见性级别
type Visibility int

const (
	VisibilityDefault Visibility = iota // 未显式声明（等价于 public）
	VisibilityPublic
	VisibilityProtected
	VisibilityPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityPrivate:
		return "private"
	default:
		return ""
	}
}

// VisibilityModifier 带位置的可见性修饰符
type VisibilityModifier struct {
	Token token.Token
	Kind  Visibility
}

// ============================================================================
// 各构造的修饰符组
// ============================================================================

// MethodModifierGroup 类方法修饰符组
type MethodModifierGroup struct {
	Visibility *VisibilityModifier // 可为 nil
	Static     *token.Token
	Abstract   *token.Token
	Final      *token.Token
}

func (g *MethodModifierGroup) HasStatic() bool   { return g != nil && g.Static != nil }
func (g *MethodModifierGroup) HasAbstract() bool { return g != nil && g.Abstract != nil }
func (g *MethodModifierGroup) HasFinal() bool    { return g != nil && g.Final != nil }

// VisibilityKind 返回方法的可见性，未显式声明时为 VisibilityDefault
func (g *MethodModifierGroup) VisibilityKind() Visibility {
	if g == nil || g.Visibility == nil {
		return VisibilityDefault
	}
	return g.Visibility.Kind
}

// PropertyModifierGroup 属性修饰符组
type PropertyModifierGroup struct {
	Visibility *VisibilityModifier // 可为 nil
	Static     *token.Token
	Readonly   *token.Token
}

func (g *PropertyModifierGroup) HasStatic() bool   { return g != nil && g.Static != nil }
func (g *PropertyModifierGroup) HasReadonly() bool { return g != nil && g.Readonly != nil }

func (g *PropertyModifierGroup) VisibilityKind() Visibility {
	if g == nil || g.Visibility == nil {
		return VisibilityDefault
	}
	return g.Visibility.Kind
}

// ConstantModifierGroup 类常量修饰符组
type ConstantModifierGroup struct {
	Visibility *VisibilityModifier // 可为 nil
	Final      *token.Token
}

func (g *ConstantModifierGroup) HasFinal() bool { return g != nil && g.Final != nil }

func (g *ConstantModifierGroup) VisibilityKind() Visibility {
	if g == nil || g.Visibility == nil {
		return VisibilityDefault
	}
	return g.Visibility.Kind
}

// ClassModifierGroup 类声明修饰符组 (abstract / final)
type ClassModifierGroup struct {
	Abstract *token.Token
	Final    *token.Token
}

func (g *ClassModifierGroup) HasAbstract() bool { return g != nil && g.Abstract != nil }
func (g *ClassModifierGroup) HasFinal() bool    { return g != nil && g.Final != nil }

// PromotedPropertyModifierGroup 构造器提升属性的修饰符组
//
// 出现在构造器参数上，如 function __construct(private readonly int $id)。
type PromotedPropertyModifierGroup struct {
	Visibility *VisibilityModifier // 可为 nil
	Readonly   *token.Token
}

func (g *PromotedPropertyModifierGroup) IsEmpty() bool {
	return g == nil || (g.Visibility == nil && g.Readonly == nil)
}

func (g *PromotedPropertyModifierGroup) HasReadonly() bool { return g != nil && g.Readonly != nil }
