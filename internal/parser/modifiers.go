package parser

import (
	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 修饰符分类
// ============================================================================
//
// collectModifiers 只收集原始 token，组合合法性由各构造专属的
// 分类器校验。所有分类器共享同样的基础规则：
//   - 可见性修饰符最多出现一次
//   - 同一修饰符不能重复
//   - final 与 abstract 互斥
// 在此之上，每个构造限定自己接受的修饰符集合。
//
// ============================================================================

// collectModifiers 收集连续的修饰符 token
func (p *Parser) collectModifiers() []token.Token {
	var mods []token.Token
	for token.IsModifier(p.peek().Type) {
		mods = append(mods, p.advance())
	}
	return mods
}

// modifierBag 分类过程中的中间状态
type modifierBag struct {
	visibility *ast.VisibilityModifier
	static     *token.Token
	abstract   *token.Token
	final      *token.Token
	readonly   *token.Token
}

// classify 按共享规则归类修饰符，allowed 限定可接受的集合
//
// context 用于诊断信息，如 "method"、"property"。
func classify(mods []token.Token, context string, allowed ...token.TokenType) (*modifierBag, error) {
	bag := &modifierBag{}

	permitted := func(tt token.TokenType) bool {
		for _, a := range allowed {
			if tt == a {
				return true
			}
		}
		return false
	}

	for i := range mods {
		m := mods[i]
		if !permitted(m.Type) {
			return nil, newError(m.Pos, i18n.ErrModifierNotAllowed, m.Literal, context)
		}

		switch m.Type {
		case token.PUBLIC, token.PROTECTED, token.PRIVATE:
			if bag.visibility != nil {
				return nil, newError(m.Pos, i18n.ErrMultipleVisibility)
			}
			kind := ast.VisibilityPublic
			switch m.Type {
			case token.PROTECTED:
				kind = ast.VisibilityProtected
			case token.PRIVATE:
				kind = ast.VisibilityPrivate
			}
			bag.visibility = &ast.VisibilityModifier{Token: m, Kind: kind}

		case token.STATIC:
			if bag.static != nil {
				return nil, newError(m.Pos, i18n.ErrDuplicateModifier, m.Literal)
			}
			bag.static = &mods[i]

		case token.ABSTRACT:
			if bag.abstract != nil {
				return nil, newError(m.Pos, i18n.ErrDuplicateModifier, m.Literal)
			}
			if bag.final != nil {
				return nil, newError(m.Pos, i18n.ErrFinalWithAbstract)
			}
			bag.abstract = &mods[i]

		case token.FINAL:
			if bag.final != nil {
				return nil, newError(m.Pos, i18n.ErrDuplicateModifier, m.Literal)
			}
			if bag.abstract != nil {
				return nil, newError(m.Pos, i18n.ErrFinalWithAbstract)
			}
			bag.final = &mods[i]

		case token.READONLY:
			if bag.readonly != nil {
				return nil, newError(m.Pos, i18n.ErrDuplicateModifier, m.Literal)
			}
			bag.readonly = &mods[i]
		}
	}
	return bag, nil
}

// ============================================================================
// 各构造的分类器
// ============================================================================

// methodGroup 类/trait/匿名类方法的修饰符
func methodGroup(mods []token.Token) (*ast.MethodModifierGroup, error) {
	bag, err := classify(mods, "method",
		token.PUBLIC, token.PROTECTED, token.PRIVATE,
		token.STATIC, token.ABSTRACT, token.FINAL)
	if err != nil {
		return nil, err
	}
	return &ast.MethodModifierGroup{
		Visibility: bag.visibility,
		Static:     bag.static,
		Abstract:   bag.abstract,
		Final:      bag.final,
	}, nil
}

// enumMethodGroup 枚举方法的修饰符：不允许 abstract
func enumMethodGroup(mods []token.Token) (*ast.MethodModifierGroup, error) {
	bag, err := classify(mods, "enum method",
		token.PUBLIC, token.PROTECTED, token.PRIVATE,
		token.STATIC, token.FINAL)
	if err != nil {
		return nil, err
	}
	return &ast.MethodModifierGroup{
		Visibility: bag.visibility,
		Static:     bag.static,
		Final:      bag.final,
	}, nil
}

// interfaceMethodGroup 接口方法的修饰符：仅 public 和 static
func interfaceMethodGroup(mods []token.Token) (*ast.MethodModifierGroup, error) {
	bag, err := classify(mods, "interface method", token.PUBLIC, token.STATIC)
	if err != nil {
		return nil, err
	}
	return &ast.MethodModifierGroup{
		Visibility: bag.visibility,
		Static:     bag.static,
	}, nil
}

// propertyGroup 属性的修饰符
func propertyGroup(mods []token.Token) (*ast.PropertyModifierGroup, error) {
	bag, err := classify(mods, "property",
		token.PUBLIC, token.PROTECTED, token.PRIVATE,
		token.STATIC, token.READONLY)
	if err != nil {
		return nil, err
	}
	return &ast.PropertyModifierGroup{
		Visibility: bag.visibility,
		Static:     bag.static,
		Readonly:   bag.readonly,
	}, nil
}

// constantGroup 类/trait/枚举常量的修饰符
func constantGroup(mods []token.Token) (*ast.ConstantModifierGroup, error) {
	bag, err := classify(mods, "constant",
		token.PUBLIC, token.PROTECTED, token.PRIVATE, token.FINAL)
	if err != nil {
		return nil, err
	}
	return &ast.ConstantModifierGroup{
		Visibility: bag.visibility,
		Final:      bag.final,
	}, nil
}

// interfaceConstantGroup 接口常量的修饰符：仅 public 和 final
func interfaceConstantGroup(mods []token.Token) (*ast.ConstantModifierGroup, error) {
	bag, err := classify(mods, "interface constant", token.PUBLIC, token.FINAL)
	if err != nil {
		return nil, err
	}
	return &ast.ConstantModifierGroup{
		Visibility: bag.visibility,
		Final:      bag.final,
	}, nil
}

// classGroup 类声明本身的修饰符 (abstract class / final class)
func classGroup(mods []token.Token) (*ast.ClassModifierGroup, error) {
	bag, err := classify(mods, "class", token.ABSTRACT, token.FINAL)
	if err != nil {
		return nil, err
	}
	return &ast.ClassModifierGroup{
		Abstract: bag.abstract,
		Final:    bag.final,
	}, nil
}

// promotedGroup 构造器提升属性参数的修饰符
func promotedGroup(mods []token.Token) (*ast.PromotedPropertyModifierGroup, error) {
	bag, err := classify(mods, "promoted property",
		token.PUBLIC, token.PROTECTED, token.PRIVATE, token.READONLY)
	if err != nil {
		return nil, err
	}
	return &ast.PromotedPropertyModifierGroup{
		Visibility: bag.visibility,
		Readonly:   bag.readonly,
	}, nil
}
