package parser

import (
	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 属性标注
// ============================================================================
//
// 属性组收集到 p.attrs 暂存，由随后解析的声明通过 takeAttributes
// 显式取走。成员分发器先调用 gatherAttributes，再根据下一个 token
// 决定走哪条成员分支。
//
// ============================================================================

// gatherAttributes 收集当前位置的所有属性组
//
// 返回值表示是否收集到了至少一个属性组。
func (p *Parser) gatherAttributes() (bool, error) {
	found := false
	for p.check(token.ATTRIBUTE) {
		group, err := p.attributeGroup()
		if err != nil {
			return found, err
		}
		p.attrs = append(p.attrs, group)
		found = true
	}
	return found, nil
}

// takeAttributes 取走所有暂存的属性组
func (p *Parser) takeAttributes() []*ast.AttributeGroup {
	attrs := p.attrs
	p.attrs = nil
	return attrs
}

// attributeGroup 解析 #[A, B(1, 2)]
func (p *Parser) attributeGroup() (*ast.AttributeGroup, error) {
	hash := p.advance() // #[

	group := &ast.AttributeGroup{HashToken: hash}
	for {
		attr, err := p.attribute()
		if err != nil {
			return nil, err
		}
		group.Attrs = append(group.Attrs, attr)

		if !p.match(token.COMMA) {
			break
		}
		// 允许尾逗号 #[A,]
		if p.check(token.RBRACKET) {
			break
		}
	}

	rbracket, err := p.skip(token.RBRACKET, "`]`")
	if err != nil {
		return nil, err
	}
	group.RBracket = rbracket
	return group, nil
}

// attribute 解析单个属性 Name 或 Name(args)
func (p *Parser) attribute() (*ast.Attribute, error) {
	name, err := p.fullName()
	if err != nil {
		return nil, err
	}
	attr := &ast.Attribute{Name: name}

	if p.match(token.LPAREN) {
		for !p.check(token.RPAREN) {
			arg, err := p.expression(Lowest)
			if err != nil {
				return nil, err
			}
			attr.Args = append(attr.Args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.skipRightParen(); err != nil {
			return nil, err
		}
	}
	return attr, nil
}
