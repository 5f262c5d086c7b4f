package parser

import (
	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 类型注解
// ============================================================================
//
// 类型语法：
//   type         = "?" atomic | union | intersection | atomic
//   union        = atomic "|" atomic { "|" atomic }
//   intersection = atomic "&" atomic { "&" atomic }
//   atomic       = "callable" | name
//
// 可空类型不参与联合/交叉，联合与交叉不可混用（需要括号的
// DNF 类型不支持）。
//
// ============================================================================

// beginsType 判断当前 token 是否可以作为类型注解的开头
func (p *Parser) beginsType() bool {
	switch p.peek().Type {
	case token.QUESTION, token.IDENT, token.BACKSLASH,
		token.CALLABLE, token.SELF, token.PARENT, token.STATIC, token.NULL:
		return true
	}
	return false
}

// optionalDataType 解析可选的类型注解，缺省时返回 nil
func (p *Parser) optionalDataType() (ast.TypeNode, error) {
	if !p.beginsType() {
		return nil, nil
	}
	return p.dataType()
}

// dataType 解析必选的类型注解
func (p *Parser) dataType() (ast.TypeNode, error) {
	if p.check(token.QUESTION) {
		question := p.advance()
		inner, err := p.atomicType()
		if err != nil {
			return nil, err
		}
		return &ast.NullableType{Question: question, Inner: inner}, nil
	}

	first, err := p.atomicType()
	if err != nil {
		return nil, err
	}

	switch {
	case p.check(token.BIT_OR):
		types := []ast.TypeNode{first}
		for p.match(token.BIT_OR) {
			next, err := p.atomicType()
			if err != nil {
				return nil, err
			}
			types = append(types, next)
		}
		return &ast.UnionType{Types: types}, nil

	case p.checkIntersection():
		types := []ast.TypeNode{first}
		for p.checkIntersection() {
			p.advance() // &
			next, err := p.atomicType()
			if err != nil {
				return nil, err
			}
			types = append(types, next)
		}
		return &ast.IntersectionType{Types: types}, nil
	}
	return first, nil
}

// checkIntersection 区分交叉类型的 `&` 和按引用参数的 `&$x`
func (p *Parser) checkIntersection() bool {
	if !p.check(token.BIT_AND) {
		return false
	}
	switch p.peekNext().Type {
	case token.IDENT, token.BACKSLASH, token.CALLABLE,
		token.SELF, token.PARENT, token.STATIC, token.NULL:
		return true
	}
	return false
}

// atomicType 解析不可再分的类型
func (p *Parser) atomicType() (ast.TypeNode, error) {
	switch p.peek().Type {
	case token.CALLABLE:
		return &ast.CallableType{Token: p.advance()}, nil

	case token.SELF, token.PARENT, token.STATIC, token.NULL:
		tok := p.advance()
		name := &ast.Name{Tokens: []token.Token{tok}, Value: tok.Literal}
		return &ast.NamedType{Name: name}, nil

	case token.IDENT, token.BACKSLASH:
		name, err := p.fullName()
		if err != nil {
			return nil, err
		}
		return &ast.NamedType{Name: name}, nil
	}
	return nil, newError(p.peek().Pos, i18n.ErrExpectedType)
}
