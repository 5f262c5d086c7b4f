package parser

import (
	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 函数与参数
// ============================================================================

// functionDecl 顶层函数声明
func (p *Parser) functionDecl() (*ast.FunctionDecl, error) {
	fnTok := p.advance() // function

	name, err := p.strictIdent()
	if err != nil {
		return nil, err
	}

	params, err := p.parameterList(false)
	if err != nil {
		return nil, err
	}

	decl := &ast.FunctionDecl{
		Attributes:    p.takeAttributes(),
		FunctionToken: fnTok,
		Name:          name,
		Params:        params,
	}

	if p.match(token.COLON) {
		retType, err := p.dataType()
		if err != nil {
			return nil, err
		}
		decl.ReturnType = retType
	}

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}
	decl.Body = body
	return decl, nil
}

// parameterList 解析 ( param, ... )
//
// allowPromotion 仅在构造器中为 true，此时参数可以携带
// 可见性/readonly 修饰符（构造器提升属性）。
func (p *Parser) parameterList(allowPromotion bool) ([]*ast.Parameter, error) {
	if _, err := p.skipLeftParen(); err != nil {
		return nil, err
	}

	var params []*ast.Parameter
	for !p.check(token.RPAREN) {
		param, err := p.parameter(allowPromotion)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.match(token.COMMA) {
			break
		}
	}

	if _, err := p.skipRightParen(); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parameter(allowPromotion bool) (*ast.Parameter, error) {
	param := &ast.Parameter{}

	if _, err := p.gatherAttributes(); err != nil {
		return nil, err
	}
	param.Attributes = p.takeAttributes()

	mods := p.collectModifiers()
	if len(mods) > 0 {
		if !allowPromotion {
			m := mods[0]
			return nil, newError(m.Pos, i18n.ErrModifierNotAllowed, m.Literal, "parameter")
		}
		group, err := promotedGroup(mods)
		if err != nil {
			return nil, err
		}
		param.Promoted = group
	}

	typ, err := p.optionalDataType()
	if err != nil {
		return nil, err
	}
	param.Type = typ

	if p.match(token.BIT_AND) {
		param.ByRef = true
	}
	if p.match(token.ELLIPSIS) {
		param.Variadic = true
	}

	v, err := p.variable()
	if err != nil {
		return nil, err
	}
	param.Var = v

	if p.match(token.ASSIGN) {
		if param.Promoted.HasReadonly() {
			return nil, newError(p.previous().Pos, i18n.ErrReadonlyWithDefault)
		}
		def, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		param.Default = def
	}
	return param, nil
}
