package parser

import (
	"strings"

	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 标识符与名称
// ============================================================================

// ident 解析裸标识符
//
// 成员名允许使用部分关键字（case、as 等在方法名位置是合法的），
// 这里接受任何关键字 token 作为标识符。
func (p *Parser) ident() (*ast.Identifier, error) {
	tok := p.peek()
	if tok.Type != token.IDENT && !token.IsKeyword(tok.Type) {
		return nil, newError(tok.Pos, i18n.ErrExpectedIdent)
	}
	p.advance()
	return &ast.Identifier{Token: tok, Name: tok.Literal}, nil
}

// strictIdent 只接受 IDENT，用于类型声明的名称位置
func (p *Parser) strictIdent() (*ast.Identifier, error) {
	tok, err := p.skip(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Token: tok, Name: tok.Literal}, nil
}

// variable 解析变量 $name
func (p *Parser) variable() (*ast.Variable, error) {
	tok := p.peek()
	if tok.Type != token.VARIABLE {
		return nil, newError(tok.Pos, i18n.ErrExpectedVariable)
	}
	p.advance()
	return &ast.Variable{Token: tok, Name: strings.TrimPrefix(tok.Literal, "$")}, nil
}

// fullName 解析可限定名称 Foo、\Foo、App\Models\User
func (p *Parser) fullName() (*ast.Name, error) {
	var (
		toks []token.Token
		sb   strings.Builder
	)

	if p.check(token.BACKSLASH) {
		toks = append(toks, p.advance())
		sb.WriteByte('\\')
	}

	first, err := p.skip(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	toks = append(toks, first)
	sb.WriteString(first.Literal)

	for p.check(token.BACKSLASH) {
		toks = append(toks, p.advance())
		sb.WriteByte('\\')
		seg, err := p.skip(token.IDENT, "identifier")
		if err != nil {
			return nil, err
		}
		toks = append(toks, seg)
		sb.WriteString(seg.Literal)
	}

	return &ast.Name{Tokens: toks, Value: sb.String()}, nil
}
