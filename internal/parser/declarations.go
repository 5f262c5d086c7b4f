package parser

import (
	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 顶层声明
// ============================================================================

// topLevel 解析一个顶层单元，返回声明或语句二者之一
func (p *Parser) topLevel() (ast.Declaration, ast.Statement, error) {
	if _, err := p.gatherAttributes(); err != nil {
		return nil, nil, err
	}

	mods := p.collectModifiers()

	switch p.peek().Type {
	case token.CLASS:
		group, err := classGroup(mods)
		if err != nil {
			return nil, nil, err
		}
		decl, err := p.classDecl(group)
		return decl, nil, err

	case token.INTERFACE:
		if err := rejectModifiers(mods, "interface"); err != nil {
			return nil, nil, err
		}
		decl, err := p.interfaceDecl()
		return decl, nil, err

	case token.TRAIT:
		if err := rejectModifiers(mods, "trait"); err != nil {
			return nil, nil, err
		}
		decl, err := p.traitDecl()
		return decl, nil, err

	case token.ENUM:
		if err := rejectModifiers(mods, "enum"); err != nil {
			return nil, nil, err
		}
		decl, err := p.enumDecl()
		return decl, nil, err

	case token.FUNCTION:
		// function name() 是声明，function () 是闭包表达式
		if p.peekNext().Type == token.IDENT {
			decl, err := p.functionDecl()
			return decl, nil, err
		}
	}

	if len(mods) > 0 {
		return nil, nil, unexpectedToken(p.peek(),
			"`class`", "`interface`", "`trait`", "`enum`")
	}

	stmt, err := p.statement()
	return nil, stmt, err
}

// rejectModifiers 报告不接受任何修饰符的声明前的修饰符
func rejectModifiers(mods []token.Token, context string) error {
	if len(mods) == 0 {
		return nil
	}
	_, err := classify(mods, context)
	return err
}

// ============================================================================
// 命名空间与导入
// ============================================================================

// namespaceDecl 解析 namespace App\Http;
func (p *Parser) namespaceDecl() (*ast.NamespaceDecl, error) {
	nsTok := p.advance() // namespace

	name, err := p.fullName()
	if err != nil {
		return nil, err
	}
	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	return &ast.NamespaceDecl{NamespaceToken: nsTok, Name: name, Semicolon: semi}, nil
}

// useImport 解析 use App\Models\User as U;
func (p *Parser) useImport() (*ast.UseImport, error) {
	useTok := p.advance() // use

	name, err := p.fullName()
	if err != nil {
		return nil, err
	}
	imp := &ast.UseImport{UseToken: useTok, Name: name}

	if p.match(token.AS) {
		alias, err := p.strictIdent()
		if err != nil {
			return nil, err
		}
		imp.Alias = alias
	}

	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	imp.Semicolon = semi
	return imp, nil
}

// ============================================================================
// 类
// ============================================================================

func (p *Parser) classDecl(group *ast.ClassModifierGroup) (*ast.ClassDecl, error) {
	classTok := p.advance() // class

	name, err := p.strictIdent()
	if err != nil {
		return nil, err
	}

	decl := &ast.ClassDecl{
		Attributes: p.takeAttributes(),
		Modifiers:  group,
		ClassToken: classTok,
		Name:       name,
	}

	if p.match(token.EXTENDS) {
		base, err := p.fullName()
		if err != nil {
			return nil, err
		}
		decl.Extends = base
	}

	if p.match(token.IMPLEMENTS) {
		for {
			iface, err := p.fullName()
			if err != nil {
				return nil, err
			}
			decl.Implements = append(decl.Implements, iface)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	lbrace, err := p.skipLeftBrace()
	if err != nil {
		return nil, err
	}
	decl.LBrace = lbrace

	p.pushScope(scope{kind: scopeClass, name: name.Name})
	defer p.popScope()

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		member, err := p.classLikeMember()
		if err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, member)
	}

	rbrace, err := p.skipRightBrace()
	if err != nil {
		return nil, err
	}
	decl.RBrace = rbrace
	return decl, nil
}

// ============================================================================
// 接口
// ============================================================================

func (p *Parser) interfaceDecl() (*ast.InterfaceDecl, error) {
	ifaceTok := p.advance() // interface

	name, err := p.strictIdent()
	if err != nil {
		return nil, err
	}

	decl := &ast.InterfaceDecl{
		Attributes:     p.takeAttributes(),
		InterfaceToken: ifaceTok,
		Name:           name,
	}

	// 接口可以一次继承多个接口
	if p.match(token.EXTENDS) {
		for {
			base, err := p.fullName()
			if err != nil {
				return nil, err
			}
			decl.Extends = append(decl.Extends, base)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	lbrace, err := p.skipLeftBrace()
	if err != nil {
		return nil, err
	}
	decl.LBrace = lbrace

	p.pushScope(scope{kind: scopeClass, name: name.Name})
	defer p.popScope()

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		member, err := p.interfaceMember()
		if err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, member)
	}

	rbrace, err := p.skipRightBrace()
	if err != nil {
		return nil, err
	}
	decl.RBrace = rbrace
	return decl, nil
}

// ============================================================================
// Trait
// ============================================================================

func (p *Parser) traitDecl() (*ast.TraitDecl, error) {
	traitTok := p.advance() // trait

	name, err := p.strictIdent()
	if err != nil {
		return nil, err
	}

	decl := &ast.TraitDecl{
		Attributes: p.takeAttributes(),
		TraitToken: traitTok,
		Name:       name,
	}

	lbrace, err := p.skipLeftBrace()
	if err != nil {
		return nil, err
	}
	decl.LBrace = lbrace

	p.pushScope(scope{kind: scopeTrait, name: name.Name})
	defer p.popScope()

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		member, err := p.classLikeMember()
		if err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, member)
	}

	rbrace, err := p.skipRightBrace()
	if err != nil {
		return nil, err
	}
	decl.RBrace = rbrace
	return decl, nil
}

// ============================================================================
// 枚举
// ============================================================================

func (p *Parser) enumDecl() (*ast.EnumDecl, error) {
	enumTok := p.advance() // enum

	name, err := p.strictIdent()
	if err != nil {
		return nil, err
	}

	decl := &ast.EnumDecl{
		Attributes: p.takeAttributes(),
		EnumToken:  enumTok,
		Name:       name,
	}

	// enum Suit: string 声明取值类型
	if p.match(token.COLON) {
		backing, err := p.dataType()
		if err != nil {
			return nil, err
		}
		decl.Backing = backing
	}

	if p.match(token.IMPLEMENTS) {
		for {
			iface, err := p.fullName()
			if err != nil {
				return nil, err
			}
			decl.Implements = append(decl.Implements, iface)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	lbrace, err := p.skipLeftBrace()
	if err != nil {
		return nil, err
	}
	decl.LBrace = lbrace

	p.pushScope(scope{kind: scopeEnum, name: name.Name, backed: decl.IsBacked()})
	defer p.popScope()

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		member, err := p.enumMember()
		if err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, member)
	}

	rbrace, err := p.skipRightBrace()
	if err != nil {
		return nil, err
	}
	decl.RBrace = rbrace
	return decl, nil
}
