package parser

import (
	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 类体成员
// ============================================================================
//
// 三个成员分发器分别服务三种声明体：
//   - interfaceMember: 接口体，只接受方法和常量
//   - enumMember:      枚举体，接受 case、方法和常量
//   - classLikeMember: 类/trait/匿名类体，接受 trait 导入、常量、
//                      方法和属性
//
// 每个分发器先收集属性组，再收集修饰符，最后根据下一个 token
// 选择成员分支。收集到属性标注时成员只能是方法：case、const 和
// use 分支都要求前面没有属性。走错分支不做回溯，直接报
// "非预期 token"。
//
// ============================================================================

// interfaceMember 解析接口体内的单个成员
func (p *Parser) interfaceMember() (ast.ClassMember, error) {
	hasAttrs, err := p.gatherAttributes()
	if err != nil {
		return nil, err
	}

	start := p.peek().Pos
	mods := p.collectModifiers()

	// 属性标注强制走方法分支，不再检查 const
	if hasAttrs || p.check(token.FUNCTION) {
		group, err := interfaceMethodGroup(mods)
		if err != nil {
			return nil, err
		}
		// 接口方法没有方法体，以分号结尾
		return p.method(group, start, false)
	}

	if p.check(token.CONST) {
		group, err := interfaceConstantGroup(mods)
		if err != nil {
			return nil, err
		}
		return p.constant(group, start)
	}
	return nil, unexpectedToken(p.peek(), "`function`", "`const`")
}

// enumMember 解析枚举体内的单个成员
//
// 同一个例程同时服务无值枚举和有值枚举，区别只在 case 的取值
// 策略：无值枚举的 case 带值是错误，有值枚举的 case 缺值是错误。
func (p *Parser) enumMember() (ast.EnumMember, error) {
	hasAttrs, err := p.gatherAttributes()
	if err != nil {
		return nil, err
	}

	// case 分支要求前面没有属性标注
	if !hasAttrs && p.check(token.CASE) {
		return p.enumCase()
	}

	start := p.peek().Pos
	mods := p.collectModifiers()

	// 属性标注强制走方法分支，不再检查 const
	if hasAttrs || p.check(token.FUNCTION) {
		group, err := enumMethodGroup(mods)
		if err != nil {
			return nil, err
		}
		return p.method(group, start, true)
	}

	if p.check(token.CONST) {
		group, err := constantGroup(mods)
		if err != nil {
			return nil, err
		}
		return p.constant(group, start)
	}
	return nil, unexpectedToken(p.peek(), "`case`", "`function`", "`const`")
}

// enumCase 解析 case Hearts; 或 case Hearts = 'H';
func (p *Parser) enumCase() (*ast.EnumCase, error) {
	enum := p.enclosingEnum()

	caseTok := p.advance() // case
	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	member := &ast.EnumCase{
		CaseToken: caseTok,
		Name:      name,
	}

	if enum.backed {
		// 名称后直接收束才算缺值，其他情况按缺 `=` 报
		if p.check(token.SEMICOLON) {
			return nil, newError(p.peek().Pos, i18n.ErrMissingCaseValueForBackedEnum,
				name.Name, enum.displayName())
		}
		if _, err := p.skip(token.ASSIGN, "`=`"); err != nil {
			return nil, err
		}
		value, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		member.Value = value
	} else if p.check(token.ASSIGN) {
		return nil, newError(p.peek().Pos, i18n.ErrCaseValueForUnitEnum,
			name.Name, enum.displayName())
	}

	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	member.Semicolon = semi
	return member, nil
}

// classLikeMember 解析类/trait/匿名类体内的单个成员
func (p *Parser) classLikeMember() (ast.ClassMember, error) {
	hasAttrs, err := p.gatherAttributes()
	if err != nil {
		return nil, err
	}

	start := p.peek().Pos
	mods := p.collectModifiers()

	// trait 导入和常量不接受属性标注，带属性时落入方法/属性分支
	if !hasAttrs {
		if p.check(token.USE) {
			return p.traitUse()
		}
		if p.check(token.CONST) {
			group, err := constantGroup(mods)
			if err != nil {
				return nil, err
			}
			return p.constant(group, start)
		}
	}

	if p.check(token.FUNCTION) {
		group, err := methodGroup(mods)
		if err != nil {
			return nil, err
		}
		return p.method(group, start, true)
	}

	// 剩下的只能是属性声明
	group, err := propertyGroup(mods)
	if err != nil {
		return nil, err
	}
	return p.property(group, start)
}

// ============================================================================
// trait 导入
// ============================================================================

// traitUse 解析 use A, B; 或 use A, B { adaptations }
func (p *Parser) traitUse() (*ast.TraitUseStmt, error) {
	useTok := p.advance() // use

	stmt := &ast.TraitUseStmt{UseToken: useTok}
	for {
		name, err := p.fullName()
		if err != nil {
			return nil, err
		}
		stmt.Traits = append(stmt.Traits, name)

		if !p.check(token.COMMA) {
			break
		}
		// 尾逗号不合法：逗号后紧跟 ; 或 { 时不消费逗号，
		// 让强制消费在逗号处报"非预期 token"
		switch p.peekNext().Type {
		case token.SEMICOLON:
			if _, err := p.skipSemicolon(); err != nil {
				return nil, err
			}
		case token.LBRACE:
			if _, err := p.skipLeftBrace(); err != nil {
				return nil, err
			}
		}
		p.advance() // ,
	}

	if p.check(token.LBRACE) {
		p.advance()
		for !p.check(token.RBRACE) && !p.isAtEnd() {
			adaptation, err := p.traitAdaptation()
			if err != nil {
				return nil, err
			}
			stmt.Adaptations = append(stmt.Adaptations, adaptation)
		}
		rbrace, err := p.skipRightBrace()
		if err != nil {
			return nil, err
		}
		stmt.EndPos = rbrace.Span().End
		return stmt, nil
	}

	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	stmt.EndPos = semi.Span().End
	return stmt, nil
}

// traitAdaptation 解析单条适配规则
//
//	A::foo insteadof B, C;   优先级
//	A::foo as bar;           重命名
//	foo as protected;        改可见性
//	foo as protected bar;    重命名并改可见性
func (p *Parser) traitAdaptation() (ast.TraitAdaptation, error) {
	var (
		trait  *ast.Name
		method *ast.Identifier
	)

	name, err := p.fullName()
	if err != nil {
		return nil, err
	}

	if p.check(token.DOUBLE_COLON) {
		p.advance()
		trait = name
		method, err = p.ident()
		if err != nil {
			return nil, err
		}
	} else {
		if len(name.Tokens) != 1 {
			return nil, unexpectedToken(p.peek(), "`::`")
		}
		method = &ast.Identifier{Token: name.Tokens[0], Name: name.Value}
	}

	switch p.peek().Type {
	case token.INSTEADOF:
		if trait == nil {
			// insteadof 要求完全限定的 Trait::method
			return nil, unexpectedToken(p.peek(), "`as`")
		}
		p.advance()
		return p.traitPrecedence(trait, method)

	case token.AS:
		p.advance()
		return p.traitAlias(trait, method)
	}
	return nil, unexpectedToken(p.peek(), "`as`", "`insteadof`")
}

// traitPrecedence 解析 insteadof 之后的 trait 名称列表
func (p *Parser) traitPrecedence(trait *ast.Name, method *ast.Identifier) (ast.TraitAdaptation, error) {
	adaptation := &ast.TraitPrecedence{Trait: trait, Method: method}
	for {
		name, err := p.fullName()
		if err != nil {
			return nil, err
		}
		adaptation.InsteadOf = append(adaptation.InsteadOf, name)

		if !p.check(token.COMMA) {
			break
		}
		// 与 trait 名称列表相同的尾逗号处理
		if p.peekNext().Type == token.SEMICOLON {
			if _, err := p.skipSemicolon(); err != nil {
				return nil, err
			}
		}
		p.advance() // ,
	}

	if _, err := p.skipSemicolon(); err != nil {
		return nil, err
	}
	return adaptation, nil
}

// traitAlias 解析 as 之后的可见性/别名部分
func (p *Parser) traitAlias(trait *ast.Name, method *ast.Identifier) (ast.TraitAdaptation, error) {
	var visibility *ast.VisibilityModifier
	if token.IsVisibility(p.peek().Type) {
		tok := p.advance()
		kind := ast.VisibilityPublic
		switch tok.Type {
		case token.PROTECTED:
			kind = ast.VisibilityProtected
		case token.PRIVATE:
			kind = ast.VisibilityPrivate
		}
		visibility = &ast.VisibilityModifier{Token: tok, Kind: kind}

		// `as protected;` 只改可见性，不重命名
		if p.check(token.SEMICOLON) {
			p.advance()
			return &ast.TraitVisibilityChange{
				Trait:      trait,
				Method:     method,
				Visibility: visibility,
			}, nil
		}
	}

	alias, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.skipSemicolon(); err != nil {
		return nil, err
	}
	return &ast.TraitAlias{
		Trait:      trait,
		Method:     method,
		Visibility: visibility,
		Alias:      alias,
	}, nil
}

// ============================================================================
// 常量
// ============================================================================

// constant 解析 const NAME = expr;
//
// 接口、类、trait 和枚举的常量共用这一个例程，
// 差别只在调用方校验过的修饰符组。
func (p *Parser) constant(group *ast.ConstantModifierGroup, start token.Position) (*ast.ClassConstDecl, error) {
	constTok := p.advance() // const

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.skip(token.ASSIGN, "`=`"); err != nil {
		return nil, err
	}

	value, err := p.expression(Lowest)
	if err != nil {
		return nil, err
	}
	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}

	return &ast.ClassConstDecl{
		Attributes: p.takeAttributes(),
		Modifiers:  group,
		Start:      start,
		ConstToken: constTok,
		Name:       name,
		Value:      value,
		Semicolon:  semi,
	}, nil
}

// ============================================================================
// 方法
// ============================================================================

// method 解析方法声明
//
// allowBody 为 false 时（接口）强制以分号结尾。
// 构造器 __construct 的参数允许携带提升修饰符。
func (p *Parser) method(group *ast.MethodModifierGroup, start token.Position, allowBody bool) (*ast.MethodDecl, error) {
	fnTok, err := p.skip(token.FUNCTION, "`function`")
	if err != nil {
		return nil, err
	}

	decl := &ast.MethodDecl{
		Attributes:    p.takeAttributes(),
		Modifiers:     group,
		Start:         start,
		FunctionToken: fnTok,
	}

	if p.match(token.BIT_AND) {
		decl.ByRef = true
	}

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	decl.Name = name

	isConstructor := name.Name == "__construct"
	params, err := p.parameterList(isConstructor)
	if err != nil {
		return nil, err
	}
	decl.Params = params

	if p.match(token.COLON) {
		retType, err := p.dataType()
		if err != nil {
			return nil, err
		}
		decl.ReturnType = retType
	}

	if allowBody && p.check(token.LBRACE) {
		body, err := p.blockStmt()
		if err != nil {
			return nil, err
		}
		decl.Body = body
		return decl, nil
	}

	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	decl.Semicolon = semi
	return decl, nil
}

// ============================================================================
// 属性
// ============================================================================

// property 解析属性声明
//
// 解析完成后按固定顺序校验：
//  1. readonly 属性不能是 static
//  2. readonly 属性不能有默认值
//  3. 属性类型不能是 callable 形态或底类型
//  4. readonly 属性必须声明类型
//
// 诊断信息使用 Class::$prop 形式定位，类名取最内层类作用域。
func (p *Parser) property(group *ast.PropertyModifierGroup, start token.Position) (*ast.PropertyDecl, error) {
	owner := p.enclosingClassLike()

	typ, err := p.optionalDataType()
	if err != nil {
		return nil, err
	}

	v, err := p.variable()
	if err != nil {
		return nil, err
	}

	decl := &ast.PropertyDecl{
		Attributes: p.takeAttributes(),
		Modifiers:  group,
		Start:      start,
		Type:       typ,
		Var:        v,
	}

	if p.match(token.ASSIGN) {
		def, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		decl.Default = def
	}

	// 校验先于结束符，缺分号也要先报属性声明本身的错误
	if group.HasReadonly() && group.HasStatic() {
		return nil, newError(v.Token.Pos, i18n.ErrStaticReadonlyProperty,
			owner.displayName(), v.Name)
	}
	if group.HasReadonly() && decl.Default != nil {
		return nil, newError(v.Token.Pos, i18n.ErrReadonlyPropertyHasDefault,
			owner.displayName(), v.Name)
	}
	if typ != nil && (typ.IncludesCallable() || typ.IsBottom()) {
		return nil, newError(v.Token.Pos, i18n.ErrForbiddenTypeInProperty,
			owner.displayName(), v.Name, typ.String())
	}
	if group.HasReadonly() && typ == nil {
		return nil, newError(v.Token.Pos, i18n.ErrMissingTypeForReadonlyProperty,
			owner.displayName(), v.Name)
	}

	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	decl.Semicolon = semi
	return decl, nil
}
