package parser

import (
	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 表达式
// ============================================================================
//
// Pratt 风格的优先级爬升。precedences 表给出每个中缀运算符的
// 绑定强度，赋值、乘方和空合并为右结合。
//
// ============================================================================

type precedence int

const (
	Lowest precedence = iota
	Assignment
	TernaryCond
	Coalesce
	LogicalOr
	LogicalAnd
	BitwiseOr
	BitwiseXor
	BitwiseAnd
	Equality
	Comparison
	Shift
	Additive
	Multiplicative
	InstanceOf
	Power
	Unary
	CallAccess
)

var precedences = map[token.TokenType]precedence{
	token.ASSIGN:          Assignment,
	token.PLUS_ASSIGN:     Assignment,
	token.MINUS_ASSIGN:    Assignment,
	token.STAR_ASSIGN:     Assignment,
	token.SLASH_ASSIGN:    Assignment,
	token.PERCENT_ASSIGN:  Assignment,
	token.DOT_ASSIGN:      Assignment,
	token.COALESCE_ASSIGN: Assignment,

	token.QUESTION: TernaryCond,

	token.NULL_COALESCE: Coalesce,

	token.OR:  LogicalOr,
	token.AND: LogicalAnd,

	token.BIT_OR:  BitwiseOr,
	token.BIT_XOR: BitwiseXor,
	token.BIT_AND: BitwiseAnd,

	token.EQ:            Equality,
	token.NE:            Equality,
	token.IDENTICAL:     Equality,
	token.NOT_IDENTICAL: Equality,

	token.LT:        Comparison,
	token.LE:        Comparison,
	token.GT:        Comparison,
	token.GE:        Comparison,
	token.SPACESHIP: Comparison,

	token.LEFT_SHIFT:  Shift,
	token.RIGHT_SHIFT: Shift,

	token.PLUS:  Additive,
	token.MINUS: Additive,
	token.DOT:   Additive,

	token.STAR:    Multiplicative,
	token.SLASH:   Multiplicative,
	token.PERCENT: Multiplicative,

	token.INSTANCEOF: InstanceOf,

	token.POW: Power,

	token.LPAREN:       CallAccess,
	token.LBRACKET:     CallAccess,
	token.ARROW:        CallAccess,
	token.SAFE_ARROW:   CallAccess,
	token.DOUBLE_COLON: CallAccess,
	token.INCREMENT:    CallAccess,
	token.DECREMENT:    CallAccess,
}

// expression 从 min 优先级开始解析表达式
func (p *Parser) expression(min precedence) (ast.Expression, error) {
	left, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := precedences[p.peek().Type]
		if !ok || prec <= min {
			return left, nil
		}
		left, err = p.infixExpr(left, prec)
		if err != nil {
			return nil, err
		}
	}
}

// infixExpr 基于已有的左操作数继续解析
func (p *Parser) infixExpr(left ast.Expression, prec precedence) (ast.Expression, error) {
	tok := p.peek()
	switch tok.Type {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN,
		token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.DOT_ASSIGN, token.COALESCE_ASSIGN:
		op := p.advance()
		// 赋值右结合
		value, err := p.expression(prec - 1)
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Target: left, Operator: op, Value: value}, nil

	case token.QUESTION:
		return p.ternaryExpr(left)

	case token.NULL_COALESCE, token.POW:
		op := p.advance()
		// ?? 与 ** 右结合
		right, err := p.expression(prec - 1)
		if err != nil {
			return nil, err
		}
		return &ast.InfixExpr{Left: left, Operator: op, Right: right}, nil

	case token.INSTANCEOF:
		op := p.advance()
		class, err := p.classRef()
		if err != nil {
			return nil, err
		}
		return &ast.InstanceofExpr{Left: left, Token: op, Class: class}, nil

	case token.LPAREN:
		return p.callExpr(left)

	case token.LBRACKET:
		return p.indexExpr(left)

	case token.ARROW, token.SAFE_ARROW:
		arrow := p.advance()
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		return &ast.PropertyAccess{Object: left, Arrow: arrow, Name: name}, nil

	case token.DOUBLE_COLON:
		return p.staticAccessExpr(left)

	case token.INCREMENT, token.DECREMENT:
		op := p.advance()
		return &ast.PostfixExpr{Left: left, Operator: op}, nil
	}

	op := p.advance()
	right, err := p.expression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.InfixExpr{Left: left, Operator: op, Right: right}, nil
}

// ternaryExpr 解析 $c ? $a : $b 和短形式 $c ?: $b
func (p *Parser) ternaryExpr(cond ast.Expression) (ast.Expression, error) {
	p.advance() // ?

	if p.match(token.COLON) {
		elseExpr, err := p.expression(TernaryCond - 1)
		if err != nil {
			return nil, err
		}
		return &ast.TernaryExpr{Cond: cond, Else: elseExpr}, nil
	}

	thenExpr, err := p.expression(Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.skip(token.COLON, "`:`"); err != nil {
		return nil, err
	}
	elseExpr, err := p.expression(TernaryCond - 1)
	if err != nil {
		return nil, err
	}
	return &ast.TernaryExpr{Cond: cond, Then: thenExpr, Else: elseExpr}, nil
}

func (p *Parser) callExpr(callee ast.Expression) (ast.Expression, error) {
	lparen := p.advance()
	call := &ast.CallExpr{Callee: callee, LParen: lparen}

	for !p.check(token.RPAREN) {
		arg, err := p.argument()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if !p.match(token.COMMA) {
			break
		}
	}

	rparen, err := p.skipRightParen()
	if err != nil {
		return nil, err
	}
	call.RParen = rparen
	return call, nil
}

// argument 解析调用实参，支持展开 ...$args
func (p *Parser) argument() (ast.Expression, error) {
	if p.check(token.ELLIPSIS) {
		op := p.advance()
		inner, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpr{Operator: op, Right: inner}, nil
	}
	return p.expression(Lowest)
}

func (p *Parser) indexExpr(target ast.Expression) (ast.Expression, error) {
	lbracket := p.advance()
	idx := &ast.IndexExpr{Target: target, LBracket: lbracket}

	if !p.check(token.RBRACKET) {
		index, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		idx.Index = index
	}

	rbracket, err := p.skip(token.RBRACKET, "`]`")
	if err != nil {
		return nil, err
	}
	idx.RBracket = rbracket
	return idx, nil
}

func (p *Parser) staticAccessExpr(class ast.Expression) (ast.Expression, error) {
	colon := p.advance() // ::

	var member ast.Expression
	if p.check(token.VARIABLE) {
		v, err := p.variable()
		if err != nil {
			return nil, err
		}
		member = v
	} else {
		id, err := p.ident()
		if err != nil {
			return nil, err
		}
		member = id
	}
	return &ast.StaticAccess{Class: class, DoubleColon: colon, Member: member}, nil
}

// ============================================================================
// 前缀与基础表达式
// ============================================================================

func (p *Parser) unaryExpr() (ast.Expression, error) {
	switch p.peek().Type {
	case token.NOT, token.MINUS, token.PLUS, token.BIT_NOT,
		token.INCREMENT, token.DECREMENT:
		op := p.advance()
		// 乘方比一元运算绑定更紧：-$a ** $b 解析为 -($a ** $b)
		right, err := p.expression(InstanceOf)
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpr{Operator: op, Right: right}, nil
	}
	return p.primaryExpr()
}

func (p *Parser) primaryExpr() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Type {
	case token.INT:
		p.advance()
		value, _ := tok.Value.(int64)
		return &ast.IntLit{Token: tok, Value: value}, nil

	case token.FLOAT:
		p.advance()
		value, _ := tok.Value.(float64)
		return &ast.FloatLit{Token: tok, Value: value}, nil

	case token.STRING:
		p.advance()
		value, _ := tok.Value.(string)
		return &ast.StringLit{Token: tok, Value: value}, nil

	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.BoolLit{Token: tok, Value: tok.Type == token.TRUE}, nil

	case token.NULL:
		p.advance()
		return &ast.NullLit{Token: tok}, nil

	case token.VARIABLE:
		return p.variable()

	case token.IDENT, token.BACKSLASH:
		return p.fullName()

	case token.SELF, token.PARENT, token.STATIC:
		p.advance()
		return &ast.Name{Tokens: []token.Token{tok}, Value: tok.Literal}, nil

	case token.LPAREN:
		p.advance()
		inner, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.skipRightParen(); err != nil {
			return nil, err
		}
		return inner, nil

	case token.LBRACKET:
		return p.arrayLit()

	case token.NEW:
		return p.newExpr()

	case token.CLONE:
		p.advance()
		operand, err := p.expression(InstanceOf)
		if err != nil {
			return nil, err
		}
		return &ast.CloneExpr{CloneToken: tok, Operand: operand}, nil

	case token.FUNCTION:
		return p.closureExpr()

	case token.FN:
		return p.arrowFnExpr()
	}
	return nil, newError(tok.Pos, i18n.ErrExpectedExpression)
}

// classRef 解析类引用位置的表达式 (new X、instanceof X)
func (p *Parser) classRef() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Type {
	case token.IDENT, token.BACKSLASH:
		return p.fullName()
	case token.SELF, token.PARENT, token.STATIC:
		p.advance()
		return &ast.Name{Tokens: []token.Token{tok}, Value: tok.Literal}, nil
	case token.VARIABLE:
		return p.variable()
	}
	return nil, newError(tok.Pos, i18n.ErrExpectedExpression)
}

func (p *Parser) arrayLit() (ast.Expression, error) {
	lbracket := p.advance()
	arr := &ast.ArrayLit{LBracket: lbracket}

	for !p.check(token.RBRACKET) {
		entry := &ast.ArrayEntry{}
		if p.match(token.ELLIPSIS) {
			entry.Spread = true
		}

		value, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}

		if !entry.Spread && p.match(token.DOUBLE_ARROW) {
			entry.Key = value
			value, err = p.expression(Lowest)
			if err != nil {
				return nil, err
			}
		}
		entry.Value = value
		arr.Entries = append(arr.Entries, entry)

		if !p.match(token.COMMA) {
			break
		}
	}

	rbracket, err := p.skip(token.RBRACKET, "`]`")
	if err != nil {
		return nil, err
	}
	arr.RBracket = rbracket
	return arr, nil
}

// ============================================================================
// 对象创建
// ============================================================================

func (p *Parser) newExpr() (ast.Expression, error) {
	newTok := p.advance()

	// new class { ... } 匿名类
	if p.check(token.CLASS) {
		return p.anonymousClass(newTok)
	}

	class, err := p.classRef()
	if err != nil {
		return nil, err
	}

	expr := &ast.NewExpr{NewToken: newTok, Class: class, EndPos: class.End()}
	if p.check(token.LPAREN) {
		p.advance()
		expr.HasArgs = true
		for !p.check(token.RPAREN) {
			arg, err := p.argument()
			if err != nil {
				return nil, err
			}
			expr.Args = append(expr.Args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
		rparen, err := p.skipRightParen()
		if err != nil {
			return nil, err
		}
		expr.EndPos = rparen.Span().End
	}
	return expr, nil
}

// anonymousClass 解析 new class [(args)] [extends X] [implements Y] { ... }
func (p *Parser) anonymousClass(newTok token.Token) (ast.Expression, error) {
	classTok := p.advance() // class

	expr := &ast.NewExpr{NewToken: newTok}
	anon := &ast.AnonymousClassExpr{ClassToken: classTok}

	if p.check(token.LPAREN) {
		p.advance()
		expr.HasArgs = true
		for !p.check(token.RPAREN) {
			arg, err := p.argument()
			if err != nil {
				return nil, err
			}
			expr.Args = append(expr.Args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.skipRightParen(); err != nil {
			return nil, err
		}
	}

	if p.match(token.EXTENDS) {
		base, err := p.fullName()
		if err != nil {
			return nil, err
		}
		anon.Extends = base
	}

	if p.match(token.IMPLEMENTS) {
		for {
			iface, err := p.fullName()
			if err != nil {
				return nil, err
			}
			anon.Implements = append(anon.Implements, iface)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	lbrace, err := p.skipLeftBrace()
	if err != nil {
		return nil, err
	}
	anon.LBrace = lbrace

	p.pushScope(scope{kind: scopeAnonymousClass})
	defer p.popScope()

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		member, err := p.classLikeMember()
		if err != nil {
			return nil, err
		}
		anon.Members = append(anon.Members, member)
	}

	rbrace, err := p.skipRightBrace()
	if err != nil {
		return nil, err
	}
	anon.RBrace = rbrace

	expr.Class = anon
	expr.EndPos = rbrace.Span().End
	return expr, nil
}

// ============================================================================
// 闭包
// ============================================================================

func (p *Parser) closureExpr() (ast.Expression, error) {
	fnTok := p.advance() // function
	p.match(token.BIT_AND)

	params, err := p.parameterList(false)
	if err != nil {
		return nil, err
	}

	closure := &ast.ClosureExpr{FunctionToken: fnTok, Params: params}

	if p.match(token.USE) {
		if _, err := p.skipLeftParen(); err != nil {
			return nil, err
		}
		for !p.check(token.RPAREN) {
			use := &ast.ClosureUse{}
			if p.match(token.BIT_AND) {
				use.ByRef = true
			}
			v, err := p.variable()
			if err != nil {
				return nil, err
			}
			use.Var = v
			closure.Uses = append(closure.Uses, use)
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.skipRightParen(); err != nil {
			return nil, err
		}
	}

	if p.match(token.COLON) {
		retType, err := p.dataType()
		if err != nil {
			return nil, err
		}
		closure.ReturnType = retType
	}

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}
	closure.Body = body
	return closure, nil
}

func (p *Parser) arrowFnExpr() (ast.Expression, error) {
	fnTok := p.advance() // fn

	params, err := p.parameterList(false)
	if err != nil {
		return nil, err
	}

	arrow := &ast.ArrowFnExpr{FnToken: fnTok, Params: params}

	if p.match(token.COLON) {
		retType, err := p.dataType()
		if err != nil {
			return nil, err
		}
		arrow.ReturnType = retType
	}

	if _, err := p.skip(token.DOUBLE_ARROW, "`=>`"); err != nil {
		return nil, err
	}

	expr, err := p.expression(Lowest)
	if err != nil {
		return nil, err
	}
	arrow.Expr = expr
	return arrow, nil
}
