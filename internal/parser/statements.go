package parser

import (
	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 语句
// ============================================================================

// blockStmt 解析 { statements }
func (p *Parser) blockStmt() (*ast.BlockStmt, error) {
	lbrace, err := p.skipLeftBrace()
	if err != nil {
		return nil, err
	}

	block := &ast.BlockStmt{LBrace: lbrace}
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	rbrace, err := p.skipRightBrace()
	if err != nil {
		return nil, err
	}
	block.RBrace = rbrace
	return block, nil
}

// statement 解析单条语句
func (p *Parser) statement() (ast.Statement, error) {
	switch p.peek().Type {
	case token.LBRACE:
		return p.blockStmt()
	case token.IF:
		return p.ifStmt()
	case token.WHILE:
		return p.whileStmt()
	case token.DO:
		return p.doWhileStmt()
	case token.FOR:
		return p.forStmt()
	case token.FOREACH:
		return p.foreachStmt()
	case token.RETURN:
		return p.returnStmt()
	case token.BREAK:
		tok := p.advance()
		semi, err := p.skipSemicolon()
		if err != nil {
			return nil, err
		}
		return &ast.BreakStmt{BreakToken: tok, Semicolon: semi}, nil
	case token.CONTINUE:
		tok := p.advance()
		semi, err := p.skipSemicolon()
		if err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{ContinueToken: tok, Semicolon: semi}, nil
	case token.ECHO:
		return p.echoStmt()
	case token.THROW:
		return p.throwStmt()
	case token.TRY:
		return p.tryStmt()
	}
	return p.expressionStmt()
}

func (p *Parser) expressionStmt() (ast.Statement, error) {
	expr, err := p.expression(Lowest)
	if err != nil {
		return nil, err
	}
	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr, Semicolon: semi}, nil
}

// ifStmt 解析 if，elseif 链折叠为嵌套 IfStmt
func (p *Parser) ifStmt() (ast.Statement, error) {
	ifTok := p.advance()

	if _, err := p.skipLeftParen(); err != nil {
		return nil, err
	}
	cond, err := p.expression(Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.skipRightParen(); err != nil {
		return nil, err
	}

	then, err := p.blockStmt()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{IfToken: ifTok, Cond: cond, Then: then}

	switch {
	case p.check(token.ELSEIF):
		elseStmt, err := p.ifStmt()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseStmt

	case p.match(token.ELSE):
		if p.check(token.IF) {
			elseStmt, err := p.ifStmt()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseStmt
		} else {
			elseBlock, err := p.blockStmt()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBlock
		}
	}
	return stmt, nil
}

func (p *Parser) whileStmt() (ast.Statement, error) {
	whileTok := p.advance()

	if _, err := p.skipLeftParen(); err != nil {
		return nil, err
	}
	cond, err := p.expression(Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.skipRightParen(); err != nil {
		return nil, err
	}

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{WhileToken: whileTok, Cond: cond, Body: body}, nil
}

func (p *Parser) doWhileStmt() (ast.Statement, error) {
	doTok := p.advance()

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}

	if _, err := p.skip(token.WHILE, "`while`"); err != nil {
		return nil, err
	}
	if _, err := p.skipLeftParen(); err != nil {
		return nil, err
	}
	cond, err := p.expression(Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.skipRightParen(); err != nil {
		return nil, err
	}
	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	return &ast.DoWhileStmt{DoToken: doTok, Body: body, Cond: cond, Semicolon: semi}, nil
}

func (p *Parser) forStmt() (ast.Statement, error) {
	forTok := p.advance()

	if _, err := p.skipLeftParen(); err != nil {
		return nil, err
	}

	stmt := &ast.ForStmt{ForToken: forTok}

	if !p.check(token.SEMICOLON) {
		init, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		stmt.Init = init
	}
	if _, err := p.skipSemicolon(); err != nil {
		return nil, err
	}

	if !p.check(token.SEMICOLON) {
		cond, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
	}
	if _, err := p.skipSemicolon(); err != nil {
		return nil, err
	}

	if !p.check(token.RPAREN) {
		post, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		stmt.Post = post
	}
	if _, err := p.skipRightParen(); err != nil {
		return nil, err
	}

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

// foreachStmt 解析 foreach ($items as $k => $v) { ... }
func (p *Parser) foreachStmt() (ast.Statement, error) {
	foreachTok := p.advance()

	if _, err := p.skipLeftParen(); err != nil {
		return nil, err
	}
	subject, err := p.expression(Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.skip(token.AS, "`as`"); err != nil {
		return nil, err
	}

	stmt := &ast.ForeachStmt{ForeachToken: foreachTok, Subject: subject}

	if p.match(token.BIT_AND) {
		stmt.ByRef = true
	}
	first, err := p.variable()
	if err != nil {
		return nil, err
	}

	if p.match(token.DOUBLE_ARROW) {
		stmt.KeyVar = first
		if p.match(token.BIT_AND) {
			stmt.ByRef = true
		}
		value, err := p.variable()
		if err != nil {
			return nil, err
		}
		stmt.ValueVar = value
	} else {
		stmt.ValueVar = first
	}

	if _, err := p.skipRightParen(); err != nil {
		return nil, err
	}

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

func (p *Parser) returnStmt() (ast.Statement, error) {
	returnTok := p.advance()

	stmt := &ast.ReturnStmt{ReturnToken: returnTok}
	if !p.check(token.SEMICOLON) {
		value, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}

	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	stmt.Semicolon = semi
	return stmt, nil
}

func (p *Parser) echoStmt() (ast.Statement, error) {
	echoTok := p.advance()

	stmt := &ast.EchoStmt{EchoToken: echoTok}
	for {
		expr, err := p.expression(Lowest)
		if err != nil {
			return nil, err
		}
		stmt.Exprs = append(stmt.Exprs, expr)
		if !p.match(token.COMMA) {
			break
		}
	}

	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	stmt.Semicolon = semi
	return stmt, nil
}

func (p *Parser) throwStmt() (ast.Statement, error) {
	throwTok := p.advance()

	value, err := p.expression(Lowest)
	if err != nil {
		return nil, err
	}
	semi, err := p.skipSemicolon()
	if err != nil {
		return nil, err
	}
	return &ast.ThrowStmt{ThrowToken: throwTok, Value: value, Semicolon: semi}, nil
}

func (p *Parser) tryStmt() (ast.Statement, error) {
	tryTok := p.advance()

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}
	stmt := &ast.TryStmt{TryToken: tryTok, Body: body}

	for p.check(token.CATCH) {
		clause, err := p.catchClause()
		if err != nil {
			return nil, err
		}
		stmt.Catches = append(stmt.Catches, clause)
	}

	if p.match(token.FINALLY) {
		finally, err := p.blockStmt()
		if err != nil {
			return nil, err
		}
		stmt.Finally = finally
	}
	return stmt, nil
}

// catchClause 解析 catch (TypeA | TypeB $e) { ... }
func (p *Parser) catchClause() (*ast.CatchClause, error) {
	catchTok := p.advance()

	if _, err := p.skipLeftParen(); err != nil {
		return nil, err
	}

	clause := &ast.CatchClause{CatchToken: catchTok}
	for {
		name, err := p.fullName()
		if err != nil {
			return nil, err
		}
		clause.Types = append(clause.Types, name)
		if !p.match(token.BIT_OR) {
			break
		}
	}

	if p.check(token.VARIABLE) {
		v, err := p.variable()
		if err != nil {
			return nil, err
		}
		clause.Var = v
	}

	if _, err := p.skipRightParen(); err != nil {
		return nil, err
	}

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}
	clause.Body = body
	return clause, nil
}
