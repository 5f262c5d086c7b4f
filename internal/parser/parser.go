package parser

import (
	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/lexer"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 解析器
// ============================================================================
//
// 递归下降解析器，快速失败：任何一处解析失败都立刻返回错误，
// 不尝试错误恢复，调用方拿到的是第一个错误。
//
// ============================================================================

// Parser 将 token 流解析为 AST
type Parser struct {
	tokens   []token.Token
	current  int
	filename string

	// 声明作用域栈，见 scope.go
	scopes []scope

	// 已收集但尚未被消费的属性组，见 attributes.go
	attrs []*ast.AttributeGroup
}

// New 基于源代码创建解析器
//
// 词法分析阶段的错误也以 *ParseError 形式返回。
func New(source, filename string) (*Parser, error) {
	l := lexer.New(source, filename)
	tokens := l.ScanTokens()
	if errs := l.Errors(); len(errs) > 0 {
		first := errs[0]
		return nil, &ParseError{Pos: first.Pos, Message: first.Message}
	}
	return &Parser{tokens: tokens, filename: filename}, nil
}

// Parse 一步完成源代码到 AST 的解析
func Parse(source, filename string) (*ast.File, error) {
	p, err := New(source, filename)
	if err != nil {
		return nil, err
	}
	return p.ParseFile()
}

// ParseFile 解析整个文件
func (p *Parser) ParseFile() (*ast.File, error) {
	file := &ast.File{Filename: p.filename}

	// 可选的命名空间声明必须位于文件头部
	if p.check(token.NAMESPACE) {
		ns, err := p.namespaceDecl()
		if err != nil {
			return nil, err
		}
		file.Namespace = ns
	}

	// 顶层 use 导入
	for p.check(token.USE) {
		imp, err := p.useImport()
		if err != nil {
			return nil, err
		}
		file.Uses = append(file.Uses, imp)
	}

	for !p.isAtEnd() {
		decl, stmt, err := p.topLevel()
		if err != nil {
			return nil, err
		}
		if decl != nil {
			file.Declarations = append(file.Declarations, decl)
		}
		if stmt != nil {
			file.Statements = append(file.Statements, stmt)
		}
	}
	return file, nil
}

// ============================================================================
// 游标
// ============================================================================

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() token.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) check(tt token.TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) checkAny(tts ...token.TokenType) bool {
	for _, tt := range tts {
		if p.peek().Type == tt {
			return true
		}
	}
	return false
}

// match 若当前 token 是给定类型之一则消费并返回 true
func (p *Parser) match(tts ...token.TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// ============================================================================
// 强制消费
// ============================================================================

// skip 消费指定类型的 token，否则返回诊断错误
//
// desc 是诊断信息里展示给用户的 token 描述。
func (p *Parser) skip(tt token.TokenType, desc string) (token.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return token.Token{}, unexpectedToken(p.peek(), desc)
}

func (p *Parser) skipSemicolon() (token.Token, error) {
	return p.skip(token.SEMICOLON, "`;`")
}

func (p *Parser) skipLeftBrace() (token.Token, error) {
	return p.skip(token.LBRACE, "`{`")
}

func (p *Parser) skipRightBrace() (token.Token, error) {
	return p.skip(token.RBRACE, "`}`")
}

func (p *Parser) skipLeftParen() (token.Token, error) {
	return p.skip(token.LPAREN, "`(`")
}

func (p *Parser) skipRightParen() (token.Token, error) {
	return p.skip(token.RPAREN, "`)`")
}
