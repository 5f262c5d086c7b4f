package parser

import "fmt"

// ============================================================================
// 声明作用域
// ============================================================================
//
// 解析类体/枚举体时，解析器在作用域栈上压入当前声明，
// 成员解析借此得知所属类名（诊断信息用）和枚举的种类
// （有值/无值，决定 case 是否必须带值）。
//
// 作用域查询失败是解析器内部的使用错误，不是源代码错误，
// 因此直接 panic 而不返回诊断。
//
// ============================================================================

type scopeKind int

const (
	scopeClass scopeKind = iota
	scopeTrait
	scopeEnum
	scopeAnonymousClass
)

// scope 一层声明作用域
type scope struct {
	kind   scopeKind
	name   string // 匿名类为空
	backed bool   // 仅 kind == scopeEnum 有意义
}

// displayName 返回用于诊断信息的名称
func (s scope) displayName() string {
	if s.kind == scopeAnonymousClass {
		return "class@anonymous"
	}
	return s.name
}

// pushScope 压入一层作用域
func (p *Parser) pushScope(s scope) {
	p.scopes = append(p.scopes, s)
}

// popScope 弹出最内层作用域
func (p *Parser) popScope() {
	if len(p.scopes) == 0 {
		panic("parser: popScope on empty scope stack")
	}
	p.scopes = p.scopes[:len(p.scopes)-1]
}

// currentScope 返回最内层作用域
func (p *Parser) currentScope() scope {
	if len(p.scopes) == 0 {
		panic("parser: no enclosing declaration scope")
	}
	return p.scopes[len(p.scopes)-1]
}

// enclosingEnum 返回最内层作用域并断言它是枚举
func (p *Parser) enclosingEnum() scope {
	s := p.currentScope()
	if s.kind != scopeEnum {
		panic(fmt.Sprintf("parser: expected enum scope, found %v", s.kind))
	}
	return s
}

// enclosingClassLike 返回最内层作用域并断言它是类/trait/匿名类
func (p *Parser) enclosingClassLike() scope {
	s := p.currentScope()
	switch s.kind {
	case scopeClass, scopeTrait, scopeAnonymousClass:
		return s
	}
	panic(fmt.Sprintf("parser: expected class-like scope, found %v", s.kind))
}
