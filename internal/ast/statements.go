package ast

import (
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 语句节点
// ============================================================================

// BlockStmt 语句块 { ... }
type BlockStmt struct {
	LBrace     token.Token
	Statements []Statement
	RBrace     token.Token
}

func (s *BlockStmt) Pos() token.Position { return s.LBrace.Pos }
func (s *BlockStmt) End() token.Position { return s.RBrace.Span().End }
func (s *BlockStmt) String() string      { return "{...}" }
func (s *BlockStmt) stmtNode()           {}

// ExpressionStmt 表达式语句
type ExpressionStmt struct {
	Expr      Expression
	Semicolon token.Token
}

func (s *ExpressionStmt) Pos() token.Position { return s.Expr.Pos() }
func (s *ExpressionStmt) End() token.Position { return s.Semicolon.Span().End }
func (s *ExpressionStmt) String() string      { return s.Expr.String() + ";" }
func (s *ExpressionStmt) stmtNode()           {}

// IfStmt if/elseif/else 语句
//
// elseif 链在解析时被折叠为嵌套的 IfStmt（Else 指向下一个 IfStmt）。
type IfStmt struct {
	IfToken token.Token
	Cond    Expression
	Then    *BlockStmt
	Else    Statement // *IfStmt、*BlockStmt 或 nil
}

func (s *IfStmt) Pos() token.Position { return s.IfToken.Pos }
func (s *IfStmt) End() token.Position {
	if s.Else != nil {
		return s.Else.End()
	}
	return s.Then.End()
}
func (s *IfStmt) String() string { return "if (...) {...}" }
func (s *IfStmt) stmtNode()      {}

// WhileStmt while 循环
type WhileStmt struct {
	WhileToken token.Token
	Cond       Expression
	Body       *BlockStmt
}

func (s *WhileStmt) Pos() token.Position { return s.WhileToken.Pos }
func (s *WhileStmt) End() token.Position { return s.Body.End() }
func (s *WhileStmt) String() string      { return "while (...) {...}" }
func (s *WhileStmt) stmtNode()           {}

// DoWhileStmt do-while 循环
type DoWhileStmt struct {
	DoToken   token.Token
	Body      *BlockStmt
	Cond      Expression
	Semicolon token.Token
}

func (s *DoWhileStmt) Pos() token.Position { return s.DoToken.Pos }
func (s *DoWhileStmt) End() token.Position { return s.Semicolon.Span().End }
func (s *DoWhileStmt) String() string      { return "do {...} while (...)" }
func (s *DoWhileStmt) stmtNode()           {}

// ForStmt 经典 for 循环
type ForStmt struct {
	ForToken token.Token
	Init     Expression // 可为 nil
	Cond     Expression // 可为 nil
	Post     Expression // 可为 nil
	Body     *BlockStmt
}

func (s *ForStmt) Pos() token.Position { return s.ForToken.Pos }
func (s *ForStmt) End() token.Position { return s.Body.End() }
func (s *ForStmt) String() string      { return "for (...) {...}" }
func (s *ForStmt) stmtNode()           {}

// ForeachStmt foreach 循环 foreach ($items as $k => $v) { ... }
type ForeachStmt struct {
	ForeachToken token.Token
	Subject      Expression
	KeyVar       *Variable // 可为 nil
	ByRef        bool      // 值变量是否按引用捕获
	ValueVar     *Variable
	Body         *BlockStmt
}

func (s *ForeachStmt) Pos() token.Position { return s.ForeachToken.Pos }
func (s *ForeachStmt) End() token.Position { return s.Body.End() }
func (s *ForeachStmt) String() string      { return "foreach (...) {...}" }
func (s *ForeachStmt) stmtNode()           {}

// ReturnStmt return 语句
type ReturnStmt struct {
	ReturnToken token.Token
	Value       Expression // 可为 nil
	Semicolon   token.Token
}

func (s *ReturnStmt) Pos() token.Position { return s.ReturnToken.Pos }
func (s *ReturnStmt) End() token.Position { return s.Semicolon.Span().End }
func (s *ReturnStmt) String() string {
	if s.Value != nil {
		return "return " + s.Value.String() + ";"
	}
	return "return;"
}
func (s *ReturnStmt) stmtNode() {}

// BreakStmt break 语句
type BreakStmt struct {
	BreakToken token.Token
	Semicolon  token.Token
}

func (s *BreakStmt) Pos() token.Position { return s.BreakToken.Pos }
func (s *BreakStmt) End() token.Position { return s.Semicolon.Span().End }
func (s *BreakStmt) String() string      { return "break;" }
func (s *BreakStmt) stmtNode()           {}

// ContinueStmt continue 语句
type ContinueStmt struct {
	ContinueToken token.Token
	Semicolon     token.Token
}

func (s *ContinueStmt) Pos() token.Position { return s.ContinueToken.Pos }
func (s *ContinueStmt) End() token.Position { return s.Semicolon.Span().End }
func (s *ContinueStmt) String() string      { return "continue;" }
func (s *ContinueStmt) stmtNode()           {}

// EchoStmt echo 语句 echo $a, $b;
type EchoStmt struct {
	EchoToken token.Token
	Exprs     []Expression
	Semicolon token.Token
}

func (s *EchoStmt) Pos() token.Position { return s.EchoToken.Pos }
func (s *EchoStmt) End() token.Position { return s.Semicolon.Span().End }
func (s *EchoStmt) String() string      { return "echo ...;" }
func (s *EchoStmt) stmtNode()           {}

// ThrowStmt throw 语句
type ThrowStmt struct {
	ThrowToken token.Token
	Value      Expression
	Semicolon  token.Token
}

func (s *ThrowStmt) Pos() token.Position { return s.ThrowToken.Pos }
func (s *ThrowStmt) End() token.Position { return s.Semicolon.Span().End }
func (s *ThrowStmt) String() string      { return "throw ...;" }
func (s *ThrowStmt) stmtNode()           {}

// CatchClause catch 子句 catch (TypeA | TypeB $e) { ... }
type CatchClause struct {
	CatchToken token.Token
	Types      []*Name
	Var        *Variable // 可为 nil
	Body       *BlockStmt
}

// TryStmt try/catch/finally 语句
type TryStmt struct {
	TryToken token.Token
	Body     *BlockStmt
	Catches  []*CatchClause
	Finally  *BlockStmt // 可为 nil
}

func (s *TryStmt) Pos() token.Position { return s.TryToken.Pos }
func (s *TryStmt) End() token.Position {
	if s.Finally != nil {
		return s.Finally.End()
	}
	if n := len(s.Catches); n > 0 {
		return s.Catches[n-1].Body.End()
	}
	return s.Body.End()
}
func (s *TryStmt) String() string { return "try {...}" }
func (s *TryStmt) stmtNode()      {}
