package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 文档符号
// ============================================================================

// documentSymbols 从文档 AST 构建符号层级
//
// 解析失败的文档没有可用的 AST，返回空列表。
func documentSymbols(doc *Document) []protocol.DocumentSymbol {
	file, err := doc.GetAST()
	if err != nil || file == nil {
		return []protocol.DocumentSymbol{}
	}

	symbols := make([]protocol.DocumentSymbol, 0, len(file.Declarations))
	for _, decl := range file.Declarations {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			symbols = append(symbols, declSymbol(d.Name.Name, protocol.SymbolKindClass, d, classMemberSymbols(d.Members)))
		case *ast.InterfaceDecl:
			symbols = append(symbols, declSymbol(d.Name.Name, protocol.SymbolKindInterface, d, classMemberSymbols(d.Members)))
		case *ast.TraitDecl:
			symbols = append(symbols, declSymbol(d.Name.Name, protocol.SymbolKindClass, d, classMemberSymbols(d.Members)))
		case *ast.EnumDecl:
			symbols = append(symbols, declSymbol(d.Name.Name, protocol.SymbolKindEnum, d, enumMemberSymbols(d.Members)))
		case *ast.FunctionDecl:
			symbols = append(symbols, declSymbol(d.Name.Name, protocol.SymbolKindFunction, d, nil))
		}
	}
	return symbols
}

// classMemberSymbols 构建类/trait/接口成员的符号
func classMemberSymbols(members []ast.ClassMember) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, member := range members {
		switch m := member.(type) {
		case *ast.MethodDecl:
			symbols = append(symbols, declSymbol(m.Name.Name, protocol.SymbolKindMethod, m, nil))
		case *ast.PropertyDecl:
			symbols = append(symbols, declSymbol("$"+m.Var.Name, protocol.SymbolKindProperty, m, nil))
		case *ast.ClassConstDecl:
			symbols = append(symbols, declSymbol(m.Name.Name, protocol.SymbolKindConstant, m, nil))
		}
	}
	return symbols
}

// enumMemberSymbols 构建枚举成员的符号
func enumMemberSymbols(members []ast.EnumMember) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, member := range members {
		switch m := member.(type) {
		case *ast.EnumCase:
			symbols = append(symbols, declSymbol(m.Name.Name, protocol.SymbolKindEnumMember, m, nil))
		case *ast.MethodDecl:
			symbols = append(symbols, declSymbol(m.Name.Name, protocol.SymbolKindMethod, m, nil))
		case *ast.ClassConstDecl:
			symbols = append(symbols, declSymbol(m.Name.Name, protocol.SymbolKindConstant, m, nil))
		}
	}
	return symbols
}

// declSymbol 构建单个符号
func declSymbol(name string, kind protocol.SymbolKind, node ast.Node, children []protocol.DocumentSymbol) protocol.DocumentSymbol {
	r := nodeRange(node)
	return protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          r,
		SelectionRange: r,
		Children:       children,
	}
}

// nodeRange 将节点 Span 转换为 LSP Range（0 起点）
func nodeRange(node ast.Node) protocol.Range {
	return protocol.Range{
		Start: lspPosition(node.Pos()),
		End:   lspPosition(node.End()),
	}
}

func lspPosition(pos token.Position) protocol.Position {
	line := pos.Line - 1
	if line < 0 {
		line = 0
	}
	col := pos.Column - 1
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}
