package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/lumelang/lume/internal/parser"
)

// ============================================================================
// 诊断发布
// ============================================================================

// diagnosticsFor 将文档的解析结果转换为 LSP 诊断列表
//
// 解析器快速失败，一个文档最多产出一条诊断。
// 解析成功时返回空列表，用于清掉客户端里的旧诊断。
func diagnosticsFor(doc *Document) []protocol.Diagnostic {
	_, err := doc.GetAST()
	if err == nil {
		return []protocol.Diagnostic{}
	}

	parseErr, ok := err.(*parser.ParseError)
	if !ok {
		return []protocol.Diagnostic{}
	}

	// LSP 位置从 0 开始
	line := uint32(parseErr.Pos.Line - 1)
	col := uint32(parseErr.Pos.Column - 1)

	return []protocol.Diagnostic{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: col},
				End:   protocol.Position{Line: line, Character: col + 1},
			},
			Severity: protocol.DiagnosticSeverityError,
			Source:   "lume",
			Message:  parseErr.Message,
		},
	}
}

// publishDiagnostics 向客户端推送文档诊断
func (s *Server) publishDiagnostics(docURI string) {
	doc := s.docManager.Get(docURI)
	if doc == nil {
		return
	}

	params := protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(docURI),
		Version:     uint32(doc.Version),
		Diagnostics: diagnosticsFor(doc),
	}

	notification := map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "textDocument/publishDiagnostics",
		"params":  params,
	}

	if err := s.sendMessage(notification); err != nil {
		s.logger.Error("Error publishing diagnostics: %v", err)
	}
}
