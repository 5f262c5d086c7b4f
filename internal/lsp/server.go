package lsp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	json "github.com/segmentio/encoding/json"
	"go.lsp.dev/protocol"
)

// Server LSP 服务器
//
// 通过 stdin/stdout 使用 LSP 基础协议（Content-Length 帧）通信。
type Server struct {
	docManager *DocumentManager
	logger     *Logger

	// 工作区信息
	workspaceRoot string

	// 输入输出
	reader *bufio.Reader
	writer io.Writer
	mu     sync.Mutex

	// 服务器状态
	initialized bool
	shutdown    bool
}

// NewServer 创建 LSP 服务器
func NewServer(logPath string) *Server {
	logger := NewLogger(logPath)

	s := &Server{
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
	s.docManager = NewDocumentManager(logger)
	return s
}

// Run 启动 LSP 服务器主循环
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Lume LSP Server started (debug=%v)", s.logger.IsEnabled())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("Client disconnected")
				return nil
			}
			s.logger.Error("Error reading message: %v", err)
			continue
		}

		s.handleMessage(msg)

		if s.shutdown {
			s.logger.Info("Server shutdown")
			s.logger.Close()
			return nil
		}
	}
}

// readMessage 读取 LSP 消息
func (s *Server) readMessage() ([]byte, error) {
	var contentLength int
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)

		if line == "" {
			// 头部结束
			break
		}

		if strings.HasPrefix(line, "Content-Length:") {
			lengthStr := strings.TrimSpace(strings.TrimPrefix(line, "Content-Length:"))
			contentLength, err = strconv.Atoi(lengthStr)
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %s", lengthStr)
			}
		}
	}

	if contentLength == 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}

	content := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, content); err != nil {
		return nil, err
	}

	s.logger.Debug("Received message: %d bytes", contentLength)
	return content, nil
}

// sendMessage 发送 LSP 消息
func (s *Server) sendMessage(msg interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(content))

	s.logger.Debug("Sending message: %d bytes", len(content))

	if _, err := s.writer.Write([]byte(header)); err != nil {
		return err
	}
	_, err = s.writer.Write(content)
	return err
}

// handleMessage 处理收到的消息
func (s *Server) handleMessage(msg []byte) {
	var baseMsg struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id,omitempty"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params,omitempty"`
	}

	if err := json.Unmarshal(msg, &baseMsg); err != nil {
		s.logger.Error("Error parsing message: %v", err)
		return
	}

	s.logger.Debug("Handling method: %s", baseMsg.Method)

	switch baseMsg.Method {
	case "initialize":
		s.handleInitialize(baseMsg.ID, baseMsg.Params)
	case "initialized":
		s.handleInitialized()
	case "shutdown":
		s.handleShutdown(baseMsg.ID)
	case "exit":
		s.handleExit()
	case "textDocument/didOpen":
		s.handleDidOpen(baseMsg.Params)
	case "textDocument/didChange":
		s.handleDidChange(baseMsg.Params)
	case "textDocument/didClose":
		s.handleDidClose(baseMsg.Params)
	case "textDocument/didSave":
		s.handleDidSave(baseMsg.Params)
	case "textDocument/documentSymbol":
		s.handleDocumentSymbol(baseMsg.ID, baseMsg.Params)
	default:
		s.logger.Debug("Unhandled method: %s", baseMsg.Method)
		if baseMsg.ID != nil {
			s.sendError(baseMsg.ID, -32601, "Method not found: "+baseMsg.Method)
		}
	}
}

// handleInitialize 处理初始化请求
func (s *Server) handleInitialize(id json.RawMessage, params json.RawMessage) {
	var initParams protocol.InitializeParams
	if err := json.Unmarshal(params, &initParams); err != nil {
		s.sendError(id, -32700, "Parse error")
		return
	}

	if initParams.RootURI != "" {
		s.workspaceRoot = string(initParams.RootURI)
	}

	s.logger.Info("Initialize: workspace=%s", s.workspaceRoot)

	result := map[string]interface{}{
		"capabilities": map[string]interface{}{
			// 文档同步：完整同步
			"textDocumentSync": map[string]interface{}{
				"openClose": true,
				"change":    1, // Full sync
				"save": map[string]interface{}{
					"includeText": true,
				},
			},
			"documentSymbolProvider": true,
		},
		"serverInfo": map[string]interface{}{
			"name":    "lumels",
			"version": "0.1.0",
		},
	}

	s.sendResult(id, result)
}

// handleInitialized 处理初始化完成通知
func (s *Server) handleInitialized() {
	s.initialized = true
	s.logger.Info("Server initialized")
}

// handleShutdown 处理关闭请求
func (s *Server) handleShutdown(id json.RawMessage) {
	s.logger.Info("Shutdown requested")
	s.sendResult(id, nil)
}

// handleExit 处理退出通知
func (s *Server) handleExit() {
	s.shutdown = true
	s.logger.Info("Exit notification received")
}

// handleDidOpen 处理文档打开
func (s *Server) handleDidOpen(params json.RawMessage) {
	var p protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Error("Error parsing didOpen params: %v", err)
		return
	}

	docURI := string(p.TextDocument.URI)
	s.docManager.Open(docURI, p.TextDocument.Text, int(p.TextDocument.Version))
	s.publishDiagnostics(docURI)
}

// handleDidChange 处理文档变更
func (s *Server) handleDidChange(params json.RawMessage) {
	var p protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Error("Error parsing didChange params: %v", err)
		return
	}

	docURI := string(p.TextDocument.URI)

	// 完整同步：使用第一个变更的文本内容
	if len(p.ContentChanges) > 0 {
		newContent := p.ContentChanges[0].Text
		s.docManager.Update(docURI, newContent, int(p.TextDocument.Version))
		s.publishDiagnostics(docURI)
	}
}

// handleDidClose 处理文档关闭
func (s *Server) handleDidClose(params json.RawMessage) {
	var p protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Error("Error parsing didClose params: %v", err)
		return
	}

	s.docManager.Close(string(p.TextDocument.URI))
}

// handleDidSave 处理文档保存
func (s *Server) handleDidSave(params json.RawMessage) {
	var p protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Error("Error parsing didSave params: %v", err)
		return
	}

	s.logger.Debug("Document saved: %s", p.TextDocument.URI)

	docURI := string(p.TextDocument.URI)
	if p.Text != "" {
		doc := s.docManager.Get(docURI)
		if doc != nil {
			s.docManager.Update(docURI, p.Text, doc.Version+1)
		}
	}
	s.publishDiagnostics(docURI)
}

// handleDocumentSymbol 处理文档符号请求
func (s *Server) handleDocumentSymbol(id json.RawMessage, params json.RawMessage) {
	var p protocol.DocumentSymbolParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.sendError(id, -32700, "Parse error")
		return
	}

	doc := s.docManager.Get(string(p.TextDocument.URI))
	if doc == nil {
		s.sendResult(id, []protocol.DocumentSymbol{})
		return
	}

	s.sendResult(id, documentSymbols(doc))
}

// sendResult 发送成功响应
func (s *Server) sendResult(id json.RawMessage, result interface{}) {
	response := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	}
	s.sendMessage(response)
}

// sendError 发送错误响应
func (s *Server) sendError(id json.RawMessage, code int, message string) {
	response := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}
	s.sendMessage(response)
}
