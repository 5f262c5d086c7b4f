package lsp

import (
	"strings"
	"sync"

	"go.lsp.dev/uri"

	"github.com/lumelang/lume/internal/ast"
	"github.com/lumelang/lume/internal/parser"
)

// Document 表示一个打开的文档
type Document struct {
	URI     string
	Content string
	Version int
	Lines   []string

	// 延迟解析结果
	file     *ast.File
	parseErr error
	parsed   bool
	mu       sync.Mutex
}

// GetAST 获取文档的 AST（延迟解析）
//
// 解析快速失败，出错时 AST 为 nil，错误是 *parser.ParseError。
func (d *Document) GetAST() (*ast.File, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.parsed {
		d.parse()
	}
	return d.file, d.parseErr
}

// parse 解析文档（内部方法，不加锁）
func (d *Document) parse() {
	// 文档大小限制（500KB），超过时跳过解析
	if len(d.Content) > 500*1024 {
		d.file = nil
		d.parseErr = nil
		d.parsed = true
		return
	}

	d.file, d.parseErr = parser.Parse(d.Content, uriToPath(d.URI))
	d.parsed = true
}

// Invalidate 标记文档需要重新解析
func (d *Document) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.parsed = false
	d.file = nil
	d.parseErr = nil
}

// uriToPath 将 file:// URI 转换为文件系统路径
func uriToPath(s string) string {
	if !strings.HasPrefix(s, "file://") {
		return s
	}
	return uri.URI(s).Filename()
}

// SplitLines 按行切分文档内容
func SplitLines(content string) []string {
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

// DocumentManager 文档管理器
type DocumentManager struct {
	docs      map[string]*Document // URI -> Document
	openOrder []string             // LRU 顺序（最近使用的在最后）
	maxDocs   int                  // 最多缓存的文档数量
	mu        sync.Mutex
	logger    *Logger
}

// NewDocumentManager 创建文档管理器
func NewDocumentManager(logger *Logger) *DocumentManager {
	return &DocumentManager{
		docs:      make(map[string]*Document),
		openOrder: make([]string, 0, 10),
		maxDocs:   32,
		logger:    logger,
	}
}

// Open 打开文档
func (dm *DocumentManager) Open(uri, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if doc, exists := dm.docs[uri]; exists {
		doc.Content = content
		doc.Version = version
		doc.Lines = SplitLines(content)
		doc.Invalidate()
		dm.updateLRU(uri)
		dm.logger.Debug("Document updated: %s (version %d)", uri, version)
		return doc
	}

	if len(dm.docs) >= dm.maxDocs {
		dm.evictOldest()
	}

	doc := &Document{
		URI:     uri,
		Content: content,
		Version: version,
		Lines:   SplitLines(content),
	}

	dm.docs[uri] = doc
	dm.openOrder = append(dm.openOrder, uri)
	dm.logger.Debug("Document opened: %s (version %d, size %d bytes)", uri, version, len(content))

	return doc
}

// Close 关闭文档
func (dm *DocumentManager) Close(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, exists := dm.docs[uri]
	if !exists {
		return
	}

	delete(dm.docs, uri)

	for i, u := range dm.openOrder {
		if u == uri {
			dm.openOrder = append(dm.openOrder[:i], dm.openOrder[i+1:]...)
			break
		}
	}

	doc.file = nil
	doc.Lines = nil
	doc.Content = ""

	dm.logger.Debug("Document closed: %s (remaining: %d)", uri, len(dm.docs))
}

// Get 获取文档
func (dm *DocumentManager) Get(uri string) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, exists := dm.docs[uri]
	if !exists {
		return nil
	}

	dm.updateLRU(uri)
	return doc
}

// Update 更新文档内容
func (dm *DocumentManager) Update(uri, content string, version int) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, exists := dm.docs[uri]
	if !exists {
		return
	}

	doc.Content = content
	doc.Version = version
	doc.Lines = SplitLines(content)
	doc.Invalidate()
	dm.updateLRU(uri)

	dm.logger.Debug("Document content updated: %s (version %d)", uri, version)
}

// Count 返回当前打开的文档数量
func (dm *DocumentManager) Count() int {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return len(dm.docs)
}

// updateLRU 更新 LRU 顺序（内部方法，调用者需持有锁）
func (dm *DocumentManager) updateLRU(uri string) {
	for i, u := range dm.openOrder {
		if u == uri {
			dm.openOrder = append(dm.openOrder[:i], dm.openOrder[i+1:]...)
			break
		}
	}
	dm.openOrder = append(dm.openOrder, uri)
}

// evictOldest 淘汰最旧的文档（内部方法，调用者需持有锁）
func (dm *DocumentManager) evictOldest() {
	if len(dm.openOrder) == 0 {
		return
	}

	oldestURI := dm.openOrder[0]
	doc := dm.docs[oldestURI]

	delete(dm.docs, oldestURI)
	dm.openOrder = dm.openOrder[1:]

	if doc != nil {
		doc.file = nil
		doc.Lines = nil
		doc.Content = ""
	}

	dm.logger.Info("Evicted oldest document (LRU): %s", oldestURI)
}
