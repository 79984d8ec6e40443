package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

// WriterMetrics counts the files handled by one generation run.
type WriterMetrics struct {
	FilesWritten   int
	FilesUnchanged int
	TotalBytes     int64
}

// metrics is the concurrency-safe accumulator behind WriterMetrics.
type metrics struct {
	mu sync.Mutex
	m  WriterMetrics
}

func (m *metrics) written(n int) {
	m.mu.Lock()
	m.m.FilesWritten++
	m.m.TotalBytes += int64(n)
	m.mu.Unlock()
}

func (m *metrics) unchanged() {
	m.mu.Lock()
	m.m.FilesUnchanged++
	m.mu.Unlock()
}

func (m *metrics) reset() {
	m.mu.Lock()
	m.m = WriterMetrics{}
	m.mu.Unlock()
}

func (m *metrics) snapshot() WriterMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.m
}

// formatOptions only formats and sorts imports. Jennifer tracks imports, so
// there is nothing to add or remove.
var formatOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

// writeFile renders f, formats it and writes it to the output directory.
// Files whose content did not change are left untouched.
func (g *JenniferGenerator) writeFile(phase string, f *jen.File, filename string) error {
	if f == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError(phase, filename, "cannot render file", err)
	}
	path := filepath.Join(g.outDir, filename)
	formatted, err := imports.Process(path, buf.Bytes(), formatOptions)
	if err != nil {
		// Keep the unformatted output around for debugging.
		debugPath := path + ".error"
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return NewGenerationError(phase, filename, "cannot format file (unformatted output in "+debugPath+")", err)
	}
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, formatted) {
		g.metrics.unchanged()
		g.log.Debug("file unchanged", zap.String("path", path))
		return nil
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return NewGenerationError(phase, filename, "cannot write file", err)
	}
	g.metrics.written(len(formatted))
	g.log.Debug("file written", zap.String("path", path), zap.Int("bytes", len(formatted)))
	return nil
}
