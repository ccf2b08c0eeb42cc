package logging

import (
	"io"
	"os"
	"sync"
)

// globalWriter delegates to an underlying writer that can be swapped at
// runtime.
type globalWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (gw *globalWriter) Write(p []byte) (n int, err error) {
	gw.mu.RLock()
	defer gw.mu.RUnlock()
	return gw.w.Write(p)
}

func (gw *globalWriter) Set(w io.Writer) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	gw.w = w
}

var defaultGlobalWriter = &globalWriter{w: os.Stderr}

// SetGlobalOutput redirects every logger and pretty writer that uses the
// global output. Tests use it to capture stderr.
func SetGlobalOutput(w io.Writer) {
	defaultGlobalWriter.Set(w)
}

// GetGlobalOutput returns the shared global writer.
func GetGlobalOutput() io.Writer {
	return defaultGlobalWriter
}
