//go:build ((darwin || linux) && (amd64 || arm64)) || windows

// Package dltest builds in-process stand-ins for LibOpenBLT exports. Each
// export is a Go function turned into a C-callable address with
// purego.NewCallback, so binding code under test goes through the same
// native call path it uses against the real library.
package dltest

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ErrClosed mirrors dl.ErrClosed for stubs.
var ErrClosed = errors.New("openblt/internal/dl/dltest: stub closed")

// Stub is a fake symbol table. The zero value is not usable; call New.
type Stub struct {
	mu      sync.Mutex
	symbols map[string]uintptr
	pinned  [][]byte
	closed  bool
}

// New returns an empty stub library.
func New() *Stub {
	return &Stub{symbols: make(map[string]uintptr)}
}

// ExportUint32 adds a no-argument export returning v.
func (s *Stub) ExportUint32(name string, v uint32) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols[name] = purego.NewCallback(func() uintptr { return uintptr(v) })
	return s
}

// ExportUint32Func adds a no-argument export that runs fn on every call.
// fn may block, which lets tests hold a call in flight.
func (s *Stub) ExportUint32Func(name string, fn func() uint32) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols[name] = purego.NewCallback(func() uintptr { return uintptr(fn()) })
	return s
}

// ExportCString adds a no-argument export returning a pointer to b followed
// by a NUL terminator. b may hold invalid UTF-8.
func (s *Stub) ExportCString(name string, b []byte) *Stub {
	buf := make([]byte, len(b)+1)
	copy(buf, b)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pinned = append(s.pinned, buf)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	s.symbols[name] = purego.NewCallback(func() uintptr { return addr })
	return s
}

// ExportNullCString adds a no-argument export returning NULL.
func (s *Stub) ExportNullCString(name string) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols[name] = purego.NewCallback(func() uintptr { return 0 })
	return s
}

// Lookup implements the symbol lookup used by the bindings.
func (s *Stub) Lookup(name string) (uintptr, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, false
	}
	addr, ok := s.symbols[name]
	return addr, ok
}

// Name returns a fixed placeholder file name.
func (s *Stub) Name() string { return "libopenblt-stub" }

// Close marks the stub closed. Closing twice returns ErrClosed.
func (s *Stub) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return nil
}
