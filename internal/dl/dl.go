package dl

import (
	"fmt"
	"sync"
)

// Library is an open handle to a shared library.
type Library struct {
	name string

	mu     sync.Mutex
	handle Handle
	closed bool
}

// Open loads the shared library with the platform loader. The name is passed
// through unchanged, so a bare file name is resolved with the loader's own
// search rules.
func Open(name string) (*Library, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty library name", ErrLibraryNotFound)
	}

	h, err := loadSharedObject(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, name, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("%w: %s: loader returned a nil handle", ErrLibraryNotFound, name)
	}

	return &Library{name: name, handle: h}, nil
}

// Name returns the name the library was opened with.
func (l *Library) Name() string { return l.name }

// Lookup resolves an exported symbol. It returns false when the library does
// not export name or has been closed.
func (l *Library) Lookup(name string) (uintptr, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, false
	}
	addr, err := resolveSymbol(l.handle, name)
	if err != nil || addr == 0 {
		return 0, false
	}
	return addr, true
}

// Close releases the handle. Closing twice returns ErrClosed.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	if err := closeSharedObject(l.handle); err != nil {
		return fmt.Errorf("close %s: %w", l.name, err)
	}
	l.closed = true
	l.handle = 0
	return nil
}
