package openblt

import (
	"context"
	"sync"

	"github.com/feaser/openblt-go/internal/dl"
	"github.com/feaser/openblt-go/pkg/openblt/logging"
)

// symbolTable is what the bindings need from a loaded library.
type symbolTable interface {
	Lookup(name string) (uintptr, bool)
	Close() error
}

// Library represents an opened handle to LibOpenBLT together with the
// optional exports that were found in it.
type Library struct {
	name   string
	syms   symbolTable
	logger logging.Logger

	// mu is held for reading across every native call and for writing by
	// Close, so the handle is never released under a running call.
	mu         sync.RWMutex
	closed     bool
	persistent bool

	versionNumber func() uint32
	versionString func() (string, bool)
}

// Open loads the library described by cfg and binds the optional exports it
// provides. A library that cannot be loaded fails here with
// ErrLibraryNotFound.
func Open(cfg Config) (*Library, error) {
	return OpenContext(context.Background(), cfg)
}

// OpenContext is Open with a context for the log records emitted while
// loading.
func OpenContext(ctx context.Context, cfg Config) (*Library, error) {
	name := cfg.libraryName()
	logger := cfg.logger().With("library", name)

	h, err := dl.Open(name)
	if err != nil {
		logger.Error(ctx, "load shared library", "error", err)
		return nil, remapError(err)
	}
	logger.Debug(ctx, "shared library loaded")

	return newLibrary(ctx, name, h, logger), nil
}

// MustOpen is like Open but panics if the library cannot be loaded.
func MustOpen(cfg Config) *Library {
	lib, err := Open(cfg)
	if err != nil {
		panic(err)
	}
	return lib
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the process-wide library opened with ConfigFromEnv on first
// use. The handle stays open for the lifetime of the process: Close on it
// returns ErrDefaultLibrary. The first error is returned on every call.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Open(ConfigFromEnv())
		if defaultLib != nil {
			defaultLib.persistent = true
		}
	})
	return defaultLib, defaultErr
}

func newLibrary(ctx context.Context, name string, syms symbolTable, logger logging.Logger) *Library {
	l := &Library{name: name, syms: syms, logger: logger}

	if addr, ok := syms.Lookup(SymbolVersionGetNumber); ok {
		l.versionNumber = dl.BindUint32(addr)
	}
	if addr, ok := syms.Lookup(SymbolVersionGetString); ok {
		l.versionString = dl.BindCString(addr)
	}

	for _, st := range l.Symbols() {
		if st.Bound {
			logger.Debug(ctx, "symbol bound", "symbol", st.Name)
		} else {
			logger.Debug(ctx, "symbol not exported", "symbol", st.Name)
		}
	}
	return l
}

// Name returns the file name or path handed to the dynamic loader.
func (l *Library) Name() string {
	return l.name
}

// Close releases the native handle once in-flight calls have returned. The
// method is not repeatable; a second call returns ErrLibraryClosed. Functions
// obtained from the accessors report ErrLibraryClosed afterwards.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.persistent {
		return ErrDefaultLibrary
	}
	if l.closed {
		return ErrLibraryClosed
	}
	if err := l.syms.Close(); err != nil {
		return remapError(err)
	}

	l.closed = true
	l.versionNumber = nil
	l.versionString = nil
	l.logger.Debug(context.Background(), "shared library closed")
	return nil
}
