//go:build ((darwin || linux) && (amd64 || arm64)) || windows

package openblt

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feaser/openblt-go/internal/dl/dltest"
	"github.com/feaser/openblt-go/pkg/openblt/logging"
)

func openStub(t *testing.T, stub *dltest.Stub) *Library {
	t.Helper()
	return newLibrary(context.Background(), stub.Name(), stub, logging.Discard())
}

func TestVersionGetNumberReturnsValueUnchanged(t *testing.T) {
	lib := openStub(t, dltest.New().ExportUint32(SymbolVersionGetNumber, 10512))

	fn, ok := lib.VersionGetNumberFunc()
	require.True(t, ok)
	n, err := fn()
	require.NoError(t, err)
	assert.Equal(t, uint32(10512), n)

	v, err := lib.VersionGetNumber()
	require.NoError(t, err)
	assert.Equal(t, uint32(10512), v)
}

func TestVersionGetStringDecodes(t *testing.T) {
	lib := openStub(t, dltest.New().ExportCString(SymbolVersionGetString, []byte("1.05.12")))

	fn, ok := lib.VersionGetStringFunc()
	require.True(t, ok)
	v, err := fn()
	require.NoError(t, err)
	assert.Equal(t, "1.05.12", v)

	v, err = lib.VersionGetString()
	require.NoError(t, err)
	assert.Equal(t, "1.05.12", v)
}

func TestMissingExportsAreAbsent(t *testing.T) {
	lib := openStub(t, dltest.New())

	_, ok := lib.VersionGetNumberFunc()
	assert.False(t, ok)
	_, ok = lib.VersionGetStringFunc()
	assert.False(t, ok)

	_, err := lib.VersionGetNumber()
	assert.True(t, errors.Is(err, ErrSymbolNotExported), "got %v", err)
	assert.Contains(t, err.Error(), SymbolVersionGetNumber)

	_, err = lib.VersionGetString()
	assert.True(t, errors.Is(err, ErrSymbolNotExported), "got %v", err)
	assert.Contains(t, err.Error(), SymbolVersionGetString)
}

func TestPartialExports(t *testing.T) {
	lib := openStub(t, dltest.New().ExportUint32(SymbolVersionGetNumber, 10000))

	assert.Equal(t, []SymbolStatus{
		{Name: SymbolVersionGetNumber, Bound: true},
		{Name: SymbolVersionGetString, Bound: false},
	}, lib.Symbols())

	v, err := lib.VersionGetNumber()
	require.NoError(t, err)
	assert.Equal(t, uint32(10000), v)

	_, err = lib.VersionGetString()
	assert.ErrorIs(t, err, ErrSymbolNotExported)
}

func TestVersionGetStringInvalidUTF8(t *testing.T) {
	lib := openStub(t, dltest.New().ExportCString(SymbolVersionGetString, []byte{'1', '.', 0xff}))

	v, err := lib.VersionGetString()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Empty(t, v)
}

func TestVersionGetStringNull(t *testing.T) {
	lib := openStub(t, dltest.New().ExportNullCString(SymbolVersionGetString))

	_, err := lib.VersionGetString()
	assert.ErrorIs(t, err, ErrNullString)
}

func TestCloseUnbindsAndIsNotRepeatable(t *testing.T) {
	stub := dltest.New().
		ExportUint32(SymbolVersionGetNumber, 10512).
		ExportCString(SymbolVersionGetString, []byte("1.05.12"))
	lib := openStub(t, stub)

	numberFn, ok := lib.VersionGetNumberFunc()
	require.True(t, ok)
	stringFn, ok := lib.VersionGetStringFunc()
	require.True(t, ok)

	require.NoError(t, lib.Close())
	assert.ErrorIs(t, lib.Close(), ErrLibraryClosed)

	_, err := lib.VersionGetNumber()
	assert.ErrorIs(t, err, ErrLibraryClosed)
	_, err = lib.VersionGetString()
	assert.ErrorIs(t, err, ErrLibraryClosed)

	_, err = numberFn()
	assert.ErrorIs(t, err, ErrLibraryClosed, "functions handed out before Close must not reach native code")
	_, err = stringFn()
	assert.ErrorIs(t, err, ErrLibraryClosed)

	_, ok = lib.VersionGetNumberFunc()
	assert.False(t, ok)
	for _, st := range lib.Symbols() {
		assert.False(t, st.Bound, st.Name)
	}
}

func TestBindingIsLogged(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := logging.New(slog.New(handler))

	stub := dltest.New().ExportUint32(SymbolVersionGetNumber, 10512)
	newLibrary(context.Background(), stub.Name(), stub, logger)

	out := buf.String()
	assert.Contains(t, out, `msg="symbol bound" symbol=BltVersionGetNumber`)
	assert.Contains(t, out, `msg="symbol not exported" symbol=BltVersionGetString`)
}

func TestCloseWaitsForInFlightCall(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	stub := dltest.New().ExportUint32Func(SymbolVersionGetNumber, func() uint32 {
		close(entered)
		<-release
		return 10512
	})
	lib := openStub(t, stub)

	type result struct {
		v   uint32
		err error
	}
	callDone := make(chan result, 1)
	go func() {
		v, err := lib.VersionGetNumber()
		callDone <- result{v, err}
	}()
	<-entered

	closeDone := make(chan error, 1)
	go func() { closeDone <- lib.Close() }()

	select {
	case err := <-closeDone:
		t.Fatalf("Close returned %v while a call was in flight", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	res := <-callDone
	require.NoError(t, res.err)
	assert.Equal(t, uint32(10512), res.v)
	require.NoError(t, <-closeDone)

	_, err := lib.VersionGetNumber()
	assert.ErrorIs(t, err, ErrLibraryClosed)
}

func TestClosedWinsOverMissingExport(t *testing.T) {
	lib := openStub(t, dltest.New())
	require.NoError(t, lib.Close())

	_, err := lib.VersionGetString()
	assert.ErrorIs(t, err, ErrLibraryClosed)
	assert.NotErrorIs(t, err, ErrSymbolNotExported)
}

func TestDefaultLibraryCannotBeClosed(t *testing.T) {
	lib := openStub(t, dltest.New().ExportUint32(SymbolVersionGetNumber, 10512))
	lib.persistent = true

	assert.ErrorIs(t, lib.Close(), ErrDefaultLibrary)

	v, err := lib.VersionGetNumber()
	require.NoError(t, err)
	assert.Equal(t, uint32(10512), v)
}
