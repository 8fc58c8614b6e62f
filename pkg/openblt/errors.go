package openblt

import (
	"errors"

	"github.com/feaser/openblt-go/internal/dl"
)

var (
	// ErrLibraryNotFound reports that the shared library could not be found
	// or loaded. It is returned by Open; nothing is deferred to the first call.
	ErrLibraryNotFound = dl.ErrLibraryNotFound

	// ErrUnsupportedPlatform signals that run-time loading is not available
	// for this GOOS/GOARCH.
	ErrUnsupportedPlatform = dl.ErrUnsupportedPlatform

	// ErrLibraryClosed is returned by calls on a closed Library and by a
	// second Close.
	ErrLibraryClosed = errors.New("openblt: library closed")

	// ErrDefaultLibrary is returned by Close on the library from Default,
	// which other callers share for the lifetime of the process.
	ErrDefaultLibrary = errors.New("openblt: default library cannot be closed")

	// ErrSymbolNotExported reports that the loaded library build does not
	// export the requested function.
	ErrSymbolNotExported = errors.New("openblt: symbol not exported")

	// ErrInvalidUTF8 reports that a string returned by the library is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("openblt: invalid UTF-8 in library string")

	// ErrNullString reports that a string-returning export returned NULL.
	ErrNullString = errors.New("openblt: library returned a NULL string")
)

func remapError(err error) error {
	if errors.Is(err, dl.ErrClosed) {
		return ErrLibraryClosed
	}
	return err
}
