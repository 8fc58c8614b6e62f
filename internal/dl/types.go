package dl

import "errors"

var (
	// ErrLibraryNotFound reports that the platform loader could not find or
	// load the requested shared library.
	ErrLibraryNotFound = errors.New("openblt/internal/dl: shared library not loadable")

	// ErrUnsupportedPlatform signals that run-time loading is not available
	// for the GOOS/GOARCH the binary was built for.
	ErrUnsupportedPlatform = errors.New("openblt/internal/dl: dynamic loading not supported on this platform")

	// ErrClosed is returned when a closed library handle is used.
	ErrClosed = errors.New("openblt/internal/dl: library closed")
)

// Handle is the raw platform handle returned by the dynamic loader.
type Handle uintptr
