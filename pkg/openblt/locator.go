package openblt

import (
	"runtime"
	"strings"
)

// BaseName is the library file name without extension.
const BaseName = "libopenblt"

const (
	windowsExt  = ".dll"
	fallbackExt = ".so"
)

// Extension returns the shared library extension for platform. Any platform
// string containing "win" selects ".dll"; everything else gets ".so".
func Extension(platform string) string {
	if strings.Contains(platform, "win") {
		return windowsExt
	}
	return fallbackExt
}

// FileName returns the library file name for platform.
func FileName(platform string) string {
	return BaseName + Extension(platform)
}

// DefaultFileName returns the library file name for the running platform.
func DefaultFileName() string {
	return FileName(runtime.GOOS)
}
