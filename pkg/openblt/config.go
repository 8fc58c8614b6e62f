package openblt

import (
	"os"

	"github.com/feaser/openblt-go/pkg/openblt/logging"
)

// EnvLibrary names the environment variable ConfigFromEnv reads the library
// path from.
const EnvLibrary = "OPENBLT_LIBRARY"

// Config expresses how the native library is located and how the bindings
// report what they did.
type Config struct {
	// Path is the file name or path handed to the dynamic loader. Leaving it
	// empty uses FileName(Platform).
	Path string

	// Platform overrides runtime.GOOS when computing the file name.
	Platform string

	// Logger receives debug records about loading and binding. Nil discards.
	Logger logging.Logger
}

// ConfigFromEnv returns a Config with Path taken from OPENBLT_LIBRARY.
func ConfigFromEnv() Config {
	return Config{Path: os.Getenv(EnvLibrary)}
}

func (c Config) libraryName() string {
	if c.Path != "" {
		return c.Path
	}
	if c.Platform != "" {
		return FileName(c.Platform)
	}
	return DefaultFileName()
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}
