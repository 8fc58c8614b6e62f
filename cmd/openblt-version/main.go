// Command openblt-version loads LibOpenBLT and prints the version
// information it exports.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/feaser/openblt-go/pkg/openblt"
	"github.com/feaser/openblt-go/pkg/openblt/logging"
)

func main() {
	var (
		libPath  = flag.String("lib", os.Getenv(openblt.EnvLibrary), "Path to the LibOpenBLT shared library (default: platform file name)")
		platform = flag.String("platform", "", "Platform used to pick the file extension (default: GOOS)")
		asJSON   = flag.Bool("json", false, "Print the report as JSON")
		verbose  = flag.Bool("v", false, "Log loading and symbol binding")
	)
	flag.Parse()

	z := newZapLogger(*verbose)
	defer func() { _ = z.Sync() }()

	cfg := openblt.Config{
		Path:     *libPath,
		Platform: *platform,
		Logger:   logging.NewZap(z),
	}

	lib, err := openblt.Open(cfg)
	if err != nil {
		z.Error("library unavailable", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			z.Warn("close library", zap.Error(cerr))
		}
	}()

	rep := collect(lib)

	switch {
	case *asJSON:
		err = writeJSON(os.Stdout, rep)
	case term.IsTerminal(int(os.Stdout.Fd())):
		err = writeStyled(os.Stdout, rep)
	default:
		err = writePlain(os.Stdout, rep)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newZapLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	z, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return z
}
