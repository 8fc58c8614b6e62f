// Package openblt exposes the OpenBLT host library (LibOpenBLT) to Go.
//
// The shared library is located by file name, loaded at run time without
// cgo, and checked for its optional exports. Only exports the loaded build
// actually provides are bound; callers check for presence before use:
//
//	lib, err := openblt.Open(openblt.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lib.Close()
//
//	if fn, ok := lib.VersionGetStringFunc(); ok {
//	    v, err := fn()
//	    ...
//	}
//
// The file name is "libopenblt" plus ".dll" on Windows-family platforms and
// ".so" everywhere else. It is resolved with the operating system's search
// rules; set Config.Path or OPENBLT_LIBRARY to load a specific file.
package openblt
