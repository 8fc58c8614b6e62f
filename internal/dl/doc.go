// Package dl loads the LibOpenBLT shared library at run time and binds its
// exports to Go functions.
//
// # Design Principles
//
//  1. Isolation: every use of purego, unsafe and golang.org/x/sys lives in
//     this package. Callers only see handles, symbol addresses and plain Go
//     functions.
//
//  2. Look up before bind: Lookup reports whether an export exists. A missing
//     export is a normal outcome, never an error.
//
//  3. Fail at open: a library that cannot be loaded is reported by Open, not
//     on the first call into it.
//
// # Platforms
//
// darwin, freebsd and linux on amd64 or arm64 use purego's dlopen(3) with
// RTLD_NOW|RTLD_GLOBAL. Windows uses LoadLibrary and GetProcAddress. Every
// other platform, netbsd included, reports ErrUnsupportedPlatform from Open.
package dl
