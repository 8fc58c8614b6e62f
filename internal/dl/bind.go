//go:build ((darwin || freebsd || linux) && (amd64 || arm64)) || windows

package dl

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// BindUint32 binds addr as a native function taking no arguments and
// returning an unsigned 32-bit integer.
func BindUint32(addr uintptr) func() uint32 {
	var fn func() uint32
	purego.RegisterFunc(&fn, addr)
	return fn
}

// BindCString binds addr as a native function taking no arguments and
// returning a NUL-terminated char pointer. The returned function copies the
// bytes up to the terminator; ok is false when the native side returned NULL.
// The native memory is owned by the library and is not freed.
func BindCString(addr uintptr) func() (s string, ok bool) {
	var fn func() unsafe.Pointer
	purego.RegisterFunc(&fn, addr)
	return func() (string, bool) {
		p := fn()
		if p == nil {
			return "", false
		}
		return goString(p), true
	}
}
