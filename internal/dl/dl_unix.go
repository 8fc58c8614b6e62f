//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package dl

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

func loadSharedObject(name string) (Handle, error) {
	h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	return Handle(h), err
}

func resolveSymbol(h Handle, name string) (uintptr, error) {
	return purego.Dlsym(uintptr(h), name)
}

func closeSharedObject(h Handle) error {
	if h == 0 {
		return nil
	}
	return purego.Dlclose(uintptr(h))
}

func goString(p unsafe.Pointer) string {
	return unix.BytePtrToString((*byte)(p))
}
