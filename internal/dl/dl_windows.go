//go:build windows

package dl

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func loadSharedObject(name string) (Handle, error) {
	h, err := windows.LoadLibrary(name)
	return Handle(h), err
}

func resolveSymbol(h Handle, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}

func closeSharedObject(h Handle) error {
	if h == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(h))
}

func goString(p unsafe.Pointer) string {
	return windows.BytePtrToString((*byte)(p))
}
