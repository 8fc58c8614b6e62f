//go:build !(((darwin || freebsd || linux) && (amd64 || arm64)) || windows)

package dl

func loadSharedObject(string) (Handle, error) {
	return 0, ErrUnsupportedPlatform
}

func resolveSymbol(Handle, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func closeSharedObject(Handle) error {
	return nil
}

// BindUint32 is never reached here because Open always fails.
func BindUint32(uintptr) func() uint32 {
	return func() uint32 { return 0 }
}

// BindCString is never reached here because Open always fails.
func BindCString(uintptr) func() (string, bool) {
	return func() (string, bool) { return "", false }
}
