package openblt

import "fmt"

// Exports looked up when the library is opened. Older or minimal builds of
// LibOpenBLT may lack either.
const (
	SymbolVersionGetNumber = "BltVersionGetNumber"
	SymbolVersionGetString = "BltVersionGetString"
)

// SymbolStatus reports whether an optional export was bound.
type SymbolStatus struct {
	Name  string
	Bound bool
}

// Symbols lists the optional exports in lookup order with their binding state.
func (l *Library) Symbols() []SymbolStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return []SymbolStatus{
		{Name: SymbolVersionGetNumber, Bound: l.versionNumber != nil},
		{Name: SymbolVersionGetString, Bound: l.versionString != nil},
	}
}

// VersionGetNumberFunc returns the bound BltVersionGetNumber. The number has
// two decimal digits each for major, minor and patch, so 1.05.12 is 10512.
// ok is false when the library does not export it or is closed. The returned
// function reports ErrLibraryClosed once the library has been closed.
func (l *Library) VersionGetNumberFunc() (fn func() (uint32, error), ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed || l.versionNumber == nil {
		return nil, false
	}
	return l.VersionGetNumber, true
}

// VersionGetStringFunc returns the bound BltVersionGetString, wrapped so the
// result is decoded as UTF-8. ok is false when the library does not export it
// or is closed. The returned function reports ErrLibraryClosed once the
// library has been closed.
func (l *Library) VersionGetStringFunc() (fn func() (string, error), ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed || l.versionString == nil {
		return nil, false
	}
	return l.VersionGetString, true
}

// VersionGetNumber calls BltVersionGetNumber. Close waits for the call to
// return before the handle is released.
func (l *Library) VersionGetNumber() (uint32, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return 0, ErrLibraryClosed
	}
	if l.versionNumber == nil {
		return 0, fmt.Errorf("%s: %w", SymbolVersionGetNumber, ErrSymbolNotExported)
	}
	return l.versionNumber(), nil
}

// VersionGetString calls BltVersionGetString, for example "1.05.12". Close
// waits for the call to return before the handle is released.
func (l *Library) VersionGetString() (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return "", ErrLibraryClosed
	}
	if l.versionString == nil {
		return "", fmt.Errorf("%s: %w", SymbolVersionGetString, ErrSymbolNotExported)
	}

	s, ok := l.versionString()
	if !ok {
		return "", fmt.Errorf("%s: %w", SymbolVersionGetString, ErrNullString)
	}
	v, err := decodeUTF8(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", SymbolVersionGetString, err)
	}
	return v, nil
}
