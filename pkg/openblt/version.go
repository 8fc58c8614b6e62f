package openblt

// Version is the Go wrapper version, populated at build time via
// -ldflags "-X github.com/feaser/openblt-go/pkg/openblt.Version=...".
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version of these bindings. In
// development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}
