package dds

import "github.com/ddsbridge/dds-go/internal/bindings"

var (
	Version        = "v0.0.0-in-progress"
	UpstreamPinned = "2.9.0"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the version string reported by the native engine if
// it is linked; otherwise it falls back to the pinned upstream release.
func UpstreamVersion() string {
	if info, err := bindings.GetInfo(); err == nil && info.VersionString != "" {
		return info.VersionString
	}
	return UpstreamPinned
}
