// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Framex is the canonical application identifier used for filesystem paths and CLI branding.
	Framex = "framex"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// Repository is the GitHub slug used for release discovery.
	Repository = "framex-cli/framex"
)

// Build metadata, injected at link time via -ldflags "-X".
var (
	BuiltAt  = ""
	BuiltBy  = ""
	Revision = ""
)
