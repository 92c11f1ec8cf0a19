// Package version holds the application version, overridable at build time
// via -ldflags.
package version

// Version is the application version string.
var Version = "0.3.0"
