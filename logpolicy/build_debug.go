//go:build !bridgelog_release
// +build !bridgelog_release

package logpolicy

// ReleaseBuild reports whether the binary was built with the bridgelog_release tag.
const ReleaseBuild = false
