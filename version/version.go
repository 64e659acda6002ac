package version

// Version is set at build time via -ldflags "-X github.com/liamg/portgate/version.Version=..."
var Version string
