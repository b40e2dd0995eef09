package version

// Version is the semantic version of the SDK and CLI. Overridable at build
// time with -ldflags "-X github.com/iris-platform/iris-go/internal/version.Version=...".
var Version = "0.9.0"
