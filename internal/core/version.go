package core

// Version is shown in frontends and reported by the CLI.
// Overridden at build time with -ldflags "-X .../internal/core.Version=...".
var Version = "1.0.2"
