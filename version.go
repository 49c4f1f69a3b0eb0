package lesolver

// Version is the release of the lesolver module. Overridden at build time with -ldflags.
var Version = "0.1.0"
