package hanoi

// Version is the release of the hanoi module. Overridden at build time with
// -ldflags "-X github.com/aretw0/hanoi.Version=...".
var Version = "0.1.0"
