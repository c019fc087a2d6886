// Package version reports build metadata for the fizzbuzz binary.
//
// Values come from, in order of preference:
//   - variables injected at link time:
//     -ldflags "-X github.com/JonathanHolmbergOy/fizzbuzz/version.Version=v1.0.0 -X github.com/JonathanHolmbergOy/fizzbuzz/version.Commit=abc1234"
//   - the module and VCS settings recorded by the Go toolchain
//   - development defaults
package version
