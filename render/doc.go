// Package render writes FizzBuzz sequences for people and programs.
//
// Three formats are supported:
//   - text: one label per line
//   - color: one label per line, each label styled with a stable color picked
//     by hashing the label, so every "Fizz" shares a color
//   - json: a Document carrying a run ID, the build version, the bounds,
//     the strategy and the labels
package render
