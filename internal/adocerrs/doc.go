// Package adocerrs provides centralized error types for the adoc CLI.
//
// All custom error types in this package:
//   - Use pointer receivers for the Error() method
//   - Include structured fields for contextual information
//   - Implement Unwrap() when wrapping underlying errors
//
// Error types are organized by domain:
//   - io.go: file discovery and reading errors
//   - format.go: output-format errors
//   - watch.go: watch-mode errors
//   - config.go: configuration file errors
package adocerrs
