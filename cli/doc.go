// Package cli contains the command line interface for ditto.
//
// # Usage
//
// The default command expands a template read from a file or stdin:
//
//	ditto expand template.txt
//	cat template.txt | ditto
//
// Supporting commands inspect the intermediate stages:
//
//	ditto tokens template.txt   # print the token tree
//	ditto vars template.txt     # print the declared variable table
//	ditto repl                  # interactive playground
//	ditto version               # print version
//
// # Configuration
//
// Flags may be set persistently in a YAML file at
// $XDG_CONFIG_HOME/ditto/config.yaml (keys match flag names).
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: output format (json, text)
//   - --log-time-layout: timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (cpu, heap, allocs, ...)
//   - --pprof-dir: profile output directory
package cli
