// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is configured at creation time using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// Five levels are supported ([LevelTrace] through [LevelError]), each with
// a context-aware and context-unaware method. Two output formats are
// supported ([FormatText] and [FormatJSON]), both with an optional
// colorized pretty-printing mode.
//
// The package also maintains a default logger used by the package-level
// functions; [Config] reconfigures it, which the CLI does as soon as its
// logging flags are parsed:
//
//	log.Config(log.WithLevel(log.LevelDebug))
//	log.Debug("visible now")
//
// The zero [Logger] silently discards all messages, so library types can
// embed one without requiring callers to provide it.
package log
