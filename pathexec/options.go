// Package pathexec evaluates path expressions against a parsed document,
// driving a jaunt.Trace step by step. The syntax is deliberately small: dot
// separated field names, [i] indexes, [*] fan-out, a leading $var reference
// and ^ to re-anchor at the traversal root. It is not a query language;
// predicates, functions and arithmetic live above this layer.
package pathexec

// Options configures path evaluation behavior.
type Options struct {
	// Limits to keep pathological inputs in check
	MaxDepth  int // Max segments in one path expression (default: 64)
	MaxFanOut int // Max traces a single ResolveAll may produce (default: 10000)

	// Logging configuration
	LogLevel            string // Log level: "error", "warn", "info", "debug" (default: "warn")
	LogNodePreviewDepth int    // Max container depth to preview in logs (default: 2)

	// Logger overrides the logger built from LogLevel when set.
	Logger Logger
}

// DefaultOptions returns the default configuration for path evaluation.
func DefaultOptions() Options {
	return Options{
		MaxDepth:            64,
		MaxFanOut:           10000,
		LogLevel:            "warn",
		LogNodePreviewDepth: 2,
	}
}
