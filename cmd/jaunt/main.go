// Command jaunt resolves a path expression against a JSON or YAML document
// and prints the result.
//
// Usage:
//
//	jaunt -p 'store.book[*].title' -f doc.json
//	cat doc.json | jaunt -p 'store.book[0]' -yaml
//	jaunt -p 'order.items' -f doc.json -describe
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	goyaml "github.com/itchyny/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/ohler55/ojg/oj"

	"github.com/jauntql/jaunt"
	"github.com/jauntql/jaunt/pathexec"
	"github.com/jauntql/jaunt/pkg/describe"
)

const previewWidth = 72

type config struct {
	path     string
	file     string
	all      bool
	yamlOut  bool
	compact  bool
	describe bool
	trace    bool
	logLevel string
	lets     []string
}

func main() {
	os.Exit(run())
}

func run() int {
	var cfg config
	flag.StringVar(&cfg.path, "p", "", "path expression to resolve (required)")
	flag.StringVar(&cfg.file, "f", "", "document file (default: stdin)")
	flag.BoolVar(&cfg.all, "all", false, "resolve wildcard paths, printing every match")
	flag.BoolVar(&cfg.yamlOut, "yaml", false, "print results as YAML instead of JSON")
	flag.BoolVar(&cfg.compact, "c", false, "print compact JSON")
	flag.BoolVar(&cfg.describe, "describe", false, "print the inferred schema of each result instead of its value")
	flag.BoolVar(&cfg.trace, "trace", false, "print the step stack of each match to stderr")
	flag.StringVar(&cfg.logLevel, "log-level", "warn", "log level: error, warn, info, debug")
	flag.Func("let", "bind a variable, e.g. -let '$min=10' (repeatable, value is JSON)", func(s string) error {
		cfg.lets = append(cfg.lets, s)
		return nil
	})
	flag.Parse()

	if cfg.path == "" {
		fmt.Fprintln(os.Stderr, "jaunt: -p is required")
		flag.Usage()
		return 2
	}

	doc, err := readDocument(cfg.file)
	if err != nil {
		fail("%v", err)
		return 2
	}

	ev := pathexec.New(pathexec.Options{
		MaxDepth:            64,
		MaxFanOut:           10000,
		LogLevel:            cfg.logLevel,
		LogNodePreviewDepth: 2,
	})
	for _, let := range cfg.lets {
		if err := bind(ev, let); err != nil {
			fail("%v", err)
			return 2
		}
	}

	traces, err := resolve(ev, doc, cfg)
	if err != nil {
		fail("%v", err)
		return 2
	}
	if len(traces) == 0 {
		fail("no match for path %s", cfg.path)
		return 1
	}

	for _, t := range traces {
		if cfg.trace {
			printTrace(t)
		}
		if err := printResult(t.Node(), cfg); err != nil {
			fail("%v", err)
			return 2
		}
	}
	return 0
}

func resolve(ev *pathexec.Evaluator, doc *jaunt.Node, cfg config) ([]*jaunt.Trace, error) {
	if cfg.all {
		return ev.ResolveAll(doc, cfg.path)
	}
	t, err := ev.Resolve(doc, cfg.path)
	if err != nil || t == nil {
		return nil, err
	}
	return []*jaunt.Trace{t}, nil
}

func readDocument(file string) (*jaunt.Node, error) {
	var data []byte
	var err error
	if file == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return jaunt.Parse(data)
}

// bind parses a "-let $name=value" argument. The value is a JSON document, so
// strings need quotes: -let '$label="en"'.
func bind(ev *pathexec.Evaluator, s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("-let needs the form $name=value, got %q", s)
	}
	node, err := jaunt.ParseString(value)
	if err != nil {
		return fmt.Errorf("bad value for %s: %w", name, err)
	}
	return ev.Let(name, node)
}

func printResult(n *jaunt.Node, cfg config) error {
	if cfg.describe {
		fmt.Println(describe.Summary(describe.Schema(n), 3))
		return nil
	}
	v, err := n.Interface()
	if err != nil {
		return err
	}
	switch {
	case cfg.yamlOut:
		out, err := goyaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Print(string(out))
	case cfg.compact:
		fmt.Println(oj.JSON(v))
	default:
		fmt.Println(oj.JSON(v, 2))
	}
	return nil
}

// printTrace writes the step stack to stderr, one width-truncated preview per
// step.
func printTrace(t *jaunt.Trace) {
	for i, step := range t.Steps() {
		preview := runewidth.Truncate(pathexec.NodeSummary(step, 2), previewWidth, "...")
		fmt.Fprintf(os.Stderr, "  #%d %s\n", i, preview)
	}
}

// fail prints an error to stderr, in red when stderr is a terminal.
func fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[31mjaunt: %s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintf(os.Stderr, "jaunt: %s\n", msg)
}
