package pathexec

import (
	"fmt"

	"github.com/jauntql/jaunt"
)

// Evaluator resolves path expressions against a document, tracking every
// visit through a jaunt.Trace. One evaluator holds one variable environment:
// bindings made with Let (or on any trace it hands out) stay visible for the
// rest of the evaluator's life. Create a new evaluator for an isolated scope.
type Evaluator struct {
	opts   Options
	logger Logger
	env    *jaunt.Env
}

// New creates an evaluator. With no arguments it uses DefaultOptions.
func New(opts ...Options) *Evaluator {
	opt := DefaultOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	logger := opt.Logger
	if logger == nil {
		logger = NewLogger(ParseLogLevel(opt.LogLevel), nil)
	}
	return &Evaluator{
		opts:   opt,
		logger: logger,
		env:    jaunt.NewEnv(),
	}
}

// Let binds a variable for subsequent resolutions. The name must carry the
// '$' sigil, e.g. Let("$tax", node).
func (e *Evaluator) Let(name string, value *jaunt.Node) error {
	return e.env.Set(name, value)
}

// Env returns the evaluator's variable environment. Every trace produced by
// Resolve and ResolveAll shares it.
func (e *Evaluator) Env() *jaunt.Env {
	return e.env
}

// Resolve evaluates path against doc and returns the final trace, or nil when
// the path does not exist in the document. Absence is not an error; errors
// are reserved for malformed paths. Wildcard segments are rejected here, use
// ResolveAll for fan-out.
func (e *Evaluator) Resolve(doc *jaunt.Node, path string) (*jaunt.Trace, error) {
	segs, err := e.lex(path)
	if err != nil {
		return nil, err
	}
	for _, s := range segs {
		if s.kind == segWildcard {
			return nil, &jaunt.SyntaxError{Msg: "wildcard segment requires ResolveAll"}
		}
	}

	trace, segs := e.start(doc, segs)
	for _, s := range segs {
		if trace == nil {
			return nil, nil
		}
		trace = e.step(trace, s)
	}
	if trace != nil {
		e.logger.Debugf("resolved %s trace=%s", path, traceSummary(trace, e.opts.LogNodePreviewDepth))
	}
	return trace, nil
}

// ResolveAll evaluates path against doc and returns one trace per match.
// Each wildcard segment fans out over the children of the current node; the
// branches are pushed from the same ancestor trace and stay fully
// independent of each other. No match yields an empty slice, not an error.
func (e *Evaluator) ResolveAll(doc *jaunt.Node, path string) ([]*jaunt.Trace, error) {
	segs, err := e.lex(path)
	if err != nil {
		return nil, err
	}
	trace, segs := e.start(doc, segs)
	if trace == nil {
		return nil, nil
	}
	traces, err := e.fan(trace, segs, path)
	if err != nil {
		return nil, err
	}
	e.logger.Debugf("resolved %s matches=%d", path, len(traces))
	return traces, nil
}

func (e *Evaluator) lex(path string) ([]segment, error) {
	segs, err := parsePath(path)
	if err != nil {
		e.logger.Errorf("bad path %s: %v", path, err)
		return nil, err
	}
	if len(segs) > e.opts.MaxDepth {
		return nil, fmt.Errorf("path has %d segments, limit is %d", len(segs), e.opts.MaxDepth)
	}
	return segs, nil
}

// start builds the initial trace. A leading variable reference re-roots the
// traversal at the variable's value; an unbound variable is absence.
func (e *Evaluator) start(doc *jaunt.Node, segs []segment) (*jaunt.Trace, []segment) {
	if len(segs) > 0 && segs[0].kind == segVariable {
		value := e.env.Get(segs[0].key)
		if value == nil {
			e.logger.Debugf("variable %s is unbound", segs[0].key)
			return nil, nil
		}
		return jaunt.FromEnv(value, e.env), segs[1:]
	}
	return jaunt.FromEnv(doc, e.env), segs
}

// step advances the trace by one non-wildcard segment. Absence propagates as
// a nil trace.
func (e *Evaluator) step(trace *jaunt.Trace, s segment) *jaunt.Trace {
	switch s.kind {
	case segKey:
		return trace.Push(trace.GetField(s.key))
	case segIndex:
		idx := s.index
		if idx < 0 {
			idx += trace.ContainerSize()
		}
		return trace.Push(trace.Get(idx))
	case segRoot:
		return trace.Root()
	default:
		panic("pathexec: unexpected segment kind " + s.String())
	}
}

// fan walks the remaining segments, splitting at each wildcard. Every branch
// extends its own snapshot of the shared ancestor trace.
func (e *Evaluator) fan(trace *jaunt.Trace, segs []segment, path string) ([]*jaunt.Trace, error) {
	for i, s := range segs {
		if s.kind != segWildcard {
			trace = e.step(trace, s)
			if trace == nil {
				return nil, nil
			}
			continue
		}

		children := childNodes(trace.Node())
		var out []*jaunt.Trace
		for _, child := range children {
			branch := trace.Push(child)
			if branch == nil {
				continue
			}
			matches, err := e.fan(branch, segs[i+1:], path)
			if err != nil {
				return nil, err
			}
			out = append(out, matches...)
			if len(out) > e.opts.MaxFanOut {
				return nil, fmt.Errorf("path %s exceeds fan-out limit %d", path, e.opts.MaxFanOut)
			}
		}
		return out, nil
	}
	return []*jaunt.Trace{trace}, nil
}

// childNodes lists the immediate children of a container: array elements in
// order, or object field values in document order. Scalars have none.
func childNodes(n *jaunt.Node) []*jaunt.Node {
	switch {
	case n.IsArray():
		children := make([]*jaunt.Node, 0, n.Size())
		for i := 0; i < n.Size(); i++ {
			children = append(children, n.Get(i))
		}
		return children
	case n.IsObject():
		keys := n.Keys()
		children := make([]*jaunt.Node, 0, len(keys))
		for _, k := range keys {
			children = append(children, n.GetField(k))
		}
		return children
	}
	return nil
}
