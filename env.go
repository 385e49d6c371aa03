package jaunt

import "sort"

// VariablePrefix is the sigil every variable name must start with.
const VariablePrefix = '$'

// Env is the variable environment for one evaluation: a mutable namespace of
// let-bound values shared by every trace derived from the same starting
// trace. Variables are evaluation-scoped, not step-scoped, so the environment
// is deliberately aliased across Push/Pop/Root rather than copied with the
// step stack. Start a nested evaluation from a fresh Env to isolate its
// bindings.
//
// Env is not safe for concurrent writes; an engine that parallelizes sibling
// evaluations must serialize assignments or give each branch its own Env.
type Env struct {
	vars map[string]*Node
}

// NewEnv returns an empty environment. The backing map is allocated lazily on
// the first Set, so an environment that never binds anything costs nothing.
func NewEnv() *Env {
	return &Env{}
}

// Set binds name to value, overwriting any existing binding. The name must
// start with '$' and be at least two characters long; anything else is a
// SyntaxError.
func (e *Env) Set(name string, value *Node) error {
	if len(name) < 2 || name[0] != VariablePrefix {
		return syntaxErrorf("variable name must start with '%c' and have at least 2 characters", VariablePrefix)
	}
	if e.vars == nil {
		e.vars = make(map[string]*Node)
	}
	e.vars[name] = value
	return nil
}

// Get returns the value bound to name, or nil when the name is unbound.
// A missing variable is absence, never an error.
func (e *Env) Get(name string) *Node {
	if e == nil || e.vars == nil {
		return nil
	}
	return e.vars[name]
}

// Len returns the number of bound variables.
func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.vars)
}

// Names returns the bound variable names in sorted order.
func (e *Env) Names() []string {
	if e == nil || len(e.vars) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
