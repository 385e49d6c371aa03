package jaunt

// Trace records the progressive nodes visited along a path, root first, plus
// the variable environment of the evaluation that produced it.
//
// The step stack is copy-on-write: Push, Pop and Root never mutate the
// receiver, they return a new trace. Every trace handed out earlier therefore
// remains a valid, independent snapshot of the path-so-far, which lets an
// engine branch freely by pushing from a common ancestor (one push per array
// element, for example) without save/restore discipline. Only the variable
// environment is shared across derived traces; see Env.
type Trace struct {
	steps []*Node
	env   *Env
}

// From starts a trace at node with a fresh variable environment.
func From(node *Node) *Trace {
	return &Trace{steps: []*Node{node}, env: NewEnv()}
}

// FromEnv starts a trace at node with a pre-existing environment, so a nested
// evaluation can see (and extend) the bindings of its surrounding one. A nil
// env is replaced by a fresh one.
func FromEnv(node *Node, env *Env) *Trace {
	if env == nil {
		env = NewEnv()
	}
	return &Trace{steps: []*Node{node}, env: env}
}

// Push returns a new trace extended by node. A nil node yields a nil trace:
// absence propagates to the caller as "this path does not exist", it is not
// an error and must never become a trace with a nil step appended.
func (t *Trace) Push(node *Node) *Trace {
	if node == nil {
		return nil
	}
	steps := make([]*Node, len(t.steps)+1)
	copy(steps, t.steps)
	steps[len(t.steps)] = node
	return &Trace{steps: steps, env: t.env}
}

// Pop returns a new trace with the last n steps removed. Callers may only pop
// as many steps as they previously pushed within the same evaluation; popping
// to an empty stack is a contract violation and panics rather than clamping.
func (t *Trace) Pop(n int) *Trace {
	if n < 0 || n >= len(t.steps) {
		panic("jaunt: path trace underflow")
	}
	rest := len(t.steps) - n
	steps := make([]*Node, rest)
	copy(steps, t.steps[:rest])
	return &Trace{steps: steps, env: t.env}
}

// Root returns a trace collapsed back to the first step, sharing the same
// environment. A single-step trace returns itself, no allocation.
func (t *Trace) Root() *Trace {
	if len(t.steps) == 1 {
		return t
	}
	return &Trace{steps: []*Node{t.steps[0]}, env: t.env}
}

// Node returns the current node, the last step. A trace always has at least
// one step, so this is always defined.
func (t *Trace) Node() *Node {
	return t.steps[len(t.steps)-1]
}

// StepCount returns the number of descents from the root: the step stack
// length minus one. It tells a caller how many pops return to where it
// started.
func (t *Trace) StepCount() int {
	return len(t.steps) - 1
}

// Steps returns a copy of the step stack, root first.
func (t *Trace) Steps() []*Node {
	steps := make([]*Node, len(t.steps))
	copy(steps, t.steps)
	return steps
}

// Env returns the trace's variable environment.
func (t *Trace) Env() *Env {
	return t.env
}

// SetVariable binds a variable in the shared environment. The binding is
// visible to every trace derived from this one via Push, Pop or Root, and to
// the ancestors it was derived from.
func (t *Trace) SetVariable(name string, value *Node) error {
	return t.env.Set(name, value)
}

// GetVariable returns the value bound to name, or nil when unbound.
func (t *Trace) GetVariable(name string) *Node {
	return t.env.Get(name)
}

// Node inspection, delegated to the current step.

func (t *Trace) IsObject() bool    { return t.Node().IsObject() }
func (t *Trace) IsArray() bool     { return t.Node().IsArray() }
func (t *Trace) IsContainer() bool { return t.Node().IsContainer() }
func (t *Trace) IsValue() bool     { return t.Node().IsValue() }
func (t *Trace) IsTextual() bool   { return t.Node().IsTextual() }
func (t *Trace) IsNumber() bool    { return t.Node().IsNumber() }
func (t *Trace) IsBool() bool      { return t.Node().IsBool() }
func (t *Trace) IsNull() bool      { return t.Node().IsNull() }
func (t *Trace) IsEmpty() bool     { return t.Node().IsEmpty() }

func (t *Trace) AsText() string   { return t.Node().AsText() }
func (t *Trace) AsFloat() float64 { return t.Node().AsFloat() }
func (t *Trace) AsInt() int       { return t.Node().AsInt() }
func (t *Trace) AsBool() bool     { return t.Node().AsBool() }

// ContainerSize returns the child count of the current node.
func (t *Trace) ContainerSize() int {
	return t.Node().Size()
}

// Get returns the i-th element of the current node, or nil when the current
// node is not an array or i is out of range. The result is exactly what Push
// accepts: nil means the path does not continue.
func (t *Trace) Get(i int) *Node {
	return t.Node().Get(i)
}

// GetField returns the named field of the current node, or nil when the
// current node is not an object or the field is absent.
func (t *Trace) GetField(name string) *Node {
	return t.Node().GetField(name)
}
