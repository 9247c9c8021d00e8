package runtime

// CallStack holds one local-variable frame per in-flight user function
// call. Only the top frame is ever read or written directly; a call
// never sees its caller's locals.
type CallStack struct {
	frames []map[string]Value
}

// Depth reports how many calls are currently in flight.
func (c *CallStack) Depth() int { return len(c.frames) }

// Get looks up name in the top frame.
func (c *CallStack) Get(name string) (Value, bool) {
	if len(c.frames) == 0 {
		return nil, false
	}
	v, ok := c.frames[len(c.frames)-1][name]
	return v, ok
}

// SetTop binds name in the top frame, for assignment and for-loop
// variable binding within a call.
func (c *CallStack) SetTop(name string, v Value) {
	c.frames[len(c.frames)-1][name] = v
}

// Commit pushes staged as a new top frame, making a call's bound
// arguments visible atomically once every argument has evaluated
// successfully: a staging buffer that fails midway is simply discarded
// and never reaches Commit.
func (c *CallStack) Commit(staged *Staging) {
	c.frames = append(c.frames, staged.vars)
}

// Pop removes the top frame when a call returns.
func (c *CallStack) Pop() {
	c.frames = c.frames[:len(c.frames)-1]
}

// Staging accumulates argument bindings for a call that has not yet
// committed. It is never visible to Get/SetTop until Commit.
type Staging struct {
	vars map[string]Value
}

// NewStaging starts an empty staging buffer.
func NewStaging() *Staging {
	return &Staging{vars: make(map[string]Value)}
}

// Set binds name to v in the staging buffer.
func (s *Staging) Set(name string, v Value) {
	s.vars[name] = v
}
