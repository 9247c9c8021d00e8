package runtime

// Scope is the single global namespace every top-level Assign targets,
// and the fallback every identifier lookup falls through to once the
// current call frame (if any) has been checked.
type Scope struct {
	vars map[string]Value
}

// NewScope starts an empty global scope.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]Value)}
}

// Get looks up name.
func (s *Scope) Get(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Set binds name, replacing any prior value.
func (s *Scope) Set(name string, v Value) {
	s.vars[name] = v
}
