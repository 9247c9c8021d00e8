package runtime

// ReturnStack accumulates the values a node's evaluation produces, one
// frame per node being evaluated. A node that yields zero values
// leaves its frame empty; one that yields several (an
// Expressions list, a for-loop body) pushes each in order. The frame
// discipline is strict: every StartFrame must be matched by exactly one
// PopFrame/PopFrameAndKeep before the enclosing frame is popped.
type ReturnStack struct {
	frames [][]Value
}

// StartFrame opens a new frame for a node about to be evaluated.
func (s *ReturnStack) StartFrame() {
	s.frames = append(s.frames, nil)
}

// Push appends v to the current (topmost) frame.
func (s *ReturnStack) Push(v Value) {
	top := len(s.frames) - 1
	s.frames[top] = append(s.frames[top], v)
}

// PopFrame closes the current frame and returns its values, independent
// of any parent frame.
func (s *ReturnStack) PopFrame() []Value {
	top := len(s.frames) - 1
	vals := s.frames[top]
	s.frames = s.frames[:top]
	return vals
}

// PopFrameAndKeep closes the current frame and appends its values
// directly onto the new top (parent) frame, for node kinds that
// delegate their entire result to an enclosing context without an
// expansion/capture decision of their own.
func (s *ReturnStack) PopFrameAndKeep() {
	vals := s.PopFrame()
	top := len(s.frames) - 1
	s.frames[top] = append(s.frames[top], vals...)
}

// Count reports how many values are in the current frame.
func (s *ReturnStack) Count() int {
	return len(s.frames[len(s.frames)-1])
}

// Values returns the current frame's values without closing it.
func (s *ReturnStack) Values() []Value {
	return s.frames[len(s.frames)-1]
}

// Depth reports how many frames are currently open.
func (s *ReturnStack) Depth() int {
	return len(s.frames)
}
