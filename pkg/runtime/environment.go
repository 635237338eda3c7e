package runtime

import "sort"

// Frame is one lexical scope level mapping names to bindings. Frames are
// shared by reference between the live environment and every snapshot that
// captured them; mutating a binding through any holder is visible to all.
type Frame struct {
	bindings map[string]Value
}

func newFrame() *Frame {
	return &Frame{bindings: make(map[string]Value)}
}

// Snapshot is an opaque, shareable handle to a frame-stack configuration.
// It copies the stack layout, never the frames, so a function value can
// keep its declaration-time chain alive while the live environment pushes
// and pops around it.
type Snapshot struct {
	frames []*Frame
}

// Depth reports how many frames the captured configuration holds.
func (s Snapshot) Depth() int { return len(s.frames) }

// Environment is an ordered stack of scope frames, frames[0] innermost.
// One environment is the single interpretation context of a program run;
// calls swap configurations in and out via Snapshot and Restore.
type Environment struct {
	frames []*Frame
}

// NewEnvironment creates an environment holding only the global frame.
func NewEnvironment() *Environment {
	return &Environment{frames: []*Frame{newFrame()}}
}

// PushScope makes a fresh empty frame the current frame.
func (e *Environment) PushScope() {
	frames := make([]*Frame, 0, len(e.frames)+1)
	frames = append(frames, newFrame())
	e.frames = append(frames, e.frames...)
}

// PopScope removes the current frame. The global frame must remain; the
// evaluator never pops it for well-formed programs, so violating that is a
// contract bug, not a program error.
func (e *Environment) PopScope() {
	if len(e.frames) <= 1 {
		panic("runtime: PopScope on the global frame")
	}
	e.frames = e.frames[1:]
}

// Depth reports the current number of frames.
func (e *Environment) Depth() int { return len(e.frames) }

// DeclareScalar inserts a scalar binding into the current frame. Declaring
// a name that already exists in the current frame fails; shadowing a name
// from an outer frame is legal and not checked here.
func (e *Environment) DeclareScalar(name string, value Value) error {
	return e.declare(name, value)
}

// DeclareFunction inserts a function binding into the current frame under
// the same single-declaration rule as DeclareScalar.
func (e *Environment) DeclareFunction(name string, fn *FunctionValue) error {
	return e.declare(name, fn)
}

func (e *Environment) declare(name string, value Value) error {
	current := e.frames[0]
	if _, ok := current.bindings[name]; ok {
		return NewDuplicateDeclarationError(name)
	}
	current.bindings[name] = value
	return nil
}

// Lookup resolves a name innermost frame first.
func (e *Environment) Lookup(name string) (Value, error) {
	for _, frame := range e.frames {
		if v, ok := frame.bindings[name]; ok {
			return v, nil
		}
	}
	return nil, NewUndefinedSymbolError(name)
}

// Update mutates the binding in the frame where the name resolves. Function
// bindings are not assignable.
func (e *Environment) Update(name string, value Value) error {
	for _, frame := range e.frames {
		existing, ok := frame.bindings[name]
		if !ok {
			continue
		}
		if existing.Kind() == KindFunction {
			return NewAssignToFunctionError(name)
		}
		frame.bindings[name] = value
		return nil
	}
	return NewUndefinedSymbolError(name)
}

// Snapshot captures the current configuration. The returned handle owns its
// own copy of the frame list, so later PushScope/PopScope/Restore calls on
// the environment cannot disturb it.
func (e *Environment) Snapshot() Snapshot {
	frames := make([]*Frame, len(e.frames))
	copy(frames, e.frames)
	return Snapshot{frames: frames}
}

// Restore atomically replaces the whole configuration with a previously
// captured one. The handle stays valid for further restores, so the install
// copies the frame list again.
func (e *Environment) Restore(s Snapshot) {
	frames := make([]*Frame, len(s.frames))
	copy(frames, s.frames)
	e.frames = frames
}

// FrameKeys returns the declared names per frame, innermost first, each
// frame sorted (useful for determinism in tests and for the REPL).
func (e *Environment) FrameKeys() [][]string {
	out := make([][]string, len(e.frames))
	for i, frame := range e.frames {
		keys := make([]string, 0, len(frame.bindings))
		for k := range frame.bindings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out[i] = keys
	}
	return out
}
