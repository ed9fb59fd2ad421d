package actions

// Func is a zero-argument action handler supplied by the host.
type Func func()

// Registry maps action names to host handlers. Press handlers run on button
// press; actions with press/release semantics (mouse buttons, held keys)
// also register a release handler.
//
// Unknown action names are deliberately inert: dispatching a name with no
// handler is a no-op, never an error, so user-defined actions need no
// static registration.
type Registry struct {
	press   map[string]Func
	release map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		press:   make(map[string]Func),
		release: make(map[string]Func),
	}
}

// Register binds a press handler to an action name. Registering over an
// existing name replaces the handler; the host owns the namespace.
func (r *Registry) Register(name string, fn Func) {
	if fn == nil {
		delete(r.press, name)
		return
	}
	r.press[name] = fn
}

// RegisterRelease binds a release handler to an action name.
func (r *Registry) RegisterRelease(name string, fn Func) {
	if fn == nil {
		delete(r.release, name)
		return
	}
	r.release[name] = fn
}

// Unregister removes both handlers for a name.
func (r *Registry) Unregister(name string) {
	delete(r.press, name)
	delete(r.release, name)
}

// Press dispatches the press handler for an action. Returns false when the
// name had no handler (including the empty action).
func (r *Registry) Press(name string) bool {
	fn, ok := r.press[name]
	if !ok || name == "" {
		return false
	}
	fn()
	return true
}

// Release dispatches the release handler for an action.
func (r *Registry) Release(name string) bool {
	fn, ok := r.release[name]
	if !ok || name == "" {
		return false
	}
	fn()
	return true
}

// Known reports whether a press handler is registered for the name.
func (r *Registry) Known(name string) bool {
	_, ok := r.press[name]
	return ok
}
