package lisp

// Env is an immutable mapping from variable names to values.  Binding a
// name never mutates the receiver; it returns a derived Env, so every
// holder of an older Env keeps observing the snapshot it was handed.
// Evaluation threads the current Env explicitly instead of writing to a
// shared table.
type Env struct {
	scope map[string]Value
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{scope: map[string]Value{}}
}

// Get returns the value bound to name.  The second return is false when
// name is unbound.
func (env *Env) Get(name string) (Value, bool) {
	v, ok := env.scope[name]
	return v, ok
}

// Bind returns a derived environment in which name is bound to v.  Any
// previous binding for name is shadowed in the derived environment only.
func (env *Env) Bind(name string, v Value) *Env {
	scope := make(map[string]Value, len(env.scope)+1)
	for k, u := range env.scope {
		scope[k] = u
	}
	scope[name] = v
	return &Env{scope: scope}
}

// Len returns the number of bound names.
func (env *Env) Len() int {
	return len(env.scope)
}

// Names returns the bound names in unspecified order.
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.scope))
	for k := range env.scope {
		names = append(names, k)
	}
	return names
}
