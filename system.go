package depot

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(w *World, deltaTime float64)

func (f SystemFunc) Execute(w *World, deltaTime float64) { f(w, deltaTime) }

// Executor holds an ordered list of systems and runs them strictly in
// registration order, sequentially, once per Execute call. Systems that do
// not conflict could in principle run in parallel; the executor does not
// attempt that.
type Executor struct {
	systems []System
}

func newExecutor() *Executor {
	return &Executor{}
}

// AddSystem appends a system to the execution order.
func (x *Executor) AddSystem(s System) {
	x.systems = append(x.systems, s)
}

// Execute runs every registered system with exclusive World access.
func (x *Executor) Execute(w *World, deltaTime float64) {
	for _, s := range x.systems {
		s.Execute(w, deltaTime)
	}
}

// Len returns the number of registered systems.
func (x *Executor) Len() int {
	return len(x.systems)
}
