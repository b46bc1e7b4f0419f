package core

// Size describes the dimensions of a simulation grid. Enhancement grows the
// grid, so consumers must re-read it after every step.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a grid simulation must implement. Step
// may fail permanently, for example when a rule table does not cover a
// reachable pattern.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() error
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
