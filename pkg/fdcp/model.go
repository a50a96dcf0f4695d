package fdcp

import "fmt"

// Model is the opaque, read-only handle propagators may accept for
// human-readable printing (SPEC_FULL.md §4.10, spec.md §6's "Model
// collaborator interface"). Unlike the teacher's Model (which mixed
// variable allocation, constraint ownership, and config), this Model owns
// only display metadata: it never drives propagation and the CStore never
// looks at it.
type Model struct {
	names map[int]string
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{names: make(map[int]string)}
}

// Name registers a human-readable label for a variable index.
func (m *Model) Name(varIndex int, name string) {
	m.names[varIndex] = name
}

// Label returns the registered name for a variable index, or a generic
// "x<i>" label if none was registered.
func (m *Model) Label(varIndex int) string {
	if m == nil {
		return fmt.Sprintf("x%d", varIndex)
	}
	if name, ok := m.names[varIndex]; ok {
		return name
	}
	return fmt.Sprintf("x%d", varIndex)
}

// Describe renders a view/propagator's String() alongside the current
// domain each of its declared dependencies reads from vs — a convenience
// for demo CLIs, not used by the propagation core itself.
func Describe(vs *VStore, m *Model, p Propagator) string {
	var out string
	seen := make(map[int]struct{})
	for _, dep := range p.Dependencies() {
		if _, ok := seen[dep.VarIndex]; ok {
			continue
		}
		seen[dep.VarIndex] = struct{}{}
		out += fmt.Sprintf("%s=%s ", m.Label(dep.VarIndex), vs.Read(dep.VarIndex))
	}
	return fmt.Sprintf("%s [%s]", p, out)
}
