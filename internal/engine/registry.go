package engine

import "fmt"

// Scenario is one selectable animation program. Render runs the scenario's own
// frame loop; it must pace itself exclusively through Engine.Wait / Engine.Now
// and return as soon as Wait yields true. Render is invoked again by the
// master loop for as long as the scenario stays selected.
type Scenario interface {
	Name() string
	Variants() int
	Render(e *Engine)
}

// ScenarioCount is the number of slots on the remote: digits 0-9.
const ScenarioCount = 10

// Registry is the ordered scenario table, populated once at startup and
// read-only afterwards. Dispatch is a plain index lookup.
type Registry struct {
	list []Scenario
}

func NewRegistry(scenarios ...Scenario) (*Registry, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("engine: no scenarios registered")
	}
	if len(scenarios) > ScenarioCount {
		return nil, fmt.Errorf("engine: %d scenarios, the remote has %d digits", len(scenarios), ScenarioCount)
	}
	for i, s := range scenarios {
		if s.Variants() < 1 {
			return nil, fmt.Errorf("engine: scenario %d (%s) has no variants", i, s.Name())
		}
	}
	return &Registry{list: scenarios}, nil
}

func (r *Registry) Count() int { return len(r.list) }

func (r *Registry) Get(i int) Scenario { return r.list[i] }
