package core

import "strconv"

// Parameter describes a single value exposed by a simulation. Values are
// integers; the original controls were all integer sliders.
type Parameter struct {
	Key   string
	Label string
	Value int
}

// String renders the value for display.
func (p Parameter) String() string { return strconv.Itoa(p.Value) }

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Slider describes a bounded integer control shown on the HUD.
type Slider struct {
	Key   string
	Label string
	Min   int
	Max   int
	Step  int
}

// Clamp limits v to the slider bounds.
func (s Slider) Clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Nudge moves v by direction steps and clamps the result.
func (s Slider) Nudge(v, direction int) int {
	step := s.Step
	if step <= 0 {
		step = 1
	}
	return s.Clamp(v + direction*step)
}

// ParameterProvider exposes values and the sliders that adjust them.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
	Sliders() []Slider
}

// ParameterSetter allows HUD interactions to update integer parameters.
type ParameterSetter interface {
	SetParameter(key string, value int) bool
}
