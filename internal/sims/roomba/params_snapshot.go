package roomba

import (
	"time"

	"roomba/internal/core"
)

var sliders = []core.Slider{
	{Key: "n", Label: "Number of Roombas", Min: 1, Max: 20, Step: 1},
	{Key: "dirty", Label: "Percentage of Dirty Cells", Min: 0, Max: 100, Step: 1},
	{Key: "time_limit", Label: "Time limit (seconds)", Min: 0, Max: 120, Step: 1},
}

// Sliders lists the HUD-adjustable controls.
func (m *Model) Sliders() []core.Slider { return sliders }

// Parameters reports the pending configuration, which the next Reset applies.
func (m *Model) Parameters() core.ParameterSnapshot {
	p := m.pending
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "n", Label: "Number of Roombas", Value: p.Cleaners},
				{Key: "dirty", Label: "Percentage of Dirty Cells", Value: p.DirtyPercent},
				{Key: "time_limit", Label: "Time limit (seconds)", Value: int(p.TimeLimit / time.Second)},
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Value: p.Width},
				{Key: "h", Label: "Height", Value: p.Height},
			},
		},
	}}
}

// SetParameter updates a slider-backed value of the pending configuration.
// The running model is untouched until Reset.
func (m *Model) SetParameter(key string, value int) bool {
	for _, s := range sliders {
		if s.Key != key {
			continue
		}
		value = s.Clamp(value)
		switch key {
		case "n":
			m.pending.Cleaners = value
		case "dirty":
			m.pending.DirtyPercent = value
		case "time_limit":
			m.pending.TimeLimit = time.Duration(value) * time.Second
		}
		return true
	}
	return false
}

// Pending returns the configuration the next Reset will apply.
func (m *Model) Pending() Config { return m.pending }

var (
	_ core.Sim               = (*Model)(nil)
	_ core.ParameterProvider = (*Model)(nil)
	_ core.ParameterSetter   = (*Model)(nil)
)
