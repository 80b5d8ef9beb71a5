package roomba

import (
	"fmt"

	"roomba/internal/core"
)

// Kind is the closed set of agent variants.
type Kind uint8

const (
	KindMarker Kind = iota
	KindCleaner
	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindMarker:
		return "marker"
	case KindCleaner:
		return "cleaner"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Agent is one population member. Positions live in the grid, not here.
type Agent struct {
	ID    core.AgentID
	Kind  Kind
	Moves int
}

// Population is an arena of agents with a stable id -> slot index. Removal
// tombstones the slot; Compact reclaims tombstones between ticks so pointers
// handed out during a tick stay valid.
type Population struct {
	slots  []Agent
	live   []bool
	index  map[core.AgentID]int
	counts [numKinds]int
	dead   int
}

// NewPopulation returns an empty population with room for n agents.
func NewPopulation(n int) *Population {
	return &Population{
		slots: make([]Agent, 0, n),
		live:  make([]bool, 0, n),
		index: make(map[core.AgentID]int, n),
	}
}

// Add appends a new agent.
func (p *Population) Add(a Agent) error {
	if _, ok := p.index[a.ID]; ok {
		return fmt.Errorf("agent %d already in population", a.ID)
	}
	if a.Kind >= numKinds {
		return fmt.Errorf("agent %d has unknown kind %s", a.ID, a.Kind)
	}
	p.index[a.ID] = len(p.slots)
	p.slots = append(p.slots, a)
	p.live = append(p.live, true)
	p.counts[a.Kind]++
	return nil
}

// Remove tombstones the agent with the given id.
func (p *Population) Remove(id core.AgentID) error {
	i, ok := p.index[id]
	if !ok {
		return fmt.Errorf("remove agent %d from population: %w", id, core.ErrNotPresent)
	}
	p.live[i] = false
	p.counts[p.slots[i].Kind]--
	p.dead++
	delete(p.index, id)
	return nil
}

// Get returns the live agent with the given id.
func (p *Population) Get(id core.AgentID) (*Agent, bool) {
	i, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return &p.slots[i], true
}

// Len returns the number of live agents.
func (p *Population) Len() int { return len(p.index) }

// Count returns the number of live agents of kind k.
func (p *Population) Count(k Kind) int {
	if k >= numKinds {
		return 0
	}
	return p.counts[k]
}

// AppendIDs appends the ids of live agents in slot order to dst.
func (p *Population) AppendIDs(dst []core.AgentID) []core.AgentID {
	for i, a := range p.slots {
		if p.live[i] {
			dst = append(dst, a.ID)
		}
	}
	return dst
}

// Each calls fn for every live agent of kind k in slot order.
func (p *Population) Each(k Kind, fn func(*Agent)) {
	for i := range p.slots {
		if p.live[i] && p.slots[i].Kind == k {
			fn(&p.slots[i])
		}
	}
}

// Compact drops tombstoned slots and rebuilds the index.
func (p *Population) Compact() {
	if p.dead == 0 {
		return
	}
	n := 0
	for i, a := range p.slots {
		if !p.live[i] {
			continue
		}
		p.slots[n] = a
		p.live[n] = true
		p.index[a.ID] = n
		n++
	}
	clear(p.slots[n:])
	p.slots = p.slots[:n]
	p.live = p.live[:n]
	p.dead = 0
}
