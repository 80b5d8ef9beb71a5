package core

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrOutOfBounds reports a coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNotPresent reports an agent that is not recorded at the given cell.
	ErrNotPresent = errors.New("agent not present at cell")
)

// AgentID identifies an agent resident in a MultiGrid.
type AgentID int

// Coord is a cell coordinate. The origin is the top-left cell.
type Coord struct {
	X, Y int
}

// String formats the coordinate as (x, y).
func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// MultiGrid is a bounded, non-wrapping grid where any number of agents may
// share a cell. Every resident agent has exactly one recorded position.
type MultiGrid struct {
	w, h  int
	cells [][]AgentID
	pos   map[AgentID]Coord
}

// NewMultiGrid allocates an empty grid. Non-positive dimensions are clamped to 1.
func NewMultiGrid(w, h int) *MultiGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &MultiGrid{
		w:     w,
		h:     h,
		cells: make([][]AgentID, w*h),
		pos:   make(map[AgentID]Coord),
	}
}

// Width returns the number of columns.
func (g *MultiGrid) Width() int { return g.w }

// Height returns the number of rows.
func (g *MultiGrid) Height() int { return g.h }

// InBounds reports whether c lies within [0,w)x[0,h).
func (g *MultiGrid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Index returns the row-major slice index for c.
func (g *MultiGrid) Index(c Coord) int { return c.Y*g.w + c.X }

// Place adds id to the occupants of c.
func (g *MultiGrid) Place(id AgentID, c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("place agent %d at %s: %w", id, c, ErrOutOfBounds)
	}
	if at, ok := g.pos[id]; ok {
		return fmt.Errorf("place agent %d at %s: already resident at %s", id, c, at)
	}
	idx := g.Index(c)
	g.cells[idx] = append(g.cells[idx], id)
	g.pos[id] = c
	return nil
}

// Remove deletes id from the occupants of c.
func (g *MultiGrid) Remove(id AgentID, c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("remove agent %d from %s: %w", id, c, ErrOutOfBounds)
	}
	if at, ok := g.pos[id]; !ok || at != c {
		return fmt.Errorf("remove agent %d from %s: %w", id, c, ErrNotPresent)
	}
	idx := g.Index(c)
	cell := g.cells[idx]
	i := slices.Index(cell, id)
	// swap-remove; occupant order carries no meaning
	last := len(cell) - 1
	cell[i] = cell[last]
	g.cells[idx] = cell[:last]
	delete(g.pos, id)
	return nil
}

// Move relocates id from one cell to another. Both coordinates are checked
// before anything changes so a failed move leaves the grid untouched.
func (g *MultiGrid) Move(id AgentID, from, to Coord) error {
	if !g.InBounds(to) {
		return fmt.Errorf("move agent %d to %s: %w", id, to, ErrOutOfBounds)
	}
	if err := g.Remove(id, from); err != nil {
		return err
	}
	return g.Place(id, to)
}

// OccupantsAt returns a copy of the agents recorded at c. Out-of-bounds
// coordinates have no occupants.
func (g *MultiGrid) OccupantsAt(c Coord) []AgentID {
	if !g.InBounds(c) {
		return nil
	}
	return slices.Clone(g.cells[g.Index(c)])
}

// PositionOf returns the recorded position of id.
func (g *MultiGrid) PositionOf(id AgentID) (Coord, bool) {
	c, ok := g.pos[id]
	return c, ok
}

// Len returns the number of resident agents.
func (g *MultiGrid) Len() int { return len(g.pos) }

// Neighborhood lists the in-bounds cells one step from c, in row-major order.
// moore selects 8-connectivity instead of 4.
func (g *MultiGrid) Neighborhood(c Coord, moore, includeCenter bool) []Coord {
	out := make([]Coord, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		ny := c.Y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := c.X + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			if dx == 0 && dy == 0 {
				if includeCenter {
					out = append(out, c)
				}
				continue
			}
			if !moore && dx != 0 && dy != 0 {
				continue
			}
			out = append(out, Coord{X: nx, Y: ny})
		}
	}
	return out
}
