package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the front-ends drive. Step returns an error once
// the simulation can no longer advance; Running flips to false at that point.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step() error
	Running() bool
	Cells() []uint8
}
