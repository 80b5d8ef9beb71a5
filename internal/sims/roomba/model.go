package roomba

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"roomba/internal/core"
	"roomba/internal/monitoring"
	"roomba/internal/timeutil"
)

var (
	// ErrStopped is returned by Step once the model reached a terminal state.
	ErrStopped = errors.New("simulation stopped")
	// ErrPlacement reports that seeding could not find a marker-free cell. It
	// is always returned together with ErrInvalidConfig.
	ErrPlacement = errors.New("marker placement exhausted")
)

// maxRedraws bounds rejection sampling for one marker before seeding falls
// back to a uniform draw over the remaining free cells.
const maxRedraws = 64

// Model owns the grid, the population and the scheduler of one run.
type Model struct {
	cfg     Config
	pending Config

	clock    timeutil.Clock
	handlers []StopHandler

	grid    *core.MultiGrid
	pop     *Population
	sched   *RandomActivation
	rng     *core.RNG
	metrics *Collector
	display []uint8

	runID   uuid.UUID
	state   State
	reason  StopReason
	started time.Time
	elapsed time.Duration
	ticks   int
	summary Summary
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces the wall clock used for the time limit.
func WithClock(c timeutil.Clock) Option {
	return func(m *Model) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithStopHandler registers fn to receive the summary when the run stops.
func WithStopHandler(fn StopHandler) Option {
	return func(m *Model) { m.OnStop(fn) }
}

// New validates cfg and seeds a model ready for its first tick.
func New(cfg Config, opts ...Option) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Model{cfg: cfg, pending: cfg, clock: timeutil.RealClock{}}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.Reset(0); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the simulation identifier.
func (m *Model) Name() string { return "roomba" }

// Size reports the grid dimensions.
func (m *Model) Size() core.Size { return core.Size{W: m.cfg.Width, H: m.cfg.Height} }

// Config returns the configuration of the current run.
func (m *Model) Config() Config { return m.cfg }

// OnStop registers fn to receive the summary when the run stops.
func (m *Model) OnStop(fn StopHandler) {
	if fn != nil {
		m.handlers = append(m.handlers, fn)
	}
}

// Reset rebuilds the run from the pending configuration. A zero seed keeps
// the configured one.
func (m *Model) Reset(seed int64) error {
	cfg := m.pending
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	m.pending = cfg
	m.rng = core.NewRNG(cfg.Seed)
	m.grid = core.NewMultiGrid(cfg.Width, cfg.Height)
	m.pop = NewPopulation(cfg.DirtyCount() + cfg.Cleaners)
	m.sched = NewRandomActivation(m.rng)
	m.metrics = &Collector{}
	m.display = make([]uint8, cfg.Cells())
	m.runID = uuid.New()
	m.state = StateNotStarted
	m.reason = ReasonNone
	m.started = time.Time{}
	m.elapsed = 0
	m.ticks = 0
	m.summary = Summary{}

	if err := m.seedMarkers(); err != nil {
		return err
	}
	if err := m.seedCleaners(); err != nil {
		return err
	}
	m.rebuildDisplay()
	return nil
}

// seedMarkers places each marker on a uniformly drawn marker-free cell.
// Candidates are redrawn while they already hold a marker; after maxRedraws
// the draw switches to the list of free cells, which has the same
// distribution and keeps dense fills from stalling.
func (m *Model) seedMarkers() error {
	n := m.cfg.DirtyCount()
	if n > m.cfg.Cells() {
		return fmt.Errorf("%w: %w: %d markers exceed %d cells", ErrInvalidConfig, ErrPlacement, n, m.cfg.Cells())
	}
	dirty := make([]bool, m.cfg.Cells())
	for i := 0; i < n; i++ {
		c, ok := m.drawFree(dirty)
		if !ok {
			return fmt.Errorf("%w: %w: no free cell for marker %d", ErrInvalidConfig, ErrPlacement, i)
		}
		id := core.AgentID(i)
		if err := m.pop.Add(Agent{ID: id, Kind: KindMarker}); err != nil {
			return err
		}
		if err := m.grid.Place(id, c); err != nil {
			return err
		}
		dirty[m.grid.Index(c)] = true
	}
	return nil
}

func (m *Model) drawFree(dirty []bool) (core.Coord, bool) {
	for try := 0; try < maxRedraws; try++ {
		c := m.rng.Coord(m.cfg.Width, m.cfg.Height)
		if !dirty[m.grid.Index(c)] {
			return c, true
		}
	}
	free := make([]int, 0, len(dirty))
	for i, d := range dirty {
		if !d {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return core.Coord{}, false
	}
	idx := core.Pick(m.rng, free)
	return core.Coord{X: idx % m.cfg.Width, Y: idx / m.cfg.Width}, true
}

func (m *Model) seedCleaners() error {
	start := m.cfg.Start()
	base := m.cfg.CleanerIDBase()
	for i := 0; i < m.cfg.Cleaners; i++ {
		id := base + core.AgentID(i)
		if err := m.pop.Add(Agent{ID: id, Kind: KindCleaner}); err != nil {
			return err
		}
		if err := m.grid.Place(id, start); err != nil {
			return err
		}
	}
	return nil
}

// Step advances the run by one tick: pre-tick snapshot, one scheduler pass,
// then stop-condition evaluation. A grid or population failure aborts the run.
func (m *Model) Step() error {
	switch m.state {
	case StateStopped:
		return ErrStopped
	case StateNotStarted:
		m.started = m.clock.Now()
		m.state = StateRunning
		monitoring.Logger().Debug("run started",
			"run", m.runID, "cleaners", m.cfg.Cleaners,
			"grid", fmt.Sprintf("%dx%d", m.cfg.Width, m.cfg.Height),
			"markers", m.pop.Count(KindMarker), "seed", m.cfg.Seed)
	}

	m.metrics.Collect(m.snapshot())
	if err := m.sched.Step(m.pop, m.activate); err != nil {
		m.stop(ReasonAborted)
		return fmt.Errorf("tick %d: %w", m.ticks, err)
	}
	m.pop.Compact()
	m.ticks++
	m.rebuildDisplay()

	switch {
	case m.timeLimitExceeded():
		m.stop(ReasonTimeLimit)
	case m.pop.Count(KindMarker) == 0:
		m.stop(ReasonAllClean)
	}
	return nil
}

// timeLimitExceeded treats a zero limit as already expired.
func (m *Model) timeLimitExceeded() bool {
	return m.cfg.TimeLimit <= 0 || m.clock.Since(m.started) > m.cfg.TimeLimit
}

func (m *Model) stop(reason StopReason) {
	m.elapsed = m.clock.Since(m.started)
	m.state = StateStopped
	m.reason = reason
	final := m.snapshot()
	m.metrics.Collect(final)
	m.summary = Summary{
		RunID:        m.runID,
		Seed:         m.cfg.Seed,
		Cleaners:     m.cfg.Cleaners,
		Width:        m.cfg.Width,
		Height:       m.cfg.Height,
		DirtyPercent: m.cfg.DirtyPercent,
		TimeLimit:    m.cfg.TimeLimit,
		Reason:       reason,
		Ticks:        m.ticks,
		Elapsed:      final.Elapsed,
		FinalClean:   final.PercentClean,
		Moves:        final.Moves,
	}
	monitoring.Logger().Info("run stopped",
		"run", m.runID, "reason", reason, "ticks", m.ticks,
		"elapsed", m.elapsed, "clean", final.PercentClean)
	for _, fn := range m.handlers {
		fn(m.summary)
	}
}

// Running reports whether the model still accepts ticks.
func (m *Model) Running() bool { return m.state != StateStopped }

// State returns the lifecycle state.
func (m *Model) State() State { return m.state }

// StopReason returns why the run stopped, ReasonNone while it has not.
func (m *Model) StopReason() StopReason { return m.reason }

// Ticks returns the number of completed ticks.
func (m *Model) Ticks() int { return m.ticks }

// Elapsed returns the wall-clock time since the first tick, frozen at stop.
func (m *Model) Elapsed() time.Duration {
	switch m.state {
	case StateNotStarted:
		return 0
	case StateStopped:
		return m.elapsed
	default:
		return m.clock.Since(m.started)
	}
}

// Metrics exposes the snapshot collector.
func (m *Model) Metrics() *Collector { return m.metrics }

// Grid exposes the spatial index for read-only queries.
func (m *Model) Grid() *core.MultiGrid { return m.grid }

// Population exposes the live agents for read-only queries.
func (m *Model) Population() *Population { return m.pop }

// PercentClean returns the current clean percentage.
func (m *Model) PercentClean() float64 {
	return PercentClean(m.pop.Count(KindMarker), m.cfg.Width, m.cfg.Height)
}

// Summary returns the terminal summary once the run stopped.
func (m *Model) Summary() (Summary, bool) {
	return m.summary, m.state == StateStopped
}
