package usecase

import (
	"strings"
	"sync"

	"github.com/skyfare/flight-data-service/internal/domain"
)

// Simulation seeding bounds: a box over the Indian subcontinent and typical
// cruise altitude/speed bands.
const (
	simLatBase = 20.0
	simLatSpan = 10.0
	simLonBase = 75.0
	simLonSpan = 10.0

	simAltBase = 34000.0
	simAltSpan = 2000.0

	simSpeedBase = 420.0
	simSpeedSpan = 80.0
)

// Per-poll drift bounds.
const (
	simPosDrift   = 0.05
	simAltDrift   = 100.0
	simSpeedDrift = 10.0
)

// SimulatedPosition is one snapshot of a simulated flight.
type SimulatedPosition struct {
	Lat   float64
	Lon   float64
	Alt   float64
	Speed float64
}

// SimulationStore holds the per-flight simulated positions. It is the only
// process-wide mutable state in the tracking path: entries are keyed by the
// uppercased flight identifier, created on first poll, and live for the
// process lifetime. Inject a fresh store per test.
type SimulationStore struct {
	mu      sync.Mutex
	entries map[string]SimulatedPosition
}

// NewSimulationStore creates an empty store.
func NewSimulationStore() *SimulationStore {
	return &SimulationStore{entries: make(map[string]SimulatedPosition)}
}

// Next returns the next simulated position for a flight. A new flight is
// seeded pseudo-randomly inside the bounding box; an existing one drifts by
// small deltas, like an aircraft between two polls.
func (s *SimulationStore) Next(flight string, rnd domain.Rand) SimulatedPosition {
	key := strings.ToUpper(strings.TrimSpace(flight))

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.entries[key]
	if !ok {
		pos = SimulatedPosition{
			Lat:   simLatBase + rnd.Float64()*simLatSpan,
			Lon:   simLonBase + rnd.Float64()*simLonSpan,
			Alt:   simAltBase + rnd.Float64()*simAltSpan,
			Speed: simSpeedBase + rnd.Float64()*simSpeedSpan,
		}
	} else {
		pos.Lat += (rnd.Float64() - 0.5) * 2 * simPosDrift
		pos.Lon += (rnd.Float64() - 0.5) * 2 * simPosDrift
		pos.Alt += (rnd.Float64() - 0.5) * 2 * simAltDrift
		pos.Speed += (rnd.Float64() - 0.5) * 2 * simSpeedDrift
	}
	s.entries[key] = pos
	return pos
}

// Len returns the number of tracked simulation entries.
func (s *SimulationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
