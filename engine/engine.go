package engine

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/devia2025/progtop/model"
)

// Snapshot is one collection cycle's aggregated result.
type Snapshot struct {
	Timestamp time.Time           `json:"timestamp"`
	Programs  []model.ProgramStat `json:"programs"`
}

// Engine owns collection and aggregation. Pin state belongs to the
// caller: it is stamped onto each snapshot via the pinned set passed
// to Tick, never stored here.
type Engine struct {
	thresholds Thresholds
	tickMu     sync.Mutex // serializes Tick() when refresh ticks overlap
}

// NewEngine creates an engine with the given classification thresholds.
func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Tick performs one collect + aggregate cycle. pinned marks which
// program names the owner has pinned; matching rows get Pinned set.
func (e *Engine) Tick(pinned map[string]bool) (*Snapshot, error) {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	procs, err := Collect()
	if err != nil {
		log.Error().Err(err).Msg("process collection failed")
		return nil, err
	}

	programs := Aggregate(procs, e.thresholds)
	for i := range programs {
		if pinned[programs[i].Name] {
			programs[i].Pinned = true
		}
	}

	return &Snapshot{Timestamp: time.Now(), Programs: programs}, nil
}

// TopPrograms returns the first n programs of a snapshot ordered by
// the given key, descending for numeric keys.
func TopPrograms(programs []model.ProgramStat, n int, key model.SortKey) []model.ProgramStat {
	view := DeriveView(programs, Query{SortKey: key, SortDir: key.DefaultDir()})
	if n > 0 && n < len(view) {
		view = view[:n]
	}
	return view
}
