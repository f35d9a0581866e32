package detect

import (
	"math"
	"sync"
)

// engine holds the precomputed trigonometry tables used by the circle
// transform: one table for accumulator voting and one for circumference
// verification sampling. Building them is done once per process; after
// initialization the tables are read-only and safe for concurrent use.
type engine struct {
	voteSin, voteCos     [voteAngles]float64
	sampleSin, sampleCos [sampleAngles]float64
}

var (
	engineMu   sync.Mutex
	engineInst *engine
)

// acquireEngine returns the process-wide engine, building it on first use.
// Concurrent first callers coalesce on the mutex rather than racing
// duplicate initializations.
func acquireEngine() *engine {
	engineMu.Lock()
	defer engineMu.Unlock()
	if engineInst == nil {
		engineInst = newEngine()
	}
	return engineInst
}

// TeardownEngine releases the cached circle-transform engine. The next
// detection rebuilds it. Intended for tests and controlled shutdown.
func TeardownEngine() {
	engineMu.Lock()
	engineInst = nil
	engineMu.Unlock()
}

func newEngine() *engine {
	e := &engine{}
	for i := 0; i < voteAngles; i++ {
		rad := float64(i) * (2 * math.Pi / voteAngles)
		e.voteSin[i] = math.Sin(rad)
		e.voteCos[i] = math.Cos(rad)
	}
	for i := 0; i < sampleAngles; i++ {
		rad := float64(i) * (2 * math.Pi / sampleAngles)
		e.sampleSin[i] = math.Sin(rad)
		e.sampleCos[i] = math.Cos(rad)
	}
	return e
}
