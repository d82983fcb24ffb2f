package qcirc

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

// Bit is one classical register cell: 0, 1, or Unset before the qubit has
// been measured within the shot.
type Bit int8

const Unset Bit = -1

// Result is one shot's classical register snapshot, indexed by qubit.
type Result []Bit

// String renders the snapshot in ket notation with qubit 0 rightmost,
// e.g. |0110>. Unmeasured cells print as 0, matching the register's
// initial display value.
func (r Result) String() string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('>')
	return sb.String()
}

type runConfig struct {
	seed    uint64
	seeded  bool
	workers int
}

// RunOption adjusts how Run executes its shots.
type RunOption func(*runConfig)

// WithSeed fixes the base seed of the per-shot random sources, making
// every measurement outcome reproducible across runs.
func WithSeed(seed uint64) RunOption {
	return func(cfg *runConfig) {
		cfg.seed = seed
		cfg.seeded = true
	}
}

// WithWorkers executes shots on n goroutines. Shots share nothing but the
// read-only program, and each derives its random source from the base seed
// and its own shot index, so results do not depend on the worker count.
func WithWorkers(n int) RunOption {
	return func(cfg *runConfig) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// Run replays the recorded program once per shot, each time against a
// fresh all-zero state vector and an unset classical register, and returns
// the per-shot register snapshots in shot order.
//
// Only the numerical-degeneracy error can surface here; everything
// structural was rejected while building. If a shot fails, shots that
// completed keep their results and the error names the failed shot.
func (c *Circuit) Run(shots int, opts ...RunOption) ([]Result, error) {
	if shots < 1 {
		return nil, fmt.Errorf("run: %w: shots must be positive, got %d", ErrInvalidOp, shots)
	}
	cfg := runConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = rand.Uint64()
	}

	slots := make([]Result, shots)
	if cfg.workers == 1 {
		for shot := range shots {
			res, err := c.runShot(shot, cfg.seed)
			if err != nil {
				return compact(slots[:shot]), err
			}
			slots[shot] = res
		}
		return slots, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	next := make(chan int)
	for range cfg.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for shot := range next {
				res, err := c.runShot(shot, cfg.seed)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				slots[shot] = res
			}
		}()
	}
	for shot := range shots {
		next <- shot
	}
	close(next)
	wg.Wait()

	if firstErr != nil {
		return compact(slots), firstErr
	}
	return slots, nil
}

// runShot replays the program once. The random source is derived from the
// base seed and the shot index, never shared between shots.
func (c *Circuit) runShot(shot int, seed uint64) (Result, error) {
	rng := rand.New(rand.NewPCG(seed, uint64(shot)))
	state := NewStateVector(c.numQubits)
	creg := make(Result, c.numQubits)
	for i := range creg {
		creg[i] = Unset
	}

	for _, op := range c.ops {
		switch op.Kind {
		case OpBarrier:
			// display marker only
		case OpGate:
			state.ApplyUnitary(op.matrix, op.Target, op.Controls)
		case OpSwap:
			state.ApplySwap(op.Target, op.Other)
		case OpMeasure:
			outcome, err := state.Measure(op.Target, rng.Float64())
			if err != nil {
				return nil, fmt.Errorf("shot %d: %w", shot, err)
			}
			creg[op.Target] = Bit(outcome)
		}
	}
	return creg, nil
}

// compact drops the slots of failed shots while preserving shot order.
func compact(slots []Result) []Result {
	done := make([]Result, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			done = append(done, r)
		}
	}
	return done
}
