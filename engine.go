// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

// engine.go runs the renderer: a state machine over a pool of
// worker goroutines pulling tiles from a lock free queue. State
// transitions are serialized by one mutex; workers poll state at
// tile and sample boundaries so pause and abort take effect
// promptly without preempting anything.

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/render"
	"github.com/gazed/lux/sample"
	"github.com/gazed/lux/shade"
	"github.com/gazed/lux/trace"
)

// State is the engine lifecycle state.
type State int32

// Engine states.
const (
	Initializing State = iota // constructing, not yet usable.
	Ready                     // waiting for Begin.
	Rendering                 // workers are sampling pixels.
	Paused                    // workers are parked.
	Completed                 // all tiles drained.
	Aborted                   // stopped early or a worker failed.
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Rendering:
		return "rendering"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Engine renders a scene into a buffer under a profile. One render
// at a time; a finished engine can Begin again.
type Engine struct {
	scene   *Scene
	buffer  *RenderBuffer
	profile Profile

	prepared  *render.Scene
	evaluator render.Evaluator

	mu    sync.Mutex
	cond  *sync.Cond
	state atomic.Int32 // mirrors the locked state for cheap polls.

	tiles    []tile
	nextTile atomic.Int64
	workers  sync.WaitGroup

	count counters
}

// NewEngine returns a ready engine bound to a scene and buffer.
func NewEngine(scene *Scene, buffer *RenderBuffer) (*Engine, error) {
	if scene == nil {
		return nil, fmt.Errorf("%w: nil scene", ErrInvalidScene)
	}
	if buffer == nil || len(buffer.pixels) == 0 {
		return nil, fmt.Errorf("%w: nil or empty buffer", ErrInvalidBuffer)
	}
	e := &Engine{scene: scene, buffer: buffer}
	e.cond = sync.NewCond(&e.mu)
	e.setState(Ready)
	slog.Debug("engine ready",
		"avx2", cpu.X86.HasAVX2, "sse41", cpu.X86.HasSSE41,
		"neon", cpu.ARM64.HasASIMD)
	return e, nil
}

// setState records a transition. Callers hold e.mu except during
// construction.
func (e *Engine) setState(s State) {
	e.state.Store(int32(s))
	if e.cond != nil {
		e.cond.Broadcast()
	}
}

// State returns the current engine state.
func (e *Engine) State() State { return State(e.state.Load()) }

// Begin validates the profile, prepares the scene and starts the
// workers. Legal from ready, completed or aborted; anything else
// returns ErrInvalidState.
func (e *Engine) Begin(opts ...Option) error {
	e.mu.Lock()
	switch State(e.state.Load()) {
	case Ready, Completed, Aborted:
	default:
		e.mu.Unlock()
		return fmt.Errorf("%w: begin while %s", ErrInvalidState, e.State())
	}
	e.mu.Unlock()
	e.workers.Wait() // drain any aborted run still unwinding.

	p := profileDefaults()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.validate(); err != nil {
		return err
	}

	prepared, err := render.Prepare(e.scene.root, render.Config{
		FragmentScale:   p.fragmentScale,
		FragmentMaxIter: p.fragmentMaxIter,
	})
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile = p
	e.prepared = prepared
	e.evaluator = p.evaluator
	if e.evaluator == nil {
		switch p.pass {
		case PassAlbedo:
			e.evaluator = render.NewAlbedoEvaluator()
		case PassCost:
			e.evaluator = render.NewCostEvaluator()
		default:
			e.evaluator = &render.PathEvaluator{
				BounceLimit:   p.bounceLimit,
				EnergyEpsilon: p.energyEps,
				RouletteStart: p.rouletteStart,
			}
		}
	}

	w, h := e.buffer.Size()
	e.buffer.Reset()
	e.tiles = makeTiles(w, h, p.tileSize)
	e.nextTile.Store(0)
	e.count.reset()
	e.setState(Rendering)
	slog.Debug("render begin", "size", fmt.Sprintf("%dx%d", w, h),
		"tiles", len(e.tiles), "workers", p.workers,
		"samples", fmt.Sprintf("%d..%d", p.baseSamples, p.adaptiveSamples))

	e.workers.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go e.work(i)
	}
	go func() {
		e.workers.Wait()
		e.mu.Lock()
		defer e.mu.Unlock()
		if State(e.state.Load()) == Rendering {
			e.setState(Completed)
			slog.Debug("render completed")
		}
	}()
	return nil
}

// Pause parks the workers at their next boundary. Legal only while
// rendering.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if State(e.state.Load()) != Rendering {
		return fmt.Errorf("%w: pause while %s", ErrInvalidState, e.State())
	}
	e.setState(Paused)
	return nil
}

// Resume releases paused workers. Legal only while paused.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if State(e.state.Load()) != Paused {
		return fmt.Errorf("%w: resume while %s", ErrInvalidState, e.State())
	}
	e.setState(Rendering)
	return nil
}

// Abort stops the render at the next boundary, leaving whatever
// samples arrived in the buffer. Legal while rendering or paused.
func (e *Engine) Abort() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch State(e.state.Load()) {
	case Rendering, Paused:
	default:
		return fmt.Errorf("%w: abort while %s", ErrInvalidState, e.State())
	}
	e.setState(Aborted)
	return nil
}

// Wait blocks until the engine leaves the rendering and paused
// states, returning the final state. The full barrier of the state
// mutex publishes every worker's buffer writes to the caller.
func (e *Engine) Wait() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	for {
		s := State(e.state.Load())
		if s != Rendering && s != Paused {
			return s
		}
		e.cond.Wait()
	}
}

// Progress returns a snapshot of the render counters.
func (e *Engine) Progress() Progress {
	p := Progress{
		State:       e.State(),
		Pixels:      e.count.pixels.Load(),
		Samples:     e.count.samples.Load(),
		Tiles:       e.count.tiles.Load(),
		TotalTiles:  uint64(len(e.tiles)),
		TotalPixels: uint64(len(e.buffer.pixels)),
	}
	if s := e.prepared; s != nil {
		p.Traces = s.TraceCount()
		p.Occludes = s.OccludeCount()
		p.NanClamp = s.NanCount()
	}
	return p
}

// running blocks through pauses and reports whether the worker
// should continue. False means abort or drain.
func (e *Engine) running() bool {
	s := State(e.state.Load())
	if s == Rendering {
		return true // fast path, no lock.
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for State(e.state.Load()) == Paused {
		e.cond.Wait()
	}
	return State(e.state.Load()) == Rendering
}

// work is one worker goroutine: pop tiles until the queue drains or
// the state machine says stop. Panics abort the render instead of
// crossing the scheduler boundary.
func (e *Engine) work(id int) {
	defer e.workers.Done()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("render worker panic", "worker", id, "panic", r)
			e.mu.Lock()
			if s := State(e.state.Load()); s == Rendering || s == Paused {
				e.setState(Aborted)
			}
			e.mu.Unlock()
		}
	}()

	src := sample.NewSource(0)
	arena := shade.NewArena()
	query := trace.NewQuery()

	for e.running() {
		i := int(e.nextTile.Add(1) - 1)
		if i >= len(e.tiles) {
			return // drained.
		}
		e.renderTile(&e.tiles[i], src, arena, query)
		e.count.tiles.Add(1)
	}
}

// renderTile samples every pixel of a tile in Morton order. Each
// pixel accumulates locally and writes to the shared buffer once,
// keeping the buffer single writer per pixel.
func (e *Engine) renderTile(t *tile, src *sample.Source, arena *shade.Arena, query *trace.Query) {
	w, h := e.buffer.Size()
	p := &e.profile
	t.pixels(func(x, y int) {
		if State(e.state.Load()) == Aborted {
			return
		}
		pixelIndex := uint32(y*w + x)

		var sum lin.V4
		var weight float32
		var taken uint32
		var mean, m2 float64 // Welford running variance of luminance.

		for s := 0; s < p.adaptiveSamples; s++ {
			if s >= p.baseSamples && converged(mean, m2, s, p.noiseThreshold) {
				break
			}
			if !e.running() {
				break // paused then aborted, or abort mid pixel.
			}

			// reseed per sample: results are independent of which
			// worker renders which tile in what order.
			hi := sample.Hash(uint32(t.id), pixelIndex, uint32(s), p.seed)
			lo := sample.Hash(p.seed, uint32(s), pixelIndex, uint32(t.id))
			src.Seed(uint64(hi)<<32 | uint64(lo))

			u, v := src.Float2()
			ray := e.prepared.Camera.SpawnRay(x, y, u, v, w, h)
			radiance := e.evaluator.Evaluate(e.prepared, ray, src, arena, query)

			sum = sum.Add(radiance)
			weight++
			taken++
			lum := float64(radiance.V3().Luminance())
			delta := lum - mean
			mean += delta / float64(taken)
			m2 += delta * (lum - mean)
		}
		if taken > 0 {
			e.buffer.add(x, y, sum, weight, taken)
			e.count.samples.Add(uint64(taken))
			e.count.pixels.Add(1)
		}
	})
}

// converged reports whether the 95% confidence half width of the
// pixel mean has dropped below the noise threshold, relative to the
// mean with a floor for near black pixels.
func converged(mean, m2 float64, n int, threshold float32) bool {
	if n < 2 {
		return false
	}
	variance := m2 / float64(n-1)
	half := 1.96 * lin.Sqrt(float32(variance/float64(n)))
	limit := float64(threshold) * (mean + 0.05)
	return float64(half) <= limit
}
