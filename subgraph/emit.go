package subgraph

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ctxCheckMask makes the cancellation poll sparse: ctx.Err() runs once per 4096 steps.
const ctxCheckMask = 4095

// emitter is the sink shared by both resolvers. It owns the step counter,
// the cancellation poll, the match cap and the visit callback.
// Once stopped it refuses further work; err holds the abort reason, if any.
type emitter struct {
	ctx     context.Context
	visit   func(Assignment) error
	max     int
	stats   Stats
	stopped bool
	err     error
}

func newEmitter(opts Options, visit func(Assignment) error) *emitter {
	return &emitter{ctx: opts.Ctx, visit: visit, max: opts.MaxMatches}
}

// tick counts one unit of work and reports whether the search may continue.
func (e *emitter) tick() bool {
	if e.stopped {
		return false
	}
	e.stats.Steps++
	if e.stats.Steps&ctxCheckMask == 0 {
		if err := e.ctx.Err(); err != nil {
			e.abort(fmt.Errorf("search cancelled after %d steps: %w", e.stats.Steps, err))
			return false
		}
	}

	return true
}

// emit hands an independent copy of buf to visit and reports whether the
// search may continue.
func (e *emitter) emit(buf []int) bool {
	if e.stopped {
		return false
	}
	a := Assignment(slices.Clone(buf))
	e.stats.Matches++
	if e.visit != nil {
		if err := e.visit(a); err != nil {
			if errors.Is(err, ErrStopSearch) {
				e.stopped = true
				return false
			}
			e.abort(fmt.Errorf("visit %v: %w", a, err))
			return false
		}
	}
	if e.max > 0 && e.stats.Matches >= e.max {
		e.stopped = true
		return false
	}

	return true
}

func (e *emitter) abort(err error) {
	e.stopped = true
	e.err = err
}
