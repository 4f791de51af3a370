package jobmgr

import (
	"context"
	"fmt"
	"time"
)

// LoopOptions configures a repeating job started with StartLoop.
type LoopOptions struct {
	// Interval between iterations. Required.
	Interval time.Duration
	// Jitter, when set, is called before each wait and its result is
	// added to Interval. Lets loops run on a randomized cadence.
	Jitter func() time.Duration
	// Immediate runs the first iteration before the first wait.
	Immediate bool
	// ErrorBackoff is the extra delay after a failed or panicked
	// iteration. Zero means no extra delay.
	ErrorBackoff time.Duration
}

// StartLoop runs iterate repeatedly until the job is stopped or the
// iteration context is cancelled. A panic inside one iteration is
// recovered and reported like an error; the loop keeps going.
func (m *Manager) StartLoop(name string, opts LoopOptions, iterate func(ctx context.Context) error) error {
	if opts.Interval <= 0 {
		return fmt.Errorf("job '%s': loop interval must be positive", name)
	}
	return m.StartAsync(name, func(ctx context.Context) error {
		run := func() {
			defer func() {
				if r := recover(); r != nil {
					m.report(fmt.Sprintf("panic:%s:%v", name, r))
					sleepCtx(ctx, opts.ErrorBackoff)
				}
			}()
			if err := iterate(ctx); err != nil {
				m.report(fmt.Sprintf("error:%s:%v", name, err))
				sleepCtx(ctx, opts.ErrorBackoff)
			}
		}

		if opts.Immediate {
			run()
		}
		for {
			wait := opts.Interval
			if opts.Jitter != nil {
				wait += opts.Jitter()
			}
			if !sleepCtx(ctx, wait) {
				return nil
			}
			run()
		}
	})
}

// sleepCtx waits for d or until ctx is done. Returns false on cancel.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
