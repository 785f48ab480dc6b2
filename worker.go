package jsonsync

import (
	"sync"
	"time"
)

// FlushWorker is a background goroutine that calls a flush function on a
// timer or whenever it is nudged. Stop joins the goroutine so nothing leaks.
//
// Flush errors are the flush function's problem: the worker never exits on
// one. Wrap the function if you want them logged or counted.
type FlushWorker struct {
	nudge <-chan struct{}
	tx    chan<- struct{} // nil when the caller owns the send side
	stop  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

// StartFlushWorker spawns a worker that owns both ends of its notification
// channel. Use Nudge to request a flush ahead of the next timer tick.
func StartFlushWorker(interval time.Duration, flush func()) *FlushWorker {
	// Capacity one: a single nudge can be pending while the worker is busy;
	// further nudges coalesce into it.
	ch := make(chan struct{}, 1)
	w := &FlushWorker{nudge: ch, tx: ch, stop: make(chan struct{})}
	w.run(interval, flush)
	return w
}

// StartFlushWorkerWithChan spawns a worker fed by an externally-created
// channel. The caller keeps the send side and may close it when done - the
// worker treats a closed channel like a stop signal.
func StartFlushWorkerWithChan(interval time.Duration, flush func(), nudge <-chan struct{}) *FlushWorker {
	w := &FlushWorker{nudge: nudge, stop: make(chan struct{})}
	w.run(interval, flush)
	return w
}

func (w *FlushWorker) run(interval time.Duration, flush func()) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		timer := time.NewTimer(interval)
		defer timer.Stop()
		for {
			// Checked up front so a stop issued while the previous flush ran
			// wins over a nudge that raced in at the same time.
			select {
			case <-w.stop:
				return
			default:
			}
			select {
			case <-w.stop:
				return
			case _, ok := <-w.nudge:
				if !ok {
					return
				}
				flush()
			case <-timer.C:
				flush()
			}
			timer.Reset(interval)
		}
	}()
}

// Nudge asks the worker to flush now without blocking. If the worker is busy
// the nudge is silently dropped - the next timer tick will catch up. Nudge is
// a no-op for workers started with an external channel.
func (w *FlushWorker) Nudge() {
	if w.tx == nil {
		return
	}
	select {
	case w.tx <- struct{}{}:
	default:
	}
}

// Stop signals the worker and waits for its goroutine to exit. The wait may
// block for up to one in-flight flush. Safe to call more than once.
func (w *FlushWorker) Stop() {
	w.once.Do(func() {
		close(w.stop)
		w.wg.Wait()
	})
}
