package pvec

import (
	"os"
	"sync"
	"time"
)

// daemon is the background durability task. It sleeps on a ticker,
// wakes early when the appender signals a write burst, and forces
// buffered log writes to stable storage on every wake. Stopping it
// performs exactly one more sync before it exits, so a clean shutdown
// loses nothing already appended.
type daemon struct {
	v      *Vector
	period time.Duration

	wakeCh chan struct{}
	stopCh chan struct{}
	wg     sync.WaitGroup

	// swapped out in tests
	exit func(code int)
}

func newDaemon(v *Vector, period time.Duration) *daemon {
	if period <= 0 {
		period = defaultSyncPeriod
	}
	d := &daemon{
		v:      v,
		period: period,
		wakeCh: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		exit:   os.Exit,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *daemon) run() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopCh:
			// draining: one final sync, then stopped
			d.syncOnce()
			return
		case <-ticker.C:
			d.syncOnce()
		case <-d.wakeCh:
			d.syncOnce()
		}
	}
}

// syncOnce flushes and fsyncs the log under the vector mutex. A
// failed sync means data already acknowledged to callers may be lost,
// so it is fatal.
func (d *daemon) syncOnce() {
	d.v.mu.Lock()
	err := d.v.logFile.Sync()
	d.v.mu.Unlock()
	if err != nil {
		d.v.options.logger.Error("log sync failed", "error", err)
		d.exit(1)
	}
}

// wake nudges the daemon without blocking; a pending wake is enough.
func (d *daemon) wake() {
	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
}

// stop signals the daemon and blocks until its final sync finished.
func (d *daemon) stop() {
	close(d.stopCh)
	d.wg.Wait()
}
