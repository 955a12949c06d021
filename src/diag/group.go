package diag

import "sync"

// defaultBufferSize is the fallback pre-allocation size of a DiagGroup's
// buffer.
const defaultBufferSize = 16

// DiagGroup collects *Diag values reported from goroutines checking
// independent functions within a module, the parallel counterpart to the
// per-statement short-circuit policy a single check_* call follows.
type DiagGroup struct {
	listen chan *Diag
	stop   chan struct{}
	diags  []*Diag
	sync.Mutex
}

// NewDiagGroup returns a DiagGroup with n pre-allocated buffer slots and
// starts its background listener.
func NewDiagGroup(n int) *DiagGroup {
	if n < 1 {
		n = defaultBufferSize
	}
	g := &DiagGroup{
		listen: make(chan *Diag),
		stop:   make(chan struct{}),
		diags:  make([]*Diag, 0, n),
	}
	go g.run()
	return g
}

func (g *DiagGroup) run() {
	defer close(g.listen)
	for {
		select {
		case d := <-g.listen:
			g.Lock()
			g.diags = append(g.diags, d)
			g.Unlock()
		case <-g.stop:
			return
		}
	}
}

// Append sends d to the collector. A nil Diag is ignored.
func (g *DiagGroup) Append(d *Diag) {
	if d != nil {
		g.listen <- d
	}
}

// Len returns the number of buffered diagnostics.
func (g *DiagGroup) Len() int {
	g.Lock()
	defer g.Unlock()
	return len(g.diags)
}

// Flush empties the buffered diagnostics.
func (g *DiagGroup) Flush() {
	g.Lock()
	defer g.Unlock()
	g.diags = make([]*Diag, 0, cap(g.diags))
}

// Stop halts the background listener. No further Append calls may be made
// after Stop.
func (g *DiagGroup) Stop() {
	defer close(g.stop)
	g.stop <- struct{}{}
}

// Diags returns a snapshot slice of every diagnostic collected so far.
func (g *DiagGroup) Diags() []*Diag {
	g.Lock()
	defer g.Unlock()
	out := make([]*Diag, len(g.diags))
	copy(out, g.diags)
	return out
}
