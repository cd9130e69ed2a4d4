package colormatrix

import (
	"sync"

	"github.com/noellered/color-matrix-visualizer/internal/parallel"
)

// Transformer runs color matrix transforms one at a time.
//
// A presentation layer that re-renders on every edit can call Apply from any
// goroutine: calls are serialized, and each returns a fresh Pixmap only after
// every pixel has been written, so no caller observes a buffer that mixes an
// old and a new matrix.
type Transformer struct {
	mu        sync.Mutex
	pool      *parallel.WorkerPool // nil when running sequentially
	threshold int
}

// NewTransformer creates a Transformer. Call Close to release its workers.
func NewTransformer(opts ...TransformerOption) *Transformer {
	o := defaultTransformerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Transformer{threshold: o.parallelThreshold}
	if o.workers != 1 {
		t.pool = parallel.NewWorkerPool(o.workers)
		Logger().Debug("colormatrix: transformer pool started",
			"workers", t.pool.Workers(), "threshold", t.threshold)
	}
	return t
}

// Workers returns the number of goroutines a transform may use.
func (t *Transformer) Workers() int {
	if t.pool == nil {
		return 1
	}
	return t.pool.Workers()
}

// Apply returns a new pixmap holding src transformed by m.
// src is only read.
func (t *Transformer) Apply(src *Pixmap, m ColorMatrix) (*Pixmap, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pool == nil || !t.pool.IsRunning() {
		return src.ApplyMatrix(m)
	}

	dst := NewPixmap(src.width, src.height)
	if err := t.applyParallel(dst.data, src.data, &m); err != nil {
		return nil, err
	}
	return dst, nil
}

// applyParallel splits the buffer into disjoint pixel ranges and joins
// before returning.
func (t *Transformer) applyParallel(dst, src []uint8, m *ColorMatrix) error {
	if len(src)%4 != 0 || len(dst) != len(src) {
		return ErrBufferLength
	}
	t.pool.ParallelFor(len(src)/4, t.threshold, func(start, end int) {
		transformPixels(dst[start*4:end*4], src[start*4:end*4], m)
	})
	return nil
}

// Close releases the worker goroutines. Apply keeps working afterwards,
// sequentially. Close is safe to call multiple times.
func (t *Transformer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pool != nil {
		t.pool.Close()
	}
}
