package chain

import (
	"log/slog"
	"sync"

	"xdao.co/wot/keyid"
	"xdao.co/wot/kv"
)

// storeOp is one pending durable operation.
type storeOp struct {
	key    []byte
	value  []byte // nil means delete
	issuer []byte // log context only
}

// writer applies durable operations asynchronously, in submission order, and
// gates store shutdown: Close refuses to close the KV handle while any
// operation is pending.
//
// Failures are logged and never propagated; the in-memory index has already
// been updated by the time an operation is enqueued, and the engine favors
// availability over the KV store's durability guarantee.
type writer struct {
	kv     kv.Store
	logger *slog.Logger

	ops  chan storeOp
	done chan struct{}

	mu      sync.Mutex
	cond    *sync.Cond
	pending int
	closed  bool
}

func newWriter(store kv.Store, logger *slog.Logger) *writer {
	w := &writer{
		kv:     store,
		logger: logger,
		ops:    make(chan storeOp, 256),
		done:   make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// enqueuePut schedules a durable write. Returns false after close.
func (w *writer) enqueuePut(key, value, issuer []byte) bool {
	return w.enqueue(storeOp{key: key, value: value, issuer: issuer})
}

// enqueueDelete schedules a durable delete. Returns false after close.
func (w *writer) enqueueDelete(key, issuer []byte) bool {
	return w.enqueue(storeOp{key: key, issuer: issuer})
}

func (w *writer) enqueue(op storeOp) bool {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return false
	}
	w.pending++
	w.mu.Unlock()
	w.ops <- op
	return true
}

func (w *writer) run() {
	defer close(w.done)
	for op := range w.ops {
		var err error
		if op.value == nil {
			err = w.kv.Delete(op.key)
		} else {
			err = w.kv.Put(op.key, op.value)
		}
		if err != nil {
			kind := "write"
			if op.value == nil {
				kind = "delete"
			}
			w.logger.Warn("durable "+kind+" failed",
				slog.String("key", string(op.key)),
				slog.String("issuer", keyid.Short(op.issuer)),
				slog.String("error", err.Error()))
		}
		w.opDone()
	}
}

func (w *writer) opDone() {
	w.mu.Lock()
	w.pending--
	if w.pending == 0 {
		w.cond.Broadcast()
	}
	w.mu.Unlock()
}

// flush blocks until every previously enqueued operation has been applied.
func (w *writer) flush() {
	w.mu.Lock()
	for w.pending > 0 {
		w.cond.Wait()
	}
	w.mu.Unlock()
}

// pendingOps returns the number of in-flight durable operations.
func (w *writer) pendingOps() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending
}

// close drains pending operations, then closes the underlying KV store.
// Idempotent; later calls wait for the first to finish and return nil.
func (w *writer) close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.ops)
	<-w.done
	return w.kv.Close()
}
