// Package parallel runs independent render tasks on a fixed set of
// goroutines.
//
// The sphere renderer splits a mesh into contiguous triangle chunks and
// shades every chunk on a Pool; results are merged by the caller in chunk
// order, so concurrency never changes the output.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of worker goroutines with one queue each. An idle worker
// steals from the other queues before blocking on its own.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *Pool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// Run executes every task and returns when all of them have finished.
// Tasks are distributed round-robin. On a closed pool the tasks run
// sequentially on the calling goroutine.
func (p *Pool) Run(tasks []func()) {
	if len(tasks) == 0 {
		return
	}
	if !p.running.Load() {
		for _, task := range tasks {
			task()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		wrapped := func() {
			defer wg.Done()
			task()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	wg.Wait()
}

// Close stops the workers after the queued tasks have run.
// Close is safe to call more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Running reports whether the pool still accepts tasks.
func (p *Pool) Running() bool {
	return p.running.Load()
}

// Chunk is the half-open index range [Start, End).
type Chunk struct {
	Start, End int
}

// Len returns the number of indices in c.
func (c Chunk) Len() int { return c.End - c.Start }

// Chunks splits [0, n) into at most parts contiguous, non-empty chunks of
// nearly equal size, in ascending order.
func Chunks(n, parts int) []Chunk {
	if n <= 0 {
		return nil
	}
	parts = min(max(parts, 1), n)
	out := make([]Chunk, 0, parts)
	size, rest := n/parts, n%parts
	start := 0
	for i := range parts {
		end := start + size
		if i < rest {
			end++
		}
		out = append(out, Chunk{Start: start, End: end})
		start = end
	}
	return out
}
