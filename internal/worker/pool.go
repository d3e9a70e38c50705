// Package worker runs record checks on a fixed set of goroutines. Every item
// is handled by exactly one worker and nothing is shared between items, so a
// ProcessFunc needs no locking of its own.
package worker

import (
	"sync"
	"sync/atomic"
)

// WorkItem names one game record to check.
type WorkItem struct {
	Name  string // File the record is read from
	Index int    // Position in the caller's list
}

// ProcessResult is the outcome of checking one record.
type ProcessResult struct {
	Name    string
	Index   int
	Plies   int
	Result  string // Result reached by the replay
	Error   error
	Skipped bool // The pool was stopped before the item was checked
}

// ProcessFunc checks a single item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds work items to a fixed number of worker goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	stopOnError bool
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnError stops the pool as soon as any item fails.
func WithStopOnError() PoolOption {
	return func(p *Pool) {
		p.stopOnError = true
	}
}

// NewPool creates a worker pool. By default the pool has one worker and a
// buffer of ten items.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			p.resultChan <- ProcessResult{Name: item.Name, Index: item.Index, Skipped: true}
			continue
		}
		result := p.processFunc(item)
		if result.Error != nil && p.stopOnError {
			p.Stop()
		}
		p.resultChan <- result
	}
}

// Submit queues an item. It blocks while the work buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip every item they have not started yet.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker is done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, processes items and returns one result per item in
// item order. Each item's Index must be its position in items. The pool
// cannot be reused afterwards.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, len(items))
	for r := range p.Results() {
		results[r.Index] = r
	}
	return results
}
