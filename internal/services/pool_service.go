package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/logger"
	"task-tracker.com/task-tracker/internal/metrics"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

var ErrPoolClosed = errors.New("worker pool is closed")

type job struct {
	ctx   context.Context
	op    string
	run   func(ctx context.Context, repo *repository.TaskRepository) (any, error)
	reply chan result
}

type result struct {
	value any
	err   error
}

// PoolService runs storage requests on a fixed set of workers. Each worker owns
// its own session on the connection pool and handles one request at a time.
// Requests wait in an unbounded FIFO queue until a worker is free.
type PoolService struct {
	submit chan *job
	queue  chan *job

	mu     sync.RWMutex
	closed bool

	wg         sync.WaitGroup
	dispatchWG sync.WaitGroup
	metrics    *metrics.Metrics
}

func NewPoolService(db *gorm.DB, workers int, m *metrics.Metrics) *PoolService {
	p := &PoolService{
		submit:  make(chan *job),
		queue:   make(chan *job),
		metrics: m,
	}

	p.dispatchWG.Add(1)
	go p.dispatch()

	for i := 1; i <= workers; i++ {
		p.wg.Add(1)
		go p.worker(i, repository.NewTaskRepository(db.Session(&gorm.Session{})))
	}

	return p
}

func (p *PoolService) ListAll(ctx context.Context) ([]model.Task, error) {
	return execute(ctx, p, "list tasks", func(ctx context.Context, repo *repository.TaskRepository) ([]model.Task, error) {
		return repo.ListAll(ctx)
	})
}

func (p *PoolService) Insert(ctx context.Context, task model.NewTask) (int64, error) {
	return execute(ctx, p, "insert task", func(ctx context.Context, repo *repository.TaskRepository) (int64, error) {
		return repo.Insert(ctx, task)
	})
}

func (p *PoolService) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	return execute(ctx, p, "find task", func(ctx context.Context, repo *repository.TaskRepository) (*model.Task, error) {
		return repo.FindByID(ctx, id)
	})
}

func (p *PoolService) Ping(ctx context.Context) error {
	_, err := execute(ctx, p, "ping", func(ctx context.Context, repo *repository.TaskRepository) (struct{}, error) {
		return struct{}{}, repo.Ping(ctx)
	})
	return err
}

// execute queues fn and waits for its result or for ctx to end. The reply
// channel is buffered so a worker never blocks on a caller that gave up.
func execute[T any](
	ctx context.Context,
	p *PoolService,
	op string,
	fn func(context.Context, *repository.TaskRepository) (T, error),
) (T, error) {
	var zero T

	j := &job{
		ctx: ctx,
		op:  op,
		run: func(ctx context.Context, repo *repository.TaskRepository) (any, error) {
			return fn(ctx, repo)
		},
		reply: make(chan result, 1),
	}

	if err := p.enqueue(j); err != nil {
		return zero, err
	}

	select {
	case res := <-j.reply:
		if res.err != nil {
			return zero, res.err
		}
		return res.value.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (p *PoolService) enqueue(j *job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.submit <- j:
		return nil
	case <-j.ctx.Done():
		return j.ctx.Err()
	}
}

func (p *PoolService) dispatch() {
	defer p.dispatchWG.Done()
	defer close(p.queue)

	var pending []*job
	in := p.submit

	for in != nil || len(pending) > 0 {
		var (
			out  chan *job
			next *job
		)
		if len(pending) > 0 {
			out = p.queue
			next = pending[0]
		}

		select {
		case j, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			pending = append(pending, j)
		case out <- next:
			pending[0] = nil
			pending = pending[1:]
		}

		p.metrics.QueueDepth.Set(float64(len(pending)))
	}
}

func (p *PoolService) worker(workerID int, repo *repository.TaskRepository) {
	defer p.wg.Done()

	logger.Debug("worker started", "worker", workerID)

	for j := range p.queue {
		p.handleJob(workerID, repo, j)
	}

	logger.Debug("worker stopped", "worker", workerID)
}

func (p *PoolService) handleJob(workerID int, repo *repository.TaskRepository, j *job) {
	var res result

	p.metrics.BusyWorkers.Inc()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("worker recovered from panic", "worker", workerID, "op", j.op, "panic", r)
			res = result{err: &apperrors.StorageError{Op: j.op, Err: fmt.Errorf("panic: %v", r)}}
		}
		p.metrics.BusyWorkers.Dec()
		p.metrics.Jobs.WithLabelValues(outcome(res.err)).Inc()
		j.reply <- res
	}()

	// The caller already stopped waiting.
	if err := j.ctx.Err(); err != nil {
		res.err = err
		return
	}

	res.value, res.err = j.run(j.ctx, repo)
	if apperrors.IsStorageError(res.err) {
		logger.Error("storage request failed",
			"worker", workerID,
			"op", j.op,
			"constraint_violation", apperrors.IsConstraintViolation(res.err),
			"error", res.err,
		)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case apperrors.IsStorageError(err):
		return "storage_error"
	default:
		return "error"
	}
}

// Shutdown stops accepting requests, lets queued ones finish and waits for the
// workers until ctx expires.
func (p *PoolService) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.submit)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.dispatchWG.Wait()
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("worker pool shut down cleanly")
	case <-ctx.Done():
		logger.Warn("worker pool shutdown timed out")
	}
}
