package services

import (
	"context"
	"errors"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/logger"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/queue"
)

type TaskService struct {
	pool         *PoolService
	tokenManager queue.TokenManager
}

func NewTaskService(tokenManager queue.TokenManager, pool *PoolService) *TaskService {
	return &TaskService{
		pool:         pool,
		tokenManager: tokenManager,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, task model.NewTask) (int64, error) {
	if err := s.acquireQueueToken(ctx); err != nil {
		return 0, err
	}
	defer s.releaseQueueToken(ctx)

	return s.pool.Insert(ctx, task)
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	if err := s.acquireQueueToken(ctx); err != nil {
		return nil, err
	}
	defer s.releaseQueueToken(ctx)

	return s.pool.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	if err := s.acquireQueueToken(ctx); err != nil {
		return nil, err
	}
	defer s.releaseQueueToken(ctx)

	return s.pool.ListAll(ctx)
}

// Healthy reports whether a worker can reach the database. It bypasses admission
// tokens so health checks keep working under load.
func (s *TaskService) Healthy(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *TaskService) acquireQueueToken(ctx context.Context) error {
	if err := s.tokenManager.AcquireToken(ctx); err != nil {
		if errors.Is(err, queue.ErrNoTokenAvailable) {
			return apperrors.ErrTaskQueueFull
		}
		return err
	}
	return nil
}

func (s *TaskService) releaseQueueToken(ctx context.Context) {
	// The request context may already be done; the token must still go back.
	if err := s.tokenManager.ReleaseToken(context.WithoutCancel(ctx)); err != nil {
		logger.Warn("failed to release queue token", "error", err)
	}
}
