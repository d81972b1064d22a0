package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
	"service/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками. Неположительный TTL означает только прогрев.
	TTL() time.Duration

	Do(context.Context) error

	// Info имя задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   workerLogger
	tasks []Task
}

// New сначала синхронно выполняет каждую задачу один раз (прогрев).
// Ошибка или паника прогрева возвращается, и Worker не создается.
// После прогрева задачи крутятся в фоне до отмены ctx.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() (err error) {
			taskLog := log.With(logger.NewField("task", task.Info()))
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("init panic in %s: %v", task.Info(), r)
					taskLog.With(
						logger.NewField("recover", r),
						logger.NewField("stack", string(debug.Stack())),
					).Error("task panic during init")
				}
			}()

			taskLog.Info("initializing task")
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		go worker.runBackgroundTask(ctx, task)
	}

	return worker, nil
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	taskLog := w.log.With(
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl.String()),
	)

	if ttl <= 0 {
		taskLog.Warn("invalid TTL, skipping periodic execution")
		return
	}
	taskLog.Info("starting periodic execution")

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("stopping task (context cancelled)")
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, taskLog, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, taskLog logger.Logger, task Task) {
	defer func() {
		if r := recover(); r != nil {
			taskLog.With(
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			).Error("background task panic")
		}
	}()

	if err := task.Do(ctx); err != nil {
		taskLog.With(
			logger.NewField("error", err),
		).Error("background task failed")
	}
}
