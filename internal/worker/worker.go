// Package worker runs the background jobs that keep habit state honest
// across day boundaries. Everything here is optional: the API never
// depends on a job having run.
package worker

import (
	"fmt"
	"time"

	"github.com/arnold/lifehub-api/internal/config"
	"github.com/arnold/lifehub-api/internal/logger"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// zapAdapter bridges the sugared logger to the asynq.Logger interface.
type zapAdapter struct {
	s *zap.SugaredLogger
}

func (a *zapAdapter) Debug(args ...interface{}) { a.s.Debug(args...) }
func (a *zapAdapter) Info(args ...interface{})  { a.s.Info(args...) }
func (a *zapAdapter) Warn(args ...interface{})  { a.s.Warn(args...) }
func (a *zapAdapter) Error(args ...interface{}) { a.s.Error(args...) }
func (a *zapAdapter) Fatal(args ...interface{}) { a.s.Fatal(args...) }

// Start launches the asynq server in non-blocking mode and returns a
// stop function for shutdown coordination.
func Start(cfg *config.Config, db *gorm.DB) (stop func(), err error) {
	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency:     2,
			ShutdownTimeout: 30 * time.Second,
			Logger:          &zapAdapter{s: logger.L},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskHabitRollover, HandleHabitRollover(db))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("failed to start worker: %w", err)
	}
	return func() { srv.Shutdown() }, nil
}

// StartScheduler registers the nightly rollover and starts the
// scheduler. Returns a stop function.
func StartScheduler(cfg *config.Config) (stop func(), err error) {
	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			LogLevel: asynq.InfoLevel,
			Logger:   &zapAdapter{s: logger.L},
		},
	)

	task := asynq.NewTask(
		TaskHabitRollover,
		nil,
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
		asynq.Unique(12*time.Hour), // a double-fired schedule must not roll over twice
	)

	entryID, err := scheduler.Register("0 0 * * *", task)
	if err != nil {
		return nil, fmt.Errorf("failed to register rollover schedule: %w", err)
	}

	if err := scheduler.Start(); err != nil {
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}

	logger.L.Infow("scheduler started", "task", TaskHabitRollover, "entry_id", entryID)
	return func() { scheduler.Shutdown() }, nil
}
