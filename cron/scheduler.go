package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// zapLogger adapts zap to cron.Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l zapLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}

// StartCron schedules every enabled job and starts the scheduler. A job
// still running when its next tick fires is skipped.
func StartCron(log *zap.Logger) (*cron.Cron, error) {
	cl := zapLogger{s: log.Named("cron").Sugar()}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))

	for _, j := range Jobs() {
		j := j
		if j.Disabled() {
			log.Info("cron job disabled", zap.String("job", j.Name))
			continue
		}
		if _, err := c.AddFunc(j.Schedule, func() { _ = RunJob(context.Background(), log, j) }); err != nil {
			return nil, fmt.Errorf("failed to register job %s: %w", j.Name, err)
		}
		log.Info("cron job scheduled", zap.String("job", j.Name), zap.String("schedule", j.Schedule))
	}
	c.Start()
	return c, nil
}

// RunJob runs one job and logs its outcome.
func RunJob(ctx context.Context, log *zap.Logger, j Job) error {
	start := time.Now()
	err := j.Run(ctx)
	fields := []zap.Field{zap.String("job", j.Name), zap.Duration("duration", time.Since(start))}
	if err != nil {
		log.Error("cron job failed", append(fields, zap.Error(err))...)
		return err
	}
	log.Info("cron job finished", fields...)
	return nil
}
